// Package admin holds operator-only routes guarded by JWT authorization.
package admin

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// ArchiveController triggers and reads leaderboard archives.
type ArchiveController struct {
	archiver i.Archiver
}

// NewArchiveController initializes an ArchiveController.
func NewArchiveController(a i.Archiver) (*ArchiveController, error) {
	if a == nil {
		return nil, errors.New("archive controller: archiver is required")
	}
	return &ArchiveController{archiver: a}, nil
}

// RegisterPublic registers public routes.
func (ac *ArchiveController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers privileged routes.
func (ac *ArchiveController) RegisterProtected(route *gin.RouterGroup) {
	archives := route.Group("/archives")
	{
		archives.POST("", ac.archive)
		archives.GET("/:day", ac.byDay)
	}
}

func (ac *ArchiveController) archive(ctx *gin.Context) {
	archive, err := ac.archiver.Archive(ctx)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, archive)
	case errors.Is(err, domain.ErrAlreadyArchived), errors.Is(err, domain.ErrNothingToArchive):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive leaderboard"})
	}
}

func (ac *ArchiveController) byDay(ctx *gin.Context) {
	archive, err := ac.archiver.ByDay(ctx, ctx.Param("day"))
	if err != nil {
		if errors.Is(err, domain.ErrArchiveNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No archive"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load archive"})
		return
	}
	ctx.JSON(http.StatusOK, archive)
}
