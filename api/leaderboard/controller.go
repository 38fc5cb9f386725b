package leaderboardapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// LeaderboardController manages score submission and listing.
type LeaderboardController struct {
	leaderboard i.Leaderboard
	logger      i.Logger
}

// NewLeaderboardController initializes a LeaderboardController.
func NewLeaderboardController(lb i.Leaderboard, logger i.Logger) (*LeaderboardController, error) {
	if lb == nil || logger == nil {
		return nil, errors.New("leaderboard controller: leaderboard and logger are required")
	}
	return &LeaderboardController{leaderboard: lb, logger: logger}, nil
}

// RegisterPublic registers public routes.
func (lc *LeaderboardController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/add_score", lc.addScore)
	route.GET("/get_leaderboard", lc.scores)
	route.GET("/leaderboard/:dimension", lc.top)
}

// RegisterProtected registers protected routes.
func (lc *LeaderboardController) RegisterProtected(route *gin.RouterGroup) {}

func (lc *LeaderboardController) addScore(ctx *gin.Context) {
	var request AddScoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data types for name, time, or dimension"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON or bad request"})
		return
	}

	var missing []string
	if request.Name == nil {
		missing = append(missing, "name")
	}
	if request.Time == nil {
		missing = append(missing, "time")
	}
	if request.Dimension == nil {
		missing = append(missing, "dimension")
	}
	if len(missing) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required key(s): " + strings.Join(missing, ", ")})
		return
	}

	_, err := lc.leaderboard.AddScore(ctx, *request.Name, *request.Time, *request.Dimension)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, AddScoreResponse{Success: true, Message: "Score added"})
	case errors.Is(err, domain.ErrEmptyName):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
	case errors.Is(err, domain.ErrInvalidTime):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time value"})
	case errors.Is(err, domain.ErrInvalidDimension):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dimension value: " + strconv.Itoa(*request.Dimension)})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save leaderboard"})
	}
}

func (lc *LeaderboardController) scores(ctx *gin.Context) {
	scores, err := lc.leaderboard.Scores(ctx)
	if err != nil {
		// Readers get an empty board rather than an error.
		ctx.JSON(http.StatusOK, []domain.Score{})
		return
	}
	ctx.JSON(http.StatusOK, scores)
}

func (lc *LeaderboardController) top(ctx *gin.Context) {
	dimension, err := strconv.Atoi(ctx.Param("dimension"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
	}

	scores, err := lc.leaderboard.Top(ctx, dimension, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDimension) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dimension value: " + strconv.Itoa(dimension)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, scores)
}
