package mazeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves maze generation and solving.
type MazeController struct {
	mazeService i.MazeService
	logger      i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, logger i.Logger) (*MazeController, error) {
	if ms == nil || logger == nil {
		return nil, errors.New("maze controller: service and logger are required")
	}
	return &MazeController{
		mazeService: ms,
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/generate_maze/:dimension", mc.generate)
	route.POST("/solve_maze", mc.solve)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// generate handles maze generation requests. Non-numeric or negative dimensions do not match.
func (mc *MazeController) generate(ctx *gin.Context) {
	dimension, err := strconv.Atoi(ctx.Param("dimension"))
	if err != nil || dimension < 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}

	grid, _, err := mc.mazeService.Generate(dimension, ctx.Query("algorithm"))
	if err != nil {
		if errors.Is(err, maze.ErrUnknownAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate maze"})
		return
	}

	ctx.JSON(http.StatusOK, grid)
}

// solve handles maze solving requests.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data types for maze, start, or goal"})
			return
		}
		mc.logger.Warn("Bad request for solve_maze", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON or bad request"})
		return
	}

	var missing []string
	if request.Maze == nil {
		missing = append(missing, "maze")
	}
	if request.Start == nil {
		missing = append(missing, "start")
	}
	if request.Goal == nil {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required key(s): " + strings.Join(missing, ", ")})
		return
	}
	if !request.Start.complete() || !request.Goal.complete() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'x' or 'y' in start/goal coordinates"})
		return
	}

	path, found, err := mc.mazeService.Solve(*request.Maze, request.Start.position(), request.Goal.position())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data format for solver"})
		return
	}

	ctx.JSON(http.StatusOK, SolveResponse{Path: toPairs(path, found)})
}
