package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/eller-maze/maze"
	"github.com/beka-birhanu/eller-maze/service"
	"github.com/gin-gonic/gin"
)

const (
	formatJSON = "json"

	headerMazeID   = "X-Maze-ID"
	headerMazeSeed = "X-Maze-Seed"
)

type mazeGenerator interface {
	Generate(ctx context.Context, req service.MazeRequest) (*service.MazeResult, error)
}

// MazeController serves generated mazes.
type MazeController struct {
	generator mazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(generator mazeGenerator) (*MazeController, error) {
	if generator == nil {
		return nil, errors.New("maze generator is required")
	}
	return &MazeController{generator: generator}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/maze", mc.maze)
}

// maze generates a maze and writes it as plain text, or as JSON with format=json.
func (mc *MazeController) maze(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.generator.Generate(ctx.Request.Context(), service.MazeRequest{
		Width:     query.Width,
		Height:    query.Height,
		Seed:      query.Seed,
		WithRooms: query.Format == formatJSON,
	})
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) || errors.Is(err, service.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	if query.Format == formatJSON {
		ctx.JSON(http.StatusOK, &MazeResponse{
			ID:     result.ID,
			Width:  result.Width,
			Height: result.Height,
			Seed:   result.Seed,
			Lines:  result.Lines,
			Rooms:  result.Rooms,
		})
		return
	}

	ctx.Header(headerMazeID, result.ID.String())
	ctx.Header(headerMazeSeed, strconv.FormatInt(result.Seed, 10))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(result.Lines, "\n")+"\n"))
}
