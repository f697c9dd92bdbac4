package mazeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/eller-maze/infrastruture/logger"
	"github.com/beka-birhanu/eller-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenGenerator struct{}

func (brokenGenerator) Generate(context.Context, service.MazeRequest) (*service.MazeResult, error) {
	return nil, errors.New("out of memory")
}

func newTestEngine(t *testing.T, generator mazeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewMazeController(generator)
	require.NoError(t, err)

	engine := gin.New()
	controller.RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func newTestService(t *testing.T) *service.MazeService {
	t.Helper()
	l, err := logger.New("TEST", "", &strings.Builder{})
	require.NoError(t, err)

	svc, err := service.NewMazeService(nil, l, &service.Options{MaxWidth: 20, MaxHeight: 20})
	require.NoError(t, err)
	return svc
}

func get(engine *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestNewMazeController(t *testing.T) {
	c, err := NewMazeController(nil)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestMazeController(t *testing.T) {
	engine := newTestEngine(t, newTestService(t))

	t.Run("plain text", func(t *testing.T) {
		w := get(engine, "/api/v1/maze?width=3&height=1&seed=1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "+--+--+--+\n|        |\n+--+--+--+\n+--+--+--+\n", w.Body.String())
		assert.Equal(t, "1", w.Header().Get(headerMazeSeed))
		assert.NotEmpty(t, w.Header().Get(headerMazeID))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("same seed same maze", func(t *testing.T) {
		first := get(engine, "/api/v1/maze?width=9&height=6&seed=42")
		second := get(engine, "/api/v1/maze?width=9&height=6&seed=42")

		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Len(t, strings.Split(strings.TrimSuffix(first.Body.String(), "\n"), "\n"), 2*6+2)
	})

	t.Run("json", func(t *testing.T) {
		w := get(engine, "/api/v1/maze?width=4&height=3&seed=8&format=json")
		require.Equal(t, http.StatusOK, w.Code)

		var response MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 4, response.Width)
		assert.Equal(t, 3, response.Height)
		assert.Equal(t, int64(8), response.Seed)
		assert.Len(t, response.Lines, 8)
		require.Len(t, response.Rooms, 3)
		assert.Len(t, response.Rooms[0], 4)
		assert.True(t, response.Rooms[0][0].NorthWall)
		assert.True(t, response.Rooms[2][3].SouthWall)
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, url := range []string{
			"/api/v1/maze",
			"/api/v1/maze?width=3",
			"/api/v1/maze?width=abc&height=3",
			"/api/v1/maze?width=0&height=3",
			"/api/v1/maze?width=-2&height=3",
			"/api/v1/maze?width=21&height=3",
			"/api/v1/maze?width=3&height=3&format=xml",
		} {
			w := get(engine, url)
			assert.Equal(t, http.StatusBadRequest, w.Code, url)
		}
	})
}

func TestMazeControllerInternalError(t *testing.T) {
	engine := newTestEngine(t, brokenGenerator{})

	w := get(engine, "/api/v1/maze?width=3&height=3")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error while generating maze")
}
