// Package mazeapi provides structures and utilities for serving generated mazes over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/eller-maze/maze"
	"github.com/google/uuid"
)

// MazeQuery represents the query string of a maze request.
type MazeQuery struct {
	Width  int    `form:"width" binding:"required"`
	Height int    `form:"height" binding:"required"`
	Seed   *int64 `form:"seed"`
	Format string `form:"format" binding:"omitempty,oneof=text json"`
}

// MazeResponse represents a generated maze in JSON form.
type MazeResponse struct {
	ID     uuid.UUID     `json:"id"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Seed   int64         `json:"seed"`
	Lines  []string      `json:"lines"`
	Rooms  [][]maze.Room `json:"rooms"`
}
