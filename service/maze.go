package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/eller-maze/maze"
	"github.com/beka-birhanu/eller-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxWidth  = 64
	defaultMaxHeight = 64
	cacheKeyFmt      = "maze:%dx%d:%d"
)

var (
	// ErrDimensionTooLarge is returned when a request exceeds the configured maximum size.
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	// ErrNilLogger is returned when NewMazeService is given no logger.
	ErrNilLogger = errors.New("logger is required")
)

// MazeRequest describes the maze to generate.
type MazeRequest struct {
	Width     int
	Height    int
	Seed      *int64 // Seed is picked at random when nil.
	WithRooms bool   // WithRooms also returns the wall grid. Such requests bypass the cache.
}

// MazeResult is a generated maze. Generating again with the same dimensions and seed
// yields the same lines.
type MazeResult struct {
	ID     uuid.UUID
	Width  int
	Height int
	Seed   int64
	Lines  []string
	Rooms  [][]maze.Room
	Cached bool
}

// Options holds the limits a MazeService enforces. Non positive values fall back to defaults.
type Options struct {
	MaxWidth  int // Largest accepted width
	MaxHeight int // Largest accepted height
}

// MazeService generates mazes with Eller's algorithm and caches rendered pictures.
// It is safe for concurrent use; every request runs its own generator.
type MazeService struct {
	cache  i.MazeCache
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService. cache may be nil to disable caching.
func NewMazeService(cache i.MazeCache, logger i.Logger, opts *Options) (*MazeService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxWidth <= 0 {
		opts.MaxWidth = defaultMaxWidth
	}

	if opts.MaxHeight <= 0 {
		opts.MaxHeight = defaultMaxHeight
	}

	return &MazeService{
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate validates the request and returns the rendered maze, from cache when possible.
func (s *MazeService) Generate(ctx context.Context, req MazeRequest) (*MazeResult, error) {
	if err := s.validate(req.Width, req.Height); err != nil {
		return nil, err
	}

	seed := rand.Int63()
	if req.Seed != nil {
		seed = *req.Seed
	}

	result := &MazeResult{
		ID:     uuid.New(),
		Width:  req.Width,
		Height: req.Height,
		Seed:   seed,
	}

	if s.cache == nil || req.WithRooms {
		if err := s.render(result, req.WithRooms); err != nil {
			return nil, err
		}
		return result, nil
	}

	key := s.cacheKey(req.Width, req.Height, seed)
	if s.fromCache(ctx, key, result) {
		return result, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Locking %s: %s", key, err))
	} else {
		defer unlock()
		if s.fromCache(ctx, key, result) {
			return result, nil
		}
	}

	if err := s.render(result, false); err != nil {
		return nil, err
	}

	if err := s.cache.Store(ctx, key, result.Lines); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching %s: %s", key, err))
	}

	return result, nil
}

func (s *MazeService) validate(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, width, height)
	}

	if width > s.opts.MaxWidth || height > s.opts.MaxHeight {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrDimensionTooLarge, width, height, s.opts.MaxWidth, s.opts.MaxHeight)
	}

	return nil
}

func (s *MazeService) render(result *MazeResult, withRooms bool) error {
	opts := []maze.Option{maze.WithSeed(result.Seed)}

	var grid *maze.Grid
	if withRooms {
		grid = maze.NewGrid()
		opts = append(opts, maze.WithRowObserver(grid.Observe))
	}

	m, err := maze.New(result.Width, result.Height, opts...)
	if err != nil {
		return err
	}

	var lines maze.Lines
	if err := m.Generate(&lines); err != nil {
		s.logger.Error(fmt.Sprintf("Generating maze %s: %s", result.ID, err))
		return err
	}

	result.Lines = lines
	if grid != nil {
		result.Rooms = grid.Rooms()
	}

	s.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Seed=%d", result.ID, result.Width, result.Height, result.Seed))
	return nil
}

func (s *MazeService) fromCache(ctx context.Context, key string, result *MazeResult) bool {
	lines, found, err := s.cache.Fetch(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cache %s: %s", key, err))
		return false
	}

	if !found {
		return false
	}

	result.Lines = lines
	result.Cached = true
	return true
}

func (s *MazeService) cacheKey(width, height int, seed int64) string {
	return fmt.Sprintf(cacheKeyFmt, width, height, seed)
}
