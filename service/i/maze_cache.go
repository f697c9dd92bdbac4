package i

import "context"

// MazeCache stores rendered mazes by key.
type MazeCache interface {
	// Fetch returns the cached lines for key. found is false on a miss.
	Fetch(ctx context.Context, key string) (lines []string, found bool, err error)

	// Store saves the lines of a rendered maze under key.
	Store(ctx context.Context, key string, lines []string) error

	// Lock takes an exclusive lock on key and returns the function that releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
