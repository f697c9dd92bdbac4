package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/beka-birhanu/eller-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClosedPipe = errors.New("closed pipe")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) {
	return 0, errClosedPipe
}

func TestWriteMaze(t *testing.T) {
	t.Run("writes every line", func(t *testing.T) {
		m, err := maze.New(4, 3, maze.WithSeed(6))
		require.NoError(t, err)

		var out strings.Builder
		require.NoError(t, writeMaze(&out, m))
		assert.Len(t, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), 2*3+2)
	})

	t.Run("reports errors surfaced by the flush", func(t *testing.T) {
		// A small maze fits in the buffer, so the writer is first touched by Flush.
		m, err := maze.New(2, 2, maze.WithSeed(6))
		require.NoError(t, err)

		assert.ErrorIs(t, writeMaze(closedWriter{}, m), errClosedPipe)
	})
}
