package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/eller-maze/maze"
)

func main() {
	width := flag.Int("width", 15, "number of columns")
	height := flag.Int("height", 15, "number of rows")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for reproducible mazes")
	flag.Parse()

	m, err := maze.New(*width, *height, maze.WithSeed(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while creating maze: %s\n", err)
		os.Exit(2)
	}

	if err := writeMaze(os.Stdout, m); err != nil {
		fmt.Fprintf(os.Stderr, "error while writing maze: %s\n", err)
		os.Exit(1)
	}
}

// writeMaze streams m to w through a buffer. Write errors usually surface on the final flush.
func writeMaze(w io.Writer, m *maze.EllerMaze) error {
	out := bufio.NewWriter(w)
	if err := m.Generate(maze.NewWriterSink(out)); err != nil {
		return err
	}
	return out.Flush()
}
