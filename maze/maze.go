/*
Package maze provides a streaming generator for rectangular mazes built with Eller's algorithm.

The generator works one row at a time. Every cell of the current row belongs to a set, the
connected component it is part of so far. Each step randomly joins neighboring sets with east
doors, lets every set carve at least one south door, and derives the next row from those south
doors. The last row joins all remaining sets so the finished maze is a spanning tree: every cell
is reachable from every other one and there are no loops.

Only the current row is kept in memory. Each finished row is rendered as two lines of ASCII art
and handed to a LineSink, so arbitrarily tall mazes can be streamed to a writer. Callers that need
the whole structure can register a RowObserver such as Grid.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidDimensions is returned when the width or the height is not positive.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Rand is the source of randomness the generator draws from.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// RowObserver is notified with a copy of every finished row, top to bottom.
type RowObserver func(index int, row Row)

// Option configures an EllerMaze.
type Option func(*EllerMaze)

// WithSeed seeds the generator's own random source, making the output reproducible.
func WithSeed(seed int64) Option {
	return func(m *EllerMaze) {
		m.seed = seed
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the generator draw from r instead of a seeded source.
func WithRand(r Rand) Option {
	return func(m *EllerMaze) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithRowObserver registers an observer for finished rows.
func WithRowObserver(o RowObserver) Option {
	return func(m *EllerMaze) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// EllerMaze generates a maze of fixed dimensions row by row.
// It is not safe for concurrent use.
type EllerMaze struct {
	width     int // Width of the maze (number of columns)
	height    int // Height of the maze (number of rows)
	seed      int64
	rng       Rand
	nextSetID int
	observers []RowObserver
}

// New validates the dimensions and returns a generator ready to run.
// Without WithSeed or WithRand the generator is seeded from the clock.
func New(width, height int, opts ...Option) (*EllerMaze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	m := &EllerMaze{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		WithSeed(time.Now().UnixNano())(m)
	}

	return m, nil
}

// Width returns the number of columns.
func (m *EllerMaze) Width() int { return m.width }

// Height returns the number of rows.
func (m *EllerMaze) Height() int { return m.height }

// Seed returns the seed of the generator's own source. It is meaningless with WithRand.
func (m *EllerMaze) Seed() int64 { return m.seed }

// Generate runs the algorithm and writes 2*height+2 lines to sink: the north boundary,
// an east line and a south line per row, and the closing boundary.
// Every call is a new generation run; the random source is not reset.
func (m *EllerMaze) Generate(sink LineSink) error {
	m.nextSetID = 0

	if err := sink.WriteLine(NorthBoundary(m.width)); err != nil {
		return fmt.Errorf("writing north boundary: %w", err)
	}

	row := m.firstRow()
	for index := 0; index < m.height; index++ {
		if index > 0 {
			row = m.nextRow(row)
		}

		if index == m.height-1 {
			closeLastRow(row)
		} else {
			m.carveEast(row)
			m.carveSouth(row)
		}

		for _, observe := range m.observers {
			observe(index, row.Clone())
		}

		if err := sink.WriteLine(EastBoundary(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", index, err)
		}
		if err := sink.WriteLine(SouthBoundary(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", index, err)
		}
	}

	if err := sink.WriteLine(NorthBoundary(m.width)); err != nil {
		return fmt.Errorf("writing closing boundary: %w", err)
	}
	return nil
}

// mintSetID returns a set identifier that has not been used in this run.
func (m *EllerMaze) mintSetID() int {
	id := m.nextSetID
	m.nextSetID++
	return id
}

// firstRow puts every cell of the first row in its own set.
func (m *EllerMaze) firstRow() Row {
	row := make(Row, m.width)
	for i := range row {
		row[i].SetID = m.mintSetID()
	}
	return row
}

// nextRow derives the following row: cells under a south door keep the set above,
// the others start a new set. The given row is left untouched.
func (m *EllerMaze) nextRow(row Row) Row {
	next := make(Row, len(row))
	for i, cell := range row {
		if cell.ConnectedSouth {
			next[i].SetID = cell.SetID
		} else {
			next[i].SetID = m.mintSetID()
		}
	}
	return next
}

// coin flips a fair coin.
func (m *EllerMaze) coin() bool {
	return m.rng.Intn(2) == 1
}

// carveEast randomly joins neighboring cells of different sets.
// The cell right after a successful join is not tested again in the same sweep.
func (m *EllerMaze) carveEast(row Row) {
	for i := 0; i < len(row)-1; i++ {
		if m.coin() && row[i].SetID != row[i+1].SetID {
			row[i].ConnectedEast = true
			merge(row[i+1].SetID, row[i].SetID, row)
			i++
		}
	}
}

// carveSouth opens south doors at random, at least one per run of equal set ids.
func (m *EllerMaze) carveSouth(row Row) {
	for first := 0; first < len(row); {
		last := first + 1
		for last < len(row) && row[last].SetID == row[first].SetID {
			last++
		}

		carved := 0
		for i := first; i < last; i++ {
			if m.coin() {
				row[i].ConnectedSouth = true
				carved++
			}
		}
		if carved == 0 {
			row[first+m.rng.Intn(last-first)].ConnectedSouth = true
		}

		first = last
	}
}

// closeLastRow joins every remaining set of the last row.
func closeLastRow(row Row) {
	for i := 0; i < len(row)-1; i++ {
		if row[i].SetID != row[i+1].SetID {
			row[i].ConnectedEast = true
			merge(row[i+1].SetID, row[i].SetID, row)
		}
	}
}
