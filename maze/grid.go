package maze

import "github.com/spakin/disjoint"

// Room is a cell of an assembled maze described by its four walls.
type Room struct {
	NorthWall bool `json:"north_wall"` // NorthWall indicates whether there is a wall on the north side of the room.
	SouthWall bool `json:"south_wall"` // SouthWall indicates whether there is a wall on the south side of the room.
	EastWall  bool `json:"east_wall"`  // EastWall indicates whether there is a wall on the east side of the room.
	WestWall  bool `json:"west_wall"`  // WestWall indicates whether there is a wall on the west side of the room.
}

// CellPosition represents the position of a room in the grid.
type CellPosition struct {
	Row int // Row index of the room
	Col int // Column index of the room
}

// Grid assembles the rows of a generation run into a full wall grid.
// Register its Observe method with WithRowObserver. Rows must arrive top to bottom;
// an observation of row 0 starts a new grid.
type Grid struct {
	rooms [][]Room
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Observe converts a finished row into rooms and appends it to the grid.
func (g *Grid) Observe(index int, row Row) {
	if index == 0 {
		g.rooms = nil
	}

	var above []Room
	if len(g.rooms) > 0 {
		above = g.rooms[len(g.rooms)-1]
	}

	rooms := make([]Room, len(row))
	for col, cell := range row {
		rooms[col] = Room{
			NorthWall: above == nil || above[col].SouthWall,
			SouthWall: !cell.ConnectedSouth,
			EastWall:  !cell.ConnectedEast || col == len(row)-1,
			WestWall:  col == 0 || !row[col-1].ConnectedEast,
		}
	}
	g.rooms = append(g.rooms, rooms)
}

// Rooms returns the assembled rooms indexed by row then column.
func (g *Grid) Rooms() [][]Room {
	return g.rooms
}

// Height returns the number of rows observed so far.
func (g *Grid) Height() int {
	return len(g.rooms)
}

// Width returns the number of columns, or 0 for an empty grid.
func (g *Grid) Width() int {
	if len(g.rooms) == 0 {
		return 0
	}
	return len(g.rooms[0])
}

// IsOpen reports whether a passage leads from one room to an adjacent one.
func (g *Grid) IsOpen(from, to CellPosition) bool {
	if !g.inBound(from) || !g.inBound(to) {
		return false
	}

	room := g.rooms[from.Row][from.Col]
	switch {
	case to.Row == from.Row-1 && to.Col == from.Col:
		return !room.NorthWall
	case to.Row == from.Row+1 && to.Col == from.Col:
		return !room.SouthWall
	case to.Row == from.Row && to.Col == from.Col+1:
		return !room.EastWall
	case to.Row == from.Row && to.Col == from.Col-1:
		return !room.WestWall
	default:
		return false
	}
}

// Passages counts the open doors between rooms.
func (g *Grid) Passages() int {
	count := 0
	for r, rooms := range g.rooms {
		for c := range rooms {
			if g.IsOpen(CellPosition{r, c}, CellPosition{r, c + 1}) {
				count++
			}
			if g.IsOpen(CellPosition{r, c}, CellPosition{r + 1, c}) {
				count++
			}
		}
	}
	return count
}

// Connected reports whether every room can be reached from every other one.
func (g *Grid) Connected() bool {
	if g.Height() == 0 {
		return false
	}

	reaches, _ := g.reach()
	root := reaches[0][0].Find()
	for _, row := range reaches {
		for _, element := range row {
			if element.Find() != root {
				return false
			}
		}
	}
	return true
}

// IsPerfect reports whether the grid is a spanning tree: connected and without loops.
func (g *Grid) IsPerfect() bool {
	_, loops := g.reach()
	return loops == 0 && g.Connected()
}

// reach gives every room an element in a set of reachable rooms and unions the rooms
// joined by each open east or south passage. A passage between rooms that already
// reach each other closes a loop.
func (g *Grid) reach() (reaches [][]*disjoint.Element, loops int) {
	reaches = make([][]*disjoint.Element, len(g.rooms))
	for r, rooms := range g.rooms {
		reaches[r] = make([]*disjoint.Element, len(rooms))
		for c := range rooms {
			reaches[r][c] = disjoint.NewElement()
		}
	}

	join := func(from, to CellPosition) {
		if !g.IsOpen(from, to) {
			return
		}
		a, b := reaches[from.Row][from.Col], reaches[to.Row][to.Col]
		if a.Find() == b.Find() {
			loops++
			return
		}
		disjoint.Union(a, b)
	}

	for r, rooms := range g.rooms {
		for c := range rooms {
			join(CellPosition{r, c}, CellPosition{r, c + 1})
			join(CellPosition{r, c}, CellPosition{r + 1, c})
		}
	}
	return reaches, loops
}

func (g *Grid) inBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height() && pos.Col >= 0 && pos.Col < len(g.rooms[pos.Row])
}
