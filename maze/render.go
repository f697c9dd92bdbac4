package maze

import "strings"

// Wall segments used when drawing a maze. Each cell is two characters wide.
const (
	corner     = "+"
	westWall   = "|"
	closedTop  = "--+"
	openTop    = "  +"
	openFloor  = "   "
	closedEast = "  |"
	openEast   = "   "
)

// NorthBoundary draws the closed boundary above the first row and below the last one.
func NorthBoundary(width int) string {
	return corner + strings.Repeat(closedTop, width)
}

// EastBoundary draws the cells of a row and the walls between them.
func EastBoundary(row Row) string {
	var b strings.Builder
	b.WriteString(westWall)
	for _, cell := range row {
		if cell.ConnectedEast {
			b.WriteString(openEast)
		} else {
			b.WriteString(closedEast)
		}
	}
	return b.String()
}

// SouthBoundary draws the floor of a row. A segment stays open between two cells that
// both carved south and are joined by an east door, so open areas look contiguous.
// The row must not be empty.
func SouthBoundary(row Row) string {
	var b strings.Builder
	b.WriteString(corner)
	for i := 0; i < len(row)-1; i++ {
		switch {
		case row[i].ConnectedSouth && row[i+1].ConnectedSouth && row[i].ConnectedEast:
			b.WriteString(openFloor)
		case !row[i].ConnectedSouth:
			b.WriteString(closedTop)
		default:
			b.WriteString(openTop)
		}
	}

	if row[len(row)-1].ConnectedSouth {
		b.WriteString(openTop)
	} else {
		b.WriteString(closedTop)
	}
	return b.String()
}
