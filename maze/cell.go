package maze

// Cell represents a single cell of a row produced by Eller's algorithm.
// It carries the set the cell currently belongs to and its two outgoing doors.
type Cell struct {
	SetID          int  // SetID identifies the connected component the cell belongs to.
	ConnectedEast  bool // ConnectedEast indicates an open passage to the cell on the right.
	ConnectedSouth bool // ConnectedSouth indicates an open passage to the cell below.
}

// Row is an ordered, fixed-length sequence of cells. Its length is the maze width.
type Row []Cell

// Clone returns a copy of the row that shares no memory with the original.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	copy(clone, r)
	return clone
}

// SetIDs returns the set identifier of every cell, in order.
func (r Row) SetIDs() []int {
	ids := make([]int, len(r))
	for i, cell := range r {
		ids[i] = cell.SetID
	}
	return ids
}

// merge moves every cell of oldID into newID.
func merge(oldID, newID int, row Row) {
	if oldID == newID {
		return
	}
	for i := range row {
		if row[i].SetID == oldID {
			row[i].SetID = newID
		}
	}
}
