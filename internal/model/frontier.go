package model

import "slices"

// Frontier is the ordered set of empty positions at which a new play may
// begin or extend. Positions are kept sorted by row, then column, so that
// iteration order is deterministic.
type Frontier struct {
	positions []Position
}

// NewFrontier creates a frontier holding the given positions
func NewFrontier(seed ...Position) *Frontier {
	f := &Frontier{}
	for _, pos := range seed {
		f.Add(pos)
	}
	return f
}

// Add inserts a position, returning false if it was already present
func (f *Frontier) Add(pos Position) bool {
	i, found := slices.BinarySearchFunc(f.positions, pos, ComparePositions)
	if found {
		return false
	}
	f.positions = slices.Insert(f.positions, i, pos)
	return true
}

// Remove deletes a position, returning false if it was not present
func (f *Frontier) Remove(pos Position) bool {
	i, found := slices.BinarySearchFunc(f.positions, pos, ComparePositions)
	if !found {
		return false
	}
	f.positions = slices.Delete(f.positions, i, i+1)
	return true
}

// Contains reports whether the position is in the frontier
func (f *Frontier) Contains(pos Position) bool {
	_, found := slices.BinarySearchFunc(f.positions, pos, ComparePositions)
	return found
}

// Len returns the number of frontier positions
func (f *Frontier) Len() int {
	return len(f.positions)
}

// Positions returns a sorted copy of the frontier
func (f *Frontier) Positions() []Position {
	return slices.Clone(f.positions)
}
