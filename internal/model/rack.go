package model

import (
	"strings"

	"github.com/samber/lo"
)

// RackSize is the number of tiles a rack holds when full
const RackSize = 7

// Rack is a player's hand, tracked as a count per symbol (A-Z plus blank)
type Rack struct {
	counts map[rune]int
	total  int
}

// NewRack creates an empty rack
func NewRack() *Rack {
	return &Rack{counts: make(map[rune]int, len(Alphabet))}
}

// RackFromString builds a rack from symbols such as "AEI*RST"
func RackFromString(s string) (*Rack, error) {
	r := NewRack()
	for _, symbol := range s {
		if err := r.Add(symbol); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add puts a tile symbol into the rack
func (r *Rack) Add(symbol rune) error {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return err
	}
	r.counts[s]++
	r.total++
	return nil
}

// Remove takes a tile symbol out of the rack
func (r *Rack) Remove(symbol rune) error {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return err
	}
	if r.counts[s] == 0 {
		return ErrTileNotInRack
	}
	r.counts[s]--
	if r.counts[s] == 0 {
		delete(r.counts, s)
	}
	r.total--
	return nil
}

// Has reports whether at least one of the symbol is held
func (r *Rack) Has(symbol rune) bool {
	return r.Count(symbol) > 0
}

// HasAll reports whether the rack holds every symbol, counting repeats
func (r *Rack) HasAll(symbols []rune) bool {
	needed := make(map[rune]int)
	for _, symbol := range symbols {
		s, err := NormalizeSymbol(symbol)
		if err != nil {
			return false
		}
		needed[s]++
	}
	for s, n := range needed {
		if r.counts[s] < n {
			return false
		}
	}
	return true
}

// Count returns how many of the symbol are held
func (r *Rack) Count(symbol rune) int {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return 0
	}
	return r.counts[s]
}

// Len returns the number of tiles held
func (r *Rack) Len() int {
	return r.total
}

// IsEmpty returns true if the rack holds no tiles
func (r *Rack) IsEmpty() bool {
	return r.total == 0
}

// IsFull returns true once the rack reaches RackSize
func (r *Rack) IsFull() bool {
	return r.total >= RackSize
}

// Tiles returns the held symbols in alphabet order, blanks last
func (r *Rack) Tiles() []rune {
	result := make([]rune, 0, r.total)
	for _, s := range Alphabet {
		for i := 0; i < r.counts[s]; i++ {
			result = append(result, s)
		}
	}
	return result
}

// Distinct returns each held symbol once, in alphabet order
func (r *Rack) Distinct() []rune {
	return lo.Uniq(r.Tiles())
}

// Clone returns an independent copy of the rack
func (r *Rack) Clone() *Rack {
	c := NewRack()
	for s, n := range r.counts {
		c.counts[s] = n
	}
	c.total = r.total
	return c
}

func (r *Rack) String() string {
	return strings.Join(lo.Map(r.Tiles(), func(s rune, _ int) string {
		return string(s)
	}), " ")
}
