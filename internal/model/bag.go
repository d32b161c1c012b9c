package model

// Bag is the reservoir racks draw from. Tiles are drawn from the end of the slice.
type Bag struct {
	Tiles []rune
}

// NewBag fills a bag from a distribution, in alphabet order. Callers shuffle it.
func NewBag(distribution map[rune]int) *Bag {
	b := &Bag{}
	for _, s := range Alphabet {
		for i := 0; i < distribution[s]; i++ {
			b.Tiles = append(b.Tiles, s)
		}
	}
	return b
}

// Len returns the number of tiles left
func (b *Bag) Len() int {
	return len(b.Tiles)
}

// IsEmpty returns true if no tiles are left
func (b *Bag) IsEmpty() bool {
	return len(b.Tiles) == 0
}

// Draw removes and returns the last tile
func (b *Bag) Draw() (rune, error) {
	if b.IsEmpty() {
		return 0, ErrBagEmpty
	}
	last := len(b.Tiles) - 1
	tile := b.Tiles[last]
	b.Tiles = b.Tiles[:last]
	return tile, nil
}

// Return puts tiles back into the bag. The bag should be shuffled afterwards.
func (b *Bag) Return(symbols ...rune) {
	b.Tiles = append(b.Tiles, symbols...)
}
