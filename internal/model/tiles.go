package model

import "unicode"

// BlankSymbol is how a blank tile is written in racks and bags
const BlankSymbol = '*'

// Alphabet lists every tile symbol in canonical order, blank last
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ*"

var letterValues = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2,
	'H': 4, 'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1,
	'O': 1, 'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
	'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
}

// LetterValue returns the base score of a letter, 0 for anything that is not A-Z
func LetterValue(letter rune) int {
	return letterValues[unicode.ToUpper(letter)]
}

// StandardDistribution returns the tile counts used to fill a new bag
func StandardDistribution() map[rune]int {
	return map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3,
		'H': 2, 'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6,
		'O': 8, 'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4,
		'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
	}
}

// NormalizeLetter upper-cases a letter and checks it is A-Z
func NormalizeLetter(letter rune) (rune, error) {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return 0, ErrInvalidLetter
	}
	return upper, nil
}

// NormalizeSymbol is NormalizeLetter that also accepts the blank symbol
func NormalizeSymbol(symbol rune) (rune, error) {
	if symbol == BlankSymbol {
		return BlankSymbol, nil
	}
	return NormalizeLetter(symbol)
}

// Tile is a tile as it sits on the board. A blank carries the letter it
// stands for but is worth nothing.
type Tile struct {
	Letter rune
	Blank  bool
}

// NewTile creates a regular tile for the letter
func NewTile(letter rune) (Tile, error) {
	l, err := NormalizeLetter(letter)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Letter: l}, nil
}

// NewBlankTile creates a blank standing in for the letter
func NewBlankTile(letter rune) (Tile, error) {
	l, err := NormalizeLetter(letter)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Letter: l, Blank: true}, nil
}

// Value is the base score of the tile
func (t Tile) Value() int {
	if t.Blank {
		return 0
	}
	return LetterValue(t.Letter)
}

// RackSymbol is the symbol the tile occupies in a rack
func (t Tile) RackSymbol() rune {
	if t.Blank {
		return BlankSymbol
	}
	return t.Letter
}

// Placement is a tile staged at a position
type Placement struct {
	Position
	Tile Tile
}
