package model

// Premium squares: T triple word, D double word, t triple letter,
// d double letter, . plain
var premiumLayout = [BoardSize]string{
	"T..d...T...d..T",
	".D...t...t...D.",
	"..D...d.d...D..",
	"d..D...d...D..d",
	"....D.....D....",
	".t...t...t...t.",
	"..d...d.d...d..",
	"T..d...D...d..T",
	"..d...d.d...d..",
	".t...t...t...t.",
	"....D.....D....",
	"d..D...d...D..d",
	"..D...d.d...D..",
	".D...t...t...D.",
	"T..d...T...d..T",
}

// premiumAt returns the letter and word multipliers of a square
func premiumAt(row, col int) (letterMult, wordMult int) {
	switch premiumLayout[row][col] {
	case 'T':
		return 1, 3
	case 'D':
		return 1, 2
	case 't':
		return 3, 1
	case 'd':
		return 2, 1
	default:
		return 1, 1
	}
}

// PremiumLabel returns the two-letter label of an empty square ("tw", "dl", "--")
func PremiumLabel(row, col int) string {
	switch premiumLayout[row][col] {
	case 'T':
		return "tw"
	case 'D':
		return "dw"
	case 't':
		return "tl"
	case 'd':
		return "dl"
	default:
		return "--"
	}
}
