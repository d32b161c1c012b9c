package board

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/dictionary"
	"github.com/mcoot/scrabbler/internal/services/scoring"
)

// Service provides staging, validation and commit operations on a board
type Service struct {
	dictionary *dictionary.Service
	scoring    *scoring.Service
	logger     *slog.Logger
}

// New creates a new BoardService
func New(dictionary *dictionary.Service, scoring *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		scoring:    scoring,
		logger:     logger.With(slog.String("component", "board")),
	}
}

// NewBoard creates an empty board
func (s *Service) NewBoard() *model.Board {
	return model.NewBoard()
}

// PlaceTile stages a tile without consuming it from any rack
func (s *Service) PlaceTile(board *model.Board, tile model.Tile, pos model.Position) error {
	return board.Stage(tile, pos)
}

// PlaceTileFromRack stages a tile and removes it from the rack. Blank tiles
// consume the rack's blank.
func (s *Service) PlaceTileFromRack(board *model.Board, rack *model.Rack, tile model.Tile, pos model.Position) error {
	if !rack.Has(tile.RackSymbol()) {
		return fmt.Errorf("%w: %c", model.ErrTileNotInRack, tile.RackSymbol())
	}
	if err := board.Stage(tile, pos); err != nil {
		return err
	}
	return rack.Remove(tile.RackSymbol())
}

// WriteWord stages a word starting at start, skipping cells that already
// hold the matching letter. On failure nothing stays staged.
func (s *Service) WriteWord(board *model.Board, word string, start model.Position, axis model.Axis) error {
	return s.writeWord(board, nil, word, start, axis)
}

// WriteWordFromRack is WriteWord drawing each new tile from the rack. A
// letter the rack lacks is played with a blank if one is held.
func (s *Service) WriteWordFromRack(board *model.Board, rack *model.Rack, word string, start model.Position, axis model.Axis) error {
	return s.writeWord(board, rack, word, start, axis)
}

func (s *Service) writeWord(board *model.Board, rack *model.Rack, word string, start model.Position, axis model.Axis) error {
	var placed []model.Position
	var used []rune
	rollback := func() {
		for _, pos := range placed {
			_, _ = board.Unstage(pos)
		}
		for _, symbol := range used {
			_ = rack.Add(symbol)
		}
	}

	pos := start
	for _, r := range word {
		letter, err := model.NormalizeLetter(r)
		if err != nil {
			rollback()
			return err
		}
		if !pos.IsValid() {
			rollback()
			return fmt.Errorf("%w: %s runs off the board", model.ErrInvalidPosition, word)
		}

		if existing := board.Get(pos); existing != 0 {
			if existing != letter {
				rollback()
				return fmt.Errorf("%w: %c at %s", model.ErrLetterMismatch, existing, pos)
			}
			pos = pos.Step(axis, 1)
			continue
		}

		tile := model.Tile{Letter: letter}
		if rack != nil {
			switch {
			case rack.Has(letter):
			case rack.Has(model.BlankSymbol):
				tile.Blank = true
			default:
				rollback()
				return fmt.Errorf("%w: %c", model.ErrTileNotInRack, letter)
			}
		}

		if err := board.Stage(tile, pos); err != nil {
			rollback()
			return err
		}
		placed = append(placed, pos)
		if rack != nil {
			_ = rack.Remove(tile.RackSymbol())
			used = append(used, tile.RackSymbol())
		}
		pos = pos.Step(axis, 1)
	}
	return nil
}

// UnstageToRack clears every staged tile back into the rack
func (s *Service) UnstageToRack(board *model.Board, rack *model.Rack) []model.Tile {
	tiles := board.UnstageAll()
	for _, tile := range tiles {
		_ = rack.Add(tile.RackSymbol())
	}
	return tiles
}

// IsValidWord checks a word against the dictionary
func (s *Service) IsValidWord(word string) bool {
	return s.dictionary.IsValidWord(word)
}

// IsPromising reports whether some dictionary word starts with the substring
func (s *Service) IsPromising(substring string) bool {
	return s.dictionary.IsPromising(substring)
}

// IsLegalWord is true when no multi-letter word runs through the position
// along the axis, or when that word is in the dictionary
func (s *Service) IsLegalWord(board *model.Board, pos model.Position, axis model.Axis) bool {
	return s.checkWord(board, pos, axis) == nil
}

// Validate checks that the staged tiles form a legal play, returning the
// reason when they do not. It never mutates the board.
func (s *Service) Validate(board *model.Board) error {
	staged := board.Staged
	if len(staged) == 0 {
		return model.ErrNothingStaged
	}

	if len(staged) == 1 {
		pos := staged[0]
		if !board.Frontier.Contains(pos) {
			return model.ErrNoAbutment
		}
		if err := s.checkWord(board, pos, model.Across); err != nil {
			return err
		}
		return s.checkWord(board, pos, model.Down)
	}

	if !lo.SomeBy(staged, board.Frontier.Contains) {
		return model.ErrNoAbutment
	}

	axis, ok := scoring.StagedAxis(board)
	if !ok {
		return model.ErrInconsistentAxis
	}

	origin := staged[0]
	start, end, _ := board.Bounds(origin, axis)
	for _, pos := range staged {
		if c := pos.Coord(axis); c < start || c > end {
			return fmt.Errorf("%w: gap before %s", model.ErrNonContiguous, pos)
		}
	}

	if err := s.checkWord(board, origin, axis); err != nil {
		return err
	}
	for _, pos := range staged {
		if err := s.checkWord(board, pos, axis.Orthogonal()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkWord(board *model.Board, pos model.Position, axis model.Axis) error {
	word, ok := board.WordThrough(pos, axis)
	if !ok {
		return nil
	}
	if !s.dictionary.IsValidWord(word) {
		return fmt.Errorf("%w: %s", model.ErrWordNotInDictionary, word)
	}
	return nil
}

// Score returns the value of the staged tiles without validating them
func (s *Service) Score(board *model.Board) int {
	return s.scoring.Score(board)
}

// Submit validates, scores and commits the staged tiles. A rejected play
// returns the reason and leaves the board untouched.
func (s *Service) Submit(board *model.Board) (int, error) {
	if err := s.Validate(board); err != nil {
		s.logger.Warn("play rejected",
			slog.Int("staged", len(board.Staged)),
			slog.String("reason", err.Error()),
		)
		return 0, err
	}

	score := s.scoring.Score(board)
	placed := len(board.Staged)
	board.Commit()

	s.logger.Info("play accepted",
		slog.Int("tiles", placed),
		slog.Int("score", score),
		slog.Int("frontier", board.Frontier.Len()),
	)
	return score, nil
}

// Tokens returns the display token of every cell: the letter (lower case
// for blanks) with a trailing "+" while staged, or the premium label if empty
func (s *Service) Tokens(board *model.Board) [model.BoardSize][model.BoardSize]string {
	var grid [model.BoardSize][model.BoardSize]string
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			space := board.Space(pos)
			if space.IsEmpty() {
				grid[row][col] = model.PremiumLabel(row, col)
				continue
			}
			letter := space.Letter
			if space.Blank {
				letter = unicode.ToLower(letter)
			}
			token := string(letter)
			if board.IsStaged(pos) {
				token += "+"
			}
			grid[row][col] = token
		}
	}
	return grid
}

// Render draws the board as text with row and column numbers
func (s *Service) Render(board *model.Board) string {
	grid := s.Tokens(board)

	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(&sb, " %2d", col)
	}
	sb.WriteString("\n")
	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 0; col < model.BoardSize; col++ {
			fmt.Fprintf(&sb, " %-2s", grid[row][col])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard() *model.Board
	PlaceTile(board *model.Board, tile model.Tile, pos model.Position) error
	PlaceTileFromRack(board *model.Board, rack *model.Rack, tile model.Tile, pos model.Position) error
	WriteWord(board *model.Board, word string, start model.Position, axis model.Axis) error
	WriteWordFromRack(board *model.Board, rack *model.Rack, word string, start model.Position, axis model.Axis) error
	UnstageToRack(board *model.Board, rack *model.Rack) []model.Tile
	IsValidWord(word string) bool
	IsPromising(substring string) bool
	IsLegalWord(board *model.Board, pos model.Position, axis model.Axis) bool
	Validate(board *model.Board) error
	Score(board *model.Board) int
	Submit(board *model.Board) (int, error)
	Render(board *model.Board) string
}

var _ ServiceInterface = (*Service)(nil)
