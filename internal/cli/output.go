package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/scrabbler/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CheckResult:
		o.printCheckResult(v)
	case ReplayResult:
		o.printReplayResult(v)
	case MoveResult:
		o.printMoveResult(v)
	case GameSummary:
		o.printGameSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// WordCheck is the verdict for one word
type WordCheck struct {
	Word      string `json:"word"`
	Valid     bool   `json:"valid"`
	Promising bool   `json:"promising"`
}

// CheckResult lists word verdicts in argument order
type CheckResult struct {
	Words []WordCheck `json:"words"`
}

// Board is the display grid: letters, "+" for staged tiles, premium labels for empty squares
type Board struct {
	Cells    [][]string `json:"cells"`
	Rendered string     `json:"-"`
}

// PlayResult is one accepted play
type PlayResult struct {
	Word  string `json:"word"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Axis  string `json:"axis"`
	Score int    `json:"score"`
}

// ReplayResult is the board after a sequence of plays
type ReplayResult struct {
	Plays []PlayResult `json:"plays"`
	Total int          `json:"total"`
	Board Board        `json:"board"`
}

// TilePlacement is one tile of a suggested move
type TilePlacement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Blank  bool   `json:"blank,omitempty"`
}

// MoveResult is the outcome of a move search
type MoveResult struct {
	Found      bool            `json:"found"`
	Strategy   string          `json:"strategy"`
	Rack       string          `json:"rack"`
	Move       *PlayResult     `json:"move,omitempty"`
	Placements []TilePlacement `json:"placements,omitempty"`
	Board      Board           `json:"board"`
}

// TurnSummary is one line of a game's history
type TurnSummary struct {
	Turn    int    `json:"turn"`
	Player  string `json:"player"`
	Kind    string `json:"kind"`
	Word    string `json:"word,omitempty"`
	Swapped int    `json:"swapped,omitempty"`
	Score   int    `json:"score"`
}

// Standing is a player's final score
type Standing struct {
	Player   string `json:"player"`
	Strategy string `json:"strategy"`
	Score    int    `json:"score"`
}

// GameSummary describes a finished game
type GameSummary struct {
	ID        string        `json:"id"`
	State     string        `json:"state"`
	Turns     []TurnSummary `json:"turns"`
	Standings []Standing    `json:"standings"`
	Winner    string        `json:"winner,omitempty"`
	TilesLeft int           `json:"tiles_left"`
	Board     Board         `json:"board"`
}

func (o *Output) printCheckResult(c CheckResult) {
	for _, w := range c.Words {
		verdict := "not a word"
		if w.Valid {
			verdict = "valid"
		} else if w.Promising {
			verdict = "not a word (prefix of a word)"
		}
		fmt.Fprintf(o.w, "%s: %s\n", w.Word, verdict)
	}
}

func (o *Output) printPlay(p PlayResult) {
	fmt.Fprintf(o.w, "%s at (%d, %d) %s: %d points\n", p.Word, p.Row, p.Col, p.Axis, p.Score)
}

func (o *Output) printReplayResult(r ReplayResult) {
	for _, p := range r.Plays {
		o.printPlay(p)
	}
	fmt.Fprintf(o.w, "Total: %d points\n\n", r.Total)
	o.printBoard(r.Board)
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Fprintf(o.w, "Rack: %s\n", m.Rack)
	fmt.Fprintf(o.w, "Strategy: %s\n", m.Strategy)
	if !m.Found || m.Move == nil {
		fmt.Fprintln(o.w, "No legal move")
		return
	}
	o.printPlay(*m.Move)
	tiles := make([]string, 0, len(m.Placements))
	for _, p := range m.Placements {
		tiles = append(tiles, fmt.Sprintf("%s(%d, %d)", p.Letter, p.Row, p.Col))
	}
	fmt.Fprintf(o.w, "Tiles: %s\n\n", strings.Join(tiles, " "))
	o.printBoard(m.Board)
}

func (o *Output) printGameSummary(g GameSummary) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Tiles left: %d\n\n", g.TilesLeft)

	for _, t := range g.Turns {
		switch t.Kind {
		case "play":
			fmt.Fprintf(o.w, "%3d. %s played %s for %d\n", t.Turn+1, t.Player, t.Word, t.Score)
		case "swap":
			fmt.Fprintf(o.w, "%3d. %s swapped %d tiles\n", t.Turn+1, t.Player, t.Swapped)
		default:
			fmt.Fprintf(o.w, "%3d. %s passed\n", t.Turn+1, t.Player)
		}
	}

	fmt.Fprintln(o.w, "\nFinal Scores:")
	for _, s := range g.Standings {
		fmt.Fprintf(o.w, "  %s (%s): %d points\n", s.Player, model.BotStrategyDisplayName(s.Strategy), s.Score)
	}
	if g.Winner != "" {
		fmt.Fprintf(o.w, "Winner: %s\n", g.Winner)
	}
	fmt.Fprintln(o.w)
	o.printBoard(g.Board)
}

func (o *Output) printBoard(b Board) {
	fmt.Fprint(o.w, b.Rendered)
}
