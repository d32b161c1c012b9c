package model

import (
	"time"

	"github.com/samber/lo"
)

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateComplete   GameState = "complete"
)

// TurnKind is what a player did with a turn
type TurnKind string

const (
	TurnPlay TurnKind = "play"
	TurnSwap TurnKind = "swap"
	TurnPass TurnKind = "pass"
)

// TurnRecord is one entry of the game history
type TurnRecord struct {
	Turn     int
	PlayerID PlayerID
	Kind     TurnKind
	Move     Move // set for plays
	Swapped  int  // number of tiles exchanged
	Score    int
	At       time.Time
}

// Game is a single game in progress or finished
type Game struct {
	ID      GameID
	State   GameState
	Board   *Board
	Bag     *Bag
	Players []*GamePlayer

	// Turn management
	Turn           int // 0-indexed turn number
	CurrentIdx     int // index into Players of the player to move
	ScorelessTurns int // consecutive turns that scored nothing

	History []TurnRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player to move
func (g *Game) CurrentPlayer() *GamePlayer {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentIdx]
}

// Player looks up a player by ID
func (g *Game) Player(id PlayerID) (*GamePlayer, error) {
	p, ok := lo.Find(g.Players, func(p *GamePlayer) bool {
		return p.ID == id
	})
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// IsComplete returns true once the game has ended
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// Leader returns the highest-scoring player, the earliest seat winning ties
func (g *Game) Leader() *GamePlayer {
	if len(g.Players) == 0 {
		return nil
	}
	return lo.MaxBy(g.Players, func(a, b *GamePlayer) bool {
		return a.Score > b.Score
	})
}

// TotalScore returns the sum of all players' scores
func (g *Game) TotalScore() int {
	return lo.SumBy(g.Players, func(p *GamePlayer) int {
		return p.Score
	})
}
