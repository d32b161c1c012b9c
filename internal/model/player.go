package model

import "fmt"

// PlayerID uniquely identifies a player within a game
type PlayerID string

// PlayerConfig describes a seat at the table before the game starts
type PlayerConfig struct {
	Name     string
	CPU      bool
	Rackless bool   // places any letter without drawing tiles, e.g. to transcribe a real game
	Strategy string // bot strategy for CPU players, defaults to greedy
}

// Validate checks the configuration can be turned into a player
func (c PlayerConfig) Validate() error {
	if c.CPU && c.Rackless {
		return fmt.Errorf("%w: CPU player %q cannot be rackless", ErrInvalidPlayerConfig, c.Name)
	}
	if !c.CPU && c.Strategy != "" {
		return fmt.Errorf("%w: human player %q cannot have a strategy", ErrInvalidPlayerConfig, c.Name)
	}
	if c.CPU && c.Strategy != "" && !IsValidBotStrategy(c.Strategy) {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	return nil
}

// GamePlayer is a participant in a running game
type GamePlayer struct {
	ID       PlayerID
	Name     string
	CPU      bool
	Rackless bool
	Strategy string
	Rack     *Rack // nil for rackless players
	Score    int
}

// NewGamePlayer validates the configuration and creates the player
func NewGamePlayer(id PlayerID, cfg PlayerConfig) (*GamePlayer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &GamePlayer{
		ID:       id,
		Name:     cfg.Name,
		CPU:      cfg.CPU,
		Rackless: cfg.Rackless,
		Strategy: cfg.Strategy,
	}
	if p.CPU && p.Strategy == "" {
		p.Strategy = BotStrategyGreedy
	}
	if !p.Rackless {
		p.Rack = NewRack()
	}
	return p, nil
}
