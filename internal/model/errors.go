package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrLetterMismatch  = errors.New("letter conflicts with tile already on the board")
	ErrNotStaged       = errors.New("position is not staged")

	// Validation errors
	ErrNothingStaged       = errors.New("no tiles are staged")
	ErrNoAbutment          = errors.New("play does not touch the existing tiles")
	ErrInconsistentAxis    = errors.New("staged tiles are not in a single row or column")
	ErrNonContiguous       = errors.New("staged tiles do not form a contiguous word")
	ErrWordNotInDictionary = errors.New("word not in dictionary")

	// Tile pool errors
	ErrTileNotInRack = errors.New("tile not in rack")
	ErrRackFull      = errors.New("rack is full")
	ErrBagEmpty      = errors.New("bag is empty")
	ErrEmptySwap     = errors.New("no tiles to swap")

	// Game errors
	ErrInvalidPlayerConfig = errors.New("invalid player configuration")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrGameComplete        = errors.New("game is already complete")
	ErrUnknownStrategy     = errors.New("unknown bot strategy")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
