package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabbler/internal/dependencies/clock"
	"github.com/mcoot/scrabbler/internal/dependencies/random"
	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
	"github.com/mcoot/scrabbler/internal/services/bot"
	"github.com/mcoot/scrabbler/internal/services/tilepool"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
	// MaxPlayers is the number of seats at a table
	MaxPlayers = 4
)

// Controller runs the turn loop of a game
type Controller struct {
	boards *board.Service
	tiles  *tilepool.Service
	bots   *bot.Service
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a new GameController
func NewController(
	boards *board.Service,
	tiles *tilepool.Service,
	bots *bot.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boards: boards,
		tiles:  tiles,
		bots:   bots,
		clock:  clock,
		random: random,
		logger: logger.With(slog.String("component", "game")),
	}
}

// CreateGame seats the configured players, fills a bag and deals every
// racked player a full rack
func (c *Controller) CreateGame(configs []model.PlayerConfig) (*model.Game, error) {
	if len(configs) == 0 {
		return nil, model.ErrInsufficientPlayers
	}
	if len(configs) > MaxPlayers {
		return nil, fmt.Errorf("%w: at most %d players", model.ErrInvalidPlayerConfig, MaxPlayers)
	}

	players := make([]*model.GamePlayer, 0, len(configs))
	for i, cfg := range configs {
		if cfg.Name == "" {
			cfg.Name = fmt.Sprintf("Player %d", i+1)
		}
		p, err := model.NewGamePlayer(model.PlayerID(fmt.Sprintf("p%d", i+1)), cfg)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		State:     model.GameStateInProgress,
		Board:     c.boards.NewBoard(),
		Bag:       c.tiles.NewBag(),
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, p := range players {
		if p.Rack != nil {
			c.tiles.Draw(game.Bag, p.Rack)
		}
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(players)),
		slog.Int("bag", game.Bag.Len()),
	)
	return game, nil
}

// PlayTiles stages the placements for the player and submits them. Racked
// players must hold every tile. A rejected play is returned to the rack and
// the turn does not advance.
func (c *Controller) PlayTiles(game *model.Game, playerID model.PlayerID, placements []model.Placement) (*model.TurnRecord, error) {
	player, err := c.playerToMove(game, playerID)
	if err != nil {
		return nil, err
	}

	for _, p := range placements {
		if player.Rack == nil {
			err = c.boards.PlaceTile(game.Board, p.Tile, p.Position)
		} else {
			err = c.boards.PlaceTileFromRack(game.Board, player.Rack, p.Tile, p.Position)
		}
		if err != nil {
			c.takeBack(game, player)
			return nil, err
		}
	}
	return c.commit(game, player)
}

// PlayWord writes the word from start along axis, reusing tiles already on
// the board, and submits it
func (c *Controller) PlayWord(game *model.Game, playerID model.PlayerID, word string, start model.Position, axis model.Axis) (*model.TurnRecord, error) {
	player, err := c.playerToMove(game, playerID)
	if err != nil {
		return nil, err
	}

	if player.Rack == nil {
		err = c.boards.WriteWord(game.Board, word, start, axis)
	} else {
		err = c.boards.WriteWordFromRack(game.Board, player.Rack, word, start, axis)
	}
	if err != nil {
		return nil, err
	}
	return c.commit(game, player)
}

// Swap exchanges rack tiles for new ones from the bag
func (c *Controller) Swap(game *model.Game, playerID model.PlayerID, symbols []rune) (*model.TurnRecord, error) {
	player, err := c.playerToMove(game, playerID)
	if err != nil {
		return nil, err
	}
	if player.Rack == nil {
		return nil, fmt.Errorf("%w: rackless player %q cannot swap", model.ErrInvalidPlayerConfig, player.Name)
	}

	if _, err := c.tiles.Swap(game.Bag, player.Rack, symbols); err != nil {
		return nil, err
	}
	return c.finishTurn(game, player, model.TurnRecord{Kind: model.TurnSwap, Swapped: len(symbols)}), nil
}

// Pass ends the player's turn without playing
func (c *Controller) Pass(game *model.Game, playerID model.PlayerID) (*model.TurnRecord, error) {
	player, err := c.playerToMove(game, playerID)
	if err != nil {
		return nil, err
	}
	return c.finishTurn(game, player, model.TurnRecord{Kind: model.TurnPass}), nil
}

// PlayCPUTurn lets the CPU player to move pick and make its play. With no
// legal play it swaps its whole rack while the bag can cover it, and passes
// otherwise.
func (c *Controller) PlayCPUTurn(ctx context.Context, game *model.Game) (*model.TurnRecord, error) {
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	player := game.CurrentPlayer()
	if !player.CPU {
		return nil, fmt.Errorf("%w: %s is not a CPU player", model.ErrNotPlayerTurn, player.Name)
	}

	move, err := c.bots.FindMove(ctx, player.Strategy, game.Board, player.Rack)
	if err != nil {
		return nil, err
	}

	if move.Found() {
		return c.PlayTiles(game, player.ID, move.Placements)
	}
	if game.Bag.Len() >= model.RackSize && !player.Rack.IsEmpty() {
		return c.Swap(game, player.ID, player.Rack.Tiles())
	}
	return c.Pass(game, player.ID)
}

// PlayCPUTurns plays CPU turns until a human is to move or the game ends
func (c *Controller) PlayCPUTurns(ctx context.Context, game *model.Game) ([]model.TurnRecord, error) {
	var records []model.TurnRecord
	for !game.IsComplete() && game.CurrentPlayer().CPU {
		record, err := c.PlayCPUTurn(ctx, game)
		if err != nil {
			return records, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// Suggest returns the best play for a player. Rackless players pass the
// tiles they hold in rack; racked players may pass nil to use their own.
func (c *Controller) Suggest(ctx context.Context, game *model.Game, playerID model.PlayerID, rack *model.Rack) (model.Move, error) {
	player, err := game.Player(playerID)
	if err != nil {
		return model.NoMove(), err
	}
	if rack == nil {
		rack = player.Rack
	}
	if rack == nil {
		return model.NoMove(), fmt.Errorf("%w: rackless player %q needs tiles to suggest for", model.ErrTileNotInRack, player.Name)
	}
	return c.bots.Suggest(ctx, game.Board, rack)
}

func (c *Controller) playerToMove(game *model.Game, playerID model.PlayerID) (*model.GamePlayer, error) {
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	player, err := game.Player(playerID)
	if err != nil {
		return nil, err
	}
	if game.CurrentPlayer().ID != playerID {
		return nil, model.ErrNotPlayerTurn
	}
	return player, nil
}

func (c *Controller) commit(game *model.Game, player *model.GamePlayer) (*model.TurnRecord, error) {
	placements := game.Board.StagedPlacements()
	move := describePlay(game.Board, placements)

	score, err := c.boards.Submit(game.Board)
	if err != nil {
		c.takeBack(game, player)
		return nil, err
	}
	move.Score = score

	player.Score += score
	if player.Rack != nil {
		c.tiles.Draw(game.Bag, player.Rack)
	}
	return c.finishTurn(game, player, model.TurnRecord{Kind: model.TurnPlay, Move: move, Score: score}), nil
}

// takeBack clears the staged tiles, returning them to the player's rack
func (c *Controller) takeBack(game *model.Game, player *model.GamePlayer) {
	if player.Rack == nil {
		game.Board.UnstageAll()
		return
	}
	c.boards.UnstageToRack(game.Board, player.Rack)
}

func (c *Controller) finishTurn(game *model.Game, player *model.GamePlayer, record model.TurnRecord) *model.TurnRecord {
	now := c.clock.Now()
	record.Turn = game.Turn
	record.PlayerID = player.ID
	record.At = now
	game.History = append(game.History, record)

	if record.Score > 0 {
		game.ScorelessTurns = 0
	} else {
		game.ScorelessTurns++
	}

	game.Turn++
	game.CurrentIdx = (game.CurrentIdx + 1) % len(game.Players)
	game.UpdatedAt = now

	switch {
	case game.Bag.IsEmpty() && player.Rack != nil && player.Rack.IsEmpty():
		c.complete(game, "rack emptied")
	case game.ScorelessTurns >= 2*len(game.Players):
		c.complete(game, "scoreless turns")
	}

	c.logger.Debug("turn finished",
		slog.String("game_id", string(game.ID)),
		slog.String("player", player.Name),
		slog.String("kind", string(record.Kind)),
		slog.Int("score", record.Score),
	)
	return &record
}

func (c *Controller) complete(game *model.Game, reason string) {
	game.State = model.GameStateComplete
	leader := game.Leader()
	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", reason),
		slog.Int("turns", game.Turn),
		slog.String("leader", leader.Name),
		slog.Int("leader_score", leader.Score),
	)
}

// describePlay names the main word of the staged tiles, before commit
func describePlay(b *model.Board, placements []model.Placement) model.Move {
	move := model.Move{Kind: model.MovePlay, Placements: placements}
	if len(placements) == 0 {
		return move
	}

	origin := placements[0].Position
	axes := []model.Axis{model.Across, model.Down}
	if len(placements) > 1 && placements[1].Row != origin.Row {
		axes = []model.Axis{model.Down}
	}
	for _, axis := range axes {
		if word, ok := b.WordThrough(origin, axis); ok {
			start, _, _ := b.Bounds(origin, axis)
			move.Word = word
			move.Start = model.LineAt(origin, axis, start)
			move.Axis = axis
			break
		}
	}
	return move
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(configs []model.PlayerConfig) (*model.Game, error)
	PlayTiles(game *model.Game, playerID model.PlayerID, placements []model.Placement) (*model.TurnRecord, error)
	PlayWord(game *model.Game, playerID model.PlayerID, word string, start model.Position, axis model.Axis) (*model.TurnRecord, error)
	Swap(game *model.Game, playerID model.PlayerID, symbols []rune) (*model.TurnRecord, error)
	Pass(game *model.Game, playerID model.PlayerID) (*model.TurnRecord, error)
	PlayCPUTurn(ctx context.Context, game *model.Game) (*model.TurnRecord, error)
	PlayCPUTurns(ctx context.Context, game *model.Game) ([]model.TurnRecord, error)
	Suggest(ctx context.Context, game *model.Game, playerID model.PlayerID, rack *model.Rack) (model.Move, error)
}

var _ ControllerInterface = (*Controller)(nil)
