package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabbler/internal/dependencies/clock"
	"github.com/mcoot/scrabbler/internal/dependencies/random"
	"github.com/mcoot/scrabbler/internal/services/board"
	"github.com/mcoot/scrabbler/internal/services/bot"
	"github.com/mcoot/scrabbler/internal/services/dictionary"
	"github.com/mcoot/scrabbler/internal/services/game"
	"github.com/mcoot/scrabbler/internal/services/scoring"
	"github.com/mcoot/scrabbler/internal/services/tilepool"
	"github.com/mcoot/scrabbler/internal/storage"
	"github.com/mcoot/scrabbler/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabbler/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	BoardService      *board.Service
	TilePoolService   *tilepool.Service
	BotService        *bot.Service
	GameController    *game.Controller

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is the path to the word list (optional)
	// If empty, LoadDictionary falls back to the word lists cached in storage
	WordsPath string
	// PartialsPath is the path to the partials list (optional)
	// If empty, partials are derived from the word list
	PartialsPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes every random choice reproducible when non-nil
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	scoringService := scoring.New()
	boardService := board.New(dictService, scoringService, logger)
	tilePoolService := tilepool.New(rnd, logger)
	botService := bot.NewService(bot.DefaultStrategies(boardService, rnd), clk, logger)
	gameController := game.NewController(boardService, tilePoolService, botService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		BoardService:      boardService,
		TilePoolService:   tilePoolService,
		BotService:        botService,
		GameController:    gameController,
	}
}

// LoadDictionary loads the lexicon from the configured files, or from storage
// when no word list path is given
func (a *App) LoadDictionary(ctx context.Context, wordsPath, partialsPath string) error {
	if wordsPath == "" {
		return a.DictionaryService.LoadFromStorage(ctx)
	}
	return a.DictionaryService.LoadFromFile(ctx, wordsPath, partialsPath)
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
