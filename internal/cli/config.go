package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/scrabbler/internal/factory"
	redisstorage "github.com/mcoot/scrabbler/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	WordsPath    string
	PartialsPath string
	Storage      string
	RedisURL     string
	Output       string
	Verbose      bool
	Seed         uint64
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		WordsPath:    getEnvOrDefault("SCRABBLER_WORDS", "dict.txt"),
		PartialsPath: os.Getenv("SCRABBLER_PARTIALS"),
		Storage:      getEnvOrDefault("SCRABBLER_STORAGE", factory.StorageTypeMemory),
		RedisURL:     getEnvOrDefault("SCRABBLER_REDIS_URL", redisstorage.DefaultConfig().URL),
		Output:       "text",
		Verbose:      false,
	}
}

// Logger builds the JSON logger the services log through
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig translates the CLI settings for the application factory
func (c *Config) FactoryConfig(logger *slog.Logger, seeded bool) factory.Config {
	fc := factory.Config{
		WordsPath:    c.WordsPath,
		PartialsPath: c.PartialsPath,
		Logger:       logger,
		StorageType:  c.Storage,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	if seeded {
		seed := c.Seed
		fc.Seed = &seed
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
