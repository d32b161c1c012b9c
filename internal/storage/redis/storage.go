package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/storage"
)

// pushBatchSize bounds the number of members sent in a single RPUSH
const pushBatchSize = 10000

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetWordList(ctx context.Context, list storage.WordList) ([]string, error) {
	key := wordListKey(list)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.LRange(ctx, key, 0, -1).Result()
}

func (s *Storage) SaveWordList(ctx context.Context, list storage.WordList, words []string) error {
	key := wordListKey(list)

	// Replace the list atomically, keeping word order
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	for start := 0; start < len(words); start += pushBatchSize {
		end := min(start+pushBatchSize, len(words))
		members := make([]interface{}, 0, end-start)
		for _, w := range words[start:end] {
			members = append(members, w)
		}
		pipe.RPush(ctx, key, members...)
	}

	if len(words) > 0 && s.cfg.WordListTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.WordListTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteWordList(ctx context.Context, list storage.WordList) error {
	return s.client.Del(ctx, wordListKey(list)).Err()
}
