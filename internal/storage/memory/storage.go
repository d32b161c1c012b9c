package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	lists map[storage.WordList][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		lists: make(map[storage.WordList][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetWordList(ctx context.Context, list storage.WordList) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lists[list]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return slices.Clone(words), nil
}

func (s *Storage) SaveWordList(ctx context.Context, list storage.WordList, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[list] = slices.Clone(words)
	return nil
}

func (s *Storage) DeleteWordList(ctx context.Context, list storage.WordList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, list)
	return nil
}
