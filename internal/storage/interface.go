package storage

import (
	"context"
)

// WordList names one of the stored lexicon lists
type WordList string

const (
	// WordListWords holds every legal word
	WordListWords WordList = "words"
	// WordListPartials holds every prefix of a legal word
	WordListPartials WordList = "partials"
)

// Storage defines the interface for caching lexicon word lists.
// Lists are returned in the order they were saved.
type Storage interface {
	GetWordList(ctx context.Context, list WordList) ([]string, error)
	SaveWordList(ctx context.Context, list WordList, words []string) error
	DeleteWordList(ctx context.Context, list WordList) error
}
