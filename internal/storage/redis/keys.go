package redis

import (
	"fmt"

	"github.com/mcoot/scrabbler/internal/storage"
)

// Key prefix for all lexicon data
const keyPrefix = "scrabbler"

// wordListKey returns the Redis key for a word list
func wordListKey(list storage.WordList) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, list)
}
