package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/storage"
)

// Service answers exact-word and prefix queries against a sorted lexicon
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu       sync.RWMutex
	words    []string // sorted, upper case
	partials []string // sorted strict prefixes of words
	loaded   bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
	}
}

// LoadFromStorage loads the word lists from storage. A missing partials
// list is derived from the words.
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordList(ctx, storage.WordListWords)
	if err != nil {
		return err
	}
	partials, err := s.storage.GetWordList(ctx, storage.WordListPartials)
	if err != nil {
		if !errors.Is(err, model.ErrDictionaryNotLoaded) {
			return err
		}
		partials = nil
	}
	return s.LoadLists(words, partials)
}

// LoadFromFile loads the word list and, if partialsPath is not empty, the
// partials list (one word per line each). Both lists are mirrored to storage.
func (s *Service) LoadFromFile(ctx context.Context, wordsPath, partialsPath string) error {
	var words, partials []string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = readWordList(wordsPath)
		return err
	})
	if partialsPath != "" {
		g.Go(func() error {
			var err error
			partials, err = readWordList(partialsPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.LoadLists(words, partials); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Save to storage for future use
	if err := s.storage.SaveWordList(ctx, storage.WordListWords, s.words); err != nil {
		return err
	}
	return s.storage.SaveWordList(ctx, storage.WordListPartials, s.partials)
}

// LoadWords loads a word list and derives its partials (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.LoadLists(words, nil)
}

// LoadLists replaces the lexicon. A nil partials list is derived from the words.
func (s *Service) LoadLists(words, partials []string) error {
	normalizedWords := s.normalize(words, "words")
	if len(normalizedWords) == 0 {
		return fmt.Errorf("%w: word list is empty", model.ErrDictionaryNotLoaded)
	}

	var normalizedPartials []string
	if partials == nil {
		normalizedPartials = derivePartials(normalizedWords)
	} else {
		normalizedPartials = s.normalize(partials, "partials")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = normalizedWords
	s.partials = normalizedPartials
	s.loaded = true

	s.logger.Info("dictionary loaded",
		slog.Int("words", len(s.words)),
		slog.Int("partials", len(s.partials)),
	)
	return nil
}

// IsValidWord checks if a word exists in the dictionary.
// Words must be at least 2 characters.
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, found := slices.BinarySearch(s.words, strings.ToUpper(word))
	return found
}

// IsPromising reports whether the substring is a word or the prefix of one,
// by locating its insertion point in the sorted lists
func (s *Service) IsPromising(substring string) bool {
	sub := strings.ToUpper(substring)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	return hasPrefix(s.partials, sub) || hasPrefix(s.words, sub)
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// PartialCount returns the number of entries in the partials list
func (s *Service) PartialCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.partials)
}

// normalize upper-cases, trims, sorts and de-duplicates a list. Lookups
// depend on sort order, so unsorted input is sorted with a warning.
func (s *Service) normalize(list []string, name string) []string {
	result := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			result = append(result, w)
		}
	}
	if !slices.IsSorted(result) {
		s.logger.Warn("word list is not sorted, sorting in memory", slog.String("list", name))
		slices.Sort(result)
	}
	return slices.Compact(result)
}

// derivePartials returns every strict prefix of every word, sorted
func derivePartials(words []string) []string {
	seen := make(map[string]struct{})
	for _, w := range words {
		for i := 1; i < len(w); i++ {
			seen[w[:i]] = struct{}{}
		}
	}
	result := make([]string, 0, len(seen))
	for p := range seen {
		result = append(result, p)
	}
	slices.Sort(result)
	return result
}

func hasPrefix(list []string, prefix string) bool {
	i, _ := slices.BinarySearch(list, prefix)
	return i < len(list) && strings.HasPrefix(list[i], prefix)
}

func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsPromising(substring string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, wordsPath, partialsPath string) error
	LoadWords(words []string) error
	LoadLists(words, partials []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
