package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/storage"
	"github.com/mcoot/scrabbler/internal/storage/memory"
	"github.com/mcoot/scrabbler/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(name string, lines []string) string {
	path := filepath.Join(s.T().TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
	s.Require().NoError(err)
	return path
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
	s.False(s.service.IsValidWord("apple"))
	s.False(s.service.IsPromising("A"))
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"apple", "banana", "cherry"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadEmptyListFails() {
	err := s.service.LoadWords([]string{"", "  "})
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	_ = s.service.LoadWords([]string{"Apple", "BANANA"})

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("APPLE"))
	s.True(s.service.IsValidWord("Banana"))
	s.False(s.service.IsValidWord("grape"))
}

func (s *ServiceSuite) TestIsValidWordRequiresMinLength() {
	_ = s.service.LoadWords([]string{"a", "ab", "abc"})

	s.False(s.service.IsValidWord("a")) // stored but too short
	s.True(s.service.IsValidWord("ab"))
	s.True(s.service.IsValidWord("abc"))
}

func (s *ServiceSuite) TestUnsortedInputIsSorted() {
	_ = s.service.LoadWords([]string{"zebra", "apple", "mango", "apple"})

	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("zebra"))
	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("mango"))
}

func (s *ServiceSuite) TestIsPromising() {
	_ = s.service.LoadWords([]string{"HELLO", "HELP", "ZEBRA"})

	s.True(s.service.IsPromising("H"))
	s.True(s.service.IsPromising("hel"))
	s.True(s.service.IsPromising("HELLO"))
	s.True(s.service.IsPromising("ZEB"))
	s.False(s.service.IsPromising("HELLOS"))
	s.False(s.service.IsPromising("XYZ"))
	s.False(s.service.IsPromising("EL"))
}

func (s *ServiceSuite) TestDerivedPartials() {
	_ = s.service.LoadWords([]string{"CAT", "CAR"})

	// C, CA
	s.Equal(2, s.service.PartialCount())
}

func (s *ServiceSuite) TestExplicitPartialsAreUsed() {
	err := s.service.LoadLists([]string{"CAT"}, []string{"Q"})
	s.Require().NoError(err)

	s.True(s.service.IsPromising("Q"))
	s.True(s.service.IsPromising("CA")) // prefix of a word
	s.Equal(1, s.service.PartialCount())
}

func (s *ServiceSuite) TestLoadFromFile() {
	words := s.writeFile("dict.txt", []string{"apple", "banana", "", "cherry"})
	partials := s.writeFile("partials.txt", []string{"A", "AP", "B"})

	err := s.service.LoadFromFile(s.ctx, words, partials)
	s.Require().NoError(err)

	s.Equal(3, s.service.WordCount())
	s.Equal(3, s.service.PartialCount())
	s.True(s.service.IsValidWord("cherry"))

	stored, err := s.storage.GetWordList(s.ctx, storage.WordListWords)
	s.Require().NoError(err)
	s.Equal([]string{"APPLE", "BANANA", "CHERRY"}, stored)

	storedPartials, err := s.storage.GetWordList(s.ctx, storage.WordListPartials)
	s.Require().NoError(err)
	s.Equal([]string{"A", "AP", "B"}, storedPartials)
}

func (s *ServiceSuite) TestLoadFromFileWithoutPartials() {
	words := s.writeFile("dict.txt", []string{"CAT", "CAR"})

	err := s.service.LoadFromFile(s.ctx, words, "")
	s.Require().NoError(err)
	s.Equal(2, s.service.PartialCount())
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"), "")
	s.Error(err)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveWordList(s.ctx, storage.WordListWords, []string{"TEST", "WORD"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsValidWord("test"))
	s.True(s.service.IsPromising("WO"))
}

func (s *ServiceSuite) TestLoadFromEmptyStorage() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestTestLexicon() {
	err := s.service.LoadWords(testutil.TestWords())
	s.Require().NoError(err)

	s.True(s.service.IsValidWord("LEVIGATE"))
	s.False(s.service.IsValidWord("INTERLIE"))
}
