package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetWordList() {
	words := []string{"AA", "AB", "BA"}

	err := s.storage.SaveWordList(s.ctx, storage.WordListWords, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordList(s.ctx, storage.WordListWords)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetWordListNotLoaded() {
	_, err := s.storage.GetWordList(s.ctx, storage.WordListPartials)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestListsAreIndependent() {
	_ = s.storage.SaveWordList(s.ctx, storage.WordListWords, []string{"AT"})
	_ = s.storage.SaveWordList(s.ctx, storage.WordListPartials, []string{"A"})

	words, _ := s.storage.GetWordList(s.ctx, storage.WordListWords)
	partials, _ := s.storage.GetWordList(s.ctx, storage.WordListPartials)
	s.Equal([]string{"AT"}, words)
	s.Equal([]string{"A"}, partials)
}

func (s *StorageSuite) TestSaveCopiesInput() {
	words := []string{"AT", "TO"}
	_ = s.storage.SaveWordList(s.ctx, storage.WordListWords, words)
	words[0] = "XX"

	retrieved, _ := s.storage.GetWordList(s.ctx, storage.WordListWords)
	s.Equal([]string{"AT", "TO"}, retrieved)
}

func (s *StorageSuite) TestDeleteWordList() {
	_ = s.storage.SaveWordList(s.ctx, storage.WordListWords, []string{"AT"})

	err := s.storage.DeleteWordList(s.ctx, storage.WordListWords)
	s.Require().NoError(err)

	_, err = s.storage.GetWordList(s.ctx, storage.WordListWords)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
