package tilepool

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbler/internal/dependencies/mocks"
	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

func (s *ServiceSuite) rack(tiles string) *model.Rack {
	rack, err := model.RackFromString(tiles)
	s.Require().NoError(err)
	return rack
}

func (s *ServiceSuite) TestNewBagHasStandardDistribution() {
	bag := s.service.NewBag()

	s.Equal(98, bag.Len())
	s.Equal(1, s.random.ShuffleCalls)

	counts := make(map[rune]int)
	for _, t := range bag.Tiles {
		counts[t]++
	}
	s.Equal(12, counts['E'])
	s.Equal(1, counts['Z'])
	s.Equal(0, counts[model.BlankSymbol])
}

func (s *ServiceSuite) TestShuffleUsesRandom() {
	s.random.ShuffleFunc = func(n int, swap func(i, j int)) {
		swap(0, n-1)
	}
	bag := &model.Bag{Tiles: []rune("ABC")}

	s.service.Shuffle(bag)
	s.Equal("CBA", string(bag.Tiles))
}

func (s *ServiceSuite) TestDrawFillsRack() {
	bag := &model.Bag{Tiles: []rune("ABCDEFGHIJ")}
	rack := s.rack("XY")

	drawn := s.service.Draw(bag, rack)

	s.Equal("JIHGF", string(drawn))
	s.Equal(model.RackSize, rack.Len())
	s.Equal(5, bag.Len())
}

func (s *ServiceSuite) TestDrawStopsWhenBagEmpty() {
	bag := &model.Bag{Tiles: []rune("AB")}
	rack := model.NewRack()

	drawn := s.service.Draw(bag, rack)

	s.Len(drawn, 2)
	s.Equal(2, rack.Len())
	s.True(bag.IsEmpty())
}

func (s *ServiceSuite) TestDrawFullRack() {
	bag := &model.Bag{Tiles: []rune("AB")}
	rack := s.rack("ABCDEFG")

	s.Empty(s.service.Draw(bag, rack))
	s.Equal(2, bag.Len())
}

func (s *ServiceSuite) TestSwap() {
	bag := &model.Bag{Tiles: []rune("XYZ")}
	rack := s.rack("AABCDEF")

	drawn, err := s.service.Swap(bag, rack, []rune("aa"))
	s.Require().NoError(err)

	s.Equal("ZY", string(drawn))
	s.Equal("B C D E F Y Z", rack.String())
	// drawn first, then returned, then shuffled
	s.Equal("XAA", string(bag.Tiles))
	s.Equal(1, s.random.ShuffleCalls)
}

func (s *ServiceSuite) TestSwapTileNotHeld() {
	bag := &model.Bag{Tiles: []rune("XYZ")}
	rack := s.rack("ABCDEFG")

	_, err := s.service.Swap(bag, rack, []rune("AQ"))
	s.ErrorIs(err, model.ErrTileNotInRack)
	s.Equal("A B C D E F G", rack.String())
	s.Equal("XYZ", string(bag.Tiles))
	s.Equal(0, s.random.ShuffleCalls)
}

func (s *ServiceSuite) TestSwapCountsRepeats() {
	bag := &model.Bag{Tiles: []rune("XYZ")}
	rack := s.rack("ABCDEFG")

	_, err := s.service.Swap(bag, rack, []rune("AA"))
	s.ErrorIs(err, model.ErrTileNotInRack)
	s.Equal(1, rack.Count('A'))
}

func (s *ServiceSuite) TestSwapBagTooSmall() {
	bag := &model.Bag{Tiles: []rune("X")}
	rack := s.rack("ABCDEFG")

	_, err := s.service.Swap(bag, rack, []rune("AB"))
	s.ErrorIs(err, model.ErrBagEmpty)
	s.Equal(7, rack.Len())
	s.Equal(1, bag.Len())
}

func (s *ServiceSuite) TestSwapNothing() {
	bag := &model.Bag{Tiles: []rune("XYZ")}
	rack := s.rack("ABCDEFG")

	drawn, err := s.service.Swap(bag, rack, nil)
	s.ErrorIs(err, model.ErrEmptySwap)
	s.Empty(drawn)
	s.Equal(7, rack.Len())
	s.Equal(0, s.random.ShuffleCalls)
}

func (s *ServiceSuite) TestSwapBlank() {
	bag := &model.Bag{Tiles: []rune("XYZ")}
	rack := s.rack("ABCDEF*")

	_, err := s.service.Swap(bag, rack, []rune{model.BlankSymbol})
	s.Require().NoError(err)
	s.False(rack.Has(model.BlankSymbol))
	s.Equal("XY*", string(bag.Tiles))
}
