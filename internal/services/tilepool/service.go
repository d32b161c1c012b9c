package tilepool

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabbler/internal/dependencies/random"
	"github.com/mcoot/scrabbler/internal/model"
)

// Service manages the bag and the racks that draw from it
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new TilePoolService
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger.With(slog.String("component", "tilepool")),
	}
}

// NewBag creates a shuffled bag holding the standard distribution
func (s *Service) NewBag() *model.Bag {
	bag := model.NewBag(model.StandardDistribution())
	s.Shuffle(bag)
	return bag
}

// Shuffle randomizes the order tiles are drawn in
func (s *Service) Shuffle(bag *model.Bag) {
	s.random.Shuffle(bag.Len(), func(i, j int) {
		bag.Tiles[i], bag.Tiles[j] = bag.Tiles[j], bag.Tiles[i]
	})
}

// Draw fills the rack up to RackSize, or until the bag runs out, and returns
// the tiles drawn
func (s *Service) Draw(bag *model.Bag, rack *model.Rack) []rune {
	var drawn []rune
	for !rack.IsFull() && !bag.IsEmpty() {
		symbol, _ := bag.Draw()
		_ = rack.Add(symbol)
		drawn = append(drawn, symbol)
	}
	return drawn
}

// Swap exchanges the given rack tiles for new ones from the bag. Replacements
// are drawn before the old tiles go back, then the bag is reshuffled. The
// swap is rejected without changes if any tile is not held or the bag cannot
// cover it.
func (s *Service) Swap(bag *model.Bag, rack *model.Rack, symbols []rune) ([]rune, error) {
	if len(symbols) == 0 {
		return nil, model.ErrEmptySwap
	}
	if !rack.HasAll(symbols) {
		return nil, fmt.Errorf("%w: %s", model.ErrTileNotInRack, string(symbols))
	}
	if bag.Len() < len(symbols) {
		return nil, fmt.Errorf("%w: %d tiles left, %d requested", model.ErrBagEmpty, bag.Len(), len(symbols))
	}

	returned := make([]rune, 0, len(symbols))
	for _, symbol := range symbols {
		_ = rack.Remove(symbol)
		normalized, _ := model.NormalizeSymbol(symbol)
		returned = append(returned, normalized)
	}
	drawn := s.Draw(bag, rack)
	bag.Return(returned...)
	s.Shuffle(bag)

	s.logger.Debug("tiles swapped",
		slog.Int("count", len(returned)),
		slog.Int("bag", bag.Len()),
	)
	return drawn, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBag() *model.Bag
	Shuffle(bag *model.Bag)
	Draw(bag *model.Bag, rack *model.Rack) []rune
	Swap(bag *model.Bag, rack *model.Rack, symbols []rune) ([]rune, error)
}

var _ ServiceInterface = (*Service)(nil)
