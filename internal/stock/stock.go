// Package stock implements the draw pile and the discard pile beside it.
package stock

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/rules"
)

// ErrNoCardsRemain is returned when both the draw and discard piles are empty
var ErrNoCardsRemain = fmt.Errorf("no cards remain: %w", rules.ErrEmptySource)

// Stock is the draw pile and discard pile pair. The top of each pile is
// the end of its slice.
type Stock struct {
	draw    []card.Card
	discard []card.Card
}

// New returns a stock whose draw pile holds cards, last card on top
func New(cards []card.Card) *Stock {
	return &Stock{draw: append([]card.Card(nil), cards...)}
}

// DrawToDiscard turns the top draw card onto the discard pile. When the
// draw pile is empty the discard pile is turned over to form a new draw
// pile first.
func (s *Stock) DrawToDiscard() error {
	if len(s.draw)+len(s.discard) == 0 {
		return ErrNoCardsRemain
	}

	if len(s.draw) == 0 {
		recycled := make([]card.Card, len(s.discard))
		for i, c := range s.discard {
			recycled[len(s.discard)-1-i] = c
		}
		s.draw = recycled
		s.discard = nil
	}

	top := s.draw[len(s.draw)-1]
	s.draw = s.draw[:len(s.draw)-1]
	s.discard = append(s.discard, top)
	return nil
}

// PeekDiscard returns the top discard card. ok is false when the pile is empty.
func (s *Stock) PeekDiscard() (c card.Card, ok bool) {
	if len(s.discard) == 0 {
		return card.Card{}, false
	}
	return s.discard[len(s.discard)-1], true
}

// PopDiscard removes and returns the top discard card
func (s *Stock) PopDiscard() (c card.Card, ok bool) {
	c, ok = s.PeekDiscard()
	if ok {
		s.discard = s.discard[:len(s.discard)-1]
	}
	return c, ok
}

func (s *Stock) DrawCount() int    { return len(s.draw) }
func (s *Stock) DiscardCount() int { return len(s.discard) }

// DrawPile returns a copy of the draw pile, bottom first
func (s *Stock) DrawPile() []card.Card {
	return append([]card.Card(nil), s.draw...)
}

// DiscardPile returns a copy of the discard pile, bottom first
func (s *Stock) DiscardPile() []card.Card {
	return append([]card.Card(nil), s.discard...)
}
