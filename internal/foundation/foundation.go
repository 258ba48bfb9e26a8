// Package foundation implements the four suit piles that are built up
// from Ace to King.
package foundation

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/rules"
)

// Foundation holds one ascending pile per suit, indexed by card.Suit
type Foundation struct {
	piles [4][]card.Card
}

func New() *Foundation {
	return &Foundation{}
}

// Accepts reports whether c could be added to its suit pile
func (f *Foundation) Accepts(c card.Card) bool {
	if !c.Valid() {
		return false
	}

	pile := f.piles[c.Suit()]
	if len(pile) == 0 {
		return c.Rank() == card.Ace
	}

	top := pile[len(pile)-1]
	return top.Suit() == c.Suit() && top.IsOneRankBelow(c)
}

// Add places c on its suit pile. Nothing changes when c is rejected.
func (f *Foundation) Add(c card.Card) error {
	if !f.Accepts(c) {
		return fmt.Errorf("%w: %s cannot go on the %s pile", rules.ErrInvalidMove, c, c.Suit())
	}
	f.piles[c.Suit()] = append(f.piles[c.Suit()], c)
	return nil
}

// Top returns the top card of the suit pile. ok is false when the pile
// is empty or the suit is unknown.
func (f *Foundation) Top(s card.Suit) (c card.Card, ok bool) {
	if !s.Valid() {
		return card.Card{}, false
	}
	pile := f.piles[s]
	if len(pile) == 0 {
		return card.Card{}, false
	}
	return pile[len(pile)-1], true
}

// Pile returns a copy of the suit pile, bottom first
func (f *Foundation) Pile(s card.Suit) []card.Card {
	if !s.Valid() {
		return nil
	}
	return append([]card.Card(nil), f.piles[s]...)
}

// Len returns the number of cards across all four piles
func (f *Foundation) Len() int {
	n := 0
	for _, pile := range f.piles {
		n += len(pile)
	}
	return n
}

// HasWon reports whether every suit pile is topped by a King
func (f *Foundation) HasWon() bool {
	for _, s := range card.Suits {
		top, ok := f.Top(s)
		if !ok || top.Rank() != card.King {
			return false
		}
	}
	return true
}
