package game

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/tableau"
)

// Snapshot is a deep copy of every zone of a game. It shares no storage
// with the game it was taken from.
type Snapshot struct {
	Hidden     [tableau.Columns][]card.Card
	Visible    [tableau.Columns][]card.Card
	Foundation [4][]card.Card
	Draw       []card.Card
	Discard    []card.Card

	// Height is the number of rows the tallest column occupies
	Height int

	Decks int
	Moves int
}

// Snapshot copies the current state of all zones
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Draw:    g.stock.DrawPile(),
		Discard: g.stock.DiscardPile(),
		Height:  g.tableau.LongestColumn(),
		Decks:   g.decks,
		Moves:   g.moves,
	}
	for col := 0; col < tableau.Columns; col++ {
		s.Hidden[col] = g.tableau.Hidden(col)
		s.Visible[col] = g.tableau.Visible(col)
	}
	for _, suit := range card.Suits {
		s.Foundation[suit] = g.foundation.Pile(suit)
	}
	return s
}

// DiscardTop returns the top discard card, if any
func (s Snapshot) DiscardTop() (card.Card, bool) {
	if len(s.Discard) == 0 {
		return card.Card{}, false
	}
	return s.Discard[len(s.Discard)-1], true
}

// FoundationTop returns the top card of a suit pile, if any
func (s Snapshot) FoundationTop(suit card.Suit) (card.Card, bool) {
	if !suit.Valid() || len(s.Foundation[suit]) == 0 {
		return card.Card{}, false
	}
	pile := s.Foundation[suit]
	return pile[len(pile)-1], true
}

// Cards returns every card in the snapshot, in no particular order
func (s Snapshot) Cards() []card.Card {
	var cards []card.Card
	for col := 0; col < tableau.Columns; col++ {
		cards = append(cards, s.Hidden[col]...)
		cards = append(cards, s.Visible[col]...)
	}
	for _, pile := range s.Foundation {
		cards = append(cards, pile...)
	}
	cards = append(cards, s.Draw...)
	cards = append(cards, s.Discard...)
	return cards
}
