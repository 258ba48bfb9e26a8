package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/rules"
)

// Size is the number of cards in one standard deck
const Size = 52

var (
	// ErrInsufficientCards is returned when more cards are requested than remain
	ErrInsufficientCards = errors.New("insufficient cards")

	// ErrEmptyDeck is returned when flipping from a deck with no cards
	ErrEmptyDeck = fmt.Errorf("empty deck: %w", rules.ErrEmptySource)
)

// Deck is a shuffled sequence of cards. The top of the deck is the end of
// the slice.
type Deck struct {
	cards []card.Card
}

// Standard returns a fresh, unshuffled 52-card deck. Each call builds a new
// slice, so no two decks share storage.
func Standard() []card.Card {
	cards := make([]card.Card, 0, Size)
	for r := card.Ace; r <= card.King; r++ {
		for _, s := range card.Suits {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}

// New builds count standard decks and shuffles them with rng
func New(count int, rng *rand.Rand) (*Deck, error) {
	if count < 1 {
		return nil, fmt.Errorf("deck count must be at least 1, got %d", count)
	}
	if rng == nil {
		return nil, fmt.Errorf("deck requires a random source")
	}

	cards := make([]card.Card, 0, Size*count)
	for i := 0; i < count; i++ {
		cards = append(cards, Standard()...)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}, nil
}

// Remaining returns how many cards are left to deal
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Deal removes and returns the top n cards, topmost first. The deck is
// left untouched if n is out of range.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrInsufficientCards, n, len(d.cards))
	}

	dealt := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		dealt = append(dealt, d.cards[len(d.cards)-1-i])
	}
	d.cards = d.cards[:len(d.cards)-n]

	return dealt, nil
}

// FlipOne removes and returns the top card
func (d *Deck) FlipOne() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}

	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}
