package card

import "strconv"

// Color is the colour a suit is printed in
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit identifies one of the four suits
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck-building order
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

var (
	suitSymbols = [4]string{"♣", "♦", "♥", "♠"}
	suitNames   = [4]string{"clubs", "diamonds", "hearts", "spades"}
	suitColors  = [4]Color{Black, Red, Red, Black}
)

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool { return s >= Clubs && s <= Spades }

func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return suitNames[s]
}

func (s Suit) Color() Color {
	if !s.Valid() {
		return Black
	}
	return suitColors[s]
}

// Rank is the face value of a card, Ace (1) through King (13)
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r lies between Ace and King
func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// New returns the card of the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

func (c Card) Rank() Rank   { return c.rank }
func (c Card) Suit() Suit   { return c.suit }
func (c Card) Color() Color { return c.suit.Color() }

// Valid reports whether c has a real rank and suit
func (c Card) Valid() bool { return c.rank.Valid() && c.suit.Valid() }

// IsOppositeColor reports whether c and other are printed in different colours
func (c Card) IsOppositeColor(other Card) bool {
	return c.Color() != other.Color()
}

// IsOneRankBelow reports whether c ranks exactly one below other
func (c Card) IsOneRankBelow(other Card) bool {
	return c.rank == other.rank-1
}

// CanStackOn reports whether c may be placed on target in a tableau column:
// opposite colour and exactly one rank lower.
func (c Card) CanStackOn(target Card) bool {
	return target.IsOppositeColor(c) && c.IsOneRankBelow(target)
}

func (c Card) String() string {
	if !c.Valid() {
		return ""
	}
	return c.rank.String() + c.suit.Symbol()
}
