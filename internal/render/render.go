// Package render draws the board and the player-facing messages as text.
// It only reads game snapshots and never changes a game.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/tableau"
)

const (
	// DefaultWidth is used when the terminal size cannot be read
	DefaultWidth = 73
	minWidth     = 40
	maxWidth     = 100
)

// foundationOrder is the left-to-right order of the suit piles on screen
var foundationOrder = [4]card.Suit{card.Clubs, card.Hearts, card.Spades, card.Diamonds}

type Options struct {
	Color bool
	Width int
}

type Renderer struct {
	width int

	red    *color.Color
	hidden *color.Color
	title  *color.Color
	help   *color.Color
	errMsg *color.Color
}

func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	width = min(max(width, minWidth), maxWidth)

	r := &Renderer{
		width:  width,
		red:    color.New(color.FgRed),
		hidden: color.New(color.FgBlue),
		title:  color.New(color.FgCyan),
		help:   color.New(color.FgMagenta),
		errMsg: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.red, r.hidden, r.title, r.help, r.errMsg} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// TerminalWidth returns the width of the terminal on fd, or DefaultWidth
// when fd is not a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func (r *Renderer) rule() string {
	return strings.Repeat("-", r.width)
}

// Card renders c, red suits in red
func (r *Renderer) Card(c card.Card) string {
	if c.Color() == card.Red {
		return r.red.Sprint(c.String())
	}
	return c.String()
}

func (r *Renderer) suit(s card.Suit) string {
	if s.Color() == card.Red {
		return r.red.Sprint(s.Symbol())
	}
	return s.Symbol()
}

// Board renders the whole table: waste, stock and foundation on top, the
// tableau columns below with face-down cards shown as X.
func (r *Renderer) Board(s game.Snapshot) string {
	var b strings.Builder

	b.WriteString(r.rule() + "\n")
	b.WriteString("WASTE \t STOCK \t\t\t\t FOUNDATION\n")

	waste := "Empty"
	if top, ok := s.DiscardTop(); ok {
		waste = r.Card(top)
	}
	stock := "Empty"
	if len(s.Draw) > 0 {
		stock = fmt.Sprintf("%d cards", len(s.Draw))
	}
	fmt.Fprintf(&b, "%s\t%s\t\t", waste, stock)

	tops := make([]string, 0, len(foundationOrder))
	for _, suit := range foundationOrder {
		if top, ok := s.FoundationTop(suit); ok {
			tops = append(tops, r.Card(top))
		} else {
			tops = append(tops, r.suit(suit))
		}
	}
	b.WriteString(strings.Join(tops, "\t") + "\n")

	b.WriteString("\nTABLEAU\n")
	for col := 1; col <= tableau.Columns; col++ {
		fmt.Fprintf(&b, "\t%d", col)
	}
	b.WriteString("\n\n")

	for row := 0; row < s.Height; row++ {
		for col := 0; col < tableau.Columns; col++ {
			hidden, visible := s.Hidden[col], s.Visible[col]
			switch {
			case row < len(hidden):
				b.WriteString("\t" + r.hidden.Sprint("X"))
			case row < len(hidden)+len(visible):
				b.WriteString("\t" + r.Card(visible[row-len(hidden)]))
			default:
				b.WriteString("\t")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nMoves: %d\n", s.Moves)
	b.WriteString(r.rule() + "\n")
	return b.String()
}

// Help lists the command keys
func (r *Renderer) Help() string {
	return r.help.Sprint(`
*** HELP MENU ***
    Transfers card from Waste to Foundation pile - w2f
    Transfers card from Waste to Tableau column pile - w2t #
    Transfers card from Stock to Waste pile - s2w
    Transfers card from Tableau column to Foundation pile - t2f #
    Transfers card from Tableau column to another column - t2t # #
    Ends the game - quit

    Replace # with a column number from 1 to 7.
`) + "\n"
}

// Welcome is printed once before the first board
func (r *Renderer) Welcome() string {
	return r.rule() + "\n\n" + r.title.Sprint("\t\t*** WELCOME TO SOLITAIRE ***") + "\n\n"
}

// Won is printed when every suit pile is complete
func (r *Renderer) Won(moves int) string {
	return r.title.Sprintf("*** CONGRATULATIONS! YOU'VE WON in %d moves! ***", moves) + "\n"
}

// Ended is printed when the player quits
func (r *Renderer) Ended() string {
	return r.errMsg.Sprint("Game has ended!") + "\n"
}

// Error formats a rejected command
func (r *Renderer) Error(msg string) string {
	return r.errMsg.Sprint(msg) + "\n"
}
