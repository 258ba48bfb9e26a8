// Package command parses player input into structured commands.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedCommand is returned for input that matches no command
var ErrMalformedCommand = errors.New("malformed command")

// Kind identifies which move a command requests
type Kind int

const (
	Invalid Kind = iota
	Quit
	StockToWaste
	WasteToFoundation
	WasteToTableau
	TableauToFoundation
	TableauToTableau
)

var kindNames = map[Kind]string{
	Invalid:             "invalid",
	Quit:                "quit",
	StockToWaste:        "s2w",
	WasteToFoundation:   "w2f",
	WasteToTableau:      "w2t",
	TableauToFoundation: "t2f",
	TableauToTableau:    "t2t",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is a parsed player command. Src and Dst are 0-based tableau
// column indices; they are meaningful only for the kinds that use them.
type Command struct {
	Kind Kind
	Src  int
	Dst  int
}

func (c Command) String() string {
	switch c.Kind {
	case WasteToTableau:
		return fmt.Sprintf("%s%d", c.Kind, c.Dst+1)
	case TableauToFoundation:
		return fmt.Sprintf("%s%d", c.Kind, c.Src+1)
	case TableauToTableau:
		return fmt.Sprintf("%s%d%d", c.Kind, c.Src+1, c.Dst+1)
	}
	return c.Kind.String()
}

// Columns is the highest column number accepted in input
const Columns = 7

var (
	singleColumn = regexp.MustCompile(`^(w2t|t2f) ?([0-9])$`)
	twoColumns   = regexp.MustCompile(`^t2t ?([0-9]) ?([0-9])$`)
)

// Parse maps a line of input to a Command. Matching is case-insensitive
// and ignores surrounding whitespace. Column digits run from 1 to Columns.
func Parse(line string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "quit":
		return Command{Kind: Quit}, nil
	case "s2w":
		return Command{Kind: StockToWaste}, nil
	case "w2f":
		return Command{Kind: WasteToFoundation}, nil
	}

	if m := singleColumn.FindStringSubmatch(input); m != nil {
		col, err := column(m[2])
		if err != nil {
			return Command{Kind: Invalid}, err
		}
		if m[1] == "w2t" {
			return Command{Kind: WasteToTableau, Dst: col}, nil
		}
		return Command{Kind: TableauToFoundation, Src: col}, nil
	}

	if m := twoColumns.FindStringSubmatch(input); m != nil {
		src, err := column(m[1])
		if err != nil {
			return Command{Kind: Invalid}, err
		}
		dst, err := column(m[2])
		if err != nil {
			return Command{Kind: Invalid}, err
		}
		return Command{Kind: TableauToTableau, Src: src, Dst: dst}, nil
	}

	return Command{Kind: Invalid}, fmt.Errorf("%w: %q", ErrMalformedCommand, line)
}

// column converts a 1-based column digit to a 0-based index
func column(digit string) (int, error) {
	n := int(digit[0] - '0')
	if n < 1 || n > Columns {
		return 0, fmt.Errorf("%w: column %d out of range 1-%d", ErrMalformedCommand, n, Columns)
	}
	return n - 1, nil
}
