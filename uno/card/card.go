package card

import (
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Type int

const (
	Number Type = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var typeNames = map[Type]string{
	Number:       "Number",
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "DrawTwo",
	Wild:         "Wild",
	WildDrawFour: "WildDrawFour",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Card is a small value type. Two cards are equal when color, value and type
// all match; duplicates in a hand are told apart by their position only.
type Card struct {
	Color color.Color
	Value string
	Type  Type
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Color: c, Value: strconv.Itoa(number), Type: Number}
}

func NewSkipCard(c color.Color) Card {
	return Card{Color: c, Type: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{Color: c, Type: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Color: c, Type: DrawTwo}
}

func NewWildCard() Card {
	return Card{Color: color.None, Type: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Color: color.None, Type: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDrawFour
}

// WithColor returns a copy carrying the declared color. Only meaningful for
// wild cards.
func (c Card) WithColor(declared color.Color) Card {
	c.Color = declared
	return c
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) Actions() []action.Action {
	switch c.Type {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(4),
		}
	default:
		return []action.Action{}
	}
}

// CanPlayOn reports whether c may be discarded on top. A nil top means the
// discard pile is still empty.
func (c Card) CanPlayOn(top *Card) bool {
	if c.IsWild() {
		return true
	}
	if top == nil {
		return true
	}
	if top.IsWild() {
		return c.Color == top.Color
	}
	if c.Type == Number && top.Type == Number {
		return c.Color == top.Color || c.Value == top.Value
	}
	if c.Type != Number && top.Type != Number {
		return c.Color == top.Color || c.Type == top.Type
	}
	return c.Color == top.Color
}

// Name is the uncolored description used in logs, e.g. "red 5" or "wild(blue)".
func (c Card) Name() string {
	switch c.Type {
	case Number:
		return c.Color.Name() + " " + c.Value
	case Wild, WildDrawFour:
		if c.Color == color.None {
			return strings.ToLower(c.Type.String())
		}
		return strings.ToLower(c.Type.String()) + "(" + c.Color.Name() + ")"
	default:
		return c.Color.Name() + " " + strings.ToLower(c.Type.String())
	}
}

func (c Card) String() string {
	switch c.Type {
	case Number:
		return c.Color.Paintf("[%s]", c.Value)
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	case DrawTwo:
		return c.Color.Paint("+2!")
	case Wild:
		return c.Color.Paint("(*)")
	case WildDrawFour:
		return c.Color.Paint("+4!")
	default:
		return "?"
	}
}
