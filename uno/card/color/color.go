package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the four suits. None marks a wild card whose color has
// not been declared yet.
type Color int

const (
	None Color = iota
	Red
	Blue
	Green
	Yellow
)

// All lists the playable colors in tie-break order.
var All = []Color{Red, Blue, Green, Yellow}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var painters = map[Color]colorStruct{
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

func (c Color) Valid() bool {
	_, ok := painters[c]
	return ok
}

func (c Color) Name() string {
	if p, ok := painters[c]; ok {
		return p.name
	}
	return "none"
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	p, ok := painters[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return p.colorFunction(text, args...) + fmt.Sprintf("(%s)", p.name)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		p := painters[c]
		if p.name == name || p.name[:1] == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
