package session

import (
	"strings"

	"github.com/ratel-online/uno/consts"
)

type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandDraw
	CommandUno
	CommandState
)

type Command struct {
	Kind  CommandKind
	Index int
	// Uno declares UNO before the card is played.
	Uno bool
}

// ParseCommand reads one line of player input against the labels of the
// current hand.
func ParseCommand(input string, labels []string) (Command, error) {
	fields := strings.Fields(strings.ToUpper(input))
	if len(fields) == 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	switch fields[0] {
	case "EXIT":
		return Command{}, consts.ErrorsExist
	case "DRAW":
		return Command{Kind: CommandDraw}, nil
	case "STATE":
		return Command{Kind: CommandState}, nil
	case "UNO":
		if len(fields) == 1 {
			return Command{Kind: CommandUno}, nil
		}
		command, err := parsePlay(fields[1:], labels)
		command.Uno = true
		return command, err
	}
	return parsePlay(fields, labels)
}

func parsePlay(fields []string, labels []string) (Command, error) {
	if len(fields) != 1 {
		return Command{}, consts.ErrorsInputInvalid
	}
	for index, label := range labels {
		if label == fields[0] {
			return Command{Kind: CommandPlay, Index: index}, nil
		}
	}
	return Command{}, consts.ErrorsSelectionInvalid
}
