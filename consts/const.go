package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type GamePhase int

const (
	PhaseInitializing GamePhase = iota
	PhaseDealing
	PhasePlaying
	PhaseColorSelection
	PhaseGameOver
)

var GamePhases = map[GamePhase]string{
	PhaseInitializing:   "Initializing",
	PhaseDealing:        "Dealing",
	PhasePlaying:        "Playing",
	PhaseColorSelection: "ColorSelection",
	PhaseGameOver:       "GameOver",
}

func (p GamePhase) String() string {
	if name, ok := GamePhases[p]; ok {
		return name
	}
	return "Unknown"
}

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	HumanSeat = 0

	MinPlayers = 2
	MaxPlayers = 6

	DefaultPlayers  = 4
	DefaultHandSize = 7
	DeckSize        = 108

	PlayTimeout  = 40 * time.Second
	ColorTimeout = 20 * time.Second
	AuthTimeout  = 3 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")

	ErrorsPlayerCountInvalid = NewErr(2, true, "Player count must be between 2 and 6. ")
	ErrorsHandSizeInvalid    = NewErr(2, true, "Initial hand size invalid. ")
	ErrorsDeckExhausted      = NewErr(2, true, "Deck has no card to start the discard pile. ")

	ErrorsPhaseInvalid       = NewErr(3, false, "Action not allowed in the current phase. ")
	ErrorsGameOver           = NewErr(3, false, "Game is over. ")
	ErrorsNotYourTurn        = NewErr(3, false, "It is not your turn. ")
	ErrorsSeatInvalid        = NewErr(3, false, "Seat invalid. ")
	ErrorsCardNotInHand      = NewErr(3, false, "Card is not in hand. ")
	ErrorsIllegalPlay        = NewErr(3, false, "Card can not be played on the top card. ")
	ErrorsNotWaitingForColor = NewErr(3, false, "No wild color is pending. ")
	ErrorsColorInvalid       = NewErr(3, false, "Color invalid. ")
	ErrorsUnoTooEarly        = NewErr(3, false, "UNO can only be declared with two cards or fewer. ")
	ErrorsNotComputerSeat    = NewErr(3, false, "Seat is not computer controlled. ")
	ErrorsSelectionInvalid   = NewErr(3, false, "No card at that position. ")
)
