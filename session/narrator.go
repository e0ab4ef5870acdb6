package session

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/sirupsen/logrus"
)

// narrator turns game events into lines for the human seat. Cards drawn by
// computer seats stay hidden.
type narrator struct {
	game  *game.Game
	human Human
	log   logrus.FieldLogger
}

func newNarrator(g *game.Game, human Human, log logrus.FieldLogger) *narrator {
	return &narrator{game: g, human: human, log: log}
}

func (n *narrator) write(text string) {
	if err := n.human.Write(text); err != nil {
		n.log.WithError(err).Warn("narration lost")
	}
}

func (n *narrator) name(seat int) string {
	return n.game.Name(seat)
}

func (n *narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.write(msg.Message.FirstCardPlayed(payload.Card))
}

func (n *narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.write(msg.Message.PlayerPlayedCard(n.name(payload.Seat), payload.Card))
}

func (n *narrator) OnCardDrawn(payload event.CardDrawnPayload) {
	if payload.Seat == consts.HumanSeat {
		n.write(msg.Message.HumanPlayerDrewCard(payload.Card))
		return
	}
	n.write(msg.Message.PlayerDrewCard(n.name(payload.Seat)))
}

func (n *narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.write(msg.Message.PlayerPickedColor(n.name(payload.Seat), payload.Color))
}

func (n *narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.write(msg.Message.PlayerPassed(n.name(payload.Seat)))
}

// OnSpecialEffect runs before the effect moves the turn pointer, so the next
// seat is still the one the effect lands on.
func (n *narrator) OnSpecialEffect(payload event.SpecialEffectPayload) {
	victim := n.name(n.game.NextSeat())
	switch payload.Effect {
	case card.Skip:
		n.write(msg.Message.PlayerTurnSkipped(victim))
	case card.Reverse:
		n.write(msg.Message.TurnOrderReversed())
	case card.DrawTwo:
		n.write(msg.Message.PlayerMustDraw(victim, 2))
		n.write(msg.Message.PlayerTurnSkipped(victim))
	case card.Wild:
		n.write(msg.Message.PlayerMustPickColor(n.name(payload.Seat)))
	case card.WildDrawFour:
		n.write(msg.Message.PlayerMustPickColor(n.name(payload.Seat)))
		n.write(msg.Message.PlayerMustDraw(victim, 4))
		n.write(msg.Message.PlayerTurnSkipped(victim))
	}
}

func (n *narrator) OnTurnChanged(payload event.TurnChangedPayload) {
	if payload.Seat == consts.HumanSeat {
		n.write(msg.Message.HumanPlayerTurnStarted(n.name(payload.Seat)))
	}
}

func (n *narrator) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	n.write(msg.Message.PlayerDeclaredUno(n.name(payload.Seat)))
}

func (n *narrator) OnUnoPenalty(payload event.UnoPenaltyPayload) {
	n.write(msg.Message.PlayerForgotUno(n.name(payload.Seat)))
}

func (n *narrator) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	n.write(msg.Message.DeckReshuffled(payload.Recycled))
}

func (n *narrator) OnGameOver(payload event.GameOverPayload) {
	n.write(msg.Message.WinnerFound(n.name(payload.Winner)))
}
