package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/player"
	"github.com/sirupsen/logrus"
)

// Game owns every pile, hand and turn pointer of one session. It is not safe
// for concurrent use; the caller serializes commands.
type Game struct {
	config Config
	rng    *rand.Rand
	log    logrus.FieldLogger
	events *event.Bus

	deck    *Deck
	pile    *Pile
	hands   []*Hand
	names   []string
	players *Cycler
	phase   consts.GamePhase

	waitingForColor bool
	colorSeat       int
	calledUno       []bool
	selectedIndex   int

	cardsPlayed int
	cardsDrawn  int
	winner      int

	stackedDeck []card.Card
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

func WithSeatNames(names []string) Option {
	return func(g *Game) {
		g.names = names
	}
}

// WithStackedDeck replaces the shuffled deck with cards in the given order.
// The head of the slice is dealt first.
func WithStackedDeck(cards []card.Card) Option {
	return func(g *Game) {
		g.stackedDeck = append([]card.Card(nil), cards...)
	}
}

func New(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		config:        config,
		events:        event.NewBus(),
		pile:          NewPile(),
		hands:         make([]*Hand, config.PlayerCount),
		players:       NewCycler(config.PlayerCount),
		phase:         consts.PhaseInitializing,
		calledUno:     make([]bool, config.PlayerCount),
		selectedIndex: -1,
		winner:        -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = logrus.StandardLogger()
	}
	if len(g.names) != config.PlayerCount {
		g.names = player.SeatNames(config.PlayerCount, "", g.rng)
	}
	if g.stackedDeck != nil {
		g.deck = newDeckOf(g.stackedDeck)
	} else {
		g.deck = NewDeck(g.rng)
	}
	g.players.ForEach(func(seat int) {
		g.hands[seat] = NewHand()
	})
	return g, nil
}

// Events returns the bus listeners subscribe to. Subscribe before Start to
// see the opening events.
func (g *Game) Events() *event.Bus {
	return g.events
}

// Start deals the hands, turns up the first discard and hands the turn to
// the human seat.
func (g *Game) Start() error {
	if g.phase != consts.PhaseInitializing {
		return consts.ErrorsPhaseInvalid
	}
	g.setPhase(consts.PhaseDealing)
	g.DealInitialHands(g.config.PlayerCount, g.config.InitialHandSize)

	firstCard, ok := g.deck.SelectFirstTopCard()
	if !ok {
		g.log.Error("no non-wild card left to start the discard pile")
		return consts.ErrorsDeckExhausted
	}
	g.pile.Add(firstCard)
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	g.log.WithField("card", firstCard.Name()).Info("first card turned up")

	g.setPhase(consts.PhasePlaying)
	g.events.TurnChanged.Emit(event.TurnChangedPayload{
		Seat:      g.players.Current(),
		Clockwise: g.players.Clockwise(),
	})
	return nil
}

// DealInitialHands gives perPlayerCount cards from the head of the draw pile
// to each seat in turn, human first.
func (g *Game) DealInitialHands(playerCount int, perPlayerCount int) {
	for seat := 0; seat < playerCount && seat < len(g.hands); seat++ {
		g.hands[seat].AddCards(g.deck.Draw(perPlayerCount))
	}
	g.log.WithFields(logrus.Fields{
		"players":   playerCount,
		"per_seat":  perPlayerCount,
		"draw_pile": g.deck.Size(),
	}).Debug("hands dealt")
}

// DrawCard moves the head of the draw pile into seat's hand. ok is false
// when the draw pile is empty; the caller reshuffles before retrying.
func (g *Game) DrawCard(seat int) (drawn card.Card, ok bool) {
	drawn, ok = g.deck.DrawOne()
	if !ok {
		g.log.WithField("seat", seat).Debug("draw pile empty")
		return drawn, false
	}
	g.hands[seat].AddCards([]card.Card{drawn})
	g.cardsDrawn++
	g.events.CardDrawn.Emit(event.CardDrawnPayload{Seat: seat, Card: drawn})
	g.log.WithFields(logrus.Fields{"seat": seat, "card": drawn.Name()}).Debug("card drawn")
	return drawn, true
}

func (g *Game) drawWithReshuffle(seat int) (card.Card, bool) {
	if g.deck.Empty() {
		g.ReshuffleDiscardIntoDraw()
	}
	return g.DrawCard(seat)
}

func (g *Game) drawCards(seat int, amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, ok := g.drawWithReshuffle(seat)
		if !ok {
			g.log.WithFields(logrus.Fields{"seat": seat, "missing": amount - i}).Warn("no cards left to draw")
			break
		}
		drawn = append(drawn, c)
	}
	return drawn
}

// PlayCard moves the first card in seat's hand equal to c onto the discard
// pile. Legality against the top card is the caller's responsibility.
func (g *Game) PlayCard(c card.Card, seat int) error {
	if !g.validSeat(seat) {
		return consts.ErrorsSeatInvalid
	}
	if !g.hands[seat].RemoveCard(c) {
		return consts.ErrorsCardNotInHand
	}
	g.pile.Add(c)
	g.cardsPlayed++
	if seat == consts.HumanSeat {
		g.selectedIndex = -1
	}
	g.events.CardPlayed.Emit(event.CardPlayedPayload{Seat: seat, Card: c})
	g.log.WithFields(logrus.Fields{"seat": seat, "card": c.Name()}).Debug("card played")
	return nil
}

// ReshuffleDiscardIntoDraw recycles every discard under the top card into the
// draw pile and returns how many cards moved. Zero means the piles are
// exhausted.
func (g *Game) ReshuffleDiscardIntoDraw() int {
	recycled := g.pile.TakeAllButTop()
	if len(recycled) == 0 {
		g.log.Warn("nothing under the top card to reshuffle")
		return 0
	}
	Shuffle(recycled, g.rng)
	g.deck.Append(recycled...)
	g.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{
		Recycled: len(recycled),
		DrawPile: g.deck.Size(),
	})
	g.log.WithField("recycled", len(recycled)).Info("discard pile reshuffled into draw pile")
	return len(recycled)
}

// ResolveSpecialEffect applies the actions of c, which the seat under the turn
// pointer has just played. The turn pointer may move; the normal one-seat
// advance is left to the end of the turn.
func (g *Game) ResolveSpecialEffect(c card.Card) {
	seat := g.players.Current()
	if c.Type != card.Number {
		g.events.SpecialEffect.Emit(event.SpecialEffectPayload{Seat: seat, Card: c, Effect: c.Type})
	}
	for _, cardAction := range c.Actions() {
		g.log.WithFields(logrus.Fields{"seat": seat, "action": cardAction.String()}).Debug("resolving card action")
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			g.players.Skip()
		case action.ReverseTurnsAction:
			g.players.Reverse()
			if g.config.PlayerCount == 2 {
				g.players.Skip()
			}
		case action.DrawCardsAction:
			g.drawCards(g.players.Current(), cardAction.Amount())
		case action.PickColorAction:
			g.waitingForColor = true
			g.colorSeat = seat
			g.setPhase(consts.PhaseColorSelection)
		}
	}
}

// DeclareColor binds the pending wild on top of the discard pile to chosen
// and finishes the turn of the seat that played it.
func (g *Game) DeclareColor(chosen color.Color) error {
	if !g.waitingForColor {
		return consts.ErrorsNotWaitingForColor
	}
	if !chosen.Valid() {
		return consts.ErrorsColorInvalid
	}
	top := g.pile.Top()
	g.pile.ReplaceTop(top.WithColor(chosen))
	g.waitingForColor = false
	g.events.ColorPicked.Emit(event.ColorPickedPayload{Seat: g.colorSeat, Color: chosen})
	g.log.WithFields(logrus.Fields{"seat": g.colorSeat, "color": chosen.Name()}).Info("color declared")
	g.setPhase(consts.PhasePlaying)
	g.endTurn(g.colorSeat)
	return nil
}

// CheckGameOver reports the first seat with an empty hand once play has begun.
func (g *Game) CheckGameOver() (over bool, winnerSeat int) {
	if g.phase < consts.PhasePlaying {
		return false, -1
	}
	for seat, hand := range g.hands {
		if hand.Empty() {
			return true, seat
		}
	}
	return false, -1
}

// EnforceUnoPenalty makes seat draw one card when it holds a single card
// without having declared UNO. It reports whether a penalty card was drawn;
// with both piles exhausted there is nothing to draw and no penalty.
func (g *Game) EnforceUnoPenalty(seat int) bool {
	if !g.config.EnableStrictRules || !g.validSeat(seat) {
		return false
	}
	if g.hands[seat].Size() != 1 || g.calledUno[seat] {
		return false
	}
	drawn := g.drawCards(seat, 1)
	if len(drawn) == 0 {
		return false
	}
	g.events.UnoPenalty.Emit(event.UnoPenaltyPayload{Seat: seat, Drawn: drawn})
	g.log.WithField("seat", seat).Info("uno penalty")
	return true
}

// endTurn is the only place a turn passes on.
func (g *Game) endTurn(seat int) {
	g.EnforceUnoPenalty(seat)
	g.calledUno[seat] = false
	next := g.players.Next()
	g.events.TurnChanged.Emit(event.TurnChangedPayload{Seat: next, Clockwise: g.players.Clockwise()})
	g.log.WithFields(logrus.Fields{"from": seat, "to": next}).Debug("turn changed")
}

func (g *Game) finish(winner int) {
	g.winner = winner
	g.waitingForColor = false
	g.setPhase(consts.PhaseGameOver)
	g.events.GameOver.Emit(event.GameOverPayload{Winner: winner})
	g.log.WithFields(logrus.Fields{
		"winner":       winner,
		"cards_played": g.cardsPlayed,
		"cards_drawn":  g.cardsDrawn,
	}).Info("game over")
}

func (g *Game) setPhase(phase consts.GamePhase) {
	if g.phase == phase {
		return
	}
	g.phase = phase
	g.events.PhaseChanged.Emit(event.PhaseChangedPayload{Phase: phase})
}

func (g *Game) validSeat(seat int) bool {
	return seat >= 0 && seat < len(g.hands)
}

func (g *Game) checkTurn(seat int) error {
	switch {
	case g.phase == consts.PhaseGameOver:
		return consts.ErrorsGameOver
	case g.phase != consts.PhasePlaying:
		return consts.ErrorsPhaseInvalid
	case !g.validSeat(seat):
		return consts.ErrorsSeatInvalid
	case seat != g.players.Current():
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) playTurn(seat int, c card.Card) error {
	if err := g.PlayCard(c, seat); err != nil {
		return err
	}
	if over, winner := g.CheckGameOver(); over {
		g.finish(winner)
		return nil
	}
	g.ResolveSpecialEffect(c)
	if g.waitingForColor {
		if seat == consts.HumanSeat {
			return nil
		}
		return g.DeclareColor(player.ChooseColor(g.hands[seat].Cards()))
	}
	g.endTurn(seat)
	return nil
}

// RequestPlay plays c from seat's hand after checking turn, ownership and
// legality.
func (g *Game) RequestPlay(seat int, c card.Card) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if !g.hands[seat].Contains(c) {
		return consts.ErrorsCardNotInHand
	}
	if !Playable(c, g.pile.Top()) {
		return consts.ErrorsIllegalPlay
	}
	return g.playTurn(seat, c)
}

// RequestPlaySelected plays the human seat's selected card.
func (g *Game) RequestPlaySelected() error {
	selected, _, ok := g.Selection()
	if !ok {
		return consts.ErrorsSelectionInvalid
	}
	return g.RequestPlay(consts.HumanSeat, selected)
}

// RequestDraw draws one card for seat, reshuffling if needed, and ends the
// seat's turn. ok is false when no card could be drawn.
func (g *Game) RequestDraw(seat int) (drawn card.Card, ok bool, err error) {
	if err := g.checkTurn(seat); err != nil {
		return card.Card{}, false, err
	}
	drawn, ok = g.drawWithReshuffle(seat)
	if !ok {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{Seat: seat})
	}
	g.endTurn(seat)
	return drawn, ok, nil
}

func (g *Game) RequestColorDeclaration(chosen color.Color) error {
	if g.phase == consts.PhaseGameOver {
		return consts.ErrorsGameOver
	}
	return g.DeclareColor(chosen)
}

// RequestUnoDeclaration records that seat has called UNO. It is accepted
// while the seat holds two cards or fewer.
func (g *Game) RequestUnoDeclaration(seat int) error {
	if g.phase == consts.PhaseGameOver {
		return consts.ErrorsGameOver
	}
	if g.phase < consts.PhasePlaying {
		return consts.ErrorsPhaseInvalid
	}
	if !g.validSeat(seat) {
		return consts.ErrorsSeatInvalid
	}
	if g.hands[seat].Size() > 2 {
		return consts.ErrorsUnoTooEarly
	}
	g.calledUno[seat] = true
	g.events.UnoDeclared.Emit(event.UnoDeclaredPayload{Seat: seat})
	return nil
}

// PlayComputerTurn runs the heuristic for the computer seat holding the turn:
// play the first playable card, otherwise draw.
func (g *Game) PlayComputerTurn() error {
	seat := g.players.Current()
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if seat == consts.HumanSeat {
		return consts.ErrorsNotComputerSeat
	}
	hand := g.hands[seat].Cards()
	chosen, ok := player.ChooseCardToPlay(hand, g.pile.Top())
	if !ok {
		_, _, err := g.RequestDraw(seat)
		return err
	}
	if player.ShouldCallUno(len(hand)) {
		if err := g.RequestUnoDeclaration(seat); err != nil {
			return err
		}
	}
	return g.playTurn(seat, chosen)
}

func (g *Game) SelectCard(index int) error {
	if _, ok := g.hands[consts.HumanSeat].At(index); !ok {
		return consts.ErrorsSelectionInvalid
	}
	g.selectedIndex = index
	return nil
}

func (g *Game) ClearSelection() {
	g.selectedIndex = -1
}

func (g *Game) Selection() (selected card.Card, index int, ok bool) {
	selected, ok = g.hands[consts.HumanSeat].At(g.selectedIndex)
	if !ok {
		return card.Card{}, -1, false
	}
	return selected, g.selectedIndex, true
}

// CanPlayCard checks c against the current top card only.
func (g *Game) CanPlayCard(c card.Card) bool {
	return Playable(c, g.pile.Top())
}
