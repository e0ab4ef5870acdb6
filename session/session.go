package session

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/sirupsen/logrus"
)

// Config describes one table: the rules plus how the human seat is served.
// Zero timeouts wait for input indefinitely.
type Config struct {
	Game         game.Config
	HumanName    string
	Delay        time.Duration
	Seed         int64
	PlayTimeout  time.Duration
	ColorTimeout time.Duration
}

// Session drives one game between a human seat and computer seats. Every
// engine call happens on the goroutine running Run.
type Session struct {
	ID        string
	CreatedAt time.Time

	config Config
	game   *game.Game
	human  Human
	log    logrus.FieldLogger

	gameOptions []game.Option
	done        chan struct{}
}

type Option func(*Session)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// WithGameOptions forwards options to the engine after the session's own.
func WithGameOptions(opts ...game.Option) Option {
	return func(s *Session) {
		s.gameOptions = append(s.gameOptions, opts...)
	}
}

func New(config Config, human Human, opts ...Option) (*Session, error) {
	if err := config.Game.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		config:    config,
		human:     human,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	s.log = s.log.WithField("session", s.ID)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	gameOptions := append([]game.Option{
		game.WithRand(rng),
		game.WithLogger(s.log),
		game.WithSeatNames(player.SeatNames(config.Game.PlayerCount, config.HumanName, rng)),
	}, s.gameOptions...)

	g, err := game.New(config.Game, gameOptions...)
	if err != nil {
		return nil, err
	}
	s.game = g
	g.Events().Subscribe(newNarrator(g, human, s.log))
	return s, nil
}

func (s *Session) Game() *game.Game {
	return s.game
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Finished() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Run plays the game to the end. It returns early with the human's exit
// error, a closed connection or ctx's error.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	s.log.WithFields(logrus.Fields{
		"players":   s.config.Game.PlayerCount,
		"hand_size": s.config.Game.InitialHandSize,
		"strict":    s.config.Game.EnableStrictRules,
	}).Info("session started")

	if err := s.human.Write(msg.Message.Welcome()); err != nil {
		return err
	}
	if err := s.game.Start(); err != nil {
		return err
	}
	for s.game.Phase() != consts.PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch {
		case s.game.WaitingForColor():
			err = s.humanColor(ctx)
		case s.game.Current() == consts.HumanSeat:
			err = s.humanTurn(ctx)
		default:
			err = s.computerTurn(ctx)
		}
		if err != nil {
			s.log.WithError(err).Info("session stopped")
			return err
		}
	}

	stats := s.game.Stats()
	winner, _ := s.game.Winner()
	s.log.WithFields(logrus.Fields{
		"winner":       winner,
		"cards_played": stats.CardsPlayed,
		"cards_drawn":  stats.CardsDrawn,
	}).Info("session finished")
	return s.human.Write(msg.Message.GameStats(stats.CardsPlayed, stats.CardsDrawn))
}

func (s *Session) humanTurn(ctx context.Context) error {
	hand := s.game.Hand(consts.HumanSeat)
	labels := Labels(len(hand))
	prompt := msg.Message.CardSelection(labels, hand, s.game.CanPlayCard)
	if top, ok := s.game.Top(); ok && len(s.game.PlayableCards(consts.HumanSeat)) == 0 {
		prompt = msg.Message.HumanPlayerHasNoMatchingCardsInHand(s.game.Name(consts.HumanSeat), top, hand) + prompt
	}

	input, err := s.human.Ask(ctx, prompt, s.config.PlayTimeout)
	if errors.Is(err, consts.ErrorsTimeout) {
		s.log.Info("play timed out, drawing")
		_, _, err = s.game.RequestDraw(consts.HumanSeat)
		return err
	}
	if err != nil {
		return err
	}

	command, err := ParseCommand(input, labels)
	if err != nil {
		return s.reject(input, err)
	}
	switch command.Kind {
	case CommandDraw:
		_, _, err = s.game.RequestDraw(consts.HumanSeat)
	case CommandState:
		err = s.human.ShowState(s.game.Snapshot(consts.HumanSeat))
	case CommandUno:
		err = s.game.RequestUnoDeclaration(consts.HumanSeat)
	case CommandPlay:
		err = s.play(command)
	}
	if err != nil {
		return s.reject(input, err)
	}
	return nil
}

func (s *Session) play(command Command) error {
	if err := s.game.SelectCard(command.Index); err != nil {
		return err
	}
	if command.Uno {
		// The declaration only stands for a play the engine will accept.
		if selected, _, _ := s.game.Selection(); !s.game.CanPlayCard(selected) {
			s.game.ClearSelection()
			return consts.ErrorsIllegalPlay
		}
		if err := s.game.RequestUnoDeclaration(consts.HumanSeat); err != nil {
			s.game.ClearSelection()
			return err
		}
	}
	return s.game.RequestPlaySelected()
}

func (s *Session) humanColor(ctx context.Context) error {
	input, err := s.human.Ask(ctx, msg.Message.ColorSelection(), s.config.ColorTimeout)
	if errors.Is(err, consts.ErrorsTimeout) {
		chosen := player.ChooseColor(s.game.Hand(consts.HumanSeat))
		s.log.WithField("color", chosen.Name()).Info("color timed out, picking for the player")
		return s.game.RequestColorDeclaration(chosen)
	}
	if err != nil {
		return err
	}
	chosen, err := color.ByName(input)
	if err != nil {
		return s.human.Write(msg.Message.InvalidInput(input, consts.ErrorsColorInvalid.Msg))
	}
	if err := s.game.RequestColorDeclaration(chosen); err != nil {
		return s.reject(input, err)
	}
	return nil
}

func (s *Session) computerTurn(ctx context.Context) error {
	if s.config.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.config.Delay):
		}
	}
	return s.game.PlayComputerTurn()
}

// reject reports a recoverable input error to the human and keeps the
// session going. Exit errors end it.
func (s *Session) reject(input string, err error) error {
	var e consts.Error
	if errors.As(err, &e) && !e.Exit {
		s.log.WithError(err).Debug("input rejected")
		return s.human.Write(msg.Message.InvalidInput(input, e.Msg))
	}
	return err
}
