package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chutcheson/Sketchy/agents"
)

// Service owns the registry and builds sessions. Handlers talk to it; it
// never reaches into a running session's state.
type Service struct {
	registry        *Registry
	words           WordSupplier
	newAgent        AgentFactory
	schedule        ScheduleFunc
	thinkDelay      time.Duration
	roundStartDelay time.Duration
	log             zerolog.Logger
}

type Option func(*Service)

// WithScheduler replaces the delay scheduler, letting tests run scheduled
// work on their own clock.
func WithScheduler(fn ScheduleFunc) Option {
	return func(s *Service) { s.schedule = fn }
}

// WithDelays overrides the think delay and the new-round start delay.
func WithDelays(think, roundStart time.Duration) Option {
	return func(s *Service) {
		s.thinkDelay = think
		s.roundStartDelay = roundStart
	}
}

func NewService(words WordSupplier, newAgent AgentFactory, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		registry:        NewRegistry(),
		words:           words,
		newAgent:        newAgent,
		schedule:        func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		thinkDelay:      DefaultThinkDelay,
		roundStartDelay: DefaultRoundStartDelay,
		log:             log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (svc *Service) Registry() *Registry { return svc.registry }

// CreateGame allocates a session for the two team kinds, announces it on the
// sink and hands off to the turn coordinator for round 1.
func (svc *Service) CreateGame(team1Kind, team2Kind string, sink EventSink) (*Session, error) {
	caps1, err := svc.newAgent(team1Kind)
	if err != nil {
		return nil, fmt.Errorf("team 1: %w", err)
	}
	caps2, err := svc.newAgent(team2Kind)
	if err != nil {
		return nil, fmt.Errorf("team 2: %w", err)
	}

	id := newSessionID()
	sess := newSession(sessionParams{
		id:              id,
		kinds:           [2]string{team1Kind, team2Kind},
		caps:            [2]agents.Capabilities{caps1, caps2},
		sink:            sink,
		registry:        svc.registry,
		words:           svc.words,
		schedule:        svc.schedule,
		thinkDelay:      svc.thinkDelay,
		roundStartDelay: svc.roundStartDelay,
		log:             svc.log.With().Str("session", id).Logger(),
	})
	svc.registry.Add(sess)

	sess.emit(EventGameCreated, GameCreatedPayload{
		SessionID: id,
		TeamKinds: [2]string{team1Kind, team2Kind},
		Round:     1,
		TurnID:    sess.turnID,
	})
	sess.start()

	svc.log.Info().Str("session", id).Str("team1", team1Kind).Str("team2", team2Kind).Msg("game created")
	return sess, nil
}

func (svc *Service) SubmitGuess(id, guess string) error {
	sess, err := svc.registry.Get(id)
	if err != nil {
		return err
	}
	return sess.SubmitGuess(guess)
}

func (svc *Service) ReportTimer(id string, remaining int) error {
	sess, err := svc.registry.Get(id)
	if err != nil {
		return err
	}
	return sess.ReportTimer(remaining)
}

func (svc *Service) GameData(ctx context.Context, id string) (GameData, error) {
	sess, err := svc.registry.Get(id)
	if err != nil {
		return GameData{}, err
	}
	return sess.GameData(ctx)
}

func (svc *Service) RandomWord() string {
	return svc.words.Pick(nil)
}
