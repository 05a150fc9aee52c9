package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chutcheson/Sketchy/agents"
)

type sessionParams struct {
	id              string
	kinds           [2]string
	caps            [2]agents.Capabilities
	sink            EventSink
	registry        *Registry
	words           WordSupplier
	schedule        ScheduleFunc
	thinkDelay      time.Duration
	roundStartDelay time.Duration
	log             zerolog.Logger
}

func newSession(p sessionParams) *Session {
	s := &Session{
		id:              p.id,
		caps:            p.caps,
		sink:            p.sink,
		registry:        p.registry,
		words:           p.words,
		schedule:        p.schedule,
		thinkDelay:      p.thinkDelay,
		roundStartDelay: p.roundStartDelay,
		log:             p.log,
		activeTeam:      1,
		round:           1,
		turnID:          newTurnID(),
		timeRemaining:   RoundSeconds,
		inbox:           make(chan message, 256),
		done:            make(chan struct{}),
	}
	s.teams[0].Kind = p.kinds[0]
	s.teams[1].Kind = p.kinds[1]
	s.secret = p.words.Pick(nil)
	return s
}

func (s *Session) ID() string { return s.id }

// start launches the run loop and schedules round 1's illustration cycle.
func (s *Session) start() {
	go s.run()
	turn := s.turnID
	s.schedule(s.roundStartDelay, func() {
		s.post(turnKickoff{turn: turn})
	})
}

// run drains the inbox until the game is over. It is the single writer of
// all mutable session state; asynchronous work re-enters through the inbox
// as agentResult messages carrying their turn snapshot.
func (s *Session) run() {
	for msg := range s.inbox {
		s.dispatch(msg)
		if s.finished {
			close(s.done)
			return
		}
	}
}

func (s *Session) dispatch(msg message) {
	switch m := msg.(type) {
	case guessSubmission:
		s.evaluateGuess(m.guess)
	case timerReport:
		s.handleTimerReport(m.remaining)
	case turnKickoff:
		s.handleTurnKickoff(m.turn)
	case agentResult:
		s.handleAgentResult(m)
	case gameDataQuery:
		m.reply <- s.gameData()
	case stateQuery:
		m.reply <- s.snapshot()
	}
}

// post hands a message to the run loop, reporting false once the session has
// ended and can no longer accept work.
func (s *Session) post(msg message) bool {
	select {
	case <-s.done:
		return false
	case s.inbox <- msg:
		return true
	}
}

// SubmitGuess feeds an externally supplied guess (a human player, or a
// client echoing an agent guess) into the evaluation path.
func (s *Session) SubmitGuess(guess string) error {
	if !s.post(guessSubmission{guess: guess}) {
		return ErrSessionClosed
	}
	return nil
}

// ReportTimer records the acting client's countdown. The reported value is
// authoritative; reaching zero ends the round.
func (s *Session) ReportTimer(remaining int) error {
	if !s.post(timerReport{remaining: remaining}) {
		return ErrSessionClosed
	}
	return nil
}

// GameData returns the current round's secret and roles, for the client
// whose own team is playing as a human.
func (s *Session) GameData(ctx context.Context) (GameData, error) {
	reply := make(chan GameData, 1)
	if !s.post(gameDataQuery{reply: reply}) {
		return GameData{}, ErrSessionClosed
	}
	select {
	case data := <-reply:
		return data, nil
	case <-s.done:
		return GameData{}, ErrSessionClosed
	case <-ctx.Done():
		return GameData{}, ctx.Err()
	}
}

// State returns a diagnostic snapshot of the session.
func (s *Session) State(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if !s.post(stateQuery{reply: reply}) {
		return Snapshot{}, ErrSessionClosed
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-s.done:
		return Snapshot{}, ErrSessionClosed
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (s *Session) gameData() GameData {
	return GameData{Secret: s.secret, ActiveTeam: s.activeTeam, Round: s.round}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Round:         s.round,
		ActiveTeam:    s.activeTeam,
		TurnID:        s.turnID,
		Secret:        s.secret,
		Content:       s.content,
		GuessHistory:  s.historyCopy(),
		Scores:        s.scores(),
		TimeRemaining: s.timeRemaining,
		PendingCalls:  s.pendingCalls,
	}
}

func (s *Session) scores() [2]int {
	return [2]int{s.teams[0].Score, s.teams[1].Score}
}

func (s *Session) historyCopy() []string {
	history := make([]string, len(s.guessHistory))
	copy(history, s.guessHistory)
	return history
}

func (s *Session) activeCaps() agents.Capabilities {
	return s.caps[s.activeTeam-1]
}

func (s *Session) emit(eventType string, payload any) {
	if err := s.sink.Send(Event{Type: eventType, Payload: payload}); err != nil {
		s.log.Warn().Err(err).Str("event", eventType).Msg("failed to deliver event")
	}
}
