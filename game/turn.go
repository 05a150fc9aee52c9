package game

import (
	"context"
	"errors"
	"strings"

	"github.com/chutcheson/Sketchy/agents"
)

// Turn coordination: one illustrate -> guess -> (refine -> guess)* cycle per
// round. Every asynchronous call captures the turn token at issue time and
// its result is dropped if the session has moved to a new round meanwhile.
// In-flight calls are never cancelled; staleness filtering stands in for
// cancellation.

func (s *Session) handleTurnKickoff(turn string) {
	if turn != s.turnID {
		s.log.Debug().Str("turn", turn).Msg("dropping kickoff for finished round")
		return
	}
	s.startIllustration()
}

func (s *Session) startIllustration() {
	turn := s.turnID
	caps := s.activeCaps()
	secret := s.secret
	history := s.historyCopy()

	s.pendingCalls++
	go func() {
		content, err := caps.Illustrate(context.Background(), secret, history)
		s.post(agentResult{call: callIllustrate, turn: turn, content: content, err: err})
	}()
}

func (s *Session) startRefinement(latestGuess string) {
	turn := s.turnID
	caps := s.activeCaps()
	secret := s.secret
	current := s.content
	history := s.historyCopy()

	s.pendingCalls++
	go func() {
		content, err := caps.Refine(context.Background(), secret, current, latestGuess, history)
		s.post(agentResult{call: callRefine, turn: turn, content: content, err: err})
	}()
}

// scheduleGuess asks the active team's agent for a guess after the think
// delay, under the same turn snapshot as the content it is guessing from.
func (s *Session) scheduleGuess(turn string) {
	caps := s.activeCaps()
	content := s.content
	history := s.historyCopy()

	s.pendingCalls++
	s.schedule(s.thinkDelay, func() {
		guess, err := caps.Guess(context.Background(), content, history)
		s.post(agentResult{call: callGuess, turn: turn, content: guess, err: err})
	})
}

func (s *Session) handleAgentResult(res agentResult) {
	s.pendingCalls--

	if res.turn != s.turnID {
		s.log.Debug().Str("turn", res.turn).Msg("discarding stale agent result")
		return
	}

	if res.err != nil {
		// Human-driven capabilities report there is nothing to automate;
		// the round waits for input through the submission interface.
		if errors.Is(res.err, agents.ErrHumanDriven) {
			return
		}
		s.log.Error().Err(res.err).Int("call", int(res.call)).Msg("agent call failed")
		s.emit(EventError, ErrorPayload{Message: agentFailureMessage(res.call)})
		return
	}

	switch res.call {
	case callIllustrate, callRefine:
		s.content = res.content
		s.emit(EventIllustrationUpdate, IllustrationUpdatePayload{
			Content:      s.content,
			GuessHistory: s.historyCopy(),
			TurnID:       s.turnID,
		})
		s.scheduleGuess(res.turn)
	case callGuess:
		guess := strings.TrimSpace(res.content)
		if guess == "" {
			return
		}
		s.emit(EventLLMGuess, LLMGuessPayload{Guess: guess, TurnID: s.turnID})
		s.evaluateGuess(guess)
	}
}

func agentFailureMessage(call agentCall) string {
	switch call {
	case callIllustrate:
		return "Failed to generate illustration"
	case callRefine:
		return "Failed to refine illustration"
	default:
		return "Failed to generate guess"
	}
}
