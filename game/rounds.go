package game

import "strings"

// Round and score control: guess evaluation, round transitions, scoring and
// the game-over determination. A round ends through exactly one of a correct
// guess or a countdown expiry.

func (s *Session) evaluateGuess(guess string) {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return
	}
	s.guessHistory = append(s.guessHistory, guess)

	if strings.EqualFold(guess, s.secret) {
		scoring := s.activeTeam
		s.teams[scoring-1].Score += s.timeRemaining
		s.emit(EventCorrectGuess, CorrectGuessPayload{
			Guess:       guess,
			Secret:      s.secret,
			Scores:      s.scores(),
			ScoringTeam: scoring,
		})
		s.advanceRound()
		return
	}

	s.emit(EventNewGuess, NewGuessPayload{GuessHistory: s.historyCopy()})
	s.startRefinement(guess)
}

// handleTimerReport stores the countdown reported by the acting client. The
// session runs no clock of its own; the report is the round's authority.
func (s *Session) handleTimerReport(remaining int) {
	s.timeRemaining = remaining
	if remaining <= 0 {
		s.reportExpiry()
	}
}

func (s *Session) reportExpiry() {
	s.emit(EventTimeUp, TimeUpPayload{Secret: s.secret})
	s.advanceRound()
}

func (s *Session) advanceRound() {
	if s.round >= MaxRounds {
		s.finishGame()
		return
	}

	s.round++
	s.activeTeam = 3 - s.activeTeam
	s.turnID = newTurnID() // voids every in-flight call from the prior round
	s.usedSecrets = append(s.usedSecrets, s.secret)
	s.secret = s.words.Pick(s.usedSecrets)
	s.content = ""
	s.guessHistory = nil
	s.timeRemaining = RoundSeconds

	s.emit(EventNewRound, NewRoundPayload{
		Round:      s.round,
		ActiveTeam: s.activeTeam,
		Scores:     s.scores(),
		TurnID:     s.turnID,
	})

	turn := s.turnID
	s.schedule(s.roundStartDelay, func() {
		s.post(turnKickoff{turn: turn})
	})
}

func (s *Session) finishGame() {
	winner := "tie"
	switch {
	case s.teams[0].Score > s.teams[1].Score:
		winner = "team1"
	case s.teams[1].Score > s.teams[0].Score:
		winner = "team2"
	}
	s.emit(EventGameOver, GameOverPayload{Scores: s.scores(), Winner: winner})

	s.registry.Delete(s.id)
	if s.pendingCalls > 0 {
		s.log.Debug().Int("pending", s.pendingCalls).Msg("session ending with outstanding agent calls")
	}
	s.log.Info().Int("team1", s.teams[0].Score).Int("team2", s.teams[1].Score).Str("winner", winner).Msg("game over")
	s.finished = true
}
