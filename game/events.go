package game

// Event is the envelope for every server-to-client message.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

const (
	EventGameCreated        = "game_created"
	EventIllustrationUpdate = "illustration_update"
	EventNewGuess           = "new_guess"
	EventLLMGuess           = "llm_guess"
	EventCorrectGuess       = "correct_guess"
	EventTimeUp             = "time_up"
	EventNewRound           = "new_round"
	EventGameOver           = "game_over"
	EventGameData           = "game_data"
	EventError              = "error"
)

type GameCreatedPayload struct {
	SessionID string    `json:"sessionId"`
	TeamKinds [2]string `json:"teamKinds"`
	Round     int       `json:"round"`
	TurnID    string    `json:"turnId"`
}

type IllustrationUpdatePayload struct {
	Content      string   `json:"content"`
	GuessHistory []string `json:"guessHistory"`
	TurnID       string   `json:"turnId"`
}

type NewGuessPayload struct {
	GuessHistory []string `json:"guessHistory"`
}

// LLMGuessPayload announces a guess produced by an automated guesser. It is
// informational only; the session evaluates the guess itself.
type LLMGuessPayload struct {
	Guess  string `json:"guess"`
	TurnID string `json:"turnId"`
}

type CorrectGuessPayload struct {
	Guess       string `json:"guess"`
	Secret      string `json:"secret"`
	Scores      [2]int `json:"scores"`
	ScoringTeam int    `json:"scoringTeam"`
}

type TimeUpPayload struct {
	Secret string `json:"secret"`
}

type NewRoundPayload struct {
	Round      int    `json:"round"`
	ActiveTeam int    `json:"activeTeam"`
	Scores     [2]int `json:"scores"`
	TurnID     string `json:"turnId"`
}

type GameOverPayload struct {
	Scores [2]int `json:"scores"`
	Winner string `json:"winner"` // "team1", "team2" or "tie"
}

// GameData is what a human-playing client fetches to see its own team's
// secret for the current round.
type GameData struct {
	Secret     string `json:"secret"`
	ActiveTeam int    `json:"activeTeam"`
	Round      int    `json:"round"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
