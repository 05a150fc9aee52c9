package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/chutcheson/Sketchy/agents"
)

const (
	// MaxRounds bounds a game; reaching it ends the session.
	MaxRounds = 10
	// RoundSeconds is the full countdown a round starts with.
	RoundSeconds = 60

	// DefaultThinkDelay separates an illustration update from the guess it
	// provokes, so observers see the drawing before the answer.
	DefaultThinkDelay = 2 * time.Second
	// DefaultRoundStartDelay lets clients settle on the cleared state before
	// the new round's first illustration call goes out.
	DefaultRoundStartDelay = 500 * time.Millisecond
)

// WordSupplier hands out secret words, skipping the ones in exclude.
type WordSupplier interface {
	Pick(exclude []string) string
}

// EventSink delivers session events to whoever is watching the game.
type EventSink interface {
	Send(ev Event) error
}

// ScheduleFunc runs fn after d. Production uses time.AfterFunc; tests
// substitute their own clock.
type ScheduleFunc func(d time.Duration, fn func())

// AgentFactory resolves a team kind to its capabilities.
type AgentFactory func(kind string) (agents.Capabilities, error)

// Team is one of the two sides of a session.
type Team struct {
	Kind  string
	Score int
}

// Session holds one game's full state. All fields below the config block are
// owned by the session's run loop: nothing outside it reads or writes them.
type Session struct {
	id   string
	caps [2]agents.Capabilities
	sink EventSink

	registry        *Registry
	words           WordSupplier
	schedule        ScheduleFunc
	thinkDelay      time.Duration
	roundStartDelay time.Duration
	log             zerolog.Logger

	teams         [2]Team
	activeTeam    int // 1 or 2; illustrator and guesser for the round
	round         int
	turnID        string
	secret        string
	content       string
	guessHistory  []string
	timeRemaining int
	pendingCalls  int // outstanding agent calls, diagnostics only
	usedSecrets   []string
	finished      bool

	inbox chan message
	done  chan struct{}
}

// Snapshot is a point-in-time copy of session state for diagnostics and
// tests; it never aliases live state.
type Snapshot struct {
	Round         int
	ActiveTeam    int
	TurnID        string
	Secret        string
	Content       string
	GuessHistory  []string
	Scores        [2]int
	TimeRemaining int
	PendingCalls  int
}

// message is anything the run loop knows how to dispatch.
type message any

type guessSubmission struct {
	guess string
}

type timerReport struct {
	remaining int
}

type gameDataQuery struct {
	reply chan GameData
}

type stateQuery struct {
	reply chan Snapshot
}

// turnKickoff starts the illustration cycle for the round identified by
// turn; it is dropped if the round has already moved on.
type turnKickoff struct {
	turn string
}

type agentCall int

const (
	callIllustrate agentCall = iota
	callRefine
	callGuess
)

// agentResult is the completion of one asynchronous capability call, tagged
// with the turn token captured when the call was issued.
type agentResult struct {
	call    agentCall
	turn    string
	content string
	err     error
}
