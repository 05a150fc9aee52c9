package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chutcheson/Sketchy/agents"
)

type sessionFixture struct {
	session  *Session
	sink     *recordingSink
	registry *Registry
	sched    *manualScheduler
	words    *MockWordSupplier
}

// newFixture builds a session whose run loop is NOT started: tests drive the
// unexported handlers directly, the way the session loop would.
func newFixture(t *testing.T, team1, team2 agents.Capabilities, secrets ...string) *sessionFixture {
	t.Helper()
	words := &MockWordSupplier{}
	for _, w := range secrets {
		words.On("Pick", mock.Anything).Return(w).Once()
	}
	sched := &manualScheduler{}
	sink := &recordingSink{}
	registry := NewRegistry()

	s := newSession(sessionParams{
		id:              "test-session",
		kinds:           [2]string{"team-one", "team-two"},
		caps:            [2]agents.Capabilities{team1, team2},
		sink:            sink,
		registry:        registry,
		words:           words,
		schedule:        sched.Schedule,
		thinkDelay:      time.Millisecond,
		roundStartDelay: time.Millisecond,
		log:             zerolog.Nop(),
	})
	registry.Add(s)

	return &sessionFixture{session: s, sink: sink, registry: registry, sched: sched, words: words}
}

func TestTurnCycle_IllustrateThenCorrectGuess(t *testing.T) {
	t.Parallel()
	agent := &MockAgent{}
	f := newFixture(t, agent, &MockAgent{}, "apple", "banana")
	s := f.session

	agent.On("Illustrate", mock.Anything, "apple", []string{}).Return("<svg>1</svg>", nil).Once()

	s.startIllustration()
	awaitAndDispatch(t, s)

	require.Equal(t, []string{EventIllustrationUpdate}, f.sink.Types())
	update := f.sink.Events()[0].Payload.(IllustrationUpdatePayload)
	assert.Equal(t, "<svg>1</svg>", update.Content)
	assert.Equal(t, s.turnID, update.TurnID)
	assert.Equal(t, "<svg>1</svg>", s.content)
	require.Equal(t, 1, f.sched.Len(), "a guess should be scheduled after the illustration")

	agent.On("Guess", mock.Anything, "<svg>1</svg>", []string{}).Return("APPLE", nil).Once()
	f.sched.RunAll()
	awaitAndDispatch(t, s)

	types := f.sink.Types()
	assert.Equal(t, []string{EventIllustrationUpdate, EventLLMGuess, EventCorrectGuess, EventNewRound}, types)

	correct := f.sink.Events()[2].Payload.(CorrectGuessPayload)
	assert.Equal(t, "APPLE", correct.Guess)
	assert.Equal(t, "apple", correct.Secret)
	assert.Equal(t, 1, correct.ScoringTeam)
	assert.Equal(t, [2]int{RoundSeconds, 0}, correct.Scores)

	newRound := f.sink.Events()[3].Payload.(NewRoundPayload)
	assert.Equal(t, 2, newRound.Round)
	assert.Equal(t, 2, newRound.ActiveTeam)
	assert.Equal(t, "banana", s.secret)

	agent.AssertExpectations(t)
}

func TestStaleIllustrationResultIsDiscarded(t *testing.T) {
	t.Parallel()
	f := newFixture(t, agents.HumanAgent{}, agents.HumanAgent{}, "apple", "banana")
	s := f.session

	staleTurn := s.turnID
	s.pendingCalls = 1 // simulate the outstanding call the result belongs to

	// The round ends by expiry before the illustration lands.
	s.handleTimerReport(0)
	require.NotEqual(t, staleTurn, s.turnID)
	f.sink.Reset()

	s.handleAgentResult(agentResult{call: callIllustrate, turn: staleTurn, content: "<late>"})

	assert.Empty(t, f.sink.Events(), "a stale result must publish nothing")
	assert.Empty(t, s.content, "a stale result must not mutate the drawing")
	assert.Zero(t, s.pendingCalls)
}

func TestStaleGuessResultIsDiscarded(t *testing.T) {
	t.Parallel()
	f := newFixture(t, agents.HumanAgent{}, agents.HumanAgent{}, "apple", "banana")
	s := f.session

	staleTurn := s.turnID
	s.pendingCalls = 1
	s.handleTimerReport(0)
	f.sink.Reset()

	s.handleAgentResult(agentResult{call: callGuess, turn: staleTurn, content: "apple"})

	assert.Empty(t, f.sink.Events())
	assert.Empty(t, s.guessHistory, "a stale guess must not enter the history")
	assert.Equal(t, [2]int{0, 0}, s.scores())
}

func TestStaleKickoffIsDropped(t *testing.T) {
	t.Parallel()
	f := newFixture(t, agents.HumanAgent{}, agents.HumanAgent{}, "apple")
	s := f.session

	s.handleTurnKickoff("some-finished-turn")

	assert.Empty(t, f.sink.Events())
	assert.Zero(t, s.pendingCalls)
}

func TestHumanTurnProducesPlaceholderAndNoAutomatedGuess(t *testing.T) {
	t.Parallel()
	f := newFixture(t, agents.HumanAgent{}, agents.HumanAgent{}, "apple")
	s := f.session

	s.startIllustration()
	awaitAndDispatch(t, s)

	require.Equal(t, []string{EventIllustrationUpdate}, f.sink.Types())
	update := f.sink.Events()[0].Payload.(IllustrationUpdatePayload)
	assert.Equal(t, agents.WaitingPlaceholder, update.Content)

	// The scheduled guess call is a no-op for a human team: no llm_guess,
	// no error.
	require.Equal(t, 1, f.sched.Len())
	f.sched.RunAll()
	awaitAndDispatch(t, s)

	assert.Equal(t, []string{EventIllustrationUpdate}, f.sink.Types())
	assert.Zero(t, s.pendingCalls)
}

func TestWrongGuessTriggersRefinement(t *testing.T) {
	t.Parallel()
	agent := &MockAgent{}
	f := newFixture(t, agent, &MockAgent{}, "apple")
	s := f.session
	s.content = "<svg>1</svg>"

	agent.On("Refine", mock.Anything, "apple", "<svg>1</svg>", "pear", []string{"pear"}).
		Return("<svg>2</svg>", nil).Once()

	s.evaluateGuess("pear")

	require.Equal(t, []string{EventNewGuess}, f.sink.Types())
	assert.Equal(t, []string{"pear"}, f.sink.Events()[0].Payload.(NewGuessPayload).GuessHistory)

	awaitAndDispatch(t, s) // refinement result

	types := f.sink.Types()
	require.Equal(t, []string{EventNewGuess, EventIllustrationUpdate}, types)
	assert.Equal(t, "<svg>2</svg>", s.content)
	require.Equal(t, 1, f.sched.Len(), "the refined drawing should schedule another guess")

	agent.AssertExpectations(t)
}

func TestAgentFailureKeepsTurnAlive(t *testing.T) {
	t.Parallel()
	agent := &MockAgent{}
	f := newFixture(t, agent, &MockAgent{}, "apple", "banana")
	s := f.session

	agent.On("Illustrate", mock.Anything, "apple", []string{}).
		Return("", errors.New("upstream exploded")).Once()

	turnBefore := s.turnID
	s.startIllustration()
	awaitAndDispatch(t, s)

	require.Equal(t, []string{EventError}, f.sink.Types())
	assert.Equal(t, "Failed to generate illustration", f.sink.Events()[0].Payload.(ErrorPayload).Message)
	assert.Equal(t, turnBefore, s.turnID, "an agent failure must not advance the round")
	assert.Equal(t, 1, s.round)
	assert.Zero(t, f.sched.Len(), "no guess may follow a failed illustration")

	// The round still resolves through the normal submission path.
	f.sink.Reset()
	s.evaluateGuess("apple")
	assert.Equal(t, []string{EventCorrectGuess, EventNewRound}, f.sink.Types())

	agent.AssertExpectations(t)
}

func TestGuessFromAgentIsTrimmedAndEvaluated(t *testing.T) {
	t.Parallel()
	f := newFixture(t, &MockAgent{}, &MockAgent{}, "apple", "banana")
	s := f.session

	s.handleAgentResult(agentResult{call: callGuess, turn: s.turnID, content: "  Apple \n"})

	types := f.sink.Types()
	require.Equal(t, []string{EventLLMGuess, EventCorrectGuess, EventNewRound}, types)
	assert.Equal(t, "Apple", f.sink.Events()[0].Payload.(LLMGuessPayload).Guess)
}
