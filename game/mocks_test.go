package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- agents.Capabilities ---

type MockAgent struct {
	mock.Mock
}

func (m *MockAgent) Illustrate(ctx context.Context, secret string, guesses []string) (string, error) {
	args := m.Called(ctx, secret, guesses)
	return args.String(0), args.Error(1)
}

func (m *MockAgent) Refine(ctx context.Context, secret, current, latestGuess string, guesses []string) (string, error) {
	args := m.Called(ctx, secret, current, latestGuess, guesses)
	return args.String(0), args.Error(1)
}

func (m *MockAgent) Guess(ctx context.Context, content string, guesses []string) (string, error) {
	args := m.Called(ctx, content, guesses)
	return args.String(0), args.Error(1)
}

// --- WordSupplier ---

type MockWordSupplier struct {
	mock.Mock
}

func (m *MockWordSupplier) Pick(exclude []string) string {
	args := m.Called(exclude)
	return args.String(0)
}

// --- EventSink ---

// recordingSink buffers every event so tests can assert on exactly what was
// published, in order.
type recordingSink struct {
	locker sync.Mutex
	events []Event
}

func (r *recordingSink) Send(ev Event) error {
	r.locker.Lock()
	r.events = append(r.events, ev)
	r.locker.Unlock()
	return nil
}

func (r *recordingSink) Events() []Event {
	r.locker.Lock()
	defer r.locker.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingSink) Types() []string {
	events := r.Events()
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func (r *recordingSink) Last() Event {
	events := r.Events()
	if len(events) == 0 {
		return Event{}
	}
	return events[len(events)-1]
}

func (r *recordingSink) Reset() {
	r.locker.Lock()
	r.events = nil
	r.locker.Unlock()
}

// --- scheduler ---

// manualScheduler captures scheduled work so tests decide when (and whether)
// it runs.
type manualScheduler struct {
	locker sync.Mutex
	tasks  []func()
}

func (m *manualScheduler) Schedule(_ time.Duration, fn func()) {
	m.locker.Lock()
	m.tasks = append(m.tasks, fn)
	m.locker.Unlock()
}

func (m *manualScheduler) RunAll() {
	m.locker.Lock()
	tasks := m.tasks
	m.tasks = nil
	m.locker.Unlock()
	for _, fn := range tasks {
		fn()
	}
}

func (m *manualScheduler) Len() int {
	m.locker.Lock()
	defer m.locker.Unlock()
	return len(m.tasks)
}

func discardScheduler(_ time.Duration, _ func()) {}

// awaitAndDispatch waits for the next message posted to the session's inbox
// and dispatches it on the test goroutine, standing in for the run loop.
func awaitAndDispatch(t *testing.T, s *Session) {
	t.Helper()
	select {
	case msg := <-s.inbox:
		s.dispatch(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a session message")
	}
}
