// Package agents holds the illustrator/guesser capabilities behind a team.
// A team is played either by a human (the server produces nothing and waits
// for input over the normal submission interface) or by a model reached over
// HTTP. The game loop calls one uniform interface and never branches on the
// kind of agent it is talking to.
package agents

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrHumanDriven is returned by capabilities that a human performs outside
// the server (guessing, refining a drawing). Callers treat it as "nothing to
// do here", not as a failure.
var ErrHumanDriven = errors.New("agents: capability is human driven")

// ErrUnknownKind is returned by New for an empty or unrecognised team kind.
var ErrUnknownKind = errors.New("agents: unknown agent kind")

// Capabilities is the full set of actions a team's agent can perform.
// Implementations may take seconds per call; callers are expected to invoke
// them off the game loop and revalidate state when the result lands.
type Capabilities interface {
	// Illustrate produces a drawing for the secret word.
	Illustrate(ctx context.Context, secret string, guesses []string) (string, error)
	// Refine reworks the current drawing after a wrong guess.
	Refine(ctx context.Context, secret, current, latestGuess string, guesses []string) (string, error)
	// Guess names the word a drawing represents.
	Guess(ctx context.Context, content string, guesses []string) (string, error)
}

// Config carries the credentials and transport shared by automated agents.
type Config struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// AnthropicBaseURL / OpenAIBaseURL override the API endpoints, used by
	// tests to point agents at a local server.
	AnthropicBaseURL string
	OpenAIBaseURL    string

	HTTPClient *http.Client
}

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

// New builds the capabilities for a team kind. "human" gets the passive
// human agent; kinds naming a claude model go to Anthropic; any other model
// name goes to an OpenAI-compatible endpoint.
func New(kind string, cfg Config) (Capabilities, error) {
	switch {
	case kind == KindHuman:
		return HumanAgent{}, nil
	case strings.Contains(kind, "claude"):
		return newAnthropicAgent(kind, cfg), nil
	case kind != "":
		return newOpenAIAgent(kind, cfg), nil
	default:
		return nil, ErrUnknownKind
	}
}

// KindHuman marks a team played by a person instead of a model.
const KindHuman = "human"

// WaitingPlaceholder is the drawing shown while a human illustrator works on
// the real one outside the server.
const WaitingPlaceholder = `<svg width="400" height="400" viewBox="0 0 400 400" xmlns="http://www.w3.org/2000/svg"><rect width="400" height="400" fill="#f5f5f5"/><circle cx="200" cy="180" r="40" fill="none" stroke="#bbb" stroke-width="6" stroke-dasharray="20 12"/><text x="200" y="280" text-anchor="middle" font-family="sans-serif" font-size="18" fill="#999">waiting for drawing...</text></svg>`

// HumanAgent satisfies Capabilities for a team played by a person. The
// drawing and the guesses arrive through the external submission interface,
// so every capability here is a no-op.
type HumanAgent struct{}

func (HumanAgent) Illustrate(_ context.Context, _ string, _ []string) (string, error) {
	return WaitingPlaceholder, nil
}

func (HumanAgent) Refine(_ context.Context, _, _, _ string, _ []string) (string, error) {
	return "", ErrHumanDriven
}

func (HumanAgent) Guess(_ context.Context, _ string, _ []string) (string, error) {
	return "", ErrHumanDriven
}
