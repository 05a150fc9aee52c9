package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newSessionID builds an id from the creation time plus a random suffix.
// The timestamp keeps ids sortable by creation; the suffix breaks collisions
// between sessions created within the same millisecond.
func newSessionID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// newTurnID issues the opaque token tagging one round's asynchronous work.
func newTurnID() string {
	return uuid.NewString()
}
