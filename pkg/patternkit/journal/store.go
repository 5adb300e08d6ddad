// Package journal records the history of remote-control presses and undos.
package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
)

// Action is what happened to a command.
type Action string

const (
	ActionExecute Action = "execute"
	ActionUndo    Action = "undo"
)

// Entry is one journaled press.
type Entry struct {
	ID        uuid.UUID
	Seq       int
	Slot      int
	Command   string
	Action    Action
	Timestamp time.Time
}

// Store persists journal entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores e and returns it with Seq assigned. A nil ID and a zero
	// Timestamp are filled in.
	Append(e Entry) (Entry, error)

	// List returns all entries ordered by Seq.
	// Returns empty slice (not error) if the journal is empty.
	List() ([]Entry, error)

	// Len returns the number of entries.
	Len() (int, error)

	// Clear removes every entry. Sequence numbers restart at 1.
	Clear() error

	// Close releases any resources (connections, files).
	Close() error
}

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("journal store closed")

// prepare validates e and fills in the generated fields except Seq.
func prepare(e Entry) (Entry, error) {
	switch e.Action {
	case ActionExecute, ActionUndo:
	default:
		return Entry{}, &perrors.ValidationError{Field: "action", Message: "unknown action " + string(e.Action)}
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return e, nil
}
