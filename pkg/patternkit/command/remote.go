package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/journal"
)

// ErrInvalidSlot is returned for a button number outside the remote.
var ErrInvalidSlot = errors.New("invalid remote slot")

// Option configures a Remote.
type Option func(*Remote)

// WithJournal records every press and undo in store.
func WithJournal(store journal.Store) Option {
	return func(r *Remote) {
		r.journal = store
	}
}

// WithLogger sets the logger used for press events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Remote) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// pressed is one history element.
type pressed struct {
	slot int
	cmd  Command
}

// Remote is a multi-button invoker with an undo history.
// It is safe for concurrent use.
type Remote struct {
	mu       sync.Mutex
	commands []Command
	history  []pressed

	journal journal.Store
	logger  *slog.Logger
}

// NewRemote creates a remote with the given number of slots, all bound to
// NoCommand.
func NewRemote(slots int, opts ...Option) (*Remote, error) {
	if slots <= 0 {
		return nil, &perrors.ValidationError{Field: "slots", Message: fmt.Sprintf("must be positive, got %d", slots)}
	}
	r := &Remote{
		commands: make([]Command, slots),
		logger:   slog.Default(),
	}
	for i := range r.commands {
		r.commands[i] = NoCommand{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Slots returns the number of buttons.
func (r *Remote) Slots() int {
	return len(r.commands)
}

// SetCommand binds cmd to slot. A nil cmd resets the slot to NoCommand.
func (r *Remote) SetCommand(slot int, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return err
	}
	if cmd == nil {
		cmd = NoCommand{}
	}
	r.commands[slot] = cmd
	return nil
}

// PressButton executes the command in slot and pushes it onto the history.
func (r *Remote) PressButton(ctx context.Context, slot int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return "", err
	}
	cmd := r.commands[slot]
	msg := cmd.Execute()
	r.history = append(r.history, pressed{slot: slot, cmd: cmd})

	r.logger.Debug("button pressed",
		slog.Int("slot", slot),
		slog.String("command", cmd.Name()),
	)
	return msg, r.record(slot, cmd, journal.ActionExecute)
}

// PressUndo undoes the most recently pressed command. It does nothing when
// the history is empty.
func (r *Remote) PressUndo(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return "", nil
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	msg := last.cmd.Undo()

	r.logger.Debug("undo pressed",
		slog.Int("slot", last.slot),
		slog.String("command", last.cmd.Name()),
	)
	return msg, r.record(last.slot, last.cmd, journal.ActionUndo)
}

// History returns the command names on the undo stack, oldest first.
func (r *Remote) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.history))
	for i, p := range r.history {
		names[i] = p.cmd.Name()
	}
	return names
}

func (r *Remote) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.commands) {
		return fmt.Errorf("%w: %d (remote has %d)", ErrInvalidSlot, slot, len(r.commands))
	}
	return nil
}

func (r *Remote) record(slot int, cmd Command, action journal.Action) error {
	if r.journal == nil {
		return nil
	}
	if _, err := r.journal.Append(journal.Entry{Slot: slot, Command: cmd.Name(), Action: action}); err != nil {
		return fmt.Errorf("journal %s: %w", action, err)
	}
	return nil
}
