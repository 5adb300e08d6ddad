package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/patternkit/pkg/patternkit/command"
	"github.com/randalmurphal/patternkit/pkg/patternkit/config"
	"github.com/randalmurphal/patternkit/pkg/patternkit/journal"
)

func newCommandCmd(a *app) *cobra.Command {
	var (
		journalPath string
		presses     string
	)

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Drive a TV with an undoable remote control",
		Long: `Drive a TV with an undoable remote control.

Slot 0 switches the TV on, slot 1 raises the volume. --presses is a comma
separated list of slot numbers and "u" for undo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := parsePresses(presses)
			if err != nil {
				return err
			}

			store, err := openJournal(a.settings, journalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			remote, err := command.NewRemote(a.settings.RemoteSlots,
				command.WithJournal(store),
				command.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			if err := remote.SetCommand(0, command.NewTVOnCommand(command.NewTV(a.logger))); err != nil {
				return err
			}
			if remote.Slots() > 1 {
				if err := remote.SetCommand(1, command.NewVolumeCommand(command.NewVolume(a.logger))); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			for _, slot := range steps {
				var msg string
				if slot < 0 {
					msg, err = remote.PressUndo(ctx)
				} else {
					msg, err = remote.PressButton(ctx, slot)
				}
				if err != nil {
					return err
				}
				if msg != "" {
					printLines(cmd, msg)
				}
			}

			n, err := store.Len()
			if err != nil {
				return err
			}
			printLines(cmd, fmt.Sprintf("journal entries: %d", n))
			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "", "SQLite journal file (overrides the configured journal)")
	cmd.Flags().StringVar(&presses, "presses", "0,1,1,u,u,u", "presses to run")
	return cmd
}

// parsePresses turns "0,1,u" into slots, with -1 standing for undo.
func parsePresses(presses string) ([]int, error) {
	var steps []int
	for _, field := range strings.Split(presses, ",") {
		field = strings.TrimSpace(field)
		switch field {
		case "":
			continue
		case "u", "undo":
			steps = append(steps, -1)
		default:
			slot, err := strconv.Atoi(field)
			if err != nil || slot < 0 {
				return nil, fmt.Errorf("invalid press %q: want a slot number or u", field)
			}
			steps = append(steps, slot)
		}
	}
	return steps, nil
}

// openJournal opens the journal chosen by flag or settings.
func openJournal(s config.Settings, path string) (journal.Store, error) {
	if path == "" && s.JournalDriver == config.JournalSQLite {
		path = s.JournalPath
	}
	if path == "" {
		return journal.NewMemoryStore(), nil
	}
	store, err := journal.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return store, nil
}
