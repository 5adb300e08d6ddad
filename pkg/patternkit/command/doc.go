/*
Package command wraps receiver actions in undoable command objects.

A Remote holds a fixed number of button slots, each bound to a Command
(NoCommand by default). Pressing a button executes the command and pushes it
onto the undo history; PressUndo pops the most recent command and undoes it.

	tv := command.NewTV(logger)
	volume := command.NewVolume(logger)

	remote, err := command.NewRemote(2, command.WithJournal(store))
	if err != nil {
	    return err
	}
	remote.SetCommand(0, command.NewTVOnCommand(tv))
	remote.SetCommand(1, command.NewVolumeCommand(volume))

	remote.PressButton(ctx, 0) // "TV is on"
	remote.PressButton(ctx, 1) // "volume level 1"
	remote.PressUndo(ctx)      // "volume level 0"

When a journal.Store is configured every press and undo is appended to it.
*/
package command
