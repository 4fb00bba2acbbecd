package annotation

import "fyne.io/fyne/v2"

// Command is a user action delivered to a Session, independent of whether
// it came from a button, a menu or a key press.
type Command int

const (
	CommandReset Command = iota
	CommandSkip
	CommandExport
	CommandUndo
	CommandNext
)

func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandSkip:
		return "skip"
	case CommandExport:
		return "export"
	case CommandUndo:
		return "undo"
	case CommandNext:
		return "next"
	default:
		return "unknown"
	}
}

var keyCommands = map[fyne.KeyName]Command{
	fyne.KeyR: CommandReset,
	fyne.KeyS: CommandSkip,
	fyne.KeyE: CommandExport,
	fyne.KeyZ: CommandUndo,
	fyne.KeyW: CommandNext,
}

// CommandForKey maps a key press to its command. Letter keys are matched by
// name, so modifiers and caps lock make no difference.
func CommandForKey(key fyne.KeyName) (Command, bool) {
	cmd, ok := keyCommands[key]
	return cmd, ok
}
