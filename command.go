package nativeshell

import "strings"

// Command is a lifecycle notification from the window system.
type Command uint8

const (
	CmdSaveState     Command = iota // persist state before the app may be killed
	CmdInitWindow                   // a window is ready for rendering
	CmdTermWindow                   // the window is going away
	CmdStop                         // the app is no longer visible
	CmdGainedFocus                  // input focus was gained
	CmdLostFocus                    // input focus was lost
	CmdLowMemory                    // the system is low on memory
	CmdConfigChanged                // display metrics changed
)

var commandNames = [...]string{
	CmdSaveState:     "save_state",
	CmdInitWindow:    "init_window",
	CmdTermWindow:    "term_window",
	CmdStop:          "stop",
	CmdGainedFocus:   "gained_focus",
	CmdLostFocus:     "lost_focus",
	CmdLowMemory:     "low_memory",
	CmdConfigChanged: "config_changed",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand maps a command name such as "init_window" to its Command.
// Matching ignores case and accepts '-' in place of '_'.
func ParseCommand(s string) (Command, bool) {
	s = strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for i, name := range commandNames {
		if name == s {
			return Command(i), true
		}
	}
	return 0, false
}
