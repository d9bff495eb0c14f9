package nativeshell

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CmdSaveState, "save_state"},
		{CmdInitWindow, "init_window"},
		{CmdTermWindow, "term_window"},
		{CmdStop, "stop"},
		{CmdGainedFocus, "gained_focus"},
		{CmdLostFocus, "lost_focus"},
		{CmdLowMemory, "low_memory"},
		{CmdConfigChanged, "config_changed"},
		{Command(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"init_window", CmdInitWindow, true},
		{"TERM_WINDOW", CmdTermWindow, true},
		{"lost-focus", CmdLostFocus, true},
		{"config_changed", CmdConfigChanged, true},
		{"resume", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCommand(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseCommand(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
