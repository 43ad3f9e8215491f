package tui

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// timerTickMsg is one second of countdown. Ticks from an older generation
// are stale and dropped.
type timerTickMsg struct {
	gen uint64
}

// toastExpiredMsg hides the completion toast it belongs to
type toastExpiredMsg struct {
	id int
}

// settingsSavedMsg reports the outcome of a settings change
type settingsSavedMsg struct {
	field string
	err   error
}
