package tui

// restoreDoneMsg is sent when the startup session restore completes; the
// session manager's status says which screen comes next.
type restoreDoneMsg struct{}

// authResultMsg is sent when an asynchronous login or register completes.
type authResultMsg struct {
	err error
}

// refreshDoneMsg is sent when a full snapshot refresh completes.
type refreshDoneMsg struct {
	err error
}

// protocolDoneMsg is sent when a mutating protocol (eligibility check, scheme
// application, profile submission) completes. The label names the action for
// the status bar.
type protocolDoneMsg struct {
	label string
	err   error
}

// markReadDoneMsg is sent when a mark-notification-read round trip completes.
type markReadDoneMsg struct {
	err error
}

// noticeFadeMsg clears a transient status bar notice.
type noticeFadeMsg struct{}
