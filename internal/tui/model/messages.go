package model

import (
	"prism/internal/highlight"
	"prism/pkg/logging"
)

// ---- Viewer messages ----

// FileRenderedMsg carries the result of rendering the selected record.
type FileRenderedMsg struct {
	Index  int
	Result highlight.Result
	Err    error
}

// ---- Editor hand-off messages ----

// EditorFinishedMsg is delivered when the external editor process exits and
// the TUI resumes.
type EditorFinishedMsg struct {
	Path string
	Err  error
}

// ---- Status bar messages ----

// ClearStatusBarMsg clears the transient status bar message.
type ClearStatusBarMsg struct{}

// ---- Logging messages ----

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
