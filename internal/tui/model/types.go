package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/config"
	"prism/internal/fileref"
	"prism/internal/highlight"
	"prism/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeBrowsing
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeBrowsing:
		return "Browsing"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Esc        key.Binding
	Quit       key.Binding
	Help       key.Binding
	Edit       key.Binding
	ToggleList key.Binding
	ToggleDark key.Binding
	ToggleLog  key.Binding
	CopyPath   key.Binding
}

// ShortHelp makes KeyMap satisfy help.KeyMap for the status bar hint line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.ToggleList, k.Help, k.Quit}
}

// FullHelp lists all bindings; the dedicated help overlay renders its own
// layout, so this mirrors ShortHelp grouped by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Edit},
		{k.ToggleList, k.ToggleDark, k.ToggleLog, k.CopyPath},
		{k.Help, k.Esc, k.Quit},
	}
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	QuittingMessage string
	DebugMode       bool
	DarkMode        bool
	ShowFileList    bool

	// Configuration
	Cfg config.Config

	// Viewer state
	Renderer      *highlight.Renderer
	RefList       list.Model
	CodeViewport  viewport.Model
	CurrentRender highlight.Result
	ViewerErr     string
	RenderedIndex int // index of the ref currently in the viewer, -1 before the first render

	// Resolved editor command for the hand-off
	EditorCommand string

	// UI plumbing
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Activity log (fed by the logging channel, shown in the log overlay)
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry
}

// SelectedRef returns the record under the list cursor and its position in
// the original input. The cursor index is relative to the filtered view, so
// the record identity has to come from the item itself.
func (m *Model) SelectedRef() (fileref.Ref, int, bool) {
	item, ok := m.RefList.SelectedItem().(RefItem)
	if !ok {
		return fileref.Ref{}, -1, false
	}
	return item.Ref, item.Index, true
}

// SetStatusMessage sets a transient status bar message and returns a command
// that clears it after the given duration. A second call cancels the pending
// clear of the first so an old timer cannot wipe a newer message.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}
	cancel := make(chan struct{})
	m.StatusBarClearCancel = cancel

	return func() tea.Msg {
		select {
		case <-time.After(clearAfter):
			return ClearStatusBarMsg{}
		case <-cancel:
			return nil
		}
	}
}

// AppendActivityLog adds a formatted line to the activity log, enforcing the
// length cap.
func (m *Model) AppendActivityLog(line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
