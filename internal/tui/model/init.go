package model

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prism/internal/config"
	"prism/internal/fileref"
	"prism/internal/highlight"
	"prism/internal/tui/design"
	"prism/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open in editor"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "open in editor"),
		),
		ToggleList: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle file list"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selected path"),
		),
	}
}

// RefItem adapts a fileref.Ref to the bubbles list. Index is the record's
// position in the original input; the list's own cursor index shifts with
// the active filter and cannot identify the record.
type RefItem struct {
	Ref   fileref.Ref
	Index int
}

// Title shows the file name with its line reference, as produced by
// grep -Hn style tools.
func (i RefItem) Title() string {
	name := filepath.Base(i.Ref.Path)
	if i.Ref.Line > 0 {
		return fmt.Sprintf("%s:%d", name, i.Ref.Line)
	}
	return name
}

// Description shows the containing directory.
func (i RefItem) Description() string {
	dir := filepath.Dir(i.Ref.Path)
	if dir == "." {
		return "./"
	}
	return dir + "/"
}

func (i RefItem) FilterValue() string { return i.Ref.Path }

func newRefListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(design.ColorPrimary).
		BorderLeftForeground(design.ColorPrimary)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(design.ColorSecondary).
		BorderLeftForeground(design.ColorPrimary)
	return d
}

func newRefList(refs []fileref.Ref) list.Model {
	items := make([]list.Item, len(refs))
	for i, ref := range refs {
		items[i] = RefItem{Ref: ref, Index: i}
	}

	l := list.New(items, newRefListDelegate(), 0, 0)
	l.Title = "Files"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(design.ColorPrimary).
		PaddingLeft(1)
	return l
}

// InitializeModel builds the TUI model for the given records.
func InitializeModel(
	refs []fileref.Ref,
	cfg config.Config,
	debugMode bool,
	darkMode bool,
	editorCommand string,
	logChannel <-chan logging.LogEntry,
) (*Model, error) {
	if len(refs) == 0 {
		return nil, errors.New("no file records to display")
	}

	m := &Model{
		CurrentAppMode: ModeInitializing,
		DebugMode:      debugMode,
		DarkMode:       darkMode,
		ShowFileList:   true,
		Cfg:            cfg,
		Renderer:       highlight.NewRenderer(cfg.ResolvedTheme(), cfg.ShowLineNumbers()),
		RefList:        newRefList(refs),
		CodeViewport:   viewport.New(0, 0),
		LogViewport:    viewport.New(0, 0),
		EditorCommand:  editorCommand,
		RenderedIndex:  -1,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     logChannel,
	}
	return m, nil
}

// Init returns the initial commands: start draining the log channel. The
// first file render is triggered by the initial window size message, once
// the viewer dimensions are known.
func (m *Model) Init() tea.Cmd {
	return WaitForLogEntryCmd(m.LogChannel)
}
