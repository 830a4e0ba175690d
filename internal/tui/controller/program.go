package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/config"
	"prism/internal/fileref"
	"prism/internal/tui/design"
	"prism/internal/tui/model"
	"prism/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the given records.
func NewProgram(
	refs []fileref.Ref,
	cfg config.Config,
	debugMode bool,
	darkMode bool,
	editorCommand string,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	design.Initialize(darkMode)

	m, err := model.InitializeModel(refs, cfg, debugMode, darkMode, editorCommand, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, nil
}
