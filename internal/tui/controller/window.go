package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/tui/model"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
// It also transitions ModeInitializing → ModeBrowsing once the size is
// known, triggering the first render of the selected record.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeBrowsing
		if ref, idx, ok := m.SelectedRef(); ok {
			return m, model.RenderFileCmd(m.Renderer, ref, idx)
		}
	}
	return m, nil
}
