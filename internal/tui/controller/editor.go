package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/editor"
	"prism/internal/tui/model"
)

const editorSubsystem = "Editor"

// openEditorCmd suspends the TUI, runs the external editor against the
// selected record and resumes when it exits. The Bubble Tea runtime
// releases the terminal for the child process and restores the alt screen
// afterwards.
func openEditorCmd(m *model.Model) tea.Cmd {
	ref, _, ok := m.SelectedRef()
	if !ok {
		return nil
	}

	cmd := editor.Command(m.EditorCommand, ref.Path, ref.Line)
	LogInfo(editorSubsystem, "opening %s with %s", ref.Path, cmd.Path)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return model.EditorFinishedMsg{Path: ref.Path, Err: err}
	})
}
