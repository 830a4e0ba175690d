package controller

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/highlight"
	"prism/internal/tui/model"
	"prism/internal/tui/view"
)

const dispatchSubsystem = "ControllerDispatch"

// Update is the central message routing function for the TUI. It receives
// all Bubble Tea messages and directs them to the appropriate handler based
// on message type and current application mode.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.FileRenderedMsg:
		return handleFileRenderedMsg(m, msg)

	case model.EditorFinishedMsg:
		return handleEditorFinishedMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil
		return m, nil

	case model.NewLogEntryMsg:
		m.AppendActivityLog(view.FormatLogEntry(msg.Entry))
		return m, model.WaitForLogEntryCmd(m.LogChannel)
	}

	// Everything else is component-internal, like the asynchronous filter
	// results the list emits after the user types a filter. Applying a
	// filter can move the cursor onto a different record, so check whether
	// the viewer needs a new render.
	var listCmd tea.Cmd
	m.RefList, listCmd = m.RefList.Update(msg)
	return m, tea.Batch(listCmd, renderOnSelectionChange(m))
}

// handleFileRenderedMsg loads a finished render into the viewer, or shows
// the recoverable error as an inline notice.
func handleFileRenderedMsg(m *model.Model, msg model.FileRenderedMsg) (*model.Model, tea.Cmd) {
	// A stale render for a ref the user already moved off is dropped.
	if _, idx, ok := m.SelectedRef(); !ok || idx != msg.Index {
		return m, nil
	}

	m.RenderedIndex = msg.Index

	if msg.Err != nil {
		m.ViewerErr = msg.Err.Error()
		m.CurrentRender = highlight.Result{}
		switch {
		case errors.Is(msg.Err, highlight.ErrBinary):
			LogWarn(dispatchSubsystem, "binary content: %v", msg.Err)
		case errors.Is(msg.Err, highlight.ErrLineRange):
			LogWarn(dispatchSubsystem, "line out of range: %v", msg.Err)
		default:
			LogError(dispatchSubsystem, msg.Err, "failed to render file")
		}
		return m, nil
	}

	m.ViewerErr = ""
	m.CurrentRender = msg.Result
	m.CodeViewport.SetContent(msg.Result.Content())
	scrollToFocus(m)
	return m, nil
}

// scrollToFocus positions the viewport so the focused line sits at the
// configured fraction from the top of the viewer.
func scrollToFocus(m *model.Model) {
	if m.CurrentRender.FocusIndex < 0 {
		m.CodeViewport.GotoTop()
		return
	}
	offset := m.CurrentRender.FocusIndex - int(m.Cfg.ScrollOffset*float64(m.CodeViewport.Height))
	if offset < 0 {
		offset = 0
	}
	m.CodeViewport.SetYOffset(offset)
}

func handleEditorFinishedMsg(m *model.Model, msg model.EditorFinishedMsg) (*model.Model, tea.Cmd) {
	cmds := []tea.Cmd{}

	if msg.Err != nil {
		LogError(editorSubsystem, msg.Err, "editor exited with error for %s", msg.Path)
		cmds = append(cmds, m.SetStatusMessage("Editor failed: "+msg.Err.Error(), model.StatusBarError, 5*time.Second))
	} else {
		LogInfo(editorSubsystem, "editor closed for %s", msg.Path)
	}

	// The file may have changed under the editor; render it again.
	if ref, idx, ok := m.SelectedRef(); ok {
		cmds = append(cmds, model.RenderFileCmd(m.Renderer, ref, idx))
	}
	return m, tea.Batch(cmds...)
}
