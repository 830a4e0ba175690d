package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/fileref"
	"prism/internal/highlight"
	"prism/pkg/logging"
)

// RenderFileCmd renders the record's file off the hot path of the event
// loop and reports back as a FileRenderedMsg.
func RenderFileCmd(r *highlight.Renderer, ref fileref.Ref, index int) tea.Cmd {
	return func() tea.Msg {
		result, err := r.Render(ref.Path, ref.Line, ref.Match)
		return FileRenderedMsg{Index: index, Result: result, Err: err}
	}
}

// WaitForLogEntryCmd blocks on the logging channel and forwards the next
// entry. The controller re-issues it after every delivery.
func WaitForLogEntryCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
