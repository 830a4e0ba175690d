package controller

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"prism/internal/tui/design"
	"prism/internal/tui/model"
)

const keySubsystem = "KeyHandler"

// handleKeyMsg processes key presses, per mode. Overlays swallow their own
// keys; the browse view routes between the file list and the viewer.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// While the list filter input is active, every key belongs to it.
	if m.CurrentAppMode == model.ModeBrowsing && m.RefList.FilterState() == list.Filtering {
		var listCmd tea.Cmd
		m.RefList, listCmd = m.RefList.Update(keyMsg)
		return m, tea.Batch(listCmd, renderOnSelectionChange(m))
	}

	// Global quit shortcuts.
	if key.Matches(keyMsg, m.Keys.Quit) {
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Bye."
		return m, tea.Quit
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return handleKeyMsgHelpOverlay(m, keyMsg)
	case model.ModeLogOverlay:
		return handleKeyMsgLogOverlay(m, keyMsg)
	default:
		return handleKeyMsgBrowsing(m, keyMsg)
	}
}

func handleKeyMsgHelpOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "h", "?":
		m.CurrentAppMode = model.ModeBrowsing
	}
	return m, nil
}

func handleKeyMsgLogOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "L":
		m.CurrentAppMode = model.ModeBrowsing
		return m, nil
	case "y":
		if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(keySubsystem, err, "failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	default:
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	}
}

func handleKeyMsgBrowsing(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleList):
		m.ShowFileList = !m.ShowFileList
		LogDebug(m, keySubsystem, "file list visible: %v", m.ShowFileList)
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		return toggleDarkMode(m)

	case key.Matches(keyMsg, m.Keys.CopyPath):
		ref, _, ok := m.SelectedRef()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(ref.Path); err != nil {
			LogError(keySubsystem, err, "failed to copy path")
			return m, m.SetStatusMessage("Copy path failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Copied "+ref.Path, model.StatusBarSuccess, 3*time.Second)

	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Edit):
		return m, openEditorCmd(m)
	}

	switch keyMsg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
		// Viewer scrolling; everything else drives the list.
		var vpCmd tea.Cmd
		m.CodeViewport, vpCmd = m.CodeViewport.Update(keyMsg)
		return m, vpCmd
	}

	var listCmd tea.Cmd
	m.RefList, listCmd = m.RefList.Update(keyMsg)
	return m, tea.Batch(listCmd, renderOnSelectionChange(m))
}

// renderOnSelectionChange kicks off a render when the list cursor moved to
// a record that is not the one in the viewer.
func renderOnSelectionChange(m *model.Model) tea.Cmd {
	ref, idx, ok := m.SelectedRef()
	if !ok || idx == m.RenderedIndex {
		return nil
	}
	return model.RenderFileCmd(m.Renderer, ref, idx)
}

// toggleDarkMode flips the adaptive palette and the highlight theme, then
// re-renders the viewer with the new theme.
func toggleDarkMode(m *model.Model) (*model.Model, tea.Cmd) {
	m.DarkMode = !m.DarkMode
	design.Initialize(m.DarkMode)

	if m.DarkMode {
		m.Cfg.ColorMode = "dark"
	} else {
		m.Cfg.ColorMode = "light"
	}
	m.Renderer.Theme = m.Cfg.ResolvedTheme()
	LogInfo(keySubsystem, "color mode: %s, theme: %s", m.Cfg.ColorMode, m.Renderer.Theme)

	if ref, idx, ok := m.SelectedRef(); ok {
		return m, model.RenderFileCmd(m.Renderer, ref, idx)
	}
	return m, nil
}
