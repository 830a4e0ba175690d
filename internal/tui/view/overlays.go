package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism/internal/tui/design"
	"prism/internal/tui/model"
)

// renderHelpOverlay renders the keyboard shortcut overlay centered over the
// browse view.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	var helpLines []string
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "Navigation:")
	helpLines = append(helpLines, "  ↑/↓ or j/k     Navigate the file list")
	helpLines = append(helpLines, "  /              Filter the file list")
	helpLines = append(helpLines, "  pgup/pgdn      Scroll the viewer")
	helpLines = append(helpLines, "  q              Quit")
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "Actions:")
	helpLines = append(helpLines, "  enter or e     Open selection in editor")
	helpLines = append(helpLines, "  y              Copy selected path to clipboard")
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "View Controls:")
	helpLines = append(helpLines, "  f              Toggle the file list pane")
	helpLines = append(helpLines, "  D              Toggle dark/light mode")
	helpLines = append(helpLines, "  h or ?         Show/hide this help")
	helpLines = append(helpLines, "  L              Show activity log overlay")
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "In Overlays:")
	helpLines = append(helpLines, "  Esc            Close overlay")
	helpLines = append(helpLines, "  ↑/↓            Scroll content")

	helpContent := strings.Join(helpLines, "\n")
	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpContent)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// renderLogOverlay renders the activity log overlay.
func renderLogOverlay(m *model.Model) string {
	overlayWidth := m.Width * 3 / 4
	overlayHeight := m.Height * 3 / 4
	style := design.LogOverlayStyle

	innerWidth := overlayWidth - style.GetHorizontalFrameSize()
	title := design.LogPanelTitleStyle.Render("Activity Log  (y: copy, esc: close)")
	innerHeight := overlayHeight - style.GetVerticalFrameSize() - lipgloss.Height(title)
	if innerHeight < 1 {
		innerHeight = 1
	}

	m.LogViewport.Width = innerWidth
	m.LogViewport.Height = innerHeight
	if m.ActivityLogDirty {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, innerWidth))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	content := title + "\n" + m.LogViewport.View()
	container := style.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}
