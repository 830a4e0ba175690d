package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"prism/internal/tui/components"
	"prism/internal/tui/design"
	"prism/internal/tui/model"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderBrowseView(m)
	}
}

func renderBrowseView(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing...")
	}

	headerView := renderHeader(m)
	statusView := renderStatusBar(m)
	mainHeight := m.Height - lipgloss.Height(headerView) - lipgloss.Height(statusView)
	if mainHeight < design.MinPanelHeight {
		mainHeight = design.MinPanelHeight
	}

	listWidth := listPaneWidth(m)
	codeWidth := m.Width - listWidth

	var panes []string
	if m.ShowFileList {
		panes = append(panes, renderListPane(m, listWidth, mainHeight))
	}
	panes = append(panes, renderCodePane(m, codeWidth, mainHeight))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, headerView, mainView, statusView)
}

// listPaneWidth computes the file list width from the configured fraction,
// zero when the pane is toggled off.
func listPaneWidth(m *model.Model) int {
	if !m.ShowFileList {
		return 0
	}
	w := int(float64(m.Width) * m.Cfg.ListWidth)
	if w < design.MinListWidth {
		w = design.MinListWidth
	}
	if w > m.Width/2 {
		w = m.Width / 2
	}
	return w
}

func renderHeader(m *model.Model) string {
	header := components.NewHeader("prism").WithWidth(m.Width)
	if ref, _, ok := m.SelectedRef(); ok {
		header = header.WithSubtitle(ref.String())
	}
	if m.DebugMode {
		header = header.WithRightContent(design.DimStyle.Render("debug"))
	}
	return header.Render()
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithLeftText(m.Help.View(m.Keys)).
		WithRightText(fmt.Sprintf("%d/%d files", m.RefList.Index()+1, len(m.RefList.VisibleItems())))
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

func renderListPane(m *model.Model, width, height int) string {
	style := design.PanelFocusedStyle
	innerWidth := width - style.GetHorizontalFrameSize()
	innerHeight := height - style.GetVerticalFrameSize()
	m.RefList.SetSize(innerWidth, innerHeight)

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(m.RefList.View())
}

func renderCodePane(m *model.Model, width, height int) string {
	style := design.PanelStyle
	innerWidth := width - style.GetHorizontalFrameSize()
	innerHeight := height - style.GetVerticalFrameSize()

	title := renderCodeTitle(m, innerWidth)
	viewportHeight := innerHeight - lipgloss.Height(title)
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.CodeViewport.Width = innerWidth
	m.CodeViewport.Height = viewportHeight

	var body string
	if m.ViewerErr != "" {
		body = renderViewerNotice(m.ViewerErr, innerWidth, viewportHeight)
	} else {
		body = m.CodeViewport.View()
	}

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func renderCodeTitle(m *model.Model, width int) string {
	ref, _, ok := m.SelectedRef()
	if !ok {
		return design.TitleStyle.Render("No selection")
	}
	title := ref.Path
	if m.ViewerErr != "" {
		return design.TextErrorStyle.Bold(true).Render(truncate(title, width))
	}
	if m.CurrentRender.Lexer != "" {
		title = fmt.Sprintf("%s (%s)", title, m.CurrentRender.Lexer)
	}
	return design.TitleStyle.Render(truncate(title, width))
}

// renderViewerNotice renders a recoverable display error as an inline
// notice panel instead of crashing the session.
func renderViewerNotice(notice string, width, height int) string {
	panel := components.NewPanel("Cannot display file").
		WithContent(notice).
		WithType(components.PanelTypeError).
		WithDimensions(min(width, 60), 5).
		Render()
	return design.CenterVertical(height, design.CenterHorizontal(width, panel))
}
