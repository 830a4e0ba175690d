package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism/internal/tui/design"
	"prism/internal/tui/utils"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel represents a reusable bordered panel
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		availableHeight := innerHeight - len(lines)
		if availableHeight > 0 {
			if len(contentLines) > availableHeight {
				contentLines = contentLines[:availableHeight]
			}
			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = utils.TruncateString(line, innerWidth)
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeError:
		return baseStyle.Copy().BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.Copy().BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.Copy().BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

// renderTitle renders the panel title, truncated to the inner width
func (p *Panel) renderTitle(width int) string {
	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Copy().Foreground(design.ColorPrimary)
	}
	if p.Type == PanelTypeError {
		titleStyle = titleStyle.Copy().Foreground(design.ColorError)
	}
	return titleStyle.Render(utils.TruncateString(p.Title, width))
}
