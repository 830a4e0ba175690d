// Package highlight renders files as syntax-highlighted terminal text and
// marks up the referenced line and match for the viewer pane.
package highlight

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"prism/internal/tui/design"
)

// Recoverable render errors. The TUI downgrades these to inline notices.
var (
	// ErrBinary indicates the file content is not displayable text.
	ErrBinary = errors.New("binary content")

	// ErrLineRange indicates the referenced line number is beyond the end
	// of the file.
	ErrLineRange = errors.New("line number out of range")
)

// Only sniff the head of the file for NUL bytes; a full scan of large
// files is wasted work when the first kilobytes already decide it.
const binarySniffLen = 8192

// Renderer turns file content into ANSI-highlighted lines.
type Renderer struct {
	// Theme is a chroma style name, e.g. "github-dark".
	Theme string

	// LineNumbers enables the line-number gutter.
	LineNumbers bool

	// GutterStyle styles the line-number gutter.
	GutterStyle lipgloss.Style

	// FocusLineStyle replaces syntax colors on the referenced line so it
	// stands out as a whole.
	FocusLineStyle lipgloss.Style

	// MatchStyle is the secondary highlight applied to the match string
	// inside the referenced line.
	MatchStyle lipgloss.Style
}

// Result is a rendered file.
type Result struct {
	// Lines are the rendered lines, gutter included.
	Lines []string

	// FocusIndex is the 0-based index of the referenced line within Lines,
	// or -1 when the record carries no line number.
	FocusIndex int

	// Lexer is the name of the chroma lexer that was used.
	Lexer string
}

// Content joins the rendered lines for a viewport.
func (r Result) Content() string {
	return strings.Join(r.Lines, "\n")
}

// NewRenderer returns a Renderer with the default mark-up styles.
func NewRenderer(theme string, lineNumbers bool) *Renderer {
	return &Renderer{
		Theme:       theme,
		LineNumbers: lineNumbers,
		GutterStyle: lipgloss.NewStyle().
			Foreground(design.ColorTextMuted),
		FocusLineStyle: lipgloss.NewStyle().
			Background(design.ColorHighlight).
			Foreground(design.ColorText),
		MatchStyle: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
	}
}

// Render reads path, syntax-highlights it and marks the referenced line.
// focusLine is 1-based, 0 meaning no line reference. The match string is
// searched within the focus line as a regexp, falling back to a literal
// search when it does not compile.
//
// Errors are recoverable display conditions: unreadable files, ErrBinary
// and ErrLineRange.
func (r *Renderer) Render(path string, focusLine int, match string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if isBinary(data) {
		return Result{}, fmt.Errorf("%s: %w", path, ErrBinary)
	}

	source := string(data)
	plain := strings.Split(source, "\n")
	if n := len(plain); n > 0 && plain[n-1] == "" {
		plain = plain[:n-1]
	}
	if len(plain) == 0 {
		plain = []string{""}
	}

	if focusLine > len(plain) {
		return Result{}, fmt.Errorf("%s: line %d of %d: %w", path, focusLine, len(plain), ErrLineRange)
	}

	lexer := lexerFor(path, source)
	rendered := r.highlight(source, lexer)
	// The token stream must reproduce the source line for line; when a
	// lexer misbehaves, show the file unhighlighted instead of misaligned.
	if len(rendered) != len(plain) {
		rendered = append([]string(nil), plain...)
	}

	focusIdx := focusLine - 1
	if focusIdx >= 0 {
		rendered[focusIdx] = r.renderFocusLine(plain[focusIdx], match)
	}

	if r.LineNumbers {
		rendered = r.addGutter(rendered, focusIdx)
	}

	return Result{Lines: rendered, FocusIndex: focusIdx, Lexer: lexer.Config().Name}, nil
}

func isBinary(data []byte) bool {
	head := data
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
		// A multibyte rune split at the cut must not read as garbage.
		for i := 0; i < utf8.UTFMax-1 && len(head) > 0 && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	return !utf8.Valid(head)
}

func lexerFor(path, source string) chroma.Lexer {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// highlight runs the chroma pipeline and splits the output back into lines.
func (r *Renderer) highlight(source string, lexer chroma.Lexer) []string {
	style := styles.Get(r.Theme)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return strings.Split(source, "\n")
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return strings.Split(source, "\n")
	}

	lines := strings.Split(buf.String(), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// renderFocusLine styles the referenced line as a whole and applies the
// secondary match highlight inside it.
func (r *Renderer) renderFocusLine(line, match string) string {
	if match == "" {
		return r.FocusLineStyle.Render(line)
	}

	re, err := regexp.Compile(match)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(match))
	}
	loc := re.FindStringIndex(line)
	if loc == nil || loc[0] == loc[1] {
		return r.FocusLineStyle.Render(line)
	}

	return r.FocusLineStyle.Render(line[:loc[0]]) +
		r.MatchStyle.Render(line[loc[0]:loc[1]]) +
		r.FocusLineStyle.Render(line[loc[1]:])
}

func (r *Renderer) addGutter(lines []string, focusIdx int) []string {
	numWidth := len(fmt.Sprintf("%d", len(lines)))
	focusGutter := r.GutterStyle.Bold(true).
		Foreground(design.ColorPrimary)

	out := make([]string, len(lines))
	for i, line := range lines {
		gutter := fmt.Sprintf("%*d │ ", numWidth, i+1)
		if i == focusIdx {
			out[i] = focusGutter.Render(gutter) + line
		} else {
			out[i] = r.GutterStyle.Render(gutter) + line
		}
	}
	return out
}
