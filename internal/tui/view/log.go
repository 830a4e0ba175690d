package view

import (
	"fmt"
	"strings"

	"prism/internal/tui/design"
	"prism/internal/tui/utils"
	"prism/pkg/logging"
)

// FormatLogEntry renders one logging entry as a styled activity log line.
func FormatLogEntry(entry logging.LogEntry) string {
	msg := entry.Message
	if entry.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, entry.Err)
	}
	line := fmt.Sprintf("%s [%s] %s",
		entry.Timestamp.Format("15:04:05"), entry.Subsystem, msg)

	switch entry.Level {
	case logging.LevelError:
		return design.LogErrorStyle.Render(line)
	case logging.LevelWarn:
		return design.LogWarnStyle.Render(line)
	case logging.LevelDebug:
		return design.LogDebugStyle.Render(line)
	default:
		return design.LogInfoStyle.Render(line)
	}
}

// PrepareLogContent truncates activity log lines to the viewport width so
// long lines do not wrap and break the overlay layout.
func PrepareLogContent(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = utils.TruncateString(line, width)
	}
	return strings.Join(out, "\n")
}

func truncate(s string, width int) string {
	return utils.TruncateString(s, width)
}
