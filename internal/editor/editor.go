// Package editor resolves the user's external editor and builds the command
// line for opening a file at a specific line.
package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const fallbackEditor = "vi"

// editors that accept a +LINE argument before the path.
var lineFlagEditors = map[string]bool{
	"vi":    true,
	"vim":   true,
	"nvim":  true,
	"nano":  true,
	"micro": true,
	"emacs": true,
	"kak":   true,
	"hx":    true,
}

// Resolve picks the editor command: the explicit override (config or flag),
// then $VISUAL, then $EDITOR, then vi. The returned string may contain
// arguments, e.g. "code --wait".
func Resolve(override string) string {
	for _, candidate := range []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return fallbackEditor
}

// BuildArgs splits an editor command into binary and arguments and appends
// the target. Editors known to take +LINE get the line reference; everything
// else gets just the path.
func BuildArgs(editorCmd, path string, line int) (string, []string) {
	fields := strings.Fields(editorCmd)
	if len(fields) == 0 {
		fields = []string{fallbackEditor}
	}
	bin := fields[0]
	args := append([]string(nil), fields[1:]...)

	if line > 0 && lineFlagEditors[filepath.Base(bin)] {
		args = append(args, "+"+strconv.Itoa(line))
	}
	args = append(args, path)
	return bin, args
}

// Command builds the exec.Cmd for the editor hand-off, wired to the
// controlling terminal so the editor can take over the screen.
func Command(editorCmd, path string, line int) *exec.Cmd {
	bin, args := BuildArgs(editorCmd, path, line)
	cmd := exec.Command(bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
