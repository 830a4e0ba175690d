package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrder(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "nano")

	assert.Equal(t, "nvim", Resolve("nvim"), "explicit override wins")
	assert.Equal(t, "code --wait", Resolve(""), "$VISUAL beats $EDITOR")

	t.Setenv("VISUAL", "")
	assert.Equal(t, "nano", Resolve(""))

	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", Resolve(""), "fallback when nothing is set")
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		path     string
		line     int
		wantBin  string
		wantArgs []string
	}{
		{
			name:    "vim with line",
			editor:  "vim",
			path:    "main.go",
			line:    42,
			wantBin: "vim", wantArgs: []string{"+42", "main.go"},
		},
		{
			name:    "absolute nvim path still gets line flag",
			editor:  "/usr/bin/nvim",
			path:    "main.go",
			line:    7,
			wantBin: "/usr/bin/nvim", wantArgs: []string{"+7", "main.go"},
		},
		{
			name:    "unknown editor gets plain path",
			editor:  "code --wait",
			path:    "main.go",
			line:    42,
			wantBin: "code", wantArgs: []string{"--wait", "main.go"},
		},
		{
			name:    "no line reference",
			editor:  "vim",
			path:    "main.go",
			line:    0,
			wantBin: "vim", wantArgs: []string{"main.go"},
		},
		{
			name:    "empty editor falls back to vi",
			editor:  "",
			path:    "main.go",
			line:    3,
			wantBin: "vi", wantArgs: []string{"+3", "main.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, args := BuildArgs(tt.editor, tt.path, tt.line)
			assert.Equal(t, tt.wantBin, bin)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
