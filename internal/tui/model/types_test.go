package model

import (
	"fmt"
	"testing"
	"time"

	"prism/internal/config"
	"prism/internal/fileref"
)

func testRefs() []fileref.Ref {
	return []fileref.Ref{
		{Path: "a.go", Line: 1, Match: "alpha"},
		{Path: "b.go", Line: 2},
		{Path: "c.go"},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := InitializeModel(testRefs(), config.GetDefaultConfig(), false, true, "vi", nil)
	if err != nil {
		t.Fatalf("InitializeModel returned error: %v", err)
	}
	return m
}

func TestInitializeModel(t *testing.T) {
	m := newTestModel(t)

	if m.CurrentAppMode != ModeInitializing {
		t.Errorf("Expected ModeInitializing, got %v", m.CurrentAppMode)
	}
	if !m.ShowFileList {
		t.Error("Expected file list to start visible")
	}
	if m.RenderedIndex != -1 {
		t.Errorf("Expected RenderedIndex -1 before first render, got %d", m.RenderedIndex)
	}
	if got := len(m.RefList.Items()); got != 3 {
		t.Errorf("Expected 3 list items, got %d", got)
	}
}

func TestInitializeModelNoRefs(t *testing.T) {
	_, err := InitializeModel(nil, config.GetDefaultConfig(), false, true, "vi", nil)
	if err == nil {
		t.Error("Expected error for empty record list")
	}
}

func TestSelectedRef(t *testing.T) {
	m := newTestModel(t)

	ref, idx, ok := m.SelectedRef()
	if !ok {
		t.Fatal("Expected a selected ref on a fresh model")
	}
	if idx != 0 {
		t.Errorf("Expected index 0, got %d", idx)
	}
	if ref.Path != "a.go" || ref.Line != 1 || ref.Match != "alpha" {
		t.Errorf("Unexpected selected ref: %+v", ref)
	}

	m.RefList.Select(2)
	ref, idx, ok = m.SelectedRef()
	if !ok || idx != 2 || ref.Path != "c.go" {
		t.Errorf("Unexpected selection after Select(2): %+v idx=%d ok=%v", ref, idx, ok)
	}
}

func TestSelectedRefWithFilterApplied(t *testing.T) {
	m := newTestModel(t)

	// The filter narrows the visible items, so the cursor index no longer
	// lines up with the original record positions.
	m.RefList.SetFilterText("c.go")

	ref, idx, ok := m.SelectedRef()
	if !ok {
		t.Fatal("Expected a selection with a filter applied")
	}
	if ref.Path != "c.go" {
		t.Errorf("Expected the record under the cursor (c.go), got %q", ref.Path)
	}
	if idx != 2 {
		t.Errorf("Expected original index 2, got %d", idx)
	}
}

func TestRefItemDisplay(t *testing.T) {
	item := RefItem{Ref: fileref.Ref{Path: "internal/tui/model/types.go", Line: 9}}
	if item.Title() != "types.go:9" {
		t.Errorf("Expected title 'types.go:9', got %q", item.Title())
	}
	if item.Description() != "internal/tui/model/" {
		t.Errorf("Expected description 'internal/tui/model/', got %q", item.Description())
	}

	bare := RefItem{Ref: fileref.Ref{Path: "README.md"}}
	if bare.Title() != "README.md" {
		t.Errorf("Expected title 'README.md', got %q", bare.Title())
	}
	if bare.Description() != "./" {
		t.Errorf("Expected description './', got %q", bare.Description())
	}
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel(t)

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, 1*time.Second)
	if m.StatusBarMessage != "First message" {
		t.Errorf("Expected StatusBarMessage 'First message', got '%s'", m.StatusBarMessage)
	}
	if m.StatusBarMessageType != StatusBarSuccess {
		t.Errorf("Expected StatusBarMessageType Success, got %v", m.StatusBarMessageType)
	}
	if m.StatusBarClearCancel == nil {
		t.Error("Expected StatusBarClearCancel to be non-nil after first call")
	}
	if cmd1 == nil {
		t.Error("Expected a non-nil tea.Cmd from SetStatusMessage")
	}
	cancelChan1 := m.StatusBarClearCancel

	cmd2 := m.SetStatusMessage("Second message", StatusBarError, 1*time.Second)
	if m.StatusBarMessage != "Second message" {
		t.Errorf("Expected StatusBarMessage 'Second message', got '%s'", m.StatusBarMessage)
	}
	if m.StatusBarClearCancel == cancelChan1 {
		t.Error("Expected StatusBarClearCancel to be a new channel after second call")
	}
	select {
	case <-cancelChan1:
		// Expected: first channel closed so the stale timer cannot fire.
	default:
		t.Error("Expected first StatusBarClearCancel channel to be closed")
	}
	if cmd2 == nil {
		t.Error("Expected a non-nil tea.Cmd from second SetStatusMessage call")
	}
}

func TestAppendActivityLogCap(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < MaxActivityLogLines+50; i++ {
		m.AppendActivityLog(fmt.Sprintf("line %d", i))
	}
	if len(m.ActivityLog) != MaxActivityLogLines {
		t.Errorf("Expected activity log capped at %d, got %d", MaxActivityLogLines, len(m.ActivityLog))
	}
	if m.ActivityLog[0] != "line 50" {
		t.Errorf("Expected oldest lines dropped, first is %q", m.ActivityLog[0])
	}
	if !m.ActivityLogDirty {
		t.Error("Expected ActivityLogDirty after append")
	}
}

func TestAppModeString(t *testing.T) {
	cases := map[AppMode]string{
		ModeInitializing: "Initializing",
		ModeBrowsing:     "Browsing",
		ModeHelpOverlay:  "HelpOverlay",
		ModeLogOverlay:   "LogOverlay",
		ModeQuitting:     "Quitting",
		AppMode(99):      "Unknown",
	}
	for mode, want := range cases {
		if mode.String() != want {
			t.Errorf("AppMode(%d).String() = %q, want %q", mode, mode.String(), want)
		}
	}
}
