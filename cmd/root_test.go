package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if !strings.HasPrefix(rootCmd.Use, "prism") {
		t.Errorf("Expected Use to start with 'prism', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"null", "debug", "verbose", "theme", "editor"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s to be registered", name)
		}
	}

	if rootCmd.Flags().ShorthandLookup("0") == nil {
		t.Error("Expected -0 shorthand for --null")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "prism version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	expected := "prism version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected version output %q, got %q", expected, buf.String())
	}
}

func TestSubcommands(t *testing.T) {
	foundCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	if !foundCommands["version"] {
		t.Error("Expected subcommand version to be registered")
	}
}

func TestDebugModePrintsRecords(t *testing.T) {
	origDebug := debugRecords
	defer func() { debugRecords = origDebug }()
	debugRecords = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runRoot(cmd, []string{"main.go:42:rootCmd", "README.md"})
	if err != nil {
		t.Fatalf("runRoot with --debug returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `path="main.go" line=42 match="rootCmd"`) {
		t.Errorf("Debug output missing first record. Got: %q", output)
	}
	if !strings.Contains(output, `path="README.md" line=0 match=""`) {
		t.Errorf("Debug output missing second record. Got: %q", output)
	}
}

func TestVerboseDebugLogsToStderr(t *testing.T) {
	origDebug, origVerbose := debugRecords, verboseLog
	defer func() { debugRecords, verboseLog = origDebug, origVerbose }()
	debugRecords = true
	verboseLog = true

	var out, logBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&logBuf)

	if err := runRoot(cmd, []string{"main.go:7"}); err != nil {
		t.Fatalf("runRoot returned error: %v", err)
	}
	if !strings.Contains(logBuf.String(), "collected 1 records") {
		t.Errorf("Expected debug log line on stderr, got %q", logBuf.String())
	}
}

func TestRunRootNoRecords(t *testing.T) {
	origDebug := debugRecords
	defer func() { debugRecords = origDebug }()
	debugRecords = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Empty argv and an interactive stdin yields a usage error.
	if err := runRoot(cmd, []string{""}); err == nil {
		t.Error("Expected error when no records are given")
	}
}
