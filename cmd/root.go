package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"prism/internal/config"
	"prism/internal/editor"
	"prism/internal/fileref"
	"prism/internal/tui/controller"
	"prism/pkg/logging"
)

var (
	nullSeparated bool // --null
	debugRecords  bool // --debug
	verboseLog    bool // --verbose
	themeFlag     string
	editorFlag    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prism [file[:line[:match]] ...]",
	Short: "Browse files found by grep-like tools in a two-pane TUI",
	Long: `prism reads file references - plain paths, or path:line and
path:line:match records as printed by grep -Hn and rg --line-number -
from its arguments or from piped input, and opens a two-pane terminal
interface: a selectable file list and a syntax-highlighted viewer that
jumps to the referenced line and highlights the match.

Typical usage:

  rg 'search string' --line-number | prism
  grep 'search string' -Hn * | prism
  find . -name '*.go' -print0 | prism --null
  prism main.go:42 README.md`,
	Args: cobra.ArbitraryArgs,
	// SilenceUsage prevents printing usage on errors we handle ourselves.
	SilenceUsage: true,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "prism version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.Flags().BoolVarP(&nullSeparated, "null", "0", false,
		"piped records are NUL-separated (find -print0, rg -0)")
	rootCmd.Flags().BoolVar(&debugRecords, "debug", false,
		"print the parsed records without launching the UI")
	rootCmd.Flags().BoolVar(&verboseLog, "verbose", false,
		"enable debug logging in the activity log")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "",
		"chroma style for syntax highlighting (overrides config)")
	rootCmd.Flags().StringVar(&editorFlag, "editor", "",
		"editor command for the hand-off (overrides config and $EDITOR)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if verboseLog {
		logLevel = logging.LevelDebug
	}
	// CLI-mode logging until the TUI takes over the terminal.
	logging.InitForCLI(logLevel, cmd.ErrOrStderr())

	refs, err := collectRefs(args)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("no file records: pass paths as arguments or pipe them on stdin")
	}
	logging.Debug("Parser", "collected %d records", len(refs))

	if debugRecords {
		for _, ref := range refs {
			fmt.Fprintf(cmd.OutOrStdout(), "path=%q line=%d match=%q\n", ref.Path, ref.Line, ref.Match)
		}
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if editorFlag != "" {
		cfg.Editor = editorFlag
	}

	darkMode := cfg.ColorMode != "light"
	if cfg.ColorMode == "auto" || cfg.ColorMode == "" {
		darkMode = lipgloss.HasDarkBackground()
	}
	if darkMode {
		cfg.ColorMode = "dark"
	} else {
		cfg.ColorMode = "light"
	}

	logChannel := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(refs, cfg, verboseLog, darkMode, editor.Resolve(cfg.Editor), logChannel)
	if err != nil {
		return err
	}
	_, err = p.Run()
	return err
}

// collectRefs gathers records from argv, or from stdin when nothing was
// passed and stdin is a pipe. After consuming piped input the controlling
// terminal is reattached so the TUI still gets keyboard events.
func collectRefs(args []string) ([]fileref.Ref, error) {
	if len(args) > 0 {
		return fileref.ParseAll(args), nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("inspecting stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		// Interactive stdin and no arguments: nothing to browse.
		return nil, nil
	}

	refs, err := fileref.ParseReader(os.Stdin, nullSeparated)
	if err != nil {
		return nil, fmt.Errorf("reading records from stdin: %w", err)
	}

	if !debugRecords {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, fmt.Errorf("reopening terminal for input: %w", err)
		}
		os.Stdin = tty
	}
	return refs, nil
}
