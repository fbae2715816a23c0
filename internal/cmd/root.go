package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tuikit/lineup/internal/config"
	"github.com/tuikit/lineup/internal/log"
	"github.com/tuikit/lineup/internal/tui"
	"github.com/tuikit/lineup/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lineup [file]",
	Short: "Pick a line from a file or stdin",
	Long: `Lineup shows lines in a selectable list, filters them as you type, and
prints the accepted line to stdout. When reading from a file, the file is
watched for changes and the list content is swapped in place while the
selection keeps following the same line.`,
	Example: `
# Pick a line from a file, live-reloading on edits
lineup TODO.txt

# Pick from piped input
git branch --format='%(refname:short)' | lineup
  `,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if err := log.Setup(cfg.DataDirectory, cfg.Debug); err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}

		name, _ := cmd.Flags().GetString("name")

		var (
			lines     []string
			load      tui.LoadLines
			watchPath string
			err       error
		)
		if len(args) == 1 {
			watchPath, err = filepath.Abs(args[0])
			if err != nil {
				return err
			}
			path := watchPath
			load = func() ([]string, error) { return readLines(path) }
			if lines, err = load(); err != nil {
				return err
			}
		} else {
			stat, err := os.Stdin.Stat()
			if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
				return fmt.Errorf("no input: pass a file or pipe lines on stdin")
			}
			if lines, err = scanLines(os.Stdin); err != nil {
				return err
			}
		}

		app, err := tui.New(name, lines, load, watchPath)
		if err != nil {
			return err
		}

		opts := []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithOutput(os.Stderr),
			tea.WithContext(cmd.Context()),
		}
		if len(args) == 0 {
			// Stdin carries the list content, so key input comes from the
			// terminal directly.
			tty, err := os.Open("/dev/tty")
			if err != nil {
				return fmt.Errorf("opening terminal for input: %w", err)
			}
			defer tty.Close()
			opts = append(opts, tea.WithInput(tty))
		}

		if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		choice, ok := app.Choice()
		if !ok {
			os.Exit(1)
		}
		fmt.Println(choice)
		return nil
	},
}

func init() {
	rootCmd.Flags().String("name", "lineup", "Name of the list, used to key its scroll region")
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}
