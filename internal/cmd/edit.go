package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avkit/segcut/internal/config"
	"github.com/avkit/segcut/internal/cutlist"
	"github.com/avkit/segcut/internal/logging"
	"github.com/avkit/segcut/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <cut-list.yaml>",
	Short: "Edit a cut list interactively",
	Long: `Edit a cut list interactively.

Opens the TUI editor over the given cut-list file. Splits and combines
are applied to the file as you confirm them.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := args[0]
	file, err := cutlist.Load(path)
	if err != nil {
		return err
	}

	log := logging.Discard()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open session log: %w", err)
		}
		defer log.Close()
	}

	m, err := tui.NewModel(path, file, cfg, log)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
