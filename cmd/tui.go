package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/config"
	"github.com/agenciagand/orca/internal/tui"
	"github.com/agenciagand/orca/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Abre o painel interativo",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	app := tui.NewApp(eng, branding(), cfg.Export.OutputDir)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
