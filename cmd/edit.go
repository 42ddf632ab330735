package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/export"
	"github.com/agenciagand/orca/internal/forms"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edita o orçamento por um assistente interativo",
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := forms.RunWizard(eng); err != nil {
		return err
	}

	if !flagQuiet {
		now := time.Now()
		fmt.Println(export.RenderText(eng.State(), eng.Totals(), export.OrderNumber(now), branding(), now))
	}
	return nil
}
