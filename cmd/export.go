package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/config"
	"github.com/agenciagand/orca/internal/export"
)

var (
	flagOutput string
	flagText   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta a proposta comercial em PDF",
	Example: `  orca export
  orca export -o proposta.pdf
  orca export --text`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Arquivo de saída (default: orcamento_<empresa>_<número>.pdf)")
	exportCmd.Flags().BoolVar(&flagText, "text", false, "Imprime a proposta em texto em vez de gerar PDF")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	state := eng.State()
	totals := eng.Totals()
	now := time.Now()
	orderNumber := export.OrderNumber(now)

	if flagText {
		fmt.Println(export.RenderText(state, totals, orderNumber, branding(), now))
		return nil
	}

	path := flagOutput
	if path == "" {
		cfg, _ := config.Load()
		path = filepath.Join(cfg.Export.OutputDir, export.DefaultFilename(state, orderNumber))
	}

	if err := export.WritePDF(state, totals, orderNumber, branding(), now, path); err != nil {
		return fmt.Errorf("exportando proposta: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Proposta #%s exportada: %s\n", orderNumber, path)
	}
	return nil
}
