package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/store"
)

var flagForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Descarta o rascunho salvo",
	Long: "Remove o rascunho do armazenamento local. O próximo comando parte\n" +
		"do orçamento padrão.",
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Não pede confirmação")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !flagForce {
		fmt.Print("  Descartar o rascunho atual? [s/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "s" && answer != "S" {
			fmt.Println("  Cancelado")
			return nil
		}
	}

	st, err := store.Open(draftPath())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return fmt.Errorf("descartando rascunho: %w", err)
	}
	if !flagQuiet {
		fmt.Println("  Rascunho descartado")
	}
	return nil
}
