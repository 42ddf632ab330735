package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var obsCmd = &cobra.Command{
	Use:   "obs <texto>",
	Short: "Substitui as observações do orçamento",
	Long:  "Substitui o texto de observações. Use aspas para frases completas;\num argumento vazio limpa o campo.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runObs,
}

func init() {
	rootCmd.AddCommand(obsCmd)
}

func runObs(_ *cobra.Command, args []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	eng.UpdateObservations(strings.Join(args, " "))
	return nil
}
