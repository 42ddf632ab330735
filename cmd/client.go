package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/engine"
)

var (
	flagCompany     string
	flagResponsible string
	flagEmail       string
	flagPhone       string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Atualiza os dados do cliente",
	Example: `  orca client --company "ACME Ltda" --email contato@acme.com.br
  orca client --responsible "Maria Souza" --phone "(11) 99999-0000"`,
	RunE: runClient,
}

func init() {
	clientCmd.Flags().StringVar(&flagCompany, "company", "", "Nome da empresa")
	clientCmd.Flags().StringVar(&flagResponsible, "responsible", "", "Nome do responsável")
	clientCmd.Flags().StringVar(&flagEmail, "email", "", "E-mail de contato")
	clientCmd.Flags().StringVar(&flagPhone, "phone", "", "Telefone de contato")
	rootCmd.AddCommand(clientCmd)
}

func runClient(cmd *cobra.Command, _ []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	updates := map[engine.ClientField]struct {
		flag  string
		value string
	}{
		engine.ClientCompanyName:     {"company", flagCompany},
		engine.ClientResponsibleName: {"responsible", flagResponsible},
		engine.ClientEmail:           {"email", flagEmail},
		engine.ClientPhone:           {"phone", flagPhone},
	}

	changed := 0
	for field, u := range updates {
		if cmd.Flags().Changed(u.flag) {
			eng.UpdateClient(field, u.value)
			changed++
		}
	}

	if changed == 0 {
		return fmt.Errorf("nenhum campo informado (use --company, --responsible, --email ou --phone)")
	}
	if !flagQuiet {
		fmt.Printf("  %d campo(s) atualizado(s)\n", changed)
	}
	return nil
}
