package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/model"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Gerencia os tipos e a quantidade de agentes",
}

var agentsToggleCmd = &cobra.Command{
	Use:   "toggle <tipo>",
	Short: "Adiciona ou remove um tipo de agente",
	Long: "Tipos válidos: atendimento, sdr, vendedor, suporte, clone, personalizado.\n" +
		"Alternar um tipo já selecionado o remove.",
	Args: cobra.ExactArgs(1),
	RunE: runAgentsToggle,
}

var agentsCustomCmd = &cobra.Command{
	Use:   "custom <descrição>",
	Short: "Define a descrição do agente personalizado",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAgentsCustom,
}

var agentsUpCmd = &cobra.Command{
	Use:   "up [n]",
	Short: "Aumenta a quantidade de agentes (máx. 20)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return stepQuantity(args, true) },
}

var agentsDownCmd = &cobra.Command{
	Use:   "down [n]",
	Short: "Diminui a quantidade de agentes (mín. 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return stepQuantity(args, false) },
}

func init() {
	agentsCmd.AddCommand(agentsToggleCmd, agentsCustomCmd, agentsUpCmd, agentsDownCmd)
	rootCmd.AddCommand(agentsCmd)
}

func runAgentsToggle(_ *cobra.Command, args []string) error {
	agentType := model.AgentType(strings.ToLower(args[0]))
	if !model.ValidAgentTypes[agentType] {
		return fmt.Errorf("tipo de agente desconhecido: %q", args[0])
	}

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	eng.ToggleAgentType(agentType)

	if !flagQuiet {
		if eng.State().Agents.HasType(agentType) {
			fmt.Printf("  + %s\n", agentType.Label())
		} else {
			fmt.Printf("  - %s\n", agentType.Label())
		}
	}
	return nil
}

func runAgentsCustom(_ *cobra.Command, args []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	eng.SetCustomAgentType(strings.Join(args, " "))
	return nil
}

func stepQuantity(args []string, increment bool) error {
	steps := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("quantidade inválida: %q", args[0])
		}
		steps = n
	}

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	for i := 0; i < steps; i++ {
		eng.UpdateQuantity(increment)
	}

	if !flagQuiet {
		fmt.Printf("  Quantidade: %d agente(s)\n", eng.State().Agents.Quantity)
	}
	return nil
}
