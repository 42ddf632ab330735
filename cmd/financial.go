package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/model"
)

var (
	flagPlan            string
	flagImplementation  float64
	flagMaintenance     float64
	flagDuration        int
	flagMethod          string
	flagCondition       string
	flagCustomCondition string
	flagDelivery        int
)

var financialCmd = &cobra.Command{
	Use:   "financial",
	Short: "Atualiza os parâmetros financeiros",
	Example: `  orca financial --plan completo --implementation 5000 --maintenance 1000
  orca financial --condition avista
  orca financial --condition personalizado --custom-condition "50% na assinatura"`,
	RunE: runFinancial,
}

func init() {
	financialCmd.Flags().StringVar(&flagPlan, "plan", "", "Tipo de plano: completo ou implementacao")
	financialCmd.Flags().Float64Var(&flagImplementation, "implementation", 0, "Valor de implementação por agente")
	financialCmd.Flags().Float64Var(&flagMaintenance, "maintenance", 0, "Valor de manutenção mensal por agente")
	financialCmd.Flags().IntVar(&flagDuration, "duration", 0, "Duração do contrato em meses")
	financialCmd.Flags().StringVar(&flagMethod, "method", "", "Forma de pagamento: cartao, transferencia, pix ou boleto")
	financialCmd.Flags().StringVar(&flagCondition, "condition", "", "Condição: avista, parcelado ou personalizado")
	financialCmd.Flags().StringVar(&flagCustomCondition, "custom-condition", "", "Texto da condição personalizada")
	financialCmd.Flags().IntVar(&flagDelivery, "delivery", 0, "Prazo de entrega em dias")
	rootCmd.AddCommand(financialCmd)
}

func runFinancial(cmd *cobra.Command, _ []string) error {
	plan := model.PlanType(strings.ToLower(flagPlan))
	if cmd.Flags().Changed("plan") && plan != model.PlanCompleto && plan != model.PlanImplementacao {
		return fmt.Errorf("plano desconhecido: %q", flagPlan)
	}

	method := model.PaymentMethod(strings.ToLower(flagMethod))
	if cmd.Flags().Changed("method") && !validPaymentMethod(method) {
		return fmt.Errorf("forma de pagamento desconhecida: %q", flagMethod)
	}

	condition := model.PaymentCondition(strings.ToLower(flagCondition))
	if cmd.Flags().Changed("condition") && !validPaymentCondition(condition) {
		return fmt.Errorf("condição desconhecida: %q", flagCondition)
	}

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	changed := 0
	if cmd.Flags().Changed("plan") {
		eng.SetPlanType(plan)
		changed++
	}
	if cmd.Flags().Changed("implementation") {
		eng.SetImplementationValue(flagImplementation)
		changed++
	}
	if cmd.Flags().Changed("maintenance") {
		eng.SetMaintenanceValue(flagMaintenance)
		changed++
	}
	if cmd.Flags().Changed("duration") {
		eng.SetContractDuration(flagDuration)
		changed++
	}
	if cmd.Flags().Changed("method") {
		eng.SetPaymentMethod(method)
		changed++
	}
	if cmd.Flags().Changed("condition") {
		eng.SetPaymentCondition(condition)
		changed++
	}
	if cmd.Flags().Changed("custom-condition") {
		eng.SetCustomPaymentCondition(flagCustomCondition)
		changed++
	}
	if cmd.Flags().Changed("delivery") {
		eng.SetDeliveryTime(flagDelivery)
		changed++
	}

	if changed == 0 {
		return fmt.Errorf("nenhum campo informado (veja orca financial --help)")
	}
	if !flagQuiet {
		fmt.Printf("  %d campo(s) atualizado(s)\n", changed)
	}
	return nil
}

func validPaymentMethod(m model.PaymentMethod) bool {
	for _, known := range model.AllPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

func validPaymentCondition(c model.PaymentCondition) bool {
	for _, known := range model.AllPaymentConditions {
		if c == known {
			return true
		}
	}
	return false
}
