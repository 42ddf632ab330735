package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var couponCmd = &cobra.Command{
	Use:   "coupon <código>",
	Short: "Aplica um cupom de desconto",
	Long: "Aplica um cupom de desconto ao orçamento. Um código inválido\n" +
		"remove qualquer desconto ativo.",
	Args: cobra.ExactArgs(1),
	RunE: runCoupon,
}

func init() {
	rootCmd.AddCommand(couponCmd)
}

func runCoupon(_ *cobra.Command, args []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	eng.ApplyCoupon(args[0])

	if !flagQuiet {
		discount := eng.State().Discount
		if discount.Percentage > 0 {
			fmt.Printf("  Cupom %s aplicado: %d%% de desconto\n", *discount.Coupon, discount.Percentage)
		} else {
			fmt.Println("  Cupom inválido — desconto removido")
		}
	}
	return nil
}
