package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/agenciagand/orca/internal/cli"
	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/model"
)

// RenderText renders the proposal as styled terminal text. It carries
// the same sections as the PDF: header, client block, investment
// summary, details table, optional observations.
func RenderText(s model.BudgetState, totals engine.Totals, orderNumber string, branding Branding, now time.Time) string {
	var b strings.Builder

	b.WriteString(cli.RenderTitle("Proposta Comercial"))
	b.WriteString("\n")
	b.WriteString(cli.Muted(fmt.Sprintf("  %s — Orçamento #%s — emitido em %s",
		branding.Name, orderNumber, now.Format("02/01/2006"))))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Title: "Dados do Cliente",
		Rows: [][]string{
			{"Empresa", orMissing(s.Client.CompanyName)},
			{"Responsável", orMissing(s.Client.ResponsibleName)},
			{"E-mail", orMissing(s.Client.Email)},
			{"Telefone", orMissing(s.Client.Phone)},
		},
	}))
	b.WriteString("\n")

	invest := [][]string{
		{"Subtotal", cli.FormatBRL(totals.Subtotal)},
	}
	if s.Discount.Percentage > 0 {
		coupon := ""
		if s.Discount.Coupon != nil {
			coupon = " (" + *s.Discount.Coupon + ")"
		}
		invest = append(invest, []string{
			"Desconto" + coupon, "-" + cli.FormatPercent(s.Discount.Percentage),
		})
	}
	if s.Financial.PaymentCondition == model.ConditionAvista {
		invest = append(invest, []string{"Pagamento à vista", "-5%"})
	}
	invest = append(invest, []string{"---"})
	invest = append(invest, []string{"INVESTIMENTO TOTAL", cli.Money(cli.FormatBRL(totals.Total))})
	invest = append(invest, []string{"---"})
	if s.Financial.PlanType == model.PlanCompleto {
		invest = append(invest,
			[]string{"Implementação", cli.FormatBRL(totals.Implementation)},
			[]string{"Mensalidade", cli.FormatBRL(totals.MonthlyMaintenance)},
			[]string{"Contrato", cli.FormatMonths(s.Financial.ContractDuration)},
		)
	} else {
		invest = append(invest,
			[]string{singlePayment, cli.FormatBRL(totals.Implementation)},
			[]string{includedSupport, ""},
		)
	}
	b.WriteString(cli.RenderTable(cli.Table{Title: "Investimento", Rows: invest}))
	b.WriteString("\n")

	var details [][]string
	for _, row := range detailRows(s) {
		details = append(details, []string{row[0], row[1]})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Detalhes do Projeto",
		Headers: []string{"Item", "Descrição"},
		Rows:    details,
	}))

	if s.Observations != "" {
		b.WriteString("\n  ")
		b.WriteString(cli.Header("Observações"))
		b.WriteString("\n")
		for _, line := range strings.Split(s.Observations, "\n") {
			b.WriteString("  " + cli.Muted(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(cli.Muted(fmt.Sprintf("  %s — %s", branding.Name, branding.Tagline)))
	b.WriteString("\n")

	return b.String()
}
