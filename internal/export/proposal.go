package export

import (
	"fmt"
	"strings"

	"github.com/agenciagand/orca/internal/cli"
	"github.com/agenciagand/orca/internal/model"
)

// Branding is the agency identity printed on proposals.
type Branding struct {
	Name    string
	Tagline string
}

const (
	noAgentsText    = "Nenhum selecionado"
	noFeaturesText  = "Nenhum recurso extra selecionado"
	missingText     = "N/A"
	includedSupport = "Suporte: 1 ano incluído"
	singlePayment   = "Implementação Única"
)

// serviceDescription summarizes quantity and selected agent profiles,
// e.g. "2x Agentes (Agente SDR, Clone Digital)".
func serviceDescription(s model.BudgetState) string {
	var labels []string
	for _, t := range s.Agents.Types {
		label := t.Label()
		if t == model.AgentPersonalizado && s.Agents.CustomTypeDescription != "" {
			label = s.Agents.CustomTypeDescription
		}
		labels = append(labels, label)
	}
	joined := strings.Join(labels, ", ")
	if joined == "" {
		joined = noAgentsText
	}
	return fmt.Sprintf("%dx Agentes (%s)", s.Agents.Quantity, joined)
}

// conditionText resolves the payment condition, using the free-text
// condition when "personalizado" is selected.
func conditionText(s model.BudgetState) string {
	if s.Financial.PaymentCondition == model.ConditionPersonalizado {
		return s.Financial.CustomPaymentCondition
	}
	return strings.ToUpper(string(s.Financial.PaymentCondition))
}

// featureList returns the enabled feature labels followed by the custom
// resource descriptions, in their stored order.
func featureList(s model.BudgetState) []string {
	var items []string
	for _, key := range s.Features.Enabled() {
		items = append(items, key.Label())
	}
	for _, r := range s.Features.CustomResources {
		items = append(items, r.Description)
	}
	return items
}

func orMissing(v string) string {
	if v == "" {
		return missingText
	}
	return v
}

// detailRows builds the details table shared by the text and PDF
// renderers.
func detailRows(s model.BudgetState) [][2]string {
	features := featureList(s)
	featureText := noFeaturesText
	if len(features) > 0 {
		featureText = strings.Join(features, ", ")
	}

	return [][2]string{
		{"Serviço", serviceDescription(s)},
		{"Prazo de Entrega", cli.FormatDays(s.Financial.DeliveryTime)},
		{"Forma de Pagamento", strings.ToUpper(string(s.Financial.PaymentMethod))},
		{"Condições", conditionText(s)},
		{"Recursos Incluídos", featureText},
	}
}
