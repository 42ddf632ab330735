package forms

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/model"
)

// wizardValues carries the raw form bindings before they are applied
// through engine operations.
type wizardValues struct {
	companyName     string
	responsibleName string
	email           string
	phone           string

	agentTypes []model.AgentType
	customType string
	quantity   int

	planType            model.PlanType
	implementationValue string
	maintenanceValue    string
	contractDuration    string
	paymentMethod       model.PaymentMethod
	paymentCondition    model.PaymentCondition
	customCondition     string
	deliveryTime        string

	features     []model.FeatureKey
	observations string
}

func valuesFromState(s model.BudgetState) wizardValues {
	v := wizardValues{
		companyName:     s.Client.CompanyName,
		responsibleName: s.Client.ResponsibleName,
		email:           s.Client.Email,
		phone:           s.Client.Phone,

		agentTypes: append([]model.AgentType(nil), s.Agents.Types...),
		customType: s.Agents.CustomTypeDescription,
		quantity:   s.Agents.Quantity,

		planType:            s.Financial.PlanType,
		implementationValue: formatMoney(s.Financial.ImplementationValue),
		maintenanceValue:    formatMoney(s.Financial.MaintenanceValue),
		contractDuration:    strconv.Itoa(s.Financial.ContractDuration),
		paymentMethod:       s.Financial.PaymentMethod,
		paymentCondition:    s.Financial.PaymentCondition,
		customCondition:     s.Financial.CustomPaymentCondition,
		deliveryTime:        strconv.Itoa(s.Financial.DeliveryTime),

		features:     append([]model.FeatureKey(nil), s.Features.Enabled()...),
		observations: s.Observations,
	}
	return v
}

func buildForm(v *wizardValues) *huh.Form {
	agentOptions := make([]huh.Option[model.AgentType], 0, len(model.AllAgentTypes))
	for _, t := range model.AllAgentTypes {
		agentOptions = append(agentOptions, huh.NewOption(t.Label(), t))
	}

	featureOptions := make([]huh.Option[model.FeatureKey], 0, len(model.AllFeatureKeys))
	for _, key := range model.AllFeatureKeys {
		featureOptions = append(featureOptions, huh.NewOption(key.Label(), key))
	}

	quantityOptions := make([]huh.Option[int], 0, model.MaxQuantity)
	for q := model.MinQuantity; q <= model.MaxQuantity; q++ {
		quantityOptions = append(quantityOptions, huh.NewOption(strconv.Itoa(q), q))
	}

	methodOptions := make([]huh.Option[model.PaymentMethod], 0, len(model.AllPaymentMethods))
	for _, m := range model.AllPaymentMethods {
		methodOptions = append(methodOptions, huh.NewOption(model.PaymentMethodLabels[m], m))
	}

	conditionOptions := make([]huh.Option[model.PaymentCondition], 0, len(model.AllPaymentConditions))
	for _, c := range model.AllPaymentConditions {
		conditionOptions = append(conditionOptions, huh.NewOption(model.PaymentConditionLabels[c], c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Empresa").Value(&v.companyName),
			huh.NewInput().Title("Responsável").Value(&v.responsibleName),
			huh.NewInput().Title("E-mail").Value(&v.email),
			huh.NewInput().Title("Telefone").Value(&v.phone),
		).Title("Dados do Cliente"),

		huh.NewGroup(
			huh.NewMultiSelect[model.AgentType]().
				Title("Tipos de Agente").
				Options(agentOptions...).
				Value(&v.agentTypes),
			huh.NewInput().
				Title("Descrição do agente personalizado").
				Placeholder("ex: agente de cobrança").
				Value(&v.customType),
			huh.NewSelect[int]().
				Title("Quantidade de agentes").
				Options(quantityOptions...).
				Value(&v.quantity),
		).Title("Agentes"),

		huh.NewGroup(
			huh.NewSelect[model.PlanType]().
				Title("Tipo de plano").
				Options(
					huh.NewOption(model.PlanTypeLabels[model.PlanCompleto], model.PlanCompleto),
					huh.NewOption(model.PlanTypeLabels[model.PlanImplementacao], model.PlanImplementacao),
				).
				Value(&v.planType),
			moneyInput("Valor de implementação (por agente)", &v.implementationValue),
			moneyInput("Valor de manutenção mensal (por agente)", &v.maintenanceValue),
			intInput("Duração do contrato (meses)", "12", &v.contractDuration),
			huh.NewSelect[model.PaymentMethod]().
				Title("Forma de pagamento").
				Options(methodOptions...).
				Value(&v.paymentMethod),
			huh.NewSelect[model.PaymentCondition]().
				Title("Condição de pagamento").
				Options(conditionOptions...).
				Value(&v.paymentCondition),
			huh.NewInput().
				Title("Condição personalizada").
				Placeholder("ex: 50% na assinatura, 50% na entrega").
				Value(&v.customCondition),
			intInput("Prazo de entrega (dias)", "30", &v.deliveryTime),
		).Title("Financeiro"),

		huh.NewGroup(
			huh.NewMultiSelect[model.FeatureKey]().
				Title("Recursos incluídos").
				Options(featureOptions...).
				Value(&v.features),
			huh.NewText().
				Title("Observações").
				Value(&v.observations),
		).Title("Recursos e Observações"),
	).WithShowHelp(false)
}

// apply pushes the collected values through engine operations. Set-like
// fields (agent types, features) are reconciled by toggling only the
// memberships that changed, so untouched entries keep their order.
func apply(eng *engine.Engine, v wizardValues) {
	eng.UpdateClient(engine.ClientCompanyName, v.companyName)
	eng.UpdateClient(engine.ClientResponsibleName, v.responsibleName)
	eng.UpdateClient(engine.ClientEmail, v.email)
	eng.UpdateClient(engine.ClientPhone, v.phone)

	wanted := make(map[model.AgentType]bool, len(v.agentTypes))
	for _, t := range v.agentTypes {
		wanted[t] = true
	}
	current := eng.State().Agents
	for _, t := range model.AllAgentTypes {
		if wanted[t] != current.HasType(t) {
			eng.ToggleAgentType(t)
		}
	}
	eng.SetCustomAgentType(v.customType)

	for eng.State().Agents.Quantity < v.quantity {
		eng.UpdateQuantity(true)
	}
	for eng.State().Agents.Quantity > v.quantity {
		eng.UpdateQuantity(false)
	}

	eng.SetPlanType(v.planType)
	if value, err := parseMoney(v.implementationValue); err == nil {
		eng.SetImplementationValue(value)
	}
	if value, err := parseMoney(v.maintenanceValue); err == nil {
		eng.SetMaintenanceValue(value)
	}
	if months, err := strconv.Atoi(strings.TrimSpace(v.contractDuration)); err == nil {
		eng.SetContractDuration(months)
	}
	eng.SetPaymentMethod(v.paymentMethod)
	eng.SetPaymentCondition(v.paymentCondition)
	eng.SetCustomPaymentCondition(v.customCondition)
	if days, err := strconv.Atoi(strings.TrimSpace(v.deliveryTime)); err == nil {
		eng.SetDeliveryTime(days)
	}

	wantedFeatures := make(map[model.FeatureKey]bool, len(v.features))
	for _, key := range v.features {
		wantedFeatures[key] = true
	}
	state := eng.State()
	for _, key := range model.AllFeatureKeys {
		flag := state.Features.Flag(key)
		if flag != nil && *flag != wantedFeatures[key] {
			eng.ToggleFeature(key)
		}
	}

	eng.UpdateObservations(v.observations)
}

// RunWizard walks through every budget section and applies the results.
// Custom line items are collected afterwards, one per prompt, until the
// description is left blank.
func RunWizard(eng *engine.Engine) error {
	v := valuesFromState(eng.State())

	if err := buildForm(&v).Run(); err != nil {
		return err
	}
	apply(eng, v)

	for {
		var description string
		prompt := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Recurso adicional (Enter em branco para terminar)").
				Value(&description),
		)).WithShowHelp(false)
		if err := prompt.Run(); err != nil {
			return err
		}
		description = strings.TrimSpace(description)
		if description == "" {
			return nil
		}
		eng.AddCustomResource(description)
	}
}
