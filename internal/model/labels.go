package model

// AgentLabels maps agent types to their display names used in proposals.
var AgentLabels = map[AgentType]string{
	AgentAtendimento:   "Agente de Atendimento",
	AgentSDR:           "Agente SDR",
	AgentVendedor:      "Agente Vendedor",
	AgentSuporte:       "Agente de Suporte",
	AgentClone:         "Clone Digital",
	AgentPersonalizado: "Personalizado",
}

// FeatureLabels maps feature toggles to their display names.
var FeatureLabels = map[FeatureKey]string{
	FeatureWhatsapp:      "Integração com WhatsApp",
	FeatureSpreadsheet:   "Integração com Planilha",
	FeatureCRM:           "Integração com CRM",
	FeatureExternalTools: "Ferramentas Externas",
	FeatureDashboard:     "Dashboard de Métricas",
	FeatureReports:       "Relatórios Semanais",
	FeatureTraining:      "Treinamento da Equipe",
	FeatureSupport247:    "Suporte 24/7",
}

// PaymentMethodLabels maps payment methods to their display names.
var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentCartao:        "Cartão de Crédito",
	PaymentTransferencia: "Transferência Bancária",
	PaymentPix:           "PIX",
	PaymentBoleto:        "Boleto",
}

// PaymentConditionLabels maps payment conditions to their display names.
var PaymentConditionLabels = map[PaymentCondition]string{
	ConditionAvista:        "À Vista (5% de desconto)",
	ConditionParcelado:     "Parcelado",
	ConditionPersonalizado: "Personalizado",
}

// PlanTypeLabels maps plan types to their display names.
var PlanTypeLabels = map[PlanType]string{
	PlanCompleto:      "Plano Completo (implementação + mensalidade)",
	PlanImplementacao: "Apenas Implementação",
}

// Label returns the display name for an agent type, falling back to the
// raw value for unknown entries.
func (t AgentType) Label() string {
	if label, ok := AgentLabels[t]; ok {
		return label
	}
	return string(t)
}

// Label returns the display name for a feature key, falling back to the
// raw value for unknown entries.
func (k FeatureKey) Label() string {
	if label, ok := FeatureLabels[k]; ok {
		return label
	}
	return string(k)
}
