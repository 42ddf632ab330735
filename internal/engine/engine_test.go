package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciagand/orca/internal/model"
)

func newTestEngine() *Engine {
	return New(model.InitialState())
}

func TestUpdateClient_RoundTrip(t *testing.T) {
	eng := newTestEngine()

	eng.UpdateClient(ClientCompanyName, "ACME Ltda")
	eng.UpdateClient(ClientResponsibleName, "Maria Souza")
	eng.UpdateClient(ClientEmail, "contato@acme.com.br")
	eng.UpdateClient(ClientPhone, "(11) 99999-0000")

	client := eng.State().Client
	assert.Equal(t, "ACME Ltda", client.CompanyName)
	assert.Equal(t, "Maria Souza", client.ResponsibleName)
	assert.Equal(t, "contato@acme.com.br", client.Email)
	assert.Equal(t, "(11) 99999-0000", client.Phone)
}

func TestUpdateClient_AcceptsEmptyString(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateClient(ClientCompanyName, "ACME")
	eng.UpdateClient(ClientCompanyName, "")
	assert.Equal(t, "", eng.State().Client.CompanyName)
}

func TestToggleAgentType_AddsAndRemoves(t *testing.T) {
	eng := newTestEngine()

	eng.ToggleAgentType(model.AgentSDR)
	eng.ToggleAgentType(model.AgentClone)
	assert.Equal(t, []model.AgentType{model.AgentSDR, model.AgentClone}, eng.State().Agents.Types)

	eng.ToggleAgentType(model.AgentSDR)
	assert.Equal(t, []model.AgentType{model.AgentClone}, eng.State().Agents.Types)
}

func TestToggleAgentType_TwiceRestoresOriginal(t *testing.T) {
	eng := newTestEngine()
	eng.ToggleAgentType(model.AgentAtendimento)
	eng.ToggleAgentType(model.AgentVendedor)
	before := eng.State().Agents.Types

	eng.ToggleAgentType(model.AgentSuporte)
	eng.ToggleAgentType(model.AgentSuporte)

	assert.Equal(t, before, eng.State().Agents.Types)
}

func TestSetCustomAgentType_IndependentOfSelection(t *testing.T) {
	eng := newTestEngine()

	// Description can be set while "personalizado" is not selected, and
	// survives its removal.
	eng.SetCustomAgentType("agente de cobrança")
	assert.Equal(t, "agente de cobrança", eng.State().Agents.CustomTypeDescription)

	eng.ToggleAgentType(model.AgentPersonalizado)
	eng.ToggleAgentType(model.AgentPersonalizado)
	assert.Equal(t, "agente de cobrança", eng.State().Agents.CustomTypeDescription)
}

func TestUpdateQuantity_ClampsAtBounds(t *testing.T) {
	eng := newTestEngine()

	for i := 0; i < 30; i++ {
		eng.UpdateQuantity(false)
	}
	assert.Equal(t, model.MinQuantity, eng.State().Agents.Quantity)

	for i := 0; i < 50; i++ {
		eng.UpdateQuantity(true)
	}
	assert.Equal(t, model.MaxQuantity, eng.State().Agents.Quantity)
}

func TestSetPlanType_KeepsDependentFields(t *testing.T) {
	eng := newTestEngine()
	eng.SetContractDuration(24)
	eng.SetPlanType(model.PlanImplementacao)

	// Contract duration is left in place, only semantically inactive.
	fin := eng.State().Financial
	assert.Equal(t, model.PlanImplementacao, fin.PlanType)
	assert.Equal(t, 24, fin.ContractDuration)
}

func TestFinancialSetters_RoundTrip(t *testing.T) {
	eng := newTestEngine()

	eng.SetImplementationValue(7500)
	eng.SetMaintenanceValue(1200.50)
	eng.SetContractDuration(6)
	eng.SetPaymentMethod(model.PaymentPix)
	eng.SetPaymentCondition(model.ConditionPersonalizado)
	eng.SetCustomPaymentCondition("50% na assinatura, 50% na entrega")
	eng.SetDeliveryTime(45)

	fin := eng.State().Financial
	assert.Equal(t, 7500.0, fin.ImplementationValue)
	assert.Equal(t, 1200.50, fin.MaintenanceValue)
	assert.Equal(t, 6, fin.ContractDuration)
	assert.Equal(t, model.PaymentPix, fin.PaymentMethod)
	assert.Equal(t, model.ConditionPersonalizado, fin.PaymentCondition)
	assert.Equal(t, "50% na assinatura, 50% na entrega", fin.CustomPaymentCondition)
	assert.Equal(t, 45, fin.DeliveryTime)
}

func TestFinancialSetters_PermissiveNumericInputs(t *testing.T) {
	eng := newTestEngine()

	eng.SetImplementationValue(-100)
	eng.SetDeliveryTime(-3)

	fin := eng.State().Financial
	assert.Equal(t, -100.0, fin.ImplementationValue)
	assert.Equal(t, -3, fin.DeliveryTime)
}

func TestToggleFeature_Flips(t *testing.T) {
	eng := newTestEngine()

	eng.ToggleFeature(model.FeatureWhatsapp)
	assert.True(t, eng.State().Features.Whatsapp)

	eng.ToggleFeature(model.FeatureWhatsapp)
	assert.False(t, eng.State().Features.Whatsapp)
}

func TestToggleFeature_CustomResourcesIsNoOp(t *testing.T) {
	eng := newTestEngine()
	eng.ToggleFeature(model.FeatureCRM)
	eng.AddCustomResource("chatbot para Instagram")
	before := eng.State()

	notified := false
	eng.Subscribe(func(model.BudgetState) { notified = true })

	eng.ToggleFeature(model.FeatureCustomResources)

	assert.Equal(t, before, eng.State())
	assert.False(t, notified, "no-op must not notify observers")
}

func TestCustomResources_AddAndRemove(t *testing.T) {
	eng := newTestEngine()

	first := eng.AddCustomResource("chatbot para Instagram")
	second := eng.AddCustomResource("integração com ERP")
	require.NotEqual(t, first, second)

	resources := eng.State().Features.CustomResources
	require.Len(t, resources, 2)
	assert.Equal(t, "chatbot para Instagram", resources[0].Description)
	assert.Equal(t, "integração com ERP", resources[1].Description)

	eng.RemoveCustomResource(first)
	resources = eng.State().Features.CustomResources
	require.Len(t, resources, 1)
	assert.Equal(t, second, resources[0].ID)
}

func TestRemoveCustomResource_UnknownIDIsNoOp(t *testing.T) {
	eng := newTestEngine()
	eng.AddCustomResource("dashboard customizado")
	before := eng.State().Features.CustomResources

	eng.RemoveCustomResource("nao-existe")

	assert.Equal(t, before, eng.State().Features.CustomResources)
}

func TestApplyCoupon_CaseInsensitive(t *testing.T) {
	eng := newTestEngine()

	eng.ApplyCoupon("gand10")

	discount := eng.State().Discount
	require.NotNil(t, discount.Coupon)
	assert.Equal(t, "GAND10", *discount.Coupon)
	assert.Equal(t, 10, discount.Percentage)
}

func TestApplyCoupon_Table(t *testing.T) {
	tests := []struct {
		code       string
		percentage int
	}{
		{"GAND10", 10},
		{"IA2023", 15},
		{"BEMVINDO", 5},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			eng := newTestEngine()
			eng.ApplyCoupon(tt.code)
			assert.Equal(t, tt.percentage, eng.State().Discount.Percentage)
		})
	}
}

func TestApplyCoupon_InvalidClearsPreviousDiscount(t *testing.T) {
	eng := newTestEngine()

	eng.ApplyCoupon("IA2023")
	require.Equal(t, 15, eng.State().Discount.Percentage)

	eng.ApplyCoupon("NAOEXISTE")

	discount := eng.State().Discount
	assert.Nil(t, discount.Coupon)
	assert.Equal(t, 0, discount.Percentage)
}

func TestUpdateObservations_RoundTrip(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateObservations("entrega em duas fases")
	assert.Equal(t, "entrega em duas fases", eng.State().Observations)
}

func TestObservers_NotifiedWithSnapshot(t *testing.T) {
	var seen []model.BudgetState
	eng := New(model.InitialState(), func(s model.BudgetState) {
		seen = append(seen, s)
	})

	eng.UpdateClient(ClientCompanyName, "ACME")
	eng.ToggleAgentType(model.AgentSDR)

	require.Len(t, seen, 2)
	assert.Equal(t, "ACME", seen[0].Client.CompanyName)
	assert.Equal(t, []model.AgentType{model.AgentSDR}, seen[1].Agents.Types)

	// Snapshots are detached: mutating the engine afterwards must not
	// change what observers saw.
	eng.UpdateClient(ClientCompanyName, "Outra")
	assert.Equal(t, "ACME", seen[0].Client.CompanyName)
}

func TestState_ReturnsDetachedCopy(t *testing.T) {
	eng := newTestEngine()
	eng.ToggleAgentType(model.AgentSDR)

	snapshot := eng.State()
	snapshot.Agents.Types[0] = model.AgentClone
	snapshot.Client.CompanyName = "mutated"

	assert.Equal(t, []model.AgentType{model.AgentSDR}, eng.State().Agents.Types)
	assert.Equal(t, "", eng.State().Client.CompanyName)
}
