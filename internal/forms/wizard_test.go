package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/model"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"5000", 5000},
		{"5000.50", 5000.50},
		{"5000,50", 5000.50},
		{" 1200 ", 1200},
	}
	for _, tt := range tests {
		got, err := parseMoney(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := parseMoney("abc")
	assert.Error(t, err)
}

func TestValidateMoney(t *testing.T) {
	assert.NoError(t, validateMoney("1000,50"))
	assert.Error(t, validateMoney("-5"))
	assert.Error(t, validateMoney("abc"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("12"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-3"))
	assert.Error(t, validatePositiveInt("doze"))
}

func TestValuesFromState_RoundTripThroughApply(t *testing.T) {
	eng := engine.New(model.InitialState())
	eng.UpdateClient(engine.ClientCompanyName, "ACME")
	eng.ToggleAgentType(model.AgentSDR)
	eng.UpdateQuantity(true)
	eng.ToggleFeature(model.FeatureCRM)
	eng.UpdateObservations("nota")
	before := eng.State()

	// Applying the values unchanged must leave the state as it was.
	apply(eng, valuesFromState(before))

	assert.Equal(t, before, eng.State())
}

func TestApply_ReconcilesSelections(t *testing.T) {
	eng := engine.New(model.InitialState())
	eng.ToggleAgentType(model.AgentAtendimento)
	eng.ToggleAgentType(model.AgentSDR)
	eng.ToggleFeature(model.FeatureWhatsapp)

	v := valuesFromState(eng.State())
	v.agentTypes = []model.AgentType{model.AgentSDR, model.AgentClone}
	v.features = []model.FeatureKey{model.FeatureCRM}
	v.quantity = 5
	v.companyName = "ACME"
	v.implementationValue = "7500,50"
	v.contractDuration = "6"
	v.paymentCondition = model.ConditionAvista

	apply(eng, v)

	s := eng.State()
	// SDR was already selected, so it keeps its position.
	assert.Equal(t, []model.AgentType{model.AgentSDR, model.AgentClone}, s.Agents.Types)
	assert.Equal(t, 5, s.Agents.Quantity)
	assert.Equal(t, "ACME", s.Client.CompanyName)
	assert.Equal(t, 7500.50, s.Financial.ImplementationValue)
	assert.Equal(t, 6, s.Financial.ContractDuration)
	assert.Equal(t, model.ConditionAvista, s.Financial.PaymentCondition)
	assert.False(t, s.Features.Whatsapp)
	assert.True(t, s.Features.CRM)
}

func TestApply_BadNumbersKeepPreviousValues(t *testing.T) {
	eng := engine.New(model.InitialState())

	v := valuesFromState(eng.State())
	v.implementationValue = "abc"
	v.contractDuration = "doze"

	apply(eng, v)

	s := eng.State()
	assert.Equal(t, 5000.0, s.Financial.ImplementationValue)
	assert.Equal(t, 12, s.Financial.ContractDuration)
}

func TestApply_PreservesCustomResources(t *testing.T) {
	eng := engine.New(model.InitialState())
	id := eng.AddCustomResource("chatbot para Instagram")

	apply(eng, valuesFromState(eng.State()))

	resources := eng.State().Features.CustomResources
	require.Len(t, resources, 1)
	assert.Equal(t, id, resources[0].ID)
}
