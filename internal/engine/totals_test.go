package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenciagand/orca/internal/model"
)

func TestDerive_PlanCompleto(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateQuantity(true) // 1 -> 2

	totals := eng.Totals()

	assert.Equal(t, 10000.0, totals.Implementation)
	assert.Equal(t, 24000.0, totals.MaintenanceTotal)
	assert.Equal(t, 34000.0, totals.Subtotal)
	assert.Equal(t, 34000.0, totals.Total)
	assert.Equal(t, 2000.0, totals.MonthlyMaintenance)
}

func TestDerive_AvistaAppliesFivePercent(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateQuantity(true)
	eng.SetPaymentCondition(model.ConditionAvista)

	totals := eng.Totals()

	assert.Equal(t, 34000.0, totals.Subtotal)
	assert.InDelta(t, 32300.0, totals.Total, 1e-9)
}

func TestDerive_CouponDiscount(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateQuantity(true)
	eng.ApplyCoupon("gand10")

	totals := eng.Totals()

	assert.Equal(t, 34000.0, totals.Subtotal)
	assert.InDelta(t, 30600.0, totals.Total, 1e-9)
}

func TestDerive_CouponThenAvistaStack(t *testing.T) {
	eng := newTestEngine()
	eng.UpdateQuantity(true)
	eng.ApplyCoupon("GAND10")
	eng.SetPaymentCondition(model.ConditionAvista)

	// Discount first, then the cash rebate over the discounted total.
	totals := eng.Totals()
	assert.InDelta(t, 30600.0*0.95, totals.Total, 1e-9)
}

func TestDerive_PlanImplementacao(t *testing.T) {
	eng := newTestEngine()
	eng.SetPlanType(model.PlanImplementacao)
	eng.SetImplementationValue(3000)

	totals := eng.Totals()

	assert.Equal(t, 3000.0, totals.Implementation)
	assert.Equal(t, 0.0, totals.MaintenanceTotal)
	assert.Equal(t, 3000.0, totals.Subtotal)
	assert.Equal(t, 3000.0, totals.Total)
	// Monthly maintenance is still derived for display purposes.
	assert.Equal(t, 1000.0, totals.MonthlyMaintenance)
}

func TestDerive_ZeroDiscountPercentageIgnored(t *testing.T) {
	state := model.InitialState()
	code := "GAND10"
	state.Discount = model.Discount{Coupon: &code, Percentage: 0}

	totals := Derive(state)
	assert.Equal(t, totals.Subtotal, totals.Total)
}

func TestDerive_PureFunctionOfState(t *testing.T) {
	// Two engines reaching the same state through different histories
	// must price identically.
	a := newTestEngine()
	a.SetImplementationValue(8000)
	a.ApplyCoupon("IA2023")
	a.ApplyCoupon("nada")
	a.SetImplementationValue(5000)

	b := newTestEngine()

	assert.Equal(t, b.State(), a.State())
	assert.Equal(t, b.Totals(), a.Totals())

	// Derive does not mutate its input.
	s := a.State()
	Derive(s)
	assert.Equal(t, a.State(), s)
}
