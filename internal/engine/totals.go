package engine

import "github.com/agenciagand/orca/internal/model"

// avistaFactor is the fixed 5% reduction for cash payment, applied
// after the coupon discount. The order matters: both adjustments are
// percentages of the running total, not of the original subtotal.
const avistaFactor = 0.95

// Totals are the monetary figures derived from a BudgetState. They are
// never stored; re-deriving from a saved-and-reloaded state yields the
// same values.
type Totals struct {
	Implementation     float64
	MaintenanceTotal   float64
	Subtotal           float64
	Total              float64
	MonthlyMaintenance float64
}

// Derive computes the totals as a pure function of the state. No
// rounding is performed here; currency rounding belongs to display
// formatting.
func Derive(s model.BudgetState) Totals {
	fin := s.Financial
	quantity := float64(s.Agents.Quantity)

	implementation := fin.ImplementationValue * quantity

	var maintenanceTotal float64
	if fin.PlanType == model.PlanCompleto {
		maintenanceTotal = fin.MaintenanceValue * quantity * float64(fin.ContractDuration)
	}

	subtotal := implementation + maintenanceTotal
	total := subtotal

	if s.Discount.Percentage > 0 {
		total -= subtotal * float64(s.Discount.Percentage) / 100
	}

	if fin.PaymentCondition == model.ConditionAvista {
		total *= avistaFactor
	}

	return Totals{
		Implementation:     implementation,
		MaintenanceTotal:   maintenanceTotal,
		Subtotal:           subtotal,
		Total:              total,
		MonthlyMaintenance: fin.MaintenanceValue * quantity,
	}
}
