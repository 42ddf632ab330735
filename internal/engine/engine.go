// Package engine owns the canonical budget state and the pricing rules
// that derive totals from it. All mutation operations are total: values
// are clamped or replaced, never rejected with an error.
package engine

import (
	"github.com/google/uuid"

	"github.com/agenciagand/orca/internal/model"
)

// Observer is invoked after every successful mutation with a snapshot
// of the replacement state. Observers must not mutate the engine from
// inside the callback.
type Observer func(model.BudgetState)

// Engine holds exactly one live BudgetState. Every mutation clones the
// current state, applies the change to the clone, and atomically
// replaces the whole state, so callers never observe a partial write.
//
// The engine is single-writer and not safe for concurrent use.
type Engine struct {
	state     model.BudgetState
	observers []Observer
}

// New creates an engine seeded with the given state.
func New(initial model.BudgetState, observers ...Observer) *Engine {
	return &Engine{
		state:     initial.Clone(),
		observers: observers,
	}
}

// Subscribe registers an observer for post-mutation notifications.
func (e *Engine) Subscribe(fn Observer) {
	e.observers = append(e.observers, fn)
}

// State returns a snapshot of the current state.
func (e *Engine) State() model.BudgetState {
	return e.state.Clone()
}

// Totals derives the monetary totals from the current state. The
// derivation is recomputed on every call; nothing is cached.
func (e *Engine) Totals() Totals {
	return Derive(e.state)
}

// apply runs one mutation against a clone of the current state,
// replaces the live state with the result, and notifies observers.
func (e *Engine) apply(mutate func(*model.BudgetState)) {
	next := e.state.Clone()
	mutate(&next)
	e.state = next

	for _, fn := range e.observers {
		fn(next.Clone())
	}
}

// ClientField names one of the four client identification fields.
type ClientField string

const (
	ClientCompanyName     ClientField = "companyName"
	ClientResponsibleName ClientField = "responsibleName"
	ClientEmail           ClientField = "email"
	ClientPhone           ClientField = "phone"
)

// UpdateClient replaces one client field. Any string is accepted,
// including empty; unknown fields are ignored.
func (e *Engine) UpdateClient(field ClientField, value string) {
	e.apply(func(s *model.BudgetState) {
		switch field {
		case ClientCompanyName:
			s.Client.CompanyName = value
		case ClientResponsibleName:
			s.Client.ResponsibleName = value
		case ClientEmail:
			s.Client.Email = value
		case ClientPhone:
			s.Client.Phone = value
		}
	})
}

// ToggleAgentType adds the type if absent and removes it if present.
// Remaining members keep their insertion order.
func (e *Engine) ToggleAgentType(t model.AgentType) {
	e.apply(func(s *model.BudgetState) {
		if s.Agents.HasType(t) {
			kept := s.Agents.Types[:0]
			for _, existing := range s.Agents.Types {
				if existing != t {
					kept = append(kept, existing)
				}
			}
			s.Agents.Types = kept
			return
		}
		s.Agents.Types = append(s.Agents.Types, t)
	})
}

// SetCustomAgentType replaces the custom type description. It is kept
// even while "personalizado" is not selected; downstream consumers
// ignore it in that case.
func (e *Engine) SetCustomAgentType(value string) {
	e.apply(func(s *model.BudgetState) {
		s.Agents.CustomTypeDescription = value
	})
}

// UpdateQuantity steps the agent count up or down by one, clamped to
// [MinQuantity, MaxQuantity]. At a boundary the call is a silent no-op.
func (e *Engine) UpdateQuantity(increment bool) {
	e.apply(func(s *model.BudgetState) {
		q := s.Agents.Quantity
		if increment {
			q++
		} else {
			q--
		}
		s.Agents.Quantity = clampQuantity(q)
	})
}

func clampQuantity(q int) int {
	if q < model.MinQuantity {
		return model.MinQuantity
	}
	if q > model.MaxQuantity {
		return model.MaxQuantity
	}
	return q
}

// SetPlanType replaces the plan type. Dependent fields (contract
// duration, maintenance value) are left untouched; they become
// semantically inactive rather than being cleared.
func (e *Engine) SetPlanType(p model.PlanType) {
	e.apply(func(s *model.BudgetState) { s.Financial.PlanType = p })
}

// SetImplementationValue replaces the per-agent implementation price.
func (e *Engine) SetImplementationValue(v float64) {
	e.apply(func(s *model.BudgetState) { s.Financial.ImplementationValue = v })
}

// SetMaintenanceValue replaces the per-agent monthly maintenance price.
func (e *Engine) SetMaintenanceValue(v float64) {
	e.apply(func(s *model.BudgetState) { s.Financial.MaintenanceValue = v })
}

// SetContractDuration replaces the contract duration in months.
func (e *Engine) SetContractDuration(months int) {
	e.apply(func(s *model.BudgetState) { s.Financial.ContractDuration = months })
}

// SetPaymentMethod replaces the payment method.
func (e *Engine) SetPaymentMethod(m model.PaymentMethod) {
	e.apply(func(s *model.BudgetState) { s.Financial.PaymentMethod = m })
}

// SetPaymentCondition replaces the payment condition.
func (e *Engine) SetPaymentCondition(c model.PaymentCondition) {
	e.apply(func(s *model.BudgetState) { s.Financial.PaymentCondition = c })
}

// SetCustomPaymentCondition replaces the free-text payment condition.
func (e *Engine) SetCustomPaymentCondition(value string) {
	e.apply(func(s *model.BudgetState) { s.Financial.CustomPaymentCondition = value })
}

// SetDeliveryTime replaces the delivery time in days.
func (e *Engine) SetDeliveryTime(days int) {
	e.apply(func(s *model.BudgetState) { s.Financial.DeliveryTime = days })
}

// ToggleFeature flips one boolean feature toggle. Keys that do not name
// a boolean toggle (notably the custom-resources list) leave the state
// untouched and fire no notification.
func (e *Engine) ToggleFeature(key model.FeatureKey) {
	probe := e.state.Features
	if probe.Flag(key) == nil {
		return
	}
	e.apply(func(s *model.BudgetState) {
		flag := s.Features.Flag(key)
		*flag = !*flag
	})
}

// AddCustomResource appends a line item with a freshly generated id and
// returns that id. Empty descriptions are accepted; rejecting them is a
// form-level concern.
func (e *Engine) AddCustomResource(description string) string {
	id := uuid.NewString()
	e.apply(func(s *model.BudgetState) {
		s.Features.CustomResources = append(s.Features.CustomResources, model.CustomResource{
			ID:          id,
			Description: description,
		})
	})
	return id
}

// RemoveCustomResource removes the line item with the matching id.
// Unknown ids are a no-op.
func (e *Engine) RemoveCustomResource(id string) {
	e.apply(func(s *model.BudgetState) {
		kept := s.Features.CustomResources[:0]
		for _, r := range s.Features.CustomResources {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		s.Features.CustomResources = kept
	})
}

// UpdateObservations replaces the free-text observations.
func (e *Engine) UpdateObservations(value string) {
	e.apply(func(s *model.BudgetState) { s.Observations = value })
}
