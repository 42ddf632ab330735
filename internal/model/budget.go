// Package model defines the budget draft state and its enumerated field types.
package model

// AgentType identifies one of the offered AI agent profiles.
type AgentType string

const (
	AgentAtendimento   AgentType = "atendimento"
	AgentSDR           AgentType = "sdr"
	AgentVendedor      AgentType = "vendedor"
	AgentSuporte       AgentType = "suporte"
	AgentClone         AgentType = "clone"
	AgentPersonalizado AgentType = "personalizado"
)

// AllAgentTypes lists the selectable agent types in presentation order.
var AllAgentTypes = []AgentType{
	AgentAtendimento,
	AgentSDR,
	AgentVendedor,
	AgentSuporte,
	AgentClone,
	AgentPersonalizado,
}

// ValidAgentTypes is the canonical set of accepted agent type strings.
var ValidAgentTypes = map[AgentType]bool{
	AgentAtendimento: true, AgentSDR: true, AgentVendedor: true,
	AgentSuporte: true, AgentClone: true, AgentPersonalizado: true,
}

// PlanType selects whether pricing includes recurring maintenance
// (completo) or a single upfront payment with an included support
// period (implementacao).
type PlanType string

const (
	PlanCompleto      PlanType = "completo"
	PlanImplementacao PlanType = "implementacao"
)

// PaymentMethod identifies how the client pays.
type PaymentMethod string

const (
	PaymentCartao        PaymentMethod = "cartao"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentPix           PaymentMethod = "pix"
	PaymentBoleto        PaymentMethod = "boleto"
)

// AllPaymentMethods lists the payment methods in presentation order.
var AllPaymentMethods = []PaymentMethod{
	PaymentCartao, PaymentTransferencia, PaymentPix, PaymentBoleto,
}

// PaymentCondition identifies the payment schedule.
type PaymentCondition string

const (
	ConditionAvista        PaymentCondition = "avista"
	ConditionParcelado     PaymentCondition = "parcelado"
	ConditionPersonalizado PaymentCondition = "personalizado"
)

// AllPaymentConditions lists the payment conditions in presentation order.
var AllPaymentConditions = []PaymentCondition{
	ConditionAvista, ConditionParcelado, ConditionPersonalizado,
}

// FeatureKey names one of the fixed boolean feature toggles.
type FeatureKey string

const (
	FeatureWhatsapp      FeatureKey = "whatsapp"
	FeatureSpreadsheet   FeatureKey = "spreadsheet"
	FeatureCRM           FeatureKey = "crm"
	FeatureExternalTools FeatureKey = "externalTools"
	FeatureDashboard     FeatureKey = "dashboard"
	FeatureReports       FeatureKey = "reports"
	FeatureTraining      FeatureKey = "training"
	FeatureSupport247    FeatureKey = "support247"

	// FeatureCustomResources names the custom line-item list. It is not a
	// boolean toggle and is rejected by toggle operations.
	FeatureCustomResources FeatureKey = "customResources"
)

// AllFeatureKeys lists the boolean feature toggles in presentation order.
// FeatureCustomResources is deliberately absent.
var AllFeatureKeys = []FeatureKey{
	FeatureWhatsapp,
	FeatureSpreadsheet,
	FeatureCRM,
	FeatureExternalTools,
	FeatureDashboard,
	FeatureReports,
	FeatureTraining,
	FeatureSupport247,
}

// Quantity bounds for the agent count. Updates clamp silently.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// ClientInfo holds the free-text client identification block.
// No format validation is applied here; empty strings are accepted.
type ClientInfo struct {
	CompanyName     string `json:"companyName"`
	ResponsibleName string `json:"responsibleName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// AgentSelection holds the chosen agent profiles and head count.
// Types is an ordered set: membership toggles preserve insertion order
// and never hold duplicates.
type AgentSelection struct {
	Types                 []AgentType `json:"types"`
	CustomTypeDescription string      `json:"customTypeDescription"`
	Quantity              int         `json:"quantity"`
}

// HasType reports whether t is currently selected.
func (a AgentSelection) HasType(t AgentType) bool {
	for _, existing := range a.Types {
		if existing == t {
			return true
		}
	}
	return false
}

// FinancialTerms holds the pricing parameters. ImplementationValue and
// MaintenanceValue are per-agent unit prices. ContractDuration is in
// months and only meaningful for PlanCompleto; DeliveryTime is in days.
type FinancialTerms struct {
	PlanType               PlanType         `json:"planType"`
	ImplementationValue    float64          `json:"implementationValue"`
	MaintenanceValue       float64          `json:"maintenanceValue"`
	ContractDuration       int              `json:"contractDuration"`
	PaymentMethod          PaymentMethod    `json:"paymentMethod"`
	PaymentCondition       PaymentCondition `json:"paymentCondition"`
	CustomPaymentCondition string           `json:"customPaymentCondition"`
	DeliveryTime           int              `json:"deliveryTime"`
}

// CustomResource is a user-added free-text line item. ID is the sole
// removal key.
type CustomResource struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// FeatureSet holds the eight fixed capability toggles plus the ordered
// custom line items.
type FeatureSet struct {
	Whatsapp        bool             `json:"whatsapp"`
	Spreadsheet     bool             `json:"spreadsheet"`
	CRM             bool             `json:"crm"`
	ExternalTools   bool             `json:"externalTools"`
	Dashboard       bool             `json:"dashboard"`
	Reports         bool             `json:"reports"`
	Training        bool             `json:"training"`
	Support247      bool             `json:"support247"`
	CustomResources []CustomResource `json:"customResources"`
}

// Flag returns a pointer to the boolean for key, or nil when key does
// not name a boolean toggle.
func (f *FeatureSet) Flag(key FeatureKey) *bool {
	switch key {
	case FeatureWhatsapp:
		return &f.Whatsapp
	case FeatureSpreadsheet:
		return &f.Spreadsheet
	case FeatureCRM:
		return &f.CRM
	case FeatureExternalTools:
		return &f.ExternalTools
	case FeatureDashboard:
		return &f.Dashboard
	case FeatureReports:
		return &f.Reports
	case FeatureTraining:
		return &f.Training
	case FeatureSupport247:
		return &f.Support247
	}
	return nil
}

// Enabled returns the keys of the enabled boolean toggles in
// presentation order.
func (f FeatureSet) Enabled() []FeatureKey {
	var keys []FeatureKey
	for _, key := range AllFeatureKeys {
		if on := f.Flag(key); on != nil && *on {
			keys = append(keys, key)
		}
	}
	return keys
}

// Discount holds the active coupon, if any. Percentage is 0 when no
// coupon is applied; Coupon is nil in that case.
type Discount struct {
	Coupon     *string `json:"coupon"`
	Percentage int     `json:"percentage"`
}

// BudgetState is the complete draft of one quote. It has value
// semantics: mutation operations produce a replacement state rather
// than editing in place.
type BudgetState struct {
	Client       ClientInfo     `json:"client"`
	Agents       AgentSelection `json:"agents"`
	Financial    FinancialTerms `json:"financial"`
	Features     FeatureSet     `json:"features"`
	Discount     Discount       `json:"discount"`
	Observations string         `json:"observations"`
}

// InitialState returns the default draft used when no saved draft
// exists or the saved draft cannot be read.
func InitialState() BudgetState {
	return BudgetState{
		Agents: AgentSelection{
			Types:    []AgentType{},
			Quantity: 1,
		},
		Financial: FinancialTerms{
			PlanType:            PlanCompleto,
			ImplementationValue: 5000,
			MaintenanceValue:    1000,
			ContractDuration:    12,
			PaymentMethod:       PaymentBoleto,
			PaymentCondition:    ConditionParcelado,
			DeliveryTime:        30,
		},
		Features: FeatureSet{
			CustomResources: []CustomResource{},
		},
	}
}

// Clone returns a deep copy of the state. Slices are copied so the
// clone shares nothing with the original.
func (s BudgetState) Clone() BudgetState {
	out := s

	out.Agents.Types = make([]AgentType, len(s.Agents.Types))
	copy(out.Agents.Types, s.Agents.Types)

	out.Features.CustomResources = make([]CustomResource, len(s.Features.CustomResources))
	copy(out.Features.CustomResources, s.Features.CustomResources)

	if s.Discount.Coupon != nil {
		coupon := *s.Discount.Coupon
		out.Discount.Coupon = &coupon
	}

	return out
}
