package engine

import (
	"strings"

	"github.com/agenciagand/orca/internal/model"
)

// couponTable is the fixed coupon catalogue. Codes are stored
// normalized (upper-case); lookups are case-insensitive. The table is
// deliberately not configurable.
var couponTable = map[string]int{
	"GAND10":   10,
	"IA2023":   15,
	"BEMVINDO": 5,
}

// LookupCoupon returns the normalized code and discount percentage for
// a coupon, or ok=false when the code is unknown.
func LookupCoupon(code string) (normalized string, percentage int, ok bool) {
	normalized = strings.ToUpper(strings.TrimSpace(code))
	percentage, ok = couponTable[normalized]
	return normalized, percentage, ok
}

// ApplyCoupon looks the code up case-insensitively. A hit replaces the
// discount with the table entry; a miss clears any active discount to
// zero. This is an all-or-nothing replace: re-applying an invalid code
// always drops a previously applied valid one.
func (e *Engine) ApplyCoupon(code string) {
	normalized, percentage, ok := LookupCoupon(code)
	e.apply(func(s *model.BudgetState) {
		if !ok {
			s.Discount.Coupon = nil
			s.Discount.Percentage = 0
			return
		}
		s.Discount.Coupon = &normalized
		s.Discount.Percentage = percentage
	})
}
