// Package export renders a budget draft and its totals into a
// commercial proposal document. It reads state once and never mutates.
package export

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// OrderNumber derives a proposal number from the date plus a two-digit
// random suffix, format YYMMDDRR. It is generated once per invocation
// and never persisted with the draft.
func OrderNumber(now time.Time) string {
	return now.Format("060102") + fmt.Sprintf("%02d", rand.IntN(100))
}
