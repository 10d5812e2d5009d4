package periods

import (
	"time"

	"github.com/wonny/finstitch/internal/contracts"
)

// sameDate reports whether two dates are exactly the same calendar day.
// This is the only date comparison the optimizer performs: tolerance
// windows around the document date caused periods from the next fiscal
// year to be selected, so approximate matching is forbidden.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// matchesDocumentEnd reports whether the period's end date (duration) or
// instant date exactly equals the filing's document period end date
func matchesDocumentEnd(p contracts.Period, documentEnd time.Time) bool {
	return sameDate(p.EndDate(), documentEnd)
}
