package periods

import "github.com/wonny/finstitch/internal/contracts"

// Band is an expected duration range in days with its ideal target length
type Band struct {
	Min    int
	Max    int
	Target int
}

// Contains reports whether days falls inside the band
func (b Band) Contains(days int) bool {
	return days >= b.Min && days <= b.Max
}

// Distance returns how far days is from the band's target length
func (b Band) Distance(days int) int {
	d := days - b.Target
	if d < 0 {
		return -d
	}
	return d
}

// Expected duration bands per fiscal period classification
var (
	BandAnnual     = Band{Min: 350, Max: 380, Target: 365}
	BandQuarter    = Band{Min: 80, Max: 100, Target: 90}
	BandHalfYear   = Band{Min: 175, Max: 190, Target: 180} // Q2 year-to-date
	BandNineMonths = Band{Min: 260, Max: 285, Target: 270} // Q3 year-to-date
)

// ExpectedBand returns the duration band a statement's periods should fall
// into given its declared fiscal period. Cash flow statements report
// year-to-date figures, so Q2/Q3 expect the cumulative bands.
func ExpectedBand(statementType contracts.StatementType, fiscal contracts.FiscalPeriod) Band {
	if fiscal == contracts.FiscalFY {
		return BandAnnual
	}
	if statementType == contracts.StatementCashFlow {
		switch fiscal {
		case contracts.FiscalQ2:
			return BandHalfYear
		case contracts.FiscalQ3:
			return BandNineMonths
		}
	}
	return BandQuarter
}

// ClassifyDuration maps a duration length onto a fiscal period kind.
// Returns false when the length fits no known band.
func ClassifyDuration(days int) (contracts.FiscalPeriod, bool) {
	switch {
	case BandAnnual.Contains(days):
		return contracts.FiscalFY, true
	case BandQuarter.Contains(days):
		return contracts.FiscalQ1, true // quarterly length; which quarter comes from the source
	case BandHalfYear.Contains(days):
		return contracts.FiscalQ2, true
	case BandNineMonths.Contains(days):
		return contracts.FiscalQ3, true
	default:
		return "", false
	}
}
