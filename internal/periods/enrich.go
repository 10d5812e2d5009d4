package periods

import "github.com/wonny/finstitch/internal/contracts"

// enrich fills the derived metadata of a selected period from its source:
// fiscal classification, source rank and the filing's document end date.
func enrich(p contracts.Period, src *contracts.SourceStatement, sourceIndex int) contracts.Period {
	p.SourceIndex = sourceIndex
	p.DocumentEnd = src.DocumentPeriodEnd

	if p.Type == contracts.PeriodDuration {
		p.DurationDays = p.Days()
	}

	if p.FiscalPeriod == "" {
		if src.FiscalPeriod != "" {
			p.FiscalPeriod = src.FiscalPeriod
		} else if p.Type == contracts.PeriodDuration {
			if fp, ok := ClassifyDuration(p.Days()); ok {
				p.FiscalPeriod = fp
			}
		}
	}

	if p.FiscalYear == 0 {
		if src.FiscalYear != 0 {
			p.FiscalYear = src.FiscalYear
		} else {
			p.FiscalYear = p.EndDate().Year()
		}
	}

	return p
}
