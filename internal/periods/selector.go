package periods

import (
	"sort"

	"github.com/wonny/finstitch/internal/contracts"
)

// selectInstants picks the eligible instant periods of one source.
// With a known document date only the exact match is eligible, at most
// one; no match means the source contributes nothing. Without a document
// date the single most recent instant is the only fallback.
func selectInstants(src *contracts.SourceStatement) []contracts.Period {
	var instants []contracts.Period
	for _, p := range src.Periods {
		if p.Type == contracts.PeriodInstant {
			instants = append(instants, p)
		}
	}
	if len(instants) == 0 {
		return nil
	}

	if src.HasDocumentPeriodEnd() {
		for _, p := range instants {
			if matchesDocumentEnd(p, src.DocumentPeriodEnd) {
				return []contracts.Period{p}
			}
		}
		return nil
	}

	sort.SliceStable(instants, func(i, j int) bool {
		return instants[i].Instant.After(instants[j].Instant)
	})
	return instants[:1]
}

// selectDurations picks the eligible duration periods of one source:
// exact document-date filter first (when known), then the duration band
// for the statement's declared fiscal period, ties broken by closeness to
// the band target, never by closeness to the document date.
func selectDurations(src *contracts.SourceStatement, statementType contracts.StatementType) []contracts.Period {
	var durations []contracts.Period
	for _, p := range src.Periods {
		if p.Type == contracts.PeriodDuration {
			durations = append(durations, p)
		}
	}
	if len(durations) == 0 {
		return nil
	}

	if src.HasDocumentPeriodEnd() {
		eligible := durations[:0]
		for _, p := range durations {
			if matchesDocumentEnd(p, src.DocumentPeriodEnd) {
				eligible = append(eligible, p)
			}
		}
		durations = eligible
		if len(durations) == 0 {
			return nil
		}
	}

	band := ExpectedBand(statementType, src.FiscalPeriod)

	var inBand []contracts.Period
	for _, p := range durations {
		if band.Contains(p.Days()) {
			inBand = append(inBand, p)
		}
	}
	if len(inBand) == 0 {
		return nil
	}

	sort.SliceStable(inBand, func(i, j int) bool {
		di, dj := band.Distance(inBand[i].Days()), band.Distance(inBand[j].Days())
		if di != dj {
			return di < dj
		}
		return inBand[i].Key() < inBand[j].Key()
	})

	return inBand
}
