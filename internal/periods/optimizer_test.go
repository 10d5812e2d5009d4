package periods

import (
	"testing"
	"time"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/pkg/logger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func balanceSource(docEnd time.Time, instants ...time.Time) contracts.SourceStatement {
	src := contracts.SourceStatement{
		StatementType:     contracts.StatementBalance,
		DocumentPeriodEnd: docEnd,
	}
	for _, d := range instants {
		src.Periods = append(src.Periods, contracts.NewInstant(d))
	}
	return src
}

func TestOptimizer_Select_ExactDocumentDateOnly(t *testing.T) {
	o := New(logger.Nop())

	// The filing declares 2024-12-31 but carries only a 2025-01-01
	// snapshot. One day apart is not a match.
	src := balanceSource(date(2024, 12, 31), date(2025, 1, 1))

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementBalance, 8)
	if len(selected) != 0 {
		t.Errorf("Select() = %d periods, want 0: approximate dates must never match", len(selected))
	}
}

func TestOptimizer_Select_DocumentDatePicksExactInstant(t *testing.T) {
	o := New(logger.Nop())

	src := balanceSource(date(2024, 12, 31),
		date(2023, 12, 31), date(2024, 12, 31))

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementBalance, 8)
	if len(selected) != 1 {
		t.Fatalf("Select() = %d periods, want 1", len(selected))
	}
	if selected[0].Key() != "instant:2024-12-31" {
		t.Errorf("selected %s, want instant:2024-12-31", selected[0].Key())
	}
}

func TestOptimizer_Select_NoDocumentDateFallsBackToMostRecent(t *testing.T) {
	o := New(logger.Nop())

	src := balanceSource(time.Time{},
		date(2023, 12, 31), date(2024, 12, 31))

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementBalance, 8)
	if len(selected) != 1 {
		t.Fatalf("Select() = %d periods, want 1", len(selected))
	}
	if selected[0].Key() != "instant:2024-12-31" {
		t.Errorf("selected %s, want the most recent instant", selected[0].Key())
	}
}

func TestOptimizer_Select_DurationBandFilter(t *testing.T) {
	o := New(logger.Nop())

	src := contracts.SourceStatement{
		StatementType: contracts.StatementIncome,
		FiscalPeriod:  contracts.FiscalFY,
		Periods: []contracts.Period{
			contracts.NewDuration(date(2024, 1, 1), date(2024, 12, 31)),  // 366d, annual
			contracts.NewDuration(date(2024, 10, 1), date(2024, 12, 31)), // 92d, quarterly
		},
	}

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementIncome, 8)
	if len(selected) != 1 {
		t.Fatalf("Select() = %d periods, want 1", len(selected))
	}
	if selected[0].Days() != 366 {
		t.Errorf("selected a %d-day period, want the annual one", selected[0].Days())
	}
}

func TestOptimizer_Select_CashFlowUsesYearToDateBands(t *testing.T) {
	o := New(logger.Nop())

	src := contracts.SourceStatement{
		StatementType: contracts.StatementCashFlow,
		FiscalPeriod:  contracts.FiscalQ2,
		Periods: []contracts.Period{
			contracts.NewDuration(date(2024, 4, 1), date(2024, 6, 30)), // 91d discrete quarter
			contracts.NewDuration(date(2024, 1, 1), date(2024, 6, 30)), // 182d year to date
		},
	}

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementCashFlow, 8)
	if len(selected) == 0 {
		t.Fatal("Select() returned no periods")
	}
	if selected[0].Days() != 182 {
		t.Errorf("selected a %d-day period, want the 182-day year-to-date one", selected[0].Days())
	}
}

func TestOptimizer_Select_DeduplicatesExactDatesAcrossSources(t *testing.T) {
	o := New(logger.Nop())

	newest := balanceSource(date(2024, 12, 31), date(2024, 12, 31))
	mid := balanceSource(date(2023, 12, 31), date(2023, 12, 31))
	older := balanceSource(date(2023, 12, 31), date(2023, 12, 31))

	selected := o.Select([]contracts.SourceStatement{newest, mid, older}, contracts.StatementBalance, 8)
	if len(selected) != 2 {
		t.Fatalf("Select() = %d periods, want 2", len(selected))
	}
	if selected[0].Key() != "instant:2024-12-31" || selected[1].Key() != "instant:2023-12-31" {
		t.Errorf("periods not newest first: %s, %s", selected[0].Key(), selected[1].Key())
	}
	// The shared 2023-12-31 column belongs to the source seen first
	if selected[1].SourceIndex != 1 {
		t.Errorf("duplicate period kept SourceIndex %d, want 1 (first occurrence wins)", selected[1].SourceIndex)
	}
}

func TestOptimizer_Select_NearDuplicatesStayDistinct(t *testing.T) {
	o := New(logger.Nop())

	a := balanceSource(date(2024, 12, 31), date(2024, 12, 31))
	b := balanceSource(date(2025, 1, 1), date(2025, 1, 1))

	selected := o.Select([]contracts.SourceStatement{b, a}, contracts.StatementBalance, 8)
	if len(selected) != 2 {
		t.Errorf("Select() = %d periods, want 2: one day apart is two columns", len(selected))
	}
}

func TestOptimizer_Select_MaxPeriodsTruncates(t *testing.T) {
	o := New(logger.Nop())

	var sources []contracts.SourceStatement
	for year := 2024; year >= 2019; year-- {
		sources = append(sources, balanceSource(date(year, 12, 31), date(year, 12, 31)))
	}

	selected := o.Select(sources, contracts.StatementBalance, 3)
	if len(selected) != 3 {
		t.Fatalf("Select() = %d periods, want 3", len(selected))
	}
	if selected[0].Key() != "instant:2024-12-31" {
		t.Errorf("truncation must keep the newest periods, got %s first", selected[0].Key())
	}
}

func TestOptimizer_Select_SkipsMismatchedStatementType(t *testing.T) {
	o := New(logger.Nop())

	income := contracts.SourceStatement{
		StatementType: contracts.StatementIncome,
		FiscalPeriod:  contracts.FiscalFY,
		Periods: []contracts.Period{
			contracts.NewDuration(date(2024, 1, 1), date(2024, 12, 31)),
		},
	}

	selected := o.Select([]contracts.SourceStatement{income}, contracts.StatementBalance, 8)
	if len(selected) != 0 {
		t.Errorf("Select() = %d periods, want 0 for mismatched type", len(selected))
	}
}

func TestOptimizer_Select_EnrichesMetadata(t *testing.T) {
	o := New(logger.Nop())

	src := contracts.SourceStatement{
		StatementType:     contracts.StatementIncome,
		FiscalYear:        2024,
		FiscalPeriod:      contracts.FiscalFY,
		DocumentPeriodEnd: date(2024, 12, 31),
		Periods: []contracts.Period{
			contracts.NewDuration(date(2024, 1, 1), date(2024, 12, 31)),
		},
	}

	selected := o.Select([]contracts.SourceStatement{src}, contracts.StatementIncome, 8)
	if len(selected) != 1 {
		t.Fatalf("Select() = %d periods, want 1", len(selected))
	}

	p := selected[0]
	if p.FiscalPeriod != contracts.FiscalFY {
		t.Errorf("FiscalPeriod = %s, want FY", p.FiscalPeriod)
	}
	if p.FiscalYear != 2024 {
		t.Errorf("FiscalYear = %d, want 2024", p.FiscalYear)
	}
	if !p.DocumentEnd.Equal(date(2024, 12, 31)) {
		t.Errorf("DocumentEnd = %v, want the filing's declared date", p.DocumentEnd)
	}
}
