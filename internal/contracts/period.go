package contracts

import (
	"fmt"
	"time"
)

// PeriodType distinguishes point-in-time and date-range reporting periods
type PeriodType string

const (
	PeriodInstant  PeriodType = "instant"
	PeriodDuration PeriodType = "duration"
)

// FiscalPeriod classifies a reporting period within the fiscal year
type FiscalPeriod string

const (
	FiscalFY FiscalPeriod = "FY"
	FiscalQ1 FiscalPeriod = "Q1"
	FiscalQ2 FiscalPeriod = "Q2"
	FiscalQ3 FiscalPeriod = "Q3"
	FiscalQ4 FiscalPeriod = "Q4"
)

// Period represents one reporting period column of a statement
// ⭐ SSOT: 기간 동일성 판정은 Key()로만 수행
type Period struct {
	Type    PeriodType `json:"type"`
	Instant time.Time  `json:"instant,omitempty"` // set only for instant periods
	Start   time.Time  `json:"start,omitempty"`   // set only for duration periods
	End     time.Time  `json:"end,omitempty"`     // set only for duration periods

	// Derived metadata, filled during period selection
	FiscalPeriod FiscalPeriod `json:"fiscal_period,omitempty"`
	FiscalYear   int          `json:"fiscal_year,omitempty"`
	DurationDays int          `json:"duration_days,omitempty"`
	SourceIndex  int          `json:"source_index"`
	DocumentEnd  time.Time    `json:"document_end,omitempty"` // document period end date of the source filing
}

// NewInstant creates an instant period for the given date
func NewInstant(date time.Time) Period {
	return Period{Type: PeriodInstant, Instant: date.UTC().Truncate(24 * time.Hour)}
}

// NewDuration creates a duration period for the given date range
func NewDuration(start, end time.Time) Period {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	return Period{
		Type:         PeriodDuration,
		Start:        start,
		End:          end,
		DurationDays: int(end.Sub(start).Hours()/24) + 1,
	}
}

// Key returns the canonical identity of the period.
// Only the type and the exact date(s) participate; metadata never does.
func (p Period) Key() string {
	if p.Type == PeriodInstant {
		return fmt.Sprintf("instant:%s", p.Instant.Format("2006-01-02"))
	}
	return fmt.Sprintf("duration:%s:%s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// EndDate returns the instant date or the duration end date
func (p Period) EndDate() time.Time {
	if p.Type == PeriodInstant {
		return p.Instant
	}
	return p.End
}

// Equal reports whether two periods share the same type and identical dates.
// There is no tolerance window.
func (p Period) Equal(other Period) bool {
	return p.Key() == other.Key()
}

// Days returns the duration length in days (0 for instant periods)
func (p Period) Days() int {
	if p.Type != PeriodDuration {
		return 0
	}
	if p.DurationDays > 0 {
		return p.DurationDays
	}
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Label returns a human-readable period label
func (p Period) Label() string {
	if p.Type == PeriodInstant {
		return p.Instant.Format("2006-01-02")
	}
	return fmt.Sprintf("%s ~ %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
