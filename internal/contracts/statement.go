package contracts

import "time"

// StatementType identifies the kind of financial statement being stitched
type StatementType string

const (
	StatementIncome        StatementType = "income_statement"
	StatementBalance       StatementType = "balance_sheet"
	StatementCashFlow      StatementType = "cash_flow"
	StatementEquity        StatementType = "equity"
	StatementComprehensive StatementType = "comprehensive_income"
)

// UsesInstantPeriods reports whether the statement type reports
// point-in-time snapshots rather than date ranges
func (s StatementType) UsesInstantPeriods() bool {
	return s == StatementBalance
}

// LineItem is one row of a parsed source statement.
// Values is keyed by Period.Key() of the declaring statement's periods.
type LineItem struct {
	Concept    string             `json:"concept"` // optionally namespaced, e.g. "us-gaap:Revenues" or "tsla:AutomotiveLeasing"
	Label      string             `json:"label"`
	Level      int                `json:"level"`
	IsAbstract bool               `json:"is_abstract"`
	IsTotal    bool               `json:"is_total"`
	Values     map[string]float64 `json:"values"`
}

// SourceStatement is one parsed statement from one filing.
// The pipeline never mutates it.
// ⭐ SSOT: 파싱 결과 입력 계약은 이 타입으로만
type SourceStatement struct {
	StatementType StatementType `json:"statement_type"`
	FiscalYear    int           `json:"fiscal_year"`
	FiscalPeriod  FiscalPeriod  `json:"fiscal_period"`

	// DocumentPeriodEnd is the filing's declared period end date.
	// Zero means the filing did not declare one.
	DocumentPeriodEnd time.Time `json:"document_period_end,omitempty"`

	Periods   []Period   `json:"periods"`
	LineItems []LineItem `json:"line_items"`
}

// HasDocumentPeriodEnd reports whether the filing declared a period end date
func (s *SourceStatement) HasDocumentPeriodEnd() bool {
	return !s.DocumentPeriodEnd.IsZero()
}

// NonAbstractCount returns the number of line items that carry values.
// Used to pick the most information-rich reference statement.
func (s *SourceStatement) NonAbstractCount() int {
	n := 0
	for _, item := range s.LineItems {
		if !item.IsAbstract {
			n++
		}
	}
	return n
}

// HasPeriod reports whether the statement declares the given period
func (s *SourceStatement) HasPeriod(key string) bool {
	for _, p := range s.Periods {
		if p.Key() == key {
			return true
		}
	}
	return false
}
