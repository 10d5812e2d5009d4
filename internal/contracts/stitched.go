package contracts

// StitchedLineItem is one row of a stitched multi-period statement.
// Values and OriginalLabels are keyed by Period.Key() of the statement's
// selected periods; a missing key means the value is absent for that period.
type StitchedLineItem struct {
	Concept        string             `json:"concept"` // standard concept name, or raw concept when unmapped
	Label          string             `json:"label"`
	Level          int                `json:"level"`
	Standardized   bool               `json:"standardized"`
	Confidence     float64            `json:"confidence,omitempty"`
	Values         map[string]float64 `json:"values"`
	OriginalLabels map[string]string  `json:"original_labels,omitempty"`
	SortKey        float64            `json:"sort_key"`
}

// HasValue reports whether the row carries a value for the given period key
func (li *StitchedLineItem) HasValue(periodKey string) bool {
	_, ok := li.Values[periodKey]
	return ok
}

// PeriodCount returns the number of periods the row carries a value for
func (li *StitchedLineItem) PeriodCount() int {
	return len(li.Values)
}

// StitchedStatement is the immutable result of one stitch invocation:
// selected periods as columns (newest first) and ordered line items as rows.
type StitchedStatement struct {
	StatementType StatementType      `json:"statement_type"`
	Periods       []Period           `json:"periods"`
	Rows          []StitchedLineItem `json:"rows"`

	// Fingerprint identifies the exact input set and policy that produced
	// this result; used as the cache and persistence key.
	Fingerprint string `json:"fingerprint"`
}

// IsEmpty reports whether the stitch produced no usable periods
func (s *StitchedStatement) IsEmpty() bool {
	return len(s.Periods) == 0 || len(s.Rows) == 0
}

// PeriodKeys returns the selected period keys in column order
func (s *StitchedStatement) PeriodKeys() []string {
	keys := make([]string, len(s.Periods))
	for i, p := range s.Periods {
		keys[i] = p.Key()
	}
	return keys
}

// Row returns the row for the given concept, or nil
func (s *StitchedStatement) Row(concept string) *StitchedLineItem {
	for i := range s.Rows {
		if s.Rows[i].Concept == concept {
			return &s.Rows[i]
		}
	}
	return nil
}

// StitchedFact is one flattened (concept, period, value) observation,
// regenerated on demand from a stitched statement.
type StitchedFact struct {
	Concept       string        `json:"concept"`
	StandardLabel string        `json:"standard_label"`
	OriginalLabel string        `json:"original_label,omitempty"`
	Period        Period        `json:"period"`
	Value         float64       `json:"value"`
	StatementType StatementType `json:"statement_type"`
	SourceIndex   int           `json:"source_index"`
	Standardized  bool          `json:"standardized"`
}
