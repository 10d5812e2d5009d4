package stitch

import (
	"strings"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/internal/resolve"
)

// row accumulates one output line across all source statements
type row struct {
	key          string
	label        string
	level        int
	standardized bool
	confidence   float64
	abstract     bool
	values       map[string]float64
	origLabels   map[string]string
	rawConcepts  []string
	rawSeen      map[string]bool
}

// integrate merges every source line item into the concept×period matrix.
// Sources are newest first; for each (row, period) the first value seen
// wins, so conflicting values resolve by filing recency, never by
// averaging. Rows come back in insertion order.
func (s *Stitcher) integrate(
	sources []contracts.SourceStatement,
	statementType contracts.StatementType,
	selected []contracts.Period,
	policy contracts.StandardizationPolicy,
) []*row {
	selectedKeys := make([]string, len(selected))
	for i, p := range selected {
		selectedKeys[i] = p.Key()
	}

	var order []*row
	index := make(map[string]*row)

	for srcIdx := range sources {
		src := &sources[srcIdx]
		if src.StatementType != statementType {
			continue
		}
		if !s.contributesAnyPeriod(src, selectedKeys) {
			s.log.WithField("source_index", srcIdx).Debug("Source supplies no selected period, skipped")
			continue
		}

		for _, item := range src.LineItems {
			if strings.TrimSpace(item.Concept) == "" && strings.TrimSpace(item.Label) == "" {
				s.log.WithField("source_index", srcIdx).Warn("Malformed line item skipped")
				continue
			}

			key, label, standardized, confidence := s.rowKey(item, statementType, policy)

			r, exists := index[key]
			if !exists {
				r = &row{
					key:          key,
					label:        label,
					level:        item.Level,
					standardized: standardized,
					confidence:   confidence,
					abstract:     item.IsAbstract,
					values:       make(map[string]float64),
					origLabels:   make(map[string]string),
					rawSeen:      make(map[string]bool),
				}
				index[key] = r
				order = append(order, r)
			}
			if !item.IsAbstract {
				r.abstract = false
			}
			if !r.rawSeen[item.Concept] {
				r.rawSeen[item.Concept] = true
				r.rawConcepts = append(r.rawConcepts, item.Concept)
			}

			for _, periodKey := range selectedKeys {
				value, has := item.Values[periodKey]
				if !has {
					continue
				}
				if _, taken := r.values[periodKey]; taken {
					continue // a more recent filing already supplied this period
				}
				r.values[periodKey] = value
				r.origLabels[periodKey] = item.Label
			}
		}
	}

	return order
}

// contributesAnyPeriod reports whether the source declares at least one of
// the selected periods
func (s *Stitcher) contributesAnyPeriod(src *contracts.SourceStatement, selectedKeys []string) bool {
	for _, key := range selectedKeys {
		if src.HasPeriod(key) {
			return true
		}
	}
	return false
}

// rowKey resolves the merge key for one line item under the active policy
func (s *Stitcher) rowKey(
	item contracts.LineItem,
	statementType contracts.StatementType,
	policy contracts.StandardizationPolicy,
) (key, label string, standardized bool, confidence float64) {
	if policy != contracts.PolicyStandardize {
		return item.Concept, item.Label, false, 0
	}

	res := s.resolver.Resolve(item.Concept, resolve.Context{
		StatementType: statementType,
		Label:         item.Label,
	})
	if !res.Standardized {
		return item.Concept, item.Label, false, 0
	}
	return string(res.Standard), mapping.DisplayName(res.Standard), true, res.Confidence
}
