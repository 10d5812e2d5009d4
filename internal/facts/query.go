package facts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wonny/finstitch/internal/contracts"
)

// Query is a chainable filter over a facts view, in the fluent style of
// an XBRL fact query. All configured filters apply conjunctively on Execute.
type Query struct {
	view *View

	conceptFilters []string
	conceptExact   bool
	labelExact     string
	labelPattern   *regexp.Regexp
	valuePred      func(float64) bool
	minPeriods     int
	completeOnly   bool
	err            error
}

// ByConcept filters by standardized concept: substring match over the
// concept name, standardized label or original label (case-insensitive).
// Multiple terms are alternatives.
func (q *Query) ByConcept(terms ...string) *Query {
	q.conceptFilters = append(q.conceptFilters, terms...)
	return q
}

// ByConceptExact switches concept filtering to exact name equality
func (q *Query) ByConceptExact(terms ...string) *Query {
	q.conceptFilters = append(q.conceptFilters, terms...)
	q.conceptExact = true
	return q
}

// ByOriginalLabel filters by exact original (source) label
func (q *Query) ByOriginalLabel(label string) *Query {
	q.labelExact = label
	return q
}

// ByOriginalLabelPattern filters original labels by regular expression
func (q *Query) ByOriginalLabelPattern(expr string) *Query {
	re, err := regexp.Compile(expr)
	if err != nil {
		q.err = fmt.Errorf("invalid label pattern: %w", err)
		return q
	}
	q.labelPattern = re
	return q
}

// ByValue keeps facts whose numeric value satisfies the predicate.
// Predicate filters are not cacheable; Execute skips the result cache
// when one is set.
func (q *Query) ByValue(pred func(float64) bool) *Query {
	q.valuePred = pred
	return q
}

// AcrossPeriods keeps concepts appearing in at least minN periods
func (q *Query) AcrossPeriods(minN int) *Query {
	q.minPeriods = minN
	return q
}

// CompletePeriodsOnly keeps concepts whose period set equals the full
// selected-period set of the statement
func (q *Query) CompletePeriodsOnly() *Query {
	q.completeOnly = true
	return q
}

// Execute applies every filter and returns the matching facts
func (q *Query) Execute() ([]contracts.StitchedFact, error) {
	if q.err != nil {
		return nil, q.err
	}

	cacheable := q.valuePred == nil
	key := q.cacheKey()
	if cacheable {
		if cached, ok := q.view.cachedResult(key); ok {
			return cached, nil
		}
	}

	matched := q.apply(q.view.Facts())

	if cacheable {
		q.view.storeResult(key, matched)
	}
	return matched, nil
}

// apply runs the per-fact filters, then the period-coverage filters
func (q *Query) apply(all []contracts.StitchedFact) []contracts.StitchedFact {
	var matched []contracts.StitchedFact
	for _, f := range all {
		if !q.matches(&f) {
			continue
		}
		matched = append(matched, f)
	}

	required := q.minPeriods
	if q.completeOnly {
		if full := q.view.periodCount(); full > required {
			required = full
		}
	}
	if required <= 1 {
		return matched
	}

	coverage := make(map[string]map[string]bool)
	for _, f := range matched {
		periodSet, ok := coverage[f.Concept]
		if !ok {
			periodSet = make(map[string]bool)
			coverage[f.Concept] = periodSet
		}
		periodSet[f.Period.Key()] = true
	}

	kept := matched[:0]
	for _, f := range matched {
		if len(coverage[f.Concept]) >= required {
			kept = append(kept, f)
		}
	}
	return kept
}

// matches applies the per-fact predicates
func (q *Query) matches(f *contracts.StitchedFact) bool {
	if len(q.conceptFilters) > 0 {
		hit := false
		for _, term := range q.conceptFilters {
			if q.conceptExact {
				if f.Concept == term {
					hit = true
					break
				}
				continue
			}
			lower := strings.ToLower(term)
			if strings.Contains(strings.ToLower(f.Concept), lower) ||
				strings.Contains(strings.ToLower(f.StandardLabel), lower) ||
				strings.Contains(strings.ToLower(f.OriginalLabel), lower) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if q.labelExact != "" && f.OriginalLabel != q.labelExact {
		return false
	}
	if q.labelPattern != nil && !q.labelPattern.MatchString(f.OriginalLabel) {
		return false
	}
	if q.valuePred != nil && !q.valuePred(f.Value) {
		return false
	}
	return true
}

// cacheKey serializes the full filter configuration
func (q *Query) cacheKey() string {
	var sb strings.Builder
	if q.conceptExact {
		sb.WriteString("concept_exact=")
	} else {
		sb.WriteString("concept=")
	}
	sb.WriteString(strings.Join(q.conceptFilters, ","))
	sb.WriteString("|label=")
	sb.WriteString(q.labelExact)
	sb.WriteString("|pattern=")
	if q.labelPattern != nil {
		sb.WriteString(q.labelPattern.String())
	}
	fmt.Fprintf(&sb, "|min_periods=%d|complete=%t", q.minPeriods, q.completeOnly)
	return sb.String()
}
