package facts

import (
	"sync"

	"github.com/wonny/finstitch/internal/contracts"
)

// Flatten regenerates the individually addressable facts of a stitched
// statement: one fact per (row, period) value, rows in statement order,
// periods in column order.
func Flatten(stitched *contracts.StitchedStatement) []contracts.StitchedFact {
	if stitched == nil {
		return nil
	}

	var out []contracts.StitchedFact
	for _, r := range stitched.Rows {
		for _, p := range stitched.Periods {
			key := p.Key()
			value, ok := r.Values[key]
			if !ok {
				continue
			}
			out = append(out, contracts.StitchedFact{
				Concept:       r.Concept,
				StandardLabel: r.Label,
				OriginalLabel: r.OriginalLabels[key],
				Period:        p,
				Value:         value,
				StatementType: stitched.StatementType,
				SourceIndex:   p.SourceIndex,
				Standardized:  r.Standardized,
			})
		}
	}
	return out
}

// View exposes the filter/trend query surface over one stitched statement
// without re-running the merge. Query results are cached per filter
// configuration; swapping in a statement with a different fingerprint
// drops the cache.
type View struct {
	mu          sync.RWMutex
	stitched    *contracts.StitchedStatement
	fingerprint string
	facts       []contracts.StitchedFact
	cache       map[string][]contracts.StitchedFact
}

// NewView creates a facts view over a stitched statement
func NewView(stitched *contracts.StitchedStatement) *View {
	v := &View{}
	v.Replace(stitched)
	return v
}

// Replace swaps the underlying statement. A changed identity invalidates
// every cached query result; the same fingerprint keeps them.
func (v *View) Replace(stitched *contracts.StitchedStatement) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fingerprint := ""
	if stitched != nil {
		fingerprint = stitched.Fingerprint
	}
	if fingerprint != v.fingerprint || v.cache == nil {
		v.cache = make(map[string][]contracts.StitchedFact)
		v.facts = Flatten(stitched)
	}
	v.stitched = stitched
	v.fingerprint = fingerprint
}

// Facts returns every flattened fact of the underlying statement
func (v *View) Facts() []contracts.StitchedFact {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.facts
}

// Statement returns the underlying stitched statement
func (v *View) Statement() *contracts.StitchedStatement {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stitched
}

// Query starts a new filter chain over the view
func (v *View) Query() *Query {
	return &Query{view: v}
}

func (v *View) cachedResult(key string) ([]contracts.StitchedFact, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	result, ok := v.cache[key]
	return result, ok
}

func (v *View) storeResult(key string, result []contracts.StitchedFact) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cache[key] = result
}

func (v *View) periodCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.stitched == nil {
		return 0
	}
	return len(v.stitched.Periods)
}
