package stitch

import (
	"fmt"
	"sort"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/internal/ordering"
	"github.com/wonny/finstitch/internal/periods"
	"github.com/wonny/finstitch/internal/resolve"
	"github.com/wonny/finstitch/pkg/logger"
)

// DefaultMaxPeriods bounds the output columns when the caller passes 0
const DefaultMaxPeriods = 8

// Stitcher merges source statements from multiple filings into one
// standardized multi-period statement.
// ⭐ SSOT: 스티칭 파이프라인 오케스트레이션은 여기서만
type Stitcher struct {
	store     *mapping.Store
	resolver  *resolve.Resolver
	optimizer *periods.Optimizer
	ordering  *ordering.Engine
	strategy  contracts.ReferenceStrategy
	cache     *resultCache
	log       *logger.Logger
}

// Option configures a Stitcher
type Option func(*Stitcher)

// WithReferenceStrategy overrides the tier-2 ordering reference selection
func WithReferenceStrategy(strategy contracts.ReferenceStrategy) Option {
	return func(s *Stitcher) {
		if strategy.Valid() {
			s.strategy = strategy
		}
	}
}

// New creates a Stitcher over an immutable mapping store
func New(store *mapping.Store, log *logger.Logger, opts ...Option) *Stitcher {
	s := &Stitcher{
		store:     store,
		resolver:  resolve.New(store, log),
		optimizer: periods.New(log),
		ordering:  ordering.New(log),
		strategy:  contracts.ReferenceMostInformationRich,
		cache:     newResultCache(),
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stitch runs the full pipeline: period selection, concept resolution,
// value integration, ordering and assembly. Sources must be ordered newest
// filing first. Every recoverable condition degrades to a partial or empty
// statement; an error is returned only for invalid arguments.
func (s *Stitcher) Stitch(
	sources []contracts.SourceStatement,
	statementType contracts.StatementType,
	maxPeriods int,
	policy contracts.StandardizationPolicy,
) (*contracts.StitchedStatement, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("invalid standardization policy %q", policy)
	}
	if maxPeriods <= 0 {
		maxPeriods = DefaultMaxPeriods
	}

	fingerprint, err := Fingerprint(sources, statementType, maxPeriods, policy, s.strategy, s.store.Version())
	if err != nil {
		return nil, err
	}
	if cached, ok := s.cache.get(fingerprint); ok {
		return cached, nil
	}

	stitched := s.run(sources, statementType, maxPeriods, policy, fingerprint)
	s.cache.put(fingerprint, stitched)
	return stitched, nil
}

// run executes the pipeline without consulting the cache
func (s *Stitcher) run(
	sources []contracts.SourceStatement,
	statementType contracts.StatementType,
	maxPeriods int,
	policy contracts.StandardizationPolicy,
	fingerprint string,
) *contracts.StitchedStatement {
	empty := &contracts.StitchedStatement{
		StatementType: statementType,
		Fingerprint:   fingerprint,
	}

	if len(sources) == 0 {
		s.log.WithField("type", string(statementType)).Debug("No source statements supplied")
		return empty
	}

	selected := s.optimizer.Select(sources, statementType, maxPeriods)
	if len(selected) == 0 {
		s.log.WithField("type", string(statementType)).Warn("No comparable periods selected, dropping statement type")
		return empty
	}

	rows := s.integrate(sources, statementType, selected, policy)

	// Abstract header rows with no values never reach the output
	kept := rows[:0]
	for _, r := range rows {
		if len(r.values) == 0 {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return empty
	}

	keys := s.orderRows(kept, sources, statementType)

	items := make([]contracts.StitchedLineItem, 0, len(kept))
	for _, r := range kept {
		items = append(items, contracts.StitchedLineItem{
			Concept:        r.key,
			Label:          r.label,
			Level:          r.level,
			Standardized:   r.standardized,
			Confidence:     r.confidence,
			Values:         r.values,
			OriginalLabels: r.origLabels,
			SortKey:        keys[r.key],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortKey != items[j].SortKey {
			return items[i].SortKey < items[j].SortKey
		}
		if items[i].Level != items[j].Level {
			return items[i].Level < items[j].Level
		}
		return items[i].Concept < items[j].Concept
	})

	return &contracts.StitchedStatement{
		StatementType: statementType,
		Periods:       selected,
		Rows:          items,
		Fingerprint:   fingerprint,
	}
}

// orderRows asks the ordering engine for sort keys over the full row set
func (s *Stitcher) orderRows(rows []*row, sources []contracts.SourceStatement, statementType contracts.StatementType) map[string]float64 {
	concepts := make([]ordering.Concept, 0, len(rows))
	for _, r := range rows {
		c := ordering.Concept{
			Key:         r.key,
			Label:       r.label,
			Level:       r.level,
			RawConcepts: r.rawConcepts,
		}
		if r.standardized {
			c.Standard = mapping.StandardConcept(r.key)
		}
		concepts = append(concepts, c)
	}

	reference := ordering.ChooseReference(sources, s.strategy)
	return s.ordering.Order(concepts, statementType, reference)
}

// CacheSize returns the number of stitched results currently cached
func (s *Stitcher) CacheSize() int {
	return s.cache.size()
}

// PurgeCache drops every cached result. Needed only when the caller knows
// upstream inputs changed identity out of band.
func (s *Stitcher) PurgeCache() {
	s.cache.purge()
}
