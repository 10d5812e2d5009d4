package resolve

import (
	"strings"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/pkg/logger"
)

// Tier identifies how a concept was resolved. Lower tiers are tried first.
type Tier int

const (
	TierEntityExact Tier = iota
	TierEntityHighPriority
	TierCoreExact
	TierLabelSimilarity
	TierUnmapped
)

// String returns the tier name
func (t Tier) String() string {
	switch t {
	case TierEntityExact:
		return "entity_exact"
	case TierEntityHighPriority:
		return "entity_high_priority"
	case TierCoreExact:
		return "core_exact"
	case TierLabelSimilarity:
		return "label_similarity"
	default:
		return "unmapped"
	}
}

// Confidence per tier. Label similarity confidence is the similarity
// itself; the table entry is its acceptance floor.
// ⭐ SSOT: 신뢰도 임계값은 이 테이블에서만
var tierConfidence = map[Tier]float64{
	TierEntityExact:        1.0,
	TierEntityHighPriority: 0.9,
	TierCoreExact:          0.8,
	TierLabelSimilarity:    0.85, // acceptance floor
	TierUnmapped:           0.0,
}

// SimilarityFloor is the minimum label similarity accepted as a match
const SimilarityFloor = 0.85

// Context carries the usage context of a raw concept being resolved
type Context struct {
	StatementType     contracts.StatementType
	CalculationParent string // raw concept of the calculation parent, if known
	EntityHint        string // entity namespace prefix, overrides detection
	Label             string // source label, used for similarity fallback
}

// Resolution is the outcome of resolving one raw concept
type Resolution struct {
	Standard     mapping.StandardConcept
	Tier         Tier
	Confidence   float64
	Standardized bool
}

// Resolver maps raw source concepts onto standard concepts.
// Pure function of the store version and its inputs; safe for concurrent use.
type Resolver struct {
	store *mapping.Store
	log   *logger.Logger
}

// New creates a resolver over an immutable mapping store
func New(store *mapping.Store, log *logger.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

// Resolve returns the best-matching standard concept for a raw concept and
// its confidence. First tier whose match clears its own threshold wins.
func (r *Resolver) Resolve(rawConcept string, ctx Context) Resolution {
	raw := strings.TrimSpace(rawConcept)
	if raw == "" {
		return unmapped()
	}

	entity := ctx.EntityHint
	if entity == "" {
		entity = namespacePrefix(raw)
	}
	entityKnown := entity != "" && r.store.KnownEntity(entity)

	matches := r.store.Lookup(raw)

	// Tier 1: exact entity-specific match
	if entityKnown {
		if res, ok := r.pickAtPriority(matches, mapping.PriorityEntityExact, TierEntityExact); ok {
			return res
		}
		// Tier 2: entity-boosted high-priority mapping
		if res, ok := r.pickAtPriority(matches, mapping.PriorityEntityHigh, TierEntityHighPriority); ok {
			return res
		}
	}

	// Tier 3: core direct mapping (direct or fallback pattern)
	if res, ok := r.pickCore(matches); ok {
		return res
	}

	// Tier 4: label similarity against standard display names
	if ctx.Label != "" {
		if res, ok := r.bySimilarity(ctx.Label); ok {
			return res
		}
	}

	return unmapped()
}

// pickAtPriority selects the match at exactly the given priority.
// Multiple distinct standards at the same rank are ambiguous and resolve
// to unmapped rather than a guess.
func (r *Resolver) pickAtPriority(matches []mapping.Match, priority int, tier Tier) (Resolution, bool) {
	var hits []mapping.Match
	for _, m := range matches {
		if m.Priority == priority {
			hits = append(hits, m)
		}
	}
	if len(hits) == 0 {
		return Resolution{}, false
	}
	if standard, ok := r.disambiguate(hits); ok {
		return Resolution{
			Standard:     standard,
			Tier:         tier,
			Confidence:   tierConfidence[tier],
			Standardized: true,
		}, true
	}
	r.log.WithField("priority", priority).Warn("Ambiguous concept mapping, keeping raw concept")
	return unmapped(), true
}

// pickCore selects the best core-origin match
func (r *Resolver) pickCore(matches []mapping.Match) (Resolution, bool) {
	var hits []mapping.Match
	for _, m := range matches {
		if m.Origin == mapping.OriginCore {
			hits = append(hits, m)
		}
	}
	if len(hits) == 0 {
		return Resolution{}, false
	}

	// Keep only the top priority present
	top := hits[0].Priority
	ranked := hits[:0]
	for _, m := range hits {
		if m.Priority == top {
			ranked = append(ranked, m)
		}
	}

	if standard, ok := r.disambiguate(ranked); ok {
		return Resolution{
			Standard:     standard,
			Tier:         TierCoreExact,
			Confidence:   tierConfidence[TierCoreExact],
			Standardized: true,
		}, true
	}
	r.log.Warn("Ambiguous core concept mapping, keeping raw concept")
	return unmapped(), true
}

// disambiguate resolves equally-ranked candidates. A component beats its
// aggregate so that a subtotal and one of its components never land on the
// same standardized row. Anything else stays ambiguous.
func (r *Resolver) disambiguate(hits []mapping.Match) (mapping.StandardConcept, bool) {
	if len(hits) == 1 {
		return hits[0].Standard, true
	}

	distinct := make(map[mapping.StandardConcept]bool)
	for _, m := range hits {
		distinct[m.Standard] = true
	}
	if len(distinct) == 1 {
		return hits[0].Standard, true
	}

	// Prefer the most specific concept when candidates form a
	// component→aggregate chain
	for candidate := range distinct {
		isComponentOfAll := true
		for other := range distinct {
			if other == candidate {
				continue
			}
			if !r.descendsFrom(candidate, other) {
				isComponentOfAll = false
				break
			}
		}
		if isComponentOfAll {
			r.log.WithFields(map[string]interface{}{
				"component": string(candidate),
			}).Debug("Hierarchy collision resolved to component concept")
			return candidate, true
		}
	}

	return "", false
}

// descendsFrom walks the hierarchy upward from child looking for ancestor
func (r *Resolver) descendsFrom(child, ancestor mapping.StandardConcept) bool {
	cur := child
	for i := 0; i < 16; i++ { // hierarchy depth guard
		parent, ok := r.store.Parent(cur)
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		cur = parent
	}
	return false
}

// bySimilarity matches the source label against standard display names
func (r *Resolver) bySimilarity(label string) (Resolution, bool) {
	best := mapping.StandardConcept("")
	bestScore := 0.0

	for _, standard := range mapping.AllStandardConcepts() {
		score := Similarity(label, mapping.DisplayName(standard))
		if score > bestScore || (score == bestScore && best != "" && standard < best) {
			best = standard
			bestScore = score
		}
	}

	if bestScore < SimilarityFloor {
		return Resolution{}, false
	}

	// Hierarchy awareness: if the label also clears the floor for a
	// component of the matched aggregate, the more specific concept wins.
	for _, child := range r.store.Children(best) {
		if Similarity(label, mapping.DisplayName(child)) >= SimilarityFloor {
			best = child
			break
		}
	}

	return Resolution{
		Standard:     best,
		Tier:         TierLabelSimilarity,
		Confidence:   bestScore,
		Standardized: true,
	}, true
}

// namespacePrefix extracts the entity prefix of a namespaced concept
func namespacePrefix(raw string) string {
	if idx := strings.Index(raw, ":"); idx > 0 {
		return strings.ToLower(raw[:idx])
	}
	return ""
}

func unmapped() Resolution {
	return Resolution{Tier: TierUnmapped, Confidence: 0.0, Standardized: false}
}
