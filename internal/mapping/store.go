package mapping

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Origin identifies where a mapping candidate came from:
// OriginCore for the built-in table, or an entity identifier
// (e.g. "tsla") for an entity-specific mapping set.
type Origin string

// OriginCore marks candidates from the built-in core mapping table
const OriginCore Origin = "core"

// Candidate priority tiers. Higher wins.
const (
	PriorityCoreFallback = 1
	PriorityCoreDirect   = 2
	PriorityEntityHigh   = 3
	PriorityEntityExact  = 4
)

// Candidate is one ranked source-concept pattern for a standard concept
type Candidate struct {
	Pattern  string `json:"pattern" yaml:"pattern"` // fully qualified source concept, e.g. "us-gaap:Revenues"
	Origin   Origin `json:"origin" yaml:"origin"`
	Priority int    `json:"priority" yaml:"priority"` // 1..4
}

// Store holds the immutable concept mapping tables.
// Loaded once per process; safe for concurrent readers after Build.
// ⭐ SSOT: 개념 매핑 조회는 이 저장소를 통해서만
type Store struct {
	byStandard map[StandardConcept][]Candidate
	byPattern  map[string][]patternHit // lowercase pattern → hits, ranked
	hierarchy  map[StandardConcept][]StandardConcept
	parents    map[StandardConcept]StandardConcept
	entities   map[string]bool // known entity namespace prefixes
	version    string
}

type patternHit struct {
	Standard  StandardConcept
	Candidate Candidate
}

// Builder assembles a Store. Not safe for concurrent use; discard after Build.
type Builder struct {
	byStandard map[StandardConcept][]Candidate
	hierarchy  map[StandardConcept][]StandardConcept
	entities   map[string]bool
}

// NewBuilder returns an empty mapping store builder
func NewBuilder() *Builder {
	return &Builder{
		byStandard: make(map[StandardConcept][]Candidate),
		hierarchy:  make(map[StandardConcept][]StandardConcept),
		entities:   make(map[string]bool),
	}
}

// Add registers a candidate pattern for a standard concept
func (b *Builder) Add(standard StandardConcept, c Candidate) *Builder {
	if c.Priority < PriorityCoreFallback || c.Priority > PriorityEntityExact {
		c.Priority = PriorityCoreFallback
	}
	b.byStandard[standard] = append(b.byStandard[standard], c)
	if c.Origin != OriginCore {
		b.entities[strings.ToLower(string(c.Origin))] = true
	}
	return b
}

// AddHierarchy registers child standard concepts of an aggregate parent.
// The resolver uses these rules to keep components and aggregates on
// distinct rows.
func (b *Builder) AddHierarchy(parent StandardConcept, children ...StandardConcept) *Builder {
	b.hierarchy[parent] = append(b.hierarchy[parent], children...)
	return b
}

// Build finalizes the immutable store and computes its version hash
func (b *Builder) Build() (*Store, error) {
	s := &Store{
		byStandard: make(map[StandardConcept][]Candidate, len(b.byStandard)),
		byPattern:  make(map[string][]patternHit),
		hierarchy:  make(map[StandardConcept][]StandardConcept, len(b.hierarchy)),
		parents:    make(map[StandardConcept]StandardConcept),
		entities:   b.entities,
	}

	for standard, candidates := range b.byStandard {
		ranked := make([]Candidate, len(candidates))
		copy(ranked, candidates)
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Priority != ranked[j].Priority {
				return ranked[i].Priority > ranked[j].Priority
			}
			return ranked[i].Pattern < ranked[j].Pattern
		})
		s.byStandard[standard] = ranked

		for _, c := range ranked {
			key := strings.ToLower(c.Pattern)
			s.byPattern[key] = append(s.byPattern[key], patternHit{Standard: standard, Candidate: c})
		}
	}

	// Rank hits per pattern so Lookup is deterministic
	for key := range s.byPattern {
		hits := s.byPattern[key]
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].Candidate.Priority != hits[j].Candidate.Priority {
				return hits[i].Candidate.Priority > hits[j].Candidate.Priority
			}
			return hits[i].Standard < hits[j].Standard
		})
		s.byPattern[key] = hits
	}

	for parent, children := range b.hierarchy {
		s.hierarchy[parent] = append([]StandardConcept(nil), children...)
		for _, child := range children {
			s.parents[child] = parent
		}
	}

	version, err := s.computeVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to compute mapping version: %w", err)
	}
	s.version = version

	return s, nil
}

// Match describes one pattern lookup hit
type Match struct {
	Standard StandardConcept
	Origin   Origin
	Priority int
}

// Lookup returns every candidate hit for the raw concept pattern,
// ranked by priority (highest first). Matching is case-insensitive.
func (s *Store) Lookup(rawConcept string) []Match {
	hits := s.byPattern[strings.ToLower(strings.TrimSpace(rawConcept))]
	if len(hits) == 0 {
		return nil
	}
	matches := make([]Match, len(hits))
	for i, h := range hits {
		matches[i] = Match{Standard: h.Standard, Origin: h.Candidate.Origin, Priority: h.Candidate.Priority}
	}
	return matches
}

// Candidates returns the ranked candidate list for a standard concept
func (s *Store) Candidates(standard StandardConcept) []Candidate {
	return s.byStandard[standard]
}

// Children returns the child standard concepts of an aggregate, if any
func (s *Store) Children(parent StandardConcept) []StandardConcept {
	return s.hierarchy[parent]
}

// Parent returns the aggregate a component concept belongs to
func (s *Store) Parent(child StandardConcept) (StandardConcept, bool) {
	parent, ok := s.parents[child]
	return parent, ok
}

// IsComponentOf reports whether child is a registered component of parent
func (s *Store) IsComponentOf(child, parent StandardConcept) bool {
	p, ok := s.parents[child]
	return ok && p == parent
}

// KnownEntity reports whether the namespace prefix belongs to a loaded
// entity-specific mapping set (e.g. "tsla" in "tsla:AutomotiveLeasing")
func (s *Store) KnownEntity(prefix string) bool {
	return s.entities[strings.ToLower(prefix)]
}

// Version returns the content hash of the mapping tables. Resolution is a
// pure function of this version plus its inputs.
func (s *Store) Version() string {
	return s.version
}

// computeVersion hashes the canonical JSON projection of the tables
func (s *Store) computeVersion() (string, error) {
	type entry struct {
		Standard   StandardConcept   `json:"standard"`
		Candidates []Candidate       `json:"candidates"`
		Children   []StandardConcept `json:"children,omitempty"`
	}

	standards := make([]StandardConcept, 0, len(s.byStandard))
	for standard := range s.byStandard {
		standards = append(standards, standard)
	}
	sort.Slice(standards, func(i, j int) bool { return standards[i] < standards[j] })

	entries := make([]entry, 0, len(standards))
	for _, standard := range standards {
		entries = append(entries, entry{
			Standard:   standard,
			Candidates: s.byStandard[standard],
			Children:   s.hierarchy[standard],
		})
	}

	jsonBytes, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
