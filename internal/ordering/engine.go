package ordering

import (
	"sort"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/internal/resolve"
	"github.com/wonny/finstitch/pkg/logger"
)

// fuzzyFloor is the minimum label similarity for a template anchor match
const fuzzyFloor = 0.85

// Concept is one row to be ordered: its row key, resolved standard
// concept (empty when unmapped), display label, hierarchy level and the
// raw source concepts that merged into it.
type Concept struct {
	Key         string
	Standard    mapping.StandardConcept
	Label       string
	Level       int
	RawConcepts []string
}

// Engine computes one deterministic sort key per row so heterogeneous
// filings still read as a coherent statement.
// ⭐ SSOT: 행 정렬 키 계산은 여기서만
type Engine struct {
	log *logger.Logger
}

// New creates an ordering engine
func New(log *logger.Logger) *Engine {
	return &Engine{log: log}
}

// Order assigns a sort key to every concept. Three tiers, each filling
// only the gaps the previous one left: template anchors, reference
// statement position, then semantic section placement with an
// end-of-statement fallback.
func (e *Engine) Order(concepts []Concept, statementType contracts.StatementType, reference *contracts.SourceStatement) map[string]float64 {
	template := TemplateFor(statementType)
	keys := make(map[string]float64, len(concepts))

	e.orderByTemplate(concepts, template, keys)
	e.orderByReference(concepts, reference, keys)
	e.orderBySemantics(concepts, template, keys)

	return keys
}

// orderByTemplate anchors concepts onto template sections: an exact
// standard-concept hit first, a fuzzy display-name match otherwise.
func (e *Engine) orderByTemplate(concepts []Concept, template Template, keys map[string]float64) {
	for _, c := range concepts {
		if _, done := keys[c.Key]; done {
			continue
		}
		if key, ok := templatePosition(c, template); ok {
			keys[c.Key] = key
		}
	}
}

// templatePosition finds the concept's anchored position in the template
func templatePosition(c Concept, template Template) (float64, bool) {
	for _, section := range template.Sections {
		for idx, anchor := range section.Concepts {
			if c.Standard != "" && c.Standard == anchor {
				return section.BasePosition + float64(idx), true
			}
			if c.Standard == "" && c.Label != "" {
				if resolve.Similarity(c.Label, mapping.DisplayName(anchor)) > fuzzyFloor {
					return section.BasePosition + float64(idx), true
				}
			}
		}
	}
	return 0, false
}

// orderByReference places remaining concepts by their position in the
// reference statement, offset to fall immediately after the nearest
// preceding concept the template already anchored.
func (e *Engine) orderByReference(concepts []Concept, reference *contracts.SourceStatement, keys map[string]float64) {
	if reference == nil {
		return
	}

	// Reference line index → row key of the concept that owns that line
	rowAt := make(map[int]string)
	refIndex := make(map[string]int) // row key → first reference line index
	for _, c := range concepts {
		for _, raw := range c.RawConcepts {
			for i, item := range reference.LineItems {
				if item.Concept == raw {
					if _, seen := refIndex[c.Key]; !seen {
						refIndex[c.Key] = i
						rowAt[i] = c.Key
					}
					break
				}
			}
		}
	}

	for _, c := range concepts {
		if _, done := keys[c.Key]; done {
			continue
		}
		idx, ok := refIndex[c.Key]
		if !ok {
			continue
		}

		// Nearest preceding reference line whose row is already anchored
		for prev := idx - 1; prev >= 0; prev-- {
			prevKey, owns := rowAt[prev]
			if !owns {
				continue
			}
			anchored, placed := keys[prevKey]
			if !placed {
				continue
			}
			keys[c.Key] = anchored + float64(idx-prev)*0.01
			break
		}
	}
}

// orderBySemantics classifies the remaining orphans into a coarse section
// by keyword and appends them at that section's end; concepts with no
// inferable section go to the very end of the statement.
func (e *Engine) orderBySemantics(concepts []Concept, template Template, keys map[string]float64) {
	maxKey := 0.0
	for _, key := range keys {
		if key > maxKey {
			maxKey = key
		}
	}
	for _, section := range template.Sections {
		if section.BasePosition > maxKey {
			maxKey = section.BasePosition
		}
	}

	sectionBase := make(map[string]float64, len(template.Sections))
	for _, section := range template.Sections {
		sectionBase[section.Name] = section.BasePosition
	}

	// Deterministic placement order for orphans
	var orphans []Concept
	for _, c := range concepts {
		if _, done := keys[c.Key]; !done {
			orphans = append(orphans, c)
		}
	}
	sort.SliceStable(orphans, func(i, j int) bool { return orphans[i].Key < orphans[j].Key })

	sectionCount := make(map[string]int)
	tailCount := 0
	for _, c := range orphans {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		if name, ok := classifySection(label); ok {
			if base, exists := sectionBase[name]; exists {
				keys[c.Key] = base + orphanOffset + float64(sectionCount[name])
				sectionCount[name]++
				continue
			}
		}
		tailCount++
		keys[c.Key] = maxKey + float64(tailCount)
		e.log.WithField("concept", c.Key).Debug("Concept appended at statement end")
	}
}

// ChooseReference picks the reference statement per the configured
// strategy: the most information-rich statement by default, or simply the
// newest filing's statement.
func ChooseReference(sources []contracts.SourceStatement, strategy contracts.ReferenceStrategy) *contracts.SourceStatement {
	if len(sources) == 0 {
		return nil
	}
	if strategy == contracts.ReferenceMostRecent {
		return &sources[0]
	}

	best := 0
	bestCount := sources[0].NonAbstractCount()
	for i := 1; i < len(sources); i++ {
		if count := sources[i].NonAbstractCount(); count > bestCount {
			best = i
			bestCount = count
		}
	}
	return &sources[best]
}
