package periods

import (
	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/pkg/logger"
)

// Optimizer selects the ordered, deduplicated set of comparable reporting
// periods across source statements of one statement type.
// ⭐ SSOT: 기간 선택 로직은 여기서만
type Optimizer struct {
	log *logger.Logger
}

// New creates a period optimizer
func New(log *logger.Logger) *Optimizer {
	return &Optimizer{log: log}
}

// Select returns the output period columns for the given sources, newest
// first, at most maxPeriods. Sources must be ordered newest filing first.
// A source that yields no eligible period contributes nothing; an empty
// result means the statement type is dropped, not an error.
func (o *Optimizer) Select(sources []contracts.SourceStatement, statementType contracts.StatementType, maxPeriods int) []contracts.Period {
	var selected []contracts.Period

	for i := range sources {
		src := &sources[i]
		if src.StatementType != statementType {
			o.log.WithFields(map[string]interface{}{
				"want": string(statementType),
				"got":  string(src.StatementType),
			}).Warn("Skipping source statement of mismatched type")
			continue
		}

		var eligible []contracts.Period
		if statementType.UsesInstantPeriods() {
			eligible = selectInstants(src)
		} else {
			eligible = selectDurations(src, statementType)
		}

		if len(eligible) == 0 {
			o.log.WithFields(map[string]interface{}{
				"source_index": i,
				"type":         string(statementType),
			}).Debug("No eligible period for source statement")
			continue
		}

		for _, p := range eligible {
			selected = append(selected, enrich(p, src, i))
		}
	}

	return dedupeAndLimit(selected, maxPeriods)
}
