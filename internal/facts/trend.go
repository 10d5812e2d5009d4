package facts

import (
	"sort"

	"github.com/wonny/finstitch/internal/contracts"
)

// TrendPoint is one period observation of a concept
type TrendPoint struct {
	Period contracts.Period `json:"period"`
	Value  float64          `json:"value"`
}

// TrendSeries is a concept's values re-projected as a period-indexed
// series, oldest first
type TrendSeries struct {
	Concept string       `json:"concept"`
	Label   string       `json:"label"`
	Points  []TrendPoint `json:"points"`
}

// Trend groups the matching facts by concept and sorts each series
// oldest→newest for trend analysis
func (q *Query) Trend() ([]TrendSeries, error) {
	matched, err := q.Execute()
	if err != nil {
		return nil, err
	}

	byConcept := make(map[string]*TrendSeries)
	var order []string
	for _, f := range matched {
		series, ok := byConcept[f.Concept]
		if !ok {
			series = &TrendSeries{Concept: f.Concept, Label: f.StandardLabel}
			byConcept[f.Concept] = series
			order = append(order, f.Concept)
		}
		series.Points = append(series.Points, TrendPoint{Period: f.Period, Value: f.Value})
	}

	out := make([]TrendSeries, 0, len(order))
	for _, concept := range order {
		series := byConcept[concept]
		sort.SliceStable(series.Points, func(i, j int) bool {
			ei, ej := series.Points[i].Period.EndDate(), series.Points[j].Period.EndDate()
			if !ei.Equal(ej) {
				return ei.Before(ej)
			}
			return series.Points[i].Period.Key() < series.Points[j].Period.Key()
		})
		out = append(out, *series)
	}
	return out, nil
}
