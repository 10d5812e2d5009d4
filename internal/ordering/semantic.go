package ordering

import "strings"

// sectionKeywords classifies orphan concepts into a coarse statement
// section by label keyword. Order matters: the first matching rule wins,
// and more specific keywords come before generic ones.
var sectionKeywords = []struct {
	Keyword string
	Section string
}{
	{"revenue", "revenue"},
	{"sales", "revenue"},
	{"cost of", "cost_of_revenue"},
	{"gross", "gross_profit"},
	{"expense", "operating_expenses"},
	{"tax", "taxes"},
	{"income", "net_income"},
	{"profit", "net_income"},
	{"loss", "net_income"},
}

// classifySection maps an orphan concept's label (or raw name) onto a
// template section name. Returns false when no section can be inferred.
func classifySection(label string) (string, bool) {
	lower := strings.ToLower(label)
	for _, rule := range sectionKeywords {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Section, true
		}
	}
	return "", false
}
