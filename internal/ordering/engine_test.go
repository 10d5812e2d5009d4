package ordering

import (
	"testing"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/pkg/logger"
)

func TestEngine_Order_TemplateAnchors(t *testing.T) {
	e := New(logger.Nop())

	concepts := []Concept{
		{Key: "NetIncome", Standard: mapping.NetIncome, Label: "Net income"},
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues"},
		{Key: "CostOfRevenue", Standard: mapping.CostOfRevenue, Label: "Cost of revenues"},
		{Key: "GrossProfit", Standard: mapping.GrossProfit, Label: "Gross profit"},
	}

	keys := e.Order(concepts, contracts.StatementIncome, nil)

	if keys["Revenue"] >= keys["CostOfRevenue"] {
		t.Error("revenue must sort before cost of revenue")
	}
	if keys["CostOfRevenue"] >= keys["GrossProfit"] {
		t.Error("cost of revenue must sort before gross profit")
	}
	if keys["GrossProfit"] >= keys["NetIncome"] {
		t.Error("gross profit must sort before net income")
	}
}

func TestEngine_Order_FuzzyLabelAnchorsUnmappedConcept(t *testing.T) {
	e := New(logger.Nop())

	// Unmapped concept whose label still reads as gross profit
	concepts := []Concept{
		{Key: "abcd:GP", Label: "Gross profit"},
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues"},
	}

	keys := e.Order(concepts, contracts.StatementIncome, nil)

	if keys["Revenue"] >= keys["abcd:GP"] {
		t.Error("fuzzy-anchored gross profit should land after revenue")
	}
	// Anchored in the gross_profit section, not appended at the end
	if keys["abcd:GP"] >= 400 {
		t.Errorf("key = %v, want a position inside the gross profit section", keys["abcd:GP"])
	}
}

func TestEngine_Order_ReferencePositionFillsGaps(t *testing.T) {
	e := New(logger.Nop())

	reference := &contracts.SourceStatement{
		StatementType: contracts.StatementIncome,
		LineItems: []contracts.LineItem{
			{Concept: "us-gaap:Revenues", Label: "Total revenues"},
			{Concept: "tsla:RegulatoryCredits", Label: "Regulatory credits"},
			{Concept: "us-gaap:CostOfRevenue", Label: "Cost of revenues"},
		},
	}

	concepts := []Concept{
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues", RawConcepts: []string{"us-gaap:Revenues"}},
		{Key: "tsla:RegulatoryCredits", Label: "Regulatory credits", RawConcepts: []string{"tsla:RegulatoryCredits"}},
		{Key: "CostOfRevenue", Standard: mapping.CostOfRevenue, Label: "Cost of revenues", RawConcepts: []string{"us-gaap:CostOfRevenue"}},
	}

	keys := e.Order(concepts, contracts.StatementIncome, reference)

	// The credit line has no template anchor and no classifiable keyword
	// match inside the revenue section name, so reference position places
	// it right after revenue and before cost of revenue.
	if !(keys["Revenue"] < keys["tsla:RegulatoryCredits"] && keys["tsla:RegulatoryCredits"] < keys["CostOfRevenue"]) {
		t.Errorf("reference ordering not preserved: revenue=%v credits=%v cost=%v",
			keys["Revenue"], keys["tsla:RegulatoryCredits"], keys["CostOfRevenue"])
	}
}

func TestEngine_Order_SemanticSectionPlacement(t *testing.T) {
	e := New(logger.Nop())

	concepts := []Concept{
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues"},
		{Key: "OperatingExpenses", Standard: mapping.OperatingExpenses, Label: "Operating expenses"},
		{Key: "xyz:WeirdExpense", Label: "Unusual expense items"},
	}

	keys := e.Order(concepts, contracts.StatementIncome, nil)

	// "expense" keyword puts the orphan in the operating expenses section:
	// after its anchored members, before the next section base.
	if keys["xyz:WeirdExpense"] <= keys["OperatingExpenses"] {
		t.Error("orphan expense should follow the anchored expense rows")
	}
	if keys["xyz:WeirdExpense"] >= 500 {
		t.Errorf("key = %v, orphan must stay inside the operating expenses section", keys["xyz:WeirdExpense"])
	}
}

func TestEngine_Order_UnclassifiableGoesToEnd(t *testing.T) {
	e := New(logger.Nop())

	concepts := []Concept{
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues"},
		{Key: "NetIncome", Standard: mapping.NetIncome, Label: "Net income"},
		{Key: "xyz:Mystery", Label: "Something else entirely"},
	}

	keys := e.Order(concepts, contracts.StatementIncome, nil)

	for _, key := range []string{"Revenue", "NetIncome"} {
		if keys["xyz:Mystery"] <= keys[key] {
			t.Errorf("unclassifiable concept should sort after %s", key)
		}
	}
}

func TestEngine_Order_Deterministic(t *testing.T) {
	e := New(logger.Nop())

	concepts := []Concept{
		{Key: "zzz:B", Label: "No section match two"},
		{Key: "aaa:A", Label: "No section match one"},
		{Key: "Revenue", Standard: mapping.Revenue, Label: "Total revenues"},
	}

	first := e.Order(concepts, contracts.StatementIncome, nil)
	for i := 0; i < 10; i++ {
		got := e.Order(concepts, contracts.StatementIncome, nil)
		for key, want := range first {
			if got[key] != want {
				t.Fatalf("iteration %d: key %s changed: %v vs %v", i, key, got[key], want)
			}
		}
	}

	// Orphans with no section sort by row key
	if first["aaa:A"] >= first["zzz:B"] {
		t.Error("end-of-statement orphans should order by row key")
	}
}

func TestChooseReference(t *testing.T) {
	rich := contracts.SourceStatement{
		LineItems: []contracts.LineItem{
			{Concept: "a"}, {Concept: "b"}, {Concept: "c"},
		},
	}
	sparse := contracts.SourceStatement{
		LineItems: []contracts.LineItem{{Concept: "a"}},
	}

	sources := []contracts.SourceStatement{sparse, rich}

	got := ChooseReference(sources, contracts.ReferenceMostInformationRich)
	if got != &sources[1] {
		t.Error("most_information_rich should pick the statement with the most rows")
	}

	got = ChooseReference(sources, contracts.ReferenceMostRecent)
	if got != &sources[0] {
		t.Error("most_recent should pick the newest filing's statement")
	}

	if ChooseReference(nil, contracts.ReferenceMostRecent) != nil {
		t.Error("no sources means no reference")
	}
}
