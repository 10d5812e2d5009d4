package ordering

import (
	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
)

// Section is one canonical statement section: a base position and the
// standard concepts anchored inside it, in flow order.
type Section struct {
	BasePosition float64
	Name         string
	Concepts     []mapping.StandardConcept
}

// Template is the static per-statement-type ordering configuration.
// Never mutated at run time.
type Template struct {
	StatementType contracts.StatementType
	Sections      []Section
}

// Section base positions are spaced so orphan concepts can be appended to
// a section's end without crossing into the next section.
const sectionSpacing = 100.0

// orphanOffset places unanchored concepts after every anchored member of
// their section while staying below the next section's base.
const orphanOffset = 60.0

var incomeTemplate = Template{
	StatementType: contracts.StatementIncome,
	Sections: []Section{
		{BasePosition: 100, Name: "revenue", Concepts: []mapping.StandardConcept{
			mapping.Revenue,
			mapping.AutomotiveRevenue,
			mapping.AutomotiveLeasingRevenue,
			mapping.EnergyRevenue,
			mapping.ServicesRevenue,
		}},
		{BasePosition: 200, Name: "cost_of_revenue", Concepts: []mapping.StandardConcept{
			mapping.CostOfRevenue,
		}},
		{BasePosition: 300, Name: "gross_profit", Concepts: []mapping.StandardConcept{
			mapping.GrossProfit,
		}},
		{BasePosition: 400, Name: "operating_expenses", Concepts: []mapping.StandardConcept{
			mapping.ResearchAndDevelopment,
			mapping.SellingGeneralAdmin,
			mapping.RestructuringCharges,
			mapping.OperatingExpenses,
		}},
		{BasePosition: 500, Name: "operating_income", Concepts: []mapping.StandardConcept{
			mapping.OperatingIncome,
		}},
		{BasePosition: 600, Name: "non_operating", Concepts: []mapping.StandardConcept{
			mapping.InterestIncome,
			mapping.InterestExpense,
			mapping.OtherIncomeExpense,
		}},
		{BasePosition: 700, Name: "pretax_income", Concepts: []mapping.StandardConcept{
			mapping.IncomeBeforeTax,
		}},
		{BasePosition: 800, Name: "taxes", Concepts: []mapping.StandardConcept{
			mapping.IncomeTaxExpense,
		}},
		{BasePosition: 900, Name: "net_income", Concepts: []mapping.StandardConcept{
			mapping.NetIncome,
		}},
		{BasePosition: 1000, Name: "per_share", Concepts: []mapping.StandardConcept{
			mapping.EarningsPerShareBasic,
			mapping.EarningsPerShareDiluted,
		}},
	},
}

var balanceTemplate = Template{
	StatementType: contracts.StatementBalance,
	Sections: []Section{
		{BasePosition: 100, Name: "current_assets", Concepts: []mapping.StandardConcept{
			mapping.CashAndEquivalents,
			mapping.ShortTermInvestments,
			mapping.AccountsReceivable,
			mapping.Inventory,
			mapping.TotalCurrentAssets,
		}},
		{BasePosition: 200, Name: "noncurrent_assets", Concepts: []mapping.StandardConcept{
			mapping.PropertyPlantAndEquipment,
			mapping.Goodwill,
			mapping.IntangibleAssets,
		}},
		{BasePosition: 300, Name: "total_assets", Concepts: []mapping.StandardConcept{
			mapping.TotalAssets,
		}},
		{BasePosition: 400, Name: "current_liabilities", Concepts: []mapping.StandardConcept{
			mapping.AccountsPayable,
			mapping.AccruedLiabilities,
			mapping.ShortTermDebt,
			mapping.TotalCurrentLiabilities,
		}},
		{BasePosition: 500, Name: "noncurrent_liabilities", Concepts: []mapping.StandardConcept{
			mapping.LongTermDebt,
		}},
		{BasePosition: 600, Name: "total_liabilities", Concepts: []mapping.StandardConcept{
			mapping.TotalLiabilities,
		}},
		{BasePosition: 700, Name: "equity", Concepts: []mapping.StandardConcept{
			mapping.CommonStock,
			mapping.RetainedEarnings,
			mapping.TotalEquity,
		}},
		{BasePosition: 800, Name: "total_liabilities_and_equity", Concepts: []mapping.StandardConcept{
			mapping.TotalLiabilitiesAndEquity,
		}},
	},
}

var cashFlowTemplate = Template{
	StatementType: contracts.StatementCashFlow,
	Sections: []Section{
		{BasePosition: 100, Name: "operating", Concepts: []mapping.StandardConcept{
			mapping.NetIncome,
			mapping.DepreciationAmortization,
			mapping.StockBasedCompensation,
			mapping.ChangeInWorkingCapital,
			mapping.NetCashOperating,
		}},
		{BasePosition: 200, Name: "investing", Concepts: []mapping.StandardConcept{
			mapping.CapitalExpenditures,
			mapping.NetCashInvesting,
		}},
		{BasePosition: 300, Name: "financing", Concepts: []mapping.StandardConcept{
			mapping.NetCashFinancing,
		}},
		{BasePosition: 400, Name: "net_change", Concepts: []mapping.StandardConcept{
			mapping.NetChangeInCash,
		}},
	},
}

var templates = map[contracts.StatementType]Template{
	contracts.StatementIncome:   incomeTemplate,
	contracts.StatementBalance:  balanceTemplate,
	contracts.StatementCashFlow: cashFlowTemplate,
}

// TemplateFor returns the ordering template for a statement type.
// Statement types with no canonical template get an empty one: every
// concept then falls through to reference and semantic ordering.
func TemplateFor(statementType contracts.StatementType) Template {
	if t, ok := templates[statementType]; ok {
		return t
	}
	return Template{StatementType: statementType}
}
