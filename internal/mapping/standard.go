package mapping

import "sort"

// StandardConcept is a canonical, taxonomy-independent name for a
// financial statement line item. The set is closed: resolution only ever
// targets concepts declared here or in a loaded entity mapping set.
type StandardConcept string

// Income statement
const (
	Revenue                  StandardConcept = "Revenue"
	AutomotiveRevenue        StandardConcept = "AutomotiveRevenue"
	AutomotiveLeasingRevenue StandardConcept = "AutomotiveLeasingRevenue"
	EnergyRevenue            StandardConcept = "EnergyRevenue"
	ServicesRevenue          StandardConcept = "ServicesRevenue"
	CostOfRevenue            StandardConcept = "CostOfRevenue"
	GrossProfit              StandardConcept = "GrossProfit"
	ResearchAndDevelopment   StandardConcept = "ResearchAndDevelopment"
	SellingGeneralAdmin      StandardConcept = "SellingGeneralAdmin"
	RestructuringCharges     StandardConcept = "RestructuringCharges"
	OperatingExpenses        StandardConcept = "OperatingExpenses"
	OperatingIncome          StandardConcept = "OperatingIncome"
	InterestIncome           StandardConcept = "InterestIncome"
	InterestExpense          StandardConcept = "InterestExpense"
	OtherIncomeExpense       StandardConcept = "OtherIncomeExpense"
	IncomeBeforeTax          StandardConcept = "IncomeBeforeTax"
	IncomeTaxExpense         StandardConcept = "IncomeTaxExpense"
	NetIncome                StandardConcept = "NetIncome"
	EarningsPerShareBasic    StandardConcept = "EarningsPerShareBasic"
	EarningsPerShareDiluted  StandardConcept = "EarningsPerShareDiluted"
)

// Balance sheet
const (
	CashAndEquivalents        StandardConcept = "CashAndEquivalents"
	ShortTermInvestments      StandardConcept = "ShortTermInvestments"
	AccountsReceivable        StandardConcept = "AccountsReceivable"
	Inventory                 StandardConcept = "Inventory"
	TotalCurrentAssets        StandardConcept = "TotalCurrentAssets"
	PropertyPlantAndEquipment StandardConcept = "PropertyPlantAndEquipment"
	Goodwill                  StandardConcept = "Goodwill"
	IntangibleAssets          StandardConcept = "IntangibleAssets"
	TotalAssets               StandardConcept = "TotalAssets"
	AccountsPayable           StandardConcept = "AccountsPayable"
	AccruedLiabilities        StandardConcept = "AccruedLiabilities"
	ShortTermDebt             StandardConcept = "ShortTermDebt"
	TotalCurrentLiabilities   StandardConcept = "TotalCurrentLiabilities"
	LongTermDebt              StandardConcept = "LongTermDebt"
	TotalLiabilities          StandardConcept = "TotalLiabilities"
	CommonStock               StandardConcept = "CommonStock"
	RetainedEarnings          StandardConcept = "RetainedEarnings"
	TotalEquity               StandardConcept = "TotalEquity"
	TotalLiabilitiesAndEquity StandardConcept = "TotalLiabilitiesAndEquity"
)

// Cash flow statement
const (
	DepreciationAmortization StandardConcept = "DepreciationAmortization"
	StockBasedCompensation   StandardConcept = "StockBasedCompensation"
	ChangeInWorkingCapital   StandardConcept = "ChangeInWorkingCapital"
	NetCashOperating         StandardConcept = "NetCashOperating"
	CapitalExpenditures      StandardConcept = "CapitalExpenditures"
	NetCashInvesting         StandardConcept = "NetCashInvesting"
	NetCashFinancing         StandardConcept = "NetCashFinancing"
	NetChangeInCash          StandardConcept = "NetChangeInCash"
)

// displayNames are the human-readable names compared against source labels
// during label-similarity resolution.
var displayNames = map[StandardConcept]string{
	Revenue:                  "Total revenues",
	AutomotiveRevenue:        "Automotive revenues",
	AutomotiveLeasingRevenue: "Automotive leasing revenue",
	EnergyRevenue:            "Energy generation and storage revenue",
	ServicesRevenue:          "Services and other revenue",
	CostOfRevenue:            "Cost of revenues",
	GrossProfit:              "Gross profit",
	ResearchAndDevelopment:   "Research and development expenses",
	SellingGeneralAdmin:      "Selling general and administrative expenses",
	RestructuringCharges:     "Restructuring charges",
	OperatingExpenses:        "Total operating expenses",
	OperatingIncome:          "Income from operations",
	InterestIncome:           "Interest income",
	InterestExpense:          "Interest expense",
	OtherIncomeExpense:       "Other income expense net",
	IncomeBeforeTax:          "Income before income taxes",
	IncomeTaxExpense:         "Provision for income taxes",
	NetIncome:                "Net income",
	EarningsPerShareBasic:    "Earnings per share basic",
	EarningsPerShareDiluted:  "Earnings per share diluted",

	CashAndEquivalents:        "Cash and cash equivalents",
	ShortTermInvestments:      "Short term investments",
	AccountsReceivable:        "Accounts receivable net",
	Inventory:                 "Inventory",
	TotalCurrentAssets:        "Total current assets",
	PropertyPlantAndEquipment: "Property plant and equipment net",
	Goodwill:                  "Goodwill",
	IntangibleAssets:          "Intangible assets net",
	TotalAssets:               "Total assets",
	AccountsPayable:           "Accounts payable",
	AccruedLiabilities:        "Accrued liabilities and other",
	ShortTermDebt:             "Current portion of debt",
	TotalCurrentLiabilities:   "Total current liabilities",
	LongTermDebt:              "Long term debt",
	TotalLiabilities:          "Total liabilities",
	CommonStock:               "Common stock",
	RetainedEarnings:          "Retained earnings accumulated deficit",
	TotalEquity:               "Total stockholders equity",
	TotalLiabilitiesAndEquity: "Total liabilities and equity",

	DepreciationAmortization: "Depreciation and amortization",
	StockBasedCompensation:   "Stock based compensation",
	ChangeInWorkingCapital:   "Changes in operating assets and liabilities",
	NetCashOperating:         "Net cash provided by operating activities",
	CapitalExpenditures:      "Purchases of property and equipment",
	NetCashInvesting:         "Net cash used in investing activities",
	NetCashFinancing:         "Net cash provided by financing activities",
	NetChangeInCash:          "Net change in cash and cash equivalents",
}

// DisplayName returns the display name for a standard concept,
// falling back to the concept identifier itself
func DisplayName(c StandardConcept) string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// AllStandardConcepts returns every concept with a registered display name,
// in deterministic (sorted) order. Resolution scans must never depend on
// map iteration order.
func AllStandardConcepts() []StandardConcept {
	concepts := make([]StandardConcept, 0, len(displayNames))
	for c := range displayNames {
		concepts = append(concepts, c)
	}
	sort.Slice(concepts, func(i, j int) bool { return concepts[i] < concepts[j] })
	return concepts
}
