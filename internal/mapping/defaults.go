package mapping

// coreMappings is the built-in table of us-gaap source concepts per
// standard concept. Patterns are matched case-insensitively against the
// fully qualified raw concept.
var coreMappings = map[StandardConcept][]string{
	Revenue: {
		"us-gaap:Revenues",
		"us-gaap:RevenueFromContractWithCustomerExcludingAssessedTax",
		"us-gaap:RevenueFromContractWithCustomerIncludingAssessedTax",
		"us-gaap:SalesRevenueNet",
	},
	CostOfRevenue: {
		"us-gaap:CostOfRevenue",
		"us-gaap:CostOfGoodsAndServicesSold",
		"us-gaap:CostOfGoodsSold",
	},
	GrossProfit: {
		"us-gaap:GrossProfit",
	},
	ResearchAndDevelopment: {
		"us-gaap:ResearchAndDevelopmentExpense",
	},
	SellingGeneralAdmin: {
		"us-gaap:SellingGeneralAndAdministrativeExpense",
		"us-gaap:GeneralAndAdministrativeExpense",
	},
	RestructuringCharges: {
		"us-gaap:RestructuringCharges",
		"us-gaap:RestructuringAndRelatedCostIncurredCost",
	},
	OperatingExpenses: {
		"us-gaap:OperatingExpenses",
		"us-gaap:CostsAndExpenses",
	},
	OperatingIncome: {
		"us-gaap:OperatingIncomeLoss",
	},
	InterestIncome: {
		"us-gaap:InvestmentIncomeInterest",
	},
	InterestExpense: {
		"us-gaap:InterestExpense",
		"us-gaap:InterestExpenseNonoperating",
	},
	OtherIncomeExpense: {
		"us-gaap:OtherNonoperatingIncomeExpense",
	},
	IncomeBeforeTax: {
		"us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest",
		"us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments",
	},
	IncomeTaxExpense: {
		"us-gaap:IncomeTaxExpenseBenefit",
	},
	NetIncome: {
		"us-gaap:NetIncomeLoss",
		"us-gaap:ProfitLoss",
	},
	EarningsPerShareBasic: {
		"us-gaap:EarningsPerShareBasic",
	},
	EarningsPerShareDiluted: {
		"us-gaap:EarningsPerShareDiluted",
	},

	CashAndEquivalents: {
		"us-gaap:CashAndCashEquivalentsAtCarryingValue",
	},
	ShortTermInvestments: {
		"us-gaap:ShortTermInvestments",
		"us-gaap:MarketableSecuritiesCurrent",
	},
	AccountsReceivable: {
		"us-gaap:AccountsReceivableNetCurrent",
	},
	Inventory: {
		"us-gaap:InventoryNet",
	},
	TotalCurrentAssets: {
		"us-gaap:AssetsCurrent",
	},
	PropertyPlantAndEquipment: {
		"us-gaap:PropertyPlantAndEquipmentNet",
	},
	Goodwill: {
		"us-gaap:Goodwill",
	},
	IntangibleAssets: {
		"us-gaap:FiniteLivedIntangibleAssetsNet",
		"us-gaap:IntangibleAssetsNetExcludingGoodwill",
	},
	TotalAssets: {
		"us-gaap:Assets",
	},
	AccountsPayable: {
		"us-gaap:AccountsPayableCurrent",
	},
	AccruedLiabilities: {
		"us-gaap:AccruedLiabilitiesCurrent",
	},
	ShortTermDebt: {
		"us-gaap:LongTermDebtCurrent",
		"us-gaap:DebtCurrent",
	},
	TotalCurrentLiabilities: {
		"us-gaap:LiabilitiesCurrent",
	},
	LongTermDebt: {
		"us-gaap:LongTermDebtNoncurrent",
		"us-gaap:LongTermDebt",
	},
	TotalLiabilities: {
		"us-gaap:Liabilities",
	},
	CommonStock: {
		"us-gaap:CommonStockValue",
	},
	RetainedEarnings: {
		"us-gaap:RetainedEarningsAccumulatedDeficit",
	},
	TotalEquity: {
		"us-gaap:StockholdersEquity",
		"us-gaap:StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
	},
	TotalLiabilitiesAndEquity: {
		"us-gaap:LiabilitiesAndStockholdersEquity",
	},

	DepreciationAmortization: {
		"us-gaap:DepreciationDepletionAndAmortization",
		"us-gaap:DepreciationAmortizationAndAccretionNet",
	},
	StockBasedCompensation: {
		"us-gaap:ShareBasedCompensation",
	},
	ChangeInWorkingCapital: {
		"us-gaap:IncreaseDecreaseInOperatingCapital",
	},
	NetCashOperating: {
		"us-gaap:NetCashProvidedByUsedInOperatingActivities",
	},
	CapitalExpenditures: {
		"us-gaap:PaymentsToAcquirePropertyPlantAndEquipment",
		"us-gaap:PaymentsToAcquireProductiveAssets",
	},
	NetCashInvesting: {
		"us-gaap:NetCashProvidedByUsedInInvestingActivities",
	},
	NetCashFinancing: {
		"us-gaap:NetCashProvidedByUsedInFinancingActivities",
	},
	NetChangeInCash: {
		"us-gaap:CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect",
	},
}

// coreHierarchy declares component relationships between standard concepts.
// A component must never merge onto its aggregate's row.
var coreHierarchy = map[StandardConcept][]StandardConcept{
	Revenue: {
		AutomotiveRevenue,
		AutomotiveLeasingRevenue,
		EnergyRevenue,
		ServicesRevenue,
	},
	AutomotiveRevenue: {
		AutomotiveLeasingRevenue,
	},
	OperatingExpenses: {
		ResearchAndDevelopment,
		SellingGeneralAdmin,
		RestructuringCharges,
	},
}

// DefaultBuilder returns a builder pre-loaded with the core tables.
// The first pattern of each standard concept is its direct mapping, the
// rest are fallbacks. Entity-specific sets are layered on via LoadFile.
func DefaultBuilder() *Builder {
	b := NewBuilder()
	for standard, patterns := range coreMappings {
		for i, pattern := range patterns {
			priority := PriorityCoreDirect
			if i > 0 {
				priority = PriorityCoreFallback
			}
			b.Add(standard, Candidate{Pattern: pattern, Origin: OriginCore, Priority: priority})
		}
	}
	for parent, children := range coreHierarchy {
		b.AddHierarchy(parent, children...)
	}
	return b
}

// DefaultStore builds the store from the built-in core tables only
func DefaultStore() (*Store, error) {
	return DefaultBuilder().Build()
}
