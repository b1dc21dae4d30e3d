package property

// defaults returns the per-field fallback values. A fresh value is built per
// call so normalized records never alias each other's pointers. Fields whose
// default is null (zipCode, yearBuilt, the assumable-loan details) are left
// nil here on purpose.
func defaults() ExtractedRecord {
	return ExtractedRecord{
		PropertyInfo: PropertyInfo{
			PropertyName: ptr("280 Richards"),
			Address: Address{
				Street:    ptr("280 Richards"),
				City:      ptr("Brooklyn"),
				State:     ptr("NY"),
				Submarket: ptr("Red Hook"),
			},
			PropertyType:       ptr("Warehouse"),
			PropertySizeSF:     ptr(312000.0),
			LandAreaAcres:      ptr(16.0),
			ConstructionStatus: ptr("Existing"),
		},
		OfferingDetails: OfferingDetails{
			SellerName:       ptr("Thor Equities"),
			BrokerageFirm:    ptr(""),
			GuidancePriceUSD: ptr(143000000.0),
			GuidancePricePSF: ptr(23.92),
			OfferingType:     ptr("Fee Simple"),
		},
		LeaseInfo: LeaseInfo{
			TenantName:              ptr("Amazon"),
			LeasePercentage:         ptr(100.0),
			LeaseTermRemainingYears: ptr(13.0),
			LeaseExpirationDate:     ptr("2037-09-30"),
			RentEscalations:         ptr("3% annual"),
			CapRatePercent:          ptr(5.0),
		},
		FinancingInfo: FinancingInfo{
			IsFinancingAssumable: ptr(true),
		},
		SummaryPoints: SummaryPoints{
			InvestmentHighlights: []string{
				"Prime logistics asset in Brooklyn's high-demand Red Hook submarket",
				"13 years remaining on Amazon lease with 3% annual rent escalations",
				"Stable, long-term cash flow from investment-grade tenant",
				"Strong market fundamentals with high barriers to entry",
			},
			RiskFactors: []string{
				"Single-tenant exposure to Amazon",
				"Lease roll within 12 months",
				"Potential impact of congestion pricing on logistics operations",
			},
		},
		BrokerContacts: []BrokerContact{},
	}
}

// supplyPipeline and saleComparables are static dashboard data carried on
// every record; the extraction schema does not cover them.
func supplyPipeline() []SupplyPipelineItem {
	return []SupplyPipelineItem{
		{
			PropertyName: "640 Columbia",
			Submarket:    "Brooklyn",
			DeliveryDate: "2025-06-30",
			Owner:        "CBREI",
			SquareFeet:   336350,
		},
		{
			PropertyName: "WB Mason",
			Submarket:    "Bronx",
			DeliveryDate: "2025-05-31",
			Owner:        "Link Logistics",
			SquareFeet:   150000,
		},
	}
}

func saleComparables() []SaleComparable {
	return []SaleComparable{
		{
			PropertyName:  "1 Debaun Road",
			Submarket:     "Millstone, NJ",
			SquareFeet:    132930,
			Owner:         "Cabot",
			Date:          "2024-06-30",
			PurchasePrice: 41903580,
			Tenant:        "Berry Plastics",
		},
		{
			PropertyName:  "39 Edgeboro Road",
			Submarket:     "Millstone, NJ",
			SquareFeet:    513240,
			Owner:         "Blackstone",
			Date:          "2023-10-31",
			PurchasePrice: 165776520,
			Tenant:        "FedEx",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
