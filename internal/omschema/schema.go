package omschema

// ResponseSchema returns the structured-output schema for a real estate
// offering memorandum, in the Gemini responseSchema format. It is sent
// verbatim in generationConfig; enforcement of shape and nullability is
// delegated to the model, not checked here.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type":        "OBJECT",
		"description": "Real Estate Offering Memorandum details",
		"properties": map[string]any{
			"propertyInfo": map[string]any{
				"type":        "OBJECT",
				"description": "Basic property information and characteristics",
				"properties": map[string]any{
					"propertyName": str(`Name of the property (e.g., "280 Richards")`, false),
					"address": map[string]any{
						"type":        "OBJECT",
						"description": "Property address details",
						"properties": map[string]any{
							"street":    str("Street address", false),
							"city":      str("City name", false),
							"state":     str("State abbreviation", false),
							"zipCode":   str("Postal code", true),
							"submarket": str("Submarket or district name", true),
						},
						"required": []string{"street", "city", "state"},
					},
					"propertyType":       str(`Type of property (e.g., "Logistics Facility", "Warehouse", "Industrial")`, false),
					"propertySizeSF":     num("Total property size in square feet", false),
					"landAreaAcres":      num("Land area in acres", true),
					"yearBuilt":          num("Year the property was built", true),
					"constructionStatus": str(`Current construction status (e.g., "New Construction", "Existing")`, true),
				},
				"required": []string{"propertyName", "address", "propertyType", "propertySizeSF"},
			},
			"offeringDetails": map[string]any{
				"type":        "OBJECT",
				"description": "Details about the property offering",
				"properties": map[string]any{
					"sellerName":       str("Name of the selling entity", true),
					"brokerageFirm":    str("Name of the brokerage firm", false),
					"guidancePriceUSD": num("Asking price in USD", false),
					"guidancePricePSF": num("Price per square foot", true),
					"offeringType":     str(`Type of offering (e.g., "Fee Simple", "Leasehold")`, true),
				},
				"required": []string{"brokerageFirm", "guidancePriceUSD"},
			},
			"leaseInfo": map[string]any{
				"type":        "OBJECT",
				"description": "Lease and tenant information",
				"properties": map[string]any{
					"tenantName":              str("Name of primary tenant", false),
					"leasePercentage":         num("Percentage of property that is leased", false),
					"leaseTermRemainingYears": num("Remaining years on the lease", true),
					"leaseExpirationDate":     str("Lease expiration date in YYYY-MM-DD format", true),
					"rentEscalations":         str("Description of rent escalation structure", true),
					"capRatePercent":          num("Capitalization rate as a percentage", true),
				},
				"required": []string{"tenantName", "leasePercentage"},
			},
			"financingInfo": map[string]any{
				"type":        "OBJECT",
				"description": "Financing details and terms",
				"properties": map[string]any{
					"isFinancingAssumable":         boolean("Whether existing financing can be assumed", false),
					"assumableLoanAmountUSD":       num("Amount of assumable loan in USD", true),
					"assumableInterestRatePercent": num("Interest rate of assumable loan as a percentage", true),
					"loanMaturityDate":             str("Loan maturity date in YYYY-MM-DD format", true),
				},
				"required": []string{"isFinancingAssumable"},
			},
			"summaryPoints": map[string]any{
				"type":        "OBJECT",
				"description": "Key points and considerations about the property",
				"properties": map[string]any{
					"investmentHighlights": arr("List of key investment highlights", str("Individual investment highlight", false)),
					"riskFactors":          arr("List of potential risk factors", str("Individual risk factor", false)),
				},
				"required": []string{"investmentHighlights", "riskFactors"},
			},
			"brokerContacts": arr("List of broker contact information", map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":  str("Broker name", false),
					"title": str("Broker title", false),
					"phone": str("Contact phone number", false),
					"email": str("Contact email address", false),
				},
				"required": []string{"name", "title", "phone", "email"},
			}),
			"documentInfo": map[string]any{
				"type":        "OBJECT",
				"description": "Document metadata",
				"properties": map[string]any{
					"documentType":   str("Type of document", false),
					"dateUploaded":   str("Date the document was uploaded in YYYY-MM-DD format", false),
					"sourceFileName": str("Original filename of the document", false),
				},
				"required": []string{"documentType", "dateUploaded", "sourceFileName"},
			},
		},
		"required": []string{"propertyInfo", "offeringDetails", "leaseInfo", "documentInfo"},
	}
}

func str(desc string, nullable bool) map[string]any {
	return map[string]any{"type": "STRING", "description": desc, "nullable": nullable}
}

func num(desc string, nullable bool) map[string]any {
	return map[string]any{"type": "NUMBER", "description": desc, "nullable": nullable}
}

func boolean(desc string, nullable bool) map[string]any {
	return map[string]any{"type": "BOOLEAN", "description": desc, "nullable": nullable}
}

func arr(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "description": desc, "items": items}
}
