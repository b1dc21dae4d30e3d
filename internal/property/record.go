package property

// ExtractedRecord is the typed shape of the extraction model's JSON output.
// Optional and nullable fields are pointers so that a missing or null value
// can be told apart from a legitimate zero; defaults are substituted per
// field in Normalize, never by replacing the whole record.
type ExtractedRecord struct {
	PropertyInfo    PropertyInfo    `json:"propertyInfo"`
	OfferingDetails OfferingDetails `json:"offeringDetails"`
	LeaseInfo       LeaseInfo       `json:"leaseInfo"`
	FinancingInfo   FinancingInfo   `json:"financingInfo"`
	SummaryPoints   SummaryPoints   `json:"summaryPoints"`
	BrokerContacts  []BrokerContact `json:"brokerContacts"`
}

// PropertyRecord is the normalized document returned by the OCR endpoint.
type PropertyRecord struct {
	ExtractedRecord
	DocumentInfo    DocumentInfo         `json:"documentInfo"`
	SupplyPipeline  []SupplyPipelineItem `json:"supplyPipeline"`
	SaleComparables []SaleComparable     `json:"saleComparables"`
}

type PropertyInfo struct {
	PropertyName       *string  `json:"propertyName"`
	Address            Address  `json:"address"`
	PropertyType       *string  `json:"propertyType"`
	PropertySizeSF     *float64 `json:"propertySizeSF"`
	LandAreaAcres      *float64 `json:"landAreaAcres"`
	YearBuilt          *float64 `json:"yearBuilt"`
	ConstructionStatus *string  `json:"constructionStatus"`
}

type Address struct {
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Submarket *string `json:"submarket"`
}

type OfferingDetails struct {
	SellerName       *string  `json:"sellerName"`
	BrokerageFirm    *string  `json:"brokerageFirm"`
	GuidancePriceUSD *float64 `json:"guidancePriceUSD"`
	GuidancePricePSF *float64 `json:"guidancePricePSF"`
	OfferingType     *string  `json:"offeringType"`
}

type LeaseInfo struct {
	TenantName              *string  `json:"tenantName"`
	LeasePercentage         *float64 `json:"leasePercentage"`
	LeaseTermRemainingYears *float64 `json:"leaseTermRemainingYears"`
	LeaseExpirationDate     *string  `json:"leaseExpirationDate"`
	RentEscalations         *string  `json:"rentEscalations"`
	CapRatePercent          *float64 `json:"capRatePercent"`
}

type FinancingInfo struct {
	IsFinancingAssumable         *bool    `json:"isFinancingAssumable"`
	AssumableLoanAmountUSD       *float64 `json:"assumableLoanAmountUSD"`
	AssumableInterestRatePercent *float64 `json:"assumableInterestRatePercent"`
	LoanMaturityDate             *string  `json:"loanMaturityDate"`
}

type SummaryPoints struct {
	InvestmentHighlights []string `json:"investmentHighlights"`
	RiskFactors          []string `json:"riskFactors"`
}

type BrokerContact struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// DocumentInfo is set server-side in full; model output for these fields is
// discarded.
type DocumentInfo struct {
	DocumentType   string `json:"documentType"`
	DateUploaded   string `json:"dateUploaded"`
	SourceFileName string `json:"sourceFileName"`
}

type SupplyPipelineItem struct {
	PropertyName string `json:"propertyName"`
	Submarket    string `json:"submarket"`
	DeliveryDate string `json:"deliveryDate"`
	Owner        string `json:"owner"`
	SquareFeet   int    `json:"squareFeet"`
}

type SaleComparable struct {
	PropertyName  string  `json:"propertyName"`
	Submarket     string  `json:"submarket"`
	SquareFeet    int     `json:"squareFeet"`
	Owner         string  `json:"owner"`
	Date          string  `json:"date"`
	PurchasePrice float64 `json:"purchasePrice"`
	Tenant        string  `json:"tenant"`
}
