package property_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/starboard-ai/deal-overview/internal/property"
)

func strp(s string) *string   { return &s }
func nump(f float64) *float64 { return &f }
func boolp(b bool) *bool      { return &b }

func TestNormalizeEmptyRecordAppliesDefaults(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	rec := property.Normalize(property.ExtractedRecord{}, "abc.pdf", now)

	if rec.PropertyInfo.PropertyName == nil || *rec.PropertyInfo.PropertyName != "280 Richards" {
		t.Errorf("propertyName default not applied: %v", rec.PropertyInfo.PropertyName)
	}
	if rec.PropertyInfo.PropertyType == nil || *rec.PropertyInfo.PropertyType != "Warehouse" {
		t.Errorf("propertyType default not applied: %v", rec.PropertyInfo.PropertyType)
	}
	if rec.PropertyInfo.Address.City == nil || *rec.PropertyInfo.Address.City != "Brooklyn" {
		t.Errorf("address.city default not applied: %v", rec.PropertyInfo.Address.City)
	}
	if rec.OfferingDetails.GuidancePriceUSD == nil || *rec.OfferingDetails.GuidancePriceUSD != 143000000 {
		t.Errorf("guidancePriceUSD default not applied: %v", rec.OfferingDetails.GuidancePriceUSD)
	}
	if rec.LeaseInfo.TenantName == nil || *rec.LeaseInfo.TenantName != "Amazon" {
		t.Errorf("tenantName default not applied: %v", rec.LeaseInfo.TenantName)
	}
	if rec.LeaseInfo.LeasePercentage == nil || *rec.LeaseInfo.LeasePercentage != 100 {
		t.Errorf("leasePercentage default not applied: %v", rec.LeaseInfo.LeasePercentage)
	}
	if rec.FinancingInfo.IsFinancingAssumable == nil || !*rec.FinancingInfo.IsFinancingAssumable {
		t.Errorf("isFinancingAssumable default not applied: %v", rec.FinancingInfo.IsFinancingAssumable)
	}
	if len(rec.SummaryPoints.InvestmentHighlights) != 4 {
		t.Errorf("expected 4 default investment highlights, got %d", len(rec.SummaryPoints.InvestmentHighlights))
	}
	if len(rec.SummaryPoints.RiskFactors) != 3 {
		t.Errorf("expected 3 default risk factors, got %d", len(rec.SummaryPoints.RiskFactors))
	}

	// Null defaults stay null.
	if rec.PropertyInfo.Address.ZipCode != nil {
		t.Errorf("zipCode should default to null, got %q", *rec.PropertyInfo.Address.ZipCode)
	}
	if rec.PropertyInfo.YearBuilt != nil {
		t.Errorf("yearBuilt should default to null, got %v", *rec.PropertyInfo.YearBuilt)
	}
	if rec.FinancingInfo.AssumableLoanAmountUSD != nil {
		t.Errorf("assumableLoanAmountUSD should default to null")
	}
}

func TestNormalizeFieldByFieldNotWholeRecord(t *testing.T) {
	ex := property.ExtractedRecord{}
	ex.PropertyInfo.Address.City = strp("Queens")
	ex.LeaseInfo.CapRatePercent = nump(6.25)

	rec := property.Normalize(ex, "x.pdf", time.Now())

	if *rec.PropertyInfo.Address.City != "Queens" {
		t.Errorf("model-supplied city overwritten: %q", *rec.PropertyInfo.Address.City)
	}
	// Sibling of a supplied field still gets its own default.
	if rec.PropertyInfo.Address.Street == nil || *rec.PropertyInfo.Address.Street != "280 Richards" {
		t.Errorf("street default not applied next to supplied city")
	}
	if *rec.LeaseInfo.CapRatePercent != 6.25 {
		t.Errorf("model-supplied cap rate overwritten: %v", *rec.LeaseInfo.CapRatePercent)
	}
	if rec.LeaseInfo.TenantName == nil || *rec.LeaseInfo.TenantName != "Amazon" {
		t.Errorf("tenantName default not applied next to supplied cap rate")
	}
}

func TestNormalizeKeepsExplicitFalse(t *testing.T) {
	ex := property.ExtractedRecord{}
	ex.FinancingInfo.IsFinancingAssumable = boolp(false)

	rec := property.Normalize(ex, "x.pdf", time.Now())
	if *rec.FinancingInfo.IsFinancingAssumable {
		t.Error("explicit false was replaced by the true default")
	}
}

func TestNormalizeDocumentInfoIsServerOwned(t *testing.T) {
	now := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := property.Normalize(property.ExtractedRecord{}, "deal-7cf1.pdf", now)

	if rec.DocumentInfo.SourceFileName != "deal-7cf1.pdf" {
		t.Errorf("sourceFileName = %q, want caller-supplied name", rec.DocumentInfo.SourceFileName)
	}
	if rec.DocumentInfo.DateUploaded != "2025-03-14" {
		t.Errorf("dateUploaded = %q, want 2025-03-14", rec.DocumentInfo.DateUploaded)
	}
	if rec.DocumentInfo.DocumentType != "Offering Memorandum" {
		t.Errorf("documentType = %q", rec.DocumentInfo.DocumentType)
	}
}

func TestNormalizeMarshalShape(t *testing.T) {
	rec := property.Normalize(property.ExtractedRecord{}, "a.pdf", time.Now())
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)

	if !strings.Contains(s, `"brokerContacts":[]`) {
		t.Errorf("brokerContacts should marshal as an empty array, got: %s", s)
	}
	if !strings.Contains(s, `"zipCode":null`) {
		t.Errorf("zipCode should marshal as explicit null")
	}
	if !strings.Contains(s, `"supplyPipeline":[`) || !strings.Contains(s, `"640 Columbia"`) {
		t.Errorf("supplyPipeline missing from record")
	}
	if !strings.Contains(s, `"saleComparables":[`) || !strings.Contains(s, `"39 Edgeboro Road"`) {
		t.Errorf("saleComparables missing from record")
	}
}

func TestNormalizeRecordsDoNotAlias(t *testing.T) {
	a := property.Normalize(property.ExtractedRecord{}, "a.pdf", time.Now())
	b := property.Normalize(property.ExtractedRecord{}, "b.pdf", time.Now())

	*a.PropertyInfo.PropertyName = "mutated"
	if *b.PropertyInfo.PropertyName != "280 Richards" {
		t.Error("normalized records share default pointers")
	}
}
