package omschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Validate checks model output against a local JSON-Schema equivalent of
// ResponseSchema. Advisory only: callers log a failure and keep going, since
// partial model output must never reject the whole record.
func Validate(data []byte) error {
	compileOnce.Do(func() {
		b, err := json.Marshal(jsonSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("offering_memorandum.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("offering_memorandum.json")
	})
	if compileErr != nil {
		return compileErr
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// jsonSchema is the draft JSON-Schema twin of ResponseSchema. Kept separate
// because Gemini's responseSchema dialect (uppercase types, nullable flag) is
// not valid JSON-Schema.
func jsonSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"propertyInfo": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"propertyName": jstr(false),
					"address": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"street":    jstr(false),
							"city":      jstr(false),
							"state":     jstr(false),
							"zipCode":   jstr(true),
							"submarket": jstr(true),
						},
					},
					"propertyType":       jstr(false),
					"propertySizeSF":     jnum(false),
					"landAreaAcres":      jnum(true),
					"yearBuilt":          jnum(true),
					"constructionStatus": jstr(true),
				},
			},
			"offeringDetails": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sellerName":       jstr(true),
					"brokerageFirm":    jstr(false),
					"guidancePriceUSD": jnum(false),
					"guidancePricePSF": jnum(true),
					"offeringType":     jstr(true),
				},
			},
			"leaseInfo": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tenantName":              jstr(false),
					"leasePercentage":         jnum(false),
					"leaseTermRemainingYears": jnum(true),
					"leaseExpirationDate":     jstr(true),
					"rentEscalations":         jstr(true),
					"capRatePercent":          jnum(true),
				},
			},
			"financingInfo": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"isFinancingAssumable":         map[string]any{"type": "boolean"},
					"assumableLoanAmountUSD":       jnum(true),
					"assumableInterestRatePercent": jnum(true),
					"loanMaturityDate":             jstr(true),
				},
			},
			"summaryPoints": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"investmentHighlights": map[string]any{"type": "array", "items": jstr(false)},
					"riskFactors":          map[string]any{"type": "array", "items": jstr(false)},
				},
			},
			"brokerContacts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":  jstr(false),
						"title": jstr(false),
						"phone": jstr(false),
						"email": jstr(false),
					},
				},
			},
			"documentInfo": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"documentType":   jstr(false),
					"dateUploaded":   jstr(false),
					"sourceFileName": jstr(false),
				},
			},
		},
	}
}

func jstr(nullable bool) map[string]any {
	if nullable {
		return map[string]any{"type": []string{"string", "null"}}
	}
	return map[string]any{"type": "string"}
}

func jnum(nullable bool) map[string]any {
	if nullable {
		return map[string]any{"type": []string{"number", "null"}}
	}
	return map[string]any{"type": "number"}
}
