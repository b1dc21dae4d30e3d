package property

import (
	"reflect"
	"time"

	"github.com/starboard-ai/deal-overview/constants"
)

// Normalize fills every missing or null field of an extracted record from the
// defaults table and stamps the server-owned document metadata. Substitution
// is field by field: a present value is kept even when its siblings are
// missing. sourceFileName always echoes the caller-supplied name and
// dateUploaded is always the server's current date, regardless of model
// output.
func Normalize(ex ExtractedRecord, sourceFileName string, now time.Time) PropertyRecord {
	def := defaults()
	fillDefaults(reflect.ValueOf(&ex).Elem(), reflect.ValueOf(&def).Elem())

	return PropertyRecord{
		ExtractedRecord: ex,
		DocumentInfo: DocumentInfo{
			DocumentType:   constants.DocumentTypeOfferingMemorandum,
			DateUploaded:   now.Format(constants.DateFormat),
			SourceFileName: sourceFileName,
		},
		SupplyPipeline:  supplyPipeline(),
		SaleComparables: saleComparables(),
	}
}

// fillDefaults walks dst and def (same struct type) in lockstep and copies a
// default wherever dst has a nil pointer or nil slice. Nested structs recurse
// so a partially filled group keeps what the model produced.
func fillDefaults(dst, def reflect.Value) {
	for i := 0; i < dst.NumField(); i++ {
		f := dst.Field(i)
		d := def.Field(i)
		switch f.Kind() {
		case reflect.Pointer:
			if f.IsNil() && !d.IsNil() {
				f.Set(d)
			}
		case reflect.Slice:
			if f.IsNil() && !d.IsNil() {
				f.Set(d)
			}
		case reflect.Struct:
			fillDefaults(f, d)
		}
	}
}
