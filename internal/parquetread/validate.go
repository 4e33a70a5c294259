package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// StrengthColumns lists the per-slot strength column names.
var StrengthColumns = []string{"strength1", "strength2", "strength3"}

// ValidateSchema checks that the Parquet schema contains all required columns
// and at least one strength column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	required := []string{"patient_id", "period", "med_class", "rxamt", "rxsup"}
	for _, col := range required {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	hasStrength := false
	for _, col := range StrengthColumns {
		if columns[col] {
			hasStrength = true
			break
		}
	}
	if !hasStrength {
		return fmt.Errorf("no strength columns found; need at least one of: %s",
			strings.Join(StrengthColumns, ", "))
	}

	return nil
}
