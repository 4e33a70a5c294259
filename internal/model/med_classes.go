package model

import "strings"

// Column-name prefixes for derived attributes. Kept as constants so the
// naming convention lives in one place.
const (
	TISColumnPrefix       = "TIS_"
	IndicatorColumnPrefix = "class_"
	PeriodColumnPrefix    = "tis_"
)

// MedClass represents one recognized antihypertensive medication class.
type MedClass struct {
	Name   string // canonical label as it appears in the data, e.g. "CCB"
	Column string // lowercased column suffix, e.g. "ccb" for TIS_ccb / class_ccb
}

// TISColumn returns the per-class TIS column name, e.g. "TIS_ccb".
func (c MedClass) TISColumn() string {
	return TISColumnPrefix + c.Column
}

// IndicatorColumn returns the per-class indicator column name, e.g. "class_ccb".
func (c MedClass) IndicatorColumn() string {
	return IndicatorColumnPrefix + c.Column
}

// DefaultClasses lists the recognized medication classes in canonical order.
var DefaultClasses = []MedClass{
	{Name: "CCB", Column: "ccb"},
	{Name: "ARB", Column: "arb"},
	{Name: "Thiazide", Column: "thiazide"},
	{Name: "ACEI_Thiazide", Column: "acei_thiazide"},
}

// NewMedClass builds a MedClass from a label, deriving the column suffix.
func NewMedClass(name string) MedClass {
	return MedClass{Name: name, Column: strings.ToLower(name)}
}

// MedClassByName returns the class with the given canonical name, or ok=false.
// Lookup is case-insensitive to match the class-flagging policy.
func MedClassByName(classes []MedClass, name string) (MedClass, bool) {
	for _, c := range classes {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return MedClass{}, false
}

// ClassNames returns just the canonical names for the given classes.
func ClassNames(classes []MedClass) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}
