package normalize

import (
	"fmt"
	"math"

	"github.com/jagadishkatam/tis/internal/model"
)

// ValidateRow checks a dispensing row for malformed values at the input
// boundary. Missing optional slots are fine; non-finite numerics and empty
// identifying fields are not.
func ValidateRow(r *model.DispensingRow) error {
	if r.PatientID == "" {
		return fmt.Errorf("empty patient_id")
	}
	if r.Period == "" {
		return fmt.Errorf("empty period")
	}
	if !finite(r.RxAmt) {
		return fmt.Errorf("non-finite rxamt %v", r.RxAmt)
	}
	if !finite(r.RxSup) {
		return fmt.Errorf("non-finite rxsup %v", r.RxSup)
	}
	for i, s := range r.Strengths() {
		if s != nil && !finite(*s) {
			return fmt.Errorf("non-finite strength%d %v", i+1, *s)
		}
	}
	for i, m := range r.MaxDoses() {
		if m != nil && !finite(*m) {
			return fmt.Errorf("non-finite maxdose%d %v", i+1, *m)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
