package score

import (
	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/normalize"
)

// SlotDose computes the daily dose for one strength slot:
// strength * rxamt / rxsup. Returns nil when the strength is absent or the
// days' supply is zero (a zero supply is treated like a missing one rather
// than producing an infinite dose).
func SlotDose(strength *float64, rxAmt, rxSup float64) *float64 {
	if strength == nil || rxSup == 0 {
		return nil
	}
	d := *strength * rxAmt / rxSup
	return &d
}

// SlotScore computes the dose-to-maximum ratio for one slot. Returns nil
// unless both the dose and the max-dose threshold are present.
func SlotScore(dose, maxDose *float64) *float64 {
	if dose == nil || maxDose == nil {
		return nil
	}
	s := *dose / *maxDose
	return &s
}

// ClassTIS computes a record's Therapeutic Intensity Score for one class.
//
// Slot scores are summed left to right, stopping at the first undefined
// slot: if score 1 is undefined the class TIS is 0 regardless of later
// slots. The sum is rounded to 2 decimals, half away from zero. The result
// is nil unless indicator is 1, so a class TIS only materializes for records
// actually in that class.
func ClassTIS(rec *model.DispensingRow, indicator int) *float64 {
	if indicator != 1 {
		return nil
	}

	strengths := rec.Strengths()
	maxDoses := rec.MaxDoses()

	var sum float64
	defined := false
	for i := 0; i < 3; i++ {
		s := SlotScore(SlotDose(strengths[i], rec.RxAmt, rec.RxSup), maxDoses[i])
		if s == nil {
			break
		}
		sum += *s
		defined = true
	}

	tis := 0.0
	if defined {
		tis = normalize.Round2(sum)
	}
	return &tis
}
