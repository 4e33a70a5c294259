package score

import (
	"testing"

	"github.com/jagadishkatam/tis/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestSlotDose(t *testing.T) {
	tests := []struct {
		name     string
		strength *float64
		rxAmt    float64
		rxSup    float64
		want     *float64
	}{
		{"defined", fp(10), 30, 30, fp(10)},
		{"doubled amount", fp(10), 60, 30, fp(20)},
		{"missing strength", nil, 30, 30, nil},
		{"zero days supply", fp(10), 30, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotDose(tt.strength, tt.rxAmt, tt.rxSup)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("SlotDose = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("SlotDose = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestSlotScore(t *testing.T) {
	if got := SlotScore(fp(10), fp(40)); got == nil || *got != 0.25 {
		t.Errorf("SlotScore(10, 40) = %v, want 0.25", got)
	}
	if got := SlotScore(nil, fp(40)); got != nil {
		t.Errorf("SlotScore(nil, 40) = %v, want nil", got)
	}
	if got := SlotScore(fp(10), nil); got != nil {
		t.Errorf("SlotScore(10, nil) = %v, want nil", got)
	}
}

func TestClassTIS_SingleSlot(t *testing.T) {
	rec := &model.DispensingRow{
		PatientID: "P1", Period: "Previous", MedClass: "CCB",
		Strength1: fp(10), RxAmt: 30, RxSup: 30, MaxDose1: fp(40),
	}
	got := ClassTIS(rec, 1)
	if got == nil || *got != 0.25 {
		t.Fatalf("ClassTIS = %v, want 0.25", got)
	}
}

func TestClassTIS_AllThreeSlots(t *testing.T) {
	rec := &model.DispensingRow{
		Strength1: fp(10), Strength2: fp(20), Strength3: fp(5),
		RxAmt: 30, RxSup: 30,
		MaxDose1: fp(40), MaxDose2: fp(40), MaxDose3: fp(20),
	}
	// 0.25 + 0.5 + 0.25
	got := ClassTIS(rec, 1)
	if got == nil || *got != 1.0 {
		t.Fatalf("ClassTIS = %v, want 1.0", got)
	}
}

func TestClassTIS_StopsAtFirstUndefinedSlot(t *testing.T) {
	// Slot 2 has no max-dose, so slot 3 must not contribute either.
	rec := &model.DispensingRow{
		Strength1: fp(10), Strength2: fp(20), Strength3: fp(5),
		RxAmt: 30, RxSup: 30,
		MaxDose1: fp(40), MaxDose3: fp(20),
	}
	got := ClassTIS(rec, 1)
	if got == nil || *got != 0.25 {
		t.Fatalf("ClassTIS = %v, want 0.25 (slot 1 only)", got)
	}
}

func TestClassTIS_ZeroWhenFirstScoreUndefined(t *testing.T) {
	// Score 1 undefined, score 2 fully defined: the result is 0, not score 2.
	rec := &model.DispensingRow{
		Strength2: fp(20), RxAmt: 30, RxSup: 30, MaxDose2: fp(40),
	}
	got := ClassTIS(rec, 1)
	if got == nil || *got != 0 {
		t.Fatalf("ClassTIS = %v, want 0", got)
	}
}

func TestClassTIS_ZeroWhenNoScoresDefined(t *testing.T) {
	rec := &model.DispensingRow{
		Strength1: fp(10), RxAmt: 30, RxSup: 30, // no max-dose
	}
	got := ClassTIS(rec, 1)
	if got == nil || *got != 0 {
		t.Fatalf("ClassTIS = %v, want 0", got)
	}
}

func TestClassTIS_NilUnlessIndicatorSet(t *testing.T) {
	rec := &model.DispensingRow{
		Strength1: fp(10), RxAmt: 30, RxSup: 30, MaxDose1: fp(40),
	}
	if got := ClassTIS(rec, 0); got != nil {
		t.Errorf("ClassTIS with indicator 0 = %v, want nil", got)
	}
}

func TestClassTIS_ZeroDaysSupplyIsUndefined(t *testing.T) {
	// Days' supply of zero propagates as a missing dose, so the TIS is 0.
	rec := &model.DispensingRow{
		Strength1: fp(10), RxAmt: 30, RxSup: 0, MaxDose1: fp(40),
	}
	got := ClassTIS(rec, 1)
	if got == nil || *got != 0 {
		t.Fatalf("ClassTIS = %v, want 0", got)
	}
}

// Rounding is half away from zero at 2 decimals. Pins the policy.
func TestClassTIS_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 float64
		want   float64
	}{
		{"below half boundary", 0.12345, 0.00005, 0.12},
		{"exact half rounds up", 0.125, 0, 0.13},
		{"plain", 0.114, 0, 0.11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// rxamt == rxsup so dose_i == strength_i; max-dose 1 so score_i == dose_i.
			rec := &model.DispensingRow{
				Strength1: fp(tt.s1), Strength2: fp(tt.s2),
				RxAmt: 30, RxSup: 30,
				MaxDose1: fp(1), MaxDose2: fp(1),
			}
			got := ClassTIS(rec, 1)
			if got == nil || *got != tt.want {
				t.Errorf("ClassTIS = %v, want %v", got, tt.want)
			}
		})
	}
}
