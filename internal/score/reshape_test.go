package score

import (
	"reflect"
	"testing"

	"github.com/jagadishkatam/tis/internal/model"
)

func sampleRecords() []model.DispensingRow {
	return []model.DispensingRow{
		{PatientID: "P1", Period: "Previous", MedClass: "CCB",
			Strength1: fp(10), RxAmt: 30, RxSup: 30, MaxDose1: fp(40)},
		{PatientID: "P1", Period: "New", MedClass: "CCB",
			Strength1: fp(10), RxAmt: 60, RxSup: 30, MaxDose1: fp(40)},
		{PatientID: "P1", Period: "New", MedClass: "ARB",
			Strength1: fp(50), RxAmt: 30, RxSup: 30, MaxDose1: fp(100)},
		{PatientID: "P2", Period: "New", MedClass: "Thiazide",
			Strength1: fp(12.5), RxAmt: 30, RxSup: 30, MaxDose1: fp(50)},
	}
}

func TestDeduplicate_DropsIdenticalRows(t *testing.T) {
	recs := sampleRecords()
	recs = append(recs, recs[0]) // exact duplicate dispensing event
	scored := ScoreAll(recs, model.DefaultClasses)

	deduped := Deduplicate(scored, model.DefaultClasses)
	if len(deduped) != 4 {
		t.Fatalf("deduped rows = %d, want 4", len(deduped))
	}
}

func TestDeduplicate_SortsByPatientPeriod(t *testing.T) {
	scored := ScoreAll(sampleRecords(), model.DefaultClasses)
	deduped := Deduplicate(scored, model.DefaultClasses)

	for i := 1; i < len(deduped); i++ {
		a, b := deduped[i-1], deduped[i]
		if a.PatientID > b.PatientID ||
			(a.PatientID == b.PatientID && a.Period > b.Period) {
			t.Fatalf("rows out of order at %d: (%s,%s) then (%s,%s)",
				i, a.PatientID, a.Period, b.PatientID, b.Period)
		}
	}
}

func TestToLong_OneRowPerClass(t *testing.T) {
	scored := ScoreAll(sampleRecords(), model.DefaultClasses)
	long := ToLong(scored, model.DefaultClasses)
	if want := len(scored) * len(model.DefaultClasses); len(long) != want {
		t.Fatalf("long rows = %d, want %d", len(long), want)
	}
}

// Long-pivoting then regrouping reproduces the per-class TIS value for
// every (patient, period, class) triple present in the input.
func TestLongPivot_RoundTrip(t *testing.T) {
	scored := Deduplicate(ScoreAll(sampleRecords(), model.DefaultClasses), model.DefaultClasses)
	long := ToLong(scored, model.DefaultClasses)

	type key struct{ patient, period, class string }
	fromLong := make(map[key]*float64)
	for _, r := range long {
		fromLong[key{r.PatientID, r.Period, r.Class}] = r.TIS
	}

	for _, rec := range scored {
		for _, c := range model.DefaultClasses {
			got := fromLong[key{rec.PatientID, rec.Period, c.Column}]
			want := rec.ClassTIS[c.Column]
			if (got == nil) != (want == nil) {
				t.Fatalf("%s/%s/%s: got %v, want %v", rec.PatientID, rec.Period, c.Column, got, want)
			}
			if got != nil && *got != *want {
				t.Errorf("%s/%s/%s: got %v, want %v", rec.PatientID, rec.Period, c.Column, *got, *want)
			}
		}
	}
}

func TestSumByPatientPeriod_NilTreatedAsZero(t *testing.T) {
	rows := []LongRow{
		{PatientID: "P1", Period: "New", Class: "ccb", TIS: fp(0.5)},
		{PatientID: "P1", Period: "New", Class: "arb", TIS: nil},
		{PatientID: "P1", Period: "New", Class: "thiazide", TIS: nil},
	}
	totals := SumByPatientPeriod(rows)
	if len(totals) != 1 {
		t.Fatalf("totals = %d, want 1", len(totals))
	}
	if totals[0].TIS != 0.5 {
		t.Errorf("TIS = %v, want 0.5", totals[0].TIS)
	}
}

func TestSumByPatientPeriod_SumsAcrossClasses(t *testing.T) {
	scored := ScoreAll(sampleRecords(), model.DefaultClasses)
	totals := SumByPatientPeriod(ToLong(Deduplicate(scored, model.DefaultClasses), model.DefaultClasses))

	want := []PeriodTotal{
		{PatientID: "P1", Period: "New", TIS: 1.0}, // CCB 0.5 + ARB 0.5
		{PatientID: "P1", Period: "Previous", TIS: 0.25},
		{PatientID: "P2", Period: "New", TIS: 0.25},
	}
	if !reflect.DeepEqual(totals, want) {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}
}

func TestToWide_OneRowPerPatient(t *testing.T) {
	totals := []PeriodTotal{
		{PatientID: "P1", Period: "New", TIS: 1.0},
		{PatientID: "P1", Period: "Previous", TIS: 0.25},
		{PatientID: "P2", Period: "New", TIS: 0.25},
	}
	wide := ToWide(totals)
	if len(wide) != 2 {
		t.Fatalf("wide rows = %d, want 2", len(wide))
	}
	if wide[0].PatientID != "P1" || wide[1].PatientID != "P2" {
		t.Fatalf("patients out of order: %s, %s", wide[0].PatientID, wide[1].PatientID)
	}
	if wide[0].ByPeriod["Previous"] != 0.25 || wide[0].ByPeriod["New"] != 1.0 {
		t.Errorf("P1 periods = %v", wide[0].ByPeriod)
	}
	if _, ok := wide[1].ByPeriod["Previous"]; ok {
		t.Errorf("P2 should not have a Previous period")
	}
}

// ScoreAll is pure: re-running with the same input and configuration yields
// identical output.
func TestScoreAll_Idempotent(t *testing.T) {
	recs := sampleRecords()
	a := ScoreAll(recs, model.DefaultClasses)
	b := ScoreAll(recs, model.DefaultClasses)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("ScoreAll is not deterministic over identical input")
	}
}
