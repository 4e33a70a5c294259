package model

// DispensingRow mirrors the Parquet schema for a single medication dispensing
// event. Strength and max-dose slots are nullable; a missing strength means
// the product has fewer active ingredients than slots.
type DispensingRow struct {
	PatientID string `parquet:"patient_id"`
	Period    string `parquet:"period"`
	MedClass  string `parquet:"med_class"`

	// Up to three active-ingredient strengths (mg per unit)
	Strength1 *float64 `parquet:"strength1,optional"`
	Strength2 *float64 `parquet:"strength2,optional"`
	Strength3 *float64 `parquet:"strength3,optional"`

	// Dispensed amount and days' supply
	RxAmt float64 `parquet:"rxamt"`
	RxSup float64 `parquet:"rxsup"`

	// Maximum daily dose thresholds, one per strength slot
	MaxDose1 *float64 `parquet:"maxdose1,optional"`
	MaxDose2 *float64 `parquet:"maxdose2,optional"`
	MaxDose3 *float64 `parquet:"maxdose3,optional"`
}

// Strengths returns the three strength slots in order.
func (r *DispensingRow) Strengths() [3]*float64 {
	return [3]*float64{r.Strength1, r.Strength2, r.Strength3}
}

// MaxDoses returns the three max-dose slots in order.
func (r *DispensingRow) MaxDoses() [3]*float64 {
	return [3]*float64{r.MaxDose1, r.MaxDose2, r.MaxDose3}
}
