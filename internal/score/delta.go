package score

// Periods names the two periods compared by the delta computation.
type Periods struct {
	Previous string
	New      string
}

// Delta is one patient's final result: the aggregated TIS for each of the
// two configured periods and their signed difference. A nil period value
// means the patient has no rows for that period; Delta is nil unless both
// periods are present, since a missing period is not a zero score.
type Delta struct {
	PatientID string
	Previous  *float64
	New       *float64
	Delta     *float64
}

// Deltas computes delta_tis = tis_<new> - tis_<previous> for every patient
// in the wide table.
func Deltas(rows []WideRow, p Periods) []Delta {
	out := make([]Delta, len(rows))
	for i, r := range rows {
		d := Delta{PatientID: r.PatientID}
		if v, ok := r.ByPeriod[p.Previous]; ok {
			prev := v
			d.Previous = &prev
		}
		if v, ok := r.ByPeriod[p.New]; ok {
			cur := v
			d.New = &cur
		}
		if d.Previous != nil && d.New != nil {
			diff := *d.New - *d.Previous
			d.Delta = &diff
		}
		out[i] = d
	}
	return out
}
