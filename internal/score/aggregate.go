package score

import "github.com/jagadishkatam/tis/internal/model"

// ScoredRecord carries a record's identifiers, class indicators, and
// per-class TIS values. Maps are keyed by class column suffix (the lowercased
// class name).
type ScoredRecord struct {
	PatientID  string
	Period     string
	Indicators map[string]int
	ClassTIS   map[string]*float64
}

// ScoreRecord flags one record and computes its TIS for every configured
// class. Classes absent from the configuration are excluded from all
// downstream sums; the class list is an explicit input, never inferred from
// the data.
func ScoreRecord(rec *model.DispensingRow, classes []model.MedClass) *ScoredRecord {
	flags := Indicators(rec.MedClass, classes)
	tis := make(map[string]*float64, len(classes))
	for _, c := range classes {
		tis[c.Column] = ClassTIS(rec, flags[c.Column])
	}
	return &ScoredRecord{
		PatientID:  rec.PatientID,
		Period:     rec.Period,
		Indicators: flags,
		ClassTIS:   tis,
	}
}

// ScoreAll scores every record against the configured class list. Pure: the
// same records and classes always produce identical output.
func ScoreAll(recs []model.DispensingRow, classes []model.MedClass) []*ScoredRecord {
	out := make([]*ScoredRecord, len(recs))
	for i := range recs {
		out[i] = ScoreRecord(&recs[i], classes)
	}
	return out
}
