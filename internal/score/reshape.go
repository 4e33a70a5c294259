package score

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jagadishkatam/tis/internal/model"
)

// LongRow is one (patient, period, class) TIS observation in long form.
// Class is the column suffix with the TIS_ prefix stripped.
type LongRow struct {
	PatientID string
	Period    string
	Class     string
	TIS       *float64
}

// PeriodTotal is the aggregated TIS for one patient and period: the sum of
// class TIS values across all configured classes, nil treated as zero.
type PeriodTotal struct {
	PatientID string
	Period    string
	TIS       float64
}

// WideRow is one patient's TIS totals keyed by period name.
type WideRow struct {
	PatientID string
	ByPeriod  map[string]float64
}

// Deduplicate keeps the distinct rows over (patient, period, indicators,
// class TIS values) and sorts them by (patient, period). Dose and score
// intermediates are already absent from ScoredRecord, so this is the
// select-and-dedupe step in one pass.
func Deduplicate(recs []*ScoredRecord, classes []model.MedClass) []*ScoredRecord {
	seen := make(map[string]bool, len(recs))
	out := make([]*ScoredRecord, 0, len(recs))
	for _, r := range recs {
		k := dedupeKey(r, classes)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PatientID != out[j].PatientID {
			return out[i].PatientID < out[j].PatientID
		}
		return out[i].Period < out[j].Period
	})
	return out
}

func dedupeKey(r *ScoredRecord, classes []model.MedClass) string {
	var b strings.Builder
	b.WriteString(r.PatientID)
	b.WriteByte(0)
	b.WriteString(r.Period)
	for _, c := range classes {
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(r.Indicators[c.Column]))
		b.WriteByte(0)
		if v := r.ClassTIS[c.Column]; v != nil {
			b.WriteString(strconv.FormatFloat(*v, 'g', -1, 64))
		}
	}
	return b.String()
}

// ToLong pivots scored records into long form: one row per record and
// configured class, in class-list order.
func ToLong(recs []*ScoredRecord, classes []model.MedClass) []LongRow {
	out := make([]LongRow, 0, len(recs)*len(classes))
	for _, r := range recs {
		for _, c := range classes {
			out = append(out, LongRow{
				PatientID: r.PatientID,
				Period:    r.Period,
				Class:     c.Column,
				TIS:       r.ClassTIS[c.Column],
			})
		}
	}
	return out
}

// SumByPatientPeriod groups long rows by (patient, period) and sums TIS over
// classes, treating nil as zero. Output is sorted by (patient, period).
//
// The source pipeline performed this aggregation twice in sequence; the
// second pass re-summed an already-grouped key and is a no-op, so a single
// group-sum is used here.
func SumByPatientPeriod(rows []LongRow) []PeriodTotal {
	type key struct{ patient, period string }
	sums := make(map[key]float64)
	order := make([]key, 0)
	for _, r := range rows {
		k := key{r.PatientID, r.Period}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
			sums[k] = 0
		}
		if r.TIS != nil {
			sums[k] += *r.TIS
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].patient != order[j].patient {
			return order[i].patient < order[j].patient
		}
		return order[i].period < order[j].period
	})
	out := make([]PeriodTotal, len(order))
	for i, k := range order {
		out[i] = PeriodTotal{PatientID: k.patient, Period: k.period, TIS: sums[k]}
	}
	return out
}

// ToWide pivots period totals into one row per patient with a TIS value per
// period. Output is sorted by patient.
func ToWide(totals []PeriodTotal) []WideRow {
	byPatient := make(map[string]map[string]float64)
	order := make([]string, 0)
	for _, t := range totals {
		m, ok := byPatient[t.PatientID]
		if !ok {
			m = make(map[string]float64)
			byPatient[t.PatientID] = m
			order = append(order, t.PatientID)
		}
		m[t.Period] = t.TIS
	}
	sort.Strings(order)
	out := make([]WideRow, len(order))
	for i, p := range order {
		out[i] = WideRow{PatientID: p, ByPeriod: byPatient[p]}
	}
	return out
}

// Reshape runs the full select → dedupe → long pivot → group-sum → wide
// pivot sequence.
func Reshape(recs []*ScoredRecord, classes []model.MedClass) []WideRow {
	return ToWide(SumByPatientPeriod(ToLong(Deduplicate(recs, classes), classes)))
}
