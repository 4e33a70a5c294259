// mkfixture writes a synthetic Parquet file of antihypertensive dispensing
// records for tests and demos. Output covers both periods, all default
// classes, an unrecognized class, and rows with missing strength or max-dose
// slots.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/jagadishkatam/tis/internal/model"
)

func main() {
	out := flag.String("out", "dispensing.parquet", "output parquet path")
	patients := flag.Int("patients", 50, "number of patients to generate")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	rows := generate(*patients, rand.New(rand.NewSource(*seed)))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
		os.Exit(1)
	}

	w := parquet.NewGenericWriter[model.DispensingRow](f)
	if _, err := w.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write rows: %v\n", err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d rows to %s\n", len(rows), *out)
}

// drug is a synthetic product template for one medication class.
type drug struct {
	class     string
	strengths []float64
	maxDoses  []float64
}

var formulary = []drug{
	{class: "CCB", strengths: []float64{5}, maxDoses: []float64{10}},
	{class: "CCB", strengths: []float64{10}, maxDoses: []float64{40}},
	{class: "ARB", strengths: []float64{50}, maxDoses: []float64{100}},
	{class: "ARB", strengths: []float64{160}, maxDoses: []float64{320}},
	{class: "Thiazide", strengths: []float64{12.5}, maxDoses: []float64{50}},
	{class: "ACEI_Thiazide", strengths: []float64{10, 12.5}, maxDoses: []float64{40, 50}},
	// Not in the default recognized set; exercises the unconfigured-class path.
	{class: "BetaBlocker", strengths: []float64{25}, maxDoses: []float64{200}},
}

func generate(patients int, rng *rand.Rand) []model.DispensingRow {
	periods := []string{"Previous", "New"}
	var rows []model.DispensingRow

	for p := 1; p <= patients; p++ {
		patientID := fmt.Sprintf("P%04d", p)
		for _, period := range periods {
			// Most patients have both periods; some only one.
			if rng.Float64() < 0.1 {
				continue
			}
			nScripts := 1 + rng.Intn(3)
			for s := 0; s < nScripts; s++ {
				d := formulary[rng.Intn(len(formulary))]
				row := model.DispensingRow{
					PatientID: patientID,
					Period:    period,
					MedClass:  d.class,
					RxAmt:     float64(30 * (1 + rng.Intn(3))),
					RxSup:     30,
				}
				setSlots(&row, d, rng)
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func setSlots(row *model.DispensingRow, d drug, rng *rand.Rand) {
	strengths := [3]**float64{&row.Strength1, &row.Strength2, &row.Strength3}
	maxDoses := [3]**float64{&row.MaxDose1, &row.MaxDose2, &row.MaxDose3}
	for i, v := range d.strengths {
		s := v
		*strengths[i] = &s
	}
	for i, v := range d.maxDoses {
		// Occasionally drop a max-dose to exercise undefined scores.
		if rng.Float64() < 0.05 {
			continue
		}
		m := v
		*maxDoses[i] = &m
	}
}
