package score

import (
	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/normalize"
)

// Indicators derives one 0/1 flag per recognized class from a record's class
// label. Matching is case-insensitive after whitespace normalization. A label
// not in classes sets no flag; that is not an error.
func Indicators(classLabel string, classes []model.MedClass) map[string]int {
	flags := make(map[string]int, len(classes))
	norm := normalize.ClassLabel(classLabel)
	for _, c := range classes {
		if normalize.ClassLabel(c.Name) == norm {
			flags[c.Column] = 1
		} else {
			flags[c.Column] = 0
		}
	}
	return flags
}
