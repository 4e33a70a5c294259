package model

import "testing"

func TestMedClassColumns(t *testing.T) {
	c := MedClass{Name: "CCB", Column: "ccb"}
	if got := c.TISColumn(); got != "TIS_ccb" {
		t.Errorf("TISColumn = %q, want TIS_ccb", got)
	}
	if got := c.IndicatorColumn(); got != "class_ccb" {
		t.Errorf("IndicatorColumn = %q, want class_ccb", got)
	}
}

func TestMedClassByName(t *testing.T) {
	if _, ok := MedClassByName(DefaultClasses, "ARB"); !ok {
		t.Error("ARB not found")
	}
	if mc, ok := MedClassByName(DefaultClasses, "acei_thiazide"); !ok || mc.Name != "ACEI_Thiazide" {
		t.Errorf("case-insensitive lookup failed: %v %v", mc, ok)
	}
	if _, ok := MedClassByName(DefaultClasses, "BetaBlocker"); ok {
		t.Error("BetaBlocker should not be found")
	}
}

func TestNewMedClass(t *testing.T) {
	mc := NewMedClass("BetaBlocker")
	if mc.Column != "betablocker" {
		t.Errorf("column = %q, want betablocker", mc.Column)
	}
}
