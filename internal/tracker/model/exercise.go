package model

import "math"

type Exercise struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	MuscleGroups    []string `json:"muscleGroups"`
	Equipment       []string `json:"equipment"`
	MinWeight       *float64 `json:"minWeight,omitempty"`
	MaxWeight       *float64 `json:"maxWeight,omitempty"`
	RestTime        *float64 `json:"restTime,omitempty"` // seconds
	Steps           []string `json:"steps"`
	Recommendations []string `json:"recommendations"`
	Favorite        bool     `json:"favorite"`
}

// DeclaredWeightRange returns the authored working weight range.
// The range is only considered declared when both bounds are set and max is positive.
func (e Exercise) DeclaredWeightRange() (lo, hi float64, ok bool) {
	lo, loOk := present(e.MinWeight)
	hi, hiOk := present(e.MaxWeight)
	if !loOk || !hiOk || hi <= 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

func (e Exercise) RestTimeValue() (float64, bool) {
	return present(e.RestTime)
}

func (e Exercise) Clone() Exercise {
	c := e
	c.MuscleGroups = cloneStrings(e.MuscleGroups)
	c.Equipment = cloneStrings(e.Equipment)
	c.Steps = cloneStrings(e.Steps)
	c.Recommendations = cloneStrings(e.Recommendations)
	c.MinWeight = cloneFloat(e.MinWeight)
	c.MaxWeight = cloneFloat(e.MaxWeight)
	c.RestTime = cloneFloat(e.RestTime)
	return c
}

// present reports whether an optional number carries a usable value.
func present(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

// Float is a helper for building optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
