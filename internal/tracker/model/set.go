package model

// Set is one performed unit of an exercise.
// Every measurement is optional; use the *Value accessors to check presence,
// a nil pointer and a NaN are both treated as "not recorded".
type Set struct {
	ID       uint64   `json:"id"`
	Reps     *float64 `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *float64 `json:"duration,omitempty"` // seconds
	Distance *float64 `json:"distance,omitempty"` // meters
}

func (s Set) RepsValue() (float64, bool) {
	return present(s.Reps)
}

func (s Set) WeightValue() (float64, bool) {
	return present(s.Weight)
}

func (s Set) DurationValue() (float64, bool) {
	return present(s.Duration)
}

func (s Set) DistanceValue() (float64, bool) {
	return present(s.Distance)
}

func (s Set) Clone() Set {
	return Set{
		ID:       s.ID,
		Reps:     cloneFloat(s.Reps),
		Weight:   cloneFloat(s.Weight),
		Duration: cloneFloat(s.Duration),
		Distance: cloneFloat(s.Distance),
	}
}

func CloneSets(sets []Set) []Set {
	if sets == nil {
		return nil
	}
	c := make([]Set, len(sets))
	for i := range sets {
		c[i] = sets[i].Clone()
	}
	return c
}

// PendingExerciseHandoff is the staging value passed from the exercise detail
// flow to the workout creation flow.
type PendingExerciseHandoff struct {
	Exercise *Exercise `json:"exercise,omitempty"`
	Sets     []Set     `json:"sets"`
}

func (h PendingExerciseHandoff) IsEmpty() bool {
	return h.Exercise == nil
}

func (h PendingExerciseHandoff) Clone() PendingExerciseHandoff {
	c := PendingExerciseHandoff{
		Sets: CloneSets(h.Sets),
	}
	if h.Exercise != nil {
		ex := h.Exercise.Clone()
		c.Exercise = &ex
	}
	return c
}
