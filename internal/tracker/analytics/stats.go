package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/2beens/gymtracker/internal/tracker/model"
)

const (
	defaultSetsPerWorkout = 3
	defaultRepsRange      = "8-12"
	defaultWeightRange    = "60-80 кг"
	defaultRest           = "2-3 сек"
	unspecifiedMuscle     = "Не указано"
)

// Difficulty can be one of:
//   - Легкий (easy)
//   - Средний (medium)
//   - Сложный (hard)
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Легкий"
	DifficultyMedium Difficulty = "Средний"
	DifficultyHard   Difficulty = "Сложный"
)

func (d Difficulty) String() string {
	return string(d)
}

// HistorySet is a set as it was performed in a workout, numbered from 1.
type HistorySet struct {
	Number int `json:"number"`
	model.Set
}

// WorkoutGroup holds the sets done for one exercise within one workout.
type WorkoutGroup struct {
	WorkoutID    string       `json:"workoutId"`
	WorkoutTitle string       `json:"workoutTitle"`
	WorkoutDate  time.Time    `json:"workoutDate"`
	Sets         []HistorySet `json:"sets"`
}

// ExerciseStats is the human facing summary of an exercise history.
type ExerciseStats struct {
	ExerciseID   string         `json:"exerciseId"`
	Sets         int            `json:"sets"` // average sets per workout
	TotalSets    int            `json:"totalSets"`
	Reps         string         `json:"reps"`
	Weight       string         `json:"weight"`
	Rest         string         `json:"rest"`
	Difficulty   Difficulty     `json:"difficulty"`
	Score        int            `json:"score"`
	MuscleGroups []string       `json:"muscleGroups"`
	History      []WorkoutGroup `json:"history"`
}

// Compute derives the exercise stats from the given workout history.
// It is a pure function: the same input always gives the same output, and any
// exercise with any history (including none) yields a complete result.
func Compute(exercise model.Exercise, workouts []model.Workout) ExerciseStats {
	history := History(exercise.ID, workouts)

	var pool []model.Set
	for _, g := range history {
		for _, hs := range g.Sets {
			pool = append(pool, hs.Set)
		}
	}

	totalSets := len(pool)
	avgSetsPerWorkout := defaultSetsPerWorkout
	if len(history) > 0 {
		avgSetsPerWorkout = int(round(float64(totalSets) / float64(len(history))))
	}

	reps := collect(pool, model.Set.RepsValue)
	weights := collect(pool, model.Set.WeightValue)
	durations := collect(pool, model.Set.DurationValue)

	repsRange := defaultRepsRange
	var avgReps *float64
	if len(reps) > 0 {
		lo, hi := minMax(reps)
		repsRange = formatNumber(lo) + "-" + formatNumber(hi)
		r := round(mean(reps))
		avgReps = &r
	}

	var avgWeight, histMaxWeight *float64
	if len(weights) > 0 {
		w := mean(weights)
		avgWeight = &w
		_, hi := minMax(weights)
		histMaxWeight = &hi
	}

	declaredMin, declaredMax, hasDeclaredRange := exercise.DeclaredWeightRange()
	var weightRange string
	switch {
	case hasDeclaredRange:
		weightRange = fmt.Sprintf("%s-%s кг", formatNumber(declaredMin), formatNumber(declaredMax))
	case len(weights) > 0:
		lo, hi := minMax(weights)
		weightRange = fmt.Sprintf("%s-%s кг", formatNumber(lo), formatNumber(hi))
	default:
		weightRange = defaultWeightRange
	}

	restTime, hasRestTime := exercise.RestTimeValue()
	rest := defaultRest
	if hasRestTime {
		rest = formatNumber(restTime) + " сек"
	}

	var avgDuration *float64
	if len(durations) > 0 {
		d := mean(durations)
		avgDuration = &d
	}

	score := difficultyScore(scoreInput{
		avgWeight:         avgWeight,
		histMaxWeight:     histMaxWeight,
		hasDeclaredRange:  hasDeclaredRange,
		declaredMin:       declaredMin,
		declaredMax:       declaredMax,
		avgReps:           avgReps,
		restTime:          restTime,
		hasRestTime:       hasRestTime,
		avgDuration:       avgDuration,
		avgSetsPerWorkout: avgSetsPerWorkout,
	})

	muscleGroups := []string{unspecifiedMuscle}
	if len(exercise.MuscleGroups) > 0 {
		muscleGroups = make([]string, len(exercise.MuscleGroups))
		copy(muscleGroups, exercise.MuscleGroups)
	}

	return ExerciseStats{
		ExerciseID:   exercise.ID,
		Sets:         avgSetsPerWorkout,
		TotalSets:    totalSets,
		Reps:         repsRange,
		Weight:       weightRange,
		Rest:         rest,
		Difficulty:   DifficultyForScore(score),
		Score:        score,
		MuscleGroups: muscleGroups,
		History:      history,
	}
}

// History returns one group per workout containing the exercise, most recent first.
// Several entries of the same exercise inside one workout are merged into one group.
func History(exerciseID string, workouts []model.Workout) []WorkoutGroup {
	groups := make([]WorkoutGroup, 0)
	for _, w := range workouts {
		if !w.ContainsExercise(exerciseID) {
			continue
		}
		g := WorkoutGroup{
			WorkoutID:    w.ID,
			WorkoutTitle: w.Title,
			WorkoutDate:  w.Date,
			Sets:         make([]HistorySet, 0),
		}
		for _, we := range w.Exercises {
			if we.ExerciseID != exerciseID {
				continue
			}
			for _, set := range we.Sets {
				g.Sets = append(g.Sets, HistorySet{
					Number: len(g.Sets) + 1,
					Set:    set.Clone(),
				})
			}
		}
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].WorkoutDate.After(groups[j].WorkoutDate)
	})
	return groups
}

type scoreInput struct {
	avgWeight     *float64
	histMaxWeight *float64

	hasDeclaredRange bool
	declaredMin      float64
	declaredMax      float64

	avgReps *float64

	restTime    float64
	hasRestTime bool

	avgDuration *float64

	avgSetsPerWorkout int
}

// difficultyScore adds up independent contributions of weight, reps, rest, duration and volume.
func difficultyScore(in scoreInput) int {
	score := 0

	if in.avgWeight != nil {
		var ratio *float64
		switch {
		case in.hasDeclaredRange:
			r := (*in.avgWeight - in.declaredMin) / math.Max(1, in.declaredMax-in.declaredMin)
			ratio = &r
		case in.histMaxWeight != nil && *in.histMaxWeight != 0:
			r := *in.avgWeight / *in.histMaxWeight
			ratio = &r
		}
		if ratio != nil {
			switch {
			case *ratio >= 0.85:
				score += 2
			case *ratio >= 0.60:
				score++
			}
		}
	} else {
		// no weight data at all counts as moderate
		score++
	}

	if in.avgReps != nil {
		score += repsContribution(*in.avgReps)
	}

	if in.hasRestTime {
		switch {
		case in.restTime <= 45:
			score += 2
		case in.restTime <= 90:
			score++
		case in.restTime >= 150:
			score--
		}
	}

	if in.avgDuration != nil && *in.avgDuration >= 90 {
		score++
	}

	switch {
	case in.avgSetsPerWorkout >= 5:
		score++
	case in.avgSetsPerWorkout <= 2:
		score--
	}

	return score
}

func repsContribution(avgReps float64) int {
	switch {
	case avgReps <= 5:
		return 2
	case avgReps <= 10:
		return 1
	case avgReps >= 15:
		return -1
	default:
		return 0
	}
}

// DifficultyForScore maps a difficulty score to its label, checking the highest threshold first.
func DifficultyForScore(score int) Difficulty {
	switch {
	case score >= 5:
		return DifficultyHard
	case score >= 2:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

func collect(sets []model.Set, value func(model.Set) (float64, bool)) []float64 {
	var values []float64
	for _, s := range sets {
		if v, ok := value(s); ok {
			values = append(values, v)
		}
	}
	return values
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// round rounds half up, e.g. 2.5 -> 3 and -2.5 -> -2.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// formatNumber renders the shortest decimal form: 60 -> "60", 62.5 -> "62.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
