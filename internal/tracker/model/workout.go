package model

import "time"

// Origin tells where a workout comes from. Catalog workouts are seeded from a
// shared source, user workouts are created in this session.
type Origin string

const (
	OriginCatalog Origin = "catalog"
	OriginUser    Origin = "user"
)

func (o Origin) String() string {
	return string(o)
}

func (o Origin) IsValid() bool {
	switch o {
	case OriginCatalog, OriginUser:
		return true
	default:
		return false
	}
}

// ParticipantStatus can be one of:
//   - pending
//   - accepted
//   - declined
type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "pending"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

func (ps ParticipantStatus) IsValid() bool {
	switch ps {
	case ParticipantPending, ParticipantAccepted, ParticipantDeclined:
		return true
	default:
		return false
	}
}

type WorkoutParticipant struct {
	UserID    string            `json:"userId"`
	User      UserSnapshot      `json:"user"`
	Status    ParticipantStatus `json:"status"`
	InvitedAt time.Time         `json:"invitedAt"`
}

type WorkoutExercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
	Notes      string `json:"notes,omitempty"`
}

type Workout struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description,omitempty"`
	Date              time.Time            `json:"date"`
	Time              string               `json:"time"` // HH:MM
	Gym               string               `json:"gym,omitempty"`
	EstimatedDuration *int                 `json:"estimatedDuration,omitempty"` // minutes
	Exercises         []WorkoutExercise    `json:"exercises"`
	Participants      []WorkoutParticipant `json:"participants"`
	Completed         bool                 `json:"completed"`
	CompletedAt       *time.Time           `json:"completedAt,omitempty"`
	CreatedBy         string               `json:"createdBy"`
	CreatedAt         time.Time            `json:"createdAt"`
	Origin            Origin               `json:"origin"`
}

// ContainsExercise reports whether any of the workout exercises references exerciseID.
func (w Workout) ContainsExercise(exerciseID string) bool {
	for _, we := range w.Exercises {
		if we.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

func (w Workout) Clone() Workout {
	c := w
	if w.EstimatedDuration != nil {
		d := *w.EstimatedDuration
		c.EstimatedDuration = &d
	}
	if w.CompletedAt != nil {
		t := *w.CompletedAt
		c.CompletedAt = &t
	}
	if w.Exercises != nil {
		c.Exercises = make([]WorkoutExercise, len(w.Exercises))
		for i, we := range w.Exercises {
			c.Exercises[i] = WorkoutExercise{
				ExerciseID: we.ExerciseID,
				Sets:       CloneSets(we.Sets),
				Notes:      we.Notes,
			}
		}
	}
	if w.Participants != nil {
		c.Participants = make([]WorkoutParticipant, len(w.Participants))
		copy(c.Participants, w.Participants)
	}
	return c
}

// WorkoutPatch is a partial workout update. Nil fields are left untouched,
// non-nil slices replace the existing ones.
type WorkoutPatch struct {
	Title             *string              `json:"title,omitempty"`
	Description       *string              `json:"description,omitempty"`
	Date              *time.Time           `json:"date,omitempty"`
	Time              *string              `json:"time,omitempty"`
	Gym               *string              `json:"gym,omitempty"`
	EstimatedDuration *int                 `json:"estimatedDuration,omitempty"`
	Exercises         []WorkoutExercise    `json:"exercises,omitempty"`
	Participants      []WorkoutParticipant `json:"participants,omitempty"`
	Completed         *bool                `json:"completed,omitempty"`
	CompletedAt       *time.Time           `json:"completedAt,omitempty"`
}

func (p WorkoutPatch) Apply(w *Workout) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Time != nil {
		w.Time = *p.Time
	}
	if p.Gym != nil {
		w.Gym = *p.Gym
	}
	if p.EstimatedDuration != nil {
		d := *p.EstimatedDuration
		w.EstimatedDuration = &d
	}
	if p.Exercises != nil {
		w.Exercises = Workout{Exercises: p.Exercises}.Clone().Exercises
	}
	if p.Participants != nil {
		w.Participants = make([]WorkoutParticipant, len(p.Participants))
		copy(w.Participants, p.Participants)
	}
	if p.Completed != nil {
		w.Completed = *p.Completed
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		w.CompletedAt = &t
	}
}
