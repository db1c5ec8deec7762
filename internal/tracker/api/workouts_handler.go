package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type SetRequest struct {
	Reps     *float64 `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

func (s SetRequest) toSet(id uint64) model.Set {
	return model.Set{
		ID:       id,
		Reps:     s.Reps,
		Weight:   s.Weight,
		Duration: s.Duration,
		Distance: s.Distance,
	}
}

type WorkoutExerciseRequest struct {
	ExerciseID string       `json:"exerciseId"`
	Sets       []SetRequest `json:"sets"`
	Notes      string       `json:"notes,omitempty"`
}

// NewWorkoutRequest is the payload of the create workout form.
type NewWorkoutRequest struct {
	Title             string                   `json:"title"`
	Description       string                   `json:"description,omitempty"`
	Date              string                   `json:"date"`
	Time              string                   `json:"time"`
	Gym               string                   `json:"gym"`
	EstimatedDuration *int                     `json:"estimatedDuration,omitempty"`
	Exercises         []WorkoutExerciseRequest `json:"exercises"`
	FriendIDs         []string                 `json:"friendIds,omitempty"`
}

// UpdateWorkoutRequest carries the editable workout fields, nil ones are kept.
type UpdateWorkoutRequest struct {
	Title             *string                  `json:"title,omitempty"`
	Description       *string                  `json:"description,omitempty"`
	Date              *string                  `json:"date,omitempty"`
	Time              *string                  `json:"time,omitempty"`
	Gym               *string                  `json:"gym,omitempty"`
	EstimatedDuration *int                     `json:"estimatedDuration,omitempty"`
	Exercises         []WorkoutExerciseRequest `json:"exercises,omitempty"`
}

type InviteResponseRequest struct {
	UserID string                  `json:"userId,omitempty"`
	Status model.ParticipantStatus `json:"status"`
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	origin := model.Origin(r.URL.Query().Get("origin"))
	if origin != "" && !origin.IsValid() {
		badRequest(w, fmt.Errorf("unknown workout origin: %s", origin))
		return
	}

	var workouts []model.Workout
	switch origin {
	case model.OriginUser:
		workouts = handler.store.UserWorkouts()
	case model.OriginCatalog:
		workouts = handler.store.CatalogWorkouts()
	default:
		workouts = handler.store.AllWorkouts()
	}
	writeJSON(w, nonNilWorkouts(workouts), http.StatusOK)
}

func (handler *Handler) HandleListUserWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, nonNilWorkouts(handler.store.UserWorkouts()), http.StatusOK)
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, ok := handler.store.Workout(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleAddUserWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var req NewWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	date, err := handler.validateNewWorkout(req)
	if err != nil {
		badRequest(w, err)
		return
	}

	user, _ := handler.store.CurrentUser()
	workout := model.Workout{
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Date:              date,
		Time:              req.Time,
		Gym:               req.Gym,
		EstimatedDuration: req.EstimatedDuration,
		Exercises:         handler.workoutExercises(req.Exercises),
		Participants:      handler.invitedFriends(req.FriendIDs),
		CreatedBy:         user.ID,
		CreatedAt:         handler.NowFunc(),
	}

	added := handler.store.AddUserWorkout(workout)
	span.SetAttributes(attribute.String("workout.id", added.ID))
	log.Debugf("new user workout added: %s [%s]", added.ID, added.Title)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateUserWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var req UpdateWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	patch, err := handler.workoutPatch(req)
	if err != nil {
		badRequest(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.store.UpdateUserWorkout(id, patch) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	workout, _ := handler.store.Workout(id)
	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDeleteUserWorkout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted := handler.store.DeleteUserWorkout(id)
	writeJSON(w, DeleteResponse{DeletedID: id, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted := handler.store.DeleteWorkout(id)
	writeJSON(w, DeleteResponse{DeletedID: id, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !handler.store.MarkWorkoutAsCompleted(id) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	workout, _ := handler.store.CatalogWorkout(id)
	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleRespondToInvite(w http.ResponseWriter, r *http.Request) {
	var req InviteResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if !req.Status.IsValid() {
		badRequest(w, fmt.Errorf("invalid participant status: %s", req.Status))
		return
	}

	userID := req.UserID
	if userID == "" {
		user, ok := handler.store.CurrentUser()
		if !ok {
			http.Error(w, "current user not set", http.StatusNotFound)
			return
		}
		userID = user.ID
	}

	id := mux.Vars(r)["id"]
	if !handler.store.RespondToInvite(id, userID, req.Status) {
		http.Error(w, "invite not found", http.StatusNotFound)
		return
	}
	workout, _ := handler.store.Workout(id)
	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) validateNewWorkout(req NewWorkoutRequest) (time.Time, error) {
	if strings.TrimSpace(req.Title) == "" {
		return time.Time{}, errors.New("workout title empty")
	}
	if strings.TrimSpace(req.Gym) == "" {
		return time.Time{}, errors.New("workout gym empty")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid workout date [%s]: %w", req.Date, err)
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return time.Time{}, fmt.Errorf("invalid workout time [%s]: %w", req.Time, err)
	}
	if err := handler.validateExerciseRefs(req.Exercises); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func (handler *Handler) validateExerciseRefs(exercises []WorkoutExerciseRequest) error {
	for _, we := range exercises {
		if _, ok := handler.store.Exercise(we.ExerciseID); !ok {
			return fmt.Errorf("unknown exercise: %s", we.ExerciseID)
		}
		if err := validateSets(we.Sets); err != nil {
			return fmt.Errorf("exercise %s: %w", we.ExerciseID, err)
		}
	}
	return nil
}

var setMeasurements = []struct {
	name  string
	value func(model.Set) (float64, bool)
}{
	{name: "reps", value: model.Set.RepsValue},
	{name: "weight", value: model.Set.WeightValue},
	{name: "duration", value: model.Set.DurationValue},
	{name: "distance", value: model.Set.DistanceValue},
}

// validateSets rejects negative measurements, missing ones are fine.
func validateSets(sets []SetRequest) error {
	for i, req := range sets {
		set := req.toSet(0)
		for _, m := range setMeasurements {
			if v, ok := m.value(set); ok && v < 0 {
				return fmt.Errorf("set %d: negative %s", i+1, m.name)
			}
		}
	}
	return nil
}

func (handler *Handler) workoutPatch(req UpdateWorkoutRequest) (model.WorkoutPatch, error) {
	patch := model.WorkoutPatch{
		Description:       req.Description,
		Gym:               req.Gym,
		EstimatedDuration: req.EstimatedDuration,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return patch, errors.New("workout title empty")
		}
		patch.Title = &title
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return patch, fmt.Errorf("invalid workout date [%s]: %w", *req.Date, err)
		}
		patch.Date = &date
	}
	if req.Time != nil {
		if _, err := time.Parse(timeLayout, *req.Time); err != nil {
			return patch, fmt.Errorf("invalid workout time [%s]: %w", *req.Time, err)
		}
		patch.Time = req.Time
	}
	if req.Exercises != nil {
		if err := handler.validateExerciseRefs(req.Exercises); err != nil {
			return patch, err
		}
		patch.Exercises = handler.workoutExercises(req.Exercises)
	}
	return patch, nil
}

// workoutExercises keeps the submitted order and gives every set a fresh id.
func (handler *Handler) workoutExercises(reqs []WorkoutExerciseRequest) []model.WorkoutExercise {
	exercises := make([]model.WorkoutExercise, 0, len(reqs))
	for _, req := range reqs {
		sets := make([]model.Set, 0, len(req.Sets))
		for _, s := range req.Sets {
			sets = append(sets, s.toSet(handler.store.NextSetID()))
		}
		exercises = append(exercises, model.WorkoutExercise{
			ExerciseID: req.ExerciseID,
			Sets:       sets,
			Notes:      req.Notes,
		})
	}
	return exercises
}

// invitedFriends turns the selected friend ids into pending participants.
// Ids that are not among the current friends are skipped.
func (handler *Handler) invitedFriends(friendIDs []string) []model.WorkoutParticipant {
	if len(friendIDs) == 0 {
		return []model.WorkoutParticipant{}
	}

	friends := make(map[string]model.Friend)
	for _, f := range handler.store.Friends() {
		friends[f.ID] = f
	}

	now := handler.NowFunc()
	participants := make([]model.WorkoutParticipant, 0, len(friendIDs))
	for _, id := range friendIDs {
		friend, ok := friends[id]
		if !ok {
			log.Debugf("skipping invite for unknown friend: %s", id)
			continue
		}
		participants = append(participants, model.WorkoutParticipant{
			UserID: friend.ID,
			User: model.UserSnapshot{
				ID:    friend.ID,
				Name:  friend.Name,
				Photo: friend.Photo,
			},
			Status:    model.ParticipantPending,
			InvitedAt: now,
		})
	}
	return participants
}

func nonNilWorkouts(workouts []model.Workout) []model.Workout {
	if workouts == nil {
		return []model.Workout{}
	}
	return workouts
}
