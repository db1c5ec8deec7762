package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/model"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type trackerStore interface {
	CurrentUser() (model.User, bool)
	UpdateCurrentUser(patch model.UserPatch) (model.User, bool)
	ShowOnBoardingModal() bool
	Friends() []model.Friend

	Exercises() []model.Exercise
	Exercise(id string) (model.Exercise, bool)
	SearchExercises(query string) []model.Exercise
	AddExercise(exercise model.Exercise) (model.Exercise, bool)
	UpdateExercise(exercise model.Exercise) bool
	SetExerciseFavorite(id string, favorite bool) bool
	DeleteExercise(id string) bool

	AllWorkouts() []model.Workout
	UserWorkouts() []model.Workout
	CatalogWorkouts() []model.Workout
	Workout(id string) (model.Workout, bool)
	CatalogWorkout(id string) (model.Workout, bool)
	AddUserWorkout(workout model.Workout) model.Workout
	UpdateUserWorkout(id string, patch model.WorkoutPatch) bool
	DeleteUserWorkout(id string) bool
	DeleteWorkout(id string) bool
	MarkWorkoutAsCompleted(id string) bool
	RespondToInvite(workoutID, userID string, status model.ParticipantStatus) bool
	NextSetID() uint64

	SetPendingExerciseForWorkout(exercise model.Exercise, sets []model.Set)
	PendingExerciseForWorkout() (model.PendingExerciseHandoff, bool)
	TakePendingExerciseForWorkout() (model.PendingExerciseHandoff, bool)
	ClearPendingExerciseForWorkout()
}

type statsService interface {
	ExerciseStats(ctx context.Context, exerciseID string) (*analytics.ExerciseStats, error)
	ExerciseHistory(ctx context.Context, exerciseID string) []analytics.WorkoutGroup
}

type onboarder interface {
	CompleteOnboarding(ctx context.Context) error
}

type Handler struct {
	store     trackerStore
	stats     statsService
	onboarder onboarder

	// stamps created and invited times, replaceable in tests
	NowFunc func() time.Time
}

func NewHandler(store trackerStore, stats statsService, onboarder onboarder) *Handler {
	return &Handler{
		store:     store,
		stats:     stats,
		onboarder: onboarder,
		NowFunc:   time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/user", handler.HandleGetUser).Methods("GET", "OPTIONS").Name("get-user")
	r.HandleFunc("/user/settings", handler.HandleUpdateSettings).Methods("PATCH", "OPTIONS").Name("update-user-settings")
	r.HandleFunc("/onboarding", handler.HandleGetOnboarding).Methods("GET", "OPTIONS").Name("get-onboarding")
	r.HandleFunc("/onboarding/complete", handler.HandleCompleteOnboarding).Methods("POST", "OPTIONS").Name("complete-onboarding")
	r.HandleFunc("/friends", handler.HandleListFriends).Methods("GET", "OPTIONS").Name("list-friends")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/search", handler.HandleSearchExercises).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/exercises/{id}/favorite", handler.HandleSetFavorite).Methods("PUT", "OPTIONS").Name("favorite-exercise")
	r.HandleFunc("/exercises/{id}/stats", handler.HandleExerciseStats).Methods("GET", "OPTIONS").Name("exercise-stats")
	r.HandleFunc("/exercises/{id}/history", handler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/user", handler.HandleListUserWorkouts).Methods("GET", "OPTIONS").Name("list-user-workouts")
	r.HandleFunc("/workouts/user", handler.HandleAddUserWorkout).Methods("POST", "OPTIONS").Name("new-user-workout")
	r.HandleFunc("/workouts/user/{id}", handler.HandleUpdateUserWorkout).Methods("PATCH", "OPTIONS").Name("update-user-workout")
	r.HandleFunc("/workouts/user/{id}", handler.HandleDeleteUserWorkout).Methods("DELETE", "OPTIONS").Name("delete-user-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/complete", handler.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts/{id}/invite/respond", handler.HandleRespondToInvite).Methods("POST", "OPTIONS").Name("respond-to-invite")

	r.HandleFunc("/pending-exercise", handler.HandleGetPendingExercise).Methods("GET", "OPTIONS").Name("get-pending-exercise")
	r.HandleFunc("/pending-exercise", handler.HandleSetPendingExercise).Methods("PUT", "OPTIONS").Name("set-pending-exercise")
	r.HandleFunc("/pending-exercise", handler.HandleClearPendingExercise).Methods("DELETE", "OPTIONS").Name("clear-pending-exercise")
	r.HandleFunc("/pending-exercise/take", handler.HandleTakePendingExercise).Methods("POST", "OPTIONS").Name("take-pending-exercise")
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
	Deleted   bool   `json:"deleted"`
}

var errInvalidContentType = errors.New("invalid content type")

// decodeJSON reads a JSON request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		return errInvalidContentType
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}

func badRequest(w http.ResponseWriter, err error) {
	log.Tracef("bad request: %s", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}
