package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, nonNilExercises(handler.store.Exercises()), http.StatusOK)
}

func (handler *Handler) HandleSearchExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.search")
	defer span.End()

	query := r.URL.Query().Get("q")
	span.SetAttributes(attribute.String("query", query))
	writeJSON(w, nonNilExercises(handler.store.SearchExercises(query)), http.StatusOK)
}

func (handler *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	exercise, ok := handler.store.Exercise(id)
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	writeJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var exercise model.Exercise
	if err := decodeJSON(r, &exercise); err != nil {
		badRequest(w, err)
		return
	}
	if err := validateExercise(exercise); err != nil {
		badRequest(w, err)
		return
	}
	added, ok := handler.store.AddExercise(exercise)
	if !ok {
		http.Error(w, "exercise already exists", http.StatusConflict)
		return
	}
	log.Debugf("new exercise added: %s", added.ID)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	var exercise model.Exercise
	if err := decodeJSON(r, &exercise); err != nil {
		badRequest(w, err)
		return
	}
	exercise.ID = mux.Vars(r)["id"]
	if err := validateExercise(exercise); err != nil {
		badRequest(w, err)
		return
	}

	if !handler.store.UpdateExercise(exercise) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	writeJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted := handler.store.DeleteExercise(id)
	writeJSON(w, DeleteResponse{DeletedID: id, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleSetFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.store.SetExerciseFavorite(id, req.Favorite) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	exercise, _ := handler.store.Exercise(id)
	writeJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleExerciseStats(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	stats, err := handler.stats.ExerciseStats(r.Context(), id)
	if errors.Is(err, analytics.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to compute exercise stats [%s]: %s", id, err)
		http.Error(w, "failed to compute exercise stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, handler.stats.ExerciseHistory(r.Context(), id), http.StatusOK)
}

func validateExercise(exercise model.Exercise) error {
	if strings.TrimSpace(exercise.Name) == "" {
		return errors.New("exercise name empty")
	}
	lo, hi, ok := exercise.DeclaredWeightRange()
	if ok && lo > hi {
		return errors.New("exercise min weight above max weight")
	}
	if rest, ok := exercise.RestTimeValue(); ok && rest < 0 {
		return errors.New("exercise rest time negative")
	}
	return nil
}

func nonNilExercises(exercises []model.Exercise) []model.Exercise {
	if exercises == nil {
		return []model.Exercise{}
	}
	return exercises
}
