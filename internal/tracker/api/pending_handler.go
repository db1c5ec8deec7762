package api

import (
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/tracker/model"
)

type PendingExerciseRequest struct {
	Exercise *model.Exercise `json:"exercise"`
	Sets     []SetRequest    `json:"sets"`
}

func (handler *Handler) HandleGetPendingExercise(w http.ResponseWriter, r *http.Request) {
	handoff, ok := handler.store.PendingExerciseForWorkout()
	if !ok {
		http.Error(w, "no pending exercise", http.StatusNotFound)
		return
	}
	writeJSON(w, handoff, http.StatusOK)
}

func (handler *Handler) HandleSetPendingExercise(w http.ResponseWriter, r *http.Request) {
	var req PendingExerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if req.Exercise == nil {
		badRequest(w, errors.New("pending exercise missing"))
		return
	}

	if err := validateSets(req.Sets); err != nil {
		badRequest(w, err)
		return
	}

	sets := make([]model.Set, 0, len(req.Sets))
	for _, s := range req.Sets {
		sets = append(sets, s.toSet(handler.store.NextSetID()))
	}

	handler.store.SetPendingExerciseForWorkout(*req.Exercise, sets)
	handoff, _ := handler.store.PendingExerciseForWorkout()
	writeJSON(w, handoff, http.StatusOK)
}

func (handler *Handler) HandleTakePendingExercise(w http.ResponseWriter, r *http.Request) {
	handoff, ok := handler.store.TakePendingExerciseForWorkout()
	if !ok {
		http.Error(w, "no pending exercise", http.StatusNotFound)
		return
	}
	writeJSON(w, handoff, http.StatusOK)
}

func (handler *Handler) HandleClearPendingExercise(w http.ResponseWriter, r *http.Request) {
	handler.store.ClearPendingExerciseForWorkout()
	w.WriteHeader(http.StatusNoContent)
}
