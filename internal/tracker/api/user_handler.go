package api

import (
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	log "github.com/sirupsen/logrus"
)

type OnboardingResponse struct {
	ShowModal bool `json:"showModal"`
}

func (handler *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.get")
	defer span.End()

	user, ok := handler.store.CurrentUser()
	if !ok {
		http.Error(w, "current user not set", http.StatusNotFound)
		return
	}
	writeJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.settings")
	defer span.End()

	var patch model.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		badRequest(w, err)
		return
	}

	user, ok := handler.store.UpdateCurrentUser(patch)
	if !ok {
		http.Error(w, "current user not set", http.StatusNotFound)
		return
	}
	log.Debugf("user settings updated: %s", user.ID)
	writeJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, OnboardingResponse{ShowModal: handler.store.ShowOnBoardingModal()}, http.StatusOK)
}

func (handler *Handler) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.complete")
	defer span.End()

	if err := handler.onboarder.CompleteOnboarding(ctx); err != nil {
		log.Errorf("failed to complete onboarding: %s", err)
		http.Error(w, "failed to complete onboarding", http.StatusInternalServerError)
		return
	}
	writeJSON(w, OnboardingResponse{ShowModal: handler.store.ShowOnBoardingModal()}, http.StatusOK)
}

func (handler *Handler) HandleListFriends(w http.ResponseWriter, r *http.Request) {
	friends := handler.store.Friends()
	if friends == nil {
		friends = []model.Friend{}
	}
	writeJSON(w, friends, http.StatusOK)
}
