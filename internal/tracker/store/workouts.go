package store

import (
	"github.com/2beens/gymtracker/internal/tracker/model"
)

// AddUserWorkout appends a new user-created workout under a fresh id.
// The caller's value is copied, the stored workout shares no memory with it.
func (s *Store) AddUserWorkout(workout model.Workout) model.Workout {
	return s.addWorkout(model.OriginUser, workout, true)
}

// AddCatalogWorkout adds a workout to the catalog, keeping its id if it has one.
func (s *Store) AddCatalogWorkout(workout model.Workout) model.Workout {
	return s.addWorkout(model.OriginCatalog, workout, workout.ID == "")
}

func (s *Store) addWorkout(origin model.Origin, workout model.Workout, newID bool) model.Workout {
	w := workout.Clone()
	w.Origin = origin
	if newID {
		w.ID = s.NewIDFunc()
	}

	s.mu.Lock()
	s.workouts = append(s.workouts, w)
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationWorkoutAdded, ID: w.ID})
	return w.Clone()
}

// ReplaceCatalog drops all catalog workouts and stores the given ones.
// User-created workouts are kept.
func (s *Store) ReplaceCatalog(workouts []model.Workout) {
	s.mu.Lock()
	kept := make([]model.Workout, 0, len(s.workouts)+len(workouts))
	for _, w := range s.workouts {
		if w.Origin != model.OriginCatalog {
			kept = append(kept, w)
		}
	}
	for _, w := range workouts {
		c := w.Clone()
		c.Origin = model.OriginCatalog
		if c.ID == "" {
			c.ID = s.NewIDFunc()
		}
		kept = append(kept, c)
	}
	s.workouts = kept
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationCatalogReplaced})
}

// UpdateUserWorkout merges patch into the user workout with the given id.
// A missing id is not an error, it returns false and nothing changes.
func (s *Store) UpdateUserWorkout(id string, patch model.WorkoutPatch) bool {
	return s.updateWorkout(model.OriginUser, id, MutationWorkoutUpdated, patch.Apply)
}

// MarkWorkoutAsCompleted completes a catalog workout and stamps the completion time.
func (s *Store) MarkWorkoutAsCompleted(id string) bool {
	return s.updateWorkout(model.OriginCatalog, id, MutationWorkoutCompleted, func(w *model.Workout) {
		now := s.NowFunc()
		w.Completed = true
		w.CompletedAt = &now
	})
}

// RespondToInvite sets the status of a participant. The workout is looked up
// the same way as Workout does: user-created first, then catalog.
func (s *Store) RespondToInvite(workoutID, userID string, status model.ParticipantStatus) bool {
	s.mu.Lock()
	i := s.lookupIndex(workoutID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	w := &s.workouts[i]
	found := false
	for p := range w.Participants {
		if w.Participants[p].UserID == userID {
			w.Participants[p].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(Mutation{Kind: MutationInviteResponded, ID: workoutID})
	return true
}

func (s *Store) updateWorkout(origin model.Origin, id string, kind MutationKind, apply func(w *model.Workout)) bool {
	s.mu.Lock()
	i := s.workoutIndex(origin, id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	apply(&s.workouts[i])
	// the id and the origin are not patchable
	s.workouts[i].ID = id
	s.workouts[i].Origin = origin
	s.mu.Unlock()

	s.notify(Mutation{Kind: kind, ID: id})
	return true
}

// DeleteUserWorkout removes a user-created workout. Deleting a missing id is a no-op.
func (s *Store) DeleteUserWorkout(id string) bool {
	return s.deleteWorkout(model.OriginUser, id)
}

// DeleteWorkout removes a catalog workout. Deleting a missing id is a no-op.
func (s *Store) DeleteWorkout(id string) bool {
	return s.deleteWorkout(model.OriginCatalog, id)
}

func (s *Store) deleteWorkout(origin model.Origin, id string) bool {
	s.mu.Lock()
	i := s.workoutIndex(origin, id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationWorkoutDeleted, ID: id})
	return true
}

// UserWorkouts returns user-created workouts in creation order.
func (s *Store) UserWorkouts() []model.Workout {
	return s.workoutsOf(model.OriginUser)
}

// CatalogWorkouts returns the catalog workouts in the order they were stored.
func (s *Store) CatalogWorkouts() []model.Workout {
	return s.workoutsOf(model.OriginCatalog)
}

// AllWorkouts returns the whole workout history, both origins.
func (s *Store) AllWorkouts() []model.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workouts := make([]model.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		workouts = append(workouts, w.Clone())
	}
	return workouts
}

// Workout finds a workout by id. User-created workouts shadow catalog entries with the same id.
func (s *Store) Workout(id string) (model.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.lookupIndex(id)
	if i < 0 {
		return model.Workout{}, false
	}
	return s.workouts[i].Clone(), true
}

// CatalogWorkout finds a catalog workout by id, ignoring user-created ones.
func (s *Store) CatalogWorkout(id string) (model.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.workoutIndex(model.OriginCatalog, id)
	if i < 0 {
		return model.Workout{}, false
	}
	return s.workouts[i].Clone(), true
}

// ExerciseWithHistory returns the exercise and the whole workout history read
// under one lock, so both come from the same store state.
func (s *Store) ExerciseWithHistory(exerciseID string) (model.Exercise, []model.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.exerciseIndex(exerciseID)
	if i < 0 {
		return model.Exercise{}, nil, false
	}
	workouts := make([]model.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		workouts = append(workouts, w.Clone())
	}
	return s.exercises[i].Clone(), workouts, true
}

func (s *Store) workoutsOf(origin model.Origin) []model.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workouts := make([]model.Workout, 0)
	for _, w := range s.workouts {
		if w.Origin == origin {
			workouts = append(workouts, w.Clone())
		}
	}
	return workouts
}

func (s *Store) lookupIndex(id string) int {
	if i := s.workoutIndex(model.OriginUser, id); i >= 0 {
		return i
	}
	return s.workoutIndex(model.OriginCatalog, id)
}

func (s *Store) workoutIndex(origin model.Origin, id string) int {
	for i := range s.workouts {
		if s.workouts[i].Origin == origin && s.workouts[i].ID == id {
			return i
		}
	}
	return -1
}
