package store

import (
	"strings"
	"sync"
	"time"

	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Store is the single in-memory source of truth for the current session.
// All reads return copies, callers never get access to the live collections.
type Store struct {
	mu sync.RWMutex

	currentUser *model.User
	exercises   []model.Exercise
	friends     []model.Friend
	// catalog and user-created workouts share one collection, told apart by Origin
	workouts []model.Workout

	pending             *model.PendingExerciseHandoff
	showOnBoardingModal bool

	lastSetID uint64

	listenersMu    sync.Mutex
	listeners      map[int]Listener
	listenersOrder []int
	nextListenerID int

	// ability to inject time and id sources (for unit and dev testing)
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func New() *Store {
	return &Store{
		listeners: make(map[int]Listener),
		NowFunc:   time.Now,
		NewIDFunc: uuid.NewString,
	}
}

// Subscribe registers a listener invoked after every committed mutation.
// The returned func removes the listener; calling it more than once is fine.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = l
	s.listenersOrder = append(s.listenersOrder, id)

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, lid := range s.listenersOrder {
			if lid == id {
				s.listenersOrder = append(s.listenersOrder[:i], s.listenersOrder[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) notify(m Mutation) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listenersOrder))
	for _, id := range s.listenersOrder {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	log.Tracef("store mutation: %s [%s]", m.Kind, m.ID)
	for _, l := range listeners {
		l(m)
	}
}

// NextSetID returns a set id from a strictly increasing, millisecond timestamp based source.
func (s *Store) NextSetID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uint64(s.NowFunc().UnixMilli())
	if id <= s.lastSetID {
		id = s.lastSetID + 1
	}
	s.lastSetID = id
	return id
}

/*
	current user
*/

// SetCurrentUser replaces the current user snapshot.
func (s *Store) SetCurrentUser(user model.User) {
	s.mu.Lock()
	u := user
	s.currentUser = &u
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationCurrentUserSet, ID: user.ID})
}

func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return model.User{}, false
	}
	return *s.currentUser, true
}

// UpdateCurrentUser applies a settings patch to the current user.
// Returns false when no user has been set yet.
func (s *Store) UpdateCurrentUser(patch model.UserPatch) (model.User, bool) {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return model.User{}, false
	}
	patch.Apply(s.currentUser)
	updated := *s.currentUser
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationCurrentUserUpdated, ID: updated.ID})
	return updated, true
}

/*
	onboarding
*/

func (s *Store) SetShowOnBoardingModal(show bool) {
	s.mu.Lock()
	s.showOnBoardingModal = show
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationOnboardingModal})
}

func (s *Store) ShowOnBoardingModal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showOnBoardingModal
}

/*
	friends
*/

func (s *Store) ReplaceFriends(friends []model.Friend) {
	s.mu.Lock()
	s.friends = make([]model.Friend, len(friends))
	copy(s.friends, friends)
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationFriendsReplaced})
}

func (s *Store) Friends() []model.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	friends := make([]model.Friend, len(s.friends))
	copy(friends, s.friends)
	return friends
}

/*
	pending exercise handoff
*/

// SetPendingExerciseForWorkout stages an exercise with its chosen sets for the
// workout creation flow. A previously staged value is overwritten.
func (s *Store) SetPendingExerciseForWorkout(exercise model.Exercise, sets []model.Set) {
	ex := exercise.Clone()
	s.mu.Lock()
	s.pending = &model.PendingExerciseHandoff{
		Exercise: &ex,
		Sets:     model.CloneSets(sets),
	}
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationPendingExerciseSet, ID: exercise.ID})
}

// PendingExerciseForWorkout returns the staged value without consuming it.
func (s *Store) PendingExerciseForWorkout() (model.PendingExerciseHandoff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pending == nil {
		return model.PendingExerciseHandoff{}, false
	}
	return s.pending.Clone(), true
}

// TakePendingExerciseForWorkout consumes the staged value: it is returned and the slot is cleared.
func (s *Store) TakePendingExerciseForWorkout() (model.PendingExerciseHandoff, bool) {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return model.PendingExerciseHandoff{}, false
	}
	taken := *s.pending
	s.pending = nil
	s.mu.Unlock()

	var exID string
	if taken.Exercise != nil {
		exID = taken.Exercise.ID
	}
	s.notify(Mutation{Kind: MutationPendingExerciseTake, ID: exID})
	return taken, true
}

func (s *Store) ClearPendingExerciseForWorkout() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationPendingExerciseDrop})
}

/*
	exercises
*/

func (s *Store) ReplaceExercises(exercises []model.Exercise) {
	s.mu.Lock()
	s.exercises = make([]model.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		s.exercises = append(s.exercises, ex.Clone())
	}
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationExercisesReplaced})
}

// AddExercise adds an authored exercise, assigning it an id when it has none.
// It returns false and adds nothing when an exercise with the same id exists.
func (s *Store) AddExercise(exercise model.Exercise) (model.Exercise, bool) {
	ex := exercise.Clone()
	if ex.ID == "" {
		ex.ID = s.NewIDFunc()
	}

	s.mu.Lock()
	if s.exerciseIndex(ex.ID) >= 0 {
		s.mu.Unlock()
		return model.Exercise{}, false
	}
	s.exercises = append(s.exercises, ex)
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationExerciseAdded, ID: ex.ID})
	return ex.Clone(), true
}

// UpdateExercise replaces the exercise with the same id. Missing ids are a no-op.
func (s *Store) UpdateExercise(exercise model.Exercise) bool {
	s.mu.Lock()
	i := s.exerciseIndex(exercise.ID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.exercises[i] = exercise.Clone()
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationExerciseUpdated, ID: exercise.ID})
	return true
}

func (s *Store) SetExerciseFavorite(id string, favorite bool) bool {
	s.mu.Lock()
	i := s.exerciseIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.exercises[i].Favorite = favorite
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationExerciseUpdated, ID: id})
	return true
}

// DeleteExercise removes the exercise. Workouts referencing it keep the dangling
// reference, readers treat it as an unknown exercise.
func (s *Store) DeleteExercise(id string) bool {
	s.mu.Lock()
	i := s.exerciseIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
	s.mu.Unlock()

	s.notify(Mutation{Kind: MutationExerciseDeleted, ID: id})
	return true
}

func (s *Store) Exercise(id string) (model.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.exerciseIndex(id)
	if i < 0 {
		return model.Exercise{}, false
	}
	return s.exercises[i].Clone(), true
}

func (s *Store) Exercises() []model.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exercises := make([]model.Exercise, 0, len(s.exercises))
	for _, ex := range s.exercises {
		exercises = append(exercises, ex.Clone())
	}
	return exercises
}

// SearchExercises does a case-insensitive match of query against exercise names and muscle groups.
func (s *Store) SearchExercises(query string) []model.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	all := s.Exercises()
	if query == "" {
		return all
	}

	found := make([]model.Exercise, 0)
	for _, ex := range all {
		if strings.Contains(strings.ToLower(ex.Name), query) {
			found = append(found, ex)
			continue
		}
		for _, mg := range ex.MuscleGroups {
			if strings.Contains(strings.ToLower(mg), query) {
				found = append(found, ex)
				break
			}
		}
	}
	return found
}

func (s *Store) exerciseIndex(id string) int {
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			return i
		}
	}
	return -1
}
