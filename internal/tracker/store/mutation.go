package store

// MutationKind names a committed store mutation.
type MutationKind string

const (
	MutationCurrentUserSet      MutationKind = "current_user_set"
	MutationCurrentUserUpdated  MutationKind = "current_user_updated"
	MutationWorkoutAdded        MutationKind = "workout_added"
	MutationWorkoutUpdated      MutationKind = "workout_updated"
	MutationWorkoutDeleted      MutationKind = "workout_deleted"
	MutationWorkoutCompleted    MutationKind = "workout_completed"
	MutationInviteResponded     MutationKind = "invite_responded"
	MutationCatalogReplaced     MutationKind = "catalog_replaced"
	MutationExerciseAdded       MutationKind = "exercise_added"
	MutationExerciseUpdated     MutationKind = "exercise_updated"
	MutationExerciseDeleted     MutationKind = "exercise_deleted"
	MutationExercisesReplaced   MutationKind = "exercises_replaced"
	MutationFriendsReplaced     MutationKind = "friends_replaced"
	MutationPendingExerciseSet  MutationKind = "pending_exercise_set"
	MutationPendingExerciseTake MutationKind = "pending_exercise_taken"
	MutationPendingExerciseDrop MutationKind = "pending_exercise_cleared"
	MutationOnboardingModal     MutationKind = "onboarding_modal"
)

func (mk MutationKind) String() string {
	return string(mk)
}

// Mutation is delivered to listeners after it has been committed.
// ID is the id of the affected entity, when there is one.
type Mutation struct {
	Kind MutationKind
	ID   string
}

// Listener is called synchronously after each committed mutation, outside the store lock,
// so it is free to query the store again.
type Listener func(m Mutation)
