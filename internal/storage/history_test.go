package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

func savedSession(t *testing.T, store *Store, routineID, userID int) *domain.RoutineHistory {
	t.Helper()
	date := time.Date(2026, time.March, 9, 18, 30, 0, 0, time.UTC)
	duration := 45.0
	session := &domain.RoutineHistory{
		RoutineID: &routineID,
		UserID:    &userID,
		Date:      &date,
		Duration:  &duration,
	}
	if _, err := store.SaveRoutineHistory(session); err != nil {
		t.Fatalf("SaveRoutineHistory() returned an unexpected error: %v", err)
	}
	return session
}

func TestSaveRoutineHistory(t *testing.T) {
	store := testStore(t)

	routine := buildRoutine(t, store, "Logged", "Push-Up")
	routineID, err := store.SaveRoutine(routine)
	if err != nil {
		t.Fatalf("SaveRoutine() returned an unexpected error: %v", err)
	}
	userID, err := store.CreateUser("Alex")
	if err != nil {
		t.Fatalf("CreateUser() returned an unexpected error: %v", err)
	}

	session := savedSession(t, store, routineID, userID)
	if session.ID == nil || *session.ID == 0 {
		t.Fatal("Expected SaveRoutineHistory to assign a session id")
	}

	sessions, err := store.RoutineHistoryForRoutine(routineID)
	if err != nil {
		t.Fatalf("RoutineHistoryForRoutine() returned an unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, but got %d", len(sessions))
	}
	got := sessions[0]
	if got.ID == nil || *got.ID != *session.ID {
		t.Error("Expected the stored session id to round-trip")
	}
	if got.Date == nil || !got.Date.Equal(*session.Date) {
		t.Error("Expected the session date to round-trip")
	}
	if got.Duration == nil || *got.Duration != 45.0 {
		t.Error("Expected the session duration to round-trip")
	}
}

func TestSaveExerciseSetRequiresSavedSession(t *testing.T) {
	store := testStore(t)

	set := domain.Set{SetNumber: 1, Reps: 10, Weight: 40}
	var verr *ValidationError

	if err := store.SaveExerciseSet(nil, 4, set); !errors.As(err, &verr) {
		t.Fatalf("Expected a ValidationError for a nil session, got %v", err)
	}

	routineID := 1
	unsaved := &domain.RoutineHistory{RoutineID: &routineID}
	if err := store.SaveExerciseSet(unsaved, 4, set); !errors.As(err, &verr) {
		t.Fatalf("Expected a ValidationError for an unsaved session, got %v", err)
	}
}

func TestExerciseHistoryGroupsBySession(t *testing.T) {
	store := testStore(t)

	routine := buildRoutine(t, store, "Logged", "Push-Up")
	routineID, err := store.SaveRoutine(routine)
	if err != nil {
		t.Fatalf("SaveRoutine() returned an unexpected error: %v", err)
	}
	userID, err := store.CreateUser("Alex")
	if err != nil {
		t.Fatalf("CreateUser() returned an unexpected error: %v", err)
	}

	const exerciseID = 4 // Push-Up

	first := savedSession(t, store, routineID, userID)
	for _, reps := range []int{12, 10, 8} {
		set := domain.Set{Reps: reps, Weight: 0}
		if err := store.SaveExerciseSet(first, exerciseID, set); err != nil {
			t.Fatalf("SaveExerciseSet() returned an unexpected error: %v", err)
		}
	}

	second := savedSession(t, store, routineID, userID)
	if err := store.SaveExerciseSet(second, exerciseID, domain.Set{Reps: 15, Weight: 0}); err != nil {
		t.Fatalf("SaveExerciseSet() returned an unexpected error: %v", err)
	}

	history, err := store.ExerciseHistory(exerciseID)
	if err != nil {
		t.Fatalf("ExerciseHistory() returned an unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, one per session, but got %d", len(history))
	}

	entry := history[0]
	if entry.RoutineHistoryID != *first.ID {
		t.Errorf("Expected the first entry to belong to session %d, but got %d", *first.ID, entry.RoutineHistoryID)
	}
	if len(entry.Sets) != 3 {
		t.Fatalf("Expected 3 sets in the first session, but got %d", len(entry.Sets))
	}
	for i, wantReps := range []int{12, 10, 8} {
		if entry.Sets[i].SetNumber != i+1 {
			t.Errorf("Expected set number %d at position %d, but got %d", i+1, i, entry.Sets[i].SetNumber)
		}
		if entry.Sets[i].Reps != wantReps {
			t.Errorf("Expected %d reps at position %d, but got %d", wantReps, i, entry.Sets[i].Reps)
		}
	}

	if len(history[1].Sets) != 1 {
		t.Errorf("Expected 1 set in the second session, but got %d", len(history[1].Sets))
	}
}
