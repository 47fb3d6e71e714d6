package generator

import (
	"path/filepath"
	"testing"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
	"github.com/Chicas-Apps-LLC/FitTrack/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	template := filepath.Join(dir, "template.db")
	if err := storage.CreateTemplate(template); err != nil {
		t.Fatalf("CreateTemplate() returned an unexpected error: %v", err)
	}
	store := storage.NewStore(storage.NewGateway(filepath.Join(dir, "data"), "FitTrack.db", template))
	if err := store.Open(); err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testUser(level, goal string, gymDays int, membership bool) *domain.User {
	return &domain.User{
		Name: "Alex",
		CurrentStats: domain.CurrentStats{
			FitnessLevel:  &level,
			GymMembership: &membership,
		},
		Goals: domain.Goals{
			GoalGymDays:  &gymDays,
			GoalExercise: &goal,
		},
	}
}

// bodyweightIDs are the seeded exercises with no equipment requirement.
var bodyweightIDs = map[int]bool{
	4: true, 17: true, 20: true, 21: true, 24: true,
	27: true, 36: true, 39: true, 40: true,
}

func TestMainLiftRoutinesHaveUniqueExercises(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelBeginner, domain.GoalStrength, 3, true)

	testCases := []struct {
		name    string
		routine domain.Routine
		want    int
	}{
		{"first", g.MainLiftOne(user), 5},
		{"second", g.MainLiftTwo(user), 5},
		{"third", g.MainLiftThree(user), 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.routine.Exercises) != tc.want {
				t.Fatalf("Expected %d exercises, but got %d", tc.want, len(tc.routine.Exercises))
			}
			seen := map[int]bool{}
			for _, ews := range tc.routine.Exercises {
				if seen[ews.Exercise.ID] {
					t.Errorf("Exercise %d appears twice in %s", ews.Exercise.ID, tc.routine.Name)
				}
				seen[ews.Exercise.ID] = true
			}
		})
	}
}

func TestBuildSetsStaysInScheme(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 7)

	levels := []string{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}
	goals := []string{domain.GoalStrength, domain.GoalWeightLoss, domain.GoalCardio}
	for _, level := range levels {
		for _, goal := range goals {
			user := testUser(level, goal, 3, true)
			sc, ok := schemeFor(level, goal)
			if !ok {
				t.Fatalf("Expected a scheme for %s/%s", level, goal)
			}

			for i := 0; i < 25; i++ {
				sets := g.buildSets(user)
				if len(sets) < sc.Sets.Min || len(sets) > sc.Sets.Max {
					t.Fatalf("Expected %d-%d sets for %s/%s, but got %d",
						sc.Sets.Min, sc.Sets.Max, level, goal, len(sets))
				}
				for j, set := range sets {
					if set.SetNumber != j+1 {
						t.Fatalf("Expected set number %d, but got %d", j+1, set.SetNumber)
					}
					if set.Reps < sc.Reps.Min || set.Reps > sc.Reps.Max {
						t.Fatalf("Expected %d-%d reps for %s/%s, but got %d",
							sc.Reps.Min, sc.Reps.Max, level, goal, set.Reps)
					}
					if set.Weight != 0 {
						t.Fatalf("Expected weight 0 before intensity conversion, but got %v", set.Weight)
					}
				}
			}
		}
	}
}

func TestBuildSetsWithoutProfile(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)

	if sets := g.buildSets(nil); sets != nil {
		t.Errorf("Expected no sets for a nil user, but got %d", len(sets))
	}
	if sets := g.buildSets(&domain.User{Name: "Alex"}); sets != nil {
		t.Errorf("Expected no sets for a user without a profile, but got %d", len(sets))
	}
	if sets := g.buildSets(testUser("elite", domain.GoalStrength, 3, true)); sets != nil {
		t.Errorf("Expected no sets for an unknown level, but got %d", len(sets))
	}
}

func TestChooseAndCreateRoutinesStrength(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelBeginner, domain.GoalStrength, 2, true)

	saved := g.ChooseAndCreateRoutines(user)
	if len(saved) != 4 {
		t.Fatalf("Expected the 4 split routines, but got %d", len(saved))
	}

	wantNames := []string{
		"Chest/Shoulders/Triceps",
		"Quads/Calves",
		"Back/Biceps",
		"Hamstrings/Glutes",
	}
	for i, name := range wantNames {
		if saved[i].Name != name {
			t.Errorf("Expected routine '%s' at position %d, but got '%s'", name, i, saved[i].Name)
		}
		if _, err := store.RoutineByName(name); err != nil {
			t.Errorf("Expected routine '%s' to be persisted, got error: %v", name, err)
		}
	}

	// Each split round-trips with a beginner strength scheme on every
	// entry. Chest/Shoulders/Triceps carries the incline press twice (once
	// for chest, once for front delts), so it also checks that repeated
	// exercises keep per-slot schemes after the save.
	wantCounts := map[string]int{
		"Chest/Shoulders/Triceps": 8,
		"Quads/Calves":            5,
		"Back/Biceps":             8,
		"Hamstrings/Glutes":       5,
	}
	for name, wantCount := range wantCounts {
		routine, err := store.RoutineByName(name)
		if err != nil {
			t.Fatalf("RoutineByName(%q) returned an unexpected error: %v", name, err)
		}
		withSets, err := store.ExercisesWithSetsForRoutine(routine.ID)
		if err != nil {
			t.Fatalf("ExercisesWithSetsForRoutine(%q) returned an unexpected error: %v", name, err)
		}
		if len(withSets) != wantCount {
			t.Fatalf("Expected %d exercises in %s, but got %d", wantCount, name, len(withSets))
		}
		for _, ews := range withSets {
			if len(ews.Sets) < 2 || len(ews.Sets) > 3 {
				t.Errorf("Expected 2-3 sets for '%s' in %s, but got %d", ews.Exercise.Name, name, len(ews.Sets))
			}
			for _, set := range ews.Sets {
				if set.Reps < 4 || set.Reps > 6 {
					t.Errorf("Expected 4-6 reps for '%s' in %s, but got %d", ews.Exercise.Name, name, set.Reps)
				}
			}
		}
	}

	cst, err := store.RoutineByName("Chest/Shoulders/Triceps")
	if err != nil {
		t.Fatalf("RoutineByName() returned an unexpected error: %v", err)
	}
	withSets, err := store.ExercisesWithSetsForRoutine(cst.ID)
	if err != nil {
		t.Fatalf("ExercisesWithSetsForRoutine() returned an unexpected error: %v", err)
	}
	inclineSlots := 0
	for _, ews := range withSets {
		if ews.Exercise.Name == "Incline Dumbbell Press" {
			inclineSlots++
		}
	}
	if inclineSlots != 2 {
		t.Errorf("Expected the incline press in 2 slots, but got %d", inclineSlots)
	}
}

func TestChooseAndCreateRoutinesCardio(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelIntermediate, domain.GoalCardio, 5, true)

	saved := g.ChooseAndCreateRoutines(user)
	if len(saved) != 3 {
		t.Fatalf("Expected 3 cardio routines, but got %d", len(saved))
	}
	for i, name := range []string{"Generated Routine 1", "Generated Routine 2", "Generated Routine 3"} {
		if saved[i].Name != name {
			t.Errorf("Expected routine '%s' at position %d, but got '%s'", name, i, saved[i].Name)
		}
	}
}

func TestChooseAndCreateRoutinesWeightLoss(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelBeginner, domain.GoalWeightLoss, 4, true)

	saved := g.ChooseAndCreateRoutines(user)
	if len(saved) != 0 {
		t.Fatalf("Expected no weight-loss routines yet, but got %d", len(saved))
	}
	routines, err := store.AllRoutines()
	if err != nil {
		t.Fatalf("AllRoutines() returned an unexpected error: %v", err)
	}
	if len(routines) != 0 {
		t.Errorf("Expected nothing persisted, but got %d routines", len(routines))
	}
}

func TestChooseAndCreateRoutinesWithoutMembership(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelBeginner, domain.GoalStrength, 3, false)

	saved := g.ChooseAndCreateRoutines(user)
	if len(saved) != 3 {
		t.Fatalf("Expected one bodyweight routine per gym day, but got %d", len(saved))
	}
	for _, routine := range saved {
		if routine.Name != "Bodyweight Routine" {
			t.Errorf("Expected 'Bodyweight Routine', but got '%s'", routine.Name)
		}
		if len(routine.Exercises) == 0 || len(routine.Exercises) > 5 {
			t.Errorf("Expected 1-5 exercises, but got %d", len(routine.Exercises))
		}
		for _, ews := range routine.Exercises {
			if !bodyweightIDs[ews.Exercise.ID] {
				t.Errorf("Exercise %d ('%s') needs equipment", ews.Exercise.ID, ews.Exercise.Name)
			}
		}
	}
}

func TestChooseAndCreateRoutinesWithoutGoals(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)

	if saved := g.ChooseAndCreateRoutines(nil); saved != nil {
		t.Errorf("Expected nil for a nil user, but got %d routines", len(saved))
	}
	if saved := g.ChooseAndCreateRoutines(&domain.User{Name: "Alex"}); saved != nil {
		t.Errorf("Expected nil without goal gym days, but got %d routines", len(saved))
	}
}

func TestBodyweightRoutine(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 3)
	user := testUser(domain.LevelBeginner, domain.GoalStrength, 3, false)

	routine := g.BodyweightRoutine(user)
	if routine.Name != "Bodyweight Routine" {
		t.Fatalf("Expected 'Bodyweight Routine', but got '%s'", routine.Name)
	}
	if len(routine.Exercises) != 5 {
		t.Fatalf("Expected the routine to be capped at 5 exercises, but got %d", len(routine.Exercises))
	}
	for _, ews := range routine.Exercises {
		if !bodyweightIDs[ews.Exercise.ID] {
			t.Errorf("Exercise %d ('%s') needs equipment", ews.Exercise.ID, ews.Exercise.Name)
		}
		if len(ews.Sets) == 0 {
			t.Errorf("Expected a set scheme for '%s'", ews.Exercise.Name)
		}
	}
}

func TestStrengthRoutinesPrioritizeIncline(t *testing.T) {
	store := testStore(t)
	g := NewSeeded(store, 1)
	user := testUser(domain.LevelBeginner, domain.GoalStrength, 2, true)

	routines := g.StrengthRoutines(user)
	if len(routines) != 4 {
		t.Fatalf("Expected 4 split routines, but got %d", len(routines))
	}
	cst := routines[0]
	if len(cst.Exercises) == 0 {
		t.Fatal("Expected the chest/shoulders/triceps split to have exercises")
	}
	if cst.Exercises[0].Exercise.Name != "Incline Dumbbell Press" {
		t.Errorf("Expected the incline press first, but got '%s'", cst.Exercises[0].Exercise.Name)
	}
}
