// Package generator procedurally assembles workout routines from the
// exercise catalog, keyed by a user's fitness level and training goal.
package generator

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
	"github.com/Chicas-Apps-LLC/FitTrack/internal/storage"
)

// Muscle ids of the seeded catalog.
const (
	muscleChest          = 1
	muscleBack           = 2
	muscleBiceps         = 5
	muscleQuads          = 7
	muscleHamstrings     = 8
	muscleCalves         = 9
	muscleCore           = 10
	muscleGlutes         = 12
	muscleRhomboids      = 14
	muscleLats           = 15
	muscleBrachialis     = 17
	muscleFrontDelts     = 18
	muscleLateralDelts   = 19
	muscleRearDelts      = 20
	muscleTricepsLateral = 21
	muscleTricepsLong    = 22
)

// Generator builds routines against a store's exercise catalog. All store
// access goes through the schema access layer's query operations.
type Generator struct {
	store *storage.Store
	rng   *rand.Rand
}

// New returns a generator with a time-seeded RNG.
func New(store *storage.Store) *Generator {
	now := uint64(time.Now().UnixNano())
	return NewSeeded(store, now)
}

// NewSeeded returns a generator with a deterministic RNG.
func NewSeeded(store *storage.Store, seed uint64) *Generator {
	return &Generator{
		store: store,
		rng:   rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// category pairs an exercise fetch with the number of slots it may fill.
type category struct {
	fetch func() ([]domain.Exercise, error)
	limit int
}

// createRoutine assembles one routine from an ordered category list. When a
// category returns more candidates than its limit, a single candidate is
// drawn uniformly at random from the whole list (the limit caps the count,
// it is not a top-N filter). A duplicate exercise gets one replacement
// attempt from the catalog; when none is left the slot is dropped.
func (g *Generator) createRoutine(id int, name, description string, categories []category, user *domain.User) domain.Routine {
	var exercises []domain.ExerciseWithSets
	seen := map[int]bool{}
	var seenIDs []int

	for _, cat := range categories {
		candidates, err := cat.fetch()
		if err != nil {
			slog.Error("category fetch failed", "routine", name, "error", err)
			continue
		}
		if len(candidates) > cat.limit {
			candidates = []domain.Exercise{candidates[g.rng.IntN(len(candidates))]}
		}

		for _, ex := range candidates {
			chosen := ex
			if seen[ex.ID] {
				slog.Warn("duplicate exercise detected, fetching a replacement", "exercise", ex.Name)
				replacement, err := g.store.ReplacementExercise(seenIDs)
				if err != nil {
					if !errors.Is(err, storage.ErrNoDataFound) {
						slog.Error("replacement lookup failed", "error", err)
					}
					continue
				}
				chosen = *replacement
			}
			exercises = append(exercises, domain.ExerciseWithSets{
				Exercise: chosen,
				Sets:     g.buildSets(user),
			})
			seen[chosen.ID] = true
			seenIDs = append(seenIDs, chosen.ID)
		}
	}

	slog.Info("routine assembled", "name", name, "exercises", len(exercises))
	return domain.Routine{
		ID:          id,
		Name:        name,
		Description: &description,
		Exercises:   exercises,
	}
}

// buildSets generates a set scheme from the level x goal lookup. Reps and
// set count come from the table's ranges; the intensity percent is drawn
// too but not yet converted against a base lift, so the stored weight is 0.
func (g *Generator) buildSets(user *domain.User) []domain.Set {
	if user == nil || user.CurrentStats.FitnessLevel == nil || user.Goals.GoalExercise == nil {
		return nil
	}
	sc, ok := schemeFor(*user.CurrentStats.FitnessLevel, *user.Goals.GoalExercise)
	if !ok {
		return nil
	}

	numberOfSets := g.intIn(sc.Sets)
	sets := make([]domain.Set, 0, numberOfSets)
	for setNumber := 1; setNumber <= numberOfSets; setNumber++ {
		reps := g.intIn(sc.Reps)
		_ = g.floatIn(sc.Intensity)
		sets = append(sets, domain.Set{SetNumber: setNumber, Reps: reps, Weight: 0})
	}
	return sets
}

func (g *Generator) intIn(r intRange) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}

func (g *Generator) floatIn(r floatRange) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// MainLiftOne builds the first of the three fixed main-lift routines.
func (g *Generator) MainLiftOne(user *domain.User) domain.Routine {
	categories := []category{
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("slam") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("jump") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesByName("Squat") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesByEquipment(false) }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesByMuscle(muscleCore) }, limit: 1},
	}
	return g.createRoutine(100, "Generated Routine 1",
		"First routine for your first day at the gym!", categories, user)
}

// MainLiftTwo builds the second fixed main-lift routine.
func (g *Generator) MainLiftTwo(user *domain.User) domain.Routine {
	categories := []category{
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("row") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("pull") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("hinge") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("lunge") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("push") }, limit: 1},
	}
	return g.createRoutine(200, "Generated Routine 2",
		"Now that you know what we are trying to do, hit this one a little harder!", categories, user)
}

// MainLiftThree builds the third fixed main-lift routine.
func (g *Generator) MainLiftThree(user *domain.User) domain.Routine {
	categories := []category{
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("swing") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("hinge") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("pull") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("push") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("lunge") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesByMuscle(muscleCore) }, limit: 1},
	}
	return g.createRoutine(300, "Generated Routine 3",
		"Now that you know what we are trying to do, hit this one a little harder!", categories, user)
}

// GeneratedRoutine builds a general full-body routine under a caller-chosen
// name, left unpersisted (id 0).
func (g *Generator) GeneratedRoutine(name string, user *domain.User) domain.Routine {
	categories := []category{
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("push") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("back") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("pull") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("squat") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesWithKeyword("lunge") }, limit: 1},
		{fetch: func() ([]domain.Exercise, error) { return g.store.ExercisesByMuscle(muscleCore) }, limit: 1},
	}
	return g.createRoutine(0, name,
		"Now that you know what we are trying to do, hit this one a little harder!", categories, user)
}

// BodyweightRoutine samples up to five bodyweight exercises for users
// without gym access.
func (g *Generator) BodyweightRoutine(user *domain.User) domain.Routine {
	description := "A bodyweight-only workout routine."

	exercises, err := g.store.ExercisesByEquipment(false)
	if err != nil {
		slog.Error("bodyweight catalog fetch failed", "error", err)
		exercises = nil
	}
	if len(exercises) == 0 {
		slog.Warn("no bodyweight exercises found")
		empty := "No exercises found"
		return domain.Routine{Name: "Bodyweight Routine", Description: &empty}
	}

	if len(exercises) > 5 {
		g.rng.Shuffle(len(exercises), func(i, j int) {
			exercises[i], exercises[j] = exercises[j], exercises[i]
		})
		exercises = exercises[:5]
	}

	withSets := make([]domain.ExerciseWithSets, 0, len(exercises))
	for _, ex := range exercises {
		withSets = append(withSets, domain.ExerciseWithSets{Exercise: ex, Sets: g.buildSets(user)})
	}
	return domain.Routine{
		ID:          1000 + g.rng.IntN(9000),
		Name:        "Bodyweight Routine",
		Description: &description,
		Exercises:   withSets,
	}
}

// CardioRoutines returns the three fixed main-lift routines.
func (g *Generator) CardioRoutines(user *domain.User) []domain.Routine {
	return []domain.Routine{
		g.MainLiftOne(user),
		g.MainLiftTwo(user),
		g.MainLiftThree(user),
	}
}

// StrengthRoutines builds the four fixed split routines, each hand-curated
// by muscle group.
func (g *Generator) StrengthRoutines(user *domain.User) []domain.Routine {
	withSets := func(exercises []domain.Exercise) []domain.ExerciseWithSets {
		out := make([]domain.ExerciseWithSets, 0, len(exercises))
		for _, ex := range exercises {
			out = append(out, domain.ExerciseWithSets{Exercise: ex, Sets: g.buildSets(user)})
		}
		return out
	}

	// Chest/Shoulders/Triceps: three chest movements with an incline
	// variant prioritized first when present, one exercise per delt head,
	// two triceps heads.
	chest := g.muscleExercises(muscleChest)
	selectedChest := prefix(chest, 3)
	if incline := findIncline(chest); incline != nil {
		kept := selectedChest
		selectedChest = []domain.Exercise{*incline}
		for _, ex := range kept {
			if ex.ID != incline.ID {
				selectedChest = append(selectedChest, ex)
			}
		}
	}
	shoulders := firstOfEach(
		g.muscleExercises(muscleFrontDelts),
		g.muscleExercises(muscleLateralDelts),
		g.muscleExercises(muscleRearDelts),
	)
	triceps := firstOfEach(
		g.muscleExercises(muscleTricepsLateral),
		g.muscleExercises(muscleTricepsLong),
	)
	cstDesc := "Strength routine for CST"
	cst := domain.Routine{
		ID:          1,
		Name:        "Chest/Shoulders/Triceps",
		Description: &cstDesc,
		Exercises:   withSets(concat(selectedChest, shoulders, triceps)),
	}

	// Quads/Calves.
	qcDesc := "Strength routine for quads and calves"
	qc := domain.Routine{
		ID:          2,
		Name:        "Quads/Calves",
		Description: &qcDesc,
		Exercises: withSets(concat(
			prefix(g.muscleExercises(muscleQuads), 3),
			prefix(g.muscleExercises(muscleCalves), 2),
		)),
	}

	// Back/Biceps.
	bbDesc := "Strength routine for back and biceps"
	bb := domain.Routine{
		ID:          3,
		Name:        "Back/Biceps",
		Description: &bbDesc,
		Exercises: withSets(concat(
			prefix(g.muscleExercises(muscleLats), 1),
			prefix(g.muscleExercises(muscleRhomboids), 1),
			prefix(g.muscleExercises(muscleBack), 3),
			prefix(g.muscleExercises(muscleBiceps), 2),
			prefix(g.muscleExercises(muscleBrachialis), 1),
		)),
	}

	// Hamstrings/Glutes.
	hgDesc := "Strength routine for hamstrings and glutes"
	hg := domain.Routine{
		ID:          4,
		Name:        "Hamstrings/Glutes",
		Description: &hgDesc,
		Exercises: withSets(concat(
			prefix(g.muscleExercises(muscleHamstrings), 3),
			prefix(g.muscleExercises(muscleGlutes), 2),
		)),
	}

	return []domain.Routine{cst, qc, bb, hg}
}

// WeightLossRoutines is an intentional placeholder: weight-loss programming
// has no routines yet and produces nothing.
func (g *Generator) WeightLossRoutines(user *domain.User) []domain.Routine {
	return nil
}

// ChooseAndCreateRoutines builds routines for the user's goal, one pass per
// goal gym day, and persists each through the store's transactional write.
// A persistence failure is logged and does not abort the remaining
// routines. The successfully saved routines are returned.
func (g *Generator) ChooseAndCreateRoutines(user *domain.User) []domain.Routine {
	if user == nil || user.Goals.GoalGymDays == nil {
		return nil
	}
	days := *user.Goals.GoalGymDays

	var routines []domain.Routine
	for i := 0; i < days; i++ {
		if user.CurrentStats.GymMembership == nil || !*user.CurrentStats.GymMembership {
			slog.Info("no gym membership, creating bodyweight routines")
			routines = append(routines, g.BodyweightRoutine(user))
			continue
		}

		slog.Info("gym membership available, creating routines")
		goal := ""
		if user.Goals.GoalExercise != nil {
			goal = strings.ToLower(*user.Goals.GoalExercise)
		}
		if goal == domain.GoalCardio {
			slog.Info("creating cardio routines")
			routines = g.CardioRoutines(user)
			break
		}
		if goal == domain.GoalStrength {
			slog.Info("creating strength routines")
			routines = g.StrengthRoutines(user)
			break
		}
		if goal == domain.GoalWeightLoss {
			slog.Info("creating weight loss routines")
			routines = g.WeightLossRoutines(user)
			break
		}
	}

	saved := []domain.Routine{}
	for _, routine := range routines {
		if _, err := g.store.SaveRoutine(&routine); err != nil {
			slog.Error("failed to save routine", "name", routine.Name, "error", err)
			continue
		}
		slog.Info("successfully saved routine", "name", routine.Name)
		saved = append(saved, routine)
	}
	return saved
}

// muscleExercises fetches one muscle group's catalog, degrading to an empty
// slice on query failure so split assembly can continue.
func (g *Generator) muscleExercises(muscleID int) []domain.Exercise {
	exercises, err := g.store.ExercisesByMuscle(muscleID)
	if err != nil {
		slog.Error("muscle group fetch failed", "muscle_id", muscleID, "error", err)
		return nil
	}
	return exercises
}

func findIncline(exercises []domain.Exercise) *domain.Exercise {
	for i := range exercises {
		if strings.Contains(strings.ToLower(exercises[i].Name), "incline") {
			return &exercises[i]
		}
	}
	return nil
}

func prefix(exercises []domain.Exercise, n int) []domain.Exercise {
	if len(exercises) > n {
		return exercises[:n]
	}
	return exercises
}

func firstOfEach(groups ...[]domain.Exercise) []domain.Exercise {
	var out []domain.Exercise
	for _, group := range groups {
		if len(group) > 0 {
			out = append(out, group[0])
		}
	}
	return out
}

func concat(groups ...[]domain.Exercise) []domain.Exercise {
	var out []domain.Exercise
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
