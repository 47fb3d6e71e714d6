package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

// Catalog queries select the summary column set the generation engine
// consumes; ExerciseDetailsByName and ExercisesForRoutine read every
// column.
const exerciseSummaryColumns = "exercise_id, name, description, level, instructions"

const exerciseFullColumns = `exercise_id, name, description, level, instructions,
	equipment_needed, overloading, power_strength_supplement,
	isolation_compound_accessory, push_pull_legs,
	vertical_horizontal_rotational, stretch, video_url`

// ExercisesByName returns exercises whose name contains the given text,
// case-insensitively. The result is empty, never nil on zero matches.
func (s *Store) ExercisesByName(name string) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `
		SELECT ` + exerciseSummaryColumns + `
		FROM Exercises
		WHERE name LIKE ? COLLATE NOCASE
		ORDER BY exercise_id`
	return s.queryExerciseSummaries(query, "%"+name+"%")
}

// ExercisesWithKeyword matches the keyword against name or description.
func (s *Store) ExercisesWithKeyword(keyword string) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `
		SELECT ` + exerciseSummaryColumns + `
		FROM Exercises
		WHERE name LIKE ? OR description LIKE ?
		ORDER BY exercise_id`
	pattern := "%" + keyword + "%"
	return s.queryExerciseSummaries(query, pattern, pattern)
}

// ExercisesByEquipment returns exercises by their equipment flag;
// equipmentNeeded=false selects the bodyweight catalog.
func (s *Store) ExercisesByEquipment(equipmentNeeded bool) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `
		SELECT ` + exerciseSummaryColumns + `
		FROM Exercises
		WHERE equipment_needed = ?
		ORDER BY exercise_id
		LIMIT 50`
	return s.queryExerciseSummaries(query, boolToInt(equipmentNeeded))
}

// ExercisesByMuscle returns the exercises associated with one muscle id
// through the ExercisesMuscles join table.
func (s *Store) ExercisesByMuscle(muscleID int) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `
		SELECT ex.exercise_id, ex.name, ex.description, ex.level, ex.instructions
		FROM Exercises ex
		JOIN ExercisesMuscles em ON ex.exercise_id = em.exercise_id
		WHERE em.muscle_id = ?
		ORDER BY ex.exercise_id`
	return s.queryExerciseSummaries(query, muscleID)
}

// ReplacementExercise returns the first exercise whose id is not in the
// exclusion set, or ErrNoDataFound when the catalog is exhausted.
func (s *Store) ReplacementExercise(exclude []int) (*domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := "SELECT " + exerciseSummaryColumns + " FROM Exercises"
	args := make([]any, 0, len(exclude))
	if len(exclude) > 0 {
		placeholders := strings.Repeat("?, ", len(exclude)-1) + "?"
		query += " WHERE exercise_id NOT IN (" + placeholders + ")"
		for _, id := range exclude {
			args = append(args, id)
		}
	}
	query += " ORDER BY exercise_id LIMIT 1"

	exercises, err := s.queryExerciseSummaries(query, args...)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrNoDataFound
	}
	return &exercises[0], nil
}

// AllExerciseNames lists every catalog entry's name.
func (s *Store) AllExerciseNames() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT name FROM Exercises ORDER BY exercise_id")
	if err != nil {
		return nil, queryErr("list exercise names", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan exercise name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ExerciseDetailsByName returns the full column set for one exercise by
// exact name, or ErrNoDataFound.
func (s *Store) ExerciseDetailsByName(name string) (*domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`
		SELECT `+exerciseFullColumns+`
		FROM Exercises
		WHERE name = ?`, name)

	ex, err := scanExerciseFull(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDataFound
		}
		return nil, queryErr("exercise details by name", err)
	}
	return ex, nil
}

// ExercisesForRoutine returns the full exercise rows linked to a routine,
// in link insertion order.
func (s *Store) ExercisesForRoutine(routineID int) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exercisesForRoutine(routineID)
}

func (s *Store) exercisesForRoutine(routineID int) ([]domain.Exercise, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT ex.exercise_id, ex.name, ex.description, ex.level, ex.instructions,
		       ex.equipment_needed, ex.overloading, ex.power_strength_supplement,
		       ex.isolation_compound_accessory, ex.push_pull_legs,
		       ex.vertical_horizontal_rotational, ex.stretch, ex.video_url
		FROM Exercises ex
		INNER JOIN RoutineExercises re ON ex.exercise_id = re.exercise_id
		WHERE re.routine_id = ?
		ORDER BY re.id`, routineID)
	if err != nil {
		return nil, queryErr("exercises for routine", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		ex, err := scanExerciseFull(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise for routine %d: %w", routineID, err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

// queryExerciseSummaries runs a summary-column query. Callers hold s.mu.
func (s *Store) queryExerciseSummaries(query string, args ...any) ([]domain.Exercise, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, queryErr("exercise query", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var (
			ex                        domain.Exercise
			desc, level, instructions sql.NullString
		)
		if err := rows.Scan(&ex.ID, &ex.Name, &desc, &level, &instructions); err != nil {
			return nil, fmt.Errorf("failed to scan exercise row: %w", err)
		}
		ex.Description = nullString(desc)
		ex.Level = nullString(level)
		ex.Instructions = nullString(instructions)
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExerciseFull(row scanner) (*domain.Exercise, error) {
	var (
		ex                                       domain.Exercise
		desc, level, instructions                sql.NullString
		pss, ica, ppl, vhr, video                sql.NullString
		equipmentNeeded, overloading, stretchCol sql.NullInt64
	)
	err := row.Scan(
		&ex.ID, &ex.Name, &desc, &level, &instructions,
		&equipmentNeeded, &overloading, &pss, &ica, &ppl, &vhr,
		&stretchCol, &video,
	)
	if err != nil {
		return nil, err
	}
	ex.Description = nullString(desc)
	ex.Level = nullString(level)
	ex.Instructions = nullString(instructions)
	ex.EquipmentNeeded = nullBool(equipmentNeeded)
	ex.Overloading = nullBool(overloading)
	ex.PowerStrengthSupplement = nullString(pss)
	ex.IsolationCompoundAccessory = nullString(ica)
	ex.PushPullLegs = nullString(ppl)
	ex.VerticalHorizontalRotational = nullString(vhr)
	ex.Stretch = nullBool(stretchCol)
	ex.VideoURL = nullString(video)
	return &ex, nil
}
