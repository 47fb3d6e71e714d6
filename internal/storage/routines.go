package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

// SaveRoutine persists a routine, its exercise links and their set rows in
// one transaction and returns the store-assigned routine id. A routine with
// no exercises or an empty name is rejected before the transaction begins.
// The deferred rollback is a no-op once Commit has run, so commit and
// rollback are mutually exclusive.
func (s *Store) SaveRoutine(routine *domain.Routine) (int, error) {
	if err := validate.Struct(routine); err != nil {
		return 0, &ValidationError{Field: "name", Reason: "routine name must not be empty"}
	}
	if len(routine.Exercises) == 0 {
		return 0, &ValidationError{Field: "exercises", Reason: "routine must contain at least one exercise"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, queryErr("begin routine save", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO Routines (name, description, is_favorite)
		VALUES (?, ?, ?)`,
		routine.Name, routine.Description, boolToInt(routine.IsFavorite))
	if err != nil {
		return 0, queryErr("insert routine", err)
	}
	routineID, err := res.LastInsertId()
	if err != nil {
		return 0, queryErr("routine insert id", err)
	}

	for _, ews := range routine.Exercises {
		linkRes, err := tx.Exec(`
			INSERT INTO RoutineExercises (routine_id, exercise_id)
			VALUES (?, ?)`,
			routineID, ews.Exercise.ID)
		if err != nil {
			return 0, queryErr("insert routine exercise", err)
		}
		linkID, err := linkRes.LastInsertId()
		if err != nil {
			return 0, queryErr("routine exercise insert id", err)
		}

		for _, set := range ews.Sets {
			if _, err := tx.Exec(`
				INSERT INTO RoutineExerciseSets (routine_exercise_id, set_number, reps, weight)
				VALUES (?, ?, ?, ?)`,
				linkID, set.SetNumber, set.Reps, set.Weight); err != nil {
				return 0, queryErr("insert routine exercise set", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, queryErr("commit routine save", err)
	}

	routine.ID = int(routineID)
	slog.Info("routine saved", "id", routine.ID, "name", routine.Name, "exercises", len(routine.Exercises))
	return routine.ID, nil
}

// AllRoutines lists every routine row without its exercises.
func (s *Store) AllRoutines() ([]domain.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT routine_id, name, description, is_favorite
		FROM Routines
		ORDER BY routine_id`)
	if err != nil {
		return nil, queryErr("list routines", err)
	}
	defer rows.Close()

	routines := []domain.Routine{}
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan routine row: %w", err)
		}
		routines = append(routines, *r)
	}
	return routines, rows.Err()
}

// RoutineByID returns one routine row, or ErrNoDataFound.
func (s *Store) RoutineByID(id int) (*domain.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routineBy("routine_id = ?", id)
}

// RoutineByName returns one routine row by exact name, or ErrNoDataFound.
func (s *Store) RoutineByName(name string) (*domain.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routineBy("name = ?", name)
}

func (s *Store) routineBy(where string, arg any) (*domain.Routine, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`
		SELECT routine_id, name, description, is_favorite
		FROM Routines
		WHERE `+where, arg)

	r, err := scanRoutine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDataFound
		}
		return nil, queryErr("routine lookup", err)
	}
	return r, nil
}

// DeleteRoutine removes the routine row only. Child link and set rows are
// deliberately left behind (no cascade in the schema access layer); use
// CountOrphanedRoutineExercises to watch the orphan population.
func (s *Store) DeleteRoutine(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM Routines WHERE routine_id = ?", id); err != nil {
		return queryErr("delete routine", err)
	}
	slog.Info("routine deleted", "id", id)
	return nil
}

// ToggleFavoriteRoutine flips the favorite flag of one routine.
func (s *Store) ToggleFavoriteRoutine(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`
		UPDATE Routines SET is_favorite = 1 - is_favorite
		WHERE routine_id = ?`, id); err != nil {
		return queryErr("toggle routine favorite", err)
	}
	return nil
}

// ExercisesWithSetsForRoutine reassembles the routine's exercise instances
// with their set schemes, in link insertion order. Sets are read per link
// row, not per exercise id, so an exercise appearing twice in one routine
// keeps two independent schemes. The whole composite read runs under one
// acquisition of the store lock.
func (s *Store) ExercisesWithSetsForRoutine(routineID int) ([]domain.ExerciseWithSets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT re.id, ex.exercise_id, ex.name, ex.description, ex.level, ex.instructions,
		       ex.equipment_needed, ex.overloading, ex.power_strength_supplement,
		       ex.isolation_compound_accessory, ex.push_pull_legs,
		       ex.vertical_horizontal_rotational, ex.stretch, ex.video_url
		FROM Exercises ex
		INNER JOIN RoutineExercises re ON ex.exercise_id = re.exercise_id
		WHERE re.routine_id = ?
		ORDER BY re.id`, routineID)
	if err != nil {
		return nil, queryErr("exercises with sets for routine", err)
	}
	defer rows.Close()

	linkIDs := []int{}
	exercises := []domain.Exercise{}
	for rows.Next() {
		var (
			linkID                                   int
			ex                                       domain.Exercise
			desc, level, instructions                sql.NullString
			pss, ica, ppl, vhr, video                sql.NullString
			equipmentNeeded, overloading, stretchCol sql.NullInt64
		)
		err := rows.Scan(
			&linkID, &ex.ID, &ex.Name, &desc, &level, &instructions,
			&equipmentNeeded, &overloading, &pss, &ica, &ppl, &vhr,
			&stretchCol, &video,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise for routine %d: %w", routineID, err)
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
		linkIDs = append(linkIDs, linkID)
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	result := []domain.ExerciseWithSets{}
	for i, ex := range exercises {
		sets, err := s.setsForLink(linkIDs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, domain.ExerciseWithSets{Exercise: ex, Sets: sets})
	}
	return result, nil
}

// setsForLink reads the set scheme stored against one RoutineExercises link
// row. Callers hold s.mu.
func (s *Store) setsForLink(linkID int) ([]domain.Set, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT set_number, reps, weight
		FROM RoutineExerciseSets
		WHERE routine_exercise_id = ?
		ORDER BY set_number`, linkID)
	if err != nil {
		return nil, queryErr("sets for routine exercise", err)
	}
	defer rows.Close()

	sets := []domain.Set{}
	for rows.Next() {
		var set domain.Set
		if err := rows.Scan(&set.SetNumber, &set.Reps, &set.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan set row: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// CountOrphanedRoutineExercises reports link rows whose parent routine is
// gone. Deleting a routine does not cascade, so this number only grows.
func (s *Store) CountOrphanedRoutineExercises() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var count int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM RoutineExercises re
		WHERE NOT EXISTS (
			SELECT 1 FROM Routines r WHERE r.routine_id = re.routine_id
		)`).Scan(&count)
	if err != nil {
		return 0, queryErr("count orphaned routine exercises", err)
	}
	return count, nil
}

func scanRoutine(row scanner) (*domain.Routine, error) {
	var (
		r        domain.Routine
		desc     sql.NullString
		favorite sql.NullInt64
	)
	if err := row.Scan(&r.ID, &r.Name, &desc, &favorite); err != nil {
		return nil, err
	}
	r.Description = nullString(desc)
	r.IsFavorite = favorite.Valid && favorite.Int64 != 0
	return &r, nil
}
