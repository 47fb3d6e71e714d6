package storage

import (
	"fmt"
	"log/slog"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

// RoutineScheduleEntry is one routine-to-day association. A routine may
// occupy several days and a day may hold several routines.
type RoutineScheduleEntry struct {
	RoutineID int
	DayOfWeek int
}

func validDay(day int) error {
	if err := validate.Var(day, "min=1,max=7"); err != nil {
		return &ValidationError{Field: "day_of_week", Reason: "day must be between 1 (Sunday) and 7 (Saturday)"}
	}
	return nil
}

// AddRoutineToDay schedules a routine on a day of the week (1..7). Days
// outside the range are rejected before reaching the store.
func (s *Store) AddRoutineToDay(routineID, day int) error {
	if err := validDay(day); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`
		INSERT INTO RoutineSchedule (routine_id, day_of_week)
		VALUES (?, ?)`, routineID, day); err != nil {
		return queryErr("add routine to day", err)
	}
	slog.Info("routine scheduled", "routine_id", routineID, "day", day)
	return nil
}

// RemoveRoutineFromDay drops a routine-to-day association.
func (s *Store) RemoveRoutineFromDay(routineID, day int) error {
	if err := validDay(day); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`
		DELETE FROM RoutineSchedule
		WHERE routine_id = ? AND day_of_week = ?`, routineID, day); err != nil {
		return queryErr("remove routine from day", err)
	}
	return nil
}

// RoutinesForDay returns the routines scheduled on one day.
func (s *Store) RoutinesForDay(day int) ([]domain.Routine, error) {
	if err := validDay(day); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT r.routine_id, r.name, r.description, r.is_favorite
		FROM Routines r
		INNER JOIN RoutineSchedule rs ON r.routine_id = rs.routine_id
		WHERE rs.day_of_week = ?
		ORDER BY r.routine_id`, day)
	if err != nil {
		return nil, queryErr("routines for day", err)
	}
	defer rows.Close()

	routines := []domain.Routine{}
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled routine: %w", err)
		}
		routines = append(routines, *r)
	}
	return routines, rows.Err()
}

// DaysForRoutine returns the days of the week a routine is scheduled on.
func (s *Store) DaysForRoutine(routineID int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT day_of_week FROM RoutineSchedule
		WHERE routine_id = ?
		ORDER BY day_of_week`, routineID)
	if err != nil {
		return nil, queryErr("days for routine", err)
	}
	defer rows.Close()

	days := []int{}
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan schedule day: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// AllRoutineSchedules lists every routine-to-day association.
func (s *Store) AllRoutineSchedules() ([]RoutineScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT routine_id, day_of_week FROM RoutineSchedule
		ORDER BY day_of_week, routine_id`)
	if err != nil {
		return nil, queryErr("list routine schedules", err)
	}
	defer rows.Close()

	entries := []RoutineScheduleEntry{}
	for rows.Next() {
		var e RoutineScheduleEntry
		if err := rows.Scan(&e.RoutineID, &e.DayOfWeek); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
