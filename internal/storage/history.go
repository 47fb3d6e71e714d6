package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

// History timestamps are stored as RFC 3339 text.
const historyTimeFormat = time.RFC3339

// SaveRoutineHistory appends one completed routine session and returns the
// store-assigned session id.
func (s *Store) SaveRoutineHistory(h *domain.RoutineHistory) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var date any
	if h.Date != nil {
		date = h.Date.Format(historyTimeFormat)
	}

	res, err := db.Exec(`
		INSERT INTO RoutineHistory (routine_id, user_id, date, duration, difficulty, calories_burnt, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.RoutineID, h.UserID, date, h.Duration, h.Difficulty, h.CaloriesBurnt, h.Notes)
	if err != nil {
		return 0, queryErr("insert routine history", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, queryErr("routine history insert id", err)
	}

	sessionID := int(id)
	h.ID = &sessionID
	slog.Info("routine session saved", "session_id", sessionID, "routine_id", h.RoutineID)
	return sessionID, nil
}

// RoutineHistoryForRoutine lists the completed sessions of one routine.
func (s *Store) RoutineHistoryForRoutine(routineID int) ([]domain.RoutineHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, routine_id, user_id, date, duration, difficulty, calories_burnt, notes
		FROM RoutineHistory
		WHERE routine_id = ?
		ORDER BY id`, routineID)
	if err != nil {
		return nil, queryErr("routine history for routine", err)
	}
	defer rows.Close()

	sessions := []domain.RoutineHistory{}
	for rows.Next() {
		var (
			h                        domain.RoutineHistory
			id, rid, uid, difficulty sql.NullInt64
			calories                 sql.NullInt64
			duration                 sql.NullFloat64
			dateText, notes          sql.NullString
		)
		if err := rows.Scan(&id, &rid, &uid, &dateText, &duration, &difficulty, &calories, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan routine history row: %w", err)
		}
		h.ID = nullInt(id)
		h.RoutineID = nullInt(rid)
		h.UserID = nullInt(uid)
		h.Duration = nullFloat(duration)
		h.Difficulty = nullInt(difficulty)
		h.CaloriesBurnt = nullInt(calories)
		h.Notes = nullString(notes)
		if dateText.Valid {
			if t, err := time.Parse(historyTimeFormat, dateText.String); err == nil {
				h.Date = &t
			}
		}
		sessions = append(sessions, h)
	}
	return sessions, rows.Err()
}

// SaveExerciseSet appends one completed set to the exercise history,
// stamped with the current time. The session must already be persisted: a
// nil session or routine id is rejected instead of dereferenced.
func (s *Store) SaveExerciseSet(session *domain.RoutineHistory, exerciseID int, set domain.Set) error {
	if session == nil || session.ID == nil {
		return &ValidationError{Field: "session", Reason: "routine session must be saved before its sets"}
	}
	if session.RoutineID == nil {
		return &ValidationError{Field: "routine_id", Reason: "routine session is missing its routine"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return queryErr("begin exercise set save", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO ExerciseHistory (exercise_id, routine_id, routine_history_id, date, reps, weight)
		VALUES (?, ?, ?, ?, ?, ?)`,
		exerciseID, *session.RoutineID, *session.ID,
		time.Now().Format(historyTimeFormat), set.Reps, set.Weight); err != nil {
		return queryErr("insert exercise set", err)
	}

	if err := tx.Commit(); err != nil {
		return queryErr("commit exercise set save", err)
	}
	slog.Info("exercise set saved", "exercise_id", exerciseID, "session_id", *session.ID)
	return nil
}

// ExerciseHistory returns the per-set history rows of one exercise grouped
// by session id, sets in insertion order within each session.
func (s *Store) ExerciseHistory(exerciseID int) ([]domain.ExerciseHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, exercise_id, routine_id, routine_history_id, date, reps, weight, notes
		FROM ExerciseHistory
		WHERE exercise_id = ?
		ORDER BY id`, exerciseID)
	if err != nil {
		return nil, queryErr("exercise history", err)
	}
	defer rows.Close()

	bySession := map[int]*domain.ExerciseHistory{}
	order := []int{}
	for rows.Next() {
		var (
			id, exID, routineID, sessionID int
			reps                           int
			weight                         float64
			dateText, notes                sql.NullString
		)
		if err := rows.Scan(&id, &exID, &routineID, &sessionID, &dateText, &reps, &weight, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan exercise history row: %w", err)
		}

		entry, ok := bySession[sessionID]
		if !ok {
			entry = &domain.ExerciseHistory{
				ID:               id,
				ExerciseID:       exID,
				RoutineID:        routineID,
				RoutineHistoryID: sessionID,
				Notes:            nullString(notes),
			}
			if dateText.Valid {
				if t, err := time.Parse(historyTimeFormat, dateText.String); err == nil {
					entry.Date = t
				}
			}
			bySession[sessionID] = entry
			order = append(order, sessionID)
		}
		entry.Sets = append(entry.Sets, domain.Set{
			SetNumber: len(entry.Sets) + 1,
			Reps:      reps,
			Weight:    weight,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	history := make([]domain.ExerciseHistory, 0, len(order))
	for _, sessionID := range order {
		history = append(history, *bySession[sessionID])
	}
	return history, nil
}
