package domain

import "time"

// RoutineHistory is one completed routine session. Rows are append-only:
// the available operations never update or delete them.
type RoutineHistory struct {
	ID            *int
	RoutineID     *int
	UserID        *int
	Date          *time.Time
	Duration      *float64
	Difficulty    *int
	CaloriesBurnt *int
	Notes         *string
}

// ExerciseHistory is the per-exercise view of one session: the raw per-set
// history rows sharing a session id, grouped at read time.
type ExerciseHistory struct {
	ID               int
	ExerciseID       int
	RoutineID        int
	RoutineHistoryID int
	Date             time.Time
	Sets             []Set
	Notes            *string
}
