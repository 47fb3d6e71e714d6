package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/domain"
)

const userColumns = `user_id, name, username, email, created_at,
	profile_picture_url, starting_picture, progress_picture, subscription_id,
	age, height, current_weight, body_fat, fitness_level, gym_membership,
	goal_weight, goal_gym_days, goal_exercise, goal_body_fat`

// CreateUser inserts a new user row and returns its id.
func (s *Store) CreateUser(name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, &ValidationError{Field: "name", Reason: "user name must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
		INSERT INTO Users (name, created_at)
		VALUES (?, CURRENT_TIMESTAMP)`, name)
	if err != nil {
		return 0, queryErr("insert user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, queryErr("user insert id", err)
	}
	slog.Info("user created", "id", id, "name", name)
	return int(id), nil
}

// UserByID returns one user, or ErrNoDataFound.
func (s *Store) UserByID(id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userBy("WHERE user_id = ?", id)
}

// UserByName returns one user by exact name, or ErrNoDataFound.
func (s *Store) UserByName(name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userBy("WHERE name = ?", name)
}

// UserByUsername returns one user by username, or ErrNoDataFound.
func (s *Store) UserByUsername(username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userBy("WHERE username = ?", username)
}

// FirstUser returns the user with the lowest id, the application's current
// account, or ErrNoDataFound when no user exists yet.
func (s *Store) FirstUser() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userBy("ORDER BY user_id ASC LIMIT 1")
}

func (s *Store) userBy(clause string, args ...any) (*domain.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+userColumns+" FROM Users "+clause, args...)

	var (
		u                                    domain.User
		username, email, createdAt           sql.NullString
		profilePic, startingPic, progressPic sql.NullString
		fitnessLevel, goalExercise           sql.NullString
		subscriptionID, age, goalGymDays     sql.NullInt64
		gymMembership                        sql.NullInt64
		height, currentWeight, bodyFat       sql.NullFloat64
		goalWeight, goalBodyFat              sql.NullFloat64
	)
	err = row.Scan(
		&u.UserID, &u.Name, &username, &email, &createdAt,
		&profilePic, &startingPic, &progressPic, &subscriptionID,
		&age, &height, &currentWeight, &bodyFat, &fitnessLevel, &gymMembership,
		&goalWeight, &goalGymDays, &goalExercise, &goalBodyFat,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDataFound
		}
		return nil, queryErr("user lookup", err)
	}

	u.Username = nullString(username)
	u.Email = nullString(email)
	u.CreatedAt = nullString(createdAt)
	u.ProfilePictureURL = nullString(profilePic)
	u.StartingPicture = nullString(startingPic)
	u.ProgressPicture = nullString(progressPic)
	u.SubscriptionID = nullInt(subscriptionID)
	u.CurrentStats = domain.CurrentStats{
		Age:           nullInt(age),
		Height:        nullFloat(height),
		CurrentWeight: nullFloat(currentWeight),
		BodyFat:       nullFloat(bodyFat),
		FitnessLevel:  nullString(fitnessLevel),
		GymMembership: nullBool(gymMembership),
	}
	u.Goals = domain.Goals{
		GoalWeight:   nullFloat(goalWeight),
		GoalGymDays:  nullInt(goalGymDays),
		GoalExercise: nullString(goalExercise),
		GoalBodyFat:  nullFloat(goalBodyFat),
	}
	return &u, nil
}

// UserFieldUpdate is one updatable Users column together with its typed,
// validated value. The constructors below are the only way to build one, so
// the set of updatable fields is closed at compile time.
type UserFieldUpdate struct {
	column string
	value  any
	rule   string
}

// UserName updates the display name.
func UserName(v string) UserFieldUpdate {
	return UserFieldUpdate{column: "name", value: v, rule: "required"}
}

// UserUsername updates the unique handle.
func UserUsername(v string) UserFieldUpdate {
	return UserFieldUpdate{column: "username", value: v, rule: "required"}
}

// UserEmail updates the contact address.
func UserEmail(v string) UserFieldUpdate {
	return UserFieldUpdate{column: "email", value: v, rule: "required,email"}
}

// UserAge updates the age in years.
func UserAge(v int) UserFieldUpdate {
	return UserFieldUpdate{column: "age", value: v, rule: "gte=13,lte=120"}
}

// UserHeight updates the height.
func UserHeight(v float64) UserFieldUpdate {
	return UserFieldUpdate{column: "height", value: v, rule: "gt=0"}
}

// UserCurrentWeight updates the current body weight.
func UserCurrentWeight(v float64) UserFieldUpdate {
	return UserFieldUpdate{column: "current_weight", value: v, rule: "gt=0"}
}

// UserBodyFat updates the body-fat percentage.
func UserBodyFat(v float64) UserFieldUpdate {
	return UserFieldUpdate{column: "body_fat", value: v, rule: "gte=0,lte=100"}
}

// UserFitnessLevel updates the training level; stored lower-case.
func UserFitnessLevel(v string) UserFieldUpdate {
	return UserFieldUpdate{
		column: "fitness_level",
		value:  strings.ToLower(v),
		rule:   "oneof=beginner intermediate advanced",
	}
}

// UserGymMembership updates the gym-access flag.
func UserGymMembership(v bool) UserFieldUpdate {
	return UserFieldUpdate{column: "gym_membership", value: boolToInt(v)}
}

// UserGoalWeight updates the target body weight.
func UserGoalWeight(v float64) UserFieldUpdate {
	return UserFieldUpdate{column: "goal_weight", value: v, rule: "gt=0"}
}

// UserGoalGymDays updates the target training days per week.
func UserGoalGymDays(v int) UserFieldUpdate {
	return UserFieldUpdate{column: "goal_gym_days", value: v, rule: "min=1,max=7"}
}

// UserGoalExercise updates the training goal; stored lower-case.
func UserGoalExercise(v string) UserFieldUpdate {
	return UserFieldUpdate{
		column: "goal_exercise",
		value:  strings.ToLower(v),
		rule:   "oneof=strength cardio 'weight loss'",
	}
}

// UserGoalBodyFat updates the target body-fat percentage.
func UserGoalBodyFat(v float64) UserFieldUpdate {
	return UserFieldUpdate{column: "goal_body_fat", value: v, rule: "gte=0,lte=100"}
}

// UpdateUserField writes one validated column of the Users row.
func (s *Store) UpdateUserField(userID int, field UserFieldUpdate) error {
	if field.rule != "" {
		if err := validate.Var(field.value, field.rule); err != nil {
			return &ValidationError{Field: field.column, Reason: err.Error()}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	// field.column only ever comes from the constructors above.
	query := fmt.Sprintf("UPDATE Users SET %s = ? WHERE user_id = ?", field.column)
	if _, err := db.Exec(query, field.value, userID); err != nil {
		return queryErr("update user field "+field.column, err)
	}
	slog.Info("user field updated", "user_id", userID, "field", field.column)
	return nil
}

// DeleteAllUsers clears the Users table.
func (s *Store) DeleteAllUsers() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM Users"); err != nil {
		return queryErr("delete all users", err)
	}
	slog.Info("all users deleted")
	return nil
}
