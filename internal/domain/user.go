package domain

// Fitness levels understood by the set-scheme lookup. Stored lower-case;
// lookups case-fold before matching.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Training goals understood by the generation engine.
const (
	GoalStrength   = "strength"
	GoalWeightLoss = "weight loss"
	GoalCardio     = "cardio"
)

// CurrentStats holds the user's body statistics, embedded 1:1 in User.
type CurrentStats struct {
	Age           *int
	Height        *float64
	CurrentWeight *float64
	BodyFat       *float64
	FitnessLevel  *string
	GymMembership *bool
}

// Goals holds the user's training targets, embedded 1:1 in User.
// GoalGymDays and GoalExercise drive routine generation.
type Goals struct {
	GoalWeight   *float64
	GoalGymDays  *int
	GoalExercise *string
	GoalBodyFat  *float64
}

// User is the application's single logical account. The "current" user is
// the row with the lowest id, or a lookup by name/username.
type User struct {
	UserID            int
	Name              string
	Username          *string
	Email             *string
	CreatedAt         *string
	ProfilePictureURL *string
	StartingPicture   *string
	ProgressPicture   *string
	SubscriptionID    *int
	CurrentStats      CurrentStats
	Goals             Goals
}
