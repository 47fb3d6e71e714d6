package domain

// Exercise is a catalog entry describing a single movement and its
// classification tags. Catalog rows are seeded with the store template and
// treated as read-only afterwards.
type Exercise struct {
	ID                           int
	Name                         string
	Description                  *string
	Level                        *string
	Instructions                 *string
	EquipmentNeeded              *bool
	Overloading                  *bool
	PowerStrengthSupplement      *string
	IsolationCompoundAccessory   *string
	PushPullLegs                 *string
	VerticalHorizontalRotational *string
	Stretch                      *bool
	VideoURL                     *string
}

// Set is one unit of work inside an exercise instance: a position in the
// scheme, a rep count and a weight.
type Set struct {
	SetNumber int
	Reps      int
	Weight    float64
}

// ExerciseWithSets pairs an exercise with the set scheme it carries inside
// one routine. The same Exercise can appear in many routines with
// independent schemes.
type ExerciseWithSets struct {
	Exercise Exercise
	Sets     []Set
}

// Routine is a named, ordered collection of exercises with their set
// schemes. ID 0 means the routine has not been persisted yet; the store
// assigns the real id on save.
type Routine struct {
	ID          int
	Name        string `validate:"required"`
	Description *string
	IsFavorite  bool
	Exercises   []ExerciseWithSets
}
