package generator

import "strings"

type intRange struct {
	Min, Max int
}

type floatRange struct {
	Min, Max float64
}

// setScheme is one cell of the fitness-level x training-goal table: the rep
// range, the intensity band as a percentage of a max effort, and how many
// sets to prescribe.
type setScheme struct {
	Reps      intRange
	Intensity floatRange
	Sets      intRange
}

var trainingSchemes = map[string]map[string]setScheme{
	"beginner": {
		"strength":    {Reps: intRange{4, 6}, Intensity: floatRange{60, 70}, Sets: intRange{2, 3}},
		"weight loss": {Reps: intRange{8, 12}, Intensity: floatRange{50, 60}, Sets: intRange{1, 3}},
		"cardio":      {Reps: intRange{12, 20}, Intensity: floatRange{35, 45}, Sets: intRange{2, 3}},
	},
	"intermediate": {
		"strength":    {Reps: intRange{3, 5}, Intensity: floatRange{70, 80}, Sets: intRange{3, 4}},
		"weight loss": {Reps: intRange{6, 10}, Intensity: floatRange{60, 70}, Sets: intRange{2, 4}},
		"cardio":      {Reps: intRange{15, 20}, Intensity: floatRange{45, 55}, Sets: intRange{3, 4}},
	},
	"advanced": {
		"strength":    {Reps: intRange{2, 4}, Intensity: floatRange{80, 95}, Sets: intRange{4, 5}},
		"weight loss": {Reps: intRange{6, 10}, Intensity: floatRange{65, 75}, Sets: intRange{2, 4}},
		"cardio":      {Reps: intRange{15, 20}, Intensity: floatRange{55, 65}, Sets: intRange{3, 5}},
	},
}

// schemeFor looks up the set scheme for a level and goal, case-folded.
func schemeFor(level, goal string) (setScheme, bool) {
	goals, ok := trainingSchemes[strings.ToLower(level)]
	if !ok {
		return setScheme{}, false
	}
	sc, ok := goals[strings.ToLower(goal)]
	return sc, ok
}
