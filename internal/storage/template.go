package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// The bundled template store is built from this schema plus the seeded
// exercise catalog below. The gateway never applies these itself: it only
// copies a ready-made template file into place on first open.

const schema = `
CREATE TABLE IF NOT EXISTS Exercises (
    exercise_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    level TEXT,
    instructions TEXT,
    equipment_needed INTEGER,
    overloading INTEGER,
    power_strength_supplement TEXT,
    isolation_compound_accessory TEXT,
    push_pull_legs TEXT,
    vertical_horizontal_rotational TEXT,
    stretch INTEGER,
    video_url TEXT
);

CREATE TABLE IF NOT EXISTS ExercisesMuscles (
    exercise_id INTEGER NOT NULL,
    muscle_id INTEGER NOT NULL,

    FOREIGN KEY(exercise_id) REFERENCES Exercises(exercise_id)
);

CREATE TABLE IF NOT EXISTS Routines (
    routine_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    is_favorite INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS RoutineExercises (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    routine_id INTEGER NOT NULL,
    exercise_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS RoutineExerciseSets (
    routine_exercise_id INTEGER NOT NULL,
    set_number INTEGER NOT NULL,
    reps INTEGER NOT NULL,
    weight REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS Users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    username TEXT,
    email TEXT,
    created_at TEXT,
    profile_picture_url TEXT,
    starting_picture TEXT,
    progress_picture TEXT,
    subscription_id INTEGER,
    age INTEGER,
    height REAL,
    current_weight REAL,
    body_fat REAL,
    fitness_level TEXT,
    gym_membership INTEGER,
    goal_weight REAL,
    goal_gym_days INTEGER,
    goal_exercise TEXT,
    goal_body_fat REAL
);

CREATE TABLE IF NOT EXISTS RoutineHistory (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    routine_id INTEGER,
    user_id INTEGER,
    date TEXT,
    duration REAL,
    difficulty INTEGER,
    calories_burnt INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS ExerciseHistory (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    exercise_id INTEGER NOT NULL,
    routine_id INTEGER NOT NULL,
    routine_history_id INTEGER NOT NULL,
    date TEXT,
    reps INTEGER NOT NULL,
    weight REAL NOT NULL,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS RoutineSchedule (
    routine_id INTEGER NOT NULL,
    day_of_week INTEGER NOT NULL
);
`

// Seed catalog. Muscle ids follow the catalog convention: 1 chest, 2 back,
// 5 biceps, 7 quads, 8 hamstrings, 9 calves, 10 core, 12 glutes,
// 14 rhomboids, 15 lats, 17 brachialis, 18-20 delt heads, 21-23 triceps
// heads. equipment_needed 0 marks bodyweight movements.
const seed = `
INSERT INTO Exercises (exercise_id, name, description, level, instructions, equipment_needed, overloading, power_strength_supplement, isolation_compound_accessory, push_pull_legs, vertical_horizontal_rotational, stretch) VALUES
(1,  'Barbell Bench Press',        'Press a barbell from the chest while lying on a flat bench.',            'Intermediate', 'Lower the bar to mid-chest, press back to lockout.',              1, 1, 'strength',  'compound',  'Push', 'Horizontal', 0),
(2,  'Incline Dumbbell Press',     'Press dumbbells on an incline bench to bias the upper chest.',           'Intermediate', 'Set the bench to 30 degrees, press to lockout.',                  1, 1, 'strength',  'compound',  'Push', 'Vertical',   0),
(3,  'Cable Chest Fly',            'Bring the cable handles together in a wide arc.',                        'Beginner',     'Keep a soft elbow bend throughout.',                              1, 0, 'supplement','isolation', 'Push', 'Horizontal', 0),
(4,  'Push-Up',                    'Bodyweight push away from the floor.',                                   'Beginner',     'Keep the trunk rigid from head to heel.',                         0, 0, 'supplement','compound',  'Push', 'Horizontal', 0),
(5,  'Barbell Bent-Over Row',      'Row a barbell to the torso from a hip hinge.',                           'Intermediate', 'Pull the bar to the lower ribs.',                                 1, 1, 'strength',  'compound',  'Pull', 'Horizontal', 0),
(6,  'Seated Cable Row',           'Row a cable handle to the stomach while seated.',                        'Beginner',     'Drive the elbows back, squeeze the shoulder blades.',             1, 1, 'supplement','compound',  'Pull', 'Horizontal', 0),
(7,  'Single-Arm Dumbbell Row',    'Row a dumbbell with one arm braced on a bench.',                         'Beginner',     'Keep the back flat, row to the hip.',                             1, 1, 'supplement','compound',  'Pull', 'Horizontal', 0),
(8,  'Back Extension',             'Extend the lower back over a roman chair.',                              'Beginner',     'Rise until the torso is in line with the legs.',                  1, 0, 'supplement','isolation', 'Pull', 'Horizontal', 0),
(9,  'Barbell Curl',               'Curl a barbell with both arms.',                                         'Beginner',     'Keep the elbows pinned at the sides.',                            1, 1, 'supplement','isolation', 'Pull', 'Vertical',   0),
(10, 'Incline Dumbbell Curl',      'Curl dumbbells from a stretched position on an incline bench.',         'Intermediate', 'Let the arms hang straight down before curling.',                 1, 1, 'supplement','isolation', 'Pull', 'Vertical',   0),
(11, 'Barbell Back Squat',         'Squat with a barbell across the upper back.',                            'Intermediate', 'Sit between the hips, drive up through mid-foot.',                1, 1, 'strength',  'compound',  'Legs', 'Vertical',   0),
(12, 'Leg Press',                  'Press the sled away on a leg press machine.',                            'Beginner',     'Lower under control, avoid locking the knees hard.',              1, 1, 'supplement','compound',  'Legs', 'Vertical',   0),
(13, 'Walking Lunge',              'Alternating lunge steps with dumbbells.',                                'Beginner',     'Step long enough that the front shin stays vertical.',            1, 1, 'supplement','compound',  'Legs', 'Vertical',   0),
(14, 'Goblet Squat',               'Squat holding a single dumbbell at the chest.',                          'Beginner',     'Keep the elbows inside the knees at the bottom.',                 1, 1, 'supplement','compound',  'Legs', 'Vertical',   0),
(15, 'Romanian Deadlift',          'Hip hinge with a barbell, knees slightly bent.',                         'Intermediate', 'Push the hips back until the hamstrings load.',                   1, 1, 'strength',  'compound',  'Legs', 'Vertical',   0),
(16, 'Lying Leg Curl',             'Curl the heels to the glutes on a machine.',                             'Beginner',     'Pause briefly at full flexion.',                                  1, 0, 'supplement','isolation', 'Legs', 'Vertical',   0),
(17, 'Nordic Hamstring Curl',      'Lower the torso forward under hamstring control.',                       'Advanced',     'Anchor the ankles, lower as slowly as possible.',                 0, 0, 'supplement','isolation', 'Legs', 'Vertical',   0),
(18, 'Standing Calf Raise',        'Raise the heels against machine resistance.',                            'Beginner',     'Pause at the top, stretch at the bottom.',                        1, 1, 'supplement','isolation', 'Legs', 'Vertical',   0),
(19, 'Seated Calf Raise',          'Calf raise with the knees bent to bias the soleus.',                     'Beginner',     'Use a full range of motion.',                                     1, 1, 'supplement','isolation', 'Legs', 'Vertical',   0),
(20, 'Plank',                      'Hold a rigid prone position on the forearms.',                           'Beginner',     'Brace the trunk, do not let the hips sag.',                       0, 0, 'supplement','isolation', 'Legs', 'Horizontal', 0),
(21, 'Hanging Leg Raise',          'Raise the legs while hanging from a bar.',                               'Intermediate', 'Curl the pelvis at the top of each rep.',                         0, 0, 'supplement','isolation', 'Pull', 'Vertical',   0),
(22, 'Cable Crunch',               'Kneeling crunch against cable resistance.',                              'Beginner',     'Flex the spine, keep the hips still.',                            1, 1, 'supplement','isolation', 'Pull', 'Vertical',   0),
(23, 'Barbell Hip Thrust',         'Drive the hips up against a barbell from a bench-supported position.',   'Intermediate', 'Finish each rep with a full glute squeeze.',                      1, 1, 'strength',  'compound',  'Legs', 'Vertical',   0),
(24, 'Glute Bridge',               'Bodyweight hip bridge from the floor.',                                  'Beginner',     'Drive through the heels.',                                        0, 0, 'supplement','isolation', 'Legs', 'Vertical',   0),
(25, 'Chest-Supported Row',        'Row dumbbells with the chest braced on an incline bench.',              'Beginner',     'Squeeze the shoulder blades together on every rep.',              1, 1, 'supplement','compound',  'Pull', 'Horizontal', 0),
(26, 'Lat Pulldown',               'Pull a cable bar down to the upper chest.',                              'Beginner',     'Lead the pull with the elbows.',                                  1, 1, 'supplement','compound',  'Pull', 'Vertical',   0),
(27, 'Pull-Up',                    'Pull the body up to a bar from a dead hang.',                            'Advanced',     'Chin over the bar, full hang at the bottom.',                     0, 0, 'strength',  'compound',  'Pull', 'Vertical',   0),
(28, 'Hammer Curl',                'Curl dumbbells with a neutral grip.',                                    'Beginner',     'Keep the wrists locked in neutral.',                              1, 1, 'supplement','isolation', 'Pull', 'Vertical',   0),
(29, 'Overhead Press',             'Press a barbell overhead from the shoulders.',                           'Intermediate', 'Push the head through once the bar passes the forehead.',        1, 1, 'strength',  'compound',  'Push', 'Vertical',   0),
(30, 'Dumbbell Lateral Raise',     'Raise dumbbells out to the sides to shoulder height.',                   'Beginner',     'Lead with the elbows, avoid shrugging.',                          1, 0, 'supplement','isolation', 'Push', 'Vertical',   0),
(31, 'Reverse Pec Deck Fly',       'Open the arms rearward against the pec deck.',                           'Beginner',     'Keep a fixed elbow angle.',                                       1, 0, 'supplement','isolation', 'Pull', 'Horizontal', 0),
(32, 'Triceps Rope Pushdown',      'Push a cable rope down to full elbow extension.',                        'Beginner',     'Keep the upper arms still, split the rope at the bottom.',       1, 0, 'supplement','isolation', 'Push', 'Vertical',   0),
(33, 'Overhead Triceps Extension', 'Extend a dumbbell overhead from behind the head.',                       'Beginner',     'Keep the elbows pointing forward.',                               1, 1, 'supplement','isolation', 'Push', 'Vertical',   0),
(34, 'Close-Grip Bench Press',     'Bench press with a narrow grip to load the triceps.',                    'Intermediate', 'Tuck the elbows close to the torso.',                             1, 1, 'strength',  'compound',  'Push', 'Horizontal', 0),
(35, 'Medicine Ball Slam',         'Slam a medicine ball into the floor from overhead.',                     'Beginner',     'Use the whole body, catch the ball on the bounce.',               1, 0, 'power',     'compound',  'Push', 'Vertical',   0),
(36, 'Box Jump',                   'Jump onto a plyometric box from a standing start.',                      'Intermediate', 'Land softly with the knees tracking the toes.',                   0, 0, 'power',     'compound',  'Legs', 'Vertical',   0),
(37, 'Kettlebell Swing',           'Swing a kettlebell to chest height from a hip hinge.',                   'Intermediate', 'Snap the hips forward, let the arms follow.',                     1, 0, 'power',     'compound',  'Legs', 'Vertical',   0),
(38, 'Assisted Dips',              'Dips using an assisted dip machine to reduce resistance.',               'Beginner',     'Lower until the shoulders reach elbow level.',                    1, 0, 'strength',  'compound',  'Push', 'Vertical',   0),
(39, 'Burpee',                     'Squat thrust into a jump, repeated continuously.',                       'Beginner',     'Keep a steady rhythm.',                                           0, 0, 'power',     'compound',  'Legs', 'Vertical',   0),
(40, 'Mountain Climber',           'Alternate driving the knees to the chest from a plank.',                 'Beginner',     'Keep the hips level throughout.',                                 0, 0, 'supplement','compound',  'Legs', 'Horizontal', 0);

INSERT INTO ExercisesMuscles (exercise_id, muscle_id) VALUES
(1, 1), (2, 1), (3, 1), (4, 1), (38, 1),
(5, 2), (6, 2), (7, 2), (8, 2),
(9, 5), (10, 5), (28, 5),
(11, 7), (12, 7), (13, 7), (14, 7), (36, 7),
(15, 8), (16, 8), (17, 8),
(18, 9), (19, 9),
(20, 10), (21, 10), (22, 10), (35, 10), (39, 10), (40, 10),
(23, 12), (24, 12), (37, 12),
(25, 14), (31, 14),
(26, 15), (27, 15),
(28, 17),
(29, 18), (2, 18),
(30, 19),
(31, 20),
(32, 21),
(33, 22),
(34, 23), (32, 23);
`

// CreateTemplate materializes the bundled template store at path: the full
// schema plus the seeded, read-only exercise catalog. The file this writes
// is what the gateway copies into the writable location on first open.
func CreateTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create template directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open template database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := db.Exec(seed); err != nil {
		return fmt.Errorf("failed to seed exercise catalog: %w", err)
	}
	return nil
}
