package entity

// WorkoutLevel is the intensity label of a workout.
type WorkoutLevel string

const (
	LevelBeginner     WorkoutLevel = "iniciante"
	LevelIntermediate WorkoutLevel = "intermediario"
	LevelAdvanced     WorkoutLevel = "avancado"
)

// DefaultWorkoutLevel applies when a workout is created without a level.
const DefaultWorkoutLevel = LevelBeginner

func (l WorkoutLevel) String() string {
	return string(l)
}

// IsValid checks if the WorkoutLevel is a known value.
func (l WorkoutLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// Difficulty is the catalog difficulty of an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}
