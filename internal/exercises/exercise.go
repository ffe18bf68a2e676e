package exercises

// Exercise is one catalog entry, served by the remote exercises API.
// The catalog is read-only from our side.
type Exercise struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationSeconds int    `json:"durationSeconds"`
	Difficulty      string `json:"difficulty,omitempty"`
}

// ExerciseWithStatus is a catalog entry merged with the user's
// completion state for the schedule screen.
type ExerciseWithStatus struct {
	Exercise
	Completed bool `json:"completed"`
}
