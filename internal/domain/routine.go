package domain

// FitnessRoutine is one workout day within a plan's weekly fitness program.
type FitnessRoutine struct {
	ID        string     `json:"id"`
	Day       string     `json:"day"`   // e.g. "Día 1"
	Focus     string     `json:"focus"` // e.g. "Pecho y Tríceps"
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one movement within a routine. The name acts as its identity
// key and is unique within the routine.
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`   // e.g. "8-10", "30 seg"
	Weight string `json:"weight"` // e.g. "Moderado", "Peso corporal"
	Rest   string `json:"rest"`   // e.g. "60 seg", "2 min"
	Notes  string `json:"notes,omitempty"`
}
