package domain

import "strings"

// Objective is a closed set of coaching objective categories. The string
// values double as the serialization-facing identifiers, so persisted plans
// stay readable.
type Objective string

const (
	ObjectiveSalud         Objective = "Salud"
	ObjectiveProductividad Objective = "Productividad"
	ObjectiveAprendizaje   Objective = "Aprendizaje"
	ObjectiveOtro          Objective = "Otro"
	// ObjectiveUnknown covers tags outside the closed set; they contribute the
	// default timeframe and produce no daily tasks.
	ObjectiveUnknown Objective = ""
)

// ParseObjective maps a raw (already trimmed) tag to its category.
func ParseObjective(tag string) Objective {
	switch tag {
	case "Salud":
		return ObjectiveSalud
	case "Productividad":
		return ObjectiveProductividad
	case "Aprendizaje":
		return ObjectiveAprendizaje
	case "Otro":
		return ObjectiveOtro
	default:
		return ObjectiveUnknown
	}
}

// SplitObjectives splits a comma-joined objective string into trimmed tags.
// Empty fragments are dropped.
func SplitObjectives(mainObjective string) []string {
	parts := strings.Split(mainObjective, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Pace controls how aggressive the generated timeframe is.
type Pace string

const (
	PaceIntensivo Pace = "intensivo"
	PaceModerado  Pace = "moderado"
	PaceRelajado  Pace = "relajado"
)

// FitnessGoal selects the routine template for the Salud objective.
type FitnessGoal string

const (
	GoalFuerza        FitnessGoal = "Fuerza"
	GoalHipertrofia   FitnessGoal = "Hipertrofia"
	GoalPerdidaDePeso FitnessGoal = "Pérdida de peso"
	GoalResistencia   FitnessGoal = "Resistencia"
	GoalTonificacion  FitnessGoal = "Tonificación"
)

// FitnessLevel maps to training days per week (3/4/5).
type FitnessLevel string

const (
	LevelPrincipiante FitnessLevel = "Principiante"
	LevelIntermedio   FitnessLevel = "Intermedio"
	LevelAvanzado     FitnessLevel = "Avanzado"
)

// DaysPerWeek returns the weekly training-day count for the level.
// Unrecognized levels fall back to the beginner count.
func (l FitnessLevel) DaysPerWeek() int {
	switch l {
	case LevelPrincipiante:
		return 3
	case LevelIntermedio:
		return 4
	case LevelAvanzado:
		return 5
	default:
		return 3
	}
}
