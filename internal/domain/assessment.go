package domain

import (
	"time"
)

// Metadata keys carried by assessments for the Salud objective.
const (
	MetadataFitnessGoal  = "fitnessGoal"
	MetadataFitnessLevel = "fitnessLevel"
)

// AssessmentPreferences captures how the user wants to work on the plan.
type AssessmentPreferences struct {
	Pace          Pace   `json:"pace"`          // "intensivo", "moderado", "relajado"
	LearningStyle string `json:"learningStyle"` // "visual", "auditivo", "práctico"
	TimeOfDay     string `json:"timeOfDay"`     // "mañana", "tarde", "noche"
}

// Assessment is the onboarding questionnaire result. MainObjective is a
// comma-joined list of objective tags; Metadata carries objective-specific
// extras (e.g. fitness goal and level for Salud).
type Assessment struct {
	ID               string                `json:"id"`
	UserID           string                `json:"userId"`
	MainObjective    string                `json:"mainObjective"`
	CurrentSituation string                `json:"currentSituation,omitempty"`
	TimeCommitment   string                `json:"timeCommitment,omitempty"`
	Resources        []string              `json:"resources,omitempty"`
	Preferences      AssessmentPreferences `json:"preferences"`
	Metadata         map[string]string     `json:"metadata,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// Objectives returns the parsed objective tags of MainObjective.
func (a *Assessment) Objectives() []string {
	return SplitObjectives(a.MainObjective)
}

// HasObjective reports whether the given category appears among the tags.
func (a *Assessment) HasObjective(o Objective) bool {
	for _, tag := range a.Objectives() {
		if ParseObjective(tag) == o {
			return true
		}
	}
	return false
}

// FitnessProfile returns the fitness goal/level metadata pair. ok is false
// unless both keys are present.
func (a *Assessment) FitnessProfile() (goal FitnessGoal, level FitnessLevel, ok bool) {
	g, gok := a.Metadata[MetadataFitnessGoal]
	l, lok := a.Metadata[MetadataFitnessLevel]
	if !gok || !lok {
		return "", "", false
	}
	return FitnessGoal(g), FitnessLevel(l), true
}
