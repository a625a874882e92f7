package domain

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTimeframeDays is the floor applied whenever a timeframe cannot be
// determined (unknown tags, unparseable timeframe strings).
const DefaultTimeframeDays = 30

// Plan is the generated coaching program for one assessment. It is created
// once by the generator and never mutated afterwards.
type Plan struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	AssessmentID    string           `json:"assessmentId"`
	Objective       string           `json:"objective"` // Comma-joined tags, as assessed
	Timeframe       string           `json:"timeframe"` // e.g. "30 dias"
	Milestones      []Milestone      `json:"milestones"`
	DailyGuidance   []DailyTask      `json:"dailyGuidance"`
	FitnessRoutines []FitnessRoutine `json:"fitnessRoutines,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// TimeframeDays parses the leading day count of the timeframe string,
// falling back to the default when malformed.
func (p *Plan) TimeframeDays() int {
	fields := strings.Fields(p.Timeframe)
	if len(fields) == 0 {
		return DefaultTimeframeDays
	}
	days, err := strconv.Atoi(fields[0])
	if err != nil || days <= 0 {
		return DefaultTimeframeDays
	}
	return days
}

// GuidanceForDay returns the task bundle scheduled for the given 1-based day,
// or nil when the day has no entry.
func (p *Plan) GuidanceForDay(day int) *DailyTask {
	for i := range p.DailyGuidance {
		if p.DailyGuidance[i].Day == day {
			return &p.DailyGuidance[i]
		}
	}
	return nil
}

// Milestone is a dated checkpoint within a plan. Order is 1-based, strictly
// increasing and unique within the plan.
type Milestone struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"targetDate"`
	Order       int       `json:"order"`
}

// DailyTask is one day's bundle of actionable items. Day is unique within a
// plan and covers the contiguous range 1..timeframe.
type DailyTask struct {
	ID    string     `json:"id"`
	Day   int        `json:"day"`
	Tasks []TaskItem `json:"tasks"`
}

// TaskIDs returns the ids of every item in the bundle.
func (d *DailyTask) TaskIDs() []string {
	ids := make([]string, len(d.Tasks))
	for i, t := range d.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// TaskItem is one actionable item of a day. The id is generated at plan
// creation and immutable afterwards.
type TaskItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Importance    string `json:"importance"`
	Category      string `json:"category"`
	EstimatedTime string `json:"estimatedTime"`
}
