package domain

import (
	"time"
)

// Progress is the only mutable entity: per-plan tracking state owned and
// updated exclusively by the coaching service. CompletedTasks is persisted
// as a list for blob readability but carries set semantics — MarkCompleted
// never introduces duplicates.
type Progress struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	PlanID         string    `json:"planId"`
	CurrentDay     int       `json:"currentDay"` // 1-based
	CompletedTasks []string  `json:"completedTasks"`
	Streak         int       `json:"streak"`
	LastActivity   time.Time `json:"lastActivity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewProgress returns fresh tracking state for a plan, positioned at day 1.
func NewProgress(userID, planID, id string, now time.Time) *Progress {
	return &Progress{
		ID:             id,
		UserID:         userID,
		PlanID:         planID,
		CurrentDay:     1,
		CompletedTasks: []string{},
		Streak:         0,
		LastActivity:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// HasCompleted reports whether the task id is in the completed set.
func (p *Progress) HasCompleted(taskID string) bool {
	for _, id := range p.CompletedTasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// MarkCompleted adds the task id to the completed set. Returns false when the
// id was already present (the set is unchanged).
func (p *Progress) MarkCompleted(taskID string) bool {
	if p.HasCompleted(taskID) {
		return false
	}
	p.CompletedTasks = append(p.CompletedTasks, taskID)
	return true
}

// RemoveCompleted deletes the given task ids from the completed set, leaving
// every other id untouched.
func (p *Progress) RemoveCompleted(taskIDs []string) {
	drop := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		drop[id] = struct{}{}
	}
	kept := p.CompletedTasks[:0]
	for _, id := range p.CompletedTasks {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	p.CompletedTasks = kept
}

// HasCompletedAll reports whether every given task id is in the completed set.
func (p *Progress) HasCompletedAll(taskIDs []string) bool {
	if len(taskIDs) == 0 {
		return false
	}
	for _, id := range taskIDs {
		if !p.HasCompleted(id) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, used to stage updates so a failed save leaves
// the authoritative in-memory state untouched.
func (p *Progress) Clone() *Progress {
	cp := *p
	cp.CompletedTasks = append([]string(nil), p.CompletedTasks...)
	return &cp
}
