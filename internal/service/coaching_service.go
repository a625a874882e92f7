package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"micoach/coaching-app/internal/domain"
	"micoach/coaching-app/internal/generator"
	"micoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrNoActivePlan = errors.New("no active plan")
)

// CreateAssessmentInput carries the onboarding questionnaire answers.
type CreateAssessmentInput struct {
	UserID           string
	MainObjective    string
	CurrentSituation string
	TimeCommitment   string
	Resources        []string
	Preferences      domain.AssessmentPreferences
	Metadata         map[string]string
}

// ProgressSummary is the derived tracking snapshot returned to callers.
// CompletionPercentage is deliberately uncapped: once the final day is
// finished, currentDay moves past the timeframe and the percentage exceeds
// 100.
type ProgressSummary struct {
	CurrentDay           int               `json:"currentDay"`
	TotalDays            int               `json:"totalDays"`
	Streak               int               `json:"streak"`
	CompletionPercentage float64           `json:"completionPercentage"`
	NextMilestone        *domain.Milestone `json:"nextMilestone,omitempty"`
}

// CoachingService owns the active assessment/plan/progress triple. All
// mutations run under one mutex so no two writes interleave and reads never
// observe a torn update; the in-memory mirror only changes after the
// corresponding save succeeded.
type CoachingService interface {
	Load(ctx context.Context) error
	CreatePlan(ctx context.Context, input CreateAssessmentInput) (*domain.Plan, error)
	Plan() *domain.Plan
	DailyGuidance(day *int) *domain.DailyTask
	CompleteTask(ctx context.Context, taskID string) error
	Summary() *ProgressSummary
	ResetTodayTasks(ctx context.Context) error
	ResetAll(ctx context.Context) error
}

type coachingService struct {
	store *repository.StateStore
	now   func() time.Time

	mu         sync.Mutex
	assessment *domain.Assessment
	plan       *domain.Plan
	progress   *domain.Progress
}

// NewCoachingService creates a new instance of coachingService.
func NewCoachingService(store *repository.StateStore) CoachingService {
	return &coachingService{
		store: store,
		now:   time.Now,
	}
}

// Load hydrates the in-memory mirror from storage. Missing or unparseable
// records simply stay absent.
func (s *coachingService) Load(ctx context.Context) error {
	assessment, err := s.store.LoadAssessment(ctx)
	if err != nil {
		return err
	}
	plan, err := s.store.LoadPlan(ctx)
	if err != nil {
		return err
	}
	progress, err := s.store.LoadProgress(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.assessment = assessment
	s.plan = plan
	s.progress = progress
	s.mu.Unlock()
	return nil
}

// CreatePlan persists the assessment, generates and persists the plan, and
// initializes fresh progress at day 1. Any prior plan/progress for the user
// is replaced, not merged. A failed save propagates and leaves the mirror
// untouched.
func (s *coachingService) CreatePlan(ctx context.Context, input CreateAssessmentInput) (*domain.Plan, error) {
	now := s.now()

	assessment := &domain.Assessment{
		ID:               uuid.NewString(),
		UserID:           input.UserID,
		MainObjective:    input.MainObjective,
		CurrentSituation: input.CurrentSituation,
		TimeCommitment:   input.TimeCommitment,
		Resources:        input.Resources,
		Preferences:      input.Preferences,
		Metadata:         input.Metadata,
		CreatedAt:        now,
	}

	if err := s.store.SaveAssessment(ctx, assessment); err != nil {
		return nil, err
	}

	plan := generator.Generate(assessment, now)
	if err := s.store.SavePlan(ctx, plan); err != nil {
		return nil, err
	}

	progress := domain.NewProgress(assessment.UserID, plan.ID, uuid.NewString(), now)
	if err := s.store.SaveProgress(ctx, progress); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.assessment = assessment
	s.plan = plan
	s.progress = progress
	s.mu.Unlock()

	return plan, nil
}

// Plan returns the active plan, or nil when none is loaded.
func (s *coachingService) Plan() *domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// DailyGuidance returns the task bundle for the given day, defaulting to the
// current day of progress. Nil when no plan/progress is loaded or the day has
// no entry — an absent result, not an error.
func (s *coachingService) DailyGuidance(day *int) *domain.DailyTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guidanceLocked(day)
}

func (s *coachingService) guidanceLocked(day *int) *domain.DailyTask {
	if s.plan == nil || s.progress == nil {
		return nil
	}
	target := s.progress.CurrentDay
	if day != nil {
		target = *day
	}
	return s.plan.GuidanceForDay(target)
}

// CompleteTask adds the task id to the completed set (a set union — a second
// call with the same id changes nothing) and refreshes the activity
// timestamps. When every task of the current day is then complete, the day
// advances and the streak recomputes against the pre-update lastActivity.
func (s *coachingService) CompleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plan == nil || s.progress == nil {
		return ErrNoActivePlan
	}

	now := s.now()
	// The streak comparison deliberately uses the stored lastActivity as it
	// was before this call overwrites it.
	previousActivity := s.progress.LastActivity

	updated := s.progress.Clone()
	updated.MarkCompleted(taskID)
	updated.LastActivity = now
	updated.UpdatedAt = now

	if guidance := s.plan.GuidanceForDay(updated.CurrentDay); guidance != nil && updated.HasCompletedAll(guidance.TaskIDs()) {
		updated.CurrentDay++
		if sameCalendarDay(previousActivity, now) {
			updated.Streak = s.progress.Streak + 1
		} else {
			updated.Streak = 1
		}
	}

	if err := s.store.SaveProgress(ctx, updated); err != nil {
		return err
	}
	s.progress = updated
	return nil
}

// Summary derives the tracking snapshot. Nil when no plan/progress is loaded.
func (s *coachingService) Summary() *ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plan == nil || s.progress == nil {
		return nil
	}

	totalDays := s.plan.TimeframeDays()
	return &ProgressSummary{
		CurrentDay:           s.progress.CurrentDay,
		TotalDays:            totalDays,
		Streak:               s.progress.Streak,
		CompletionPercentage: float64(s.progress.CurrentDay) / float64(totalDays) * 100,
		NextMilestone:        nextMilestone(s.plan.Milestones, s.now()),
	}
}

// ResetTodayTasks removes only the current day's task ids from the completed
// set; currentDay and streak stay as they are.
func (s *coachingService) ResetTodayTasks(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guidance := s.guidanceLocked(nil)
	if guidance == nil {
		return nil
	}

	updated := s.progress.Clone()
	updated.RemoveCompleted(guidance.TaskIDs())

	if err := s.store.SaveProgress(ctx, updated); err != nil {
		return err
	}
	s.progress = updated
	return nil
}

// ResetAll purges every stored blob and clears the mirror — the full
// re-onboarding path.
func (s *coachingService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.PurgeAll(ctx); err != nil {
		return err
	}

	s.assessment = nil
	s.plan = nil
	s.progress = nil
	return nil
}

// nextMilestone returns the earliest milestone (by order) whose target date
// is today or in the future, at day granularity.
func nextMilestone(milestones []domain.Milestone, now time.Time) *domain.Milestone {
	sorted := append([]domain.Milestone(nil), milestones...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	today := startOfDay(now)
	for i := range sorted {
		if !startOfDay(sorted[i].TargetDate).Before(today) {
			return &sorted[i]
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
