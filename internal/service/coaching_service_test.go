package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"micoach/coaching-app/internal/domain"
	"micoach/coaching-app/internal/repository"
)

// inMemoryKV is a map-backed persistence adapter for tests. failWrites makes
// every Set fail to exercise the no-partial-commit guarantee.
type inMemoryKV struct {
	data       map[string][]byte
	failWrites bool
}

func newInMemoryKV() *inMemoryKV {
	return &inMemoryKV{data: make(map[string][]byte)}
}

func (kv *inMemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := kv.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return value, nil
}

func (kv *inMemoryKV) Set(_ context.Context, key string, value []byte) error {
	if kv.failWrites {
		return repository.ErrWriteFailed
	}
	kv.data[key] = value
	return nil
}

func (kv *inMemoryKV) Remove(_ context.Context, key string) error {
	delete(kv.data, key)
	return nil
}

var serviceNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newTestCoachingService(t *testing.T) (*coachingService, *inMemoryKV) {
	t.Helper()
	kv := newInMemoryKV()
	svc := NewCoachingService(repository.NewStateStore(kv)).(*coachingService)
	svc.now = func() time.Time { return serviceNow }
	return svc, kv
}

func saludInput() CreateAssessmentInput {
	return CreateAssessmentInput{
		UserID:        "user-1",
		MainObjective: "Salud",
		Preferences:   domain.AssessmentPreferences{Pace: domain.PaceIntensivo},
		Metadata: map[string]string{
			domain.MetadataFitnessGoal:  "Fuerza",
			domain.MetadataFitnessLevel: "Principiante",
		},
	}
}

func TestCreatePlanInitializesProgress(t *testing.T) {
	svc, kv := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if plan.Timeframe != "30 dias" {
		t.Errorf("timeframe = %q, want 30 dias", plan.Timeframe)
	}

	if svc.progress == nil {
		t.Fatal("progress not initialized")
	}
	if svc.progress.CurrentDay != 1 || svc.progress.Streak != 0 {
		t.Errorf("fresh progress = day %d streak %d, want day 1 streak 0", svc.progress.CurrentDay, svc.progress.Streak)
	}
	if len(svc.progress.CompletedTasks) != 0 {
		t.Errorf("fresh progress should have no completed tasks")
	}

	// All three records persisted.
	for _, key := range []string{repository.KeyCurrentAssessment, repository.KeyCurrentPlan, repository.KeyCurrentProgress} {
		if _, ok := kv.data[key]; !ok {
			t.Errorf("missing stored blob %q", key)
		}
	}
}

func TestCompleteTaskIsIdempotent(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	taskID := plan.GuidanceForDay(1).Tasks[0].ID

	if err := svc.CompleteTask(ctx, taskID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	sizeAfterFirst := len(svc.progress.CompletedTasks)

	if err := svc.CompleteTask(ctx, taskID); err != nil {
		t.Fatalf("CompleteTask (repeat): %v", err)
	}
	if got := len(svc.progress.CompletedTasks); got != sizeAfterFirst {
		t.Errorf("completed set grew from %d to %d on duplicate completion", sizeAfterFirst, got)
	}
}

func TestCompletingWholeDayAdvances(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	// Sneak a day-2 completion in first: it must survive untouched.
	day2ID := plan.GuidanceForDay(2).Tasks[0].ID
	if err := svc.CompleteTask(ctx, day2ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if svc.progress.CurrentDay != 1 {
		t.Fatalf("completing a future task must not advance the day")
	}

	for _, id := range plan.GuidanceForDay(1).TaskIDs() {
		if err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("CompleteTask: %v", err)
		}
	}

	if svc.progress.CurrentDay != 2 {
		t.Errorf("currentDay = %d, want 2 after finishing day 1", svc.progress.CurrentDay)
	}
	// lastActivity was refreshed on the same calendar day, so the streak
	// increments from 0.
	if svc.progress.Streak != 1 {
		t.Errorf("streak = %d, want 1", svc.progress.Streak)
	}
	if !svc.progress.HasCompleted(day2ID) {
		t.Errorf("day-2 completion was lost by the day advance")
	}
}

func TestStreakResetsAcrossCalendarDays(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	svc.progress.Streak = 4

	// The stored lastActivity is from yesterday relative to the completion
	// moment, so the streak restarts at 1.
	svc.progress.LastActivity = serviceNow.AddDate(0, 0, -1)

	for _, id := range plan.GuidanceForDay(1).TaskIDs() {
		if err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("CompleteTask: %v", err)
		}
	}
	if svc.progress.CurrentDay != 2 {
		t.Fatalf("day should have advanced")
	}
	if svc.progress.Streak != 1 {
		t.Errorf("streak = %d, want reset to 1 after a missed day", svc.progress.Streak)
	}
}

func TestResetTodayTasksOnlyTouchesCurrentDay(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	day2ID := plan.GuidanceForDay(2).Tasks[0].ID
	day1ID := plan.GuidanceForDay(1).Tasks[0].ID
	for _, id := range []string{day1ID, day2ID} {
		if err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("CompleteTask: %v", err)
		}
	}

	if err := svc.ResetTodayTasks(ctx); err != nil {
		t.Fatalf("ResetTodayTasks: %v", err)
	}

	if svc.progress.HasCompleted(day1ID) {
		t.Errorf("current-day completion should have been removed")
	}
	if !svc.progress.HasCompleted(day2ID) {
		t.Errorf("other-day completion should remain")
	}
	if svc.progress.CurrentDay != 1 {
		t.Errorf("ResetTodayTasks must not move currentDay")
	}
}

func TestSummaryPercentageIsUncapped(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlan(ctx, saludInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	svc.progress.CurrentDay = 31

	summary := svc.Summary()
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.TotalDays != 30 {
		t.Errorf("totalDays = %d, want 30", summary.TotalDays)
	}
	if summary.CompletionPercentage <= 100 {
		t.Errorf("completionPercentage = %f, want > 100 past the last day", summary.CompletionPercentage)
	}
}

func TestSummaryNextMilestone(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlan(ctx, saludInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	// Push the first two milestones into the past; the third becomes next.
	svc.plan.Milestones[0].TargetDate = serviceNow.AddDate(0, 0, -10)
	svc.plan.Milestones[1].TargetDate = serviceNow.AddDate(0, 0, -1)

	summary := svc.Summary()
	if summary.NextMilestone == nil {
		t.Fatal("expected a next milestone")
	}
	if summary.NextMilestone.Order != 3 {
		t.Errorf("next milestone order = %d, want 3", summary.NextMilestone.Order)
	}
}

func TestOperationsWithoutPlanAreAbsentNotErrors(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	if guidance := svc.DailyGuidance(nil); guidance != nil {
		t.Errorf("expected nil guidance without a plan")
	}
	if summary := svc.Summary(); summary != nil {
		t.Errorf("expected nil summary without a plan")
	}
	if err := svc.CompleteTask(ctx, "some-task"); !errors.Is(err, ErrNoActivePlan) {
		t.Errorf("CompleteTask without plan = %v, want ErrNoActivePlan", err)
	}
	if err := svc.ResetTodayTasks(ctx); err != nil {
		t.Errorf("ResetTodayTasks without plan should be a no-op, got %v", err)
	}
}

func TestFailedSaveLeavesMirrorUnchanged(t *testing.T) {
	svc, kv := newTestCoachingService(t)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, saludInput())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	taskID := plan.GuidanceForDay(1).Tasks[0].ID

	kv.failWrites = true
	if err := svc.CompleteTask(ctx, taskID); err == nil {
		t.Fatal("expected write failure to propagate")
	}
	if svc.progress.HasCompleted(taskID) {
		t.Errorf("mirror must not record the completion after a failed save")
	}
}

func TestLoadTreatsCorruptBlobsAsAbsent(t *testing.T) {
	svc, kv := newTestCoachingService(t)
	ctx := context.Background()

	kv.data[repository.KeyCurrentPlan] = []byte("{not json")
	kv.data[repository.KeyCurrentProgress] = []byte("also not json")

	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if svc.Plan() != nil {
		t.Errorf("corrupt plan blob should load as absent")
	}
	if summary := svc.Summary(); summary != nil {
		t.Errorf("expected nil summary with corrupt state")
	}
}

func TestResetAllPurgesEverything(t *testing.T) {
	svc, kv := newTestCoachingService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlan(ctx, saludInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	if svc.Plan() != nil || svc.Summary() != nil {
		t.Errorf("mirror should be empty after ResetAll")
	}
	if len(kv.data) != 0 {
		t.Errorf("stored blobs remain after ResetAll: %v", kv.data)
	}
}

func TestDailyGuidanceExplicitDay(t *testing.T) {
	svc, _ := newTestCoachingService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlan(ctx, saludInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	day := 7
	guidance := svc.DailyGuidance(&day)
	if guidance == nil || guidance.Day != 7 {
		t.Fatalf("expected guidance for day 7, got %+v", guidance)
	}

	outOfRange := 99
	if svc.DailyGuidance(&outOfRange) != nil {
		t.Errorf("expected nil guidance for a day past the timeframe")
	}
}
