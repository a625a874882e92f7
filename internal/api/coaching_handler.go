package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"micoach/coaching-app/internal/domain"
	"micoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachingHandler exposes the plan/progress operations over HTTP.
type CoachingHandler struct {
	coachingService service.CoachingService
	backupService   service.BackupService
}

// NewCoachingHandler creates a new CoachingHandler.
func NewCoachingHandler(coachingService service.CoachingService, backupService service.BackupService) *CoachingHandler {
	return &CoachingHandler{
		coachingService: coachingService,
		backupService:   backupService,
	}
}

// --- Request/Response Structs ---

type AssessmentPreferencesRequest struct {
	Pace          string `json:"pace" binding:"required,oneof=intensivo moderado relajado"`
	LearningStyle string `json:"learningStyle"`
	TimeOfDay     string `json:"timeOfDay"`
}

type CreateAssessmentRequest struct {
	MainObjective    string                       `json:"mainObjective" binding:"required"`
	CurrentSituation string                       `json:"currentSituation"`
	TimeCommitment   string                       `json:"timeCommitment"`
	Resources        []string                     `json:"resources"`
	Preferences      AssessmentPreferencesRequest `json:"preferences" binding:"required"`
	Metadata         map[string]string            `json:"metadata"`
}

type MilestoneResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"targetDate"`
	Order       int       `json:"order"`
}

type TaskItemResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Importance    string `json:"importance"`
	Category      string `json:"category"`
	EstimatedTime string `json:"estimatedTime"`
}

type DailyTaskResponse struct {
	ID    string             `json:"id"`
	Day   int                `json:"day"`
	Tasks []TaskItemResponse `json:"tasks"`
}

type ExerciseResponse struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
	Rest   string `json:"rest"`
	Notes  string `json:"notes,omitempty"`
}

type FitnessRoutineResponse struct {
	ID        string             `json:"id"`
	Day       string             `json:"day"`
	Focus     string             `json:"focus"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type PlanResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"userId"`
	AssessmentID    string                   `json:"assessmentId"`
	Objective       string                   `json:"objective"`
	Timeframe       string                   `json:"timeframe"`
	Milestones      []MilestoneResponse      `json:"milestones"`
	DailyGuidance   []DailyTaskResponse      `json:"dailyGuidance"`
	FitnessRoutines []FitnessRoutineResponse `json:"fitnessRoutines,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// --- Handler Methods ---

// CreateAssessment stores the questionnaire result and generates the plan.
func (h *CoachingHandler) CreateAssessment(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.coachingService.CreatePlan(c.Request.Context(), service.CreateAssessmentInput{
		UserID:           userID,
		MainObjective:    req.MainObjective,
		CurrentSituation: req.CurrentSituation,
		TimeCommitment:   req.TimeCommitment,
		Resources:        req.Resources,
		Preferences: domain.AssessmentPreferences{
			Pace:          domain.Pace(req.Preferences.Pace),
			LearningStyle: req.Preferences.LearningStyle,
			TimeOfDay:     req.Preferences.TimeOfDay,
		},
		Metadata: req.Metadata,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create plan.")
		return
	}

	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// GetPlan returns the active plan.
func (h *CoachingHandler) GetPlan(c *gin.Context) {
	plan := h.coachingService.Plan()
	if plan == nil {
		abortWithError(c, http.StatusNotFound, "No active plan.")
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// GetRoutines returns the plan's fitness routines.
func (h *CoachingHandler) GetRoutines(c *gin.Context) {
	plan := h.coachingService.Plan()
	if plan == nil {
		abortWithError(c, http.StatusNotFound, "No active plan.")
		return
	}
	c.JSON(http.StatusOK, MapRoutinesToResponse(plan.FitnessRoutines))
}

// GetDailyGuidance returns the task bundle for ?day=N, defaulting to the
// current day.
func (h *CoachingHandler) GetDailyGuidance(c *gin.Context) {
	var day *int
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			abortWithError(c, http.StatusBadRequest, "Invalid day parameter.")
			return
		}
		day = &parsed
	}

	guidance := h.coachingService.DailyGuidance(day)
	if guidance == nil {
		abortWithError(c, http.StatusNotFound, "No guidance for this day.")
		return
	}
	c.JSON(http.StatusOK, MapDailyTaskToResponse(guidance))
}

// CompleteTask marks one task as done.
func (h *CoachingHandler) CompleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		abortWithError(c, http.StatusBadRequest, "Task ID is required.")
		return
	}

	if err := h.coachingService.CompleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save progress.")
		}
		return
	}

	summary := h.coachingService.Summary()
	c.JSON(http.StatusOK, summary)
}

// GetProgress returns the derived progress summary.
func (h *CoachingHandler) GetProgress(c *gin.Context) {
	summary := h.coachingService.Summary()
	if summary == nil {
		abortWithError(c, http.StatusNotFound, "No active plan.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ResetTodayTasks clears the current day's completions.
func (h *CoachingHandler) ResetTodayTasks(c *gin.Context) {
	if err := h.coachingService.ResetTodayTasks(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to reset today's tasks.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetAll purges all stored state: the full re-onboarding path.
func (h *CoachingHandler) ResetAll(c *gin.Context) {
	if err := h.coachingService.ResetAll(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to reset stored state.")
		return
	}
	c.Status(http.StatusNoContent)
}

// Backup exports the state bundle to object storage.
func (h *CoachingHandler) Backup(c *gin.Context) {
	result, err := h.backupService.Backup(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNothingToBackup) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create backup.")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// --- DTO Mappers ---

func MapPlanToResponse(plan *domain.Plan) PlanResponse {
	resp := PlanResponse{
		ID:           plan.ID,
		UserID:       plan.UserID,
		AssessmentID: plan.AssessmentID,
		Objective:    plan.Objective,
		Timeframe:    plan.Timeframe,
		CreatedAt:    plan.CreatedAt,
	}

	resp.Milestones = make([]MilestoneResponse, len(plan.Milestones))
	for i, m := range plan.Milestones {
		resp.Milestones[i] = MilestoneResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			TargetDate:  m.TargetDate,
			Order:       m.Order,
		}
	}

	resp.DailyGuidance = make([]DailyTaskResponse, len(plan.DailyGuidance))
	for i := range plan.DailyGuidance {
		resp.DailyGuidance[i] = MapDailyTaskToResponse(&plan.DailyGuidance[i])
	}

	if len(plan.FitnessRoutines) > 0 {
		resp.FitnessRoutines = MapRoutinesToResponse(plan.FitnessRoutines)
	}

	return resp
}

func MapDailyTaskToResponse(task *domain.DailyTask) DailyTaskResponse {
	resp := DailyTaskResponse{
		ID:    task.ID,
		Day:   task.Day,
		Tasks: make([]TaskItemResponse, len(task.Tasks)),
	}
	for i, item := range task.Tasks {
		resp.Tasks[i] = TaskItemResponse{
			ID:            item.ID,
			Title:         item.Title,
			Description:   item.Description,
			Importance:    item.Importance,
			Category:      item.Category,
			EstimatedTime: item.EstimatedTime,
		}
	}
	return resp
}

func MapRoutinesToResponse(routines []domain.FitnessRoutine) []FitnessRoutineResponse {
	resp := make([]FitnessRoutineResponse, len(routines))
	for i, r := range routines {
		exercises := make([]ExerciseResponse, len(r.Exercises))
		for j, e := range r.Exercises {
			exercises[j] = ExerciseResponse{
				Name:   e.Name,
				Sets:   e.Sets,
				Reps:   e.Reps,
				Weight: e.Weight,
				Rest:   e.Rest,
				Notes:  e.Notes,
			}
		}
		resp[i] = FitnessRoutineResponse{
			ID:        r.ID,
			Day:       r.Day,
			Focus:     r.Focus,
			Exercises: exercises,
		}
	}
	return resp
}
