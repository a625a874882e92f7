package generator

import (
	"fmt"
	"time"

	"micoach/coaching-app/internal/domain"

	"github.com/google/uuid"
)

// Generate builds a personalized plan from an assessment. It is deterministic
// given the assessment and the reference time: generated ids differ between
// runs, but the set of milestones, daily tasks and routines does not. There is
// no failure path — unknown tags and missing metadata fall through to
// documented defaults.
func Generate(assessment *domain.Assessment, now time.Time) *domain.Plan {
	timeframe := determineTimeframe(assessment)
	days := timeframeDays(timeframe)

	plan := &domain.Plan{
		ID:            uuid.NewString(),
		UserID:        assessment.UserID,
		AssessmentID:  assessment.ID,
		Objective:     assessment.MainObjective,
		Timeframe:     timeframe,
		Milestones:    generateMilestones(assessment, days, now),
		DailyGuidance: generateDailyGuidance(assessment, days),
		CreatedAt:     now,
	}

	// Routines only when Salud is selected and the assessment carries a full
	// fitness profile.
	if assessment.HasObjective(domain.ObjectiveSalud) {
		if goal, level, ok := assessment.FitnessProfile(); ok {
			plan.FitnessRoutines = RoutinesFor(goal, level)
		}
	}

	return plan
}

// determineTimeframe picks the longest timeline across the selected objective
// tags, with a 30-day floor.
func determineTimeframe(assessment *domain.Assessment) string {
	pace := assessment.Preferences.Pace
	maxDays := domain.DefaultTimeframeDays

	for _, tag := range assessment.Objectives() {
		days := daysForObjective(domain.ParseObjective(tag), pace)
		if days > maxDays {
			maxDays = days
		}
	}

	return fmt.Sprintf("%d dias", maxDays)
}

func daysForObjective(objective domain.Objective, pace domain.Pace) int {
	switch objective {
	case domain.ObjectiveSalud, domain.ObjectiveAprendizaje:
		switch pace {
		case domain.PaceIntensivo:
			return 30
		case domain.PaceModerado:
			return 60
		default:
			return 90
		}
	case domain.ObjectiveProductividad:
		switch pace {
		case domain.PaceIntensivo:
			return 21
		case domain.PaceModerado:
			return 30
		default:
			return 45
		}
	default:
		return domain.DefaultTimeframeDays
	}
}

func timeframeDays(timeframe string) int {
	p := domain.Plan{Timeframe: timeframe}
	return p.TimeframeDays()
}

// milestonePoints are the day offsets of the checkpoints, keyed by total-days
// bucket.
func milestonePoints(days int) []int {
	switch {
	case days <= 30:
		return []int{5, 10, 20, 30}
	case days <= 60:
		return []int{7, 15, 30, 45, 60}
	default:
		return []int{10, 30, 60, 90}
	}
}

func generateMilestones(assessment *domain.Assessment, days int, now time.Time) []domain.Milestone {
	points := milestonePoints(days)
	milestones := make([]domain.Milestone, 0, len(points))

	for index, day := range points {
		milestones = append(milestones, domain.Milestone{
			ID:          uuid.NewString(),
			Title:       milestoneTitle(assessment.Objectives(), index),
			Description: fmt.Sprintf("Descripción del hito %d para %s", index+1, assessment.MainObjective),
			TargetDate:  now.AddDate(0, 0, day),
			Order:       index + 1,
		})
	}

	return milestones
}

var genericMilestoneTitles = [4]string{"Construir Bases", "Crear Rutinas", "Consolidar Hábitos", "Dominar el Sistema"}

var milestoneTitlesByObjective = map[domain.Objective][4]string{
	domain.ObjectiveSalud:         {"Establecer Bases", "Primera Rutina", "Consistencia Diaria", "Hábito Consolidado"},
	domain.ObjectiveProductividad: {"Sistema Básico", "Automatización", "Optimización", "Maestría"},
	domain.ObjectiveAprendizaje:   {"Fundamentos", "Aplicación", "Profundización", "Dominio"},
}

// milestoneTitle cycles through a 4-entry rotation: a generic one for
// multi-objective assessments, a category-specific one otherwise.
func milestoneTitle(tags []string, index int) string {
	if len(tags) > 1 {
		return genericMilestoneTitles[index%4]
	}

	var objective domain.Objective
	if len(tags) == 1 {
		objective = domain.ParseObjective(tags[0])
	}
	if titles, ok := milestoneTitlesByObjective[objective]; ok {
		return titles[index%4]
	}
	return fmt.Sprintf("Hito #%d", index+1)
}

func generateDailyGuidance(assessment *domain.Assessment, days int) []domain.DailyTask {
	guidance := make([]domain.DailyTask, 0, days)

	for day := 1; day <= days; day++ {
		guidance = append(guidance, domain.DailyTask{
			ID:    uuid.NewString(),
			Day:   day,
			Tasks: tasksForDay(assessment, day, days),
		})
	}

	return guidance
}

func tasksForDay(assessment *domain.Assessment, day, totalDays int) []domain.TaskItem {
	var tasks []domain.TaskItem
	progress := float64(day) / float64(totalDays)

	for _, tag := range assessment.Objectives() {
		switch domain.ParseObjective(tag) {
		case domain.ObjectiveSalud:
			tasks = append(tasks, saludTask(assessment, day, totalDays, progress))
		case domain.ObjectiveAprendizaje:
			tasks = append(tasks, aprendizajeTask(day, totalDays, progress))
		case domain.ObjectiveProductividad:
			tasks = append(tasks, productividadTask(day, totalDays))
		case domain.ObjectiveOtro:
			tasks = append(tasks, otroTask(day, progress))
		}
	}

	// A day only gets the reflection tail when it produced at least one task.
	if len(tasks) > 0 {
		tasks = append(tasks, domain.TaskItem{
			ID:            uuid.NewString(),
			Title:         "Reflexión diaria",
			Description:   "Registra tu progreso de hoy",
			Importance:    "La autoevaluación te ayuda a mejorar",
			Category:      "General",
			EstimatedTime: "5 minutos",
		})
	}

	return tasks
}

// walkRamp holds at 30 minutes the first week, climbs proportionally until
// the midpoint and plateaus at 60 afterwards. The proportional value is
// truncated, not rounded.
func walkRamp(day, totalDays int, progress float64) int {
	switch {
	case day <= 7:
		return 30
	case day <= totalDays/2:
		return int(progress * 60)
	default:
		return 60
	}
}

func saludTask(assessment *domain.Assessment, day, totalDays int, progress float64) domain.TaskItem {
	if goal, _, ok := assessment.FitnessProfile(); ok {
		// Odd days train, even days rest with cardio.
		if day%2 == 1 {
			return domain.TaskItem{
				ID:            uuid.NewString(),
				Title:         fmt.Sprintf("Entrenamiento de %s", goal),
				Description:   fmt.Sprintf("Sigue tu rutina de %s para hoy", goal),
				Importance:    "Fundamental para tu progreso físico",
				Category:      "Fitness",
				EstimatedTime: "45-60 minutos",
			}
		}
		duration := walkRamp(day, totalDays, progress)
		return domain.TaskItem{
			ID:            uuid.NewString(),
			Title:         fmt.Sprintf("Caminar %d minutos", duration),
			Description:   "Actividad cardiovascular en día de descanso",
			Importance:    "Mantener un estilo de vida activo",
			Category:      "Salud",
			EstimatedTime: fmt.Sprintf("%d minutos", duration),
		}
	}

	duration := walkRamp(day, totalDays, progress)
	return domain.TaskItem{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("Caminar %d minutos", duration),
		Description:   "Actividad física para mejorar tu salud",
		Importance:    "Mantener un estilo de vida activo",
		Category:      "Salud",
		EstimatedTime: fmt.Sprintf("%d minutos", duration),
	}
}

func aprendizajeTask(day, totalDays int, progress float64) domain.TaskItem {
	var pages int
	switch {
	case day <= 7:
		pages = 20
	case day <= totalDays/2:
		pages = int(progress * 50)
	default:
		pages = 50
	}

	estimated := "1 hora"
	if day <= 7 {
		estimated = "30-40 minutos"
	}

	return domain.TaskItem{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("Leer %d páginas", pages),
		Description:   "Lectura diaria para expandir tus conocimientos",
		Importance:    "El aprendizaje constante es clave",
		Category:      "Aprendizaje",
		EstimatedTime: estimated,
	}
}

func productividadTask(day, totalDays int) domain.TaskItem {
	var title string
	switch {
	case day <= 7:
		title = "Planifica tus 3 tareas principales"
	case day <= totalDays/2:
		title = "Optimiza tu flujo de trabajo"
	default:
		title = "Revisa y ajusta tu sistema"
	}

	return domain.TaskItem{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   "Estructura tu día para máxima eficiencia",
		Importance:    "La organización es fundamental",
		Category:      "Productividad",
		EstimatedTime: "20 minutos",
	}
}

// otroTask ramps 30→60 minutes with no midpoint plateau, unlike the Salud and
// Aprendizaje rules.
func otroTask(day int, progress float64) domain.TaskItem {
	duration := 30
	if day > 7 {
		duration = int(progress * 60)
	}

	return domain.TaskItem{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("Dedica %d minutos a tu objetivo personal", duration),
		Description:   "Avanza hacia tus metas personales",
		Importance:    "Cada día cuenta",
		Category:      "Otro",
		EstimatedTime: fmt.Sprintf("%d minutos", duration),
	}
}
