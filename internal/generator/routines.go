package generator

import (
	"micoach/coaching-app/internal/domain"

	"github.com/google/uuid"
)

// RoutinesFor returns the weekly routine set for a fitness goal and level.
// The level fixes the number of training days (3/4/5); every goal currently
// routes to the strength tables — the routing switch is the contract, the
// per-goal content is not differentiated yet.
func RoutinesFor(goal domain.FitnessGoal, level domain.FitnessLevel) []domain.FitnessRoutine {
	daysPerWeek := level.DaysPerWeek()

	switch goal {
	case domain.GoalFuerza:
		return strengthRoutines(daysPerWeek)
	case domain.GoalHipertrofia:
		return hypertrophyRoutines(daysPerWeek)
	case domain.GoalPerdidaDePeso:
		return weightLossRoutines(daysPerWeek)
	case domain.GoalResistencia:
		return enduranceRoutines(daysPerWeek)
	case domain.GoalTonificacion:
		return toneRoutines(daysPerWeek)
	default:
		return generalRoutines(daysPerWeek)
	}
}

func hypertrophyRoutines(daysPerWeek int) []domain.FitnessRoutine {
	return strengthRoutines(daysPerWeek)
}

func weightLossRoutines(daysPerWeek int) []domain.FitnessRoutine {
	return strengthRoutines(daysPerWeek)
}

func enduranceRoutines(daysPerWeek int) []domain.FitnessRoutine {
	return strengthRoutines(daysPerWeek)
}

func toneRoutines(daysPerWeek int) []domain.FitnessRoutine {
	return strengthRoutines(daysPerWeek)
}

func generalRoutines(daysPerWeek int) []domain.FitnessRoutine {
	return strengthRoutines(daysPerWeek)
}

func strengthRoutines(daysPerWeek int) []domain.FitnessRoutine {
	switch daysPerWeek {
	case 4:
		return strength4Days()
	case 5:
		return strength5Days()
	default:
		return strength3Days()
	}
}

func routine(day, focus string, exercises []domain.Exercise) domain.FitnessRoutine {
	return domain.FitnessRoutine{
		ID:        uuid.NewString(),
		Day:       day,
		Focus:     focus,
		Exercises: exercises,
	}
}

// Beginner split: three full-coverage days.
func strength3Days() []domain.FitnessRoutine {
	return []domain.FitnessRoutine{
		routine("Día 1", "Piernas y Core", []domain.Exercise{
			{Name: "Sentadillas", Sets: 3, Reps: "8-10", Weight: "Moderado", Rest: "2 min"},
			{Name: "Peso muerto", Sets: 3, Reps: "8", Weight: "Moderado", Rest: "2 min"},
			{Name: "Prensa de piernas", Sets: 3, Reps: "10", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Plancha", Sets: 3, Reps: "30 seg", Weight: "Peso corporal", Rest: "60 seg"},
		}),
		routine("Día 2", "Pecho y Espalda", []domain.Exercise{
			{Name: "Press de banca", Sets: 3, Reps: "8", Weight: "Moderado", Rest: "2 min"},
			{Name: "Remo con barra", Sets: 3, Reps: "8-10", Weight: "Moderado", Rest: "2 min"},
			{Name: "Dominadas asistidas", Sets: 3, Reps: "6-8", Weight: "Peso corporal", Rest: "90 seg"},
			{Name: "Fondos en banco", Sets: 3, Reps: "10", Weight: "Peso corporal", Rest: "90 seg"},
		}),
		routine("Día 3", "Hombros y Brazos", []domain.Exercise{
			{Name: "Press militar", Sets: 3, Reps: "8-10", Weight: "Moderado", Rest: "2 min"},
			{Name: "Curl de bíceps", Sets: 3, Reps: "10", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Extensión de tríceps", Sets: 3, Reps: "10", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Elevaciones laterales", Sets: 3, Reps: "12", Weight: "Ligero", Rest: "60 seg"},
		}),
	}
}

// Intermediate split: four days.
func strength4Days() []domain.FitnessRoutine {
	return []domain.FitnessRoutine{
		routine("Día 1", "Piernas", []domain.Exercise{
			{Name: "Sentadillas", Sets: 4, Reps: "6-8", Weight: "Pesado", Rest: "2-3 min"},
			{Name: "Peso muerto", Sets: 4, Reps: "6", Weight: "Pesado", Rest: "3 min"},
			{Name: "Prensa de piernas", Sets: 3, Reps: "8-10", Weight: "Moderado-Pesado", Rest: "2 min"},
			{Name: "Extensiones de cuádriceps", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Curl de isquiotibiales", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
		}),
		routine("Día 2", "Pecho y Tríceps", []domain.Exercise{
			{Name: "Press de banca", Sets: 4, Reps: "6-8", Weight: "Pesado", Rest: "2-3 min"},
			{Name: "Press inclinado con mancuernas", Sets: 3, Reps: "8-10", Weight: "Moderado-Pesado", Rest: "2 min"},
			{Name: "Fondos", Sets: 3, Reps: "8-10", Weight: "Peso corporal", Rest: "2 min"},
			{Name: "Extensiones de tríceps con polea", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
		}),
		routine("Día 3", "Espalda y Bíceps", []domain.Exercise{
			{Name: "Dominadas", Sets: 4, Reps: "6-8", Weight: "Peso corporal", Rest: "2-3 min"},
			{Name: "Remo con barra", Sets: 4, Reps: "6-8", Weight: "Pesado", Rest: "2-3 min"},
			{Name: "Remo con mancuerna", Sets: 3, Reps: "10", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Curl de bíceps con barra", Sets: 3, Reps: "8-10", Weight: "Moderado-Pesado", Rest: "2 min"},
			{Name: "Curl martillo", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
		}),
		routine("Día 4", "Hombros y Core", []domain.Exercise{
			{Name: "Press militar", Sets: 4, Reps: "6-8", Weight: "Pesado", Rest: "2-3 min"},
			{Name: "Elevaciones laterales", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Remo al mentón", Sets: 3, Reps: "8-10", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Plancha", Sets: 3, Reps: "45-60 seg", Weight: "Peso corporal", Rest: "60 seg"},
			{Name: "Crunch abdominal", Sets: 3, Reps: "15-20", Weight: "Peso corporal", Rest: "60 seg"},
		}),
	}
}

// Advanced split: five days, one muscle group per day.
func strength5Days() []domain.FitnessRoutine {
	return []domain.FitnessRoutine{
		routine("Día 1", "Piernas", []domain.Exercise{
			{Name: "Sentadillas", Sets: 5, Reps: "5", Weight: "Pesado", Rest: "3 min"},
			{Name: "Peso muerto", Sets: 5, Reps: "5", Weight: "Pesado", Rest: "3 min"},
			{Name: "Prensa de piernas", Sets: 4, Reps: "8", Weight: "Pesado", Rest: "2 min"},
			{Name: "Extensiones de cuádriceps", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Curl de isquiotibiales", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Elevaciones de pantorrilla", Sets: 4, Reps: "15-20", Weight: "Moderado", Rest: "60 seg"},
		}),
		routine("Día 2", "Pecho", []domain.Exercise{
			{Name: "Press de banca", Sets: 5, Reps: "5", Weight: "Pesado", Rest: "3 min"},
			{Name: "Press inclinado con barra", Sets: 4, Reps: "6-8", Weight: "Pesado", Rest: "2-3 min"},
			{Name: "Aperturas con mancuernas", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Fondos", Sets: 4, Reps: "8-10", Weight: "Peso corporal+carga", Rest: "2 min"},
			{Name: "Press declinado con mancuernas", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
		}),
		routine("Día 3", "Espalda", []domain.Exercise{
			{Name: "Dominadas", Sets: 5, Reps: "5-8", Weight: "Peso corporal+carga", Rest: "2-3 min"},
			{Name: "Remo con barra", Sets: 5, Reps: "5", Weight: "Pesado", Rest: "3 min"},
			{Name: "Remo con mancuerna", Sets: 3, Reps: "8-10", Weight: "Pesado", Rest: "2 min"},
			{Name: "Jalón al pecho", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Peso muerto rumano", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
		}),
		routine("Día 4", "Hombros", []domain.Exercise{
			{Name: "Press militar", Sets: 5, Reps: "5", Weight: "Pesado", Rest: "3 min"},
			{Name: "Press Arnold", Sets: 4, Reps: "8-10", Weight: "Moderado-Pesado", Rest: "2 min"},
			{Name: "Elevaciones laterales", Sets: 4, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Elevaciones frontales", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Remo al mentón", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Encogimientos de hombros", Sets: 4, Reps: "12-15", Weight: "Pesado", Rest: "90 seg"},
		}),
		routine("Día 5", "Brazos y Core", []domain.Exercise{
			{Name: "Curl de bíceps con barra", Sets: 4, Reps: "8-10", Weight: "Pesado", Rest: "2 min"},
			{Name: "Curl concentrado", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Extensión de tríceps con polea", Sets: 4, Reps: "8-10", Weight: "Pesado", Rest: "2 min"},
			{Name: "Press francés", Sets: 3, Reps: "10-12", Weight: "Moderado", Rest: "90 seg"},
			{Name: "Plancha", Sets: 4, Reps: "60 seg", Weight: "Peso corporal", Rest: "60 seg"},
			{Name: "Rueda abdominal", Sets: 3, Reps: "10-15", Weight: "Peso corporal", Rest: "90 seg"},
		}),
	}
}
