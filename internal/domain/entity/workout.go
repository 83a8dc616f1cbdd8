package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// WorkoutType modalidade do treino.
type WorkoutType string

// Modalidades válidas.
const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutMixed       WorkoutType = "mixed"
)

// IsValid informa se a modalidade é reconhecida.
func (t WorkoutType) IsValid() bool {
	switch t {
	case WorkoutStrength, WorkoutCardio, WorkoutFlexibility, WorkoutMixed:
		return true
	}
	return false
}

// MuscleGroup grupo muscular trabalhado por um exercício.
type MuscleGroup string

// Grupos musculares válidos.
const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
)

// IsValid informa se o grupo é reconhecido.
func (g MuscleGroup) IsValid() bool {
	switch g {
	case MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore, MuscleFullBody:
		return true
	}
	return false
}

const (
	exerciseMinSets        = 1
	exerciseMaxSets        = 20
	exerciseMinReps        = 1
	exerciseMaxReps        = 100
	exerciseMinRestSeconds = 0
	exerciseMaxRestSeconds = 600
)

// Exercise exercício de um treino. A ordem é atribuída pelo chamador,
// não sequenciada automaticamente.
type Exercise struct {
	Name        string
	MuscleGroup MuscleGroup
	Sets        int
	Reps        int
	RestSeconds int
	Order       int
}

func (e Exercise) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return domain.NewDomainError("exercício precisa de nome")
	}
	if !e.MuscleGroup.IsValid() {
		return domain.NewDomainError("grupo muscular inválido: %s", e.MuscleGroup)
	}
	if e.Sets < exerciseMinSets || e.Sets > exerciseMaxSets {
		return domain.NewDomainError("séries devem estar entre %d e %d", exerciseMinSets, exerciseMaxSets)
	}
	if e.Reps < exerciseMinReps || e.Reps > exerciseMaxReps {
		return domain.NewDomainError("repetições devem estar entre %d e %d", exerciseMinReps, exerciseMaxReps)
	}
	if e.RestSeconds < exerciseMinRestSeconds || e.RestSeconds > exerciseMaxRestSeconds {
		return domain.NewDomainError("descanso deve estar entre %d e %d segundos", exerciseMinRestSeconds, exerciseMaxRestSeconds)
	}
	if e.Order < 0 {
		return domain.NewDomainError("ordem do exercício não pode ser negativa")
	}
	return nil
}

// Workout treino criado pelo cliente.
type Workout struct {
	id        string
	userID    string
	name      string
	wtype     WorkoutType
	exercises []Exercise
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewWorkout cria um treino.
func NewWorkout(userID, name string, wtype WorkoutType, exercises []Exercise, notes string, now time.Time) (*Workout, error) {
	w := &Workout{
		id:        uuid.New().String(),
		userID:    userID,
		name:      strings.TrimSpace(name),
		wtype:     wtype,
		exercises: append([]Exercise(nil), exercises...),
		notes:     strings.TrimSpace(notes),
		createdAt: now,
		updatedAt: now,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// ReconstituteWorkout reidrata o treino da persistência, revalidando.
func ReconstituteWorkout(id, userID, name string, wtype WorkoutType, exercises []Exercise, notes string, createdAt, updatedAt time.Time) (*Workout, error) {
	if id == "" {
		return nil, domain.NewDomainError("id do treino é obrigatório")
	}
	w := &Workout{
		id:        id,
		userID:    userID,
		name:      strings.TrimSpace(name),
		wtype:     wtype,
		exercises: append([]Exercise(nil), exercises...),
		notes:     strings.TrimSpace(notes),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workout) validate() error {
	if w.userID == "" {
		return domain.NewDomainError("userId é obrigatório")
	}
	if len(w.name) < 2 || len(w.name) > 100 {
		return domain.NewDomainError("nome do treino deve ter entre 2 e 100 caracteres")
	}
	if !w.wtype.IsValid() {
		return domain.NewDomainError("modalidade de treino inválida: %s", w.wtype)
	}
	if len(w.exercises) == 0 {
		return domain.NewDomainError("treino precisa de pelo menos um exercício")
	}
	for _, e := range w.exercises {
		if err := e.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Update substitui nome, modalidade, exercícios e notas, revalidando.
func (w *Workout) Update(name string, wtype WorkoutType, exercises []Exercise, notes string, now time.Time) (*Workout, error) {
	clone := *w
	clone.name = strings.TrimSpace(name)
	clone.wtype = wtype
	clone.exercises = append([]Exercise(nil), exercises...)
	clone.notes = strings.TrimSpace(notes)
	clone.updatedAt = now
	if err := clone.validate(); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (w *Workout) ID() string           { return w.id }
func (w *Workout) UserID() string       { return w.userID }
func (w *Workout) Name() string         { return w.name }
func (w *Workout) Type() WorkoutType    { return w.wtype }
func (w *Workout) Notes() string        { return w.notes }
func (w *Workout) CreatedAt() time.Time { return w.createdAt }
func (w *Workout) UpdatedAt() time.Time { return w.updatedAt }

// Exercises devolve cópia defensiva dos exercícios.
func (w *Workout) Exercises() []Exercise {
	return append([]Exercise(nil), w.exercises...)
}
