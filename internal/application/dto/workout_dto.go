package dto

import "time"

// ExerciseInput exercício de um treino; a ordem é atribuída pelo chamador.
type ExerciseInput struct {
	Name        string `json:"name" validate:"required"`
	MuscleGroup string `json:"muscle_group" validate:"required"`
	Sets        int    `json:"sets" validate:"required,min=1,max=20"`
	Reps        int    `json:"reps" validate:"required,min=1,max=100"`
	RestSeconds int    `json:"rest_seconds" validate:"min=0,max=600"`
	Order       int    `json:"order" validate:"min=0"`
}

// WorkoutRequest criação ou atualização de treino.
type WorkoutRequest struct {
	Name      string          `json:"name" validate:"required,min=2,max=100"`
	Type      string          `json:"type" validate:"required"`
	Exercises []ExerciseInput `json:"exercises" validate:"required,min=1"`
	Notes     string          `json:"notes,omitempty"`
}

// WorkoutResponse saída de treino.
type WorkoutResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Exercises []ExerciseInput `json:"exercises"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
