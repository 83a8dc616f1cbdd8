package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

var _ repository.WorkoutRepository = (*WorkoutRepo)(nil)

// WorkoutRepo implementação de WorkoutRepository sobre PostgreSQL.
// Os exercícios vão em JSONB na linha do treino.
type WorkoutRepo struct {
	q Querier
}

// NewWorkoutRepository constrói o adaptador de treinos.
func NewWorkoutRepository(q Querier) *WorkoutRepo {
	return &WorkoutRepo{q: q}
}

// exerciseDoc forma persistida de um exercício.
type exerciseDoc struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	Order       int    `json:"order"`
}

const workoutColumns = `id, user_id, name, type, exercises, notes, created_at, updated_at`

// Create persiste o treino.
func (r *WorkoutRepo) Create(w *entity.Workout) error {
	exercises, err := marshalExercises(w.Exercises())
	if err != nil {
		return err
	}
	query := `
		INSERT INTO workouts (` + workoutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		w.ID(), w.UserID(), w.Name(), string(w.Type()), exercises, w.Notes(),
		w.CreatedAt(), w.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

// FindByID busca o treino por ID. Retorna (nil, nil) se não existir.
func (r *WorkoutRepo) FindByID(id string) (*entity.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`
	return scanWorkout(r.q.QueryRow(context.Background(), query, id))
}

// Update grava a edição do treino.
func (r *WorkoutRepo) Update(w *entity.Workout) error {
	exercises, err := marshalExercises(w.Exercises())
	if err != nil {
		return err
	}
	query := `
		UPDATE workouts SET name = $2, type = $3, exercises = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		w.ID(), w.Name(), string(w.Type()), exercises, w.Notes(), w.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// Delete remove o treino.
func (r *WorkoutRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// ListByUser lista os treinos do usuário, mais recentes primeiro.
func (r *WorkoutRepo) ListByUser(userID string) ([]*entity.Workout, error) {
	query := `
		SELECT ` + workoutColumns + `
		FROM workouts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Workout
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, workout)
	}
	return out, rows.Err()
}

func marshalExercises(exercises []entity.Exercise) ([]byte, error) {
	docs := make([]exerciseDoc, 0, len(exercises))
	for _, e := range exercises {
		docs = append(docs, exerciseDoc{
			Name:        e.Name,
			MuscleGroup: string(e.MuscleGroup),
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Order:       e.Order,
		})
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}
	return raw, nil
}

func scanWorkout(row pgx.Row) (*entity.Workout, error) {
	var (
		id, userID, name, wtype, notes string
		rawExercises                   []byte
		createdAt, updatedAt           time.Time
	)
	err := row.Scan(&id, &userID, &name, &wtype, &rawExercises, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	var docs []exerciseDoc
	if len(rawExercises) > 0 {
		if err := json.Unmarshal(rawExercises, &docs); err != nil {
			return nil, fmt.Errorf("unmarshal exercises: %w", err)
		}
	}
	exercises := make([]entity.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, entity.Exercise{
			Name:        d.Name,
			MuscleGroup: entity.MuscleGroup(d.MuscleGroup),
			Sets:        d.Sets,
			Reps:        d.Reps,
			RestSeconds: d.RestSeconds,
			Order:       d.Order,
		})
	}
	return entity.ReconstituteWorkout(id, userID, name, entity.WorkoutType(wtype), exercises, notes, createdAt, updatedAt)
}
