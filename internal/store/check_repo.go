package store

import (
	"context"
	"fmt"

	"github.com/abhisek/fcetrainer/ent"
	"github.com/abhisek/fcetrainer/ent/checkevent"
	"github.com/abhisek/fcetrainer/internal/exam"
)

type checkRepo struct {
	client *ent.Client
}

func (r *checkRepo) Record(ctx context.Context, ex exam.Exercise, score, total int) error {
	if total <= 0 {
		// Nothing attempted; not worth a history row.
		return nil
	}
	_, err := r.client.CheckEvent.Create().
		SetExercise(string(ex)).
		SetScore(score).
		SetTotal(total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record check for %s: %w", ex, err)
	}
	return nil
}

func (r *checkRepo) Stats(ctx context.Context) ([]ExerciseStats, error) {
	rows, err := r.client.CheckEvent.Query().
		Order(ent.Asc(checkevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query check history: %w", err)
	}

	byExercise := make(map[exam.Exercise]*ExerciseStats)
	for _, row := range rows {
		ex := exam.Exercise(row.Exercise)
		s, ok := byExercise[ex]
		if !ok {
			s = &ExerciseStats{Exercise: ex}
			byExercise[ex] = s
		}
		s.TotalCorrect += row.Score
		s.TotalAnswered += row.Total
		s.Attempts++
		if row.CreatedAt.After(s.LastAttemptAt) {
			s.LastAttemptAt = row.CreatedAt
		}
	}

	out := make([]ExerciseStats, 0, len(exam.All()))
	for _, ex := range exam.All() {
		if s, ok := byExercise[ex]; ok {
			out = append(out, *s)
		} else {
			out = append(out, ExerciseStats{Exercise: ex})
		}
	}
	return out, nil
}
