package trainer

import (
	"context"

	"github.com/abhisek/fcetrainer/internal/store"
)

// PartStats is the accuracy summary for one exam part.
type PartStats struct {
	store.ExerciseStats

	// Percent is correct/answered as a percentage, 0 when nothing was
	// answered yet.
	Percent float64
}

// Stats returns per-part accuracy in paper order, including parts without
// any history yet.
func (s *Service) Stats(ctx context.Context) ([]PartStats, error) {
	raw, err := s.checks.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartStats, 0, len(raw))
	for _, es := range raw {
		ps := PartStats{ExerciseStats: es}
		if es.TotalAnswered > 0 {
			ps.Percent = 100 * float64(es.TotalCorrect) / float64(es.TotalAnswered)
		}
		out = append(out, ps)
	}
	return out, nil
}
