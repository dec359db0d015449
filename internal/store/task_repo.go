package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/fcetrainer/ent"
	enttask "github.com/abhisek/fcetrainer/ent/task"
	"github.com/abhisek/fcetrainer/internal/exam"
)

type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Insert(ctx context.Context, t *exam.Task) (int, error) {
	src := enttask.SourceManual
	if t.Source == exam.SourceGenerated {
		src = enttask.SourceGenerated
	}

	create := r.client.Task.Create().
		SetExercise(string(t.Exercise)).
		SetPayload([]byte(t.Payload)).
		SetSource(src)
	if t.GrammarTopic != "" {
		create = create.SetGrammarTopic(t.GrammarTopic)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert %s task: %w", t.Exercise, err)
	}
	return row.ID, nil
}

func (r *taskRepo) Get(ctx context.Context, ex exam.Exercise, id int) (*exam.Task, error) {
	row, err := r.client.Task.Query().
		Where(enttask.ID(id), enttask.ExerciseEQ(string(ex))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s task %d: %w", ex, id, err)
	}
	return taskFromRow(row), nil
}

func (r *taskRepo) GetMany(ctx context.Context, ex exam.Exercise, ids []int) ([]*exam.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Task.Query().
		Where(enttask.ExerciseEQ(string(ex)), enttask.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s tasks: %w", ex, err)
	}

	byID := make(map[int]*exam.Task, len(rows))
	for _, row := range rows {
		byID[row.ID] = taskFromRow(row)
	}
	out := make([]*exam.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *taskRepo) RandomExcluding(ctx context.Context, ex exam.Exercise, excluded []int, extraExclude int) (int, error) {
	ids, err := r.eligibleIDs(ctx, ex, excluded, extraExclude)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[rand.IntN(len(ids))], nil
}

func (r *taskRepo) RandomIDs(ctx context.Context, ex exam.Exercise, excluded []int, limit int) ([]int, error) {
	ids, err := r.eligibleIDs(ctx, ex, excluded, 0)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// eligibleIDs fetches all candidate ids and filters in Go. The candidate set
// per exercise is small (single-user scale), and picking from the full id
// list keeps the selection uniform.
func (r *taskRepo) eligibleIDs(ctx context.Context, ex exam.Exercise, excluded []int, extraExclude int) ([]int, error) {
	ids, err := r.client.Task.Query().
		Where(enttask.ExerciseEQ(string(ex))).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s task ids: %w", ex, err)
	}

	skip := make(map[int]bool, len(excluded)+1)
	for _, id := range excluded {
		skip[id] = true
	}
	if extraExclude != 0 {
		skip[extraExclude] = true
	}

	out := ids[:0]
	for _, id := range ids {
		if !skip[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *taskRepo) Recent(ctx context.Context, ex exam.Exercise, limit int) ([]*exam.Task, error) {
	q := r.client.Task.Query().
		Where(enttask.ExerciseEQ(string(ex))).
		Order(ent.Desc(enttask.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent %s tasks: %w", ex, err)
	}
	out := make([]*exam.Task, len(rows))
	for i, row := range rows {
		out[i] = taskFromRow(row)
	}
	return out, nil
}

func (r *taskRepo) Count(ctx context.Context, ex exam.Exercise) (int, error) {
	n, err := r.client.Task.Query().
		Where(enttask.ExerciseEQ(string(ex))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s tasks: %w", ex, err)
	}
	return n, nil
}

func (r *taskRepo) TransformationPairExists(ctx context.Context, sentence1, keyword string) (bool, error) {
	rows, err := r.client.Task.Query().
		Where(enttask.ExerciseEQ(string(exam.Transformation))).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("query transformation tasks: %w", err)
	}

	s1 := strings.TrimSpace(sentence1)
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	for _, row := range rows {
		var p exam.TransformationPayload
		if err := json.Unmarshal(row.Payload, &p); err != nil {
			continue
		}
		if strings.TrimSpace(p.Sentence1) == s1 && strings.ToUpper(strings.TrimSpace(p.Keyword)) == kw {
			return true, nil
		}
	}
	return false, nil
}

func taskFromRow(row *ent.Task) *exam.Task {
	return &exam.Task{
		ID:           row.ID,
		Exercise:     exam.Exercise(row.Exercise),
		Payload:      json.RawMessage(row.Payload),
		GrammarTopic: row.GrammarTopic,
		Source:       exam.Source(row.Source),
		CreatedAt:    row.CreatedAt,
	}
}
