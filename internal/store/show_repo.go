package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/fcetrainer/ent"
	"github.com/abhisek/fcetrainer/ent/showevent"
	"github.com/abhisek/fcetrainer/internal/exam"
)

type showRepo struct {
	client *ent.Client
}

func (r *showRepo) Record(ctx context.Context, ex exam.Exercise, taskID int) error {
	_, err := r.client.ShowEvent.Create().
		SetExercise(string(ex)).
		SetTaskID(taskID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record show of %s task %d: %w", ex, taskID, err)
	}
	return nil
}

func (r *showRepo) RecordMany(ctx context.Context, ex exam.Exercise, taskIDs []int) error {
	for _, id := range taskIDs {
		if err := r.Record(ctx, ex, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *showRepo) RecentShownIDs(ctx context.Context, ex exam.Exercise, window int) ([]int, error) {
	rows, err := r.client.ShowEvent.Query().
		Where(showevent.ExerciseEQ(string(ex))).
		Order(ent.Desc(showevent.FieldID)).
		Limit(window).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent shows for %s: %w", ex, err)
	}

	seen := make(map[int]bool, len(rows))
	var ids []int
	for _, row := range rows {
		if !seen[row.TaskID] {
			seen[row.TaskID] = true
			ids = append(ids, row.TaskID)
		}
	}
	return ids, nil
}

func (r *showRepo) RecentGrammarTopics(ctx context.Context, limit int) ([]string, error) {
	// Over-fetch events: consecutive shows often repeat tasks and many
	// tasks share a topic.
	events, err := r.client.ShowEvent.Query().
		Where(showevent.ExerciseEQ(string(exam.Transformation))).
		Order(ent.Desc(showevent.FieldID)).
		Limit(limit * 10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent transformation shows: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(events))
	seenID := make(map[int]bool, len(events))
	for _, e := range events {
		if !seenID[e.TaskID] {
			seenID[e.TaskID] = true
			ids = append(ids, e.TaskID)
		}
	}

	tasks, err := (&taskRepo{client: r.client}).GetMany(ctx, exam.Transformation, ids)
	if err != nil {
		return nil, err
	}
	topicOf := make(map[int]string, len(tasks))
	for _, t := range tasks {
		topicOf[t.ID] = strings.TrimSpace(t.GrammarTopic)
	}

	var topics []string
	seenTopic := make(map[string]bool)
	for _, id := range ids {
		topic := topicOf[id]
		if topic == "" {
			continue
		}
		key := strings.ToLower(topic)
		if seenTopic[key] {
			continue
		}
		seenTopic[key] = true
		topics = append(topics, topic)
		if limit > 0 && len(topics) >= limit {
			break
		}
	}
	return topics, nil
}
