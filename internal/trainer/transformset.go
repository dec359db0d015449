package trainer

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/gen"
)

// TransformationSetSize is how many key word transformations make up one
// practice set.
const TransformationSetSize = 6

// recentTopicWindow is how many recently shown transformation tasks
// contribute their grammar topics to the freshness preference.
const recentTopicWindow = 20

// NextTransformationSet assembles a set of transformations to practice.
// A configured provider generates fresh items first; whatever the batch
// could not fill comes from stored tasks, preferring grammar topics not
// seen recently. Returns an empty slice when neither source has anything.
// One show event is recorded per returned task.
func (s *Service) NextTransformationSet(ctx context.Context) ([]*exam.Task, error) {
	var set []*exam.Task

	if s.synth != nil {
		generated, err := s.synth.GenerateTransformationBatch(ctx, s.level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: transformation generation failed: %v\n", err)
		}
		set = generated
	}

	if len(set) < TransformationSetSize {
		stored, err := s.storedTransformations(ctx, set, TransformationSetSize-len(set))
		if err != nil {
			return nil, err
		}
		set = append(set, stored...)
	}

	if len(set) == 0 {
		return nil, nil
	}

	ids := make([]int, len(set))
	for i, t := range set {
		ids[i] = t.ID
	}
	if err := s.shows.RecordMany(ctx, exam.Transformation, ids); err != nil {
		return nil, err
	}
	return set, nil
}

// storedTransformations draws need tasks from the store: twice as many
// random candidates as needed, re-validated item by item, with tasks on a
// recently shown grammar topic sorted behind fresh-topic ones.
func (s *Service) storedTransformations(ctx context.Context, chosen []*exam.Task, need int) ([]*exam.Task, error) {
	recentShown, err := s.shows.RecentShownIDs(ctx, exam.Transformation, ShowWindow)
	if err != nil {
		return nil, err
	}
	excluded := recentShown
	for _, t := range chosen {
		excluded = append(excluded, t.ID)
	}

	ids, err := s.tasks.RandomIDs(ctx, exam.Transformation, excluded, 2*TransformationSetSize)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// The exclusion window may cover the whole table; retry without it.
		ids, err = s.tasks.RandomIDs(ctx, exam.Transformation, nil, 2*TransformationSetSize)
		if err != nil {
			return nil, err
		}
	}

	candidates, err := s.tasks.GetMany(ctx, exam.Transformation, ids)
	if err != nil {
		return nil, err
	}

	// Seeded data predates the quality checks, so stored tasks are
	// re-validated on the way out.
	var usable []*exam.Task
	for _, t := range candidates {
		p, err := t.Transformation()
		if err != nil {
			continue
		}
		if gen.UsableTransformation(*p) {
			usable = append(usable, t)
		}
	}

	recentTopics, err := s.shows.RecentGrammarTopics(ctx, recentTopicWindow)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(recentTopics))
	for _, topic := range recentTopics {
		seen[strings.ToLower(topic)] = true
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return !topicRecentlySeen(usable[i], seen) && topicRecentlySeen(usable[j], seen)
	})

	if len(usable) > need {
		usable = usable[:need]
	}
	return usable, nil
}

func topicRecentlySeen(t *exam.Task, seen map[string]bool) bool {
	return t.GrammarTopic != "" && seen[strings.ToLower(t.GrammarTopic)]
}
