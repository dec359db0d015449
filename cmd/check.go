package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Grade your answers for a task",
	Long: `Grades a comma-separated list of answers against a stored task and
records the result in your practice history. For part 4 pass the six task
ids from 'next' via --tasks; blank answers there are skipped, not penalised.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		part, _ := cmd.Flags().GetInt("part")
		rawAnswers, _ := cmd.Flags().GetString("answers")

		ex, ok := exam.FromPart(part)
		if !ok {
			return fmt.Errorf("invalid part %d: choose 1-7", part)
		}
		answers := splitAnswers(rawAnswers)

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc := buildService(ctx, s, levelFlag(cmd))

		if ex == exam.Transformation {
			rawIDs, _ := cmd.Flags().GetString("tasks")
			ids, err := parseIDList(rawIDs)
			if err != nil {
				return err
			}
			tasks, err := s.TaskRepo().GetMany(ctx, ex, ids)
			if err != nil {
				return err
			}
			if len(tasks) != len(ids) {
				return fmt.Errorf("found %d of %d tasks; check the ids", len(tasks), len(ids))
			}
			res, err := svc.CheckTransformationSet(ctx, tasks, answers)
			if err != nil {
				return err
			}
			return deliverResult(svc, res)
		}

		taskID, _ := cmd.Flags().GetInt("task")
		if taskID == 0 {
			return fmt.Errorf("--task is required")
		}
		task, err := s.TaskRepo().Get(ctx, ex, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("no %s task with id %d", ex, taskID)
		}

		res, err := svc.Check(ctx, task, answers)
		if err != nil {
			return err
		}
		return deliverResult(svc, res)
	},
}

// deliverResult hands the graded result over through the single-use cache:
// the token is the only handle to it, and the read consumes it.
func deliverResult(svc *trainer.Service, res *trainer.CheckResult) error {
	token := svc.Stash(res)
	stashed, ok := svc.Retrieve(token)
	if !ok {
		return fmt.Errorf("result %s was already consumed", token)
	}
	printResult(stashed)
	return nil
}

func init() {
	checkCmd.Flags().IntP("part", "p", 1, "Exam part (1-7)")
	checkCmd.Flags().Int("task", 0, "Task id (parts 1-3, 5-7)")
	checkCmd.Flags().String("tasks", "", "Comma-separated task ids (part 4)")
	checkCmd.Flags().StringP("answers", "a", "", "Comma-separated answers, in gap order")
	checkCmd.Flags().String("level", "b2", "Difficulty level: b2 or b2plus")
}

// splitAnswers keeps empty segments: a blank between commas is an
// unanswered item, not a formatting accident.
func splitAnswers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("--tasks is required for part 4")
	}
	var ids []int
	for _, piece := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q", piece)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
