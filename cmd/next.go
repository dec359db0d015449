package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next practice task for an exam part",
	Long: `Picks a task you have not seen recently. When the stored pool is
exhausted and an LLM provider is configured, a fresh task is generated.
Part 4 (key word transformations) is served as a set of six items.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		part, _ := cmd.Flags().GetInt("part")
		excludeID, _ := cmd.Flags().GetInt("exclude")

		ex, ok := exam.FromPart(part)
		if !ok {
			return fmt.Errorf("invalid part %d: choose 1-7", part)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc := buildService(ctx, s, levelFlag(cmd))

		if ex == exam.Transformation {
			set, err := svc.NextTransformationSet(ctx)
			if err != nil {
				return err
			}
			if len(set) == 0 {
				fmt.Println("No tasks available. Run 'fcetrainer seed' or configure an LLM API key.")
				return nil
			}
			printTransformationSet(set)
			return nil
		}

		task, err := svc.GetOrCreate(ctx, ex, excludeID)
		if err != nil {
			return err
		}
		if task == nil {
			fmt.Println("No tasks available. Run 'fcetrainer seed' or configure an LLM API key.")
			return nil
		}
		return printTask(task)
	},
}

func init() {
	nextCmd.Flags().IntP("part", "p", 1, "Exam part (1-7)")
	nextCmd.Flags().String("level", "b2", "Difficulty level: b2 or b2plus")
	nextCmd.Flags().Int("exclude", 0, "Task id to avoid (the one currently on screen)")
}

func printHeader(task *exam.Task) {
	fmt.Printf("Part %d — task #%d\n", task.Exercise.Part(), task.ID)
	fmt.Println(strings.Repeat("─", 60))
}

func printTask(task *exam.Task) error {
	switch task.Exercise {
	case exam.MultipleChoiceCloze:
		p, err := task.Cloze()
		if err != nil {
			return err
		}
		printHeader(task)
		fmt.Println(p.Text)
		fmt.Println()
		for i, gap := range p.Gaps {
			var opts []string
			for j, opt := range gap.Options {
				opts = append(opts, fmt.Sprintf("%d) %s", j, opt))
			}
			fmt.Printf("Gap %d:  %s\n", i+1, strings.Join(opts, "   "))
		}
	case exam.OpenCloze:
		p, err := task.OpenCloze()
		if err != nil {
			return err
		}
		printHeader(task)
		fmt.Println(p.Text)
		fmt.Println()
		fmt.Println("Fill each gap with ONE word.")
	case exam.WordFormation:
		p, err := task.WordFormation()
		if err != nil {
			return err
		}
		printHeader(task)
		fmt.Println(p.Text)
		fmt.Println()
		fmt.Println("Form a word that fits each gap from the stem in capitals.")
	case exam.ReadingMC:
		p, err := task.Reading()
		if err != nil {
			return err
		}
		printHeader(task)
		fmt.Println(p.Title)
		fmt.Println()
		fmt.Println(p.Text)
		fmt.Println()
		for i, q := range p.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Q)
			for j, opt := range q.Options {
				fmt.Printf("   %d) %s\n", j, opt)
			}
		}
	case exam.GappedText:
		p, err := task.GappedText()
		if err != nil {
			return err
		}
		printHeader(task)
		for _, para := range p.Paragraphs {
			fmt.Println(para)
			fmt.Println()
		}
		fmt.Println("Sentences (one is not needed):")
		for i, sent := range p.Sentences {
			fmt.Printf("  %c) %s\n", 'A'+i, sent)
		}
		fmt.Println()
		fmt.Println("Answer each gap with the sentence index (0-6).")
	case exam.MultipleMatching:
		p, err := task.Matching()
		if err != nil {
			return err
		}
		printHeader(task)
		for _, sec := range p.Sections {
			fmt.Printf("%s. %s\n%s\n\n", sec.ID, sec.Title, sec.Text)
		}
		for i, q := range p.Questions {
			fmt.Printf("%2d. %s\n", i+1, q.Text)
		}
		fmt.Println()
		fmt.Println("Answer each statement with a section letter.")
	default:
		return fmt.Errorf("cannot render %s", task.Exercise)
	}
	fmt.Println()
	fmt.Printf("Check with: fcetrainer check --part %d --task %d --answers \"a1,a2,...\"\n",
		task.Exercise.Part(), task.ID)
	return nil
}

func printTransformationSet(set []*exam.Task) {
	fmt.Printf("Part 4 — %d items\n", len(set))
	fmt.Println(strings.Repeat("─", 60))
	ids := make([]string, 0, len(set))
	for i, task := range set {
		p, err := task.Transformation()
		if err != nil {
			continue
		}
		fmt.Printf("%d. %s\n   %s\n   %s\n\n", i+1, p.Sentence1, strings.ToUpper(p.Keyword), p.Sentence2)
		ids = append(ids, fmt.Sprint(task.ID))
	}
	fmt.Println("Complete each second sentence using 3-5 words including the key word.")
	fmt.Printf("Check with: fcetrainer check --part 4 --tasks %s --answers \"...\"\n",
		strings.Join(ids, ","))
}

var trainerDetailMark = map[bool]string{true: "✓", false: "✗"}

func printResult(res *trainer.CheckResult) {
	fmt.Printf("Score: %d/%d\n", res.Score, res.Total)
	fmt.Println(strings.Repeat("─", 60))
	for _, d := range res.Details {
		mark := trainerDetailMark[d.Correct]
		if !d.Attempted {
			mark = "—"
		}
		fmt.Printf("%s %2d. yours: %-20s correct: %s\n", mark, d.Index+1, emptyDash(d.UserValue), d.Expected)
		if d.Explanation != "" {
			fmt.Printf("      %s\n", d.Explanation)
		}
		if d.WordFamily != "" {
			fmt.Printf("      %s\n", d.WordFamily)
		}
	}
}

func emptyDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
