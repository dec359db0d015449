package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fcetrainer/internal/exam"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in starter tasks",
	Long: `Imports the bundled manual tasks so practice works without an LLM
API key. Exercises that already have tasks are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		tasks := s.TaskRepo()
		for _, ex := range exam.All() {
			n, err := tasks.Count(ctx, ex)
			if err != nil {
				return err
			}
			fmt.Printf("Part %d  %-22s  %d tasks\n", ex.Part(), ex, n)
		}
		return nil
	},
}
