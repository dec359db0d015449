package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fcetrainer/internal/gen"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-part accuracy history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc := trainer.NewService(s.TaskRepo(), s.ShowRepo(), s.CheckRepo(), nil, nil, gen.LevelB2)
		stats, err := svc.Stats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%-6s  %-22s  %8s  %9s  %7s  %s\n",
			"Part", "Exercise", "Attempts", "Correct", "Pct", "Last attempt")
		fmt.Println(strings.Repeat("─", 78))
		for _, ps := range stats {
			last := "—"
			if !ps.LastAttemptAt.IsZero() {
				last = ps.LastAttemptAt.Local().Format("2006-01-02 15:04")
			}
			pct := "—"
			if ps.TotalAnswered > 0 {
				pct = fmt.Sprintf("%.0f%%", ps.Percent)
			}
			fmt.Printf("%-6d  %-22s  %8d  %4d/%-4d  %7s  %s\n",
				ps.Exercise.Part(), ps.Exercise, ps.Attempts,
				ps.TotalCorrect, ps.TotalAnswered, pct, last)
		}
		return nil
	},
}
