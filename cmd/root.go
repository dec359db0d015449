package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/fcetrainer/internal/explain"
	"github.com/abhisek/fcetrainer/internal/gen"
	"github.com/abhisek/fcetrainer/internal/llm"
	"github.com/abhisek/fcetrainer/internal/store"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

var rootCmd = &cobra.Command{
	Use:   "fcetrainer",
	Short: "FCE (B2 First) exam practice trainer",
	Long:  "fcetrainer — practice the seven Use of English and Reading parts of the B2 First exam, with LLM-generated tasks when an API key is configured.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary is a convenience for API keys; absence is
	// the normal case.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FCE_DB env var)")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FCE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveLLMConfig finds a usable provider configuration: FCE_LLM_PROVIDER
// with its key first, then discovery via the standard key env vars. The
// second return is false when no provider is configured — the trainer then
// serves stored tasks only.
func resolveLLMConfig() (llm.Config, bool) {
	if os.Getenv("FCE_LLM_PROVIDER") != "" {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; running without generation\n", err)
			return llm.Config{}, false
		}
		return cfg, true
	}
	return llm.DiscoverConfig()
}

// buildService wires the full trainer service for a command invocation.
func buildService(ctx context.Context, s *store.Store, level gen.Level) *trainer.Service {
	var synth *gen.Synthesizer
	var explainer trainer.Explainer

	if cfg, ok := resolveLLMConfig(); ok {
		provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; running without generation\n", err)
		} else {
			synth = gen.New(provider, s.TaskRepo(), s.ShowRepo(), gen.DefaultConfig())
		}
		single, err := llm.NewSingleAttemptProvider(ctx, cfg, s.EventRepo())
		if err == nil {
			explainer = explain.New(single)
		}
	}

	return trainer.NewService(s.TaskRepo(), s.ShowRepo(), s.CheckRepo(), synth, explainer, level)
}

func levelFlag(cmd *cobra.Command) gen.Level {
	raw, _ := cmd.Flags().GetString("level")
	return gen.NormalizeLevel(raw)
}
