package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvltn8/trivia-cli-game/internal/config"
	"github.com/kvltn8/trivia-cli-game/internal/domain"
	pgloader "github.com/kvltn8/trivia-cli-game/internal/infra/postgres"
	rediscache "github.com/kvltn8/trivia-cli-game/internal/infra/redis"
)

// NewSeedCmd writes a quiz into Postgres: the built-in set, or a JSON file.
func NewSeedCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a quiz in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			quiz, err := quizToSeed(file)
			if err != nil {
				return err
			}
			if err := seedQuiz(cmd.Context(), cfg, quiz); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded quiz %q with %d questions\n", quiz.ID, len(quiz.Questions))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a quiz JSON file (default: built-in trivia set)")
	return cmd
}

func quizToSeed(path string) (domain.Quiz, error) {
	if path == "" {
		return domain.DefaultQuiz(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("open quiz file: %w", err)
	}
	defer f.Close()
	return decodeQuiz(f)
}

func decodeQuiz(r io.Reader) (domain.Quiz, error) {
	var quiz domain.Quiz
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}
	if err := quiz.Validate(); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}

func seedQuiz(ctx context.Context, cfg config.Config, quiz domain.Quiz) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	db := pgloader.OpenBun(cfg.Postgres.URL)
	defer db.Close()

	if _, err := pgloader.Migrate(ctx, db); err != nil {
		return err
	}
	if err := pgloader.NewSeeder(db).Seed(ctx, quiz); err != nil {
		return err
	}
	log.Printf("seeded quiz %s", quiz.ID)

	// Drop any cached copy so the next game reads the new content.
	if cfg.Redis.Addr != "" {
		client := newRedisClient(cfg)
		defer client.Close()
		if err := rediscache.NewQuizRepository(client, nil, 0).Invalidate(ctx, quiz.ID); err != nil {
			log.Printf("invalidate cached quiz %s: %v", quiz.ID, err)
		}
	}
	return nil
}
