package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/kvltn8/trivia-cli-game/internal/app"
	"github.com/kvltn8/trivia-cli-game/internal/config"
	"github.com/kvltn8/trivia-cli-game/internal/domain"
	"github.com/kvltn8/trivia-cli-game/internal/infra/memory"
	pgloader "github.com/kvltn8/trivia-cli-game/internal/infra/postgres"
	rediscache "github.com/kvltn8/trivia-cli-game/internal/infra/redis"
	"github.com/kvltn8/trivia-cli-game/internal/terminal"
)

const (
	defaultDelay   = 2 * time.Second
	defaultQuizTTL = 10 * time.Minute
)

type playOptions struct {
	quiz      string
	timeLimit int
}

func bindPlayFlags(cmd *cobra.Command, opts *playOptions) {
	cmd.Flags().StringVar(&opts.quiz, "quiz", "", "quiz ID to play (overrides game.quiz)")
	cmd.Flags().IntVar(&opts.timeLimit, "time-limit", 0, "seconds per question (overrides every question)")
}

// NewPlayCmd builds the subcommand that runs the game on stdin/stdout.
func NewPlayCmd(configPath *string) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the trivia game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, *opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	bindPlayFlags(cmd, opts)
	return cmd
}

func runPlay(ctx context.Context, configPath string, opts playOptions, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	quizzes, cleanup, err := buildQuizRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	quizID := cfg.Game.Quiz
	if opts.quiz != "" {
		quizID = opts.quiz
	}
	timeLimit := cfg.Game.TimeLimit
	if opts.timeLimit > 0 {
		timeLimit = opts.timeLimit
	}

	results := memory.NewResultStore()
	runner := app.NewQuizRunner(
		quizzes,
		terminal.NewInput(stdin, stdout),
		terminal.NewDisplay(stdout),
		results,
		app.RunnerConfig{
			IntroDelay:    config.TTLDuration(cfg.Game.IntroDelay, defaultDelay),
			FeedbackDelay: config.TTLDuration(cfg.Game.FeedbackDelay, defaultDelay),
			TimeLimit:     timeLimit,
		},
	)

	err = runner.Play(ctx, quizID)
	if best, ok := results.Best(); ok {
		log.Printf("session best: game %s with %d/%d (%s%%)", best.GameID, best.Score, best.Total, best.PercentageString())
	}
	switch {
	case errors.Is(err, domain.ErrInputClosed):
		log.Printf("input closed, exiting")
		fmt.Fprintln(stdout)
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout, "\n\nInterrupted. Goodbye!")
		return nil
	}
	return err
}

// buildQuizRepository layers a cache (Redis or in-process) over a loader
// (Postgres or the built-in set). The cleanup func releases any connections.
func buildQuizRepository(ctx context.Context, cfg config.Config) (app.QuizRepository, func(), error) {
	cleanup := func() {}

	var loader memory.QuizLoader = memory.NewDefaultQuizLoader()
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, cleanup, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect postgres: %w", err)
		}
		loader = pgloader.NewQuizLoader(pool)
		cleanup = pool.Close
		log.Printf("quiz source: postgres")
	} else {
		log.Printf("quiz source: built-in")
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, defaultQuizTTL)
	if cfg.Redis.Addr != "" {
		client := newRedisClient(cfg)
		closeLoader := cleanup
		cleanup = func() {
			_ = client.Close()
			closeLoader()
		}
		log.Printf("quiz cache: redis %s", cfg.Redis.Addr)
		return rediscache.NewQuizRepository(client, loader, config.TTLDuration(cfg.Redis.TTL, quizTTL)), cleanup, nil
	}
	log.Printf("quiz cache: memory")
	return memory.NewQuizRepository(loader, quizTTL), cleanup, nil
}

func newRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
