// Command seedquiz loads the quiz question catalog into Postgres. It is a
// one-shot tool: an already seeded catalog is left untouched, so it is safe
// to run on every deploy.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"fangate/config"
	"fangate/internal/domain/entity"
	"fangate/internal/domain/repository"
	logs "fangate/internal/infra/log"
	"fangate/internal/infra/persistence/postgres"
	"fangate/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSeedFile = "data/quiz.json"

type seedParams struct {
	fx.In
	fx.Shutdowner

	Config       *config.Config
	Logger       *slog.Logger
	QuestionRepo repository.QuizQuestionRepository
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewQuizQuestionRepository,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, params seedParams) {
	go func() {
		if err := seed(ctx, params); err != nil {
			params.Logger.Error("Failed to seed quiz catalog", slog.Any("error", err))
			os.Exit(1)
		}

		if err := params.Shutdown(); err != nil {
			params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}

func seed(ctx context.Context, params seedParams) error {
	count, err := params.QuestionRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count existing questions")
	}
	if count > 0 {
		params.Logger.Info("Quiz catalog already seeded, skipping", slog.Int64("existing", count))

		return nil
	}

	questions, err := loadSeedFile(params.Config, params.Logger)
	if err != nil {
		return err
	}

	if err := params.QuestionRepo.CreateBatch(ctx, questions); err != nil {
		return errors.Wrap(err, "failed to insert questions")
	}

	params.Logger.Info("Quiz catalog seeded", slog.Int("questions", len(questions)))

	return nil
}

// seedQuestion is the JSON shape of one catalog entry in the seed file.
type seedQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

func loadSeedFile(cfg *config.Config, logger *slog.Logger) ([]*entity.QuizQuestion, error) {
	path := defaultSeedFile
	if cfg.Quiz != nil && cfg.Quiz.SeedFile != "" {
		path = cfg.Quiz.SeedFile
	}

	checksum, err := util.CalculateFileChecksum(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed file %s", path)
	}
	logger.Info("Loaded seed file",
		slog.String("path", path),
		slog.String("sha256", checksum),
		slog.String("size", util.FormatBytes(int64(len(raw)))),
	)

	var entries []seedQuestion
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse seed file %s", path)
	}

	// One quiz draws ten questions, so a smaller catalog could never issue one.
	if len(entries) < 10 {
		return nil, errors.Errorf("seed file %s holds %d questions, need at least 10", path, len(entries))
	}

	questions := make([]*entity.QuizQuestion, 0, len(entries))
	for i, entry := range entries {
		if entry.Question == "" {
			return nil, errors.Errorf("question %d has no text", i)
		}
		if len(entry.Options) < 2 {
			return nil, errors.Errorf("question %d needs at least two options", i)
		}
		if entry.CorrectIndex < 0 || entry.CorrectIndex >= len(entry.Options) {
			return nil, errors.Errorf("question %d has correct index %d out of range", i, entry.CorrectIndex)
		}

		questions = append(questions, &entity.QuizQuestion{
			Question:     entry.Question,
			Options:      entry.Options,
			CorrectIndex: entry.CorrectIndex,
		})
	}

	return questions, nil
}
