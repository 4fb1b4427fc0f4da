package session

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/demoreel/demoreel/internal/config"
	"github.com/demoreel/demoreel/internal/db"
	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/logging"
	"github.com/demoreel/demoreel/internal/services"
)

// Service loads scenarios, applies them through the composer, and records
// each build in the run history store.
type Service struct {
	logger   zerolog.Logger
	cfg      *config.Config
	composer *Composer
	runs     db.RunQuerier
}

// NewService creates a session service.
func NewService(cfg *config.Config, composer *Composer, runs db.RunQuerier, logger zerolog.Logger) *Service {
	return &Service{
		logger:   logger.With().Str("component", "session").Logger(),
		cfg:      cfg,
		composer: composer,
		runs:     runs,
	}
}

// ServiceName returns the unique identifier for this service
func (s *Service) ServiceName() string {
	return "SessionService"
}

// Initialize performs any setup required after construction
func (s *Service) Initialize() error {
	if s.composer == nil {
		return fmt.Errorf("session service requires a composer")
	}
	return nil
}

// Cleanup releases any resources held by the service
func (s *Service) Cleanup() error {
	return nil
}

var _ services.LifecycleService = (*Service)(nil)

// Fingerprint hashes the canonical scenario encoding. Two runs with the same
// fingerprint were built from identical scenario configurations.
func Fingerprint(scenario *entity.Scenario) (string, error) {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return "", fmt.Errorf("encode scenario: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Run loads the scenario at path, builds its layout, and records the run.
func (s *Service) Run(ctx context.Context, path string) (*entity.Run, error) {
	scenario, err := config.LoadScenario(path, s.cfg)
	if err != nil {
		return nil, err
	}
	return s.runScenario(ctx, scenario)
}

func (s *Service) runScenario(ctx context.Context, scenario *entity.Scenario) (*entity.Run, error) {
	ctx = logging.WithScenario(ctx, scenario.Name)

	fingerprint, err := Fingerprint(scenario)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result, err := s.composer.Compose(ctx, scenario)
	if err != nil {
		return nil, fmt.Errorf("build scenario %s: %w", scenario.Name, err)
	}
	finished := time.Now()

	run := entity.Run{
		Scenario:    scenario.Name,
		Fingerprint: fingerprint,
		PaneCount:   scenario.PaneCount(),
		OpCount:     result.OpCount,
		FailedPanes: result.Failed,
		StartedAt:   started,
		FinishedAt:  finished,
	}

	if s.runs != nil {
		recorded, err := s.runs.InsertRun(ctx, run)
		if err != nil {
			// The layout is live; losing the history row is not fatal.
			s.logger.Warn().Err(err).Str("scenario", scenario.Name).Msg("failed to record run")
		} else {
			run = recorded
		}
		if err := s.runs.PruneRuns(ctx, s.cfg.Database.MaxRuns, s.cfg.Database.KeepForDays); err != nil {
			s.logger.Warn().Err(err).Msg("failed to prune run history")
		}
	}

	s.logger.Info().
		Str("scenario", scenario.Name).
		Int("panes", run.PaneCount).
		Int("ops", run.OpCount).
		Int("failed", run.FailedPanes).
		Dur("took", run.Duration()).
		Msg("scenario built")

	return &run, nil
}

// Watch rebuilds the layout whenever the scenario file changes. It blocks
// until the context is cancelled. The first build happens immediately.
func (s *Service) Watch(ctx context.Context, path string) error {
	if _, err := s.Run(ctx, path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch scenario: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode goes stale.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch scenario: %w", err)
	}

	// Editors emit bursts of events per save; debounce to one rebuild.
	var pending <-chan time.Time
	const settle = 200 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(err).Msg("scenario watcher error")
		case <-pending:
			pending = nil
			s.logger.Info().Str("path", path).Msg("scenario changed, rebuilding")
			if _, err := s.Run(ctx, path); err != nil {
				s.logger.Error().Err(err).Msg("rebuild failed")
			}
		}
	}
}
