// Package app implements the application layer for cargo-build-dependencies.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/depbuild/internal/engine/builder"
	"go.trai.ch/depbuild/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	documents    ports.DocumentLoader
	builder      *builder.Builder
	logger       ports.Logger
}

// New creates a new App instance.
func New(configLoader ports.ConfigLoader, documents ports.DocumentLoader, b *builder.Builder, logger ports.Logger) *App {
	return &App{
		configLoader: configLoader,
		documents:    documents,
		builder:      b,
		logger:       logger,
	}
}

// Config resolves the configuration for the project in dir.
func (a *App) Config(dir string) (domain.Config, error) {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Plan loads the manifest and then the lock file, and returns the locked identifier
// of every declared dependency in lock file order.
func (a *App) Plan(_ context.Context, cfg domain.Config) ([]domain.ResolvedDependency, error) {
	manifest, err := a.documents.Load(cfg.ManifestPath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	lock, err := a.documents.Load(cfg.LockfilePath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lock file")
	}

	return reconciler.Reconcile(manifest, lock), nil
}

// Build resolves the dependencies and builds each of them in order.
// It returns domain.ErrNoDependencies when nothing resolves. When the run stops early,
// the packages that never started are reported through the logger.
func (a *App) Build(ctx context.Context, cfg domain.Config) error {
	deps, err := a.Plan(ctx, cfg)
	if err != nil {
		return err
	}

	if len(deps) == 0 {
		return domain.ErrNoDependencies
	}

	if err := a.builder.Run(ctx, deps, cfg.BuildOptions()); err != nil {
		a.reportSkipped()
		return err
	}
	return nil
}

func (a *App) reportSkipped() {
	var skipped []string
	for _, s := range a.builder.Statuses() {
		if s.Status == domain.BuildStatusPending {
			skipped = append(skipped, s.Dependency.String())
		}
	}
	if len(skipped) == 0 {
		return
	}

	noun := "packages"
	if len(skipped) == 1 {
		noun = "package"
	}
	a.logger.Warn(fmt.Sprintf("skipped %d %s: %s", len(skipped), noun, strings.Join(skipped, ", ")))
}

// List returns the resolved identifiers without building anything.
// With all set, every package of the lock file is listed instead.
func (a *App) List(ctx context.Context, cfg domain.Config, all bool) ([]string, error) {
	if !all {
		deps, err := a.Plan(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return domain.IDs(deps), nil
	}

	lock, err := a.documents.Load(cfg.LockfilePath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lock file")
	}

	packages := reconciler.LockedPackages(lock)
	ids := make([]string, len(packages))
	for i, p := range packages {
		ids[i] = p.ID().String()
	}
	return ids, nil
}
