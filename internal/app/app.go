// Package app implements the application layer for nudge.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/nudge/internal/core/ports"
	"go.trai.ch/nudge/internal/engine/reconciler"
	"go.trai.ch/nudge/internal/rules"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	planLoader ports.PlanLoader
	reconciler *reconciler.Reconciler
	store      ports.NotificationStore
	clock      ports.Clock
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.PlanLoader,
	rec *reconciler.Reconciler,
	store ports.NotificationStore,
	clock ports.Clock,
	log ports.Logger,
) *App {
	return &App{
		planLoader: loader,
		reconciler: rec,
		store:      store,
		clock:      clock,
		logger:     log,
	}
}

// Sync loads the plan file and reconciles every domain against it. Domains
// absent from the plan are cleared; the plan is the full source of truth.
func (a *App) Sync(ctx context.Context, planPath string) error {
	plan, err := a.planLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	sets, err := rules.FromPlan(plan, a.clock.Now())
	if err != nil {
		return zerr.Wrap(err, "failed to build rules from plan")
	}

	if err := a.reconciler.ReconcileAll(ctx, sets); err != nil {
		return zerr.Wrap(err, "reconciliation failed")
	}

	a.logger.Info(fmt.Sprintf("synced %d domains from %s", len(sets), planPath))
	return nil
}

// Pending returns all currently pending identifiers.
func (a *App) Pending(ctx context.Context) ([]string, error) {
	ids, err := a.store.Pending(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrListPendingFailed.Error())
	}
	return ids, nil
}

// Cancel removes a single pending trigger by domain name and entity id,
// bypassing reconciliation. This is the stop path for one-shot timers.
func (a *App) Cancel(ctx context.Context, domainName, entity string) error {
	d, err := domain.ParseDomain(domainName)
	if err != nil {
		return err
	}
	return a.reconciler.Cancel(ctx, d, entity)
}
