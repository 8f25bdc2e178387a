package ledger

import (
	"context"
	"errors"
	"time"

	"go-logbook/internal/shared/telemetry"

	"go.uber.org/zap"
)

// Source is a collection whose approved rows are mirrored in the ledger.
type Source interface {
	SourceTable() string
	// MissingReports returns seeds for approved rows that have no report.
	MissingReports(ctx context.Context, limit int) ([]Seed, error)
}

type ReconcileResult struct {
	Recorded int
	Removed  int
}

// Reconciler repairs ledger writes that were lost after an approval or a
// delete committed.
type Reconciler struct {
	service Service
	repo    Repository
	sources []Source
	batch   int
	logger  *zap.Logger
}

func NewReconciler(service Service, repo Repository, sources []Source, batch int, logger ...*zap.Logger) *Reconciler {
	l := zap.L().Named("ledger.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.reconciler")
	}
	if batch <= 0 {
		batch = 100
	}
	return &Reconciler{service: service, repo: repo, sources: sources, batch: batch, logger: l}
}

func (r *Reconciler) RunOnce(ctx context.Context) (ReconcileResult, error) {
	var (
		res  ReconcileResult
		errs []error
	)

	for _, src := range r.sources {
		table := src.SourceTable()

		seeds, err := src.MissingReports(ctx, r.batch)
		if err != nil {
			errs = append(errs, err)
			r.logger.Error("list missing reports failed", zap.String("source_table", table), zap.Error(err))
		}
		for _, seed := range seeds {
			if err := r.service.Record(ctx, seed); err != nil {
				telemetry.LedgerWriteFailures.WithLabelValues("reconcile_record").Inc()
				errs = append(errs, err)
				continue
			}
			res.Recorded++
			telemetry.LedgerReconciled.WithLabelValues(table, "recorded").Inc()
		}

		orphans, err := r.repo.FindOrphans(ctx, table, r.batch)
		if err != nil {
			errs = append(errs, err)
			r.logger.Error("list orphaned reports failed", zap.String("source_table", table), zap.Error(err))
		}
		for _, rep := range orphans {
			if err := r.service.Remove(ctx, rep.SourceID, table); err != nil {
				telemetry.LedgerWriteFailures.WithLabelValues("reconcile_remove").Inc()
				errs = append(errs, err)
				continue
			}
			res.Removed++
			telemetry.LedgerReconciled.WithLabelValues(table, "removed").Inc()
		}
	}

	if res.Recorded > 0 || res.Removed > 0 {
		r.logger.Info("ledger reconciled", zap.Int("recorded", res.Recorded), zap.Int("removed", res.Removed))
	}
	return res, errors.Join(errs...)
}

func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("ledger reconciler started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("ledger reconciler stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Warn("ledger reconcile pass incomplete", zap.Error(err))
			}
		}
	}
}
