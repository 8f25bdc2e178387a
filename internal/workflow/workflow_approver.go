package workflow

import (
	"context"
	"errors"
	"time"

	"go-logbook/internal/ledger"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/telemetry"
	workflowerrors "go-logbook/internal/workflow/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry is a log record that goes through approval. Methods must work on the
// zero value where noted because the approver calls them before loading.
type Entry interface {
	// TableName is called on the zero value.
	TableName() string
	EntryID() uuid.UUID
	ApprovalState() Approval
	// ReportSeed describes the ledger row for an approved entry.
	ReportSeed() ledger.Seed
}

// Recorder receives approved entries. Failures never undo an approval.
type Recorder interface {
	Record(ctx context.Context, seed ledger.Seed) error
}

type Decision struct {
	Action  *string
	Remarks string
}

// Approver moves entries of one collection through
// draft -> pending -> approved | rejected.
type Approver[T Entry] struct {
	db     *gorm.DB
	policy *policy.Engine
	ledger Recorder
	now    func() time.Time
	logger *zap.Logger
}

func NewApprover[T Entry](db *gorm.DB, engine *policy.Engine, recorder Recorder, logger ...*zap.Logger) *Approver[T] {
	l := zap.L().Named("workflow.approver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.approver")
	}
	return &Approver[T]{
		db:     db,
		policy: engine,
		ledger: recorder,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (a *Approver[T]) table() string {
	var zero T
	return zero.TableName()
}

func (a *Approver[T]) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, a.logger).With(zap.String("source_table", a.table()))
}

// Submit sends a draft entry for approval.
func (a *Approver[T]) Submit(ctx context.Context, actor *policy.Actor, id uuid.UUID) (T, error) {
	var out T
	if err := a.policy.Explain(actor, policy.ActionEntryLog, nil); err != nil {
		return out, apperror.ErrForbidden
	}

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := a.transition(ctx, tx, id, StatusDraft, StatusPending, map[string]any{
			"status":     StatusPending,
			"updated_at": a.now(),
		}); err != nil {
			return err
		}
		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		return out, err
	}

	a.log(ctx).Info("entry submitted", zap.String("entry_id", id.String()))
	return out, nil
}

// Decide approves or rejects a pending entry. On approve the ledger is
// written after commit; a ledger failure is logged and left to the
// reconciler.
func (a *Approver[T]) Decide(ctx context.Context, actor *policy.Actor, id uuid.UUID, d Decision) (T, error) {
	var out T
	log := a.log(ctx)

	if err := a.policy.Explain(actor, policy.ActionEntryApprove, nil); err != nil {
		return out, apperror.ErrForbidden
	}
	action, err := ParseAction(d.Action)
	if err != nil {
		return out, err
	}

	now := a.now()
	updates := map[string]any{
		"status":         action.target(),
		"approved_by_id": actor.ID,
		"approved_at":    now,
		"updated_at":     now,
	}
	if d.Remarks != "" {
		updates["remarks"] = d.Remarks
	}

	err = a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := a.transition(ctx, tx, id, StatusPending, action.target(), updates); err != nil {
			return err
		}
		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		return out, err
	}

	telemetry.EntryDecisions.WithLabelValues(a.table(), string(action)).Inc()
	log.Info("entry decided",
		zap.String("entry_id", id.String()),
		zap.String("action", string(action)),
		zap.String("actor_id", actor.ID.String()),
	)

	if action == ActionApprove && a.ledger != nil {
		seed := out.ReportSeed()
		seed.Remarks = d.Remarks
		if err := a.ledger.Record(ctx, seed); err != nil {
			telemetry.LedgerWriteFailures.WithLabelValues("record").Inc()
			log.Error("ledger record after approval failed",
				zap.String("entry_id", id.String()),
				zap.Error(err),
			)
		}
	}
	return out, nil
}

// transition is a compare-and-swap on status. When no row matches, the
// current row decides between not found and an invalid transition.
func (a *Approver[T]) transition(ctx context.Context, tx *gorm.DB, id uuid.UUID, from, to Status, updates map[string]any) error {
	if !CanTransition(from, to) {
		return workflowerrors.ErrInvalidTransition
	}
	res := tx.Table(a.table()).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var current T
	if err := tx.First(&current, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workflowerrors.ErrEntryNotFound
		}
		return err
	}

	state := current.ApprovalState().Status
	a.log(ctx).Warn("entry transition rejected",
		zap.String("entry_id", id.String()),
		zap.String("status", string(state)),
		zap.String("requested", string(to)),
	)
	return workflowerrors.ErrInvalidTransition.WithDetails(map[string]string{
		"status": "Entry is " + string(state) + "; expected " + string(from) + ".",
	})
}
