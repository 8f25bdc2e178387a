package chillerlog

import (
	"context"
	"errors"
	"strings"
	"time"

	chillerlogerrors "go-logbook/internal/chillerlog/errors"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/database"
	"go-logbook/internal/shared/telemetry"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Approver is the workflow for chiller logs, normally
// *workflow.Approver[ChillerLog].
type Approver interface {
	Submit(ctx context.Context, actor *policy.Actor, id uuid.UUID) (ChillerLog, error)
	Decide(ctx context.Context, actor *policy.Actor, id uuid.UUID, d workflow.Decision) (ChillerLog, error)
}

// ReportRemover drops the ledger row of a deleted log.
type ReportRemover interface {
	Remove(ctx context.Context, sourceID uuid.UUID, sourceTable string) error
}

//go:generate mockgen -source=chillerlog_service.go -destination=mock/chillerlog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor *policy.Actor, req CreateChillerLogRequest) (ChillerLogResponse, error)
	GetByID(ctx context.Context, actor *policy.Actor, id string) (ChillerLogResponse, error)
	List(ctx context.Context, actor *policy.Actor, q ListChillerLogsQuery) ([]ChillerLogResponse, int64, error)
	Update(ctx context.Context, actor *policy.Actor, id string, req UpdateChillerLogRequest) (ChillerLogResponse, error)
	Delete(ctx context.Context, actor *policy.Actor, id string) error
	Submit(ctx context.Context, actor *policy.Actor, id string) (ChillerLogResponse, error)
	Approve(ctx context.Context, actor *policy.Actor, id string, req ApproveRequest) (ChillerLogResponse, error)
	StatusChanges(ctx context.Context, actor *policy.Actor, id string) ([]StatusChangeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	approver Approver
	reports  ReportRemover
	policy   *policy.Engine
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	approver Approver,
	reports ReportRemover,
	engine *policy.Engine,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("chillerlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chillerlog.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:       db,
		repo:     repo,
		approver: approver,
		reports:  reports,
		policy:   engine,
		loc:      loc,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) authorize(actor *policy.Actor, action policy.Action) error {
	if err := s.policy.Explain(actor, action, nil); err != nil {
		return apperror.ErrForbidden
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, chillerlogerrors.ErrInvalidChillerLogID
	}
	return uid, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return chillerlogerrors.ErrChillerLogNotFound
	}
	return err
}

// Create stores a new log. The first log of the day for an equipment id is
// its baseline; later logs that change a status flag need remarks and leave
// one status change record per flag. Creation is serialized per equipment id.
func (s *service) Create(ctx context.Context, actor *policy.Actor, req CreateChillerLogRequest) (ChillerLogResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionEntryLog); err != nil {
		return ChillerLogResponse{}, err
	}

	equipmentID := strings.TrimSpace(req.EquipmentID)
	status := req.EquipmentStatus
	details := req.Readings.missingRequired()
	for field, msg := range status.normalize() {
		details[field] = msg
	}
	if equipmentID == "" {
		details["equipment_id"] = "This field is required."
	}
	if len(details) > 0 {
		return ChillerLogResponse{}, chillerlogerrors.ErrInvalidChillerLog.WithDetails(details)
	}

	now := s.now()
	entry := &ChillerLog{
		ID:              uuid.New(),
		EquipmentID:     equipmentID,
		SiteID:          strings.TrimSpace(req.SiteID),
		Readings:        req.Readings,
		Annotations:     req.Annotations,
		EquipmentStatus: status,
		Approval: workflow.Approval{
			Status:  workflow.StatusDraft,
			Remarks: strings.TrimSpace(req.Remarks),
		},
		OperatorID:   &actor.ID,
		OperatorName: actor.DisplayName(),
		Timestamp:    now,
	}

	var changes []ChillerStatusChange
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.AdvisoryXactLock(ctx, tx, "chiller:"+equipmentID); err != nil {
			return err
		}
		repo := s.repo.WithTx(tx)

		start, end := dayBounds(now, s.loc)
		baseline, err := repo.FirstOfDay(ctx, equipmentID, start, end)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if baseline != nil {
			devs := deviations(baseline.EquipmentStatus, entry.EquipmentStatus)
			if len(devs) > 0 {
				if entry.Remarks == "" {
					return chillerlogerrors.ErrRemarksRequired.Field("remarks")
				}
				changes = s.statusChanges(entry, baseline, actor, devs, now)
				entry.Remarks = appendChangeNotes(entry.Remarks, devs, now.In(s.loc))
			}
		}

		if err := repo.Create(ctx, entry); err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return repo.CreateStatusChanges(ctx, changes)
	})
	if err != nil {
		if !errors.Is(err, chillerlogerrors.ErrRemarksRequired) {
			log.Error("create chiller log failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		}
		return ChillerLogResponse{}, err
	}

	for _, c := range changes {
		telemetry.StatusChanges.WithLabelValues(c.Field).Inc()
	}
	log.Info("chiller log created",
		zap.String("chiller_log_id", entry.ID.String()),
		zap.String("equipment_id", equipmentID),
		zap.Int("status_changes", len(changes)),
	)
	return mapToResponse(*entry), nil
}

func (s *service) statusChanges(entry, baseline *ChillerLog, actor *policy.Actor, devs []deviation, at time.Time) []ChillerStatusChange {
	out := make([]ChillerStatusChange, 0, len(devs))
	for _, d := range devs {
		out = append(out, ChillerStatusChange{
			ID:            uuid.New(),
			ChillerLogID:  entry.ID,
			BaselineLogID: baseline.ID,
			EquipmentID:   entry.EquipmentID,
			Field:         d.Field,
			FieldLabel:    d.Label,
			OldValue:      d.Old,
			NewValue:      d.New,
			ChangedByID:   &actor.ID,
			ChangedAt:     at,
			Context: datatypes.JSONMap{
				"baseline_timestamp": baseline.Timestamp.Format(time.RFC3339),
				"remarks":            entry.Remarks,
			},
		})
	}
	return out
}

func (s *service) GetByID(ctx context.Context, actor *policy.Actor, id string) (ChillerLogResponse, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return ChillerLogResponse{}, err
	}
	uid, err := parseID(id)
	if err != nil {
		return ChillerLogResponse{}, err
	}

	entry, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return ChillerLogResponse{}, notFound(err)
	}
	return mapToResponse(*entry), nil
}

func (s *service) List(ctx context.Context, actor *policy.Actor, q ListChillerLogsQuery) ([]ChillerLogResponse, int64, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return nil, 0, err
	}

	f := ListFilter{
		EquipmentID: strings.TrimSpace(q.EquipmentID),
		SiteID:      strings.TrimSpace(q.SiteID),
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
	if q.Status != "" {
		st := workflow.Status(strings.ToLower(q.Status))
		if !st.Valid() {
			return nil, 0, chillerlogerrors.ErrInvalidStatusFilter.Field("status")
		}
		f.Status = st
	}
	if q.Date != "" {
		day, err := time.ParseInLocation(time.DateOnly, q.Date, s.loc)
		if err != nil {
			return nil, 0, chillerlogerrors.ErrInvalidDate.Field("date")
		}
		start, end := dayBounds(day, s.loc)
		f.From, f.To = &start, &end
	}

	logs, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return mapToResponses(logs), total, nil
}

// Update edits readings and remarks. The day's baseline is frozen once it has
// been approved.
func (s *service) Update(ctx context.Context, actor *policy.Actor, id string, req UpdateChillerLogRequest) (ChillerLogResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionEntryLog); err != nil {
		return ChillerLogResponse{}, err
	}
	uid, err := parseID(id)
	if err != nil {
		return ChillerLogResponse{}, err
	}

	var entry *ChillerLog
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		entry, err = repo.FindByIDForUpdate(ctx, uid)
		if err != nil {
			return notFound(err)
		}

		if entry.Status == workflow.StatusApproved {
			start, end := dayBounds(entry.Timestamp, s.loc)
			baseline, err := repo.FirstOfDay(ctx, entry.EquipmentID, start, end)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if baseline != nil && baseline.ID == entry.ID {
				return chillerlogerrors.ErrImmutableAfterApproval
			}
		}

		entry.Readings.merge(req.Readings)
		entry.Annotations.merge(req.Annotations)
		if req.SiteID != nil {
			entry.SiteID = strings.TrimSpace(*req.SiteID)
		}
		if req.Remarks != nil {
			entry.Remarks = *req.Remarks
		}
		return repo.Update(ctx, entry)
	})
	if err != nil {
		log.Warn("update chiller log failed", zap.String("chiller_log_id", id), zap.Error(err))
		return ChillerLogResponse{}, err
	}

	log.Info("chiller log updated", zap.String("chiller_log_id", id))
	return mapToResponse(*entry), nil
}

// Delete removes the log, then its report. A failed report removal is left
// to the reconciler.
func (s *service) Delete(ctx context.Context, actor *policy.Actor, id string) error {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionEntryDelete); err != nil {
		return err
	}
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		return notFound(err)
	}

	if s.reports != nil {
		if err := s.reports.Remove(ctx, uid, SourceTable); err != nil {
			telemetry.LedgerWriteFailures.WithLabelValues("remove").Inc()
			log.Error("remove report after delete failed", zap.String("chiller_log_id", id), zap.Error(err))
		}
	}

	log.Info("chiller log deleted", zap.String("chiller_log_id", id))
	return nil
}

func (s *service) Submit(ctx context.Context, actor *policy.Actor, id string) (ChillerLogResponse, error) {
	uid, err := parseID(id)
	if err != nil {
		return ChillerLogResponse{}, err
	}
	entry, err := s.approver.Submit(ctx, actor, uid)
	if err != nil {
		return ChillerLogResponse{}, err
	}
	return mapToResponse(entry), nil
}

func (s *service) Approve(ctx context.Context, actor *policy.Actor, id string, req ApproveRequest) (ChillerLogResponse, error) {
	uid, err := parseID(id)
	if err != nil {
		return ChillerLogResponse{}, err
	}
	entry, err := s.approver.Decide(ctx, actor, uid, workflow.Decision{Action: req.Action, Remarks: req.Remarks})
	if err != nil {
		return ChillerLogResponse{}, err
	}
	return mapToResponse(entry), nil
}

func (s *service) StatusChanges(ctx context.Context, actor *policy.Actor, id string) ([]StatusChangeResponse, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return nil, err
	}
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, uid); err != nil {
		return nil, notFound(err)
	}
	changes, err := s.repo.ListStatusChanges(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]StatusChangeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, mapStatusChange(c))
	}
	return out, nil
}
