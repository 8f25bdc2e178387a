package chillerlog

import (
	"context"
	"reflect"
	"time"

	"go-logbook/internal/ledger"
	"go-logbook/internal/shared/database"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type ListFilter struct {
	EquipmentID string
	SiteID      string
	Status      workflow.Status
	From        *time.Time
	To          *time.Time
	Page        int
	PageSize    int
}

//go:generate mockgen -source=chillerlog_repo.go -destination=mock/chillerlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *ChillerLog) error
	Update(ctx context.Context, l *ChillerLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*ChillerLog, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ChillerLog, error)
	FirstOfDay(ctx context.Context, equipmentID string, start, end time.Time) (*ChillerLog, error)
	List(ctx context.Context, f ListFilter) ([]ChillerLog, int64, error)
	CreateStatusChanges(ctx context.Context, changes []ChillerStatusChange) error
	ListStatusChanges(ctx context.Context, logID uuid.UUID) ([]ChillerStatusChange, error)
	ListApprovedWithoutReport(ctx context.Context, limit int) ([]ChillerLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *ChillerLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// editableColumns are what an edit may write. Equipment, status flags,
// operator and the approval state belong to Create and the approver.
var editableColumns = func() []string {
	cols := []string{"site_id"}
	cols = append(cols, columnsOf(&Readings{})...)
	cols = append(cols, columnsOf(&Annotations{})...)
	return append(cols, "remarks", "updated_at")
}()

// Update writes the editable columns of l; l must have been loaded with
// FindByIDForUpdate in the same transaction.
func (r *repository) Update(ctx context.Context, l *ChillerLog) error {
	res := r.db.WithContext(ctx).Model(l).Select(editableColumns).Updates(l)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&ChillerLog{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ChillerLog, error) {
	var l ChillerLog
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ChillerLog, error) {
	var l ChillerLog
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FirstOfDay returns the baseline log for equipmentID in [start, end).
func (r *repository) FirstOfDay(ctx context.Context, equipmentID string, start, end time.Time) (*ChillerLog, error) {
	var l ChillerLog
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND timestamp >= ? AND timestamp < ?", equipmentID, start, end).
		Order("timestamp ASC, created_at ASC").
		Take(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]ChillerLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&ChillerLog{})
	if f.EquipmentID != "" {
		q = q.Where("equipment_id = ?", f.EquipmentID)
	}
	if f.SiteID != "" {
		q = q.Where("site_id = ?", f.SiteID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("timestamp >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("timestamp < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []ChillerLog
	err := q.Order("timestamp DESC").
		Scopes(database.Paginate(f.Page, f.PageSize)).
		Find(&logs).Error
	return logs, total, err
}

func (r *repository) CreateStatusChanges(ctx context.Context, changes []ChillerStatusChange) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&changes).Error
}

func (r *repository) ListStatusChanges(ctx context.Context, logID uuid.UUID) ([]ChillerStatusChange, error) {
	var changes []ChillerStatusChange
	err := r.db.WithContext(ctx).
		Where("chiller_log_id = ?", logID).
		Order("changed_at ASC").
		Find(&changes).Error
	return changes, err
}

func (r *repository) ListApprovedWithoutReport(ctx context.Context, limit int) ([]ChillerLog, error) {
	var logs []ChillerLog
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN reports r ON r.source_id = chiller_logs.id AND r.source_table = ?", SourceTable).
		Where("chiller_logs.status = ? AND r.id IS NULL", workflow.StatusApproved).
		Order("chiller_logs.approved_at ASC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// columnsOf lists the gorm column names of the struct v points to.
func columnsOf(v any) []string {
	t := reflect.TypeOf(v).Elem()
	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := schema.ParseTagSetting(t.Field(i).Tag.Get("gorm"), ";")["COLUMN"]; name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

// ReportSource exposes chiller logs to the ledger reconciler.
type ReportSource struct {
	repo Repository
}

func NewReportSource(repo Repository) *ReportSource {
	return &ReportSource{repo: repo}
}

func (s *ReportSource) SourceTable() string {
	return SourceTable
}

func (s *ReportSource) MissingReports(ctx context.Context, limit int) ([]ledger.Seed, error) {
	logs, err := s.repo.ListApprovedWithoutReport(ctx, limit)
	if err != nil {
		return nil, err
	}
	seeds := make([]ledger.Seed, 0, len(logs))
	for _, l := range logs {
		seeds = append(seeds, l.ReportSeed())
	}
	return seeds, nil
}
