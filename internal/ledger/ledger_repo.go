package ledger

import (
	"context"
	"fmt"

	"go-logbook/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Types    []ReportType
	Site     string
	Page     int
	PageSize int
}

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Insert(ctx context.Context, r *Report) (bool, error)
	DeleteBySource(ctx context.Context, sourceID uuid.UUID, sourceTable string) ([]Report, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)
	List(ctx context.Context, f ListFilter) ([]Report, int64, error)
	FindOrphans(ctx context.Context, sourceTable string, limit int) ([]Report, error)
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

// Insert reports false when a row for the same source already exists.
func (r *repository) Insert(ctx context.Context, rep *Report) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_id"}, {Name: "source_table"}},
			DoNothing: true,
		}).
		Create(rep)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) DeleteBySource(ctx context.Context, sourceID uuid.UUID, sourceTable string) ([]Report, error) {
	var deleted []Report
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("source_id = ? AND source_table = ?", sourceID, sourceTable).
		Delete(&deleted).Error
	return deleted, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	var rep Report
	if err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&Report{})
	if len(f.Types) > 0 {
		q = q.Where("report_type IN ?", f.Types)
	}
	if f.Site != "" {
		q = q.Where("site = ?", f.Site)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []Report
	err := q.Order("approved_at DESC").
		Scopes(database.Paginate(f.Page, f.PageSize)).
		Find(&reports).Error
	return reports, total, err
}

// FindOrphans returns reports whose source row is gone or is no longer
// approved. sourceTable comes from registered sources, never from input.
func (r *repository) FindOrphans(ctx context.Context, sourceTable string, limit int) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).
		Joins(fmt.Sprintf(`LEFT JOIN "%s" s ON s.id = reports.source_id`, sourceTable)).
		Where("reports.source_table = ?", sourceTable).
		Where("s.id IS NULL OR s.status <> ?", "approved").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}
