package logbook

import (
	"context"
	"strings"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/database"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// A nil Role in a filter means the caller sees every schema.
type SchemaFilter struct {
	Role     *policy.Role
	Category Category
	Search   string
	Page     int
	PageSize int
}

type EntryFilter struct {
	Role     *policy.Role
	SchemaID *uuid.UUID
	SiteID   string
	Status   workflow.Status
	Page     int
	PageSize int
}

//go:generate mockgen -source=logbook_repo.go -destination=mock/logbook_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateSchema(ctx context.Context, s *Schema) error
	UpdateSchema(ctx context.Context, s *Schema) error
	DeleteSchema(ctx context.Context, id uuid.UUID) error
	FindSchema(ctx context.Context, id uuid.UUID, role *policy.Role) (*Schema, error)
	FindSchemaForUpdate(ctx context.Context, id uuid.UUID) (*Schema, error)
	ListSchemas(ctx context.Context, f SchemaFilter) ([]Schema, int64, error)
	ReplaceAssignments(ctx context.Context, schemaID uuid.UUID, roles []policy.Role, by *uuid.UUID) ([]RoleAssignment, error)
	ListAssignments(ctx context.Context, schemaID uuid.UUID) ([]RoleAssignment, error)

	CreateEntry(ctx context.Context, e *Entry) error
	UpdateEntry(ctx context.Context, e *Entry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	FindEntry(ctx context.Context, id uuid.UUID, role *policy.Role) (*Entry, error)
	FindEntryForUpdate(ctx context.Context, id uuid.UUID, role *policy.Role) (*Entry, error)
	ListEntries(ctx context.Context, f EntryFilter) ([]Entry, int64, error)
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

// assignedTo keeps rows whose schema has an assignment for role.
func (r *repository) assignedTo(db *gorm.DB, column string, role *policy.Role) *gorm.DB {
	if role == nil {
		return db
	}
	sub := r.db.Model(&RoleAssignment{}).Select("schema_id").Where("role = ?", *role)
	return db.Where(column+" IN (?)", sub)
}

func byRole(db *gorm.DB) *gorm.DB {
	return db.Order("role ASC")
}

func affectedOne(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateSchema(ctx context.Context, s *Schema) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

var schemaColumns = []string{
	"name", "description", "client_id", "category",
	"fields", "workflow", "display", "metadata", "updated_at",
}

// UpdateSchema writes the editable columns only; created_by and the role
// assignments are left as they are.
func (r *repository) UpdateSchema(ctx context.Context, s *Schema) error {
	return affectedOne(r.db.WithContext(ctx).Model(s).Select(schemaColumns).Updates(s))
}

func (r *repository) DeleteSchema(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.WithContext(ctx).Delete(&Schema{}, "id = ?", id))
}

func (r *repository) FindSchema(ctx context.Context, id uuid.UUID, role *policy.Role) (*Schema, error) {
	var s Schema
	err := r.assignedTo(r.db.WithContext(ctx), "id", role).
		Preload("Assignments", byRole).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindSchemaForUpdate(ctx context.Context, id uuid.UUID) (*Schema, error) {
	var s Schema
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListSchemas(ctx context.Context, f SchemaFilter) ([]Schema, int64, error) {
	q := r.assignedTo(r.db.WithContext(ctx).Model(&Schema{}), "id", f.Role)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schemas []Schema
	err := q.Preload("Assignments", byRole).
		Order("created_at DESC").
		Scopes(database.Paginate(f.Page, f.PageSize)).
		Find(&schemas).Error
	return schemas, total, err
}

// ReplaceAssignments must run inside a transaction; it deletes every
// assignment of the schema before inserting roles.
func (r *repository) ReplaceAssignments(ctx context.Context, schemaID uuid.UUID, roles []policy.Role, by *uuid.UUID) ([]RoleAssignment, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("schema_id = ?", schemaID).Delete(&RoleAssignment{}).Error; err != nil {
		return nil, err
	}

	rows := make([]RoleAssignment, 0, len(roles))
	for _, role := range roles {
		rows = append(rows, RoleAssignment{
			ID:           uuid.New(),
			SchemaID:     schemaID,
			Role:         role,
			AssignedByID: by,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListAssignments(ctx context.Context, schemaID uuid.UUID) ([]RoleAssignment, error) {
	var rows []RoleAssignment
	err := r.db.WithContext(ctx).
		Where("schema_id = ?", schemaID).
		Order("role ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateEntry(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

var entryColumns = []string{"site_id", "data", "remarks", "attachments", "updated_at"}

// UpdateEntry never writes schema, operator or approval columns.
func (r *repository) UpdateEntry(ctx context.Context, e *Entry) error {
	return affectedOne(r.db.WithContext(ctx).Model(e).Omit(clause.Associations).Select(entryColumns).Updates(e))
}

func (r *repository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.WithContext(ctx).Delete(&Entry{}, "id = ?", id))
}

func (r *repository) FindEntry(ctx context.Context, id uuid.UUID, role *policy.Role) (*Entry, error) {
	var e Entry
	err := r.assignedTo(r.db.WithContext(ctx), "schema_id", role).
		Preload("Schema").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindEntryForUpdate(ctx context.Context, id uuid.UUID, role *policy.Role) (*Entry, error) {
	var e Entry
	q := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	err := r.assignedTo(q, "schema_id", role).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListEntries(ctx context.Context, f EntryFilter) ([]Entry, int64, error) {
	q := r.assignedTo(r.db.WithContext(ctx).Model(&Entry{}), "schema_id", f.Role)
	if f.SchemaID != nil {
		q = q.Where("schema_id = ?", *f.SchemaID)
	}
	if f.SiteID != "" {
		q = q.Where("site_id = ?", f.SiteID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []Entry
	err := q.Preload("Schema").
		Order("timestamp DESC").
		Scopes(database.Paginate(f.Page, f.PageSize)).
		Find(&entries).Error
	return entries, total, err
}
