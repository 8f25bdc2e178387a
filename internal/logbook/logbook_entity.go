package logbook

import (
	"time"

	"go-logbook/internal/ledger"
	"go-logbook/internal/policy"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SchemaTable     = "logbook_schemas"
	AssignmentTable = "logbook_role_assignments"
	EntryTable      = "logbook_entries"

	DefaultClientID = "svu-enterprises"
)

type Category string

const (
	CategoryUtility     Category = "utility"
	CategoryMaintenance Category = "maintenance"
	CategoryQuality     Category = "quality"
	CategorySafety      Category = "safety"
	CategoryValidation  Category = "validation"
	CategoryCustom      Category = "custom"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryUtility, CategoryMaintenance, CategoryQuality, CategorySafety, CategoryValidation, CategoryCustom:
		return true
	}
	return false
}

// Schema is a logbook template. Fields is a JSON list of field definitions
// rendered by the client; the server only checks its shape.
type Schema struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Name        string            `gorm:"column:name;type:varchar(255);not null"`
	Description string            `gorm:"column:description;type:text"`
	ClientID    string            `gorm:"column:client_id;type:varchar(100);not null;default:svu-enterprises"`
	Category    Category          `gorm:"column:category;type:varchar(50);not null;default:custom"`
	Fields      datatypes.JSON    `gorm:"column:fields;type:jsonb;not null"`
	Workflow    datatypes.JSONMap `gorm:"column:workflow;type:jsonb"`
	Display     datatypes.JSONMap `gorm:"column:display;type:jsonb"`
	Metadata    datatypes.JSONMap `gorm:"column:metadata;type:jsonb"`
	CreatedByID *uuid.UUID        `gorm:"column:created_by_id;type:uuid"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	Assignments []RoleAssignment `gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE"`
}

func (Schema) TableName() string {
	return SchemaTable
}

func (s Schema) AssignedRoles() []policy.Role {
	out := make([]policy.Role, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		out = append(out, a.Role)
	}
	return out
}

// RoleAssignment grants one role access to a schema and its entries.
type RoleAssignment struct {
	ID           uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	SchemaID     uuid.UUID   `gorm:"column:schema_id;type:uuid;not null;uniqueIndex:uq_logbook_role_assignments_schema_role"`
	Role         policy.Role `gorm:"column:role;type:varchar(20);not null;uniqueIndex:uq_logbook_role_assignments_schema_role;index"`
	AssignedAt   time.Time   `gorm:"column:assigned_at;autoCreateTime"`
	AssignedByID *uuid.UUID  `gorm:"column:assigned_by_id;type:uuid"`
}

func (RoleAssignment) TableName() string {
	return AssignmentTable
}

type Entry struct {
	ID       uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	SchemaID uuid.UUID         `gorm:"column:schema_id;type:uuid;not null;index"`
	Schema   *Schema           `gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE"`
	ClientID string            `gorm:"column:client_id;type:varchar(100);not null"`
	SiteID   string            `gorm:"column:site_id;type:varchar(100)"`
	Data     datatypes.JSONMap `gorm:"column:data;type:jsonb"`

	workflow.Approval

	Attachments  datatypes.JSON `gorm:"column:attachments;type:jsonb"`
	OperatorID   *uuid.UUID     `gorm:"column:operator_id;type:uuid"`
	OperatorName string         `gorm:"column:operator_name;type:varchar(255)"`
	Timestamp    time.Time      `gorm:"column:timestamp;not null;index"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string {
	return EntryTable
}

func (e Entry) EntryID() uuid.UUID {
	return e.ID
}

// ReportSeed is required by the approver. Logbook entries are approved
// without a ledger recorder, so the seed is never written.
func (e Entry) ReportSeed() ledger.Seed {
	title := "Logbook Entry"
	if e.Schema != nil && e.Schema.Name != "" {
		title = e.Schema.Name
	}
	return ledger.Seed{
		ReportType:   ledger.ReportTypeUtility,
		SourceID:     e.ID,
		SourceTable:  EntryTable,
		Title:        title,
		Site:         e.SiteID,
		CreatedBy:    e.OperatorName,
		CreatedAt:    e.CreatedAt,
		ApprovedByID: e.ApprovedByID,
		ApprovedAt:   e.ApprovedAt,
		Remarks:      e.Remarks,
	}
}
