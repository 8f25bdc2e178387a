package ledger

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportTypeUtility              ReportType = "utility"
	ReportTypeChemical             ReportType = "chemical"
	ReportTypeValidation           ReportType = "validation"
	ReportTypeAirVelocity          ReportType = "air_velocity"
	ReportTypeFilterIntegrity      ReportType = "filter_integrity"
	ReportTypeRecovery             ReportType = "recovery"
	ReportTypeDifferentialPressure ReportType = "differential_pressure"
	ReportTypeNVPC                 ReportType = "nvpc"
)

var reportTypeLabels = map[ReportType]string{
	ReportTypeUtility:              "E Log Book",
	ReportTypeChemical:             "Chemical Prep",
	ReportTypeValidation:           "HVAC Validation",
	ReportTypeAirVelocity:          "Air Velocity Test",
	ReportTypeFilterIntegrity:      "Filter Integrity Test",
	ReportTypeRecovery:             "Recovery Test",
	ReportTypeDifferentialPressure: "Differential Pressure Test",
	ReportTypeNVPC:                 "NVPC Test",
}

// clientReportTypes are the types visible to client accounts when the
// client filter is enabled. Chemical preparation stays internal.
var clientReportTypes = []ReportType{
	ReportTypeUtility,
	ReportTypeValidation,
	ReportTypeAirVelocity,
	ReportTypeFilterIntegrity,
	ReportTypeRecovery,
	ReportTypeDifferentialPressure,
	ReportTypeNVPC,
}

func (t ReportType) Valid() bool {
	_, ok := reportTypeLabels[t]
	return ok
}

func (t ReportType) Label() string {
	if l, ok := reportTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Report mirrors one approved log entry. (source_id, source_table) is unique,
// which makes recording idempotent.
type Report struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ReportType   ReportType `gorm:"column:report_type;type:varchar(50);not null;index:idx_reports_type_approved"`
	SourceID     uuid.UUID  `gorm:"column:source_id;type:uuid;not null;uniqueIndex:uq_reports_source"`
	SourceTable  string     `gorm:"column:source_table;type:varchar(100);not null;uniqueIndex:uq_reports_source"`
	Title        string     `gorm:"column:title;type:varchar(255);not null"`
	Site         string     `gorm:"column:site;type:varchar(255)"`
	CreatedBy    string     `gorm:"column:created_by;type:varchar(255)"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	ApprovedByID *uuid.UUID `gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt   time.Time  `gorm:"column:approved_at;index:idx_reports_type_approved"`
	Remarks      string     `gorm:"column:remarks;type:text"`
	RecordedAt   time.Time  `gorm:"column:recorded_at;not null"`
}

func (Report) TableName() string {
	return "reports"
}

// Seed is what an approved entry hands to the ledger.
type Seed struct {
	ReportType   ReportType
	SourceID     uuid.UUID
	SourceTable  string
	Title        string
	Site         string
	CreatedBy    string
	CreatedAt    time.Time
	ApprovedByID *uuid.UUID
	ApprovedAt   *time.Time
	Remarks      string
}

func (s Seed) toReport(now time.Time) Report {
	approvedAt := now
	if s.ApprovedAt != nil {
		approvedAt = *s.ApprovedAt
	}
	createdBy := s.CreatedBy
	if createdBy == "" {
		createdBy = "Unknown"
	}
	return Report{
		ID:           uuid.New(),
		ReportType:   s.ReportType,
		SourceID:     s.SourceID,
		SourceTable:  s.SourceTable,
		Title:        s.Title,
		Site:         s.Site,
		CreatedBy:    createdBy,
		CreatedAt:    s.CreatedAt,
		ApprovedByID: s.ApprovedByID,
		ApprovedAt:   approvedAt,
		Remarks:      s.Remarks,
		RecordedAt:   now,
	}
}
