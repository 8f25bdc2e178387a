package events

import "time"

const (
	ReportRecordedTopic = "logbook.report.recorded.v1"
	ReportRecordedType  = "report.recorded"
)

type ReportRecordedEvent struct {
	EventType    string     `json:"event_type"`
	ReportID     string     `json:"report_id"`
	ReportType   string     `json:"report_type"`
	SourceID     string     `json:"source_id"`
	SourceTable  string     `json:"source_table"`
	Title        string     `json:"title"`
	Site         string     `json:"site,omitempty"`
	ApprovedByID string     `json:"approved_by_id,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
}
