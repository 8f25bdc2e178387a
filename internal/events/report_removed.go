package events

import "time"

const (
	ReportRemovedTopic = "logbook.report.removed.v1"
	ReportRemovedType  = "report.removed"
)

type ReportRemovedEvent struct {
	EventType   string    `json:"event_type"`
	ReportID    string    `json:"report_id"`
	SourceID    string    `json:"source_id"`
	SourceTable string    `json:"source_table"`
	OccurredAt  time.Time `json:"occurred_at"`
}
