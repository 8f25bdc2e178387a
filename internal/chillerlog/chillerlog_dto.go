package chillerlog

import (
	"time"
)

type CreateChillerLogRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required,max=100"`
	SiteID      string `json:"site_id" binding:"max=100"`
	Readings
	Annotations
	EquipmentStatus
	Remarks string `json:"remarks"`
}

// UpdateChillerLogRequest serves PUT and PATCH. Equipment and its status
// flags are fixed once the log exists.
type UpdateChillerLogRequest struct {
	SiteID *string `json:"site_id" binding:"omitempty,max=100"`
	Readings
	Annotations
	Remarks *string `json:"remarks"`
}

type ApproveRequest struct {
	Action  *string `json:"action"`
	Remarks string `json:"remarks"`
}

type ListChillerLogsQuery struct {
	EquipmentID string `form:"equipment_id"`
	SiteID      string `form:"site_id"`
	Status      string `form:"status"`
	Date        string `form:"date"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}

type ChillerLogResponse struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`
	SiteID      string `json:"site_id"`
	Readings
	Annotations
	EquipmentStatus
	Remarks      string  `json:"remarks"`
	OperatorID   *string `json:"operator_id"`
	OperatorName string  `json:"operator_name"`
	Status       string  `json:"status"`
	ApprovedByID *string `json:"approved_by_id"`
	ApprovedAt   *string `json:"approved_at"`
	Timestamp    string  `json:"timestamp"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type StatusChangeResponse struct {
	ID            string         `json:"id"`
	ChillerLogID  string         `json:"chiller_log_id"`
	BaselineLogID string         `json:"baseline_log_id"`
	EquipmentID   string         `json:"equipment_id"`
	Field         string         `json:"field"`
	FieldLabel    string         `json:"field_label"`
	OldValue      string         `json:"old_value"`
	NewValue      string         `json:"new_value"`
	ChangedByID   *string        `json:"changed_by_id"`
	ChangedAt     string         `json:"changed_at"`
	Context       map[string]any `json:"context"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func mapToResponse(l ChillerLog) ChillerLogResponse {
	resp := ChillerLogResponse{
		ID:              l.ID.String(),
		EquipmentID:     l.EquipmentID,
		SiteID:          l.SiteID,
		Readings:        l.Readings,
		Annotations:     l.Annotations,
		EquipmentStatus: l.EquipmentStatus,
		Remarks:         l.Remarks,
		OperatorName:    l.OperatorName,
		Status:          string(l.Status),
		ApprovedAt:      formatTime(l.ApprovedAt),
		Timestamp:       l.Timestamp.Format(time.RFC3339),
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       l.UpdatedAt.Format(time.RFC3339),
	}
	if l.OperatorID != nil {
		id := l.OperatorID.String()
		resp.OperatorID = &id
	}
	if l.ApprovedByID != nil {
		id := l.ApprovedByID.String()
		resp.ApprovedByID = &id
	}
	return resp
}

func mapToResponses(logs []ChillerLog) []ChillerLogResponse {
	out := make([]ChillerLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, mapToResponse(l))
	}
	return out
}

func mapStatusChange(c ChillerStatusChange) StatusChangeResponse {
	resp := StatusChangeResponse{
		ID:            c.ID.String(),
		ChillerLogID:  c.ChillerLogID.String(),
		BaselineLogID: c.BaselineLogID.String(),
		EquipmentID:   c.EquipmentID,
		Field:         c.Field,
		FieldLabel:    c.FieldLabel,
		OldValue:      c.OldValue,
		NewValue:      c.NewValue,
		ChangedAt:     c.ChangedAt.Format(time.RFC3339),
		Context:       map[string]any(c.Context),
	}
	if c.ChangedByID != nil {
		id := c.ChangedByID.String()
		resp.ChangedByID = &id
	}
	return resp
}
