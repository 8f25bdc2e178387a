package ledger

import "time"

type ListReportsQuery struct {
	Type     string `form:"type"`
	Site     string `form:"site"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ReportResponse struct {
	ID              string  `json:"id"`
	ReportType      string  `json:"report_type"`
	ReportTypeLabel string  `json:"report_type_display"`
	SourceID        string  `json:"source_id"`
	SourceTable     string  `json:"source_table"`
	Title           string  `json:"title"`
	Site            string  `json:"site"`
	CreatedBy       string  `json:"created_by"`
	CreatedAt       string  `json:"created_at"`
	ApprovedByID    *string `json:"approved_by_id"`
	ApprovedAt      string  `json:"approved_at"`
	Remarks         string  `json:"remarks"`
	RecordedAt      string  `json:"recorded_at"`
}

type reportPage struct {
	Items []ReportResponse `json:"items"`
	Total int64            `json:"total"`
}

func mapToResponse(r Report) ReportResponse {
	resp := ReportResponse{
		ID:              r.ID.String(),
		ReportType:      string(r.ReportType),
		ReportTypeLabel: r.ReportType.Label(),
		SourceID:        r.SourceID.String(),
		SourceTable:     r.SourceTable,
		Title:           r.Title,
		Site:            r.Site,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		ApprovedAt:      r.ApprovedAt.Format(time.RFC3339),
		Remarks:         r.Remarks,
		RecordedAt:      r.RecordedAt.Format(time.RFC3339),
	}
	if r.ApprovedByID != nil {
		id := r.ApprovedByID.String()
		resp.ApprovedByID = &id
	}
	return resp
}

func mapToResponses(reports []Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, mapToResponse(r))
	}
	return out
}
