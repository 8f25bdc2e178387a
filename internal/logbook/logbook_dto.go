package logbook

import (
	"time"

	"gorm.io/datatypes"
)

type CreateSchemaRequest struct {
	Name          string            `json:"name" binding:"required,max=255"`
	Description   string            `json:"description"`
	ClientID      string            `json:"client_id" binding:"max=100"`
	Category      string            `json:"category"`
	Fields        datatypes.JSON    `json:"fields"`
	Workflow      datatypes.JSONMap `json:"workflow"`
	Display       datatypes.JSONMap `json:"display"`
	Metadata      datatypes.JSONMap `json:"metadata"`
	AssignedRoles []string          `json:"assigned_roles"`
}

// UpdateSchemaRequest serves PUT and PATCH. A nil AssignedRoles leaves the
// assignments alone; an empty list clears them.
type UpdateSchemaRequest struct {
	Name          *string           `json:"name" binding:"omitempty,max=255"`
	Description   *string           `json:"description"`
	ClientID      *string           `json:"client_id" binding:"omitempty,max=100"`
	Category      *string           `json:"category"`
	Fields        datatypes.JSON    `json:"fields"`
	Workflow      datatypes.JSONMap `json:"workflow"`
	Display       datatypes.JSONMap `json:"display"`
	Metadata      datatypes.JSONMap `json:"metadata"`
	AssignedRoles *[]string         `json:"assigned_roles"`
}

type AssignRolesRequest struct {
	Roles []string `json:"roles"`
}

type AssignRolesResponse struct {
	Message       string   `json:"message"`
	AssignedRoles []string `json:"assigned_roles"`
}

type ListSchemasQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type SchemaResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ClientID      string         `json:"client_id"`
	Category      string         `json:"category"`
	Fields        datatypes.JSON `json:"fields"`
	Workflow      map[string]any `json:"workflow"`
	Display       map[string]any `json:"display"`
	Metadata      map[string]any `json:"metadata"`
	CreatedByID   *string        `json:"created_by"`
	AssignedRoles []string       `json:"assigned_roles"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type AssignmentResponse struct {
	ID           string  `json:"id"`
	Role         string  `json:"role"`
	AssignedAt   string  `json:"assigned_at"`
	AssignedByID *string `json:"assigned_by"`
}

type CreateEntryRequest struct {
	SchemaID    string            `json:"schema" binding:"required"`
	ClientID    string            `json:"client_id" binding:"max=100"`
	SiteID      string            `json:"site_id" binding:"max=100"`
	Data        datatypes.JSONMap `json:"data"`
	Remarks     string            `json:"remarks"`
	Attachments datatypes.JSON    `json:"attachments"`
}

// UpdateEntryRequest cannot move an entry to another schema or touch its
// approval state.
type UpdateEntryRequest struct {
	SiteID      *string           `json:"site_id" binding:"omitempty,max=100"`
	Data        datatypes.JSONMap `json:"data"`
	Remarks     *string           `json:"remarks"`
	Attachments datatypes.JSON    `json:"attachments"`
}

type ApproveRequest struct {
	Action  *string `json:"action"`
	Remarks string  `json:"remarks"`
}

type ListEntriesQuery struct {
	SchemaID string `form:"schema"`
	SiteID   string `form:"site_id"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type EntryResponse struct {
	ID           string         `json:"id"`
	SchemaID     string         `json:"schema"`
	SchemaName   string         `json:"schema_name"`
	ClientID     string         `json:"client_id"`
	SiteID       string         `json:"site_id"`
	Data         map[string]any `json:"data"`
	OperatorID   *string        `json:"operator"`
	OperatorName string         `json:"operator_name"`
	Status       string         `json:"status"`
	ApprovedByID *string        `json:"approved_by"`
	ApprovedAt   *string        `json:"approved_at"`
	Remarks      string         `json:"remarks"`
	Attachments  datatypes.JSON `json:"attachments"`
	Timestamp    string         `json:"timestamp"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

func mapSchema(s Schema) SchemaResponse {
	roles := make([]string, 0, len(s.Assignments))
	for _, r := range s.AssignedRoles() {
		roles = append(roles, string(r))
	}
	resp := SchemaResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		Description:   s.Description,
		ClientID:      s.ClientID,
		Category:      string(s.Category),
		Fields:        s.Fields,
		Workflow:      map[string]any(s.Workflow),
		Display:       map[string]any(s.Display),
		Metadata:      map[string]any(s.Metadata),
		AssignedRoles: roles,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
	if s.CreatedByID != nil {
		id := s.CreatedByID.String()
		resp.CreatedByID = &id
	}
	return resp
}

func mapSchemas(schemas []Schema) []SchemaResponse {
	out := make([]SchemaResponse, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, mapSchema(s))
	}
	return out
}

func mapAssignment(a RoleAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID.String(),
		Role:       string(a.Role),
		AssignedAt: a.AssignedAt.Format(time.RFC3339),
	}
	if a.AssignedByID != nil {
		id := a.AssignedByID.String()
		resp.AssignedByID = &id
	}
	return resp
}

func mapEntry(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:           e.ID.String(),
		SchemaID:     e.SchemaID.String(),
		ClientID:     e.ClientID,
		SiteID:       e.SiteID,
		Data:         map[string]any(e.Data),
		OperatorName: e.OperatorName,
		Status:       string(e.Status),
		Remarks:      e.Remarks,
		Attachments:  e.Attachments,
		Timestamp:    e.Timestamp.Format(time.RFC3339),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
	if e.Schema != nil {
		resp.SchemaName = e.Schema.Name
	}
	if e.OperatorID != nil {
		id := e.OperatorID.String()
		resp.OperatorID = &id
	}
	if e.ApprovedByID != nil {
		id := e.ApprovedByID.String()
		resp.ApprovedByID = &id
	}
	if e.ApprovedAt != nil {
		at := e.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

func mapEntries(entries []Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, mapEntry(e))
	}
	return out
}
