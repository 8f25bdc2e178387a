package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	logbookerrors "go-logbook/internal/logbook/errors"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Approver is the workflow for logbook entries, normally
// *workflow.Approver[Entry].
type Approver interface {
	Submit(ctx context.Context, actor *policy.Actor, id uuid.UUID) (Entry, error)
	Decide(ctx context.Context, actor *policy.Actor, id uuid.UUID, d workflow.Decision) (Entry, error)
}

//go:generate mockgen -source=logbook_service.go -destination=mock/logbook_service_mock.go -package=mock
type Service interface {
	CreateSchema(ctx context.Context, actor *policy.Actor, req CreateSchemaRequest) (SchemaResponse, error)
	GetSchema(ctx context.Context, actor *policy.Actor, id string) (SchemaResponse, error)
	ListSchemas(ctx context.Context, actor *policy.Actor, q ListSchemasQuery) ([]SchemaResponse, int64, error)
	UpdateSchema(ctx context.Context, actor *policy.Actor, id string, req UpdateSchemaRequest) (SchemaResponse, error)
	DeleteSchema(ctx context.Context, actor *policy.Actor, id string) error
	AssignRoles(ctx context.Context, actor *policy.Actor, id string, req AssignRolesRequest) (AssignRolesResponse, error)
	ListAssignments(ctx context.Context, actor *policy.Actor, id string) ([]AssignmentResponse, error)

	CreateEntry(ctx context.Context, actor *policy.Actor, req CreateEntryRequest) (EntryResponse, error)
	GetEntry(ctx context.Context, actor *policy.Actor, id string) (EntryResponse, error)
	ListEntries(ctx context.Context, actor *policy.Actor, q ListEntriesQuery) ([]EntryResponse, int64, error)
	UpdateEntry(ctx context.Context, actor *policy.Actor, id string, req UpdateEntryRequest) (EntryResponse, error)
	DeleteEntry(ctx context.Context, actor *policy.Actor, id string) error
	SubmitEntry(ctx context.Context, actor *policy.Actor, id string) (EntryResponse, error)
	ApproveEntry(ctx context.Context, actor *policy.Actor, id string, req ApproveRequest) (EntryResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	approver Approver
	policy   *policy.Engine
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, approver Approver, engine *policy.Engine, logger ...*zap.Logger) Service {
	l := zap.L().Named("logbook.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("logbook.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		approver: approver,
		policy:   engine,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) authorize(actor *policy.Actor, action policy.Action) error {
	if err := s.policy.Explain(actor, action, nil); err != nil {
		return apperror.ErrForbidden
	}
	return nil
}

// scope is the role whose assignments limit what actor sees, or nil when
// actor sees every logbook.
func (s *service) scope(actor *policy.Actor) *policy.Role {
	if actor == nil {
		return new(policy.Role)
	}
	if s.policy.CanManageSchemas(actor.Role) {
		return nil
	}
	role := actor.Role
	return &role
}

func parseSchemaID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, logbookerrors.ErrInvalidSchemaID
	}
	return uid, nil
}

func parseEntryID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, logbookerrors.ErrInvalidEntryID
	}
	return uid, nil
}

func schemaNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return logbookerrors.ErrSchemaNotFound
	}
	return err
}

func entryNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return logbookerrors.ErrEntryNotFound
	}
	return err
}

// parseRoles validates every role and drops duplicates, keeping the
// caller's order. The error lists each unknown role once.
func parseRoles(raw []string) ([]policy.Role, error) {
	out := make([]policy.Role, 0, len(raw))
	seen := make(map[policy.Role]bool, len(raw))
	var invalid []string
	for _, r := range raw {
		role := policy.Role(r)
		if !role.Valid() {
			invalid = append(invalid, r)
			continue
		}
		if !seen[role] {
			seen[role] = true
			out = append(out, role)
		}
	}
	if len(invalid) > 0 {
		return nil, logbookerrors.ErrInvalidRoles.WithDetails(map[string]string{
			"roles": "Invalid roles: " + strings.Join(invalid, ", "),
		})
	}
	return out, nil
}

func roleStrings(roles []policy.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func assignmentsOf(rows []RoleAssignment) []RoleAssignment {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Role < rows[j].Role })
	return rows
}

// jsonList checks raw is a JSON array. Empty input becomes [].
func jsonList(raw datatypes.JSON, invalid *apperror.AppError, field string) (datatypes.JSON, error) {
	if len(strings.TrimSpace(string(raw))) == 0 || string(raw) == "null" {
		return datatypes.JSON("[]"), nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, invalid.Field(field)
	}
	return raw, nil
}

func parseCategory(raw string) (Category, error) {
	if raw == "" {
		return CategoryCustom, nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", logbookerrors.ErrInvalidCategory.Field("category")
	}
	return c, nil
}

func (s *service) CreateSchema(ctx context.Context, actor *policy.Actor, req CreateSchemaRequest) (SchemaResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionSchemaManage); err != nil {
		return SchemaResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SchemaResponse{}, apperror.RequiredField("name")
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		return SchemaResponse{}, err
	}
	fields, err := jsonList(req.Fields, logbookerrors.ErrInvalidFields, "fields")
	if err != nil {
		return SchemaResponse{}, err
	}
	roles, err := parseRoles(req.AssignedRoles)
	if err != nil {
		return SchemaResponse{}, err
	}

	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		clientID = DefaultClientID
	}
	schema := &Schema{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
		ClientID:    clientID,
		Category:    category,
		Fields:      fields,
		Workflow:    req.Workflow,
		Display:     req.Display,
		Metadata:    req.Metadata,
		CreatedByID: &actor.ID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateSchema(ctx, schema); err != nil {
			return err
		}
		rows, err := repo.ReplaceAssignments(ctx, schema.ID, roles, &actor.ID)
		if err != nil {
			return err
		}
		schema.Assignments = assignmentsOf(rows)
		return nil
	})
	if err != nil {
		log.Error("create logbook schema failed", zap.String("name", name), zap.Error(err))
		return SchemaResponse{}, err
	}

	log.Info("logbook schema created",
		zap.String("schema_id", schema.ID.String()),
		zap.Strings("assigned_roles", roleStrings(roles)),
	)
	return mapSchema(*schema), nil
}

func (s *service) GetSchema(ctx context.Context, actor *policy.Actor, id string) (SchemaResponse, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return SchemaResponse{}, err
	}
	uid, err := parseSchemaID(id)
	if err != nil {
		return SchemaResponse{}, err
	}

	schema, err := s.repo.FindSchema(ctx, uid, s.scope(actor))
	if err != nil {
		return SchemaResponse{}, schemaNotFound(err)
	}
	return mapSchema(*schema), nil
}

func (s *service) ListSchemas(ctx context.Context, actor *policy.Actor, q ListSchemasQuery) ([]SchemaResponse, int64, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return nil, 0, err
	}

	f := SchemaFilter{
		Role:     s.scope(actor),
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Category != "" {
		c, err := parseCategory(q.Category)
		if err != nil {
			return nil, 0, err
		}
		f.Category = c
	}

	schemas, total, err := s.repo.ListSchemas(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return mapSchemas(schemas), total, nil
}

func (s *service) UpdateSchema(ctx context.Context, actor *policy.Actor, id string, req UpdateSchemaRequest) (SchemaResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionSchemaManage); err != nil {
		return SchemaResponse{}, err
	}
	uid, err := parseSchemaID(id)
	if err != nil {
		return SchemaResponse{}, err
	}

	var roles []policy.Role
	if req.AssignedRoles != nil {
		if roles, err = parseRoles(*req.AssignedRoles); err != nil {
			return SchemaResponse{}, err
		}
	}

	var schema *Schema
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		schema, err = repo.FindSchemaForUpdate(ctx, uid)
		if err != nil {
			return schemaNotFound(err)
		}
		if err := applySchemaUpdate(schema, req); err != nil {
			return err
		}
		if err := repo.UpdateSchema(ctx, schema); err != nil {
			return schemaNotFound(err)
		}

		var rows []RoleAssignment
		if req.AssignedRoles != nil {
			rows, err = repo.ReplaceAssignments(ctx, uid, roles, &actor.ID)
		} else {
			rows, err = repo.ListAssignments(ctx, uid)
		}
		if err != nil {
			return err
		}
		schema.Assignments = assignmentsOf(rows)
		return nil
	})
	if err != nil {
		log.Warn("update logbook schema failed", zap.String("schema_id", id), zap.Error(err))
		return SchemaResponse{}, err
	}

	log.Info("logbook schema updated", zap.String("schema_id", id))
	return mapSchema(*schema), nil
}

func applySchemaUpdate(schema *Schema, req UpdateSchemaRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return apperror.RequiredField("name")
		}
		schema.Name = name
	}
	if req.Description != nil {
		schema.Description = *req.Description
	}
	if req.ClientID != nil {
		schema.ClientID = strings.TrimSpace(*req.ClientID)
	}
	if req.Category != nil {
		c, err := parseCategory(*req.Category)
		if err != nil {
			return err
		}
		schema.Category = c
	}
	if req.Fields != nil {
		fields, err := jsonList(req.Fields, logbookerrors.ErrInvalidFields, "fields")
		if err != nil {
			return err
		}
		schema.Fields = fields
	}
	if req.Workflow != nil {
		schema.Workflow = req.Workflow
	}
	if req.Display != nil {
		schema.Display = req.Display
	}
	if req.Metadata != nil {
		schema.Metadata = req.Metadata
	}
	return nil
}

// DeleteSchema cascades to the schema's assignments and entries.
func (s *service) DeleteSchema(ctx context.Context, actor *policy.Actor, id string) error {
	if err := s.authorize(actor, policy.ActionSchemaManage); err != nil {
		return err
	}
	uid, err := parseSchemaID(id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSchema(ctx, uid); err != nil {
		return schemaNotFound(err)
	}
	s.log(ctx).Info("logbook schema deleted", zap.String("schema_id", id))
	return nil
}

func (s *service) AssignRoles(ctx context.Context, actor *policy.Actor, id string, req AssignRolesRequest) (AssignRolesResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionSchemaManage); err != nil {
		return AssignRolesResponse{}, err
	}
	uid, err := parseSchemaID(id)
	if err != nil {
		return AssignRolesResponse{}, err
	}
	roles, err := parseRoles(req.Roles)
	if err != nil {
		return AssignRolesResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindSchemaForUpdate(ctx, uid); err != nil {
			return schemaNotFound(err)
		}
		_, err := repo.ReplaceAssignments(ctx, uid, roles, &actor.ID)
		return err
	})
	if err != nil {
		log.Warn("assign logbook roles failed", zap.String("schema_id", id), zap.Error(err))
		return AssignRolesResponse{}, err
	}

	assigned := roleStrings(roles)
	log.Info("logbook roles assigned", zap.String("schema_id", id), zap.Strings("roles", assigned))
	return AssignRolesResponse{Message: "Roles assigned successfully", AssignedRoles: assigned}, nil
}

func (s *service) ListAssignments(ctx context.Context, actor *policy.Actor, id string) ([]AssignmentResponse, error) {
	if err := s.authorize(actor, policy.ActionSchemaManage); err != nil {
		return nil, err
	}
	uid, err := parseSchemaID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindSchema(ctx, uid, nil); err != nil {
		return nil, schemaNotFound(err)
	}
	rows, err := s.repo.ListAssignments(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, mapAssignment(a))
	}
	return out, nil
}

func (s *service) CreateEntry(ctx context.Context, actor *policy.Actor, req CreateEntryRequest) (EntryResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionEntryLog); err != nil {
		return EntryResponse{}, err
	}
	schemaID, err := uuid.Parse(req.SchemaID)
	if err != nil {
		return EntryResponse{}, logbookerrors.ErrInvalidSchemaID.Field("schema")
	}
	attachments, err := jsonList(req.Attachments, logbookerrors.ErrInvalidAttachments, "attachments")
	if err != nil {
		return EntryResponse{}, err
	}

	schema, err := s.repo.FindSchema(ctx, schemaID, s.scope(actor))
	if err != nil {
		return EntryResponse{}, schemaNotFound(err)
	}

	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		clientID = schema.ClientID
	}
	data := req.Data
	if data == nil {
		data = datatypes.JSONMap{}
	}
	entry := &Entry{
		ID:       uuid.New(),
		SchemaID: schema.ID,
		ClientID: clientID,
		SiteID:   strings.TrimSpace(req.SiteID),
		Data:     data,
		Approval: workflow.Approval{
			Status:  workflow.StatusDraft,
			Remarks: strings.TrimSpace(req.Remarks),
		},
		Attachments:  attachments,
		OperatorID:   &actor.ID,
		OperatorName: actor.DisplayName(),
		Timestamp:    s.now(),
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		log.Error("create logbook entry failed", zap.String("schema_id", schema.ID.String()), zap.Error(err))
		return EntryResponse{}, err
	}
	entry.Schema = schema

	log.Info("logbook entry created",
		zap.String("entry_id", entry.ID.String()),
		zap.String("schema_id", schema.ID.String()),
	)
	return mapEntry(*entry), nil
}

func (s *service) GetEntry(ctx context.Context, actor *policy.Actor, id string) (EntryResponse, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return EntryResponse{}, err
	}
	uid, err := parseEntryID(id)
	if err != nil {
		return EntryResponse{}, err
	}

	entry, err := s.repo.FindEntry(ctx, uid, s.scope(actor))
	if err != nil {
		return EntryResponse{}, entryNotFound(err)
	}
	return mapEntry(*entry), nil
}

func (s *service) ListEntries(ctx context.Context, actor *policy.Actor, q ListEntriesQuery) ([]EntryResponse, int64, error) {
	if err := s.authorize(actor, policy.ActionEntryView); err != nil {
		return nil, 0, err
	}

	f := EntryFilter{
		Role:     s.scope(actor),
		SiteID:   strings.TrimSpace(q.SiteID),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.SchemaID != "" {
		sid, err := uuid.Parse(q.SchemaID)
		if err != nil {
			return nil, 0, logbookerrors.ErrInvalidSchemaID.Field("schema")
		}
		f.SchemaID = &sid
	}
	if q.Status != "" {
		st := workflow.Status(strings.ToLower(q.Status))
		if !st.Valid() {
			return nil, 0, logbookerrors.ErrInvalidStatusFilter.Field("status")
		}
		f.Status = st
	}

	entries, total, err := s.repo.ListEntries(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return mapEntries(entries), total, nil
}

func (s *service) UpdateEntry(ctx context.Context, actor *policy.Actor, id string, req UpdateEntryRequest) (EntryResponse, error) {
	log := s.log(ctx)
	if err := s.authorize(actor, policy.ActionEntryLog); err != nil {
		return EntryResponse{}, err
	}
	uid, err := parseEntryID(id)
	if err != nil {
		return EntryResponse{}, err
	}
	var attachments datatypes.JSON
	if req.Attachments != nil {
		if attachments, err = jsonList(req.Attachments, logbookerrors.ErrInvalidAttachments, "attachments"); err != nil {
			return EntryResponse{}, err
		}
	}

	var entry *Entry
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		entry, err = repo.FindEntryForUpdate(ctx, uid, s.scope(actor))
		if err != nil {
			return entryNotFound(err)
		}

		if req.SiteID != nil {
			entry.SiteID = strings.TrimSpace(*req.SiteID)
		}
		if req.Data != nil {
			entry.Data = req.Data
		}
		if req.Remarks != nil {
			entry.Remarks = *req.Remarks
		}
		if attachments != nil {
			entry.Attachments = attachments
		}
		if err := repo.UpdateEntry(ctx, entry); err != nil {
			return entryNotFound(err)
		}
		return nil
	})
	if err != nil {
		log.Warn("update logbook entry failed", zap.String("entry_id", id), zap.Error(err))
		return EntryResponse{}, err
	}

	log.Info("logbook entry updated", zap.String("entry_id", id))
	return mapEntry(*entry), nil
}

func (s *service) DeleteEntry(ctx context.Context, actor *policy.Actor, id string) error {
	if err := s.authorize(actor, policy.ActionEntryDelete); err != nil {
		return err
	}
	uid, err := parseEntryID(id)
	if err != nil {
		return err
	}

	if scope := s.scope(actor); scope != nil {
		if _, err := s.repo.FindEntry(ctx, uid, scope); err != nil {
			return entryNotFound(err)
		}
	}
	if err := s.repo.DeleteEntry(ctx, uid); err != nil {
		return entryNotFound(err)
	}

	s.log(ctx).Info("logbook entry deleted", zap.String("entry_id", id))
	return nil
}

// visibleEntry resolves id for the workflow calls, which do not know about
// role assignments.
func (s *service) visibleEntry(ctx context.Context, actor *policy.Actor, action policy.Action, id string) (uuid.UUID, error) {
	if err := s.authorize(actor, action); err != nil {
		return uuid.Nil, err
	}
	uid, err := parseEntryID(id)
	if err != nil {
		return uuid.Nil, err
	}
	if scope := s.scope(actor); scope != nil {
		if _, err := s.repo.FindEntry(ctx, uid, scope); err != nil {
			return uuid.Nil, entryNotFound(err)
		}
	}
	return uid, nil
}

func (s *service) SubmitEntry(ctx context.Context, actor *policy.Actor, id string) (EntryResponse, error) {
	uid, err := s.visibleEntry(ctx, actor, policy.ActionEntryLog, id)
	if err != nil {
		return EntryResponse{}, err
	}
	entry, err := s.approver.Submit(ctx, actor, uid)
	if err != nil {
		return EntryResponse{}, err
	}
	return mapEntry(entry), nil
}

func (s *service) ApproveEntry(ctx context.Context, actor *policy.Actor, id string, req ApproveRequest) (EntryResponse, error) {
	uid, err := s.visibleEntry(ctx, actor, policy.ActionEntryApprove, id)
	if err != nil {
		return EntryResponse{}, err
	}
	entry, err := s.approver.Decide(ctx, actor, uid, workflow.Decision{Action: req.Action, Remarks: req.Remarks})
	if err != nil {
		return EntryResponse{}, err
	}
	return mapEntry(entry), nil
}
