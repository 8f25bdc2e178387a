package policy

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleOperator   Role = "operator"
	RoleClient     Role = "client"
)

// Roles lists every role from most to least privileged.
var Roles = []Role{RoleSuperAdmin, RoleManager, RoleSupervisor, RoleOperator, RoleClient}

var roleLabels = map[Role]string{
	RoleSuperAdmin: "Super Admin",
	RoleManager:    "Manager",
	RoleSupervisor: "Supervisor",
	RoleOperator:   "Operator",
	RoleClient:     "Client",
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r Role) String() string { return string(r) }

type Action string

const (
	ActionUserCreate      Action = "user:create"
	ActionUserManage      Action = "user:manage"
	ActionUserDelete      Action = "user:delete"
	ActionUserRestore     Action = "user:restore"
	ActionUserListDeleted Action = "user:list_deleted"

	ActionEntryView    Action = "entry:view"
	ActionEntryLog     Action = "entry:log"
	ActionEntryDelete  Action = "entry:delete"
	ActionEntryApprove Action = "entry:approve"

	ActionReportView Action = "report:view"

	ActionSchemaManage Action = "schema:manage"
)

// Actions lists every action the engine knows about.
var Actions = []Action{
	ActionUserCreate, ActionUserManage, ActionUserDelete, ActionUserRestore, ActionUserListDeleted,
	ActionEntryView, ActionEntryLog, ActionEntryDelete, ActionEntryApprove,
	ActionReportView, ActionSchemaManage,
}

// IsUserAction reports whether a concrete target user is part of the check.
func (a Action) IsUserAction() bool {
	switch a {
	case ActionUserCreate, ActionUserManage, ActionUserDelete, ActionUserRestore:
		return true
	}
	return false
}

// Actor is the authenticated caller. The zero value is anonymous.
type Actor struct {
	ID    uuid.UUID
	Role  Role
	Email string
	Name  string
}

func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != uuid.Nil && a.Role.Valid()
}

// DisplayName is used for denormalized operator names on entries.
func (a *Actor) DisplayName() string {
	if a == nil {
		return ""
	}
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return a.Email
}

// Target describes the user an action applies to. NewRole is set when the
// request changes the target's role; for creation Role is the requested role.
type Target struct {
	ID      uuid.UUID
	Role    Role
	NewRole Role
}

func (t *Target) changesRole() bool {
	return t != nil && t.NewRole != "" && t.NewRole != t.Role
}
