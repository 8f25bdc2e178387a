package policy

import (
	"errors"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"
)

// Denial reasons returned by Explain. Callers map them to user facing errors.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrRoleNotPermitted    = errors.New("role not permitted")
	ErrSelfRoleChange      = errors.New("cannot change own role")
	ErrSuperAdminRole      = errors.New("cannot change super admin role")
	ErrTargetRoleForbidden = errors.New("target role outside actor's managed set")
	ErrSelfDelete          = errors.New("cannot delete own account")
	ErrSuperAdminDelete    = errors.New("cannot delete super admin")
)

// Engine answers authorization questions. It performs no I/O; the casbin
// enforcer is built in memory from the rule table and never modified after.
type Engine struct {
	enforcer *casbin.SyncedEnforcer
}

func NewEngine() (*Engine, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("policy model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("policy enforcer: %w", err)
	}

	rules := buildRules()
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, []string{string(r.role), string(r.action), r.object})
	}
	if _, err := e.AddPolicies(rows); err != nil {
		return nil, fmt.Errorf("policy rules: %w", err)
	}

	return &Engine{enforcer: e}, nil
}

// MustNewEngine panics if the embedded model is broken.
func MustNewEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return e
}

// Can reports whether actor may perform action on target. target may be nil
// for actions that do not concern a specific user.
func (e *Engine) Can(actor *Actor, action Action, target *Target) bool {
	return e.Explain(actor, action, target) == nil
}

// Explain is Can with the reason for a denial.
func (e *Engine) Explain(actor *Actor, action Action, target *Target) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}

	if err := objectRules(actor, action, target); err != nil {
		return err
	}

	if !e.allowed(actor.Role, action, target) {
		return ErrRoleNotPermitted
	}

	if target.changesRole() && !e.allowed(actor.Role, action, &Target{Role: target.NewRole}) {
		return ErrTargetRoleForbidden
	}

	return nil
}

func (e *Engine) allowed(role Role, action Action, target *Target) bool {
	obj := anyTarget
	if action.IsUserAction() {
		if target == nil || !target.Role.Valid() {
			return false
		}
		obj = string(target.Role)
	}
	ok, err := e.enforcer.Enforce(string(role), string(action), obj)
	return err == nil && ok
}

// objectRules bind every role, super_admin included.
func objectRules(actor *Actor, action Action, target *Target) error {
	if target == nil {
		return nil
	}
	self := target.ID != uuid.Nil && target.ID == actor.ID

	switch action {
	case ActionUserManage:
		if self && target.changesRole() {
			return ErrSelfRoleChange
		}
		if target.Role == RoleSuperAdmin && target.changesRole() {
			return ErrSuperAdminRole
		}
	case ActionUserDelete:
		if self {
			return ErrSelfDelete
		}
		if target.Role == RoleSuperAdmin {
			return ErrSuperAdminDelete
		}
	}
	return nil
}

// Helpers mirroring the role level checks used by route guards.

func (e *Engine) CanManageUsers(actorRole, targetRole Role) bool {
	return e.allowed(actorRole, ActionUserManage, &Target{Role: targetRole})
}

func (e *Engine) CanApproveEntries(role Role) bool {
	return e.allowed(role, ActionEntryApprove, nil)
}

func (e *Engine) CanLogEntries(role Role) bool {
	return e.allowed(role, ActionEntryLog, nil)
}

func (e *Engine) CanViewReports(role Role) bool {
	return e.allowed(role, ActionReportView, nil)
}

// CanManageSchemas also means the role sees every logbook regardless of
// role assignments.
func (e *Engine) CanManageSchemas(role Role) bool {
	return e.allowed(role, ActionSchemaManage, nil)
}

// ManageableRoles lists the roles actor may assign or manage.
func (e *Engine) ManageableRoles(role Role) []Role {
	out := make([]Role, 0, len(Roles))
	for _, r := range Roles {
		if e.CanManageUsers(role, r) {
			out = append(out, r)
		}
	}
	return out
}

// Permits reports whether role may perform action on at least one target.
// Route guards use it before the handler loads the concrete target.
func (e *Engine) Permits(role Role, action Action) bool {
	if !action.IsUserAction() {
		return e.allowed(role, action, nil)
	}
	for _, r := range Roles {
		if e.allowed(role, action, &Target{Role: r}) {
			return true
		}
	}
	return false
}
