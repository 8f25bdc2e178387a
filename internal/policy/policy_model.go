package policy

const casbinModel = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.act == "*" || r.act == p.act) && (p.obj == "*" || r.obj == p.obj)
`

// anyTarget is the casbin object for actions that do not concern a user.
const anyTarget = "*"

type rule struct {
	role   Role
	action Action
	object string
}

// managedByManager is the set of roles a manager may create and manage.
var managedByManager = []Role{RoleSupervisor, RoleOperator, RoleClient}

func buildRules() []rule {
	rules := []rule{
		{RoleSuperAdmin, "*", anyTarget},

		{RoleManager, ActionEntryView, anyTarget},
		{RoleManager, ActionEntryLog, anyTarget},
		{RoleManager, ActionEntryDelete, anyTarget},
		{RoleManager, ActionEntryApprove, anyTarget},
		{RoleManager, ActionReportView, anyTarget},
		{RoleManager, ActionSchemaManage, anyTarget},

		{RoleSupervisor, ActionEntryView, anyTarget},
		{RoleSupervisor, ActionEntryApprove, anyTarget},
		{RoleSupervisor, ActionReportView, anyTarget},

		{RoleOperator, ActionEntryView, anyTarget},
		{RoleOperator, ActionEntryLog, anyTarget},
		{RoleOperator, ActionReportView, anyTarget},

		{RoleClient, ActionEntryView, anyTarget},
		{RoleClient, ActionReportView, anyTarget},
	}

	for _, action := range []Action{ActionUserCreate, ActionUserManage, ActionUserDelete, ActionUserRestore} {
		for _, target := range managedByManager {
			rules = append(rules, rule{RoleManager, action, string(target)})
		}
	}
	return rules
}
