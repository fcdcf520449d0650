package infra

import (
	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the fixed permission table: role, resource, action.
var DefaultPolicies = [][]string{
	{domain.RoleUser, "leave", "create"},
	{domain.RoleUser, "leave", "read_own"},
	{domain.RoleUser, "dashboard", "read"},
	{domain.RoleAdmin, "leave", "read_all"},
	{domain.RoleAdmin, "leave", "approve"},
	{domain.RoleAdmin, "leave", "export"},
	{domain.RoleAdmin, "employee", "read"},
	{domain.RoleAdmin, "dashboard", "admin"},
}

// NewEnforcer builds an in-memory enforcer; admin inherits every user permission.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(DefaultPolicies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	return e, nil
}
