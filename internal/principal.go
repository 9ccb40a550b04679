package internal

import "context"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Principal is the authenticated caller: identity plus role, decoded from the
// access token. It is the only input the authorization policy looks at.
type Principal struct {
	UserID int64  `json:"user_id"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Action names every operation the policy rules on.
type Action string

const (
	ActionCreateSalarySlip Action = "salary_slip.create"
	ActionUpdateSalarySlip Action = "salary_slip.update"
	ActionReadSalarySlip   Action = "salary_slip.read"
	ActionCreateExpense    Action = "expense.create"
	ActionDecideExpense    Action = "expense.decide"
	ActionReadExpense      Action = "expense.read"
)

// Authorize is the single policy decision point. Admins manage salary slips
// and decide expenses; employees submit expenses; reads are allowed for admins
// and for the record owner. resourceOwnerID is ignored for create/decide
// actions.
func Authorize(p Principal, action Action, resourceOwnerID int64) error {
	switch action {
	case ActionCreateSalarySlip, ActionUpdateSalarySlip, ActionDecideExpense:
		if p.IsAdmin() {
			return nil
		}
	case ActionReadSalarySlip, ActionReadExpense:
		if p.IsAdmin() || p.UserID == resourceOwnerID {
			return nil
		}
	case ActionCreateExpense:
		if p.Role == RoleEmployee {
			return nil
		}
	}
	return ErrAccessDenied
}

type principalCtxKey struct{}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}
