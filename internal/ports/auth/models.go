package auth

import "context"

// Role define qué operaciones del menú son alcanzables. El core no lo mira.
// @Enum admin, customer
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Principal representa al usuario autenticado.
type Principal struct {
	Username string
	Role     Role
}

type Capability string

const (
	CapIntake          Capability = "animals:intake"
	CapAdvanceTraining Capability = "animals:advance_training"
	CapList            Capability = "animals:list"
	CapSearch          Capability = "animals:search"
	CapReserve         Capability = "animals:reserve"
	CapStats           Capability = "system:stats"
)

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapIntake:          {},
		CapAdvanceTraining: {},
		CapList:            {},
		CapSearch:          {},
		CapStats:           {},
	},
	RoleCustomer: {
		CapList:    {},
		CapSearch:  {},
		CapReserve: {},
	},
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), true
	default:
		return "", false
	}
}

// Allows responde si el rol tiene la capability.
func (r Role) Allows(c Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

type ctxKey string

const principalKey ctxKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
