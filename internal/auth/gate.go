package auth

import "postboard/internal/domain"

// Ability decides whether an identity may perform one named action, optionally
// against a resource. Abilities must be pure and side-effect free.
type Ability func(ident *Identity, resource any) bool

// Gate is a registry of named actions. It is populated once at startup and
// read-only afterwards, so it is safe to share across requests.
type Gate struct {
	abilities map[string]Ability
}

func NewGate() *Gate {
	return &Gate{abilities: make(map[string]Ability)}
}

// Define binds an action name to an ability. Defining the same action twice
// replaces the earlier ability.
func (g *Gate) Define(action string, fn Ability) {
	g.abilities[action] = fn
}

// Allows evaluates the ability bound to action and never errors. Unknown
// actions, nil abilities and denies all yield false.
func (g *Gate) Allows(ident *Identity, action string, resource any) bool {
	fn, ok := g.abilities[action]
	if !ok || fn == nil {
		return false
	}
	return fn(ident, resource)
}

// Authorize evaluates the same ability as Allows but reports a deny as a
// *domain.AuthorizationError carrying the default reason.
func (g *Gate) Authorize(ident *Identity, action string, resource any) error {
	if !g.Allows(ident, action, resource) {
		return domain.NewAuthorizationError("")
	}
	return nil
}
