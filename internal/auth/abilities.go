package auth

import "postboard/internal/domain"

// Actions enforced by the API.
const (
	ActionUpdatePost       = "update-post"
	ActionDeletePost       = "delete-post"
	ActionAccessAdminPanel = "access-admin-panel"
)

// NewDefaultGate builds the gate the server runs with: post mutations require
// ownership, the admin panel requires the admin role.
func NewDefaultGate() *Gate {
	g := NewGate()
	g.Define(ActionUpdatePost, ownsPost)
	g.Define(ActionDeletePost, ownsPost)
	g.Define(ActionAccessAdminPanel, func(ident *Identity, _ any) bool {
		return HasRole(ident, domain.RoleAdmin)
	})
	return g
}

func ownsPost(ident *Identity, resource any) bool {
	post, ok := resource.(*domain.Post)
	return ok && IsOwner(ident, post.UserID)
}
