package auth

// Identity is the caller of the current request, resolved once at the HTTP
// boundary and passed explicitly to policies and services. A nil *Identity
// means the request is unauthenticated.
type Identity struct {
	UserID int64
	Role   string
}

// IsOwner reports whether ident is present and owns a resource whose owner id
// is ownerID. It never errors; an absent identity owns nothing.
func IsOwner(ident *Identity, ownerID int64) bool {
	return ident != nil && ident.UserID == ownerID
}

// HasRole reports whether ident is present and carries exactly the required
// role. Matching is case-sensitive with no role hierarchy.
func HasRole(ident *Identity, role string) bool {
	return ident != nil && ident.Role == role
}
