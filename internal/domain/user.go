package domain

import "time"

// Roles known to the system. Role checks are exact string matches with no
// hierarchy between roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated user of the system.
type User struct {
	ID           int64
	Username     string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
