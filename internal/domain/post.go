package domain

import "time"

// Post is a piece of content owned by the user that created it. UserID is
// assigned once at creation and is never changed by updates.
type Post struct {
	ID        int64
	Title     string
	Content   string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	User      *User
}
