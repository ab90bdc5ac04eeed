package entity

import "time"

// News is a post optionally owned by a user. CreatedAt is assigned by the
// store at insert time and never changes afterwards. UserID is nil when the
// post has no owner; deleting the owner detaches the post instead of
// cascading.
type News struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UserID    *int64
}
