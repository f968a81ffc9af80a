package models

import "time"

// Like represents a like on a post. The composite primary key guarantees a
// user can like a given post at most once.
type Like struct {
	PostID    string    `json:"post_id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
