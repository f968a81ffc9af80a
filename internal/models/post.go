package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageList stores a post's image references as a JSON array column
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list column type %T", value)
	}
}

// Post represents a user-authored post stored in PostgreSQL
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null;index"` // username of the authoring user
	Images    ImageList `json:"images" gorm:"type:json"`
	LikeCount int64     `json:"like_count" gorm:"->;-:migration"` // computed per query, never stored
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string   `json:"content" validate:"required,min=1"`
	Author  string   `json:"author" validate:"required"`
	Images  []string `json:"images,omitempty" validate:"omitempty,dive,min=1"`
}

// UpdatePostRequest defines the request body for editing an existing post
type UpdatePostRequest struct {
	Content string   `json:"content" validate:"required,min=1"`
	Images  []string `json:"images,omitempty" validate:"omitempty,dive,min=1"`
}
