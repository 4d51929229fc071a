package domain

import "time"

// Comment lives on the shared home board. A non-nil ParentID marks a reply.
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	ParentID   *string   `json:"parent_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}
