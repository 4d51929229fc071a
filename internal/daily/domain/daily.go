package domain

import "time"

// Daily is one photo/text post on the shared daily feed.
type Daily struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content" gorm:"type:text"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DailyComment struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	DailyID    string    `json:"daily_id" gorm:"index;not null"`
	UserID     string    `json:"user_id" gorm:"not null"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

type DailyLike struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	DailyID   string    `json:"daily_id" gorm:"index:idx_daily_like,unique;not null"`
	UserID    string    `json:"user_id" gorm:"index:idx_daily_like,unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}
