package domain

import "time"

type WishCategory string

const (
	CategoryTravel   WishCategory = "TRAVEL"
	CategoryFood     WishCategory = "FOOD"
	CategoryActivity WishCategory = "ACTIVITY"
	CategoryItem     WishCategory = "ITEM"
	CategoryEtc      WishCategory = "ETC"
)

// Wish is one shared bucket-list entry.
type Wish struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	UserID      string       `json:"user_id" gorm:"index;not null"`
	AuthorName  string       `json:"author_name"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	Category    WishCategory `json:"category" gorm:"size:20"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// WishSchedule is a concrete date attached to a wish.
type WishSchedule struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	WishID      string    `json:"wish_id" gorm:"index;not null"`
	UserID      string    `json:"user_id" gorm:"not null"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"created_at"`
}
