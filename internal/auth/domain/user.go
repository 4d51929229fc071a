package domain

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-"` // Never return password in JSON
	DisplayName  string    `json:"display_name"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Role         string    `json:"role"` // "member" or "admin"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
