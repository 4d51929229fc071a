package domain

import "time"

// DeviceToken is one push destination for one app installation. The table is
// keyed by the provider-issued token value with a secondary index on the
// owner. At most one live token per user: registration removes the owner's
// previous tokens.
type DeviceToken struct {
	Token        string    `json:"-" gorm:"primaryKey"` // Don't expose token in JSON
	UserID       string    `json:"user_id" gorm:"index;not null"`
	Platform     string    `json:"platform"`
	DeviceInfo   string    `json:"device_info"` // Browser/device metadata
	RegisteredAt time.Time `json:"registered_at"`
	LastUsedAt   time.Time `json:"last_used_at" gorm:"index"`
}
