package repository

import (
	"time"

	notifdomain "hongddo-backend/internal/notification/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceTokenRepository defines the interface for push token storage
type DeviceTokenRepository interface {
	Save(token *notifdomain.DeviceToken) error
	FindByUserID(userID string) ([]notifdomain.DeviceToken, error)
	FindAll() ([]notifdomain.DeviceToken, error)
	Delete(token string) error
	DeleteByUserID(userID string) error
	Touch(token string) error
	DeleteStale(olderThan time.Time) (int64, error)
}

// deviceTokenRepository implements DeviceTokenRepository interface
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new instance of deviceTokenRepository
func NewDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// Save upserts a token row (INSERT ... ON CONFLICT (token) DO UPDATE), so a
// token re-registered by another user is reassigned rather than duplicated.
func (r *deviceTokenRepository) Save(token *notifdomain.DeviceToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "device_info", "last_used_at"}),
	}).Create(token).Error
}

func (r *deviceTokenRepository) FindByUserID(userID string) ([]notifdomain.DeviceToken, error) {
	var tokens []notifdomain.DeviceToken
	if err := r.db.Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) FindAll() ([]notifdomain.DeviceToken, error) {
	var tokens []notifdomain.DeviceToken
	if err := r.db.Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&notifdomain.DeviceToken{}).Error
}

func (r *deviceTokenRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&notifdomain.DeviceToken{}).Error
}

func (r *deviceTokenRepository) Touch(token string) error {
	return r.db.Model(&notifdomain.DeviceToken{}).
		Where("token = ?", token).
		Update("last_used_at", time.Now()).Error
}

// DeleteStale evicts tokens not used since olderThan. Stands in for the TTL a
// key-value store would apply natively.
func (r *deviceTokenRepository) DeleteStale(olderThan time.Time) (int64, error) {
	result := r.db.Where("last_used_at < ?", olderThan).Delete(&notifdomain.DeviceToken{})
	return result.RowsAffected, result.Error
}
