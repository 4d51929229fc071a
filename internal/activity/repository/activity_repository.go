package repository

import (
	"time"

	activitydomain "hongddo-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository defines the interface for activity record persistence.
// Ownership is enforced here: deletes only touch rows whose recipient matches.
type ActivityRepository interface {
	Create(activity *activitydomain.Activity) error
	FindByRecipient(recipientID string, limit int) ([]activitydomain.Activity, error)
	DeleteByIDAndRecipient(id, recipientID string) (int64, error)
	DeleteByRecipient(recipientID string) (int64, error)
	CountByRecipient(recipientID string) (int64, error)
}

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of activityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) Create(activity *activitydomain.Activity) error {
	activity.ID = uuid.New().String()
	activity.CreatedAt = time.Now()
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindByRecipient(recipientID string, limit int) ([]activitydomain.Activity, error) {
	var activities []activitydomain.Activity
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) DeleteByIDAndRecipient(id, recipientID string) (int64, error) {
	result := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&activitydomain.Activity{})
	return result.RowsAffected, result.Error
}

func (r *activityRepository) DeleteByRecipient(recipientID string) (int64, error) {
	result := r.db.Where("recipient_id = ?", recipientID).
		Delete(&activitydomain.Activity{})
	return result.RowsAffected, result.Error
}

func (r *activityRepository) CountByRecipient(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&activitydomain.Activity{}).
		Where("recipient_id = ?", recipientID).
		Count(&count).Error
	return count, err
}
