package repository

import (
	"errors"
	"time"

	dailydomain "hongddo-backend/internal/daily/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRepository defines the interface for daily feed persistence
type DailyRepository interface {
	Create(daily *dailydomain.Daily) error
	FindByID(id string) (*dailydomain.Daily, error)
	FindRecent(limit int) ([]dailydomain.Daily, error)
	Update(daily *dailydomain.Daily) error
	Delete(id string) error

	CreateComment(comment *dailydomain.DailyComment) error
	FindCommentsByDaily(dailyID string) ([]dailydomain.DailyComment, error)

	FindLike(dailyID, userID string) (*dailydomain.DailyLike, error)
	CreateLike(like *dailydomain.DailyLike) error
	DeleteLike(dailyID, userID string) error
	CountLikes(dailyID string) (int64, error)
}

type dailyRepository struct {
	db *gorm.DB
}

func NewDailyRepository(db *gorm.DB) DailyRepository {
	return &dailyRepository{
		db: db,
	}
}

func (r *dailyRepository) Create(daily *dailydomain.Daily) error {
	daily.ID = uuid.New().String()
	daily.CreatedAt = time.Now()
	daily.UpdatedAt = time.Now()
	return r.db.Create(daily).Error
}

func (r *dailyRepository) FindByID(id string) (*dailydomain.Daily, error) {
	var daily dailydomain.Daily
	err := r.db.Where("id = ?", id).First(&daily).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &daily, nil
}

func (r *dailyRepository) FindRecent(limit int) ([]dailydomain.Daily, error) {
	var dailies []dailydomain.Daily
	err := r.db.Order("created_at desc").Limit(limit).Find(&dailies).Error
	if err != nil {
		return nil, err
	}
	return dailies, nil
}

func (r *dailyRepository) Update(daily *dailydomain.Daily) error {
	daily.UpdatedAt = time.Now()
	return r.db.Save(daily).Error
}

// Delete removes the post and its comments and likes.
func (r *dailyRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_id = ?", id).Delete(&dailydomain.DailyComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("daily_id = ?", id).Delete(&dailydomain.DailyLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dailydomain.Daily{}).Error
	})
}

func (r *dailyRepository) CreateComment(comment *dailydomain.DailyComment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

func (r *dailyRepository) FindCommentsByDaily(dailyID string) ([]dailydomain.DailyComment, error) {
	var comments []dailydomain.DailyComment
	err := r.db.Where("daily_id = ?", dailyID).Order("created_at asc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *dailyRepository) FindLike(dailyID, userID string) (*dailydomain.DailyLike, error) {
	var like dailydomain.DailyLike
	err := r.db.Where("daily_id = ? AND user_id = ?", dailyID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *dailyRepository) CreateLike(like *dailydomain.DailyLike) error {
	like.ID = uuid.New().String()
	like.CreatedAt = time.Now()
	return r.db.Create(like).Error
}

func (r *dailyRepository) DeleteLike(dailyID, userID string) error {
	return r.db.Where("daily_id = ? AND user_id = ?", dailyID, userID).Delete(&dailydomain.DailyLike{}).Error
}

func (r *dailyRepository) CountLikes(dailyID string) (int64, error) {
	var count int64
	err := r.db.Model(&dailydomain.DailyLike{}).Where("daily_id = ?", dailyID).Count(&count).Error
	return count, err
}
