package repository

import (
	"errors"
	"time"

	wishdomain "hongddo-backend/internal/wish/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishRepository defines the interface for wish persistence
type WishRepository interface {
	Create(wish *wishdomain.Wish) error
	FindByID(id string) (*wishdomain.Wish, error)
	FindAll() ([]wishdomain.Wish, error)
	Update(wish *wishdomain.Wish) error
	Delete(id string) error

	CreateSchedule(schedule *wishdomain.WishSchedule) error
	FindSchedulesByWish(wishID string) ([]wishdomain.WishSchedule, error)
}

type wishRepository struct {
	db *gorm.DB
}

func NewWishRepository(db *gorm.DB) WishRepository {
	return &wishRepository{
		db: db,
	}
}

func (r *wishRepository) Create(wish *wishdomain.Wish) error {
	wish.ID = uuid.New().String()
	wish.CreatedAt = time.Now()
	wish.UpdatedAt = time.Now()
	return r.db.Create(wish).Error
}

func (r *wishRepository) FindByID(id string) (*wishdomain.Wish, error) {
	var wish wishdomain.Wish
	err := r.db.Where("id = ?", id).First(&wish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wish, nil
}

func (r *wishRepository) FindAll() ([]wishdomain.Wish, error) {
	var wishes []wishdomain.Wish
	if err := r.db.Order("created_at desc").Find(&wishes).Error; err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *wishRepository) Update(wish *wishdomain.Wish) error {
	wish.UpdatedAt = time.Now()
	return r.db.Save(wish).Error
}

func (r *wishRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wish_id = ?", id).Delete(&wishdomain.WishSchedule{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&wishdomain.Wish{}).Error
	})
}

func (r *wishRepository) CreateSchedule(schedule *wishdomain.WishSchedule) error {
	schedule.ID = uuid.New().String()
	schedule.CreatedAt = time.Now()
	return r.db.Create(schedule).Error
}

func (r *wishRepository) FindSchedulesByWish(wishID string) ([]wishdomain.WishSchedule, error) {
	var schedules []wishdomain.WishSchedule
	err := r.db.Where("wish_id = ?", wishID).Order("scheduled_at asc").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
