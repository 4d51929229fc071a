package repository

import (
	"time"

	healthdomain "hongddo-backend/internal/health/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HealthRepository defines the interface for medicine and meal persistence
type HealthRepository interface {
	SaveMedicineRecord(record *healthdomain.MedicineRecord) error
	FindMedicineRecords(userID, date string) ([]healthdomain.MedicineRecord, error)
	CreateMealCheck(check *healthdomain.MealCheck) error
	FindMealChecks(userID, date string) ([]healthdomain.MealCheck, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{
		db: db,
	}
}

// SaveMedicineRecord upserts on (user, date, slot) so re-tapping the same
// slot just refreshes taken_at instead of erroring on the unique index.
func (r *healthRepository) SaveMedicineRecord(record *healthdomain.MedicineRecord) error {
	record.ID = uuid.New().String()
	record.TakenAt = time.Now()
	record.CreatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"taken_at"}),
	}).Create(record).Error
}

func (r *healthRepository) FindMedicineRecords(userID, date string) ([]healthdomain.MedicineRecord, error) {
	var records []healthdomain.MedicineRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRepository) CreateMealCheck(check *healthdomain.MealCheck) error {
	check.ID = uuid.New().String()
	check.CreatedAt = time.Now()
	return r.db.Create(check).Error
}

func (r *healthRepository) FindMealChecks(userID, date string) ([]healthdomain.MealCheck, error) {
	var checks []healthdomain.MealCheck
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc").
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}
