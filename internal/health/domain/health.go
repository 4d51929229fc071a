package domain

import "time"

type MedicineSlot string

const (
	SlotMorning MedicineSlot = "MORNING"
	SlotLunch   MedicineSlot = "LUNCH"
	SlotDinner  MedicineSlot = "DINNER"
)

type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
)

// MedicineRecord marks one dose slot taken on a given date, per user.
type MedicineRecord struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	UserID    string       `json:"user_id" gorm:"uniqueIndex:idx_medicine_user_date_slot;not null"`
	Date      string       `json:"date" gorm:"uniqueIndex:idx_medicine_user_date_slot;size:10;not null"`
	Slot      MedicineSlot `json:"slot" gorm:"uniqueIndex:idx_medicine_user_date_slot;size:10;not null"`
	TakenAt   time.Time    `json:"taken_at"`
	CreatedAt time.Time    `json:"created_at"`
}

// MealCheck records a photo-verified meal for a given date.
type MealCheck struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"`
	MealType  MealType  `json:"meal_type" gorm:"size:10;not null"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
