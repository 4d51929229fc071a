package usecase

import (
	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	healthdomain "hongddo-backend/internal/health/domain"
	"hongddo-backend/internal/health/repository"
)

var slotLabels = map[healthdomain.MedicineSlot]string{
	healthdomain.SlotMorning: "아침",
	healthdomain.SlotLunch:   "점심",
	healthdomain.SlotDinner:  "저녁",
}

var mealLabels = map[healthdomain.MealType]string{
	healthdomain.MealBreakfast: "아침",
	healthdomain.MealLunch:     "점심",
	healthdomain.MealDinner:    "저녁",
}

type HealthUsecase interface {
	TakeMedicine(user *authdomain.User, date string, slot healthdomain.MedicineSlot) (*healthdomain.MedicineRecord, error)
	MedicineStatus(userID, date string) ([]healthdomain.MedicineRecord, error)
	UploadMeal(user *authdomain.User, date string, mealType healthdomain.MealType, imageURL string) (*healthdomain.MealCheck, error)
	MealStatus(userID, date string) ([]healthdomain.MealCheck, error)
}

type healthUsecase struct {
	healthRepo repository.HealthRepository
	notifier   activityusecase.Notifier
}

func NewHealthUsecase(healthRepo repository.HealthRepository, notifier activityusecase.Notifier) HealthUsecase {
	return &healthUsecase{
		healthRepo: healthRepo,
		notifier:   notifier,
	}
}

func (u *healthUsecase) TakeMedicine(user *authdomain.User, date string, slot healthdomain.MedicineSlot) (*healthdomain.MedicineRecord, error) {
	record := &healthdomain.MedicineRecord{
		UserID: user.ID,
		Date:   date,
		Slot:   slot,
	}
	if err := u.healthRepo.SaveMedicineRecord(record); err != nil {
		return nil, err
	}

	label := slotLabels[slot]
	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityMedicineTaken,
		user.DisplayName+"님이 "+label+" 약을 복용했습니다", record.ID)

	return record, nil
}

func (u *healthUsecase) MedicineStatus(userID, date string) ([]healthdomain.MedicineRecord, error) {
	return u.healthRepo.FindMedicineRecords(userID, date)
}

func (u *healthUsecase) UploadMeal(user *authdomain.User, date string, mealType healthdomain.MealType, imageURL string) (*healthdomain.MealCheck, error) {
	check := &healthdomain.MealCheck{
		UserID:   user.ID,
		Date:     date,
		MealType: mealType,
		ImageURL: imageURL,
	}
	if err := u.healthRepo.CreateMealCheck(check); err != nil {
		return nil, err
	}

	label := mealLabels[mealType]
	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityMealUploaded,
		user.DisplayName+"님이 "+label+" 식사를 올렸습니다", check.ID)

	return check, nil
}

func (u *healthUsecase) MealStatus(userID, date string) ([]healthdomain.MealCheck, error) {
	return u.healthRepo.FindMealChecks(userID, date)
}
