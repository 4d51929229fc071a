package usecase

import (
	"errors"
	"time"

	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	wishdomain "hongddo-backend/internal/wish/domain"
	"hongddo-backend/internal/wish/repository"
)

// Broadcaster is the slice of the live channel the wish list publishes on.
type Broadcaster interface {
	BroadcastWishUpdate(wish interface{}, action string)
}

type WishUsecase interface {
	CreateWish(user *authdomain.User, title, description string, category wishdomain.WishCategory) (*wishdomain.Wish, error)
	UpdateWish(id string, user *authdomain.User, title, description string, category wishdomain.WishCategory) (*wishdomain.Wish, error)
	ToggleCompletion(id string, user *authdomain.User) (*wishdomain.Wish, error)
	DeleteWish(id string, user *authdomain.User) error
	ListWishes() ([]wishdomain.Wish, error)
	AddSchedule(wishID string, user *authdomain.User, scheduledAt time.Time, memo string) (*wishdomain.WishSchedule, error)
	ListSchedules(wishID string) ([]wishdomain.WishSchedule, error)
}

type wishUsecase struct {
	wishRepo    repository.WishRepository
	notifier    activityusecase.Notifier
	broadcaster Broadcaster
}

func NewWishUsecase(wishRepo repository.WishRepository, notifier activityusecase.Notifier, broadcaster Broadcaster) WishUsecase {
	return &wishUsecase{
		wishRepo:    wishRepo,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

func (u *wishUsecase) CreateWish(user *authdomain.User, title, description string, category wishdomain.WishCategory) (*wishdomain.Wish, error) {
	wish := &wishdomain.Wish{
		UserID:      user.ID,
		AuthorName:  user.DisplayName,
		Title:       title,
		Description: description,
		Category:    category,
	}
	if err := u.wishRepo.Create(wish); err != nil {
		return nil, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityWishAdded,
		user.DisplayName+"님이 위시를 추가했습니다: "+title, wish.ID)
	u.broadcaster.BroadcastWishUpdate(wish, "CREATE")

	return wish, nil
}

func (u *wishUsecase) UpdateWish(id string, user *authdomain.User, title, description string, category wishdomain.WishCategory) (*wishdomain.Wish, error) {
	wish, err := u.wishRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, errors.New("wish not found")
	}
	if wish.UserID != user.ID {
		return nil, errors.New("only the author can edit a wish")
	}

	wish.Title = title
	wish.Description = description
	wish.Category = category
	if err := u.wishRepo.Update(wish); err != nil {
		return nil, err
	}

	u.broadcaster.BroadcastWishUpdate(wish, "UPDATE")
	return wish, nil
}

func (u *wishUsecase) ToggleCompletion(id string, user *authdomain.User) (*wishdomain.Wish, error) {
	wish, err := u.wishRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, errors.New("wish not found")
	}

	wish.Completed = !wish.Completed
	if err := u.wishRepo.Update(wish); err != nil {
		return nil, err
	}

	u.broadcaster.BroadcastWishUpdate(wish, "UPDATE")
	return wish, nil
}

func (u *wishUsecase) DeleteWish(id string, user *authdomain.User) error {
	wish, err := u.wishRepo.FindByID(id)
	if err != nil {
		return err
	}
	if wish == nil {
		return errors.New("wish not found")
	}
	if wish.UserID != user.ID {
		return errors.New("only the author can delete a wish")
	}

	if err := u.wishRepo.Delete(id); err != nil {
		return err
	}

	u.broadcaster.BroadcastWishUpdate(wish, "DELETE")
	return nil
}

func (u *wishUsecase) ListWishes() ([]wishdomain.Wish, error) {
	return u.wishRepo.FindAll()
}

func (u *wishUsecase) AddSchedule(wishID string, user *authdomain.User, scheduledAt time.Time, memo string) (*wishdomain.WishSchedule, error) {
	wish, err := u.wishRepo.FindByID(wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, errors.New("wish not found")
	}

	schedule := &wishdomain.WishSchedule{
		WishID:      wishID,
		UserID:      user.ID,
		ScheduledAt: scheduledAt,
		Memo:        memo,
	}
	if err := u.wishRepo.CreateSchedule(schedule); err != nil {
		return nil, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityScheduleAdded,
		user.DisplayName+"님이 일정을 추가했습니다: "+wish.Title, wishID)

	return schedule, nil
}

func (u *wishUsecase) ListSchedules(wishID string) ([]wishdomain.WishSchedule, error) {
	return u.wishRepo.FindSchedulesByWish(wishID)
}
