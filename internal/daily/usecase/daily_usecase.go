package usecase

import (
	"errors"

	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	dailydomain "hongddo-backend/internal/daily/domain"
	"hongddo-backend/internal/daily/repository"
)

// Broadcaster is the slice of the live channel the daily feed publishes on.
type Broadcaster interface {
	BroadcastDailyUpdate(daily interface{}, action string)
}

// DailyUsecase covers the shared daily feed: posts, likes and comments.
type DailyUsecase interface {
	CreateDaily(user *authdomain.User, content, imageURL string) (*dailydomain.Daily, error)
	UpdateDaily(id string, user *authdomain.User, content string) (*dailydomain.Daily, error)
	DeleteDaily(id string, user *authdomain.User) error
	ListRecent(limit int) ([]dailydomain.Daily, error)
	ToggleLike(dailyID string, user *authdomain.User) (bool, error)
	LikeCount(dailyID string) (int64, error)
	AddComment(dailyID string, user *authdomain.User, content string) (*dailydomain.DailyComment, error)
	ListComments(dailyID string) ([]dailydomain.DailyComment, error)
}

type dailyUsecase struct {
	dailyRepo   repository.DailyRepository
	notifier    activityusecase.Notifier
	broadcaster Broadcaster
}

func NewDailyUsecase(dailyRepo repository.DailyRepository, notifier activityusecase.Notifier, broadcaster Broadcaster) DailyUsecase {
	return &dailyUsecase{
		dailyRepo:   dailyRepo,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

func (u *dailyUsecase) CreateDaily(user *authdomain.User, content, imageURL string) (*dailydomain.Daily, error) {
	daily := &dailydomain.Daily{
		UserID:     user.ID,
		AuthorName: user.DisplayName,
		Content:    content,
		ImageURL:   imageURL,
	}
	if err := u.dailyRepo.Create(daily); err != nil {
		return nil, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityDailyPost,
		user.DisplayName+"님이 일상을 남겼습니다", daily.ID)
	u.broadcaster.BroadcastDailyUpdate(daily, "CREATE")

	return daily, nil
}

func (u *dailyUsecase) UpdateDaily(id string, user *authdomain.User, content string) (*dailydomain.Daily, error) {
	daily, err := u.dailyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		return nil, errors.New("daily post not found")
	}
	if daily.UserID != user.ID {
		return nil, errors.New("only the author can edit a daily post")
	}

	daily.Content = content
	if err := u.dailyRepo.Update(daily); err != nil {
		return nil, err
	}

	u.broadcaster.BroadcastDailyUpdate(daily, "UPDATE")
	return daily, nil
}

func (u *dailyUsecase) DeleteDaily(id string, user *authdomain.User) error {
	daily, err := u.dailyRepo.FindByID(id)
	if err != nil {
		return err
	}
	if daily == nil {
		return errors.New("daily post not found")
	}
	if daily.UserID != user.ID {
		return errors.New("only the author can delete a daily post")
	}

	if err := u.dailyRepo.Delete(id); err != nil {
		return err
	}

	u.broadcaster.BroadcastDailyUpdate(daily, "DELETE")
	return nil
}

func (u *dailyUsecase) ListRecent(limit int) ([]dailydomain.Daily, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return u.dailyRepo.FindRecent(limit)
}

// ToggleLike flips the caller's like on a post. Only a newly added like fans
// out; removing a like stays quiet.
func (u *dailyUsecase) ToggleLike(dailyID string, user *authdomain.User) (bool, error) {
	daily, err := u.dailyRepo.FindByID(dailyID)
	if err != nil {
		return false, err
	}
	if daily == nil {
		return false, errors.New("daily post not found")
	}

	existing, err := u.dailyRepo.FindLike(dailyID, user.ID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := u.dailyRepo.DeleteLike(dailyID, user.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := u.dailyRepo.CreateLike(&dailydomain.DailyLike{DailyID: dailyID, UserID: user.ID}); err != nil {
		return false, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityDailyLike,
		user.DisplayName+"님이 일상에 좋아요를 눌렀습니다", dailyID)

	return true, nil
}

func (u *dailyUsecase) LikeCount(dailyID string) (int64, error) {
	return u.dailyRepo.CountLikes(dailyID)
}

func (u *dailyUsecase) AddComment(dailyID string, user *authdomain.User, content string) (*dailydomain.DailyComment, error) {
	daily, err := u.dailyRepo.FindByID(dailyID)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		return nil, errors.New("daily post not found")
	}

	comment := &dailydomain.DailyComment{
		DailyID:    dailyID,
		UserID:     user.ID,
		AuthorName: user.DisplayName,
		Content:    content,
	}
	if err := u.dailyRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activitydomain.ActivityDailyComment,
		user.DisplayName+"님이 일상에 댓글을 남겼습니다", dailyID)

	return comment, nil
}

func (u *dailyUsecase) ListComments(dailyID string) ([]dailydomain.DailyComment, error) {
	return u.dailyRepo.FindCommentsByDaily(dailyID)
}
