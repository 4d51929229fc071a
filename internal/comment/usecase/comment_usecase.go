package usecase

import (
	"errors"

	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	authdomain "hongddo-backend/internal/auth/domain"
	commentdomain "hongddo-backend/internal/comment/domain"
	"hongddo-backend/internal/comment/repository"
)

type CommentUsecase interface {
	AddComment(user *authdomain.User, content string, parentID *string) (*commentdomain.Comment, error)
	ListRecent(limit int) ([]commentdomain.Comment, error)
	ListReplies(parentID string) ([]commentdomain.Comment, error)
	DeleteComment(id string, user *authdomain.User) error
}

type commentUsecase struct {
	commentRepo repository.CommentRepository
	notifier    activityusecase.Notifier
}

func NewCommentUsecase(commentRepo repository.CommentRepository, notifier activityusecase.Notifier) CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		notifier:    notifier,
	}
}

// AddComment writes a home board comment. A reply targets an existing
// top-level comment and fans out under its own activity type.
func (u *commentUsecase) AddComment(user *authdomain.User, content string, parentID *string) (*commentdomain.Comment, error) {
	activityType := activitydomain.ActivityComment
	message := user.DisplayName + "님이 댓글을 남겼습니다"

	if parentID != nil && *parentID != "" {
		parent, err := u.commentRepo.FindByID(*parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.New("parent comment not found")
		}
		if parent.ParentID != nil {
			return nil, errors.New("replies cannot be nested")
		}
		activityType = activitydomain.ActivityCommentReply
		message = user.DisplayName + "님이 답글을 남겼습니다"
	} else {
		parentID = nil
	}

	comment := &commentdomain.Comment{
		UserID:     user.ID,
		AuthorName: user.DisplayName,
		Content:    content,
		ParentID:   parentID,
	}
	if err := u.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	u.notifier.Notify(user.ID, user.DisplayName, activityType, message, comment.ID)

	return comment, nil
}

func (u *commentUsecase) ListRecent(limit int) ([]commentdomain.Comment, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return u.commentRepo.FindRecent(limit)
}

func (u *commentUsecase) ListReplies(parentID string) ([]commentdomain.Comment, error) {
	return u.commentRepo.FindReplies(parentID)
}

func (u *commentUsecase) DeleteComment(id string, user *authdomain.User) error {
	deleted, err := u.commentRepo.Delete(id, user.ID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.New("comment not found")
	}
	return nil
}
