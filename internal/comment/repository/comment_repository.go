package repository

import (
	"errors"
	"time"

	commentdomain "hongddo-backend/internal/comment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for home board comment persistence
type CommentRepository interface {
	Create(comment *commentdomain.Comment) error
	FindByID(id string) (*commentdomain.Comment, error)
	FindRecent(limit int) ([]commentdomain.Comment, error)
	FindReplies(parentID string) ([]commentdomain.Comment, error)
	Delete(id, userID string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(comment *commentdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id string) (*commentdomain.Comment, error) {
	var comment commentdomain.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindRecent(limit int) ([]commentdomain.Comment, error) {
	var comments []commentdomain.Comment
	err := r.db.Where("parent_id IS NULL").
		Order("created_at desc").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindReplies(parentID string) ([]commentdomain.Comment, error) {
	var replies []commentdomain.Comment
	err := r.db.Where("parent_id = ?", parentID).
		Order("created_at asc").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

// Delete removes a comment only when it belongs to userID. The affected-row
// count tells the caller whether anything actually matched.
func (r *commentRepository) Delete(id, userID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&commentdomain.Comment{})
	return result.RowsAffected, result.Error
}
