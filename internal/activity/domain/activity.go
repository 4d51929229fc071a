package domain

import "time"

// ActivityType enumerates the household events that fan out to other members.
type ActivityType string

const (
	ActivityComment        ActivityType = "COMMENT"
	ActivityCommentReply   ActivityType = "COMMENT_REPLY"
	ActivityDailyPost      ActivityType = "DAILY_POST"
	ActivityDailyComment   ActivityType = "DAILY_COMMENT"
	ActivityDailyLike      ActivityType = "DAILY_LIKE"
	ActivityWishAdded      ActivityType = "WISH_ADDED"
	ActivityScheduleAdded  ActivityType = "SCHEDULE_ADDED"
	ActivityProfileUpdated ActivityType = "PROFILE_UPDATED"
	ActivityMedicineTaken  ActivityType = "MEDICINE_TAKEN"
	ActivityMealUploaded   ActivityType = "MEAL_UPLOADED"
)

// Activity is one fan-out instance of an action for one recipient. The record
// is owned by its recipient; reading it deletes it (read-is-delete policy), so
// IsRead only exists for payload compatibility and stays false.
type Activity struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	ActivityType ActivityType `json:"activity_type" gorm:"size:20;not null"`
	ActorID      string       `json:"actor_id" gorm:"index;not null"`
	ActorName    string       `json:"actor_name"`
	RecipientID  string       `json:"recipient_id" gorm:"index:idx_activity_recipient_created;not null"`
	Message      string       `json:"message" gorm:"type:text"`
	ReferenceID  string       `json:"reference_id,omitempty"`
	IsRead       bool         `json:"is_read"`
	CreatedAt    time.Time    `json:"created_at" gorm:"index:idx_activity_recipient_created"`
}
