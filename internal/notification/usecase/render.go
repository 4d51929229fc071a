package usecase

import (
	"fmt"

	activitydomain "hongddo-backend/internal/activity/domain"
	"hongddo-backend/pkg/fcm"
)

// RenderTarget maps an activity type to the title and click target shown on
// both channels. Unknown types fall back to the generic activity tab: the
// mapping never fails.
func RenderTarget(activityType activitydomain.ActivityType, message, referenceID string) fcm.Notification {
	var title, url string

	switch activityType {
	case activitydomain.ActivityMedicineTaken:
		title = "💊 약 복용 알림"
		url = "/medicine?tab=healthTab"
	case activitydomain.ActivityMealUploaded:
		title = "🍽️ 식사 업로드 알림"
		url = "/medicine?tab=healthTab"
	case activitydomain.ActivityDailyPost:
		title = "📸 새 일상"
		url = withRef("/medicine?tab=dailyTab", "dailyId", referenceID)
	case activitydomain.ActivityDailyComment:
		title = "💬 일상 댓글"
		url = withRef("/medicine?tab=dailyTab", "dailyId", referenceID)
	case activitydomain.ActivityDailyLike:
		title = "❤️ 일상 좋아요"
		url = withRef("/medicine?tab=dailyTab", "dailyId", referenceID)
	case activitydomain.ActivityWishAdded:
		title = "⭐ 새 위시"
		url = withRef("/medicine?tab=wishTab", "wishId", referenceID)
	case activitydomain.ActivityScheduleAdded:
		title = "📅 새 일정"
		url = withRef("/medicine?tab=wishTab", "wishId", referenceID)
	case activitydomain.ActivityComment:
		title = "💬 새 댓글"
		url = "/medicine?tab=homeTab"
	case activitydomain.ActivityCommentReply:
		title = "💬 새 답글"
		url = "/medicine?tab=homeTab"
	case activitydomain.ActivityProfileUpdated:
		title = "👤 프로필 변경"
		url = "/medicine?tab=profileTab"
	default:
		title = "🔔 새 활동"
		url = "/medicine?tab=activityTab"
	}

	data := map[string]string{
		"activityType": string(activityType),
	}
	if referenceID != "" {
		data["referenceId"] = referenceID
	}

	return fcm.Notification{
		Title: title,
		Body:  message,
		Link:  url,
		Data:  data,
	}
}

func withRef(base, param, referenceID string) string {
	if referenceID == "" {
		return base
	}
	return fmt.Sprintf("%s&%s=%s", base, param, referenceID)
}
