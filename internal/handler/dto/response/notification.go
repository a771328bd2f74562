package response

import (
	"time"

	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	NextCursor    *string                 `json:"nextCursor,omitempty"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func FromNotificationPage(items []*queries.NotificationView, next *queries.Cursor) *NotificationListResponse {
	res := &NotificationListResponse{Notifications: make([]*NotificationResponse, 0, len(items))}
	if err := copier.Copy(&res.Notifications, items); err != nil {
		panic(err)
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	res := &UserResponse{}
	if err := copier.Copy(res, v); err != nil {
		panic(err)
	}
	return res
}
