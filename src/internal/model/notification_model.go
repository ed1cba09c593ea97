package model

type SendChatRequest struct {
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Message    string `json:"message" validate:"required,max=1000"`
}

type MarkReadRequest struct {
	NotificationID int64 `json:"-" validate:"required,gt=0"`
}
