package usecase

import (
	"context"
	"fmt"

	"momovender/src/internal/entity"
	"momovender/src/internal/gateway/messaging"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const notificationPageSize = 50

type notificationStore interface {
	Insert(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]entity.NotificationRow, error)
	MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error)
	InsertChat(ctx context.Context, message *entity.ChatMessage) error
	ListChat(ctx context.Context, userID, peerID int64, limit int) ([]entity.ChatMessage, error)
	MarkChatDelivered(ctx context.Context, receiverID, senderID int64) error
}

type notificationEvents interface {
	SendNotification(event *model.NotificationEvent) error
}

type NotificationUseCase struct {
	Log           log.Log
	Validate      *validator.Validate
	Notifications notificationStore
	Producer      notificationEvents
	Redis         redis.UniversalClient
}

func NewNotificationUseCase(
	logger log.Log,
	validate *validator.Validate,
	notificationRepository *repository.NotificationRepository,
	producer *messaging.TransactionProducer,
	redisClient redis.UniversalClient,
) *NotificationUseCase {
	return &NotificationUseCase{
		Log:           logger,
		Validate:      validate,
		Notifications: notificationRepository,
		Producer:      producer,
		Redis:         redisClient,
	}
}

// SendChat persists the message, mirrors it as an unread notification for
// the receiver, and pushes a live event. Offline receivers catch up from
// the notification list.
func (c *NotificationUseCase) SendChat(ctx context.Context, principal model.Principal, request *model.SendChatRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if request.ReceiverID == principal.ID {
		errObj := httpError.NewBadRequest()
		errObj.Message = "cannot send a message to yourself"
		result.Error = errObj
		return result
	}

	message := &entity.ChatMessage{
		SenderID:   principal.ID,
		ReceiverID: request.ReceiverID,
		Message:    request.Message,
		Status:     "sent",
	}
	if err := c.Notifications.InsertChat(ctx, message); err != nil {
		c.Log.Error("SendChat", err.Error(), "insert", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	notification := &entity.Notification{
		UserID:  request.ReceiverID,
		Message: fmt.Sprintf("New message from %s", principal.FullName),
		Type:    "chat",
	}
	if err := c.Notifications.Insert(ctx, notification); err != nil {
		c.Log.Error("SendChat-notify", err.Error(), "insert", utils.ConvertString(request.ReceiverID))
	}

	if c.Producer != nil {
		event := &model.NotificationEvent{
			EventID:    uuid.NewString(),
			ReceiverID: request.ReceiverID,
			Type:       "chat",
			Message:    request.Message,
		}
		if err := c.Producer.SendNotification(event); err != nil {
			c.Log.Error("SendChat-publish", err.Error(), "chat", utils.ConvertString(request.ReceiverID))
		}
	}

	result.Data = message
	return result
}

func (c *NotificationUseCase) ChatHistory(ctx context.Context, principal model.Principal, peerID int64) utils.Result {
	var result utils.Result

	rows, err := c.Notifications.ListChat(ctx, principal.ID, peerID, notificationPageSize)
	if err != nil {
		c.Log.Error("ChatHistory", err.Error(), "list", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	// Pulling the thread implies the peer's messages reached us.
	if err := c.Notifications.MarkChatDelivered(ctx, principal.ID, peerID); err != nil {
		c.Log.Error("ChatHistory-delivered", err.Error(), "update", utils.ConvertString(principal.ID))
	}

	result.Data = rows
	return result
}

func (c *NotificationUseCase) List(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	rows, err := c.Notifications.ListByUser(ctx, principal.ID, notificationPageSize)
	if err != nil {
		c.Log.Error("ListNotifications", err.Error(), "list", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = rows
	return result
}

// MarkRead with no ids clears the whole unread set.
func (c *NotificationUseCase) MarkRead(ctx context.Context, principal model.Principal, ids []int64) utils.Result {
	var result utils.Result

	updated, err := c.Notifications.MarkRead(ctx, principal.ID, ids)
	if err != nil {
		c.Log.Error("MarkRead", err.Error(), "update", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{"updated": updated}
	return result
}

// Online lists currently connected agent ids from the presence set.
func (c *NotificationUseCase) Online(ctx context.Context) utils.Result {
	var result utils.Result

	members, err := c.Redis.SMembers(ctx, "PRESENCE:ONLINE").Result()
	if err != nil {
		c.Log.Error("Online", err.Error(), "presence", "")
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = members
	return result
}
