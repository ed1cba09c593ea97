package repository

import (
	"context"

	"momovender/src/internal/entity"
	"momovender/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

func (r *NotificationRepository) Insert(ctx context.Context, notification *entity.Notification) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (user_id, message, type, is_read, created_at)
		VALUES (?, ?, ?, 0, NOW())
	`

	result, err := db.ExecContext(ctx, query,
		notification.UserID,
		notification.Message,
		notification.Type,
	)
	if err != nil {
		return err
	}

	notification.ID, err = result.LastInsertId()
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]entity.NotificationRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, message, type, is_read, created_at, NULL AS from_user
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	var rows []entity.NotificationRow
	err = db.SelectContext(ctx, &rows, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkRead with an empty id list flips every unread notification for the
// user.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		result, err := db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0`, userID)
		if err != nil {
			return 0, err
		}
		return result.RowsAffected()
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = 1 WHERE user_id = ? AND id IN (?)`, userID, ids)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *NotificationRepository) InsertChat(ctx context.Context, message *entity.ChatMessage) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO chat_messages (sender_id, receiver_id, message, status, created_at)
		VALUES (?, ?, ?, 'sent', NOW())
	`

	result, err := db.ExecContext(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Message,
	)
	if err != nil {
		return err
	}

	message.ID, err = result.LastInsertId()
	return err
}

// ListChat returns the two-way conversation between a pair of users, oldest
// first so clients can append messages as they arrive.
func (r *NotificationRepository) ListChat(ctx context.Context, userID, peerID int64, limit int) ([]entity.ChatMessage, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, sender_id, receiver_id, message, status, created_at FROM (
			SELECT id, sender_id, receiver_id, message, status, created_at
			FROM chat_messages
			WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) t
		ORDER BY created_at ASC, id ASC
	`

	var rows []entity.ChatMessage
	err = db.SelectContext(ctx, &rows, query, userID, peerID, peerID, userID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NotificationRepository) MarkChatDelivered(ctx context.Context, receiverID, senderID int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE chat_messages SET status = 'delivered' WHERE receiver_id = ? AND sender_id = ? AND status = 'sent'`,
		receiverID, senderID)
	return err
}
