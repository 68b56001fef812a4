package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) service.ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateGroup(ctx context.Context, group *models.ChatGroup) error {
	query := `
		INSERT INTO chat_groups (id, name, purpose, purpose_id)
		VALUES ($1, $2, $3, $4) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query, group.ID, group.Name, group.Purpose, group.PurposeID).Scan(&group.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chat group: %w", err)
	}
	return nil
}

func (r *ChatRepository) GetGroupByID(ctx context.Context, chatID string) (*models.ChatGroup, error) {
	group := &models.ChatGroup{}
	query := `SELECT id, name, purpose, purpose_id, created_at FROM chat_groups WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&group.ID,
		&group.Name,
		&group.Purpose,
		&group.PurposeID,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chat group %s: %w", chatID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get chat group: %w", err)
	}
	return group, nil
}

// DeleteGroup удаляет чат со всеми сообщениями, реакциями, отметками
// прочтения и участниками в одной транзакции
func (r *ChatRepository) DeleteGroup(ctx context.Context, chatID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM chat_reactions WHERE message_id IN (SELECT id FROM chat_messages WHERE chat_id = $1);`,
		`DELETE FROM chat_read_receipts WHERE message_id IN (SELECT id FROM chat_messages WHERE chat_id = $1);`,
		`DELETE FROM chat_messages WHERE chat_id = $1;`,
		`DELETE FROM chat_participants WHERE chat_id = $1;`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, chatID); err != nil {
			return fmt.Errorf("failed to delete chat data: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM chat_groups WHERE id = $1;`, chatID)
	if err != nil {
		return fmt.Errorf("failed to delete chat group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("chat group %s: %w", chatID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddParticipant добавляет участника, повторное добавление не ошибка
func (r *ChatRepository) AddParticipant(ctx context.Context, chatID string, userID int64) error {
	query := `
		INSERT INTO chat_participants (chat_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, chatID, userID); err != nil {
		return fmt.Errorf("failed to add chat participant: %w", err)
	}
	return nil
}

func (r *ChatRepository) ListParticipants(ctx context.Context, chatID string) ([]*models.ChatParticipant, error) {
	query := `
		SELECT cp.chat_id, cp.user_id, u.first_name, u.last_name
		FROM chat_participants cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.chat_id = $1
		ORDER BY u.first_name, u.last_name;
	`
	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*models.ChatParticipant, 0)
	for rows.Next() {
		participant := &models.ChatParticipant{}
		if err := rows.Scan(&participant.ChatID, &participant.UserID, &participant.FirstName, &participant.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return participants, nil
}

func (r *ChatRepository) IsParticipant(ctx context.Context, chatID string, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM chat_participants WHERE chat_id = $1 AND user_id = $2);`
	if err := r.db.QueryRow(ctx, query, chatID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check chat participant: %w", err)
	}
	return exists, nil
}

// ListChatPreviews возвращает чаты пользователя с последним сообщением и
// признаком непрочитанного. Чаты без сообщений идут последними.
func (r *ChatRepository) ListChatPreviews(ctx context.Context, userID int64) ([]*models.ChatPreview, error) {
	query := `
		SELECT
			g.id,
			g.name,
			g.purpose_id,
			CASE
				WHEN lm.text IS NOT NULL AND lm.text <> '' THEN lm.text
				WHEN lm.media_type IS NOT NULL THEN '[' || lower(lm.media_type) || ']'
			END AS last_message,
			lm.created_at AS last_message_timestamp,
			EXISTS(
				SELECT 1 FROM chat_messages m
				WHERE m.chat_id = g.id
					AND m.sender_id <> $1
					AND NOT EXISTS(
						SELECT 1 FROM chat_read_receipts rr
						WHERE rr.message_id = m.id AND rr.user_id = $1
					)
			) AS has_unread_messages
		FROM chat_groups g
		JOIN chat_participants cp ON cp.chat_id = g.id AND cp.user_id = $1
		LEFT JOIN LATERAL (
			SELECT m.text, m.media_type, m.created_at
			FROM chat_messages m
			WHERE m.chat_id = g.id
			ORDER BY m.created_at DESC
			LIMIT 1
		) lm ON TRUE
		ORDER BY lm.created_at DESC NULLS LAST, g.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat previews: %w", err)
	}
	defer rows.Close()

	previews := make([]*models.ChatPreview, 0)
	for rows.Next() {
		preview := &models.ChatPreview{}
		err := rows.Scan(
			&preview.ChatID,
			&preview.Name,
			&preview.PurposeID,
			&preview.LastMessage,
			&preview.LastMessageTimestamp,
			&preview.HasUnreadMessages,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat preview row: %w", err)
		}
		previews = append(previews, preview)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return previews, nil
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, chat_id, sender_id, text, client_message_id, parent_message_id, media_url, media_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		message.ID,
		message.ChatID,
		message.SenderID,
		message.Text,
		message.ClientMessageID,
		message.ParentMessageID,
		message.MediaURL,
		message.MediaType,
	).Scan(&message.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

const messageColumns = `
	m.id, m.chat_id, m.sender_id, u.first_name, u.last_name,
	m.text, m.client_message_id, m.parent_message_id, m.media_url, m.media_type, m.created_at
`

func scanMessage(row pgx.Row) (*models.ChatMessage, error) {
	message := &models.ChatMessage{}
	err := row.Scan(
		&message.ID,
		&message.ChatID,
		&message.SenderID,
		&message.SenderFirstName,
		&message.SenderLastName,
		&message.Text,
		&message.ClientMessageID,
		&message.ParentMessageID,
		&message.MediaURL,
		&message.MediaType,
		&message.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (r *ChatRepository) GetMessageByID(ctx context.Context, messageID string) (*models.ChatMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.id = $1;
	`
	message, err := scanMessage(r.db.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("message %s: %w", messageID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}

	if err := r.attachReactionsAndReceipts(ctx, []*models.ChatMessage{message}); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages возвращает сообщения чата от старых к новым вместе с
// реакциями и отметками прочтения
func (r *ChatRepository) ListMessages(ctx context.Context, chatID string) ([]*models.ChatMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.chat_id = $1
		ORDER BY m.created_at;
	`
	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	if err := r.attachReactionsAndReceipts(ctx, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// attachReactionsAndReceipts загружает реакции и отметки прочтения для
// набора сообщений двумя запросами
func (r *ChatRepository) attachReactionsAndReceipts(ctx context.Context, messages []*models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	messageIDs := make([]string, len(messages))
	byID := make(map[string]*models.ChatMessage, len(messages))
	for i, message := range messages {
		messageIDs[i] = message.ID
		byID[message.ID] = message
	}

	reactionQuery := `
		SELECT cr.message_id, cr.reaction, u.id, u.first_name, u.last_name
		FROM chat_reactions cr
		JOIN users u ON u.id = cr.user_id
		WHERE cr.message_id = ANY($1);
	`
	rows, err := r.db.Query(ctx, reactionQuery, messageIDs)
	if err != nil {
		return fmt.Errorf("failed to list message reactions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			messageID string
			reaction  string
			chatUser  models.ChatUser
		)
		if err := rows.Scan(&messageID, &reaction, &chatUser.ID, &chatUser.FirstName, &chatUser.LastName); err != nil {
			return fmt.Errorf("failed to scan reaction row: %w", err)
		}
		message := byID[messageID]
		if message.Reactions == nil {
			message.Reactions = make(map[string][]*models.ChatUser)
		}
		message.Reactions[reaction] = append(message.Reactions[reaction], &chatUser)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error list iteration: %w", err)
	}
	rows.Close()

	receiptQuery := `
		SELECT rr.message_id, u.id, u.first_name, u.last_name
		FROM chat_read_receipts rr
		JOIN users u ON u.id = rr.user_id
		WHERE rr.message_id = ANY($1);
	`
	receiptRows, err := r.db.Query(ctx, receiptQuery, messageIDs)
	if err != nil {
		return fmt.Errorf("failed to list read receipts: %w", err)
	}
	defer receiptRows.Close()
	for receiptRows.Next() {
		var (
			messageID string
			chatUser  models.ChatUser
		)
		if err := receiptRows.Scan(&messageID, &chatUser.ID, &chatUser.FirstName, &chatUser.LastName); err != nil {
			return fmt.Errorf("failed to scan read receipt row: %w", err)
		}
		message := byID[messageID]
		message.SeenBy = append(message.SeenBy, &chatUser)
	}
	if err := receiptRows.Err(); err != nil {
		return fmt.Errorf("error list iteration: %w", err)
	}
	return nil
}

// DeleteMessage удаляет сообщение вместе с реакциями и отметками прочтения
func (r *ChatRepository) DeleteMessage(ctx context.Context, messageID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM chat_reactions WHERE message_id = $1;`, messageID); err != nil {
		return fmt.Errorf("failed to delete message reactions: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM chat_read_receipts WHERE message_id = $1;`, messageID); err != nil {
		return fmt.Errorf("failed to delete read receipts: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM chat_messages WHERE id = $1;`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", messageID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReplaceReaction заменяет реакцию пользователя на сообщении, одна на пользователя
func (r *ChatRepository) ReplaceReaction(ctx context.Context, messageID string, userID int64, reaction string) error {
	query := `
		INSERT INTO chat_reactions (message_id, user_id, reaction)
		VALUES ($1, $2, $3)
		ON CONFLICT (message_id, user_id) DO UPDATE SET reaction = EXCLUDED.reaction;
	`
	if _, err := r.db.Exec(ctx, query, messageID, userID, reaction); err != nil {
		return fmt.Errorf("failed to save reaction: %w", err)
	}
	return nil
}

// AddReadReceipt идемпотентно отмечает сообщение прочитанным
func (r *ChatRepository) AddReadReceipt(ctx context.Context, messageID string, userID int64) error {
	query := `
		INSERT INTO chat_read_receipts (message_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, messageID, userID); err != nil {
		return fmt.Errorf("failed to save read receipt: %w", err)
	}
	return nil
}
