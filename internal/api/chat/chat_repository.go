package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*types.ChatConversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*types.ChatConversation, error)
	SaveMessage(ctx context.Context, msg types.ChatMessage) (*types.ChatMessage, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]types.ChatMessage, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresRepository(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRepository) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*types.ChatConversation, error) {
	query := `
        INSERT INTO chat_conversations (user_id, title)
        VALUES ($1, $2)
        RETURNING id, user_id, title, created_at`
	var c types.ChatConversation
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, userID, title).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetConversation(ctx context.Context, id uuid.UUID) (*types.ChatConversation, error) {
	query := `SELECT id, user_id, title, created_at FROM chat_conversations WHERE id = $1`
	var c types.ChatConversation
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) SaveMessage(ctx context.Context, msg types.ChatMessage) (*types.ChatMessage, error) {
	query := `
        INSERT INTO chat_messages (conversation_id, message, response, intent, entities, confidence)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, conversation_id, message, response, intent, entities::text, confidence, created_at`
	entities := msg.EntitiesJSON
	if entities == "" {
		entities = "{}"
	}
	var saved types.ChatMessage
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query,
		msg.ConversationID, msg.Message, msg.Response, msg.Intent, entities, msg.Confidence,
	).Scan(&saved.ID, &saved.ConversationID, &saved.Message, &saved.Response,
		&saved.Intent, &saved.EntitiesJSON, &saved.Confidence, &saved.CreatedAt)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return &saved, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]types.ChatMessage, error) {
	query := `
        SELECT id, conversation_id, message, response, intent, entities::text, confidence, created_at
        FROM chat_messages
        WHERE conversation_id = $1
        ORDER BY created_at, id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, conversationID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []types.ChatMessage
	for rows.Next() {
		var m types.ChatMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Message, &m.Response,
			&m.Intent, &m.EntitiesJSON, &m.Confidence, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
