package user

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
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	CreateUser(ctx context.Context, email, displayName string) (*types.User, error)
	ListTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error)
	AddTravelHistory(ctx context.Context, userID uuid.UUID, cityID int) error
	ListAttractionRatings(ctx context.Context, userID uuid.UUID) ([]types.AttractionRating, error)
	UpsertAttractionRating(ctx context.Context, userID uuid.UUID, attractionID int, rating float64) error
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

func (r *PostgresRepository) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	query := `SELECT id, email, display_name, travel_style, budget_tier, created_at FROM users WHERE id = $1`
	var u types.User
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.TravelStyle, &u.BudgetTier, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, email, displayName string) (*types.User, error) {
	query := `
        INSERT INTO users (email, display_name)
        VALUES ($1, $2)
        RETURNING id, email, display_name, travel_style, budget_tier, created_at`
	var u types.User
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, email, displayName).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.TravelStyle, &u.BudgetTier, &u.CreatedAt,
	)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) ListTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error) {
	query := `
        SELECT id, user_id, city_id, visited_at, visit_count
        FROM user_travel_history WHERE user_id = $1
        ORDER BY visited_at DESC, id DESC`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, userID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query travel history: %w", err)
	}
	defer rows.Close()

	var entries []types.TravelHistoryEntry
	for rows.Next() {
		var e types.TravelHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.CityID, &e.VisitedAt, &e.VisitCount); err != nil {
			return nil, fmt.Errorf("failed to scan travel history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) AddTravelHistory(ctx context.Context, userID uuid.UUID, cityID int) error {
	query := `INSERT INTO user_travel_history (user_id, city_id) VALUES ($1, $2)`
	start := time.Now()
	_, err := r.pgpool.Exec(ctx, query, userID, cityID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return fmt.Errorf("failed to add travel history: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListAttractionRatings(ctx context.Context, userID uuid.UUID) ([]types.AttractionRating, error) {
	query := `
        SELECT user_id, attraction_id, rating, rated_at
        FROM user_attraction_ratings WHERE user_id = $1
        ORDER BY attraction_id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, userID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query attraction ratings: %w", err)
	}
	defer rows.Close()

	var ratings []types.AttractionRating
	for rows.Next() {
		var rt types.AttractionRating
		if err := rows.Scan(&rt.UserID, &rt.AttractionID, &rt.Rating, &rt.RatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *PostgresRepository) UpsertAttractionRating(ctx context.Context, userID uuid.UUID, attractionID int, rating float64) error {
	query := `
        INSERT INTO user_attraction_ratings (user_id, attraction_id, rating)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, attraction_id)
        DO UPDATE SET rating = EXCLUDED.rating, rated_at = now()`
	start := time.Now()
	_, err := r.pgpool.Exec(ctx, query, userID, attractionID, rating)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return fmt.Errorf("failed to upsert attraction rating: %w", err)
	}
	return nil
}
