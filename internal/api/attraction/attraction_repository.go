package attraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	GetAttraction(ctx context.Context, id int) (*types.Attraction, error)
	ListByCity(ctx context.Context, cityID int, filter types.AttractionFilter) ([]types.Attraction, error)
	ListAccommodationsByCity(ctx context.Context, cityID int) ([]types.Accommodation, error)
	ListRestaurantsByCity(ctx context.Context, cityID int) ([]types.Restaurant, error)
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

const attractionColumns = `
    id, city_id, name_fa, name_en, category, subcategory, latitude, longitude,
    rating, price_tier, opening_hours, best_visit_time, unesco_heritage,
    historical_period, architecture_style
`

func scanAttraction(row pgx.Row, a *types.Attraction) error {
	return row.Scan(
		&a.ID, &a.CityID, &a.NameFa, &a.NameEn, &a.Category, &a.Subcategory,
		&a.Latitude, &a.Longitude, &a.Rating, &a.PriceTier, &a.OpeningHours,
		&a.BestVisitTime, &a.UnescoHeritage, &a.HistoricalPeriod, &a.ArchitectureStyle,
	)
}

func (r *PostgresRepository) GetAttraction(ctx context.Context, id int) (*types.Attraction, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE id = $1`
	var a types.Attraction
	start := time.Now()
	err := scanAttraction(r.pgpool.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find attraction: %w", err)
	}
	return &a, nil
}

// ListByCity fetches a city's attractions with optional category, rating
// and UNESCO filters applied in SQL. Ranking is done by the caller.
func (r *PostgresRepository) ListByCity(ctx context.Context, cityID int, filter types.AttractionFilter) ([]types.Attraction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + attractionColumns + ` FROM attractions WHERE city_id = $1`)
	args := []any{cityID}

	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = string(c)
		}
		args = append(args, categories)
		fmt.Fprintf(&sb, " AND category = ANY($%d)", len(args))
	}
	if filter.MinRating > 0 {
		args = append(args, filter.MinRating)
		fmt.Fprintf(&sb, " AND rating >= $%d", len(args))
	}
	if filter.UnescoOnly {
		sb.WriteString(" AND unesco_heritage")
	}
	sb.WriteString(" ORDER BY id")

	start := time.Now()
	rows, err := r.pgpool.Query(ctx, sb.String(), args...)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query attractions: %w", err)
	}
	defer rows.Close()

	var attractions []types.Attraction
	for rows.Next() {
		var a types.Attraction
		if err := scanAttraction(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan attraction row: %w", err)
		}
		attractions = append(attractions, a)
	}
	return attractions, rows.Err()
}

func (r *PostgresRepository) ListAccommodationsByCity(ctx context.Context, cityID int) ([]types.Accommodation, error) {
	query := `
        SELECT id, city_id, name_fa, name_en, kind, rating, price_tier, amenities, wheelchair_accessible
        FROM accommodations WHERE city_id = $1
        ORDER BY rating DESC, id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, cityID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query accommodations: %w", err)
	}
	defer rows.Close()

	var result []types.Accommodation
	for rows.Next() {
		var a types.Accommodation
		if err := rows.Scan(&a.ID, &a.CityID, &a.NameFa, &a.NameEn, &a.Kind, &a.Rating,
			&a.PriceTier, &a.Amenities, &a.WheelchairAccess); err != nil {
			return nil, fmt.Errorf("failed to scan accommodation row: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) ListRestaurantsByCity(ctx context.Context, cityID int) ([]types.Restaurant, error) {
	query := `
        SELECT id, city_id, name_fa, name_en, cuisine, rating, price_tier, halal
        FROM restaurants WHERE city_id = $1
        ORDER BY rating DESC, id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, cityID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var result []types.Restaurant
	for rows.Next() {
		var rest types.Restaurant
		if err := rows.Scan(&rest.ID, &rest.CityID, &rest.NameFa, &rest.NameEn, &rest.Cuisine,
			&rest.Rating, &rest.PriceTier, &rest.Halal); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		result = append(result, rest)
	}
	return result, rows.Err()
}
