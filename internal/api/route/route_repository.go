package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository reads the directed route graph. GetSegment returns (nil, nil)
// when the ordered pair has no edge; pairs are never symmetric by
// assumption, so callers must not retry with swapped arguments.
type Repository interface {
	GetSegment(ctx context.Context, originID, destinationID int) (*types.RouteSegment, error)
	ListTransportOptions(ctx context.Context, originID, destinationID int) ([]types.TransportOption, error)
}

// PGXPool is the pool surface the repository needs. *pgxpool.Pool
// satisfies it, as do pgxmock pools in tests.
type PGXPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool PGXPool
}

func NewPostgresRepository(pgpool PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRepository) GetSegment(ctx context.Context, originID, destinationID int) (*types.RouteSegment, error) {
	query := `
        SELECT id, origin_city_id, destination_city_id, distance_km, duration_hours,
               road_type, toll_cost_toman, fuel_cost_toman, scenic_rating, safety_rating,
               seasonal_restrictions
        FROM route_segments
        WHERE origin_city_id = $1 AND destination_city_id = $2`
	var s types.RouteSegment
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, originID, destinationID).Scan(
		&s.ID, &s.OriginCityID, &s.DestinationCityID, &s.DistanceKm, &s.DurationHours,
		&s.RoadType, &s.TollCostToman, &s.FuelCostToman, &s.ScenicRating, &s.SafetyRating,
		&s.SeasonalRestrictions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find route segment: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) ListTransportOptions(ctx context.Context, originID, destinationID int) ([]types.TransportOption, error) {
	query := `
        SELECT id, origin_city_id, destination_city_id, mode, duration_hours,
               cost_toman, frequency_per_day, operator, comfort
        FROM transportation_options
        WHERE origin_city_id = $1 AND destination_city_id = $2
        ORDER BY id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, originID, destinationID)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query transport options: %w", err)
	}
	defer rows.Close()

	var options []types.TransportOption
	for rows.Next() {
		var o types.TransportOption
		if err := rows.Scan(&o.ID, &o.OriginCityID, &o.DestinationCityID, &o.Mode,
			&o.DurationHours, &o.CostToman, &o.FrequencyPerDay, &o.Operator, &o.Comfort); err != nil {
			return nil, fmt.Errorf("failed to scan transport option row: %w", err)
		}
		options = append(options, o)
	}
	return options, rows.Err()
}
