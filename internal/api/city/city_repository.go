package city

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the read interface over cities, provinces, weather and
// events. Lookups that find no row return (nil, nil); the service layer
// decides whether that is an error.
type Repository interface {
	GetCity(ctx context.Context, id int) (*types.City, error)
	FindCityByName(ctx context.Context, name string) (*types.City, error)
	GetAllCities(ctx context.Context) ([]types.City, error)
	GetProvince(ctx context.Context, id int) (*types.Province, error)
	GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error)
	ListEventsByCity(ctx context.Context, cityID int) ([]types.SeasonalEvent, error)
	ListEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error)
	ListMapPoints(ctx context.Context) ([]types.MapPoint, error)
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

const cityColumns = `
    id, province_id, name_fa, name_en, latitude, longitude, population, elevation_m,
    has_airport, has_train_station, has_bus_terminal, tourism_rating, cost_index,
    description_fa, description_en, best_season
`

func scanCity(row pgx.Row) (*types.City, error) {
	var c types.City
	err := row.Scan(
		&c.ID, &c.ProvinceID, &c.NameFa, &c.NameEn, &c.Latitude, &c.Longitude,
		&c.Population, &c.ElevationM, &c.HasAirport, &c.HasTrain, &c.HasBusTermnl,
		&c.TourismRating, &c.CostIndex, &c.DescriptionFa, &c.DescriptionEn, &c.BestSeason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan city: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetCity(ctx context.Context, id int) (*types.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE id = $1`
	start := time.Now()
	c, err := scanCity(r.pgpool.QueryRow(ctx, query, id))
	metrics.ObserveDBQuery(ctx, start, err)
	return c, err
}

// FindCityByName matches the Persian name exactly or the English name
// case-insensitively. A numeric name is treated as a city id.
func (r *PostgresRepository) FindCityByName(ctx context.Context, name string) (*types.City, error) {
	name = strings.TrimSpace(name)
	if id, err := strconv.Atoi(name); err == nil {
		return r.GetCity(ctx, id)
	}
	query := `SELECT ` + cityColumns + ` FROM cities WHERE name_fa = $1 OR lower(name_en) = lower($1)`
	start := time.Now()
	c, err := scanCity(r.pgpool.QueryRow(ctx, query, name))
	metrics.ObserveDBQuery(ctx, start, err)
	return c, err
}

func (r *PostgresRepository) GetAllCities(ctx context.Context) ([]types.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY id`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []types.City
	for rows.Next() {
		var c types.City
		if err := rows.Scan(
			&c.ID, &c.ProvinceID, &c.NameFa, &c.NameEn, &c.Latitude, &c.Longitude,
			&c.Population, &c.ElevationM, &c.HasAirport, &c.HasTrain, &c.HasBusTermnl,
			&c.TourismRating, &c.CostIndex, &c.DescriptionFa, &c.DescriptionEn, &c.BestSeason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PostgresRepository) GetProvince(ctx context.Context, id int) (*types.Province, error) {
	query := `
        SELECT id, name_fa, name_en, capital, population, area_km2, climate_type, favorable_season, tourism_rating
        FROM provinces WHERE id = $1`
	var p types.Province
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.NameFa, &p.NameEn, &p.Capital, &p.Population, &p.AreaKm2,
		&p.ClimateType, &p.FavorableSeason, &p.TourismRating,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find province: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error) {
	query := `
        SELECT city_id, month, avg_temp_c, avg_precip_mm, condition, best_for_tourism
        FROM city_weather WHERE city_id = $1 AND month = $2`
	var w types.CityWeather
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query, cityID, month).Scan(
		&w.CityID, &w.Month, &w.AvgTempC, &w.AvgPrecipMm, &w.Condition, &w.BestForTourism,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveDBQuery(ctx, start, nil)
		return nil, nil
	}
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find city weather: %w", err)
	}
	return &w, nil
}

const eventColumns = `id, city_id, name_fa, name_en, event_type, start_date::text, end_date::text, tourist_rating`

func (r *PostgresRepository) ListEventsByCity(ctx context.Context, cityID int) ([]types.SeasonalEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM seasonal_events WHERE city_id = $1 ORDER BY start_date, id`
	return r.queryEvents(ctx, query, cityID)
}

// ListEventsOverlapping returns events whose date range contains the given
// date, ignoring the year: events repeat annually. The overlap check runs
// in Go so ranges crossing the year boundary match on both sides.
func (r *PostgresRepository) ListEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error) {
	events, err := r.ListEventsByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	var overlapping []types.SeasonalEvent
	for _, e := range events {
		if eventOverlapsDay(e.StartDate, e.EndDate, date) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping, nil
}

// eventOverlapsDay reports whether an annually repeating event stored with
// ISO "2006-01-02" bounds covers the given calendar day. A range whose
// start month-day exceeds its end month-day (e.g. Dec 28 to Jan 3) wraps
// across the year boundary.
func eventOverlapsDay(startDate, endDate string, date time.Time) bool {
	s, e := monthDay(startDate), monthDay(endDate)
	if s == "" || e == "" {
		return false
	}
	md := date.Format("0102")
	if s <= e {
		return s <= md && md <= e
	}
	return md >= s || md <= e
}

// monthDay extracts "MMDD" from an ISO date string.
func monthDay(isoDate string) string {
	if len(isoDate) < 10 {
		return ""
	}
	return isoDate[5:7] + isoDate[8:10]
}

func (r *PostgresRepository) queryEvents(ctx context.Context, query string, args ...any) ([]types.SeasonalEvent, error) {
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, args...)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []types.SeasonalEvent
	for rows.Next() {
		var e types.SeasonalEvent
		if err := rows.Scan(&e.ID, &e.CityID, &e.NameFa, &e.NameEn, &e.EventType,
			&e.StartDate, &e.EndDate, &e.TouristRating); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListMapPoints feeds the map view: every city plus every UNESCO-flagged
// attraction as a flat marker list.
func (r *PostgresRepository) ListMapPoints(ctx context.Context) ([]types.MapPoint, error) {
	query := `
        SELECT 'city', name_fa, name_en, latitude, longitude, tourism_rating, FALSE
        FROM cities
        UNION ALL
        SELECT 'attraction', name_fa, name_en, latitude, longitude, rating, unesco_heritage
        FROM attractions WHERE unesco_heritage
        ORDER BY 1, 3`
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query)
	metrics.ObserveDBQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query map points: %w", err)
	}
	defer rows.Close()

	var points []types.MapPoint
	for rows.Next() {
		var p types.MapPoint
		if err := rows.Scan(&p.Kind, &p.NameFa, &p.NameEn, &p.Latitude, &p.Longitude, &p.Rating, &p.Unesco); err != nil {
			return nil, fmt.Errorf("failed to scan map point row: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
