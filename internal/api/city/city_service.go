package city

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes city, weather, event and map queries to handlers and to
// the recommendation engine.
type Service interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
	GetCityDetail(ctx context.Context, id int) (*types.City, error)
	ResolveCity(ctx context.Context, name string) (*types.City, error)
	GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error)
	GetCityEvents(ctx context.Context, cityID int) ([]types.SeasonalEvent, error)
	GetEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error)
	GetMapPoints(ctx context.Context) ([]types.MapPoint, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewServiceImpl(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) GetAllCities(ctx context.Context) ([]types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetAllCities")
	defer span.End()

	cities, err := s.repo.GetAllCities(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch cities")
		return nil, fmt.Errorf("failed to fetch cities: %w", err)
	}
	span.SetAttributes(attribute.Int("cities.count", len(cities)))
	return cities, nil
}

// GetCityDetail returns a city with its province attached.
func (s *ServiceImpl) GetCityDetail(ctx context.Context, id int) (*types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityDetail")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", id))

	l := s.logger.With(slog.String("method", "GetCityDetail"), slog.Int("cityID", id))

	city, err := s.repo.GetCity(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch city", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch city")
		return nil, err
	}
	if city == nil {
		return nil, &types.NotFoundError{Field: "city", Key: fmt.Sprintf("%d", id)}
	}

	province, err := s.repo.GetProvince(ctx, city.ProvinceID)
	if err != nil {
		l.WarnContext(ctx, "Failed to fetch province for city", slog.Any("error", err))
	} else {
		city.Province = province
	}
	return city, nil
}

// ResolveCity finds a city by Persian name, English name or numeric id and
// returns a NotFoundError when nothing matches.
func (s *ServiceImpl) ResolveCity(ctx context.Context, name string) (*types.City, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "ResolveCity")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", name))

	if name == "" {
		return nil, &types.InvalidRequestError{Field: "city", Reason: "name must not be empty"}
	}

	city, err := s.repo.FindCityByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve city")
		return nil, fmt.Errorf("failed to resolve city %q: %w", name, err)
	}
	if city == nil {
		return nil, &types.NotFoundError{Field: "city", Key: name}
	}
	return city, nil
}

func (s *ServiceImpl) GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityWeather")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", cityID), attribute.Int("month", month))

	if month < 1 || month > 12 {
		return nil, &types.InvalidRequestError{Field: "month", Reason: "must be between 1 and 12"}
	}
	weather, err := s.repo.GetCityWeather(ctx, cityID, month)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch weather")
		return nil, err
	}
	return weather, nil
}

func (s *ServiceImpl) GetCityEvents(ctx context.Context, cityID int) ([]types.SeasonalEvent, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityEvents")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", cityID))

	events, err := s.repo.ListEventsByCity(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch events")
		return nil, err
	}
	return events, nil
}

func (s *ServiceImpl) GetEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetEventsOverlapping")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", cityID), attribute.String("date", date.Format("2006-01-02")))

	events, err := s.repo.ListEventsOverlapping(ctx, cityID, date)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch overlapping events")
		return nil, err
	}
	return events, nil
}

func (s *ServiceImpl) GetMapPoints(ctx context.Context) ([]types.MapPoint, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetMapPoints")
	defer span.End()

	points, err := s.repo.ListMapPoints(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch map points")
		return nil, err
	}
	span.SetAttributes(attribute.Int("points.count", len(points)))
	return points, nil
}
