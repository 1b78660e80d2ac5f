package attraction

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetAttractionDetail(ctx context.Context, id int) (*types.Attraction, error)
	GetAttractionsByCity(ctx context.Context, cityID int, filter types.AttractionFilter) ([]types.Attraction, error)
	GetAccommodations(ctx context.Context, cityID int) ([]types.Accommodation, error)
	GetRestaurants(ctx context.Context, cityID int) ([]types.Restaurant, error)
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

func (s *ServiceImpl) GetAttractionDetail(ctx context.Context, id int) (*types.Attraction, error) {
	ctx, span := otel.Tracer("AttractionService").Start(ctx, "GetAttractionDetail")
	defer span.End()
	span.SetAttributes(attribute.Int("attraction.id", id))

	a, err := s.repo.GetAttraction(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch attraction")
		return nil, err
	}
	if a == nil {
		return nil, &types.NotFoundError{Field: "attraction", Key: fmt.Sprintf("%d", id)}
	}
	return a, nil
}

func (s *ServiceImpl) GetAttractionsByCity(ctx context.Context, cityID int, filter types.AttractionFilter) ([]types.Attraction, error) {
	ctx, span := otel.Tracer("AttractionService").Start(ctx, "GetAttractionsByCity")
	defer span.End()
	span.SetAttributes(
		attribute.Int("city.id", cityID),
		attribute.Int("filter.categories", len(filter.Categories)),
		attribute.Bool("filter.unescoOnly", filter.UnescoOnly),
	)

	l := s.logger.With(slog.String("method", "GetAttractionsByCity"), slog.Int("cityID", cityID))

	attractions, err := s.repo.ListByCity(ctx, cityID, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch attractions", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch attractions")
		return nil, err
	}
	span.SetAttributes(attribute.Int("attractions.count", len(attractions)))
	return attractions, nil
}

func (s *ServiceImpl) GetAccommodations(ctx context.Context, cityID int) ([]types.Accommodation, error) {
	ctx, span := otel.Tracer("AttractionService").Start(ctx, "GetAccommodations")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", cityID))

	result, err := s.repo.ListAccommodationsByCity(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch accommodations")
		return nil, err
	}
	return result, nil
}

func (s *ServiceImpl) GetRestaurants(ctx context.Context, cityID int) ([]types.Restaurant, error) {
	ctx, span := otel.Tracer("AttractionService").Start(ctx, "GetRestaurants")
	defer span.End()
	span.SetAttributes(attribute.Int("city.id", cityID))

	result, err := s.repo.ListRestaurantsByCity(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch restaurants")
		return nil, err
	}
	return result, nil
}
