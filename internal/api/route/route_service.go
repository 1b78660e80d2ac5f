package route

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetRouteSegment(ctx context.Context, originID, destinationID int) (*types.RouteSegment, error)
	GetTransportOptions(ctx context.Context, originID, destinationID int) ([]types.TransportOption, error)
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

// GetRouteSegment returns the directed segment or (nil, nil) when none
// exists. Absence is not an error; the engine reports it as a warning.
func (s *ServiceImpl) GetRouteSegment(ctx context.Context, originID, destinationID int) (*types.RouteSegment, error) {
	ctx, span := otel.Tracer("RouteService").Start(ctx, "GetRouteSegment")
	defer span.End()
	span.SetAttributes(attribute.Int("origin.id", originID), attribute.Int("destination.id", destinationID))

	if originID == destinationID {
		return nil, &types.InvalidRequestError{Field: "destination", Reason: "origin and destination must differ"}
	}

	segment, err := s.repo.GetSegment(ctx, originID, destinationID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch route segment",
			slog.String("method", "GetRouteSegment"), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch route segment")
		return nil, err
	}
	span.SetAttributes(attribute.Bool("route.found", segment != nil))
	return segment, nil
}

func (s *ServiceImpl) GetTransportOptions(ctx context.Context, originID, destinationID int) ([]types.TransportOption, error) {
	ctx, span := otel.Tracer("RouteService").Start(ctx, "GetTransportOptions")
	defer span.End()
	span.SetAttributes(attribute.Int("origin.id", originID), attribute.Int("destination.id", destinationID))

	options, err := s.repo.ListTransportOptions(ctx, originID, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch transport options")
		return nil, err
	}
	span.SetAttributes(attribute.Int("options.count", len(options)))
	return options, nil
}
