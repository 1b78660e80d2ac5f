package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	CreateUser(ctx context.Context, email, displayName string) (*types.User, error)
	GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error)
	RecordVisit(ctx context.Context, userID uuid.UUID, cityID int) error
	GetAttractionRatings(ctx context.Context, userID uuid.UUID) ([]types.AttractionRating, error)
	RateAttraction(ctx context.Context, userID uuid.UUID, params types.CreateAttractionRatingParams) error
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

func (s *ServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetUser")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", id.String()))

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch user")
		return nil, err
	}
	if u == nil {
		return nil, &types.NotFoundError{Field: "user", Key: id.String()}
	}
	return u, nil
}

func (s *ServiceImpl) CreateUser(ctx context.Context, email, displayName string) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "CreateUser")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &types.InvalidRequestError{Field: "email", Reason: "must be a valid email address"}
	}

	u, err := s.repo.CreateUser(ctx, email, strings.TrimSpace(displayName))
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create user",
			slog.String("method", "CreateUser"), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create user")
		return nil, err
	}
	return u, nil
}

func (s *ServiceImpl) GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetTravelHistory")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	entries, err := s.repo.ListTravelHistory(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch travel history")
		return nil, err
	}
	return entries, nil
}

func (s *ServiceImpl) RecordVisit(ctx context.Context, userID uuid.UUID, cityID int) error {
	ctx, span := otel.Tracer("UserService").Start(ctx, "RecordVisit")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID.String()), attribute.Int("city.id", cityID))

	if err := s.repo.AddTravelHistory(ctx, userID, cityID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to record visit")
		return err
	}
	return nil
}

func (s *ServiceImpl) GetAttractionRatings(ctx context.Context, userID uuid.UUID) ([]types.AttractionRating, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetAttractionRatings")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	ratings, err := s.repo.ListAttractionRatings(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch ratings")
		return nil, err
	}
	return ratings, nil
}

func (s *ServiceImpl) RateAttraction(ctx context.Context, userID uuid.UUID, params types.CreateAttractionRatingParams) error {
	ctx, span := otel.Tracer("UserService").Start(ctx, "RateAttraction")
	defer span.End()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Int("attraction.id", params.AttractionID),
	)

	if params.Rating < 0 || params.Rating > 5 {
		return &types.InvalidRequestError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if params.AttractionID <= 0 {
		return &types.InvalidRequestError{Field: "attraction_id", Reason: "must be a positive attraction id"}
	}

	if err := s.repo.UpsertAttractionRating(ctx, userID, params.AttractionID, params.Rating); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save attraction rating",
			slog.String("method", "RateAttraction"), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save rating")
		return err
	}
	return nil
}
