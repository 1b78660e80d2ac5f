package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/attraction"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/city"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/route"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/user"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

const defaultDurationDays = 3

var _ Service = (*ServiceImpl)(nil)

// Service is the recommendation query engine. One structured request in,
// one composite ranked answer out.
type Service interface {
	GetRecommendations(ctx context.Context, req types.RecommendationRequest) (*types.RecommendationResult, error)
}

type ServiceImpl struct {
	logger         *slog.Logger
	cityService    city.Service
	attractionRepo attraction.Repository
	routeService   route.Service
	userService    user.Service
	cityCache      *cache.Cache
	maxAttractions int
	maxEvents      int
}

func NewServiceImpl(
	cityService city.Service,
	attractionRepo attraction.Repository,
	routeService route.Service,
	userService user.Service,
	maxAttractions, maxEvents int,
	logger *slog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		logger:         logger,
		cityService:    cityService,
		attractionRepo: attractionRepo,
		routeService:   routeService,
		userService:    userService,
		cityCache:      cache.New(5*time.Minute, 10*time.Minute),
		maxAttractions: maxAttractions,
		maxEvents:      maxEvents,
	}
}

// resolveCity goes through a short-lived cache keyed by the normalized
// name. City rows change rarely; the engine resolves the same handful of
// names on nearly every request.
func (s *ServiceImpl) resolveCity(ctx context.Context, field, name string) (*types.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &types.InvalidRequestError{Field: field, Reason: "must not be empty"}
	}

	key := strings.ToLower(name)
	if cached, found := s.cityCache.Get(key); found {
		return cached.(*types.City), nil
	}

	c, err := s.cityService.ResolveCity(ctx, name)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, &types.NotFoundError{Field: field, Key: name}
		}
		return nil, err
	}
	s.cityCache.Set(key, c, cache.DefaultExpiration)
	return c, nil
}

func validateRequest(req *types.RecommendationRequest) (types.AttractionFilter, error) {
	if req.DurationDays < 0 {
		return types.AttractionFilter{}, &types.InvalidRequestError{Field: "duration_days", Reason: "must not be negative"}
	}
	if req.DurationDays == 0 {
		req.DurationDays = defaultDurationDays
	}
	if req.BudgetTier != "" {
		tier, ok := types.ParseBudgetTier(string(req.BudgetTier))
		if !ok {
			return types.AttractionFilter{}, &types.InvalidRequestError{Field: "budget_tier", Reason: "unknown tier: " + string(req.BudgetTier)}
		}
		req.BudgetTier = tier
	}

	var filter types.AttractionFilter
	for _, raw := range req.CategoryPreferences {
		c, ok := types.ParseAttractionCategory(raw)
		if !ok {
			return types.AttractionFilter{}, &types.InvalidRequestError{Field: "category_preferences", Reason: "unknown category: " + raw}
		}
		filter.Categories = append(filter.Categories, c)
	}
	return filter, nil
}

// GetRecommendations resolves both cities, fans out the independent
// sub-queries, ranks what came back and assembles the composite result.
// Missing data (no route, no weather row, no events) shows up as an absent
// field plus a warning, never as a failure. Equal inputs produce
// byte-equal output.
func (s *ServiceImpl) GetRecommendations(ctx context.Context, req types.RecommendationRequest) (*types.RecommendationResult, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GetRecommendations")
	defer span.End()
	span.SetAttributes(
		attribute.String("request.origin", req.Origin),
		attribute.String("request.destination", req.Destination),
	)

	l := s.logger.With(
		slog.String("method", "GetRecommendations"),
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
	)
	start := time.Now()

	filter, err := validateRequest(&req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	origin, err := s.resolveCity(ctx, "origin", req.Origin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve origin")
		return nil, err
	}
	destination, err := s.resolveCity(ctx, "destination", req.Destination)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve destination")
		return nil, err
	}
	if origin.ID == destination.ID {
		return nil, &types.InvalidRequestError{Field: "destination", Reason: "origin and destination must differ"}
	}

	var (
		segment     *types.RouteSegment
		options     []types.TransportOption
		attractions []types.Attraction
		weather     *types.CityWeather
		events      []types.SeasonalEvent
		userRatings map[int]float64
		warnings    []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		segment, err = s.routeService.GetRouteSegment(gctx, origin.ID, destination.ID)
		return err
	})
	g.Go(func() error {
		var err error
		options, err = s.routeService.GetTransportOptions(gctx, origin.ID, destination.ID)
		return err
	})
	g.Go(func() error {
		var err error
		attractions, err = s.attractionRepo.ListByCity(gctx, destination.ID, filter)
		return err
	})
	if req.TravelDate != nil {
		month := int(req.TravelDate.Month())
		g.Go(func() error {
			var err error
			weather, err = s.cityService.GetCityWeather(gctx, destination.ID, month)
			return err
		})
		g.Go(func() error {
			var err error
			events, err = s.cityService.GetEventsOverlapping(gctx, destination.ID, *req.TravelDate)
			return err
		})
	} else {
		// Without a date the destination's full event calendar comes back,
		// ordered by start date.
		g.Go(func() error {
			var err error
			events, err = s.cityService.GetCityEvents(gctx, destination.ID)
			return err
		})
	}
	if req.UserID != nil {
		uid := *req.UserID
		g.Go(func() error {
			ratings, err := s.userService.GetAttractionRatings(gctx, uid)
			if err != nil {
				// Personalization is best-effort; the request proceeds
				// unpersonalized.
				l.WarnContext(gctx, "Skipping personalization", slog.Any("error", err))
				return nil
			}
			m := make(map[int]float64, len(ratings))
			for _, r := range ratings {
				m[r.AttractionID] = r.Rating
			}
			userRatings = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.ErrorContext(ctx, "Recommendation sub-query failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "sub-query failed")
		metrics.Get().RecommendationRequestsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to assemble recommendation: %w", err)
	}

	result := &types.RecommendationResult{
		Origin:           origin,
		Destination:      destination,
		Route:            segment,
		TransportOptions: RankTransportOptions(options),
		Attractions:      RankAttractions(attractions, userRatings),
		Events:           events,
	}
	if result.TransportOptions == nil {
		result.TransportOptions = []types.TransportOption{}
	}
	if result.Attractions == nil {
		result.Attractions = []types.Attraction{}
	}
	if result.Events == nil {
		result.Events = []types.SeasonalEvent{}
	}
	if len(result.Attractions) > s.maxAttractions {
		result.Attractions = result.Attractions[:s.maxAttractions]
	}
	if len(result.Events) > s.maxEvents {
		result.Events = result.Events[:s.maxEvents]
	}

	// Warnings are appended in a fixed order so equal requests render the
	// same response.
	if segment == nil {
		warnings = append(warnings, "no direct route segment between these cities")
	}
	if len(options) == 0 {
		warnings = append(warnings, "no transport options between these cities")
	}
	if len(attractions) == 0 {
		warnings = append(warnings, "no attractions match the requested filters")
	}
	if req.TravelDate != nil {
		month := int(req.TravelDate.Month())
		if weather != nil {
			result.SeasonFit = &types.SeasonFit{
				Month:          month,
				BestForTourism: weather.BestForTourism,
				Condition:      weather.Condition,
				AvgTempC:       weather.AvgTempC,
			}
		} else {
			warnings = append(warnings, fmt.Sprintf("no weather data for %s in month %d", destination.NameEn, month))
		}
		if segment != nil && segment.RestrictedIn(types.SeasonOfMonth(month)) {
			warnings = append(warnings, fmt.Sprintf("route has a seasonal restriction in %s", types.SeasonOfMonth(month)))
		}
	}

	result.BudgetEstimate = s.estimateBudget(&req, destination, segment, result.TransportOptions)
	if result.BudgetEstimate == nil {
		warnings = append(warnings, "budget estimate unavailable without route or transport data")
	}
	result.Warnings = warnings

	metrics.Get().RecommendationRequestsTotal.Add(ctx, 1)
	metrics.Get().RecommendationDurationSeconds.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("result.attractions", len(result.Attractions)),
		attribute.Int("result.transportOptions", len(result.TransportOptions)),
		attribute.Int("result.warnings", len(warnings)),
	)
	l.InfoContext(ctx, "Recommendation assembled",
		slog.Int("attractions", len(result.Attractions)),
		slog.Int("warnings", len(warnings)),
		slog.Duration("took", time.Since(start)),
	)
	return result, nil
}

// estimateBudget projects transport plus stay cost. Transport prefers the
// private-car route (toll + fuel); without a road segment it falls back to
// the cheapest ranked option. Per-day spend scales the tier's base rate by
// the destination cost index (national baseline 100).
func (s *ServiceImpl) estimateBudget(req *types.RecommendationRequest, destination *types.City, segment *types.RouteSegment, rankedOptions []types.TransportOption) *types.BudgetEstimate {
	tier := req.BudgetTier
	if tier == "" {
		tier = types.BudgetMedium
	}

	estimate := &types.BudgetEstimate{
		DurationDays: req.DurationDays,
		BudgetTier:   req.BudgetTier,
	}
	switch {
	case segment != nil:
		estimate.TransportCostToman = segment.TollCostToman + segment.FuelCostToman
		estimate.TransportBasis = "car_toll_fuel"
	case len(rankedOptions) > 0:
		cheapest := rankedOptions[0].CostToman
		for _, o := range rankedOptions[1:] {
			if o.CostToman < cheapest {
				cheapest = o.CostToman
			}
		}
		estimate.TransportCostToman = cheapest
		estimate.TransportBasis = "cheapest_option"
	default:
		return nil
	}

	costIndex := destination.CostIndex
	if costIndex <= 0 {
		costIndex = 100
	}
	estimate.PerDayCostToman = int64(math.Round(float64(tier.PerDayBaseToman()) * costIndex / 100))
	estimate.TotalToman = estimate.TransportCostToman + estimate.PerDayCostToman*int64(req.DurationDays)

	if req.BudgetTier != "" {
		within := estimate.TotalToman <= req.BudgetTier.BudgetLimitToman()
		estimate.WithinBudget = &within
	}
	return estimate
}
