package recommendation

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

// --- Mocks for Dependencies ---

type MockCityService struct{ mock.Mock }

func (m *MockCityService) GetAllCities(ctx context.Context) ([]types.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.City), args.Error(1)
}
func (m *MockCityService) GetCityDetail(ctx context.Context, id int) (*types.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}
func (m *MockCityService) ResolveCity(ctx context.Context, name string) (*types.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}
func (m *MockCityService) GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error) {
	args := m.Called(ctx, cityID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CityWeather), args.Error(1)
}
func (m *MockCityService) GetCityEvents(ctx context.Context, cityID int) ([]types.SeasonalEvent, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SeasonalEvent), args.Error(1)
}
func (m *MockCityService) GetEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error) {
	args := m.Called(ctx, cityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SeasonalEvent), args.Error(1)
}
func (m *MockCityService) GetMapPoints(ctx context.Context) ([]types.MapPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.MapPoint), args.Error(1)
}

type MockAttractionRepo struct{ mock.Mock }

func (m *MockAttractionRepo) GetAttraction(ctx context.Context, id int) (*types.Attraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Attraction), args.Error(1)
}
func (m *MockAttractionRepo) ListByCity(ctx context.Context, cityID int, filter types.AttractionFilter) ([]types.Attraction, error) {
	args := m.Called(ctx, cityID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Attraction), args.Error(1)
}
func (m *MockAttractionRepo) ListAccommodationsByCity(ctx context.Context, cityID int) ([]types.Accommodation, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Accommodation), args.Error(1)
}
func (m *MockAttractionRepo) ListRestaurantsByCity(ctx context.Context, cityID int) ([]types.Restaurant, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Restaurant), args.Error(1)
}

type MockRouteService struct{ mock.Mock }

func (m *MockRouteService) GetRouteSegment(ctx context.Context, originID, destinationID int) (*types.RouteSegment, error) {
	args := m.Called(ctx, originID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RouteSegment), args.Error(1)
}
func (m *MockRouteService) GetTransportOptions(ctx context.Context, originID, destinationID int) ([]types.TransportOption, error) {
	args := m.Called(ctx, originID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TransportOption), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, email, displayName string) (*types.User, error) {
	args := m.Called(ctx, email, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}
func (m *MockUserService) GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TravelHistoryEntry), args.Error(1)
}
func (m *MockUserService) RecordVisit(ctx context.Context, userID uuid.UUID, cityID int) error {
	args := m.Called(ctx, userID, cityID)
	return args.Error(0)
}
func (m *MockUserService) GetAttractionRatings(ctx context.Context, userID uuid.UUID) ([]types.AttractionRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.AttractionRating), args.Error(1)
}
func (m *MockUserService) RateAttraction(ctx context.Context, userID uuid.UUID, params types.CreateAttractionRatingParams) error {
	args := m.Called(ctx, userID, params)
	return args.Error(0)
}

// --- Fixtures ---

var (
	tehran  = &types.City{ID: 1, NameFa: "تهران", NameEn: "Tehran", CostIndex: 100}
	isfahan = &types.City{ID: 2, NameFa: "اصفهان", NameEn: "Isfahan", CostIndex: 90}
)

func tehranIsfahanSegment() *types.RouteSegment {
	return &types.RouteSegment{
		ID: 1, OriginCityID: 1, DestinationCityID: 2,
		DistanceKm: 450, DurationHours: 5.5, RoadType: "freeway",
		TollCostToman: 35000, FuelCostToman: 180000,
		ScenicRating: 3.5, SafetyRating: 4.5,
	}
}

func newEngine(cs *MockCityService, ar *MockAttractionRepo, rs *MockRouteService, us *MockUserService) *ServiceImpl {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewServiceImpl(cs, ar, rs, us, 20, 10, logger)
}

func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Full Composite Result", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(tehranIsfahanOptions(), nil)
		ar.On("ListByCity", mock.Anything, 2, types.AttractionFilter{}).Return([]types.Attraction{
			{ID: 10, NameEn: "Khaju Bridge", Rating: 4.6},
			{ID: 11, NameEn: "Imam Square", Rating: 4.8, UnescoHeritage: true},
		}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{}, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan", DurationDays: 2,
		})
		require.NoError(t, err)

		assert.Equal(t, "Tehran", result.Origin.NameEn)
		assert.Equal(t, "Isfahan", result.Destination.NameEn)
		require.NotNil(t, result.Route)
		assert.Equal(t, 450.0, result.Route.DistanceKm)
		assert.Equal(t, "Imam Square", result.Attractions[0].NameEn)
		assert.Equal(t, "Hamsafar", result.TransportOptions[0].Operator)
		assert.Empty(t, result.Warnings)

		require.NotNil(t, result.BudgetEstimate)
		assert.Equal(t, "car_toll_fuel", result.BudgetEstimate.TransportBasis)
		assert.Equal(t, int64(215000), result.BudgetEstimate.TransportCostToman)
		// Medium default 200k/day scaled by Isfahan's cost index of 90.
		assert.Equal(t, int64(180000), result.BudgetEstimate.PerDayCostToman)
		assert.Equal(t, int64(215000+2*180000), result.BudgetEstimate.TotalToman)
		assert.Nil(t, result.BudgetEstimate.WithinBudget)
	})

	t.Run("Budget Tier Sets WithinBudget", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return([]types.TransportOption{}, nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{}, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan", DurationDays: 2, BudgetTier: types.BudgetLow,
		})
		require.NoError(t, err)

		require.NotNil(t, result.BudgetEstimate)
		require.NotNil(t, result.BudgetEstimate.WithinBudget)
		// 215000 transport + 2 * 72000 per day is well over the 200k tier cap.
		assert.False(t, *result.BudgetEstimate.WithinBudget)
	})

	t.Run("Same Origin And Destination", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "تهران").Return(tehran, nil)

		svc := newEngine(cs, ar, rs, us)
		_, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "تهران",
		})
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("Unknown Destination", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Atlantis").
			Return(nil, &types.NotFoundError{Field: "city", Key: "Atlantis"})

		svc := newEngine(cs, ar, rs, us)
		_, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Atlantis",
		})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("Unknown Category Preference", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		svc := newEngine(cs, ar, rs, us)
		_, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan",
			CategoryPreferences: []string{"underwater"},
		})
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("Missing Data Becomes Warnings", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		tabriz := &types.City{ID: 4, NameEn: "Tabriz", CostIndex: 85}
		ahvaz := &types.City{ID: 10, NameEn: "Ahvaz", CostIndex: 80}
		travelDate := time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC)

		cs.On("ResolveCity", mock.Anything, "Tabriz").Return(tabriz, nil)
		cs.On("ResolveCity", mock.Anything, "Ahvaz").Return(ahvaz, nil)
		rs.On("GetRouteSegment", mock.Anything, 4, 10).Return(nil, nil)
		rs.On("GetTransportOptions", mock.Anything, 4, 10).Return(nil, nil)
		ar.On("ListByCity", mock.Anything, 10, mock.Anything).Return([]types.Attraction{
			{ID: 30, NameEn: "Karun Riverside", Rating: 4.0},
		}, nil)
		cs.On("GetCityWeather", mock.Anything, 10, 12).Return(nil, nil)
		cs.On("GetEventsOverlapping", mock.Anything, 10, travelDate).Return(nil, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tabriz", Destination: "Ahvaz", TravelDate: &travelDate,
		})
		require.NoError(t, err)

		assert.Nil(t, result.Route)
		assert.Empty(t, result.TransportOptions)
		assert.Nil(t, result.SeasonFit)
		assert.Nil(t, result.BudgetEstimate)
		assert.Len(t, result.Attractions, 1)
		assert.Contains(t, result.Warnings, "no direct route segment between these cities")
		assert.Contains(t, result.Warnings, "no transport options between these cities")
		assert.Contains(t, result.Warnings, "no weather data for Ahvaz in month 12")
		assert.Contains(t, result.Warnings, "budget estimate unavailable without route or transport data")
	})

	t.Run("No Travel Date Returns Full Event Calendar", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(nil, nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{{ID: 1, Rating: 4}}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{
			{ID: 1, CityID: 2, NameEn: "Nowruz Celebrations", StartDate: "2024-03-20", EndDate: "2024-04-02"},
			{ID: 2, CityID: 2, NameEn: "Isfahan Handicrafts Week", StartDate: "2024-06-10", EndDate: "2024-06-17"},
		}, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan",
		})
		require.NoError(t, err)

		require.Len(t, result.Events, 2)
		assert.Equal(t, "Nowruz Celebrations", result.Events[0].NameEn)
		cs.AssertNotCalled(t, "GetEventsOverlapping", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Seasonal Restriction Warning", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		segment := tehranIsfahanSegment()
		segment.SeasonalRestrictions = []string{"winter_snow"}
		travelDate := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(segment, nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(tehranIsfahanOptions(), nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{{ID: 1, Rating: 4}}, nil)
		cs.On("GetCityWeather", mock.Anything, 2, 1).Return(&types.CityWeather{
			CityID: 2, Month: 1, AvgTempC: 4.5, Condition: "cold", BestForTourism: false,
		}, nil)
		cs.On("GetEventsOverlapping", mock.Anything, 2, travelDate).Return(nil, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan", TravelDate: &travelDate,
		})
		require.NoError(t, err)

		require.NotNil(t, result.SeasonFit)
		assert.False(t, result.SeasonFit.BestForTourism)
		assert.Contains(t, result.Warnings, "route has a seasonal restriction in winter")
	})

	t.Run("Personalization Reads User Ratings", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		userID := uuid.New()

		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(nil, nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{
			{ID: 10, NameEn: "Khaju Bridge", Rating: 4.6},
			{ID: 11, NameEn: "Vank Cathedral", Rating: 4.7},
		}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{}, nil)
		us.On("GetAttractionRatings", mock.Anything, userID).Return([]types.AttractionRating{
			{UserID: userID, AttractionID: 10, Rating: 5},
		}, nil)

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan", UserID: &userID,
		})
		require.NoError(t, err)

		// 4.6 + 0.2 beats the 4.7.
		assert.Equal(t, "Khaju Bridge", result.Attractions[0].NameEn)
		us.AssertExpectations(t)
	})

	t.Run("Personalization Failure Is Non Fatal", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		userID := uuid.New()

		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(nil, nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{{ID: 1, Rating: 4}}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{}, nil)
		us.On("GetAttractionRatings", mock.Anything, userID).Return(nil, errors.New("db down"))

		svc := newEngine(cs, ar, rs, us)
		result, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan", UserID: &userID,
		})
		require.NoError(t, err)
		assert.Len(t, result.Attractions, 1)
	})

	t.Run("Deterministic For Equal Requests", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(tehranIsfahanSegment(), nil)
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(tehranIsfahanOptions(), nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return([]types.Attraction{
			{ID: 10, NameEn: "Khaju Bridge", Rating: 4.6},
			{ID: 11, NameEn: "Imam Square", Rating: 4.8, UnescoHeritage: true},
			{ID: 12, NameEn: "Vank Cathedral", Rating: 4.8},
		}, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return([]types.SeasonalEvent{}, nil)

		svc := newEngine(cs, ar, rs, us)
		req := types.RecommendationRequest{Origin: "Tehran", Destination: "Isfahan"}

		first, err := svc.GetRecommendations(ctx, req)
		require.NoError(t, err)
		second, err := svc.GetRecommendations(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Sub Query Failure Fails The Request", func(t *testing.T) {
		cs, ar, rs, us := new(MockCityService), new(MockAttractionRepo), new(MockRouteService), new(MockUserService)
		cs.On("ResolveCity", mock.Anything, "Tehran").Return(tehran, nil)
		cs.On("ResolveCity", mock.Anything, "Isfahan").Return(isfahan, nil)
		rs.On("GetRouteSegment", mock.Anything, 1, 2).Return(nil, errors.New("connection reset"))
		rs.On("GetTransportOptions", mock.Anything, 1, 2).Return(nil, nil)
		ar.On("ListByCity", mock.Anything, 2, mock.Anything).Return(nil, nil)
		cs.On("GetCityEvents", mock.Anything, 2).Return(nil, nil)

		svc := newEngine(cs, ar, rs, us)
		_, err := svc.GetRecommendations(ctx, types.RecommendationRequest{
			Origin: "Tehran", Destination: "Isfahan",
		})
		assert.Error(t, err)
	})
}
