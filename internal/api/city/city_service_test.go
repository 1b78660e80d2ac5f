package city

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

type MockCityRepo struct{ mock.Mock }

func (m *MockCityRepo) GetCity(ctx context.Context, id int) (*types.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}
func (m *MockCityRepo) FindCityByName(ctx context.Context, name string) (*types.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.City), args.Error(1)
}
func (m *MockCityRepo) GetAllCities(ctx context.Context) ([]types.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.City), args.Error(1)
}
func (m *MockCityRepo) GetProvince(ctx context.Context, id int) (*types.Province, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Province), args.Error(1)
}
func (m *MockCityRepo) GetCityWeather(ctx context.Context, cityID, month int) (*types.CityWeather, error) {
	args := m.Called(ctx, cityID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CityWeather), args.Error(1)
}
func (m *MockCityRepo) ListEventsByCity(ctx context.Context, cityID int) ([]types.SeasonalEvent, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SeasonalEvent), args.Error(1)
}
func (m *MockCityRepo) ListEventsOverlapping(ctx context.Context, cityID int, date time.Time) ([]types.SeasonalEvent, error) {
	args := m.Called(ctx, cityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SeasonalEvent), args.Error(1)
}
func (m *MockCityRepo) ListMapPoints(ctx context.Context) ([]types.MapPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.MapPoint), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestResolveCity(t *testing.T) {
	ctx := context.Background()

	t.Run("Found By English Name", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("FindCityByName", mock.Anything, "Isfahan").
			Return(&types.City{ID: 2, NameEn: "Isfahan"}, nil)

		svc := NewServiceImpl(repo, testLogger())
		city, err := svc.ResolveCity(ctx, "Isfahan")
		require.NoError(t, err)
		assert.Equal(t, 2, city.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Name", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("FindCityByName", mock.Anything, "Gotham").Return(nil, nil)

		svc := NewServiceImpl(repo, testLogger())
		_, err := svc.ResolveCity(ctx, "Gotham")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("Empty Name", func(t *testing.T) {
		repo := new(MockCityRepo)
		svc := NewServiceImpl(repo, testLogger())
		_, err := svc.ResolveCity(ctx, "")
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("FindCityByName", mock.Anything, "Tehran").Return(nil, errors.New("db down"))

		svc := NewServiceImpl(repo, testLogger())
		_, err := svc.ResolveCity(ctx, "Tehran")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, types.ErrNotFound)
	})
}

func TestGetCityDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Attaches Province", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("GetCity", mock.Anything, 2).
			Return(&types.City{ID: 2, ProvinceID: 2, NameEn: "Isfahan"}, nil)
		repo.On("GetProvince", mock.Anything, 2).
			Return(&types.Province{ID: 2, NameEn: "Isfahan"}, nil)

		svc := NewServiceImpl(repo, testLogger())
		city, err := svc.GetCityDetail(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, city.Province)
		assert.Equal(t, "Isfahan", city.Province.NameEn)
	})

	t.Run("Province Failure Is Non Fatal", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("GetCity", mock.Anything, 2).
			Return(&types.City{ID: 2, ProvinceID: 2, NameEn: "Isfahan"}, nil)
		repo.On("GetProvince", mock.Anything, 2).Return(nil, errors.New("db down"))

		svc := NewServiceImpl(repo, testLogger())
		city, err := svc.GetCityDetail(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, city.Province)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("GetCity", mock.Anything, 99).Return(nil, nil)

		svc := NewServiceImpl(repo, testLogger())
		_, err := svc.GetCityDetail(ctx, 99)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestGetCityWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Month", func(t *testing.T) {
		repo := new(MockCityRepo)
		svc := NewServiceImpl(repo, testLogger())
		_, err := svc.GetCityWeather(ctx, 2, 13)
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("Missing Month Returns Nil", func(t *testing.T) {
		repo := new(MockCityRepo)
		repo.On("GetCityWeather", mock.Anything, 10, 12).Return(nil, nil)

		svc := NewServiceImpl(repo, testLogger())
		weather, err := svc.GetCityWeather(ctx, 10, 12)
		assert.NoError(t, err)
		assert.Nil(t, weather)
	})
}
