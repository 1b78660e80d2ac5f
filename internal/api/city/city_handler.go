package city

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/api"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetAllCities godoc
// @Summary      List cities
// @Description  Returns all cities with coordinates and tourism metadata
// @Tags         cities
// @Produce      json
// @Success      200 {array} types.City
// @Failure      500 {object} map[string]interface{}
// @Router       /cities [get]
func (h *Handler) GetAllCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetAllCities", trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.route", "/cities"),
	))
	defer span.End()

	cities, err := h.service.GetAllCities(ctx)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch cities")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, cities)
}

// GetCityDetail godoc
// @Summary      Get city
// @Description  Returns a single city with its province
// @Tags         cities
// @Produce      json
// @Param        cityID path int true "City ID"
// @Success      200 {object} types.City
// @Failure      404 {object} map[string]interface{}
// @Router       /cities/{cityID} [get]
func (h *Handler) GetCityDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCityDetail")
	defer span.End()

	id, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	city, err := h.service.GetCityDetail(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "city not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch city")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, city)
}

// GetCityWeather godoc
// @Summary      Get city weather
// @Description  Returns climate norms for a city and month
// @Tags         cities
// @Produce      json
// @Param        cityID path int true "City ID"
// @Param        month query int true "Month (1-12)"
// @Success      200 {object} types.CityWeather
// @Failure      404 {object} map[string]interface{}
// @Router       /cities/{cityID}/weather [get]
func (h *Handler) GetCityWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCityWeather")
	defer span.End()

	id, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		month = int(time.Now().Month())
	}

	weather, err := h.service.GetCityWeather(ctx, id, month)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch weather")
		return
	}
	if weather == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "no weather data for this city and month")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, weather)
}

// GetCityEvents godoc
// @Summary      List city events
// @Description  Returns seasonal events and festivals for a city
// @Tags         cities
// @Produce      json
// @Param        cityID path int true "City ID"
// @Success      200 {array} types.SeasonalEvent
// @Router       /cities/{cityID}/events [get]
func (h *Handler) GetCityEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCityEvents")
	defer span.End()

	id, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	events, err := h.service.GetCityEvents(ctx, id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch events")
		return
	}
	if events == nil {
		events = []types.SeasonalEvent{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, events)
}

// GetMapPoints godoc
// @Summary      List map points
// @Description  Returns city and UNESCO attraction markers for the map view
// @Tags         map
// @Produce      json
// @Success      200 {array} types.MapPoint
// @Router       /map/points [get]
func (h *Handler) GetMapPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetMapPoints")
	defer span.End()

	points, err := h.service.GetMapPoints(ctx)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch map points")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, points)
}
