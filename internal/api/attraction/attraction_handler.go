package attraction

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

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

// GetAttractionDetail godoc
// @Summary      Get attraction
// @Tags         attractions
// @Produce      json
// @Param        attractionID path int true "Attraction ID"
// @Success      200 {object} types.Attraction
// @Failure      404 {object} map[string]interface{}
// @Router       /attractions/{attractionID} [get]
func (h *Handler) GetAttractionDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionHandler").Start(r.Context(), "GetAttractionDetail")
	defer span.End()

	id, err := strconv.Atoi(chi.URLParam(r, "attractionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid attraction ID")
		return
	}

	a, err := h.service.GetAttractionDetail(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "attraction not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch attraction")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, a)
}

// GetCityAttractions godoc
// @Summary      List city attractions
// @Description  Returns a city's attractions, optionally filtered by category, minimum rating or UNESCO status
// @Tags         attractions
// @Produce      json
// @Param        cityID path int true "City ID"
// @Param        category query string false "Comma-separated categories (historical, natural, religious, modern, cultural)"
// @Param        min_rating query number false "Minimum rating"
// @Param        unesco query bool false "UNESCO sites only"
// @Success      200 {array} types.Attraction
// @Failure      400 {object} map[string]interface{}
// @Router       /cities/{cityID}/attractions [get]
func (h *Handler) GetCityAttractions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionHandler").Start(r.Context(), "GetCityAttractions")
	defer span.End()

	cityID, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	var filter types.AttractionFilter
	if raw := r.URL.Query().Get("category"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			c, ok := types.ParseAttractionCategory(part)
			if !ok {
				api.ErrorResponse(w, r, http.StatusBadRequest, "unknown category: "+part)
				return
			}
			filter.Categories = append(filter.Categories, c)
		}
	}
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			api.ErrorResponse(w, r, http.StatusBadRequest, "min_rating must be a number between 0 and 5")
			return
		}
		filter.MinRating = minRating
	}
	filter.UnescoOnly = r.URL.Query().Get("unesco") == "true"

	attractions, err := h.service.GetAttractionsByCity(ctx, cityID, filter)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch attractions")
		return
	}
	if attractions == nil {
		attractions = []types.Attraction{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, attractions)
}

// GetCityAccommodations godoc
// @Summary      List city accommodations
// @Tags         attractions
// @Produce      json
// @Param        cityID path int true "City ID"
// @Success      200 {array} types.Accommodation
// @Router       /cities/{cityID}/accommodations [get]
func (h *Handler) GetCityAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionHandler").Start(r.Context(), "GetCityAccommodations")
	defer span.End()

	cityID, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	result, err := h.service.GetAccommodations(ctx, cityID)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch accommodations")
		return
	}
	if result == nil {
		result = []types.Accommodation{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// GetCityRestaurants godoc
// @Summary      List city restaurants
// @Tags         attractions
// @Produce      json
// @Param        cityID path int true "City ID"
// @Success      200 {array} types.Restaurant
// @Router       /cities/{cityID}/restaurants [get]
func (h *Handler) GetCityRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionHandler").Start(r.Context(), "GetCityRestaurants")
	defer span.End()

	cityID, err := strconv.Atoi(chi.URLParam(r, "cityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	result, err := h.service.GetRestaurants(ctx, cityID)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch restaurants")
		return
	}
	if result == nil {
		result = []types.Restaurant{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
