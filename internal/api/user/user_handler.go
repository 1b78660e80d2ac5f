package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
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

func userIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "userID"))
}

type createUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// CreateUser godoc
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body createUserRequest true "User"
// @Success      201 {object} types.User
// @Failure      400 {object} map[string]interface{}
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "CreateUser")
	defer span.End()

	var req createUserRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.CreateUser(ctx, req.Email, req.DisplayName)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to create user")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, u)
}

// GetUser godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        userID path string true "User ID"
// @Success      200 {object} types.User
// @Failure      404 {object} map[string]interface{}
// @Router       /users/{userID} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "GetUser")
	defer span.End()

	id, err := userIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	u, err := h.service.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "user not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, u)
}

// GetTravelHistory godoc
// @Summary      List travel history
// @Tags         users
// @Produce      json
// @Param        userID path string true "User ID"
// @Success      200 {array} types.TravelHistoryEntry
// @Router       /users/{userID}/history [get]
func (h *Handler) GetTravelHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "GetTravelHistory")
	defer span.End()

	id, err := userIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	entries, err := h.service.GetTravelHistory(ctx, id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch travel history")
		return
	}
	if entries == nil {
		entries = []types.TravelHistoryEntry{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, entries)
}

type recordVisitRequest struct {
	CityID int `json:"city_id"`
}

// RecordVisit godoc
// @Summary      Record a city visit
// @Tags         users
// @Accept       json
// @Param        userID path string true "User ID"
// @Param        body body recordVisitRequest true "Visit"
// @Success      204
// @Router       /users/{userID}/history [post]
func (h *Handler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "RecordVisit")
	defer span.End()

	id, err := userIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req recordVisitRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.CityID <= 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city_id must be a positive city id")
		return
	}

	if err := h.service.RecordVisit(ctx, id, req.CityID); err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to record visit")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// GetAttractionRatings godoc
// @Summary      List attraction ratings
// @Tags         users
// @Produce      json
// @Param        userID path string true "User ID"
// @Success      200 {array} types.AttractionRating
// @Router       /users/{userID}/ratings [get]
func (h *Handler) GetAttractionRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "GetAttractionRatings")
	defer span.End()

	id, err := userIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	ratings, err := h.service.GetAttractionRatings(ctx, id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch ratings")
		return
	}
	if ratings == nil {
		ratings = []types.AttractionRating{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, ratings)
}

// RateAttraction godoc
// @Summary      Rate an attraction
// @Description  Creates or replaces the user's rating of an attraction
// @Tags         users
// @Accept       json
// @Param        userID path string true "User ID"
// @Param        body body types.CreateAttractionRatingParams true "Rating"
// @Success      204
// @Failure      400 {object} map[string]interface{}
// @Router       /users/{userID}/ratings [post]
func (h *Handler) RateAttraction(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("UserHandler").Start(r.Context(), "RateAttraction")
	defer span.End()

	id, err := userIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	var params types.CreateAttractionRatingParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RateAttraction(ctx, id, params); err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to save rating")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
