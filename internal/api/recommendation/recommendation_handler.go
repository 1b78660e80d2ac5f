package recommendation

import (
	"errors"
	"log/slog"
	"net/http"

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

// GetRecommendations godoc
// @Summary      Get travel recommendations
// @Description  Resolves an origin/destination pair into a ranked composite recommendation: route, transport, attractions, season fit, events and budget
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body body types.RecommendationRequest true "Travel request"
// @Success      200 {object} types.RecommendationResult
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /recommendations [post]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetRecommendations", trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.route", "/recommendations"),
	))
	defer span.End()

	var req types.RecommendationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.GetRecommendations(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidRequest):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			h.logger.ErrorContext(ctx, "Recommendation failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to build recommendation")
		}
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
