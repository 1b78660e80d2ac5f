package route

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

func pathIDs(r *http.Request) (int, int, error) {
	origin, err := strconv.Atoi(chi.URLParam(r, "originID"))
	if err != nil {
		return 0, 0, err
	}
	destination, err := strconv.Atoi(chi.URLParam(r, "destinationID"))
	if err != nil {
		return 0, 0, err
	}
	return origin, destination, nil
}

// GetRouteSegment godoc
// @Summary      Get route segment
// @Description  Returns the directed road segment between two cities
// @Tags         routes
// @Produce      json
// @Param        originID path int true "Origin city ID"
// @Param        destinationID path int true "Destination city ID"
// @Success      200 {object} types.RouteSegment
// @Failure      404 {object} map[string]interface{}
// @Router       /routes/{originID}/{destinationID} [get]
func (h *Handler) GetRouteSegment(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RouteHandler").Start(r.Context(), "GetRouteSegment")
	defer span.End()

	origin, destination, err := pathIDs(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	segment, err := h.service.GetRouteSegment(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch route segment")
		return
	}
	if segment == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "no route segment between these cities")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, segment)
}

// GetTransportOptions godoc
// @Summary      List transport options
// @Description  Returns all transport options between two cities, unranked
// @Tags         routes
// @Produce      json
// @Param        originID path int true "Origin city ID"
// @Param        destinationID path int true "Destination city ID"
// @Success      200 {array} types.TransportOption
// @Router       /routes/{originID}/{destinationID}/transport [get]
func (h *Handler) GetTransportOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RouteHandler").Start(r.Context(), "GetTransportOptions")
	defer span.End()

	origin, destination, err := pathIDs(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid city ID")
		return
	}

	options, err := h.service.GetTransportOptions(ctx, origin, destination)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch transport options")
		return
	}
	if options == nil {
		options = []types.TransportOption{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, options)
}
