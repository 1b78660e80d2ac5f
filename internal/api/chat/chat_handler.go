package chat

import (
	"errors"
	"log/slog"
	"net/http"

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

// SendMessage godoc
// @Summary      Send chat message
// @Description  Classifies the message, runs the recommendation engine when a trip can be extracted and returns a bilingual reply
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body body types.ChatMessageRequest true "Message"
// @Success      200 {object} types.ChatMessageResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /chat/message [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage")
	defer span.End()

	var req types.ChatMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.ProcessMessage(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidRequest):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			h.logger.ErrorContext(ctx, "Chat message failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to process message")
		}
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetConversationMessages godoc
// @Summary      List conversation messages
// @Tags         chat
// @Produce      json
// @Param        conversationID path string true "Conversation ID"
// @Param        user_id query string true "User ID"
// @Success      200 {array} types.ChatMessage
// @Failure      404 {object} map[string]interface{}
// @Router       /chat/conversations/{conversationID}/messages [get]
func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "GetConversationMessages")
	defer span.End()

	messages, err := h.service.GetConversationMessages(ctx,
		chi.URLParam(r, "conversationID"), r.URL.Query().Get("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidRequest):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to fetch messages")
		}
		return
	}
	if messages == nil {
		messages = []types.ChatMessage{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, messages)
}
