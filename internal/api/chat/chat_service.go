package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/safarnameh/go-iran-travel-suggestions/app/observability/metrics"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/city"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/recommendation"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the conversational front-end. It classifies a message,
// translates it into a structured recommendation request when possible and
// renders a reply in the caller's language. The engine itself never sees
// raw text.
type Service interface {
	ProcessMessage(ctx context.Context, req types.ChatMessageRequest) (*types.ChatMessageResponse, error)
	GetConversationMessages(ctx context.Context, conversationID, userID string) ([]types.ChatMessage, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	repo        Repository
	classifier  IntentClassifier
	cityService city.Service
	engine      recommendation.Service
}

func NewServiceImpl(
	repo Repository,
	classifier IntentClassifier,
	cityService city.Service,
	engine recommendation.Service,
	logger *slog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		repo:        repo,
		classifier:  classifier,
		cityService: cityService,
		engine:      engine,
	}
}

// Seasons map onto a representative month so a "spring trip" question can
// still drive the seasonal parts of the engine.
var seasonMonth = map[types.Season]time.Month{
	types.SeasonSpring: time.April,
	types.SeasonSummer: time.July,
	types.SeasonFall:   time.October,
	types.SeasonWinter: time.January,
}

func (s *ServiceImpl) ProcessMessage(ctx context.Context, req types.ChatMessageRequest) (*types.ChatMessageResponse, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "ProcessMessage")
	defer span.End()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, &types.InvalidRequestError{Field: "message", Reason: "must not be empty"}
	}

	l := s.logger.With(slog.String("method", "ProcessMessage"), slog.String("userID", req.UserID.String()))

	conversation, err := s.resolveConversation(ctx, req, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve conversation")
		return nil, err
	}

	cities, err := s.cityService.GetAllCities(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load city dictionary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load cities")
		return nil, err
	}

	classified := s.classifier.Classify(message, cities)
	span.SetAttributes(
		attribute.String("chat.intent", string(classified.Intent)),
		attribute.Float64("chat.confidence", classified.Confidence),
	)

	response, rec := s.respond(ctx, classified, req)

	entitiesJSON, err := json.Marshal(classified.Entities)
	if err != nil {
		entitiesJSON = []byte("{}")
	}
	if _, err := s.repo.SaveMessage(ctx, types.ChatMessage{
		ConversationID: conversation.ID,
		Message:        message,
		Response:       response,
		Intent:         classified.Intent,
		EntitiesJSON:   string(entitiesJSON),
		Confidence:     classified.Confidence,
	}); err != nil {
		// The reply is still useful even if history persistence failed.
		l.WarnContext(ctx, "Failed to persist chat message", slog.Any("error", err))
	}

	metrics.Get().ChatMessagesTotal.Add(ctx, 1)
	return &types.ChatMessageResponse{
		ConversationID: conversation.ID,
		Intent:         classified.Intent,
		Confidence:     classified.Confidence,
		Response:       response,
		Recommendation: rec,
	}, nil
}

func (s *ServiceImpl) resolveConversation(ctx context.Context, req types.ChatMessageRequest, message string) (*types.ChatConversation, error) {
	if req.ConversationID != nil {
		conversation, err := s.repo.GetConversation(ctx, *req.ConversationID)
		if err != nil {
			return nil, err
		}
		if conversation == nil {
			return nil, &types.NotFoundError{Field: "conversation", Key: req.ConversationID.String()}
		}
		if conversation.UserID != req.UserID {
			return nil, &types.InvalidRequestError{Field: "conversation_id", Reason: "conversation belongs to another user"}
		}
		return conversation, nil
	}

	title := message
	if len([]rune(title)) > 60 {
		title = string([]rune(title)[:60])
	}
	return s.repo.CreateConversation(ctx, req.UserID, title)
}

// respond renders a reply for the classified intent. Intents that name an
// origin and destination run the engine; everything else gets a guidance
// reply in the detected language.
func (s *ServiceImpl) respond(ctx context.Context, classified types.ClassifiedIntent, req types.ChatMessageRequest) (string, *types.RecommendationResult) {
	e := classified.Entities
	fa := e.Language == "fa"

	switch classified.Intent {
	case types.IntentGreeting:
		if fa {
			return "سلام! برای برنامه‌ریزی سفر در ایران، مبدا و مقصد خود را بگویید.", nil
		}
		return "Hello! Tell me your origin and destination and I will plan your trip across Iran.", nil

	case types.IntentRouteRequest, types.IntentPilgrimageRequest, types.IntentAttractionRequest,
		types.IntentSeasonalPlanning, types.IntentBudgetRequest:
		if e.OriginCity == "" || e.DestinationCity == "" {
			if fa {
				return "لطفاً مبدا و مقصد سفر خود را مشخص کنید.", nil
			}
			return "Please name both the origin and the destination of your trip.", nil
		}
		recReq := types.RecommendationRequest{
			Origin:              e.OriginCity,
			Destination:         e.DestinationCity,
			CategoryPreferences: e.Categories,
		}
		if req.UserID != uuid.Nil {
			recReq.UserID = &req.UserID
		}
		if e.BudgetTier != "" {
			if tier, ok := types.ParseBudgetTier(e.BudgetTier); ok {
				recReq.BudgetTier = tier
			}
		}
		if e.Season != "" {
			if month, ok := seasonMonth[e.Season]; ok {
				date := time.Date(time.Now().Year(), month, 15, 0, 0, 0, 0, time.UTC)
				recReq.TravelDate = &date
			}
		}

		result, err := s.engine.GetRecommendations(ctx, recReq)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidRequest) {
				if fa {
					return "متاسفانه شهرهای درخواستی را پیدا نکردم. لطفاً نام شهرها را بررسی کنید.", nil
				}
				return "I could not resolve those cities. Please check the city names.", nil
			}
			s.logger.ErrorContext(ctx, "Engine call from chat failed", slog.Any("error", err))
			if fa {
				return "در حال حاضر امکان پردازش درخواست وجود ندارد. لطفاً دوباره تلاش کنید.", nil
			}
			return "I cannot process that request right now. Please try again.", nil
		}
		return renderSummary(result, fa), result

	case types.IntentFoodRequest:
		if fa {
			return "برای پیشنهاد رستوران، شهر مقصد را مشخص کنید.", nil
		}
		return "Tell me which city you are visiting and I will suggest restaurants.", nil

	case types.IntentAccommodationRequest:
		if fa {
			return "برای پیشنهاد اقامتگاه، شهر مقصد را مشخص کنید.", nil
		}
		return "Tell me which city you are visiting and I will suggest places to stay.", nil

	default:
		if fa {
			return "لطفاً سوال خود را واضح‌تر مطرح کنید. من می‌توانم در مورد مسیر، هزینه، فصل و جاذبه‌ها کمک کنم.", nil
		}
		return "Please rephrase your question. I can help with routes, costs, seasons and attractions.", nil
	}
}

func renderSummary(result *types.RecommendationResult, fa bool) string {
	var sb strings.Builder
	if fa {
		fmt.Fprintf(&sb, "سفر از %s به %s", result.Origin.NameFa, result.Destination.NameFa)
		if result.Route != nil {
			fmt.Fprintf(&sb, "، حدود %.0f کیلومتر و %.1f ساعت با خودرو", result.Route.DistanceKm, result.Route.DurationHours)
		}
		sb.WriteString(".")
		if len(result.TransportOptions) > 0 {
			best := result.TransportOptions[0]
			fmt.Fprintf(&sb, " بهترین گزینه: %s با هزینه %d تومان.", best.Mode, best.CostToman)
		}
		if len(result.Attractions) > 0 {
			fmt.Fprintf(&sb, " جاذبه برتر: %s.", result.Attractions[0].NameFa)
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "Trip from %s to %s", result.Origin.NameEn, result.Destination.NameEn)
	if result.Route != nil {
		fmt.Fprintf(&sb, ", about %.0f km and %.1f hours by car", result.Route.DistanceKm, result.Route.DurationHours)
	}
	sb.WriteString(".")
	if len(result.TransportOptions) > 0 {
		best := result.TransportOptions[0]
		fmt.Fprintf(&sb, " Best option: %s at %d toman.", best.Mode, best.CostToman)
	}
	if len(result.Attractions) > 0 {
		fmt.Fprintf(&sb, " Top attraction: %s.", result.Attractions[0].NameEn)
	}
	return sb.String()
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &types.InvalidRequestError{Field: field, Reason: "must be a valid UUID"}
	}
	return id, nil
}

func (s *ServiceImpl) GetConversationMessages(ctx context.Context, conversationID, userID string) ([]types.ChatMessage, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "GetConversationMessages")
	defer span.End()

	cid, err := parseUUID(conversationID, "conversation_id")
	if err != nil {
		return nil, err
	}
	uid, err := parseUUID(userID, "user_id")
	if err != nil {
		return nil, err
	}

	conversation, err := s.repo.GetConversation(ctx, cid)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch conversation")
		return nil, err
	}
	if conversation == nil {
		return nil, &types.NotFoundError{Field: "conversation", Key: conversationID}
	}
	if conversation.UserID != uid {
		return nil, &types.InvalidRequestError{Field: "user_id", Reason: "conversation belongs to another user"}
	}
	return s.repo.ListMessages(ctx, cid)
}
