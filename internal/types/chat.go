package types

import (
	"time"

	"github.com/google/uuid"
)

// IntentType is the closed set of intents the chat front-end can map a
// message to. The recommendation engine never sees raw text; the classifier
// translates a message into a structured request first.
type IntentType string

const (
	IntentRouteRequest         IntentType = "route_request"
	IntentAttractionRequest    IntentType = "attraction_request"
	IntentPilgrimageRequest    IntentType = "pilgrimage_request"
	IntentSeasonalPlanning     IntentType = "seasonal_planning_request"
	IntentBudgetRequest        IntentType = "budget_request"
	IntentFoodRequest          IntentType = "food_request"
	IntentAccommodationRequest IntentType = "accommodation_request"
	IntentGreeting             IntentType = "greeting"
	IntentUnknown              IntentType = "unknown"
)

// ExtractedEntities is what the classifier pulled out of a message.
type ExtractedEntities struct {
	OriginCity      string   `json:"origin_city,omitempty"`
	DestinationCity string   `json:"destination_city,omitempty"`
	Cities          []string `json:"cities,omitempty"`
	Attraction      string   `json:"attraction,omitempty"`
	Month           int      `json:"month,omitempty"`
	Season          Season   `json:"season,omitempty"`
	BudgetTier      string   `json:"budget_tier,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Language        string   `json:"language"` // "fa" or "en"
}

// ClassifiedIntent is the classifier output.
type ClassifiedIntent struct {
	Intent     IntentType        `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   ExtractedEntities `json:"entities"`
}

// ChatConversation groups messages from one user session.
type ChatConversation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage stores one exchange: the user's text, the rendered answer and
// the classification that produced it.
type ChatMessage struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	Message        string     `json:"message"`
	Response       string     `json:"response"`
	Intent         IntentType `json:"intent"`
	EntitiesJSON   string     `json:"entities,omitempty"`
	Confidence     float64    `json:"confidence"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ChatMessageRequest is the POST body for /chat/message.
type ChatMessageRequest struct {
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	UserID         uuid.UUID  `json:"user_id"`
	Message        string     `json:"message"`
}

// ChatMessageResponse is the rendered reply plus the structured result the
// front-end can use for the map view.
type ChatMessageResponse struct {
	ConversationID uuid.UUID             `json:"conversation_id"`
	Intent         IntentType            `json:"intent"`
	Confidence     float64               `json:"confidence"`
	Response       string                `json:"response"`
	Recommendation *RecommendationResult `json:"recommendation,omitempty"`
}
