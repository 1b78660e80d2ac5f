package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/attraction"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/chat"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/city"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/recommendation"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/route"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/user"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	CityHandler           *city.Handler
	AttractionHandler     *attraction.Handler
	RouteHandler          *route.Handler
	UserHandler           *user.Handler
	RecommendationHandler *recommendation.Handler
	ChatHandler           *chat.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied before
// mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cities", cfg.CityHandler.GetAllCities)
		r.Get("/cities/{cityID}", cfg.CityHandler.GetCityDetail)
		r.Get("/cities/{cityID}/weather", cfg.CityHandler.GetCityWeather)
		r.Get("/cities/{cityID}/events", cfg.CityHandler.GetCityEvents)
		r.Get("/cities/{cityID}/attractions", cfg.AttractionHandler.GetCityAttractions)
		r.Get("/cities/{cityID}/accommodations", cfg.AttractionHandler.GetCityAccommodations)
		r.Get("/cities/{cityID}/restaurants", cfg.AttractionHandler.GetCityRestaurants)

		r.Get("/attractions/{attractionID}", cfg.AttractionHandler.GetAttractionDetail)

		r.Get("/routes/{originID}/{destinationID}", cfg.RouteHandler.GetRouteSegment)
		r.Get("/routes/{originID}/{destinationID}/transport", cfg.RouteHandler.GetTransportOptions)

		r.Post("/recommendations", cfg.RecommendationHandler.GetRecommendations)

		r.Get("/map/points", cfg.CityHandler.GetMapPoints)

		r.Post("/users", cfg.UserHandler.CreateUser)
		r.Get("/users/{userID}", cfg.UserHandler.GetUser)
		r.Get("/users/{userID}/history", cfg.UserHandler.GetTravelHistory)
		r.Post("/users/{userID}/history", cfg.UserHandler.RecordVisit)
		r.Get("/users/{userID}/ratings", cfg.UserHandler.GetAttractionRatings)
		r.Post("/users/{userID}/ratings", cfg.UserHandler.RateAttraction)

		r.Post("/chat/message", cfg.ChatHandler.SendMessage)
		r.Get("/chat/conversations/{conversationID}/messages", cfg.ChatHandler.GetConversationMessages)
	})

	return r
}
