package container

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/safarnameh/go-iran-travel-suggestions/app/db"
	"github.com/safarnameh/go-iran-travel-suggestions/config"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/attraction"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/chat"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/city"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/recommendation"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/route"
	"github.com/safarnameh/go-iran-travel-suggestions/internal/api/user"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	CityHandler           *city.Handler
	AttractionHandler     *attraction.Handler
	RouteHandler          *route.Handler
	UserHandler           *user.Handler
	RecommendationHandler *recommendation.Handler
	ChatHandler           *chat.Handler
}

// NewContainer initializes the database pool and wires repositories,
// services and handlers together.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	cityRepo := city.NewPostgresRepository(pool, logger)
	cityService := city.NewServiceImpl(cityRepo, logger)
	cityHandler := city.NewHandler(cityService, logger)

	attractionRepo := attraction.NewPostgresRepository(pool, logger)
	attractionService := attraction.NewServiceImpl(attractionRepo, logger)
	attractionHandler := attraction.NewHandler(attractionService, logger)

	routeRepo := route.NewPostgresRepository(pool, logger)
	routeService := route.NewServiceImpl(routeRepo, logger)
	routeHandler := route.NewHandler(routeService, logger)

	userRepo := user.NewPostgresRepository(pool, logger)
	userService := user.NewServiceImpl(userRepo, logger)
	userHandler := user.NewHandler(userService, logger)

	engine := recommendation.NewServiceImpl(
		cityService,
		attractionRepo,
		routeService,
		userService,
		cfg.Recommendation.MaxAttractions,
		cfg.Recommendation.MaxEvents,
		logger,
	)
	recommendationHandler := recommendation.NewHandler(engine, logger)

	chatRepo := chat.NewPostgresRepository(pool, logger)
	classifier := chat.NewPatternIntentClassifier()
	chatService := chat.NewServiceImpl(chatRepo, classifier, cityService, engine, logger)
	chatHandler := chat.NewHandler(chatService, logger)

	return &Container{
		Config:                cfg,
		Logger:                logger,
		Pool:                  pool,
		CityHandler:           cityHandler,
		AttractionHandler:     attractionHandler,
		RouteHandler:          routeHandler,
		UserHandler:           userHandler,
		RecommendationHandler: recommendationHandler,
		ChatHandler:           chatHandler,
	}, nil
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Logger.Info("Closing database connection pool")
		c.Pool.Close()
	}
}
