package api

import (
	"context"
	"log"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/highlevel/internal/actions"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
	"github.com/ethanbaker/highlevel/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	actions_module "github.com/ethanbaker/highlevel/internal/api/modules/actions"
	health_module "github.com/ethanbaker/highlevel/internal/api/modules/health"
)

// NewEngine builds the runner's gin engine serving reg
func NewEngine(cfg *utils.Config, reg *action.Registry) *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault(utils.KeyCORSAllowedOrigins, "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	health_module.RegisterRoutes(baseGroup)

	actions_module.RegisterRoutes(baseGroup, cfg)
	actions_module.Init(reg)

	return engine
}

// Start connects to HighLevel and serves every action until the server stops
func Start(cfg *utils.Config) {
	port := cfg.GetWithDefault(utils.KeyAPIPort, utils.DefaultAPIPort)

	app, err := highlevel.NewClientFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to create HighLevel client: ", err)
	}

	reg, err := actions.NewRegistry(app)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to register actions: ", err)
	}

	engine := NewEngine(cfg, reg)

	log.Printf("[API-MAIN]: Serving %d actions for location %s on :%s", len(reg.List()), app.GetLocationID(), port)
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
