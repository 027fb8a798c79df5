package actions_module

import (
	"fmt"
	"log"

	"github.com/ethanbaker/api/pkg/api_key"
	"github.com/ethanbaker/highlevel/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Register routes for the actions module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	validator, err := makeApiKeyValidator(cfg)
	if err != nil {
		log.Fatalf("failed to create API key validator: %v", err)
	}

	group := g.Group("/actions")
	group.Handlers = append(group.Handlers, api_key.APIKeyHeaderHandler(validator))

	group.GET("", ListActions)                                  // List every action definition
	group.GET("/:key", GetAction)                               // Get one action definition
	group.POST("/:key/props", ResolveProps)                     // Resolve the schema for the given values
	group.POST("/:key/props/:prop/options", ResolvePropOptions) // Load the options of one prop
	group.POST("/:key/run", RunAction)                          // Run the action
}

// makeApiKeyValidator checks if the provided API key is valid
func makeApiKeyValidator(cfg *utils.Config) (func(key string) bool, error) {
	apiKey := cfg.Get(utils.KeyAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set in environment", utils.KeyAPIKey)
	}

	return func(key string) bool {
		return apiKey == key
	}, nil
}
