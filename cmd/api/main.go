package main

import (
	"github.com/ethanbaker/highlevel/internal/api"
	"github.com/ethanbaker/highlevel/pkg/utils"
)

// Start the action runner
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	// Start
	api.Start(cfg)
}
