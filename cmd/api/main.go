package main

import (
	"log"

	_ "oscell/docs"
	"oscell/internal/adapter/http/routes"
	"oscell/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OS Cell API
// @version         1.0
// @description     Work order numbering, printing and PDF download plus the per-user service ledger of a phone repair shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
