package main

import (
	"os"

	_ "orcafacil/docs"
	"orcafacil/internal/adapter/http/routes"
	"orcafacil/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

const defaultConfigPath = "config.yaml"

// @title           OrcaFacil API
// @version         1.0
// @description     Budget and quote management (budgets + PDF generation) backed by DynamoDB and S3.
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
// @description Type "Bearer" followed by a space and the session token.

func main() {
	path := os.Getenv("ORCAFACIL_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
