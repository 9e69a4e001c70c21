package main

import (
	_ "maisonpro_dispatch/docs"
	"maisonpro_dispatch/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dispatch Dashboard API
// @version         1.0
// @description     Field-service dispatch core (jobs, technicians, invoicing, quote intake) backed by an in-memory store with a DynamoDB quote archive.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
