package main

import (
	_ "tripwatch/docs"
	"tripwatch/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tripwatch API
// @version         1.0
// @description     Travel price-check service: concurrent flight/hotel/car lookups with budget evaluation, backed by a web-search gateway and DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
