package main

import (
	_ "notaria_backoffice/docs"
	"notaria_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Notaría Back-Office API
// @version         1.0
// @description     Escrituras, presupuestos y notificaciones de recibo, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
