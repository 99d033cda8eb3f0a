// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alocRoute "voluntariado_backend/internals/features/alocacoes/route"
	dashRoute "voluntariado_backend/internals/features/dashboard/route"
	eventoRoute "voluntariado_backend/internals/features/eventos/route"
	veiculoRoute "voluntariado_backend/internals/features/veiculos/route"
	voluntarioRoute "voluntariado_backend/internals/features/voluntarios/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// painel administrativo: tudo sob /api/a
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	log.Println("[INFO] Setting up VoluntarioRoutes...")
	voluntarioRoute.VoluntarioRoutes(admin, db)

	log.Println("[INFO] Setting up VeiculoRoutes...")
	veiculoRoute.VeiculoRoutes(admin, db)

	log.Println("[INFO] Setting up EventoRoutes...")
	eventoRoute.EventoRoutes(admin, db)

	log.Println("[INFO] Setting up AlocacaoRoutes...")
	alocRoute.AlocacaoRoutes(admin, db)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashRoute.DashboardRoutes(admin, db)
}
