// internals/features/eventos/route/evento_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventoController "voluntariado_backend/internals/features/eventos/controller"
)

// EventoRoutes monta o CRUD de eventos + cancelamento, reativação e calendário.
func EventoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &eventoController.EventoController{DB: db}

	grupo := r.Group("/eventos")
	grupo.Get("/calendario", ctrl.Calendario) // antes de /:id
	grupo.Post("/", ctrl.Create)
	grupo.Get("/", ctrl.List)
	grupo.Get("/:id", ctrl.GetByID)
	grupo.Get("/:id/detalhe", ctrl.Detalhe)
	grupo.Get("/:id/estatisticas", ctrl.Estatisticas)
	grupo.Put("/:id", ctrl.Update)
	grupo.Post("/:id/cancelar", ctrl.Cancelar)
	grupo.Post("/:id/reativar", ctrl.Reativar)
	grupo.Delete("/:id", ctrl.Delete)
}
