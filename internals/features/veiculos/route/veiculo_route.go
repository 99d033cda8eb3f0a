// internals/features/veiculos/route/veiculo_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	veiculoController "voluntariado_backend/internals/features/veiculos/controller"
)

/*
Rotas da frota: CRUD + reativação.
*/
func VeiculoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &veiculoController.VeiculoController{DB: db}

	veiculos := r.Group("/veiculos")
	veiculos.Post("/", ctl.Create)                // POST   /api/a/veiculos
	veiculos.Get("/", ctl.List)                   // GET    /api/a/veiculos
	veiculos.Get("/:id", ctl.GetByID)             // GET    /api/a/veiculos/:id
	veiculos.Put("/:id", ctl.Update)              // PUT    /api/a/veiculos/:id
	veiculos.Delete("/:id", ctl.Delete)           // DELETE /api/a/veiculos/:id
	veiculos.Post("/:id/reativar", ctl.Reativar)  // POST   /api/a/veiculos/:id/reativar
}
