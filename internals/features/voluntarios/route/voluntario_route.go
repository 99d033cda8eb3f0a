// internals/features/voluntarios/route/voluntario_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voluntarioController "voluntariado_backend/internals/features/voluntarios/controller"
	"voluntariado_backend/internals/middlewares"
)

/*
Rotas de voluntários: CRUD + reativação.
Montagem: VoluntarioRoutes(app.Group("/api/a"), db)
*/
func VoluntarioRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &voluntarioController.VoluntarioController{DB: db}

	voluntarios := r.Group("/voluntarios")
	voluntarios.Post("/", middlewares.CadastroRateLimiter(), ctl.Create) // POST   /api/a/voluntarios
	voluntarios.Get("/", ctl.List)                                       // GET    /api/a/voluntarios
	voluntarios.Get("/:id", ctl.GetByID)                                 // GET    /api/a/voluntarios/:id
	voluntarios.Put("/:id", ctl.Update)                                  // PUT    /api/a/voluntarios/:id
	voluntarios.Delete("/:id", ctl.Delete)                               // DELETE /api/a/voluntarios/:id
	voluntarios.Post("/:id/reativar", ctl.Reativar)                      // POST   /api/a/voluntarios/:id/reativar
}
