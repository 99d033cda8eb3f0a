// internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashController "voluntariado_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &dashController.DashboardController{DB: db}

	r.Get("/dashboard", ctrl.Resumo)
	r.Get("/catalogos", ctrl.Catalogos)
}
