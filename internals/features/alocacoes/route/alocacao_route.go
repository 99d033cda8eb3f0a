// internals/features/alocacoes/route/alocacao_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alocController "voluntariado_backend/internals/features/alocacoes/controller"
)

// AlocacaoRoutes monta as alocações (evento × voluntário, evento × veículo)
// e as consultas de disponibilidade.
func AlocacaoRoutes(r fiber.Router, db *gorm.DB) {
	aloc := &alocController.AlocacaoController{DB: db}
	disp := &alocController.DisponibilidadeController{DB: db}

	// criação pendurada no evento
	r.Post("/eventos/:id/voluntarios", aloc.AlocarVoluntario)
	r.Post("/eventos/:id/veiculos", aloc.AlocarVeiculo)

	grupo := r.Group("/alocacoes")
	grupo.Put("/voluntarios/:id", aloc.EditarAlocacaoVoluntario)
	grupo.Patch("/voluntarios/:id/presenca", aloc.AtualizarPresenca)
	grupo.Delete("/voluntarios/:id", aloc.RemoverAlocacaoVoluntario)
	grupo.Delete("/veiculos/:id", aloc.RemoverAlocacaoVeiculo)

	agenda := r.Group("/disponibilidade")
	agenda.Get("/voluntarios", disp.VoluntariosDisponiveis)
	agenda.Get("/veiculos", disp.VeiculosDisponiveis)
	agenda.Get("/voluntarios/:id", disp.ChecarVoluntario)
	agenda.Get("/veiculos/:id", disp.ChecarVeiculo)
}
