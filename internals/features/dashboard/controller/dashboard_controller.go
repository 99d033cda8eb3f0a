// internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/constants"
	eventoDTO "voluntariado_backend/internals/features/eventos/dto"
	eventoModel "voluntariado_backend/internals/features/eventos/model"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
	helper "voluntariado_backend/internals/helpers"
	"voluntariado_backend/internals/helpers/dbtime"
)

type DashboardController struct {
	DB *gorm.DB
}

// RESUMO
// GET /dashboard
// Números do painel administrativo: totais, eventos por status e os
// próximos eventos agendados.
func (h *DashboardController) Resumo(c *fiber.Ctx) error {
	hoje := dbtime.SomenteData(time.Now())

	var totalVoluntarios int64
	if err := h.DB.Model(&voluntarioModel.VoluntarioModel{}).
		Where("voluntario_status = ?", constants.StatusVoluntarioAtivo).
		Count(&totalVoluntarios).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o painel")
	}

	var totalVeiculos int64
	if err := h.DB.Model(&veiculoModel.VeiculoModel{}).
		Where("veiculo_status = ?", constants.StatusVeiculoDisponivel).
		Count(&totalVeiculos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o painel")
	}

	var eventosFuturos int64
	if err := h.DB.Model(&eventoModel.EventoModel{}).
		Where("evento_data >= ?", hoje).
		Where("evento_status NOT IN ?", []string{
			constants.StatusEventoConcluido, constants.StatusEventoCancelado,
		}).
		Count(&eventosFuturos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o painel")
	}

	type porStatus struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}
	var ps []porStatus
	if err := h.DB.Model(&eventoModel.EventoModel{}).
		Select("evento_status AS status, COUNT(*) AS total").
		Group("evento_status").
		Scan(&ps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o painel")
	}
	eventosPorStatus := map[string]int64{}
	for _, p := range ps {
		eventosPorStatus[p.Status] = p.Total
	}

	var proximos []eventoModel.EventoModel
	if err := h.DB.
		Where("evento_data >= ?", hoje).
		Where("evento_status NOT IN ?", []string{
			constants.StatusEventoConcluido, constants.StatusEventoCancelado,
		}).
		Order("evento_data ASC, evento_hora_inicio ASC").
		Limit(5).
		Find(&proximos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o painel")
	}

	return helper.JsonOK(c, "Painel administrativo", fiber.Map{
		"voluntarios_ativos":   totalVoluntarios,
		"veiculos_disponiveis": totalVeiculos,
		"eventos_futuros":      eventosFuturos,
		"eventos_por_status":   eventosPorStatus,
		"proximos_eventos":     eventoDTO.FromEventoModels(proximos),
	})
}

// CATÁLOGOS
// GET /catalogos
// Domínios fixos para os selects do front (agências, tamanhos, funções...).
func (h *DashboardController) Catalogos(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Catálogos do domínio", fiber.Map{
		"agencias":          constants.Agencias,
		"tamanhos_camiseta": constants.TamanhosCamiseta,
		"tipos_veiculo":     constants.TiposVeiculo,
		"funcoes":           constants.Funcoes,
		"status_voluntario": constants.StatusVoluntario,
		"status_veiculo": []string{
			constants.StatusVeiculoDisponivel,
			constants.StatusVeiculoManutencao,
			constants.StatusVeiculoIndisponivel,
		},
		"status_evento":   constants.StatusEvento,
		"status_presenca": constants.StatusPresenca,
	})
}
