// internals/features/alocacoes/controller/disponibilidade_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntariado_backend/internals/features/alocacoes/service"
	veiculoDTO "voluntariado_backend/internals/features/veiculos/dto"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioDTO "voluntariado_backend/internals/features/voluntarios/dto"
	helper "voluntariado_backend/internals/helpers"
	"voluntariado_backend/internals/helpers/dbtime"
)

// DisponibilidadeController expõe as consultas de agenda (leitura pura).
type DisponibilidadeController struct {
	DB *gorm.DB
}

// janelaQuery lê ?data=YYYY-MM-DD&inicio=HH:MM&fim=HH:MM.
func janelaQuery(c *fiber.Ctx) (time.Time, dbtime.Tod, dbtime.Tod, map[string][]string) {
	errs := map[string][]string{}
	var (
		data   time.Time
		inicio dbtime.Tod
		fim    dbtime.Tod
	)

	d, err := dbtime.ParseData(strings.TrimSpace(c.Query("data")))
	if err != nil {
		errs["data"] = append(errs["data"], "data inválida (use YYYY-MM-DD)")
	} else {
		data = d
	}
	hi, err := dbtime.Parse(strings.TrimSpace(c.Query("inicio")))
	if err != nil {
		errs["inicio"] = append(errs["inicio"], "horário inválido (use HH:MM)")
	} else {
		inicio = hi
	}
	hf, err := dbtime.Parse(strings.TrimSpace(c.Query("fim")))
	if err != nil {
		errs["fim"] = append(errs["fim"], "horário inválido (use HH:MM)")
	} else {
		fim = hf
	}
	if len(errs) == 0 && !inicio.Time.Before(fim.Time) {
		errs["fim"] = append(errs["fim"], "fim deve ser depois do início")
	}

	if len(errs) == 0 {
		return data, inicio, fim, nil
	}
	return data, inicio, fim, errs
}

// ignorarEventoQuery lê ?ignorar_evento=<uuid> (para reagendamento).
func ignorarEventoQuery(c *fiber.Ctx) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query("ignorar_evento"))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// CHECAR VOLUNTÁRIO
// GET /disponibilidade/voluntarios/:id?data=&inicio=&fim=[&ignorar_evento=]
// Devolve disponível true/false e, se ocupado, o evento que bloqueia.
func (h *DisponibilidadeController) ChecarVoluntario(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	data, inicio, fim, errs := janelaQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	ignorar, ok := ignorarEventoQuery(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ignorar_evento inválido")
	}

	conflito, err := service.ConflitoVoluntario(h.DB, id, data, inicio, fim, ignorar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao consultar disponibilidade")
	}

	return helper.JsonOK(c, "Disponibilidade do voluntário", fiber.Map{
		"disponivel": conflito == nil,
		"conflito":   conflito,
	})
}

// CHECAR VEÍCULO
// GET /disponibilidade/veiculos/:id?data=&inicio=&fim=[&ignorar_evento=]
func (h *DisponibilidadeController) ChecarVeiculo(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	data, inicio, fim, errs := janelaQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	ignorar, ok := ignorarEventoQuery(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ignorar_evento inválido")
	}

	var v veiculoModel.VeiculoModel
	if err := h.DB.First(&v, "veiculo_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Veículo não encontrado")
	}

	disponivel, err := service.VeiculoDisponivel(h.DB, &v, data, inicio, fim, ignorar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao consultar disponibilidade")
	}

	var conflito *service.ConflitoEvento
	if !disponivel {
		conflito, err = service.ConflitoVeiculo(h.DB, id, data, inicio, fim, ignorar)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao consultar disponibilidade")
		}
	}

	return helper.JsonOK(c, "Disponibilidade do veículo", fiber.Map{
		"disponivel": disponivel,
		"status":     v.VeiculoStatus,
		"conflito":   conflito,
	})
}

// VOLUNTÁRIOS LIVRES
// GET /disponibilidade/voluntarios?data=&inicio=&fim=
func (h *DisponibilidadeController) VoluntariosDisponiveis(c *fiber.Ctx) error {
	data, inicio, fim, errs := janelaQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	livres, err := service.VoluntariosDisponiveis(h.DB, data, inicio, fim)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar voluntários disponíveis")
	}

	return helper.JsonOK(c, "Voluntários disponíveis na janela", fiber.Map{
		"total":       len(livres),
		"voluntarios": voluntarioDTO.FromVoluntarioModels(livres),
	})
}

// VEÍCULOS LIVRES
// GET /disponibilidade/veiculos?data=&inicio=&fim=
func (h *DisponibilidadeController) VeiculosDisponiveis(c *fiber.Ctx) error {
	data, inicio, fim, errs := janelaQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	livres, err := service.VeiculosDisponiveis(h.DB, data, inicio, fim)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar veículos disponíveis")
	}

	return helper.JsonOK(c, "Veículos disponíveis na janela", fiber.Map{
		"total":    len(livres),
		"veiculos": veiculoDTO.FromVeiculoModels(livres),
	})
}
