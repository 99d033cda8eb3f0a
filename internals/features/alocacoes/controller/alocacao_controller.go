// internals/features/alocacoes/controller/alocacao_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alocDTO "voluntariado_backend/internals/features/alocacoes/dto"
	alocModel "voluntariado_backend/internals/features/alocacoes/model"
	"voluntariado_backend/internals/features/alocacoes/service"
	helper "voluntariado_backend/internals/helpers"
)

type AlocacaoController struct {
	DB *gorm.DB
}

// ALOCAR VOLUNTÁRIO
// POST /eventos/:id/voluntarios
// Duplicidade, conflito de horário e capacidade da carona são checados
// pelo service dentro da mesma transação.
func (h *AlocacaoController) AlocarVoluntario(c *fiber.Ctx) error {
	eventoID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de evento inválido")
	}

	var req alocDTO.AlocarVoluntarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.Normalize()
	if err := helper.Validate(c, req); err != nil {
		return err
	}
	if errs := req.ValidarDominio(); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	var criado *alocModel.VoluntarioEventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		criado, errSvc = service.AlocarVoluntario(tx, req.ToService(eventoID))
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonCreated(c, "Voluntário alocado no evento", alocDTO.FromVoluntarioEventoModel(*criado))
}

// REMOVER ALOCAÇÃO DE VOLUNTÁRIO
// DELETE /alocacoes/voluntarios/:id
func (h *AlocacaoController) RemoverAlocacaoVoluntario(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var removido *alocModel.VoluntarioEventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		removido, errSvc = service.RemoverAlocacaoVoluntario(tx, id)
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Alocação de voluntário removida", alocDTO.FromVoluntarioEventoModel(*removido))
}

// EDITAR ALOCAÇÃO DE VOLUNTÁRIO
// PUT /alocacoes/voluntarios/:id
// Troca função/carona; mudança de carona revalida capacidade.
func (h *AlocacaoController) EditarAlocacaoVoluntario(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req alocDTO.EditarAlocacaoVoluntarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.Normalize()
	if err := helper.Validate(c, req); err != nil {
		return err
	}

	var atualizado *alocModel.VoluntarioEventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		atualizado, errSvc = service.EditarAlocacaoVoluntario(tx, id, req.ToService())
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Alocação de voluntário atualizada", alocDTO.FromVoluntarioEventoModel(*atualizado))
}

// ATUALIZAR PRESENÇA
// PATCH /alocacoes/voluntarios/:id/presenca
func (h *AlocacaoController) AtualizarPresenca(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req alocDTO.AtualizarPresencaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Presenca = strings.TrimSpace(req.Presenca)
	if err := helper.Validate(c, req); err != nil {
		return err
	}

	var atualizado *alocModel.VoluntarioEventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		atualizado, errSvc = service.AtualizarPresenca(tx, id, req.Presenca)
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Presença atualizada", alocDTO.FromVoluntarioEventoModel(*atualizado))
}

// ALOCAR VEÍCULO
// POST /eventos/:id/veiculos
// Motorista (se informado) precisa já estar alocado no evento; a alocação
// dele passa a apontar para a carona criada.
func (h *AlocacaoController) AlocarVeiculo(c *fiber.Ctx) error {
	eventoID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de evento inválido")
	}

	var req alocDTO.AlocarVeiculoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.Normalize()
	if err := helper.Validate(c, req); err != nil {
		return err
	}

	var criado *alocModel.EventoVeiculoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		criado, errSvc = service.AlocarVeiculo(tx, req.ToService(eventoID))
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonCreated(c, "Veículo alocado no evento", alocDTO.FromEventoVeiculoModel(*criado))
}

// REMOVER ALOCAÇÃO DE VEÍCULO
// DELETE /alocacoes/veiculos/:id
// Os caroneiros são desvinculados (seguem alocados no evento, sem carona).
func (h *AlocacaoController) RemoverAlocacaoVeiculo(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var (
		removido      *alocModel.EventoVeiculoModel
		desvinculados int64
	)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		removido, desvinculados, errSvc = service.RemoverAlocacaoVeiculo(tx, id)
		return errSvc
	}); err != nil {
		return JsonServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Alocação de veículo removida", fiber.Map{
		"alocacao":                alocDTO.FromEventoVeiculoModel(*removido),
		"caroneiros_desvinculados": desvinculados,
	})
}
