// internals/features/veiculos/controller/veiculo_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alocController "voluntariado_backend/internals/features/alocacoes/controller"
	"voluntariado_backend/internals/features/alocacoes/service"
	veiculoDTO "voluntariado_backend/internals/features/veiculos/dto"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	"voluntariado_backend/internals/constants"
	helper "voluntariado_backend/internals/helpers"
)

type VeiculoController struct {
	DB *gorm.DB
}

// CREATE
// POST /veiculos
func (h *VeiculoController) Create(c *fiber.Ctx) error {
	var req veiculoDTO.CreateVeiculoRequest
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

	var criado veiculoModel.VeiculoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Unscoped().Model(&veiculoModel.VeiculoModel{}).
			Where("veiculo_placa = ?", req.Placa).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de placa")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "uq_veiculos_placa") || strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao cadastrar veículo")
		}
		criado = m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar veículo")
	}

	return helper.JsonCreated(c, "Veículo cadastrado com sucesso", veiculoDTO.FromVeiculoModel(criado))
}

// GET BY ID
// GET /veiculos/:id[?with_deleted=true]
func (h *VeiculoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		q = q.Unscoped()
	}

	var m veiculoModel.VeiculoModel
	if err := q.First(&m, "veiculo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Veículo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar veículo")
	}

	return helper.JsonOK(c, "Veículo encontrado", veiculoDTO.FromVeiculoModel(m))
}

// LIST
// GET /veiculos?q=&tipo=&status=&with_deleted=&page=&per_page=
func (h *VeiculoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&veiculoModel.VeiculoModel{})
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		tx = tx.Unscoped()
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(veiculo_nome) LIKE ? OR LOWER(veiculo_placa) LIKE ?)", kw, kw)
	}
	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		tx = tx.Where("veiculo_tipo = ?", tipo)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("veiculo_status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar veículos")
	}

	var rows []veiculoModel.VeiculoModel
	if err := tx.Order("veiculo_nome ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar veículos")
	}

	return helper.JsonList(c, "", veiculoDTO.FromVeiculoModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// UPDATE (parcial)
// PUT /veiculos/:id
func (h *VeiculoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req veiculoDTO.UpdateVeiculoRequest
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

	var atualizado veiculoModel.VeiculoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m veiculoModel.VeiculoModel
		if err := tx.First(&m, "veiculo_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Veículo não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar veículo")
		}

		if req.Placa != nil && *req.Placa != m.VeiculoPlaca {
			var cnt int64
			if err := tx.Unscoped().Model(&veiculoModel.VeiculoModel{}).
				Where("veiculo_placa = ? AND veiculo_id <> ?", *req.Placa, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de placa")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Placa já cadastrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar veículo")
		}
		atualizado = m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar veículo")
	}

	return helper.JsonUpdated(c, "Veículo atualizado com sucesso", veiculoDTO.FromVeiculoModel(atualizado))
}

// DELETE (soft)
// DELETE /veiculos/:id
// Bloqueado se o veículo tem alocação viva em evento futuro.
func (h *VeiculoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var removido veiculoModel.VeiculoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m veiculoModel.VeiculoModel
		if err := tx.First(&m, "veiculo_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Veículo não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar veículo")
		}
		if err := service.GuardaExclusaoVeiculo(tx, id, time.Now()); err != nil {
			return err
		}
		if err := tx.Delete(&veiculoModel.VeiculoModel{}, "veiculo_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir veículo")
		}
		removido = m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return alocController.JsonServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Veículo excluído com sucesso", veiculoDTO.FromVeiculoModel(removido))
}

// REACTIVATE
// POST /veiculos/:id/reativar
// Limpa o soft delete e volta o status para "disponivel".
func (h *VeiculoController) Reativar(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m veiculoModel.VeiculoModel
	if err := h.DB.Unscoped().First(&m, "veiculo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Veículo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar veículo")
	}
	if !m.VeiculoDeletedAt.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Veículo não está excluído")
	}

	if err := h.DB.Unscoped().Model(&veiculoModel.VeiculoModel{}).
		Where("veiculo_id = ?", id).
		Updates(map[string]interface{}{
			"veiculo_deleted_at": nil,
			"veiculo_status":     constants.StatusVeiculoDisponivel,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao reativar veículo")
	}

	m.VeiculoDeletedAt = gorm.DeletedAt{}
	m.VeiculoStatus = constants.StatusVeiculoDisponivel
	return helper.JsonUpdated(c, "Veículo reativado com sucesso", veiculoDTO.FromVeiculoModel(m))
}
