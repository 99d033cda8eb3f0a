// internals/features/voluntarios/controller/voluntario_controller.go
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
	voluntarioDTO "voluntariado_backend/internals/features/voluntarios/dto"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
	"voluntariado_backend/internals/constants"
	helper "voluntariado_backend/internals/helpers"
)

type VoluntarioController struct {
	DB *gorm.DB
}

// CREATE
// POST /voluntarios
func (h *VoluntarioController) Create(c *fiber.Ctx) error {
	var req voluntarioDTO.CreateVoluntarioRequest
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

	var criado voluntarioModel.VoluntarioModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// unicidade vale também contra soft-deleted (o cadastro pode ser reativado)
		var cnt int64
		if err := tx.Unscoped().Model(&voluntarioModel.VoluntarioModel{}).
			Where("voluntario_email_corporativo = ?", req.EmailCorporativo).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email corporativo já cadastrado")
		}

		cnt = 0
		if err := tx.Unscoped().Model(&voluntarioModel.VoluntarioModel{}).
			Where("voluntario_cpf = ?", req.CPF).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de CPF")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "CPF já cadastrado")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			switch {
			case strings.Contains(msg, "uq_voluntarios_email"):
				return fiber.NewError(fiber.StatusConflict, "Email corporativo já cadastrado")
			case strings.Contains(msg, "uq_voluntarios_cpf"):
				return fiber.NewError(fiber.StatusConflict, "CPF já cadastrado")
			case strings.Contains(msg, "duplicate"), strings.Contains(msg, "unique"):
				return fiber.NewError(fiber.StatusConflict, "Email ou CPF já cadastrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao cadastrar voluntário")
		}
		criado = m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar voluntário")
	}

	return helper.JsonCreated(c, "Voluntário cadastrado com sucesso", voluntarioDTO.FromVoluntarioModel(criado))
}

// GET BY ID
// GET /voluntarios/:id[?with_deleted=true]
func (h *VoluntarioController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		q = q.Unscoped()
	}

	var m voluntarioModel.VoluntarioModel
	if err := q.First(&m, "voluntario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar voluntário")
	}

	return helper.JsonOK(c, "Voluntário encontrado", voluntarioDTO.FromVoluntarioModel(m))
}

// LIST
// GET /voluntarios?q=&agencia=&status=&with_deleted=&page=&per_page=&order_by=&sort=
func (h *VoluntarioController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&voluntarioModel.VoluntarioModel{})
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		tx = tx.Unscoped()
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(voluntario_nome_completo) LIKE ? OR LOWER(voluntario_email_corporativo) LIKE ?)", kw, kw)
	}
	if ag := strings.TrimSpace(c.Query("agencia")); ag != "" {
		tx = tx.Where("voluntario_agencia = ?", ag)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("voluntario_status = ?", st)
	}

	orderBy := "voluntario_created_at"
	switch strings.ToLower(c.Query("order_by")) {
	case "nome":
		orderBy = "voluntario_nome_completo"
	case "email":
		orderBy = "voluntario_email_corporativo"
	case "agencia":
		orderBy = "voluntario_agencia"
	}
	sort := "DESC"
	if strings.EqualFold(c.Query("sort"), "asc") {
		sort = "ASC"
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar voluntários")
	}

	var rows []voluntarioModel.VoluntarioModel
	if err := tx.Order(orderBy + " " + sort).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar voluntários")
	}

	return helper.JsonList(c, "", voluntarioDTO.FromVoluntarioModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// UPDATE (parcial)
// PUT /voluntarios/:id
func (h *VoluntarioController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req voluntarioDTO.UpdateVoluntarioRequest
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

	var atualizado voluntarioModel.VoluntarioModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m voluntarioModel.VoluntarioModel
		if err := tx.First(&m, "voluntario_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Voluntário não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar voluntário")
		}

		if req.EmailCorporativo != nil && *req.EmailCorporativo != m.VoluntarioEmailCorporativo {
			var cnt int64
			if err := tx.Unscoped().Model(&voluntarioModel.VoluntarioModel{}).
				Where("voluntario_email_corporativo = ? AND voluntario_id <> ?", *req.EmailCorporativo, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email corporativo já cadastrado")
			}
		}
		if req.CPF != nil && *req.CPF != m.VoluntarioCPF {
			var cnt int64
			if err := tx.Unscoped().Model(&voluntarioModel.VoluntarioModel{}).
				Where("voluntario_cpf = ? AND voluntario_id <> ?", *req.CPF, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar duplicidade de CPF")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "CPF já cadastrado")
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email ou CPF já cadastrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar voluntário")
		}
		atualizado = m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar voluntário")
	}

	return helper.JsonUpdated(c, "Voluntário atualizado com sucesso", voluntarioDTO.FromVoluntarioModel(atualizado))
}

// DELETE (soft)
// DELETE /voluntarios/:id
// Bloqueado se houver compromisso futuro (evento vivo e não cancelado).
func (h *VoluntarioController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var removido voluntarioModel.VoluntarioModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := buscarVivo(tx, id)
		if err != nil {
			return err
		}
		if err := service.GuardaExclusaoVoluntario(tx, id, time.Now()); err != nil {
			return err
		}
		if err := tx.Delete(&voluntarioModel.VoluntarioModel{}, "voluntario_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir voluntário")
		}
		removido = *m
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return alocController.JsonServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Voluntário excluído com sucesso", voluntarioDTO.FromVoluntarioModel(removido))
}

// REACTIVATE
// POST /voluntarios/:id/reativar
// Limpa o soft delete e volta o status para "ativo".
func (h *VoluntarioController) Reativar(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m voluntarioModel.VoluntarioModel
	if err := h.DB.Unscoped().First(&m, "voluntario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar voluntário")
	}
	if !m.VoluntarioDeletedAt.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Voluntário não está excluído")
	}

	if err := h.DB.Unscoped().Model(&voluntarioModel.VoluntarioModel{}).
		Where("voluntario_id = ?", id).
		Updates(map[string]interface{}{
			"voluntario_deleted_at": nil,
			"voluntario_status":     constants.StatusVoluntarioAtivo,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao reativar voluntário")
	}

	m.VoluntarioDeletedAt = gorm.DeletedAt{}
	m.VoluntarioStatus = constants.StatusVoluntarioAtivo
	return helper.JsonUpdated(c, "Voluntário reativado com sucesso", voluntarioDTO.FromVoluntarioModel(m))
}

func buscarVivo(tx *gorm.DB, id uuid.UUID) (*voluntarioModel.VoluntarioModel, error) {
	var m voluntarioModel.VoluntarioModel
	if err := tx.First(&m, "voluntario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Voluntário não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar voluntário")
	}
	return &m, nil
}
