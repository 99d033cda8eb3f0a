// internals/features/eventos/controller/evento_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alocController "voluntariado_backend/internals/features/alocacoes/controller"
	alocDTO "voluntariado_backend/internals/features/alocacoes/dto"
	"voluntariado_backend/internals/features/alocacoes/service"
	eventoDTO "voluntariado_backend/internals/features/eventos/dto"
	eventoModel "voluntariado_backend/internals/features/eventos/model"
	helper "voluntariado_backend/internals/helpers"
	"voluntariado_backend/internals/helpers/dbtime"
)

type EventoController struct {
	DB *gorm.DB
}

// CREATE
// POST /eventos
func (h *EventoController) Create(c *fiber.Ctx) error {
	var req eventoDTO.CreateEventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.Normalize()
	if err := helper.Validate(c, req); err != nil {
		return err
	}
	janela, errs := req.ValidarDominio()
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel(janela)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar evento")
	}

	return helper.JsonCreated(c, "Evento criado com sucesso", eventoDTO.FromEventoModel(m))
}

// GET BY ID
// GET /eventos/:id[?with_deleted=true]
func (h *EventoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		q = q.Unscoped()
	}

	var m eventoModel.EventoModel
	if err := q.First(&m, "evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}

	return helper.JsonOK(c, "Evento encontrado", eventoDTO.FromEventoModel(m))
}

// DETAIL
// GET /eventos/:id/detalhe
// Evento + voluntários alocados + caronas com ocupação.
func (h *EventoController) Detalhe(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m eventoModel.EventoModel
	if err := h.DB.First(&m, "evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}

	var voluntarios []alocDTO.VoluntarioEventoDetalhe
	if err := h.DB.Table("voluntario_eventos ve").
		Select(`ve.voluntario_evento_id AS voluntario_evento_id,
			v.voluntario_id AS voluntario_id,
			v.voluntario_nome_completo AS nome_completo,
			ve.voluntario_evento_funcao AS funcao,
			ve.voluntario_evento_funcao_customizada AS funcao_customizada,
			ve.voluntario_evento_presenca AS presenca,
			ve.voluntario_evento_vai_no_veiculo AS vai_no_veiculo,
			ve.voluntario_evento_evento_veiculo_id AS evento_veiculo_id`).
		Joins("JOIN voluntarios v ON v.voluntario_id = ve.voluntario_evento_voluntario_id").
		Where("ve.voluntario_evento_evento_id = ?", id).
		Where("ve.voluntario_evento_deleted_at IS NULL").
		Order("v.voluntario_nome_completo").
		Scan(&voluntarios).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar voluntários do evento")
	}
	for i := range voluntarios {
		voluntarios[i].FuncaoNome = alocDTO.NomeFuncao(voluntarios[i].Funcao, voluntarios[i].FuncaoCustomizada)
	}

	est, err := service.CalcularEstatisticasEvento(h.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao calcular estatísticas do evento")
	}

	return helper.JsonOK(c, "Detalhe do evento", fiber.Map{
		"evento":       eventoDTO.FromEventoModel(m),
		"voluntarios":  voluntarios,
		"estatisticas": est,
	})
}

// STATISTICS
// GET /eventos/:id/estatisticas
func (h *EventoController) Estatisticas(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cnt int64
	if err := h.DB.Model(&eventoModel.EventoModel{}).Where("evento_id = ?", id).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	}

	est, err := service.CalcularEstatisticasEvento(h.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao calcular estatísticas do evento")
	}
	return helper.JsonOK(c, "Estatísticas do evento", est)
}

// LIST
// GET /eventos?q=&status=&cidade=&data_de=&data_ate=&with_deleted=&page=&per_page=&sort=
func (h *EventoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&eventoModel.EventoModel{})
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		tx = tx.Unscoped()
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(evento_nome_escola) LIKE ? OR LOWER(evento_cidade) LIKE ?)", kw, kw)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("evento_status = ?", st)
	}
	if cid := strings.TrimSpace(c.Query("cidade")); cid != "" {
		tx = tx.Where("LOWER(evento_cidade) = ?", strings.ToLower(cid))
	}
	if de := strings.TrimSpace(c.Query("data_de")); de != "" {
		d, err := dbtime.ParseData(de)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "data_de inválida (use YYYY-MM-DD)")
		}
		tx = tx.Where("evento_data >= ?", d)
	}
	if ate := strings.TrimSpace(c.Query("data_ate")); ate != "" {
		d, err := dbtime.ParseData(ate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "data_ate inválida (use YYYY-MM-DD)")
		}
		tx = tx.Where("evento_data <= ?", d)
	}

	sort := "ASC"
	if strings.EqualFold(c.Query("sort"), "desc") {
		sort = "DESC"
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar eventos")
	}

	var rows []eventoModel.EventoModel
	if err := tx.Order("evento_data " + sort + ", evento_hora_inicio " + sort).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar eventos")
	}

	return helper.JsonList(c, "", eventoDTO.FromEventoModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// UPDATE (parcial)
// PUT /eventos/:id
// Mover a janela (data/horário) revalida o conflito de todo mundo já alocado.
func (h *EventoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req eventoDTO.UpdateEventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.Normalize()
	if err := helper.Validate(c, req); err != nil {
		return err
	}

	mudouJanela := req.Data != nil || req.HoraInicio != nil || req.HoraFim != nil

	var atualizado eventoModel.EventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m eventoModel.EventoModel
		if err := tx.First(&m, "evento_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar evento")
		}

		janela, errs := req.ValidarDominio(m)
		if len(errs) > 0 {
			return &erroValidacaoCampos{campos: errs}
		}

		if mudouJanela {
			if err := h.revalidarJanela(tx, id, janela); err != nil {
				return err
			}
		}

		req.Apply(&m, janela)
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar evento")
		}
		atualizado = m
		return nil
	}); err != nil {
		var ev *erroValidacaoCampos
		if errors.As(err, &ev) {
			return helper.JsonValidationError(c, ev.campos)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return alocController.JsonServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Evento atualizado com sucesso", eventoDTO.FromEventoModel(atualizado))
}

// revalidarJanela confere se a nova janela do evento não colide com os
// compromissos dos voluntários e veículos já alocados nele.
func (h *EventoController) revalidarJanela(tx *gorm.DB, eventoID uuid.UUID, j eventoDTO.Janela) error {
	type vol struct {
		VoluntarioID uuid.UUID `json:"voluntario_id"`
		Nome         string    `json:"nome"`
	}
	var vols []vol
	if err := tx.Table("voluntario_eventos ve").
		Select("v.voluntario_id AS voluntario_id, v.voluntario_nome_completo AS nome").
		Joins("JOIN voluntarios v ON v.voluntario_id = ve.voluntario_evento_voluntario_id").
		Where("ve.voluntario_evento_evento_id = ?", eventoID).
		Where("ve.voluntario_evento_deleted_at IS NULL").
		Scan(&vols).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao revalidar voluntários do evento")
	}
	for _, v := range vols {
		conflito, err := service.ConflitoVoluntario(tx, v.VoluntarioID, j.Data, j.HoraInicio, j.HoraFim, &eventoID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao revalidar voluntários do evento")
		}
		if conflito != nil {
			return &service.ErroConflito{
				Motivo: fmt.Sprintf("Voluntário %s ficaria em conflito com o evento %s", v.Nome, conflito.NomeEscola),
				Ref:    conflito.Ref(),
			}
		}
	}

	type vei struct {
		VeiculoID uuid.UUID `json:"veiculo_id"`
		Nome      string    `json:"nome"`
	}
	var veis []vei
	if err := tx.Table("evento_veiculos ev").
		Select("v.veiculo_id AS veiculo_id, v.veiculo_nome AS nome").
		Joins("JOIN veiculos v ON v.veiculo_id = ev.evento_veiculo_veiculo_id").
		Where("ev.evento_veiculo_evento_id = ?", eventoID).
		Where("ev.evento_veiculo_deleted_at IS NULL").
		Scan(&veis).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao revalidar veículos do evento")
	}
	for _, v := range veis {
		conflito, err := service.ConflitoVeiculo(tx, v.VeiculoID, j.Data, j.HoraInicio, j.HoraFim, &eventoID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao revalidar veículos do evento")
		}
		if conflito != nil {
			return &service.ErroConflito{
				Motivo: fmt.Sprintf("Veículo %s ficaria em conflito com o evento %s", v.Nome, conflito.NomeEscola),
				Ref:    conflito.Ref(),
			}
		}
	}
	return nil
}

// CANCEL
// POST /eventos/:id/cancelar
// Idempotente: evento concluído ou já cancelado não muda.
func (h *EventoController) Cancelar(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var (
		m     *eventoModel.EventoModel
		mudou bool
	)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		m, mudou, errSvc = service.CancelarEvento(tx, id)
		return errSvc
	}); err != nil {
		return alocController.JsonServiceError(c, err)
	}

	if !mudou {
		return helper.JsonOK(c, "Evento não pode ser cancelado no status atual; nada foi alterado",
			eventoDTO.FromEventoModel(*m))
	}
	return helper.JsonUpdated(c, "Evento cancelado com sucesso", eventoDTO.FromEventoModel(*m))
}

// DELETE (soft, em cascata)
// DELETE /eventos/:id
// Solta também as alocações de voluntários e veículos do evento.
func (h *EventoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var removido *eventoModel.EventoModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var errSvc error
		removido, errSvc = service.ExcluirEvento(tx, id)
		return errSvc
	}); err != nil {
		return alocController.JsonServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Evento excluído com sucesso", eventoDTO.FromEventoModel(*removido))
}

// REACTIVATE
// POST /eventos/:id/reativar
// Limpa o soft delete do evento; as alocações excluídas em cascata ficam como estão.
func (h *EventoController) Reativar(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m eventoModel.EventoModel
	if err := h.DB.Unscoped().First(&m, "evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}
	if !m.EventoDeletedAt.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Evento não está excluído")
	}

	if err := h.DB.Unscoped().Model(&eventoModel.EventoModel{}).
		Where("evento_id = ?", id).
		Update("evento_deleted_at", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao reativar evento")
	}

	m.EventoDeletedAt = gorm.DeletedAt{}
	return helper.JsonUpdated(c, "Evento reativado com sucesso", eventoDTO.FromEventoModel(m))
}

// CALENDAR
// GET /eventos/calendario?ano=&mes=
// Eventos vivos do mês, agrupados por dia.
func (h *EventoController) Calendario(c *fiber.Ctx) error {
	agora := time.Now()
	ano, err := strconv.Atoi(strings.TrimSpace(c.Query("ano", strconv.Itoa(agora.Year()))))
	if err != nil || ano < 2000 || ano > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ano inválido")
	}
	mes, err := strconv.Atoi(strings.TrimSpace(c.Query("mes", strconv.Itoa(int(agora.Month())))))
	if err != nil || mes < 1 || mes > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "mes inválido")
	}

	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	var rows []eventoModel.EventoModel
	if err := h.DB.
		Where("evento_data >= ? AND evento_data < ?", inicio, fim).
		Order("evento_data ASC, evento_hora_inicio ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar calendário")
	}

	porDia := map[string][]eventoDTO.EventoResponse{}
	for _, m := range rows {
		dia := m.EventoData.Format(dbtime.LayoutData)
		porDia[dia] = append(porDia[dia], eventoDTO.FromEventoModel(m))
	}

	return helper.JsonOK(c, "Calendário do mês", fiber.Map{
		"ano":     ano,
		"mes":     mes,
		"total":   len(rows),
		"por_dia": porDia,
	})
}

// erroValidacaoCampos carrega o mapa de erros de campo para fora da transação.
type erroValidacaoCampos struct {
	campos map[string][]string
}

func (e *erroValidacaoCampos) Error() string { return "validação de campos falhou" }
