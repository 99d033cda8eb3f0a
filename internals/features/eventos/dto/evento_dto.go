// internals/features/eventos/dto/evento_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"voluntariado_backend/internals/constants"
	evModel "voluntariado_backend/internals/features/eventos/model"
	"voluntariado_backend/internals/helpers/dbtime"
)

/* =========================================================
   Create
   ========================================================= */

type CreateEventoRequest struct {
	NomeEscola          string `json:"evento_nome_escola" validate:"required,min=3,max=255"`
	ResponsavelEscola   string `json:"evento_responsavel_escola" validate:"required,max=255"`
	TelefoneResponsavel string `json:"evento_telefone_responsavel" validate:"required,max=15"`
	Cidade              string `json:"evento_cidade" validate:"required,max=100"`
	Endereco            string `json:"evento_endereco" validate:"required"`

	Data       string `json:"evento_data" validate:"required"`
	HoraInicio string `json:"evento_hora_inicio" validate:"required"`
	HoraFim    string `json:"evento_hora_fim" validate:"required"`

	QtdTV         int `json:"evento_qtd_tv" validate:"gte=0"`
	QtdComputador int `json:"evento_qtd_computador" validate:"gte=0"`

	Status      *string `json:"evento_status"`
	Observacoes *string `json:"evento_observacoes"`
	CriadoPor   *string `json:"evento_criado_por" validate:"omitempty,max=255"`
}

func (r *CreateEventoRequest) Normalize() {
	r.NomeEscola = strings.TrimSpace(r.NomeEscola)
	r.ResponsavelEscola = strings.TrimSpace(r.ResponsavelEscola)
	r.TelefoneResponsavel = strings.TrimSpace(r.TelefoneResponsavel)
	r.Cidade = strings.TrimSpace(r.Cidade)
	r.Endereco = strings.TrimSpace(r.Endereco)
	r.Data = strings.TrimSpace(r.Data)
	r.HoraInicio = strings.TrimSpace(r.HoraInicio)
	r.HoraFim = strings.TrimSpace(r.HoraFim)
	trimPtr(&r.Status)
	trimPtr(&r.Observacoes)
	trimPtr(&r.CriadoPor)
}

// Janela é o trio data + horários já convertido para os tipos do banco.
type Janela struct {
	Data       time.Time
	HoraInicio dbtime.Tod
	HoraFim    dbtime.Tod
}

// ValidarDominio converte e valida data, horários e status. A regra
// central: hora_fim tem que ser estritamente depois de hora_inicio.
func (r CreateEventoRequest) ValidarDominio() (Janela, map[string][]string) {
	return validarJanela(r.Data, r.HoraInicio, r.HoraFim, r.Status)
}

func (r CreateEventoRequest) ToModel(j Janela) evModel.EventoModel {
	m := evModel.EventoModel{
		EventoNomeEscola:          r.NomeEscola,
		EventoResponsavelEscola:   r.ResponsavelEscola,
		EventoTelefoneResponsavel: r.TelefoneResponsavel,
		EventoCidade:              r.Cidade,
		EventoEndereco:            r.Endereco,
		EventoData:                j.Data,
		EventoHoraInicio:          j.HoraInicio,
		EventoHoraFim:             j.HoraFim,
		EventoQtdTV:               r.QtdTV,
		EventoQtdComputador:       r.QtdComputador,
		EventoStatus:              constants.StatusEventoPlanejamento,
		EventoObservacoes:         r.Observacoes,
		EventoCriadoPor:           r.CriadoPor,
	}
	if r.Status != nil {
		m.EventoStatus = *r.Status
	}
	return m
}

/* =========================================================
   Update (parcial)
   ========================================================= */

type UpdateEventoRequest struct {
	NomeEscola          *string `json:"evento_nome_escola" validate:"omitempty,min=3,max=255"`
	ResponsavelEscola   *string `json:"evento_responsavel_escola" validate:"omitempty,max=255"`
	TelefoneResponsavel *string `json:"evento_telefone_responsavel" validate:"omitempty,max=15"`
	Cidade              *string `json:"evento_cidade" validate:"omitempty,max=100"`
	Endereco            *string `json:"evento_endereco"`

	Data       *string `json:"evento_data"`
	HoraInicio *string `json:"evento_hora_inicio"`
	HoraFim    *string `json:"evento_hora_fim"`

	QtdTV         *int `json:"evento_qtd_tv" validate:"omitempty,gte=0"`
	QtdComputador *int `json:"evento_qtd_computador" validate:"omitempty,gte=0"`

	Status      *string `json:"evento_status"`
	Observacoes *string `json:"evento_observacoes"`
}

func (r *UpdateEventoRequest) Normalize() {
	trimPtr(&r.NomeEscola)
	trimPtr(&r.ResponsavelEscola)
	trimPtr(&r.TelefoneResponsavel)
	trimPtr(&r.Cidade)
	trimPtr(&r.Endereco)
	trimPtr(&r.Data)
	trimPtr(&r.HoraInicio)
	trimPtr(&r.HoraFim)
	trimPtr(&r.Status)
	trimPtr(&r.Observacoes)
}

// ValidarDominio valida os campos presentes contra a janela já gravada:
// quando só um lado do horário muda, o outro lado vem do modelo.
func (r UpdateEventoRequest) ValidarDominio(atual evModel.EventoModel) (Janela, map[string][]string) {
	data := atual.EventoData.Format(dbtime.LayoutData)
	inicio := atual.EventoHoraInicio.Format("15:04:05")
	fim := atual.EventoHoraFim.Format("15:04:05")
	if r.Data != nil {
		data = *r.Data
	}
	if r.HoraInicio != nil {
		inicio = *r.HoraInicio
	}
	if r.HoraFim != nil {
		fim = *r.HoraFim
	}
	return validarJanela(data, inicio, fim, r.Status)
}

func (r UpdateEventoRequest) Apply(m *evModel.EventoModel, j Janela) {
	if r.NomeEscola != nil {
		m.EventoNomeEscola = *r.NomeEscola
	}
	if r.ResponsavelEscola != nil {
		m.EventoResponsavelEscola = *r.ResponsavelEscola
	}
	if r.TelefoneResponsavel != nil {
		m.EventoTelefoneResponsavel = *r.TelefoneResponsavel
	}
	if r.Cidade != nil {
		m.EventoCidade = *r.Cidade
	}
	if r.Endereco != nil {
		m.EventoEndereco = *r.Endereco
	}
	m.EventoData = j.Data
	m.EventoHoraInicio = j.HoraInicio
	m.EventoHoraFim = j.HoraFim
	if r.QtdTV != nil {
		m.EventoQtdTV = *r.QtdTV
	}
	if r.QtdComputador != nil {
		m.EventoQtdComputador = *r.QtdComputador
	}
	if r.Status != nil {
		m.EventoStatus = *r.Status
	}
	if r.Observacoes != nil {
		m.EventoObservacoes = r.Observacoes
	}
}

/* =========================================================
   Response
   ========================================================= */

type EventoResponse struct {
	EventoID uuid.UUID `json:"evento_id"`

	NomeEscola          string `json:"evento_nome_escola"`
	ResponsavelEscola   string `json:"evento_responsavel_escola"`
	TelefoneResponsavel string `json:"evento_telefone_responsavel"`
	Cidade              string `json:"evento_cidade"`
	Endereco            string `json:"evento_endereco"`

	Data       string `json:"evento_data"`
	HoraInicio string `json:"evento_hora_inicio"`
	HoraFim    string `json:"evento_hora_fim"`

	QtdTV         int `json:"evento_qtd_tv"`
	QtdComputador int `json:"evento_qtd_computador"`

	Status      string  `json:"evento_status"`
	StatusNome  string  `json:"evento_status_nome"`
	Observacoes *string `json:"evento_observacoes,omitempty"`
	CriadoPor   *string `json:"evento_criado_por,omitempty"`

	CreatedAt time.Time  `json:"evento_created_at"`
	UpdatedAt time.Time  `json:"evento_updated_at"`
	DeletedAt *time.Time `json:"evento_deleted_at,omitempty"`
}

var nomesStatusEvento = map[string]string{
	constants.StatusEventoPlanejamento: "Em Planejamento",
	constants.StatusEventoConfirmado:   "Confirmado",
	constants.StatusEventoEmAndamento:  "Em Andamento",
	constants.StatusEventoConcluido:    "Concluído",
	constants.StatusEventoCancelado:    "Cancelado",
}

func FromEventoModel(m evModel.EventoModel) EventoResponse {
	resp := EventoResponse{
		EventoID:            m.EventoID,
		NomeEscola:          m.EventoNomeEscola,
		ResponsavelEscola:   m.EventoResponsavelEscola,
		TelefoneResponsavel: m.EventoTelefoneResponsavel,
		Cidade:              m.EventoCidade,
		Endereco:            m.EventoEndereco,
		Data:                m.EventoData.Format(dbtime.LayoutData),
		HoraInicio:          m.EventoHoraInicio.Format("15:04:05"),
		HoraFim:             m.EventoHoraFim.Format("15:04:05"),
		QtdTV:               m.EventoQtdTV,
		QtdComputador:       m.EventoQtdComputador,
		Status:              m.EventoStatus,
		StatusNome:          nomesStatusEvento[m.EventoStatus],
		Observacoes:         m.EventoObservacoes,
		CriadoPor:           m.EventoCriadoPor,
		CreatedAt:           m.EventoCreatedAt,
		UpdatedAt:           m.EventoUpdatedAt,
	}
	if m.EventoDeletedAt.Valid {
		t := m.EventoDeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}

func FromEventoModels(ms []evModel.EventoModel) []EventoResponse {
	out := make([]EventoResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEventoModel(m))
	}
	return out
}

/* =========================================================
   Internals
   ========================================================= */

func validarJanela(data, inicio, fim string, status *string) (Janela, map[string][]string) {
	errs := map[string][]string{}
	var j Janela

	d, err := dbtime.ParseData(data)
	if err != nil {
		errs["evento_data"] = append(errs["evento_data"], "data inválida (use YYYY-MM-DD)")
	} else {
		j.Data = d
	}

	hi, err := dbtime.Parse(inicio)
	if err != nil {
		errs["evento_hora_inicio"] = append(errs["evento_hora_inicio"], "horário inválido (use HH:MM)")
	} else {
		j.HoraInicio = hi
	}

	hf, err := dbtime.Parse(fim)
	if err != nil {
		errs["evento_hora_fim"] = append(errs["evento_hora_fim"], "horário inválido (use HH:MM)")
	} else {
		j.HoraFim = hf
	}

	if len(errs) == 0 && !j.HoraInicio.Before(j.HoraFim.Time) {
		errs["evento_hora_fim"] = append(errs["evento_hora_fim"], "hora de término deve ser depois da hora de início")
	}

	if status != nil && !constants.ContemString(constants.StatusEvento, *status) {
		errs["evento_status"] = append(errs["evento_status"], "status inválido")
	}

	if len(errs) == 0 {
		return j, nil
	}
	return j, errs
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
