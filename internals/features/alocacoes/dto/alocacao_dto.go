// internals/features/alocacoes/dto/alocacao_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	alocModel "voluntariado_backend/internals/features/alocacoes/model"
	"voluntariado_backend/internals/features/alocacoes/service"
	"voluntariado_backend/internals/constants"
)

/* =========================================================
   Requests
   ========================================================= */

type AlocarVoluntarioRequest struct {
	VoluntarioID      uuid.UUID  `json:"voluntario_id" validate:"required"`
	Funcao            string     `json:"funcao" validate:"required"`
	FuncaoCustomizada *string    `json:"funcao_customizada" validate:"omitempty,max=100"`
	EventoVeiculoID   *uuid.UUID `json:"evento_veiculo_id"`
	Observacoes       *string    `json:"observacoes"`
}

func (r *AlocarVoluntarioRequest) Normalize() {
	r.Funcao = strings.TrimSpace(r.Funcao)
	trimPtr(&r.FuncaoCustomizada)
	trimPtr(&r.Observacoes)
}

func (r AlocarVoluntarioRequest) ValidarDominio() map[string][]string {
	errs := map[string][]string{}
	if !constants.ChaveValida(constants.Funcoes, r.Funcao) {
		errs["funcao"] = append(errs["funcao"], "função inválida")
	}
	// "outro" exige descrição customizada
	if r.Funcao == constants.FuncaoOutro && r.FuncaoCustomizada == nil {
		errs["funcao_customizada"] = append(errs["funcao_customizada"], "obrigatória quando a função é 'outro'")
	}
	return errs
}

func (r AlocarVoluntarioRequest) ToService(eventoID uuid.UUID) service.NovaAlocacaoVoluntario {
	return service.NovaAlocacaoVoluntario{
		EventoID:          eventoID,
		VoluntarioID:      r.VoluntarioID,
		Funcao:            r.Funcao,
		FuncaoCustomizada: r.FuncaoCustomizada,
		EventoVeiculoID:   r.EventoVeiculoID,
		Observacoes:       r.Observacoes,
	}
}

type AlocarVeiculoRequest struct {
	VeiculoID   uuid.UUID  `json:"veiculo_id" validate:"required"`
	MotoristaID *uuid.UUID `json:"motorista_id"`
	Observacoes *string    `json:"observacoes"`
}

func (r *AlocarVeiculoRequest) Normalize() {
	trimPtr(&r.Observacoes)
}

func (r AlocarVeiculoRequest) ToService(eventoID uuid.UUID) service.NovaAlocacaoVeiculo {
	return service.NovaAlocacaoVeiculo{
		EventoID:    eventoID,
		VeiculoID:   r.VeiculoID,
		MotoristaID: r.MotoristaID,
		Observacoes: r.Observacoes,
	}
}

type AtualizarPresencaRequest struct {
	Presenca string `json:"presenca" validate:"required"`
}

type EditarAlocacaoVoluntarioRequest struct {
	Funcao            *string    `json:"funcao"`
	FuncaoCustomizada *string    `json:"funcao_customizada" validate:"omitempty,max=100"`
	EventoVeiculoID   *uuid.UUID `json:"evento_veiculo_id"`
	RemoverCarona     bool       `json:"remover_carona"`
	Observacoes       *string    `json:"observacoes"`
}

func (r *EditarAlocacaoVoluntarioRequest) Normalize() {
	trimPtr(&r.Funcao)
	trimPtr(&r.FuncaoCustomizada)
	trimPtr(&r.Observacoes)
}

func (r EditarAlocacaoVoluntarioRequest) ToService() service.EdicaoAlocacaoVoluntario {
	return service.EdicaoAlocacaoVoluntario{
		Funcao:            r.Funcao,
		FuncaoCustomizada: r.FuncaoCustomizada,
		EventoVeiculoID:   r.EventoVeiculoID,
		RemoverCarona:     r.RemoverCarona,
		Observacoes:       r.Observacoes,
	}
}

/* =========================================================
   Responses
   ========================================================= */

type VoluntarioEventoResponse struct {
	VoluntarioEventoID uuid.UUID `json:"voluntario_evento_id"`
	EventoID           uuid.UUID `json:"evento_id"`
	VoluntarioID       uuid.UUID `json:"voluntario_id"`

	Funcao            string  `json:"funcao"`
	FuncaoNome        string  `json:"funcao_nome"`
	FuncaoCustomizada *string `json:"funcao_customizada,omitempty"`

	Presenca        string     `json:"presenca"`
	VaiNoVeiculo    bool       `json:"vai_no_veiculo"`
	EventoVeiculoID *uuid.UUID `json:"evento_veiculo_id,omitempty"`
	Observacoes     *string    `json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NomeFuncao resolve o rótulo exibido: o catálogo, ou o texto livre
// quando a função é "outro".
func NomeFuncao(funcao string, customizada *string) string {
	if funcao == constants.FuncaoOutro && customizada != nil {
		return *customizada
	}
	return constants.Funcoes[funcao]
}

func FromVoluntarioEventoModel(m alocModel.VoluntarioEventoModel) VoluntarioEventoResponse {
	return VoluntarioEventoResponse{
		VoluntarioEventoID: m.VoluntarioEventoID,
		EventoID:           m.VoluntarioEventoEventoID,
		VoluntarioID:       m.VoluntarioEventoVoluntarioID,
		Funcao:             m.VoluntarioEventoFuncao,
		FuncaoNome:         NomeFuncao(m.VoluntarioEventoFuncao, m.VoluntarioEventoFuncaoCustomizada),
		FuncaoCustomizada:  m.VoluntarioEventoFuncaoCustomizada,
		Presenca:           m.VoluntarioEventoPresenca,
		VaiNoVeiculo:       m.VoluntarioEventoVaiNoVeiculo,
		EventoVeiculoID:    m.VoluntarioEventoEventoVeiculoID,
		Observacoes:        m.VoluntarioEventoObservacoes,
		CreatedAt:          m.VoluntarioEventoCreatedAt,
	}
}

type EventoVeiculoResponse struct {
	EventoVeiculoID uuid.UUID  `json:"evento_veiculo_id"`
	EventoID        uuid.UUID  `json:"evento_id"`
	VeiculoID       uuid.UUID  `json:"veiculo_id"`
	MotoristaID     *uuid.UUID `json:"motorista_id,omitempty"`
	Observacoes     *string    `json:"observacoes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromEventoVeiculoModel(m alocModel.EventoVeiculoModel) EventoVeiculoResponse {
	return EventoVeiculoResponse{
		EventoVeiculoID: m.EventoVeiculoID,
		EventoID:        m.EventoVeiculoEventoID,
		VeiculoID:       m.EventoVeiculoVeiculoID,
		MotoristaID:     m.EventoVeiculoMotoristaID,
		Observacoes:     m.EventoVeiculoObservacoes,
		CreatedAt:       m.EventoVeiculoCreatedAt,
	}
}

// VoluntarioEventoDetalhe é a linha da listagem do detalhe do evento
// (join com voluntarios).
type VoluntarioEventoDetalhe struct {
	VoluntarioEventoID uuid.UUID  `json:"voluntario_evento_id"`
	VoluntarioID       uuid.UUID  `json:"voluntario_id"`
	NomeCompleto       string     `json:"nome_completo"`
	Funcao             string     `json:"funcao"`
	FuncaoCustomizada  *string    `json:"funcao_customizada,omitempty"`
	FuncaoNome         string     `json:"funcao_nome"`
	Presenca           string     `json:"presenca"`
	VaiNoVeiculo       bool       `json:"vai_no_veiculo"`
	EventoVeiculoID    *uuid.UUID `json:"evento_veiculo_id,omitempty"`
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
