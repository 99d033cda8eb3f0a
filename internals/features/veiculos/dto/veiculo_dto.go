// internals/features/veiculos/dto/veiculo_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "voluntariado_backend/internals/features/veiculos/model"
	"voluntariado_backend/internals/constants"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateVeiculoRequest struct {
	Nome  string `json:"veiculo_nome" validate:"required,min=2,max=100"`
	Placa string `json:"veiculo_placa" validate:"required,min=7,max=8"`
	Tipo  string `json:"veiculo_tipo" validate:"required"`

	Capacidade int `json:"veiculo_capacidade" validate:"required,gt=0"`

	Observacoes *string `json:"veiculo_observacoes"`
}

func (r *CreateVeiculoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Placa = strings.ToUpper(strings.TrimSpace(r.Placa))
	r.Tipo = strings.TrimSpace(r.Tipo)
	trimPtr(&r.Observacoes)
}

func (r CreateVeiculoRequest) ValidarDominio() map[string][]string {
	return validarDominio(&r.Tipo, nil)
}

func (r CreateVeiculoRequest) ToModel() m.VeiculoModel {
	return m.VeiculoModel{
		VeiculoNome:        r.Nome,
		VeiculoPlaca:       r.Placa,
		VeiculoTipo:        r.Tipo,
		VeiculoCapacidade:  r.Capacidade,
		VeiculoStatus:      constants.StatusVeiculoDisponivel,
		VeiculoObservacoes: r.Observacoes,
	}
}

/* =========================================================
   UPDATE (parcial)
   ========================================================= */

type UpdateVeiculoRequest struct {
	Nome  *string `json:"veiculo_nome" validate:"omitempty,min=2,max=100"`
	Placa *string `json:"veiculo_placa" validate:"omitempty,min=7,max=8"`
	Tipo  *string `json:"veiculo_tipo"`

	Capacidade *int `json:"veiculo_capacidade" validate:"omitempty,gt=0"`

	Status      *string `json:"veiculo_status"`
	Observacoes *string `json:"veiculo_observacoes"`
}

func (r *UpdateVeiculoRequest) Normalize() {
	trimPtr(&r.Nome)
	if r.Placa != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.Placa))
		r.Placa = &s
	}
	trimPtr(&r.Tipo)
	trimPtr(&r.Status)
	trimPtr(&r.Observacoes)
}

func (r UpdateVeiculoRequest) ValidarDominio() map[string][]string {
	return validarDominio(r.Tipo, r.Status)
}

func (r UpdateVeiculoRequest) Apply(v *m.VeiculoModel) {
	if r.Nome != nil {
		v.VeiculoNome = *r.Nome
	}
	if r.Placa != nil {
		v.VeiculoPlaca = *r.Placa
	}
	if r.Tipo != nil {
		v.VeiculoTipo = *r.Tipo
	}
	if r.Capacidade != nil {
		v.VeiculoCapacidade = *r.Capacidade
	}
	if r.Status != nil {
		v.VeiculoStatus = *r.Status
	}
	if r.Observacoes != nil {
		v.VeiculoObservacoes = r.Observacoes
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type VeiculoResponse struct {
	VeiculoID uuid.UUID `json:"veiculo_id"`

	Nome     string `json:"veiculo_nome"`
	Placa    string `json:"veiculo_placa"`
	Tipo     string `json:"veiculo_tipo"`
	TipoNome string `json:"veiculo_tipo_nome"`

	Capacidade int `json:"veiculo_capacidade"`

	Status      string  `json:"veiculo_status"`
	Observacoes *string `json:"veiculo_observacoes,omitempty"`

	CreatedAt time.Time  `json:"veiculo_created_at"`
	UpdatedAt time.Time  `json:"veiculo_updated_at"`
	DeletedAt *time.Time `json:"veiculo_deleted_at,omitempty"`
}

func FromVeiculoModel(v m.VeiculoModel) VeiculoResponse {
	var deletedAt *time.Time
	if v.VeiculoDeletedAt.Valid {
		t := v.VeiculoDeletedAt.Time
		deletedAt = &t
	}
	return VeiculoResponse{
		VeiculoID:   v.VeiculoID,
		Nome:        v.VeiculoNome,
		Placa:       v.VeiculoPlaca,
		Tipo:        v.VeiculoTipo,
		TipoNome:    constants.TiposVeiculo[v.VeiculoTipo],
		Capacidade:  v.VeiculoCapacidade,
		Status:      v.VeiculoStatus,
		Observacoes: v.VeiculoObservacoes,
		CreatedAt:   v.VeiculoCreatedAt,
		UpdatedAt:   v.VeiculoUpdatedAt,
		DeletedAt:   deletedAt,
	}
}

func FromVeiculoModels(vs []m.VeiculoModel) []VeiculoResponse {
	out := make([]VeiculoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVeiculoModel(v))
	}
	return out
}

/* =========================================================
   Utils
   ========================================================= */

func validarDominio(tipo, status *string) map[string][]string {
	errs := map[string][]string{}
	if tipo != nil && !constants.ChaveValida(constants.TiposVeiculo, *tipo) {
		errs["veiculo_tipo"] = append(errs["veiculo_tipo"], "tipo de veículo inválido")
	}
	if status != nil {
		switch *status {
		case constants.StatusVeiculoDisponivel, constants.StatusVeiculoManutencao, constants.StatusVeiculoIndisponivel:
		default:
			errs["veiculo_status"] = append(errs["veiculo_status"], "status inválido")
		}
	}
	return errs
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
