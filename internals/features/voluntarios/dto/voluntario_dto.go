// internals/features/voluntarios/dto/voluntario_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	m "voluntariado_backend/internals/features/voluntarios/model"
	"voluntariado_backend/internals/constants"
	helper "voluntariado_backend/internals/helpers"
)

var telefoneRe = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)

/* =========================================================
   CREATE
   ========================================================= */

type CreateVoluntarioRequest struct {
	NomeCompleto     string `json:"voluntario_nome_completo" validate:"required,min=3,max=255"`
	EmailCorporativo string `json:"voluntario_email_corporativo" validate:"required,email,max=255"`
	CPF              string `json:"voluntario_cpf" validate:"required"`
	Telefone         string `json:"voluntario_telefone" validate:"required"`

	Agencia         string `json:"voluntario_agencia" validate:"required"`
	Setor           string `json:"voluntario_setor" validate:"required,max=100"`
	TamanhoCamiseta string `json:"voluntario_tamanho_camiseta" validate:"required"`

	Cargo               *string `json:"voluntario_cargo" validate:"omitempty,max=100"`
	ExperienciaAnterior *string `json:"voluntario_experiencia_anterior"`
}

func (r *CreateVoluntarioRequest) Normalize() {
	r.NomeCompleto = strings.TrimSpace(r.NomeCompleto)
	r.EmailCorporativo = strings.ToLower(strings.TrimSpace(r.EmailCorporativo))
	r.CPF = helper.LimparCPF(r.CPF)
	r.Telefone = strings.TrimSpace(r.Telefone)
	r.Agencia = strings.TrimSpace(r.Agencia)
	r.Setor = strings.TrimSpace(r.Setor)
	r.TamanhoCamiseta = strings.TrimSpace(r.TamanhoCamiseta)
	trimPtr(&r.Cargo)
	trimPtr(&r.ExperienciaAnterior)
}

// ValidarDominio devolve erros por campo (cpf/telefone/enums) — a mesma
// função serve para create e update, em vez de duplicar checagem por tela.
func (r CreateVoluntarioRequest) ValidarDominio() map[string][]string {
	return validarDominio(&r.CPF, &r.Telefone, &r.Agencia, &r.TamanhoCamiseta)
}

func (r CreateVoluntarioRequest) ToModel() m.VoluntarioModel {
	return m.VoluntarioModel{
		VoluntarioNomeCompleto:        r.NomeCompleto,
		VoluntarioEmailCorporativo:    r.EmailCorporativo,
		VoluntarioCPF:                 r.CPF,
		VoluntarioTelefone:            r.Telefone,
		VoluntarioAgencia:             r.Agencia,
		VoluntarioSetor:               r.Setor,
		VoluntarioTamanhoCamiseta:     r.TamanhoCamiseta,
		VoluntarioCargo:               r.Cargo,
		VoluntarioExperienciaAnterior: r.ExperienciaAnterior,
		VoluntarioStatus:              constants.StatusVoluntarioAtivo,
	}
}

/* =========================================================
   UPDATE (parcial)
   ========================================================= */

type UpdateVoluntarioRequest struct {
	NomeCompleto     *string `json:"voluntario_nome_completo" validate:"omitempty,min=3,max=255"`
	EmailCorporativo *string `json:"voluntario_email_corporativo" validate:"omitempty,email,max=255"`
	CPF              *string `json:"voluntario_cpf"`
	Telefone         *string `json:"voluntario_telefone"`

	Agencia         *string `json:"voluntario_agencia"`
	Setor           *string `json:"voluntario_setor" validate:"omitempty,max=100"`
	TamanhoCamiseta *string `json:"voluntario_tamanho_camiseta"`

	Cargo               *string `json:"voluntario_cargo" validate:"omitempty,max=100"`
	ExperienciaAnterior *string `json:"voluntario_experiencia_anterior"`

	Status *string `json:"voluntario_status"`
}

func (r *UpdateVoluntarioRequest) Normalize() {
	trimPtr(&r.NomeCompleto)
	if r.EmailCorporativo != nil {
		s := strings.ToLower(strings.TrimSpace(*r.EmailCorporativo))
		r.EmailCorporativo = &s
	}
	if r.CPF != nil {
		s := helper.LimparCPF(*r.CPF)
		r.CPF = &s
	}
	trimPtr(&r.Telefone)
	trimPtr(&r.Agencia)
	trimPtr(&r.Setor)
	trimPtr(&r.TamanhoCamiseta)
	trimPtr(&r.Cargo)
	trimPtr(&r.ExperienciaAnterior)
	trimPtr(&r.Status)
}

func (r UpdateVoluntarioRequest) ValidarDominio() map[string][]string {
	errs := validarDominio(r.CPF, r.Telefone, r.Agencia, r.TamanhoCamiseta)
	if r.Status != nil && !constants.ContemString(constants.StatusVoluntario, *r.Status) {
		errs["voluntario_status"] = append(errs["voluntario_status"], "status inválido")
	}
	return errs
}

func (r UpdateVoluntarioRequest) Apply(v *m.VoluntarioModel) {
	if r.NomeCompleto != nil {
		v.VoluntarioNomeCompleto = *r.NomeCompleto
	}
	if r.EmailCorporativo != nil {
		v.VoluntarioEmailCorporativo = *r.EmailCorporativo
	}
	if r.CPF != nil {
		v.VoluntarioCPF = *r.CPF
	}
	if r.Telefone != nil {
		v.VoluntarioTelefone = *r.Telefone
	}
	if r.Agencia != nil {
		v.VoluntarioAgencia = *r.Agencia
	}
	if r.Setor != nil {
		v.VoluntarioSetor = *r.Setor
	}
	if r.TamanhoCamiseta != nil {
		v.VoluntarioTamanhoCamiseta = *r.TamanhoCamiseta
	}
	if r.Cargo != nil {
		v.VoluntarioCargo = r.Cargo
	}
	if r.ExperienciaAnterior != nil {
		v.VoluntarioExperienciaAnterior = r.ExperienciaAnterior
	}
	if r.Status != nil {
		v.VoluntarioStatus = *r.Status
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type VoluntarioResponse struct {
	VoluntarioID uuid.UUID `json:"voluntario_id"`

	NomeCompleto     string `json:"voluntario_nome_completo"`
	EmailCorporativo string `json:"voluntario_email_corporativo"`
	CPF              string `json:"voluntario_cpf"` // com máscara
	Telefone         string `json:"voluntario_telefone"`

	Agencia         string `json:"voluntario_agencia"`
	AgenciaNome     string `json:"voluntario_agencia_nome"`
	Setor           string `json:"voluntario_setor"`
	TamanhoCamiseta string `json:"voluntario_tamanho_camiseta"`

	Cargo               *string `json:"voluntario_cargo,omitempty"`
	ExperienciaAnterior *string `json:"voluntario_experiencia_anterior,omitempty"`

	Status    string     `json:"voluntario_status"`
	CreatedAt time.Time  `json:"voluntario_created_at"`
	UpdatedAt time.Time  `json:"voluntario_updated_at"`
	DeletedAt *time.Time `json:"voluntario_deleted_at,omitempty"`
}

func FromVoluntarioModel(v m.VoluntarioModel) VoluntarioResponse {
	var deletedAt *time.Time
	if v.VoluntarioDeletedAt.Valid {
		t := v.VoluntarioDeletedAt.Time
		deletedAt = &t
	}
	return VoluntarioResponse{
		VoluntarioID:        v.VoluntarioID,
		NomeCompleto:        v.VoluntarioNomeCompleto,
		EmailCorporativo:    v.VoluntarioEmailCorporativo,
		CPF:                 helper.FormatarCPF(v.VoluntarioCPF),
		Telefone:            v.VoluntarioTelefone,
		Agencia:             v.VoluntarioAgencia,
		AgenciaNome:         constants.Agencias[v.VoluntarioAgencia],
		Setor:               v.VoluntarioSetor,
		TamanhoCamiseta:     v.VoluntarioTamanhoCamiseta,
		Cargo:               v.VoluntarioCargo,
		ExperienciaAnterior: v.VoluntarioExperienciaAnterior,
		Status:              v.VoluntarioStatus,
		CreatedAt:           v.VoluntarioCreatedAt,
		UpdatedAt:           v.VoluntarioUpdatedAt,
		DeletedAt:           deletedAt,
	}
}

func FromVoluntarioModels(vs []m.VoluntarioModel) []VoluntarioResponse {
	out := make([]VoluntarioResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVoluntarioModel(v))
	}
	return out
}

/* =========================================================
   Utils
   ========================================================= */

func validarDominio(cpf, telefone, agencia, tamanho *string) map[string][]string {
	errs := map[string][]string{}
	if cpf != nil && !helper.ValidarCPF(*cpf) {
		errs["voluntario_cpf"] = append(errs["voluntario_cpf"], "CPF inválido")
	}
	if telefone != nil && !telefoneRe.MatchString(*telefone) {
		errs["voluntario_telefone"] = append(errs["voluntario_telefone"], "Telefone deve estar no formato (11) 99999-9999")
	}
	if agencia != nil && !constants.ChaveValida(constants.Agencias, *agencia) {
		errs["voluntario_agencia"] = append(errs["voluntario_agencia"], "agência inválida")
	}
	if tamanho != nil && !constants.ChaveValida(constants.TamanhosCamiseta, *tamanho) {
		errs["voluntario_tamanho_camiseta"] = append(errs["voluntario_tamanho_camiseta"], "tamanho de camiseta inválido")
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
