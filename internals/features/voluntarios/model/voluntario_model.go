// internals/features/voluntarios/model/voluntario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - email e cpf são únicos entre TODAS as linhas (inclusive soft-deleted),
//   porque o registro pode ser reativado depois
// - cpf guardado sem máscara (11 dígitos)
type VoluntarioModel struct {
	VoluntarioID uuid.UUID `gorm:"column:voluntario_id;type:uuid;primaryKey" json:"voluntario_id"`

	VoluntarioNomeCompleto     string `gorm:"column:voluntario_nome_completo;type:varchar(255);not null" json:"voluntario_nome_completo"`
	VoluntarioEmailCorporativo string `gorm:"column:voluntario_email_corporativo;type:varchar(255);not null;uniqueIndex:uq_voluntarios_email" json:"voluntario_email_corporativo"`
	VoluntarioCPF              string `gorm:"column:voluntario_cpf;type:varchar(11);not null;uniqueIndex:uq_voluntarios_cpf" json:"voluntario_cpf"`
	VoluntarioTelefone         string `gorm:"column:voluntario_telefone;type:varchar(15);not null" json:"voluntario_telefone"`

	VoluntarioAgencia         string `gorm:"column:voluntario_agencia;type:varchar(3);not null" json:"voluntario_agencia"`
	VoluntarioSetor           string `gorm:"column:voluntario_setor;type:varchar(100);not null" json:"voluntario_setor"`
	VoluntarioTamanhoCamiseta string `gorm:"column:voluntario_tamanho_camiseta;type:varchar(5);not null" json:"voluntario_tamanho_camiseta"`

	VoluntarioCargo               *string `gorm:"column:voluntario_cargo;type:varchar(100)" json:"voluntario_cargo,omitempty"`
	VoluntarioExperienciaAnterior *string `gorm:"column:voluntario_experiencia_anterior;type:text" json:"voluntario_experiencia_anterior,omitempty"`

	VoluntarioStatus string `gorm:"column:voluntario_status;type:varchar(10);not null;default:ativo" json:"voluntario_status"`

	VoluntarioCreatedAt time.Time      `gorm:"column:voluntario_created_at;not null;autoCreateTime" json:"voluntario_created_at"`
	VoluntarioUpdatedAt time.Time      `gorm:"column:voluntario_updated_at;not null;autoUpdateTime" json:"voluntario_updated_at"`
	VoluntarioDeletedAt gorm.DeletedAt `gorm:"column:voluntario_deleted_at;index" json:"voluntario_deleted_at,omitempty"`
}

func (VoluntarioModel) TableName() string { return "voluntarios" }

// BeforeCreate: gera o ID no lado da aplicação se vier vazio.
func (v *VoluntarioModel) BeforeCreate(tx *gorm.DB) error {
	if v.VoluntarioID == uuid.Nil {
		v.VoluntarioID = uuid.New()
	}
	return nil
}
