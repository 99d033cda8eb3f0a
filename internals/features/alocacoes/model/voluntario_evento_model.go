// internals/features/alocacoes/model/voluntario_evento_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vínculo evento × voluntário, com função e controle de presença.
// evento_veiculo_id aponta para o veículo em que o voluntário vai
// (precisa ser do MESMO evento; checado no service).
type VoluntarioEventoModel struct {
	VoluntarioEventoID uuid.UUID `gorm:"column:voluntario_evento_id;type:uuid;primaryKey" json:"voluntario_evento_id"`

	VoluntarioEventoEventoID     uuid.UUID `gorm:"column:voluntario_evento_evento_id;type:uuid;not null;index" json:"voluntario_evento_evento_id"`
	VoluntarioEventoVoluntarioID uuid.UUID `gorm:"column:voluntario_evento_voluntario_id;type:uuid;not null;index" json:"voluntario_evento_voluntario_id"`

	VoluntarioEventoFuncao            string  `gorm:"column:voluntario_evento_funcao;type:varchar(30);not null" json:"voluntario_evento_funcao"`
	VoluntarioEventoFuncaoCustomizada *string `gorm:"column:voluntario_evento_funcao_customizada;type:varchar(100)" json:"voluntario_evento_funcao_customizada,omitempty"`

	VoluntarioEventoPresenca string `gorm:"column:voluntario_evento_presenca;type:varchar(20);not null;default:pendente;index" json:"voluntario_evento_presenca"`

	VoluntarioEventoVaiNoVeiculo    bool       `gorm:"column:voluntario_evento_vai_no_veiculo;not null;default:false" json:"voluntario_evento_vai_no_veiculo"`
	VoluntarioEventoEventoVeiculoID *uuid.UUID `gorm:"column:voluntario_evento_evento_veiculo_id;type:uuid;index" json:"voluntario_evento_evento_veiculo_id,omitempty"`

	VoluntarioEventoObservacoes *string `gorm:"column:voluntario_evento_observacoes;type:text" json:"voluntario_evento_observacoes,omitempty"`

	VoluntarioEventoCreatedAt time.Time      `gorm:"column:voluntario_evento_created_at;not null;autoCreateTime" json:"voluntario_evento_created_at"`
	VoluntarioEventoUpdatedAt time.Time      `gorm:"column:voluntario_evento_updated_at;not null;autoUpdateTime" json:"voluntario_evento_updated_at"`
	VoluntarioEventoDeletedAt gorm.DeletedAt `gorm:"column:voluntario_evento_deleted_at;index" json:"voluntario_evento_deleted_at,omitempty"`
}

func (VoluntarioEventoModel) TableName() string { return "voluntario_eventos" }

// BeforeCreate: gera o ID no lado da aplicação se vier vazio.
func (ve *VoluntarioEventoModel) BeforeCreate(tx *gorm.DB) error {
	if ve.VoluntarioEventoID == uuid.Nil {
		ve.VoluntarioEventoID = uuid.New()
	}
	return nil
}
