// internals/features/alocacoes/model/evento_veiculo_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vínculo evento × veículo. Um veículo entra no máximo uma vez por evento
// (entre linhas vivas); o motorista é opcional e precisa já estar alocado
// como voluntário no mesmo evento.
type EventoVeiculoModel struct {
	EventoVeiculoID uuid.UUID `gorm:"column:evento_veiculo_id;type:uuid;primaryKey" json:"evento_veiculo_id"`

	EventoVeiculoEventoID  uuid.UUID `gorm:"column:evento_veiculo_evento_id;type:uuid;not null;index" json:"evento_veiculo_evento_id"`
	EventoVeiculoVeiculoID uuid.UUID `gorm:"column:evento_veiculo_veiculo_id;type:uuid;not null;index" json:"evento_veiculo_veiculo_id"`

	EventoVeiculoMotoristaID *uuid.UUID `gorm:"column:evento_veiculo_motorista_id;type:uuid" json:"evento_veiculo_motorista_id,omitempty"`

	EventoVeiculoObservacoes *string `gorm:"column:evento_veiculo_observacoes;type:text" json:"evento_veiculo_observacoes,omitempty"`

	EventoVeiculoCreatedAt time.Time      `gorm:"column:evento_veiculo_created_at;not null;autoCreateTime" json:"evento_veiculo_created_at"`
	EventoVeiculoUpdatedAt time.Time      `gorm:"column:evento_veiculo_updated_at;not null;autoUpdateTime" json:"evento_veiculo_updated_at"`
	EventoVeiculoDeletedAt gorm.DeletedAt `gorm:"column:evento_veiculo_deleted_at;index" json:"evento_veiculo_deleted_at,omitempty"`
}

func (EventoVeiculoModel) TableName() string { return "evento_veiculos" }

// BeforeCreate: gera o ID no lado da aplicação se vier vazio.
func (ev *EventoVeiculoModel) BeforeCreate(tx *gorm.DB) error {
	if ev.EventoVeiculoID == uuid.Nil {
		ev.EventoVeiculoID = uuid.New()
	}
	return nil
}
