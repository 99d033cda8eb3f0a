// internals/features/veiculos/model/veiculo_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VeiculoModel struct {
	VeiculoID uuid.UUID `gorm:"column:veiculo_id;type:uuid;primaryKey" json:"veiculo_id"`

	VeiculoNome  string `gorm:"column:veiculo_nome;type:varchar(100);not null" json:"veiculo_nome"`
	VeiculoPlaca string `gorm:"column:veiculo_placa;type:varchar(8);not null;uniqueIndex:uq_veiculos_placa" json:"veiculo_placa"`
	VeiculoTipo  string `gorm:"column:veiculo_tipo;type:varchar(20);not null" json:"veiculo_tipo"`

	// capacidade de passageiros; o limite é checado na hora de vincular carona
	VeiculoCapacidade int `gorm:"column:veiculo_capacidade;not null;default:5" json:"veiculo_capacidade"`

	VeiculoStatus      string  `gorm:"column:veiculo_status;type:varchar(20);not null;default:disponivel" json:"veiculo_status"`
	VeiculoObservacoes *string `gorm:"column:veiculo_observacoes;type:text" json:"veiculo_observacoes,omitempty"`

	VeiculoCreatedAt time.Time      `gorm:"column:veiculo_created_at;not null;autoCreateTime" json:"veiculo_created_at"`
	VeiculoUpdatedAt time.Time      `gorm:"column:veiculo_updated_at;not null;autoUpdateTime" json:"veiculo_updated_at"`
	VeiculoDeletedAt gorm.DeletedAt `gorm:"column:veiculo_deleted_at;index" json:"veiculo_deleted_at,omitempty"`
}

func (VeiculoModel) TableName() string { return "veiculos" }

// BeforeCreate: gera o ID no lado da aplicação se vier vazio.
func (v *VeiculoModel) BeforeCreate(tx *gorm.DB) error {
	if v.VeiculoID == uuid.Nil {
		v.VeiculoID = uuid.New()
	}
	return nil
}
