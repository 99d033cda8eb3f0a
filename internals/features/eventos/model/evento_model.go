// internals/features/eventos/model/evento_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntariado_backend/internals/helpers/dbtime"
)

// NOTE:
// - evento_data é DATE puro (meia-noite UTC no Go); horários em dbtime.Tod (TIME)
// - invariante: hora_inicio < hora_fim, validado no DTO
type EventoModel struct {
	EventoID uuid.UUID `gorm:"column:evento_id;type:uuid;primaryKey" json:"evento_id"`

	EventoNomeEscola          string `gorm:"column:evento_nome_escola;type:varchar(255);not null" json:"evento_nome_escola"`
	EventoResponsavelEscola   string `gorm:"column:evento_responsavel_escola;type:varchar(255);not null" json:"evento_responsavel_escola"`
	EventoTelefoneResponsavel string `gorm:"column:evento_telefone_responsavel;type:varchar(15);not null" json:"evento_telefone_responsavel"`
	EventoCidade              string `gorm:"column:evento_cidade;type:varchar(100);not null" json:"evento_cidade"`
	EventoEndereco            string `gorm:"column:evento_endereco;type:text;not null" json:"evento_endereco"`

	EventoData       time.Time  `gorm:"column:evento_data;type:date;not null;index:idx_eventos_data_inicio" json:"evento_data"`
	EventoHoraInicio dbtime.Tod `gorm:"column:evento_hora_inicio;type:time;not null;index:idx_eventos_data_inicio" json:"evento_hora_inicio"`
	EventoHoraFim    dbtime.Tod `gorm:"column:evento_hora_fim;type:time;not null" json:"evento_hora_fim"`

	EventoQtdTV         int `gorm:"column:evento_qtd_tv;not null;default:0" json:"evento_qtd_tv"`
	EventoQtdComputador int `gorm:"column:evento_qtd_computador;not null;default:0" json:"evento_qtd_computador"`

	EventoStatus      string  `gorm:"column:evento_status;type:varchar(20);not null;default:planejamento;index" json:"evento_status"`
	EventoObservacoes *string `gorm:"column:evento_observacoes;type:text" json:"evento_observacoes,omitempty"`
	EventoCriadoPor   *string `gorm:"column:evento_criado_por;type:varchar(255)" json:"evento_criado_por,omitempty"`

	EventoCreatedAt time.Time      `gorm:"column:evento_created_at;not null;autoCreateTime" json:"evento_created_at"`
	EventoUpdatedAt time.Time      `gorm:"column:evento_updated_at;not null;autoUpdateTime" json:"evento_updated_at"`
	EventoDeletedAt gorm.DeletedAt `gorm:"column:evento_deleted_at;index" json:"evento_deleted_at,omitempty"`
}

func (EventoModel) TableName() string { return "eventos" }

// BeforeCreate: gera o ID no lado da aplicação se vier vazio.
func (e *EventoModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventoID == uuid.Nil {
		e.EventoID = uuid.New()
	}
	return nil
}
