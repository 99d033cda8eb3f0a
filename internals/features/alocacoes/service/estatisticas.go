// internals/features/alocacoes/service/estatisticas.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	alocModel "voluntariado_backend/internals/features/alocacoes/model"
)

// OcupacaoVeiculo resume uma carona para o detalhe/estatística do evento.
type OcupacaoVeiculo struct {
	EventoVeiculoID uuid.UUID `json:"evento_veiculo_id"`
	VeiculoID       uuid.UUID `json:"veiculo_id"`
	VeiculoNome     string    `json:"veiculo_nome"`
	VeiculoPlaca    string    `json:"veiculo_placa"`
	Capacidade      int       `json:"capacidade"`
	Ocupacao        int64     `json:"ocupacao"`
	Percentual      float64   `json:"percentual"`
	MotoristaNome   *string   `json:"motorista_nome,omitempty"`
}

// EstatisticasEvento agrega os números exibidos no detalhe do evento.
// Leitura de dashboard: não precisa de isolamento transacional.
type EstatisticasEvento struct {
	TotalVoluntarios int64              `json:"total_voluntarios"`
	PorPresenca      map[string]int64   `json:"por_presenca"`
	Veiculos         []OcupacaoVeiculo  `json:"veiculos"`
}

func CalcularEstatisticasEvento(db *gorm.DB, eventoID uuid.UUID) (*EstatisticasEvento, error) {
	est := &EstatisticasEvento{PorPresenca: map[string]int64{}}

	if err := db.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_evento_id = ?", eventoID).
		Where("voluntario_evento_deleted_at IS NULL").
		Count(&est.TotalVoluntarios).Error; err != nil {
		return nil, err
	}

	type porPresenca struct {
		Presenca string `json:"presenca"`
		Total    int64  `json:"total"`
	}
	var pp []porPresenca
	if err := db.Table("voluntario_eventos").
		Select("voluntario_evento_presenca AS presenca, COUNT(*) AS total").
		Where("voluntario_evento_evento_id = ?", eventoID).
		Where("voluntario_evento_deleted_at IS NULL").
		Group("voluntario_evento_presenca").
		Scan(&pp).Error; err != nil {
		return nil, err
	}
	for _, p := range pp {
		est.PorPresenca[p.Presenca] = p.Total
	}

	type linhaVeiculo struct {
		EventoVeiculoID uuid.UUID `json:"evento_veiculo_id"`
		VeiculoID       uuid.UUID `json:"veiculo_id"`
		VeiculoNome     string    `json:"veiculo_nome"`
		VeiculoPlaca    string    `json:"veiculo_placa"`
		Capacidade      int       `json:"capacidade"`
		MotoristaNome   *string   `json:"motorista_nome"`
	}
	var lvs []linhaVeiculo
	if err := db.Table("evento_veiculos ev").
		Select(`ev.evento_veiculo_id AS evento_veiculo_id,
			v.veiculo_id AS veiculo_id,
			v.veiculo_nome AS veiculo_nome,
			v.veiculo_placa AS veiculo_placa,
			v.veiculo_capacidade AS capacidade,
			m.voluntario_nome_completo AS motorista_nome`).
		Joins("JOIN veiculos v ON v.veiculo_id = ev.evento_veiculo_veiculo_id").
		Joins("LEFT JOIN voluntarios m ON m.voluntario_id = ev.evento_veiculo_motorista_id").
		Where("ev.evento_veiculo_evento_id = ?", eventoID).
		Where("ev.evento_veiculo_deleted_at IS NULL").
		Order("v.veiculo_nome").
		Scan(&lvs).Error; err != nil {
		return nil, err
	}

	est.Veiculos = make([]OcupacaoVeiculo, 0, len(lvs))
	for _, lv := range lvs {
		ocupacao, err := OcupacaoCarona(db, lv.EventoVeiculoID)
		if err != nil {
			return nil, err
		}
		percentual := 0.0
		if lv.Capacidade > 0 {
			percentual = float64(ocupacao) / float64(lv.Capacidade) * 100
		}
		est.Veiculos = append(est.Veiculos, OcupacaoVeiculo{
			EventoVeiculoID: lv.EventoVeiculoID,
			VeiculoID:       lv.VeiculoID,
			VeiculoNome:     lv.VeiculoNome,
			VeiculoPlaca:    lv.VeiculoPlaca,
			Capacidade:      lv.Capacidade,
			Ocupacao:        ocupacao,
			Percentual:      percentual,
			MotoristaNome:   lv.MotoristaNome,
		})
	}
	return est, nil
}
