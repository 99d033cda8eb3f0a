// internals/features/alocacoes/service/capacidade.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OcupacaoCarona conta quantos voluntários vivos estão vinculados a um
// evento_veiculo. Sempre recontado dentro da transação que vai gravar,
// nunca cacheado — duas requisições concorrentes não podem ambas
// enxergar vaga sobrando.
func OcupacaoCarona(db *gorm.DB, eventoVeiculoID uuid.UUID) (int64, error) {
	var n int64
	err := db.Table("voluntario_eventos").
		Where("voluntario_evento_evento_veiculo_id = ?", eventoVeiculoID).
		Where("voluntario_evento_deleted_at IS NULL").
		Count(&n).Error
	return n, err
}

// PodeAdicionarCarona: true se ainda há vaga (ocupação < capacidade).
func PodeAdicionarCarona(db *gorm.DB, eventoVeiculoID uuid.UUID, capacidade int) (bool, int64, error) {
	ocupacao, err := OcupacaoCarona(db, eventoVeiculoID)
	if err != nil {
		return false, 0, err
	}
	return ocupacao < int64(capacidade), ocupacao, nil
}
