// internals/features/alocacoes/service/disponibilidade.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
	"voluntariado_backend/internals/constants"
	"voluntariado_backend/internals/helpers/dbtime"
)

// ConflitoEvento é o evento que já ocupa a janela consultada.
type ConflitoEvento struct {
	EventoID   uuid.UUID  `json:"evento_id"`
	NomeEscola string     `json:"nome_escola"`
	Data       time.Time  `json:"data"`
	HoraInicio dbtime.Tod `json:"hora_inicio"`
	HoraFim    dbtime.Tod `json:"hora_fim"`
}

func (c ConflitoEvento) Ref() *RefBloqueio {
	return &RefBloqueio{Tipo: "evento", ID: c.EventoID, Nome: c.NomeEscola}
}

// ConflitoVoluntario devolve o primeiro evento (ordenado por hora de início)
// em que o voluntário já está alocado e que sobrepõe a janela dada.
// Consulta indexada por voluntário+data; a sobreposição em si é decidida
// por Sobrepoe, para a regra ficar num lugar só.
func ConflitoVoluntario(db *gorm.DB, voluntarioID uuid.UUID, data time.Time, inicio, fim dbtime.Tod, excluirEventoID *uuid.UUID) (*ConflitoEvento, error) {
	q := db.Table("voluntario_eventos ve").
		Select(`e.evento_id AS evento_id,
			e.evento_nome_escola AS nome_escola,
			e.evento_data AS data,
			e.evento_hora_inicio AS hora_inicio,
			e.evento_hora_fim AS hora_fim`).
		Joins("JOIN eventos e ON e.evento_id = ve.voluntario_evento_evento_id").
		Where("ve.voluntario_evento_voluntario_id = ?", voluntarioID).
		Where("ve.voluntario_evento_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_data = ?", dbtime.SomenteData(data)).
		Order("e.evento_hora_inicio")
	if excluirEventoID != nil {
		q = q.Where("e.evento_id <> ?", *excluirEventoID)
	}

	var rows []ConflitoEvento
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		if Sobrepoe(data, inicio, fim, rows[i].Data, rows[i].HoraInicio, rows[i].HoraFim) {
			return &rows[i], nil
		}
	}
	return nil, nil
}

// ConflitoVeiculo: mesmo raciocínio, sobre evento_veiculos.
func ConflitoVeiculo(db *gorm.DB, veiculoID uuid.UUID, data time.Time, inicio, fim dbtime.Tod, excluirEventoID *uuid.UUID) (*ConflitoEvento, error) {
	q := db.Table("evento_veiculos ev").
		Select(`e.evento_id AS evento_id,
			e.evento_nome_escola AS nome_escola,
			e.evento_data AS data,
			e.evento_hora_inicio AS hora_inicio,
			e.evento_hora_fim AS hora_fim`).
		Joins("JOIN eventos e ON e.evento_id = ev.evento_veiculo_evento_id").
		Where("ev.evento_veiculo_veiculo_id = ?", veiculoID).
		Where("ev.evento_veiculo_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_data = ?", dbtime.SomenteData(data)).
		Order("e.evento_hora_inicio")
	if excluirEventoID != nil {
		q = q.Where("e.evento_id <> ?", *excluirEventoID)
	}

	var rows []ConflitoEvento
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		if Sobrepoe(data, inicio, fim, rows[i].Data, rows[i].HoraInicio, rows[i].HoraFim) {
			return &rows[i], nil
		}
	}
	return nil, nil
}

// VoluntarioDisponivel: leitura pura, sem efeito colateral.
func VoluntarioDisponivel(db *gorm.DB, voluntarioID uuid.UUID, data time.Time, inicio, fim dbtime.Tod, excluirEventoID *uuid.UUID) (bool, error) {
	conflito, err := ConflitoVoluntario(db, voluntarioID, data, inicio, fim, excluirEventoID)
	if err != nil {
		return false, err
	}
	return conflito == nil, nil
}

// VeiculoDisponivel: falso se o status não for "disponivel" OU se houver
// alocação viva sobrepondo a janela.
func VeiculoDisponivel(db *gorm.DB, veiculo *veiculoModel.VeiculoModel, data time.Time, inicio, fim dbtime.Tod, excluirEventoID *uuid.UUID) (bool, error) {
	if veiculo.VeiculoStatus != constants.StatusVeiculoDisponivel {
		return false, nil
	}
	conflito, err := ConflitoVeiculo(db, veiculo.VeiculoID, data, inicio, fim, excluirEventoID)
	if err != nil {
		return false, err
	}
	return conflito == nil, nil
}

// VoluntariosDisponiveis lista os voluntários ativos livres na janela.
// Uma query pega todas as alocações do dia; o filtro de sobreposição
// roda em memória (volume pequeno por data).
func VoluntariosDisponiveis(db *gorm.DB, data time.Time, inicio, fim dbtime.Tod) ([]voluntarioModel.VoluntarioModel, error) {
	type linha struct {
		VoluntarioID uuid.UUID  `json:"voluntario_id"`
		Data         time.Time  `json:"data"`
		HoraInicio   dbtime.Tod `json:"hora_inicio"`
		HoraFim      dbtime.Tod `json:"hora_fim"`
	}
	var linhas []linha
	if err := db.Table("voluntario_eventos ve").
		Select(`ve.voluntario_evento_voluntario_id AS voluntario_id,
			e.evento_data AS data,
			e.evento_hora_inicio AS hora_inicio,
			e.evento_hora_fim AS hora_fim`).
		Joins("JOIN eventos e ON e.evento_id = ve.voluntario_evento_evento_id").
		Where("ve.voluntario_evento_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_data = ?", dbtime.SomenteData(data)).
		Scan(&linhas).Error; err != nil {
		return nil, err
	}

	ocupados := make(map[uuid.UUID]bool)
	for _, l := range linhas {
		if Sobrepoe(data, inicio, fim, l.Data, l.HoraInicio, l.HoraFim) {
			ocupados[l.VoluntarioID] = true
		}
	}

	var todos []voluntarioModel.VoluntarioModel
	if err := db.
		Where("voluntario_status = ?", constants.StatusVoluntarioAtivo).
		Where("voluntario_deleted_at IS NULL").
		Order("voluntario_nome_completo").
		Find(&todos).Error; err != nil {
		return nil, err
	}

	livres := make([]voluntarioModel.VoluntarioModel, 0, len(todos))
	for _, v := range todos {
		if !ocupados[v.VoluntarioID] {
			livres = append(livres, v)
		}
	}
	return livres, nil
}

// VeiculosDisponiveis: análogo, só veículos com status "disponivel".
func VeiculosDisponiveis(db *gorm.DB, data time.Time, inicio, fim dbtime.Tod) ([]veiculoModel.VeiculoModel, error) {
	type linha struct {
		VeiculoID  uuid.UUID  `json:"veiculo_id"`
		Data       time.Time  `json:"data"`
		HoraInicio dbtime.Tod `json:"hora_inicio"`
		HoraFim    dbtime.Tod `json:"hora_fim"`
	}
	var linhas []linha
	if err := db.Table("evento_veiculos ev").
		Select(`ev.evento_veiculo_veiculo_id AS veiculo_id,
			e.evento_data AS data,
			e.evento_hora_inicio AS hora_inicio,
			e.evento_hora_fim AS hora_fim`).
		Joins("JOIN eventos e ON e.evento_id = ev.evento_veiculo_evento_id").
		Where("ev.evento_veiculo_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_data = ?", dbtime.SomenteData(data)).
		Scan(&linhas).Error; err != nil {
		return nil, err
	}

	ocupados := make(map[uuid.UUID]bool)
	for _, l := range linhas {
		if Sobrepoe(data, inicio, fim, l.Data, l.HoraInicio, l.HoraFim) {
			ocupados[l.VeiculoID] = true
		}
	}

	var todos []veiculoModel.VeiculoModel
	if err := db.
		Where("veiculo_status = ?", constants.StatusVeiculoDisponivel).
		Where("veiculo_deleted_at IS NULL").
		Order("veiculo_nome").
		Find(&todos).Error; err != nil {
		return nil, err
	}

	livres := make([]veiculoModel.VeiculoModel, 0, len(todos))
	for _, v := range todos {
		if !ocupados[v.VeiculoID] {
			livres = append(livres, v)
		}
	}
	return livres, nil
}
