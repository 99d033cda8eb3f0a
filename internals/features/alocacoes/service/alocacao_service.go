// internals/features/alocacoes/service/alocacao_service.go
//
// Máquina de estados das alocações (evento × voluntário, evento × veículo).
// Toda função de escrita espera rodar DENTRO de um db.Transaction aberto
// pelo controller: checagem de conflito/capacidade e gravação acontecem
// na mesma transação, então duas requisições concorrentes não conseguem
// estourar a capacidade nem duplicar horário.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	alocModel "voluntariado_backend/internals/features/alocacoes/model"
	eventoModel "voluntariado_backend/internals/features/eventos/model"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
	"voluntariado_backend/internals/constants"
	"voluntariado_backend/internals/helpers/dbtime"
)

/* =========================================================
   Entradas
   ========================================================= */

type NovaAlocacaoVoluntario struct {
	EventoID          uuid.UUID
	VoluntarioID      uuid.UUID
	Funcao            string
	FuncaoCustomizada *string
	EventoVeiculoID   *uuid.UUID // carona (opcional)
	Observacoes       *string
}

type NovaAlocacaoVeiculo struct {
	EventoID    uuid.UUID
	VeiculoID   uuid.UUID
	MotoristaID *uuid.UUID // precisa já estar alocado no evento
	Observacoes *string
}

type EdicaoAlocacaoVoluntario struct {
	Funcao            *string
	FuncaoCustomizada *string
	EventoVeiculoID   *uuid.UUID // nova carona
	RemoverCarona     bool       // desvincular da carona atual
	Observacoes       *string
}

/* =========================================================
   Lookups (linhas vivas)
   ========================================================= */

func buscarEvento(db *gorm.DB, id uuid.UUID) (*eventoModel.EventoModel, error) {
	var e eventoModel.EventoModel
	if err := db.First(&e, "evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ErroNaoEncontrado{Entidade: "Evento"}
		}
		return nil, err
	}
	return &e, nil
}

func buscarVoluntario(db *gorm.DB, id uuid.UUID) (*voluntarioModel.VoluntarioModel, error) {
	var v voluntarioModel.VoluntarioModel
	if err := db.First(&v, "voluntario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ErroNaoEncontrado{Entidade: "Voluntário"}
		}
		return nil, err
	}
	return &v, nil
}

func buscarVeiculo(db *gorm.DB, id uuid.UUID) (*veiculoModel.VeiculoModel, error) {
	var v veiculoModel.VeiculoModel
	if err := db.First(&v, "veiculo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ErroNaoEncontrado{Entidade: "Veículo"}
		}
		return nil, err
	}
	return &v, nil
}

func buscarEventoVeiculo(db *gorm.DB, id uuid.UUID) (*alocModel.EventoVeiculoModel, error) {
	var ev alocModel.EventoVeiculoModel
	if err := db.First(&ev, "evento_veiculo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ErroNaoEncontrado{Entidade: "Alocação de veículo"}
		}
		return nil, err
	}
	return &ev, nil
}

func buscarAlocacaoVoluntario(db *gorm.DB, id uuid.UUID) (*alocModel.VoluntarioEventoModel, error) {
	var ve alocModel.VoluntarioEventoModel
	if err := db.First(&ve, "voluntario_evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ErroNaoEncontrado{Entidade: "Alocação de voluntário"}
		}
		return nil, err
	}
	return &ve, nil
}

/* =========================================================
   Alocação de voluntário
   ========================================================= */

// AlocarVoluntario valida (a) voluntário ainda não vinculado ao evento,
// (b) nenhum conflito de horário, (c) carona do mesmo evento e com vaga,
// e grava. Em violação nada é escrito.
func AlocarVoluntario(tx *gorm.DB, req NovaAlocacaoVoluntario) (*alocModel.VoluntarioEventoModel, error) {
	evento, err := buscarEvento(tx, req.EventoID)
	if err != nil {
		return nil, err
	}
	voluntario, err := buscarVoluntario(tx, req.VoluntarioID)
	if err != nil {
		return nil, err
	}

	// (a) duplicidade no mesmo evento
	var cnt int64
	if err := tx.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_evento_id = ? AND voluntario_evento_voluntario_id = ?", req.EventoID, req.VoluntarioID).
		Where("voluntario_evento_deleted_at IS NULL").
		Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, &ErroConflito{
			Motivo: fmt.Sprintf("%s já está alocado(a) neste evento", voluntario.VoluntarioNomeCompleto),
			Ref:    &RefBloqueio{Tipo: "evento", ID: evento.EventoID, Nome: evento.EventoNomeEscola},
		}
	}

	// (b) conflito de horário com outro evento
	conflito, err := ConflitoVoluntario(tx, req.VoluntarioID, evento.EventoData, evento.EventoHoraInicio, evento.EventoHoraFim, &evento.EventoID)
	if err != nil {
		return nil, err
	}
	if conflito != nil {
		return nil, &ErroConflito{
			Motivo: fmt.Sprintf("%s já está alocado(a) no evento %q no mesmo horário", voluntario.VoluntarioNomeCompleto, conflito.NomeEscola),
			Ref:    conflito.Ref(),
		}
	}

	m := alocModel.VoluntarioEventoModel{
		VoluntarioEventoEventoID:          req.EventoID,
		VoluntarioEventoVoluntarioID:      req.VoluntarioID,
		VoluntarioEventoFuncao:            req.Funcao,
		VoluntarioEventoFuncaoCustomizada: req.FuncaoCustomizada,
		VoluntarioEventoPresenca:          constants.PresencaPendente,
		VoluntarioEventoObservacoes:       req.Observacoes,
	}

	// (c) carona: mesmo evento + vaga, rechecado aqui dentro da transação
	if req.EventoVeiculoID != nil {
		if err := validarCarona(tx, *req.EventoVeiculoID, req.EventoID); err != nil {
			return nil, err
		}
		m.VoluntarioEventoEventoVeiculoID = req.EventoVeiculoID
		m.VoluntarioEventoVaiNoVeiculo = true
	}

	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// validarCarona confere que o evento_veiculo é do mesmo evento e ainda
// tem vaga (ocupação < capacidade do veículo).
func validarCarona(tx *gorm.DB, eventoVeiculoID, eventoID uuid.UUID) error {
	ev, err := buscarEventoVeiculo(tx, eventoVeiculoID)
	if err != nil {
		return err
	}
	if ev.EventoVeiculoEventoID != eventoID {
		return &ErroValidacao{Motivo: "A carona informada pertence a outro evento"}
	}
	veiculo, err := buscarVeiculo(tx, ev.EventoVeiculoVeiculoID)
	if err != nil {
		return err
	}
	ok, ocupacao, err := PodeAdicionarCarona(tx, eventoVeiculoID, veiculo.VeiculoCapacidade)
	if err != nil {
		return err
	}
	if !ok {
		return &ErroConflito{
			Motivo: fmt.Sprintf("O veículo %s já atingiu a capacidade máxima (%d/%d)", veiculo.VeiculoNome, ocupacao, veiculo.VeiculoCapacidade),
			Ref:    &RefBloqueio{Tipo: "veiculo", ID: veiculo.VeiculoID, Nome: veiculo.VeiculoNome},
		}
	}
	return nil
}

// RemoverAlocacaoVoluntario: só soft delete, sem cascata.
func RemoverAlocacaoVoluntario(tx *gorm.DB, id uuid.UUID) (*alocModel.VoluntarioEventoModel, error) {
	ve, err := buscarAlocacaoVoluntario(tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Delete(&alocModel.VoluntarioEventoModel{}, "voluntario_evento_id = ?", id).Error; err != nil {
		return nil, err
	}
	return ve, nil
}

// AtualizarPresenca muda o status de presença de uma alocação viva.
func AtualizarPresenca(tx *gorm.DB, id uuid.UUID, presenca string) (*alocModel.VoluntarioEventoModel, error) {
	if !constants.ContemString(constants.StatusPresenca, presenca) {
		return nil, &ErroValidacao{Motivo: "Status de presença inválido"}
	}
	ve, err := buscarAlocacaoVoluntario(tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_id = ?", id).
		Update("voluntario_evento_presenca", presenca).Error; err != nil {
		return nil, err
	}
	ve.VoluntarioEventoPresenca = presenca
	return ve, nil
}

// EditarAlocacaoVoluntario: edição parcial (função, carona, observações).
func EditarAlocacaoVoluntario(tx *gorm.DB, id uuid.UUID, req EdicaoAlocacaoVoluntario) (*alocModel.VoluntarioEventoModel, error) {
	ve, err := buscarAlocacaoVoluntario(tx, id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Funcao != nil {
		if !constants.ChaveValida(constants.Funcoes, *req.Funcao) {
			return nil, &ErroValidacao{Motivo: "Função inválida"}
		}
		patch["voluntario_evento_funcao"] = *req.Funcao
		ve.VoluntarioEventoFuncao = *req.Funcao
	}
	if req.FuncaoCustomizada != nil {
		patch["voluntario_evento_funcao_customizada"] = *req.FuncaoCustomizada
		ve.VoluntarioEventoFuncaoCustomizada = req.FuncaoCustomizada
	}
	if req.Observacoes != nil {
		patch["voluntario_evento_observacoes"] = *req.Observacoes
		ve.VoluntarioEventoObservacoes = req.Observacoes
	}

	switch {
	case req.RemoverCarona:
		patch["voluntario_evento_evento_veiculo_id"] = nil
		patch["voluntario_evento_vai_no_veiculo"] = false
		ve.VoluntarioEventoEventoVeiculoID = nil
		ve.VoluntarioEventoVaiNoVeiculo = false
	case req.EventoVeiculoID != nil && (ve.VoluntarioEventoEventoVeiculoID == nil || *ve.VoluntarioEventoEventoVeiculoID != *req.EventoVeiculoID):
		if err := validarCarona(tx, *req.EventoVeiculoID, ve.VoluntarioEventoEventoID); err != nil {
			return nil, err
		}
		patch["voluntario_evento_evento_veiculo_id"] = *req.EventoVeiculoID
		patch["voluntario_evento_vai_no_veiculo"] = true
		ve.VoluntarioEventoEventoVeiculoID = req.EventoVeiculoID
		ve.VoluntarioEventoVaiNoVeiculo = true
	}

	if len(patch) == 0 {
		return ve, nil
	}
	if err := tx.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_id = ?", id).
		Updates(patch).Error; err != nil {
		return nil, err
	}
	return ve, nil
}

/* =========================================================
   Alocação de veículo
   ========================================================= */

// AlocarVeiculo valida (a) veículo disponível, (b) ainda não vinculado a
// este evento, (c) sem conflito de horário com outros eventos, (d) se
// houver motorista, ele já está alocado no evento — e nesse caso a
// alocação do motorista passa a apontar para a carona recém-criada.
func AlocarVeiculo(tx *gorm.DB, req NovaAlocacaoVeiculo) (*alocModel.EventoVeiculoModel, error) {
	evento, err := buscarEvento(tx, req.EventoID)
	if err != nil {
		return nil, err
	}
	veiculo, err := buscarVeiculo(tx, req.VeiculoID)
	if err != nil {
		return nil, err
	}

	// (a) status do veículo
	if veiculo.VeiculoStatus != constants.StatusVeiculoDisponivel {
		return nil, &ErroConflito{
			Motivo: fmt.Sprintf("O veículo %s não está disponível (status: %s)", veiculo.VeiculoNome, veiculo.VeiculoStatus),
			Ref:    &RefBloqueio{Tipo: "veiculo", ID: veiculo.VeiculoID, Nome: veiculo.VeiculoNome},
		}
	}

	// (b) duplicidade no mesmo evento
	var cnt int64
	if err := tx.Model(&alocModel.EventoVeiculoModel{}).
		Where("evento_veiculo_evento_id = ? AND evento_veiculo_veiculo_id = ?", req.EventoID, req.VeiculoID).
		Where("evento_veiculo_deleted_at IS NULL").
		Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, &ErroConflito{
			Motivo: fmt.Sprintf("O veículo %s já está vinculado a este evento", veiculo.VeiculoNome),
			Ref:    &RefBloqueio{Tipo: "veiculo", ID: veiculo.VeiculoID, Nome: veiculo.VeiculoNome},
		}
	}

	// (c) conflito de horário com outro evento
	conflito, err := ConflitoVeiculo(tx, req.VeiculoID, evento.EventoData, evento.EventoHoraInicio, evento.EventoHoraFim, &evento.EventoID)
	if err != nil {
		return nil, err
	}
	if conflito != nil {
		return nil, &ErroConflito{
			Motivo: fmt.Sprintf("O veículo %s já está alocado no evento %q no mesmo horário", veiculo.VeiculoNome, conflito.NomeEscola),
			Ref:    conflito.Ref(),
		}
	}

	// (d) motorista precisa já ter alocação viva neste evento
	var alocMotorista *alocModel.VoluntarioEventoModel
	if req.MotoristaID != nil {
		var am alocModel.VoluntarioEventoModel
		err := tx.
			Where("voluntario_evento_evento_id = ? AND voluntario_evento_voluntario_id = ?", req.EventoID, *req.MotoristaID).
			First(&am).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ErroValidacao{Motivo: "O motorista precisa estar alocado como voluntário neste evento"}
			}
			return nil, err
		}
		alocMotorista = &am
	}

	m := alocModel.EventoVeiculoModel{
		EventoVeiculoEventoID:    req.EventoID,
		EventoVeiculoVeiculoID:   req.VeiculoID,
		EventoVeiculoMotoristaID: req.MotoristaID,
		EventoVeiculoObservacoes: req.Observacoes,
	}
	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}

	// o motorista vai no próprio veículo
	if alocMotorista != nil {
		if err := tx.Model(&alocModel.VoluntarioEventoModel{}).
			Where("voluntario_evento_id = ?", alocMotorista.VoluntarioEventoID).
			Updates(map[string]interface{}{
				"voluntario_evento_evento_veiculo_id": m.EventoVeiculoID,
				"voluntario_evento_vai_no_veiculo":    true,
			}).Error; err != nil {
			return nil, err
		}
	}

	return &m, nil
}

// RemoverAlocacaoVeiculo soft-deleta o vínculo e DESVINCULA (não deleta)
// as caronas: os voluntários seguem ativos no evento, só perdem o veículo.
// Devolve quantas caronas foram desvinculadas.
func RemoverAlocacaoVeiculo(tx *gorm.DB, id uuid.UUID) (*alocModel.EventoVeiculoModel, int64, error) {
	ev, err := buscarEventoVeiculo(tx, id)
	if err != nil {
		return nil, 0, err
	}

	res := tx.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_evento_veiculo_id = ?", id).
		Where("voluntario_evento_deleted_at IS NULL").
		Updates(map[string]interface{}{
			"voluntario_evento_evento_veiculo_id": nil,
			"voluntario_evento_vai_no_veiculo":    false,
		})
	if res.Error != nil {
		return nil, 0, res.Error
	}

	if err := tx.Delete(&alocModel.EventoVeiculoModel{}, "evento_veiculo_id = ?", id).Error; err != nil {
		return nil, 0, err
	}
	return ev, res.RowsAffected, nil
}

/* =========================================================
   Evento: cancelar / excluir
   ========================================================= */

// CancelarEvento: permitido de qualquer status exceto concluído/cancelado —
// nesses dois o retorno é informativo (mudou=false), não erro. Não
// soft-deleta o evento nem as alocações.
func CancelarEvento(tx *gorm.DB, eventoID uuid.UUID) (*eventoModel.EventoModel, bool, error) {
	evento, err := buscarEvento(tx, eventoID)
	if err != nil {
		return nil, false, err
	}
	if evento.EventoStatus == constants.StatusEventoConcluido || evento.EventoStatus == constants.StatusEventoCancelado {
		return evento, false, nil
	}
	if err := tx.Model(&eventoModel.EventoModel{}).
		Where("evento_id = ?", eventoID).
		Update("evento_status", constants.StatusEventoCancelado).Error; err != nil {
		return nil, false, err
	}
	evento.EventoStatus = constants.StatusEventoCancelado
	return evento, true, nil
}

// ExcluirEvento soft-deleta o evento e cascateia o soft delete para
// todas as alocações de voluntário e de veículo dele.
func ExcluirEvento(tx *gorm.DB, eventoID uuid.UUID) (*eventoModel.EventoModel, error) {
	evento, err := buscarEvento(tx, eventoID)
	if err != nil {
		return nil, err
	}
	if err := tx.Delete(&alocModel.VoluntarioEventoModel{}, "voluntario_evento_evento_id = ?", eventoID).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&alocModel.EventoVeiculoModel{}, "evento_veiculo_evento_id = ?", eventoID).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&eventoModel.EventoModel{}, "evento_id = ?", eventoID).Error; err != nil {
		return nil, err
	}
	return evento, nil
}

/* =========================================================
   Guardas de exclusão (voluntário / veículo)
   ========================================================= */

// GuardaExclusaoVoluntario falha se o voluntário tem alocação viva em
// evento futuro, vivo e não cancelado. `referencia` é "hoje" (injetado
// para teste); eventos de hoje ainda contam como compromisso.
func GuardaExclusaoVoluntario(db *gorm.DB, voluntarioID uuid.UUID, referencia time.Time) error {
	type linha struct {
		EventoID   uuid.UUID `json:"evento_id"`
		NomeEscola string    `json:"nome_escola"`
	}
	var l linha
	err := db.Table("voluntario_eventos ve").
		Select("e.evento_id AS evento_id, e.evento_nome_escola AS nome_escola").
		Joins("JOIN eventos e ON e.evento_id = ve.voluntario_evento_evento_id").
		Where("ve.voluntario_evento_voluntario_id = ?", voluntarioID).
		Where("ve.voluntario_evento_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_status <> ?", constants.StatusEventoCancelado).
		Where("e.evento_data >= ?", dbtime.SomenteData(referencia)).
		Limit(1).
		Scan(&l).Error
	if err != nil {
		return err
	}
	if l.EventoID != uuid.Nil {
		return &ErroBloqueio{
			Motivo: fmt.Sprintf("Voluntário tem compromisso futuro no evento %q; remova a alocação antes de excluir", l.NomeEscola),
			Ref:    &RefBloqueio{Tipo: "evento", ID: l.EventoID, Nome: l.NomeEscola},
		}
	}
	return nil
}

// GuardaExclusaoVeiculo: idem, sobre alocações de veículo em eventos
// futuros e vivos.
func GuardaExclusaoVeiculo(db *gorm.DB, veiculoID uuid.UUID, referencia time.Time) error {
	type linha struct {
		EventoID   uuid.UUID `json:"evento_id"`
		NomeEscola string    `json:"nome_escola"`
	}
	var l linha
	err := db.Table("evento_veiculos ev").
		Select("e.evento_id AS evento_id, e.evento_nome_escola AS nome_escola").
		Joins("JOIN eventos e ON e.evento_id = ev.evento_veiculo_evento_id").
		Where("ev.evento_veiculo_veiculo_id = ?", veiculoID).
		Where("ev.evento_veiculo_deleted_at IS NULL").
		Where("e.evento_deleted_at IS NULL").
		Where("e.evento_data >= ?", dbtime.SomenteData(referencia)).
		Limit(1).
		Scan(&l).Error
	if err != nil {
		return err
	}
	if l.EventoID != uuid.Nil {
		return &ErroBloqueio{
			Motivo: fmt.Sprintf("Veículo está alocado no evento futuro %q; remova a alocação antes de excluir", l.NomeEscola),
			Ref:    &RefBloqueio{Tipo: "evento", ID: l.EventoID, Nome: l.NomeEscola},
		}
	}
	return nil
}
