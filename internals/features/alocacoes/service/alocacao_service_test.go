package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	alocModel "voluntariado_backend/internals/features/alocacoes/model"
	eventoModel "voluntariado_backend/internals/features/eventos/model"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
	"voluntariado_backend/internals/constants"
	"voluntariado_backend/internals/helpers/dbtime"
)

/* =========================================================
   Infra de teste: sqlite em memória + fábricas
   ========================================================= */

func novoBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// uma conexão só: o :memory: do sqlite é por conexão
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&voluntarioModel.VoluntarioModel{},
		&veiculoModel.VeiculoModel{},
		&eventoModel.EventoModel{},
		&alocModel.EventoVeiculoModel{},
		&alocModel.VoluntarioEventoModel{},
	))
	return db
}

var seq int

func criarVoluntario(t *testing.T, db *gorm.DB, nome string) *voluntarioModel.VoluntarioModel {
	t.Helper()
	seq++
	v := voluntarioModel.VoluntarioModel{
		VoluntarioNomeCompleto:     nome,
		VoluntarioEmailCorporativo: fmt.Sprintf("teste%d@sicoob.com.br", seq),
		VoluntarioCPF:              fmt.Sprintf("%011d", seq), // checksum não é validado nesta camada
		VoluntarioTelefone:         "(34) 99999-0000",
		VoluntarioAgencia:          "001",
		VoluntarioSetor:            "Crédito",
		VoluntarioTamanhoCamiseta:  "M",
		VoluntarioStatus:           constants.StatusVoluntarioAtivo,
	}
	require.NoError(t, db.Create(&v).Error)
	return &v
}

func criarVeiculo(t *testing.T, db *gorm.DB, nome string, capacidade int) *veiculoModel.VeiculoModel {
	t.Helper()
	seq++
	v := veiculoModel.VeiculoModel{
		VeiculoNome:       nome,
		VeiculoPlaca:      fmt.Sprintf("TST%04d", seq),
		VeiculoTipo:       "van",
		VeiculoCapacidade: capacidade,
		VeiculoStatus:     constants.StatusVeiculoDisponivel,
	}
	require.NoError(t, db.Create(&v).Error)
	return &v
}

func criarEvento(t *testing.T, db *gorm.DB, escola, data, inicio, fim string) *eventoModel.EventoModel {
	t.Helper()
	e := eventoModel.EventoModel{
		EventoNomeEscola:          escola,
		EventoResponsavelEscola:   "Diretora Regina",
		EventoTelefoneResponsavel: "(34) 3831-0000",
		EventoCidade:              "Patrocínio",
		EventoEndereco:            "Rua das Escolas, 100",
		EventoData:                dia(data),
		EventoHoraInicio:          dbtime.MustParse(inicio),
		EventoHoraFim:             dbtime.MustParse(fim),
		EventoStatus:              constants.StatusEventoConfirmado,
	}
	require.NoError(t, db.Create(&e).Error)
	return &e
}

func alocar(t *testing.T, db *gorm.DB, evento *eventoModel.EventoModel, vol *voluntarioModel.VoluntarioModel) *alocModel.VoluntarioEventoModel {
	t.Helper()
	ve, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     evento.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "apoio_logistico",
	})
	require.NoError(t, err)
	return ve
}

/* =========================================================
   Alocação de voluntário
   ========================================================= */

func TestAlocarVoluntarioDuplicadoNoMesmoEvento(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")

	alocar(t, db, ev, vol)

	_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     ev.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	var conflito *ErroConflito
	require.ErrorAs(t, err, &conflito)
	assert.Contains(t, conflito.Motivo, "já está alocado")
}

func TestAlocarVoluntarioConflitoDeHorario(t *testing.T) {
	db := novoBanco(t)
	manha := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	sobreposto := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-15", "11:00", "14:00")
	vol := criarVoluntario(t, db, "Ana Paula")

	alocar(t, db, manha, vol)

	_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     sobreposto.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	var conflito *ErroConflito
	require.ErrorAs(t, err, &conflito)
	require.NotNil(t, conflito.Ref)
	assert.Equal(t, "evento", conflito.Ref.Tipo)
	assert.Equal(t, manha.EventoID, conflito.Ref.ID)
	assert.Contains(t, conflito.Motivo, "Dona Gabriela")
}

func TestAlocarVoluntarioJanelasEncostadasNaoConflitam(t *testing.T) {
	db := novoBanco(t)
	manha := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "10:00", "12:00")
	tarde := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-15", "12:00", "14:00")
	vol := criarVoluntario(t, db, "Ana Paula")

	alocar(t, db, manha, vol)

	_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     tarde.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	assert.NoError(t, err)
}

func TestAlocarVoluntarioEmOutraData(t *testing.T) {
	db := novoBanco(t)
	hoje := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	amanha := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-16", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")

	alocar(t, db, hoje, vol)

	_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     amanha.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	assert.NoError(t, err)
}

func TestRealocarAposRemocao(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")

	aloc := alocar(t, db, ev, vol)
	_, err := RemoverAlocacaoVoluntario(db, aloc.VoluntarioEventoID)
	require.NoError(t, err)

	// a linha soft-deleted não conta mais como duplicidade nem conflito
	_, err = AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     ev.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	assert.NoError(t, err)
}

/* =========================================================
   Carona: capacidade e pertencimento
   ========================================================= */

func TestCaronaCapacidadeEstourada(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 2)

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{
		EventoID:  ev.EventoID,
		VeiculoID: van.VeiculoID,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		vol := criarVoluntario(t, db, fmt.Sprintf("Caroneiro %d", i))
		_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
			EventoID:        ev.EventoID,
			VoluntarioID:    vol.VoluntarioID,
			Funcao:          "apoio_logistico",
			EventoVeiculoID: &carona.EventoVeiculoID,
		})
		require.NoError(t, err)
	}

	// terceiro não cabe
	extra := criarVoluntario(t, db, "Excedente")
	_, err = AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:        ev.EventoID,
		VoluntarioID:    extra.VoluntarioID,
		Funcao:          "apoio_logistico",
		EventoVeiculoID: &carona.EventoVeiculoID,
	})
	var conflito *ErroConflito
	require.ErrorAs(t, err, &conflito)
	require.NotNil(t, conflito.Ref)
	assert.Equal(t, "veiculo", conflito.Ref.Tipo)
	assert.Contains(t, conflito.Motivo, "capacidade máxima (2/2)")
}

func TestCaronaDeOutroEvento(t *testing.T) {
	db := novoBanco(t)
	evA := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	evB := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-16", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 5)

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{
		EventoID:  evA.EventoID,
		VeiculoID: van.VeiculoID,
	})
	require.NoError(t, err)

	vol := criarVoluntario(t, db, "Ana Paula")
	_, err = AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:        evB.EventoID,
		VoluntarioID:    vol.VoluntarioID,
		Funcao:          "monitor",
		EventoVeiculoID: &carona.EventoVeiculoID,
	})
	var val *ErroValidacao
	require.ErrorAs(t, err, &val)
	assert.Contains(t, val.Motivo, "outro evento")
}

/* =========================================================
   Alocação de veículo
   ========================================================= */

func TestAlocarVeiculoIndisponivel(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Quebrada", 5)
	require.NoError(t, db.Model(van).Update("veiculo_status", constants.StatusVeiculoManutencao).Error)

	_, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: van.VeiculoID})
	var conflito *ErroConflito
	require.ErrorAs(t, err, &conflito)
	assert.Contains(t, conflito.Motivo, "manutencao")
}

func TestAlocarVeiculoConflitoDeHorario(t *testing.T) {
	db := novoBanco(t)
	manha := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	sobreposto := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-15", "10:00", "13:00")
	van := criarVeiculo(t, db, "Van Teste", 5)

	_, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: manha.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	_, err = AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: sobreposto.EventoID, VeiculoID: van.VeiculoID})
	var conflito *ErroConflito
	require.ErrorAs(t, err, &conflito)
	assert.Equal(t, manha.EventoID, conflito.Ref.ID)
}

func TestAlocarVeiculoMotoristaPrecisaEstarAlocado(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 5)
	motorista := criarVoluntario(t, db, "Carlos Mota")

	// sem alocação prévia do motorista: erro de validação
	_, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{
		EventoID:    ev.EventoID,
		VeiculoID:   van.VeiculoID,
		MotoristaID: &motorista.VoluntarioID,
	})
	var val *ErroValidacao
	require.ErrorAs(t, err, &val)

	// alocado, funciona — e a alocação dele passa a apontar para a carona
	alocMotorista := alocar(t, db, ev, motorista)
	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{
		EventoID:    ev.EventoID,
		VeiculoID:   van.VeiculoID,
		MotoristaID: &motorista.VoluntarioID,
	})
	require.NoError(t, err)

	var recarregada alocModel.VoluntarioEventoModel
	require.NoError(t, db.First(&recarregada, "voluntario_evento_id = ?", alocMotorista.VoluntarioEventoID).Error)
	require.NotNil(t, recarregada.VoluntarioEventoEventoVeiculoID)
	assert.Equal(t, carona.EventoVeiculoID, *recarregada.VoluntarioEventoEventoVeiculoID)
	assert.True(t, recarregada.VoluntarioEventoVaiNoVeiculo)
}

func TestRemoverAlocacaoVeiculoDesvinculaCaroneiros(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 5)

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		vol := criarVoluntario(t, db, fmt.Sprintf("Caroneiro %d", i))
		aloc, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
			EventoID:        ev.EventoID,
			VoluntarioID:    vol.VoluntarioID,
			Funcao:          "apoio_logistico",
			EventoVeiculoID: &carona.EventoVeiculoID,
		})
		require.NoError(t, err)
		ids = append(ids, aloc.VoluntarioEventoID)
	}

	_, desvinculados, err := RemoverAlocacaoVeiculo(db, carona.EventoVeiculoID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), desvinculados)

	// caroneiros continuam no evento, vivos e sem carona
	for _, id := range ids {
		var ve alocModel.VoluntarioEventoModel
		require.NoError(t, db.First(&ve, "voluntario_evento_id = ?", id).Error)
		assert.Nil(t, ve.VoluntarioEventoEventoVeiculoID)
		assert.False(t, ve.VoluntarioEventoVaiNoVeiculo)
	}

	// o vínculo do veículo sumiu do escopo padrão
	var cnt int64
	require.NoError(t, db.Model(&alocModel.EventoVeiculoModel{}).
		Where("evento_veiculo_id = ?", carona.EventoVeiculoID).
		Count(&cnt).Error)
	assert.Zero(t, cnt)
}

/* =========================================================
   Presença / edição
   ========================================================= */

func TestAtualizarPresenca(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")
	aloc := alocar(t, db, ev, vol)

	assert.Equal(t, constants.PresencaPendente, aloc.VoluntarioEventoPresenca)

	atualizada, err := AtualizarPresenca(db, aloc.VoluntarioEventoID, constants.PresencaConfirmado)
	require.NoError(t, err)
	assert.Equal(t, constants.PresencaConfirmado, atualizada.VoluntarioEventoPresenca)

	_, err = AtualizarPresenca(db, aloc.VoluntarioEventoID, "talvez")
	var val *ErroValidacao
	require.ErrorAs(t, err, &val)
}

func TestEditarAlocacaoRemoverCarona(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 5)
	vol := criarVoluntario(t, db, "Ana Paula")

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	aloc, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:        ev.EventoID,
		VoluntarioID:    vol.VoluntarioID,
		Funcao:          "apoio_logistico",
		EventoVeiculoID: &carona.EventoVeiculoID,
	})
	require.NoError(t, err)

	editada, err := EditarAlocacaoVoluntario(db, aloc.VoluntarioEventoID, EdicaoAlocacaoVoluntario{RemoverCarona: true})
	require.NoError(t, err)
	assert.Nil(t, editada.VoluntarioEventoEventoVeiculoID)
	assert.False(t, editada.VoluntarioEventoVaiNoVeiculo)

	// a vaga voltou
	ocupacao, err := OcupacaoCarona(db, carona.EventoVeiculoID)
	require.NoError(t, err)
	assert.Zero(t, ocupacao)
}

/* =========================================================
   Evento: cancelar / excluir
   ========================================================= */

func TestCancelarEventoIdempotente(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")

	cancelado, mudou, err := CancelarEvento(db, ev.EventoID)
	require.NoError(t, err)
	assert.True(t, mudou)
	assert.Equal(t, constants.StatusEventoCancelado, cancelado.EventoStatus)

	// segunda vez: no-op informativo, sem erro
	cancelado, mudou, err = CancelarEvento(db, ev.EventoID)
	require.NoError(t, err)
	assert.False(t, mudou)
	assert.Equal(t, constants.StatusEventoCancelado, cancelado.EventoStatus)
}

func TestCancelarEventoConcluidoNaoMuda(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	require.NoError(t, db.Model(ev).Update("evento_status", constants.StatusEventoConcluido).Error)

	resultado, mudou, err := CancelarEvento(db, ev.EventoID)
	require.NoError(t, err)
	assert.False(t, mudou)
	assert.Equal(t, constants.StatusEventoConcluido, resultado.EventoStatus)
}

func TestExcluirEventoCascateiaAlocacoes(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")
	van := criarVeiculo(t, db, "Van Teste", 5)

	alocar(t, db, ev, vol)
	_, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	_, err = ExcluirEvento(db, ev.EventoID)
	require.NoError(t, err)

	var vivos int64
	require.NoError(t, db.Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_evento_id = ?", ev.EventoID).Count(&vivos).Error)
	assert.Zero(t, vivos)
	require.NoError(t, db.Model(&alocModel.EventoVeiculoModel{}).
		Where("evento_veiculo_evento_id = ?", ev.EventoID).Count(&vivos).Error)
	assert.Zero(t, vivos)

	// as linhas ainda existem fora do escopo padrão (soft delete)
	var todas int64
	require.NoError(t, db.Unscoped().Model(&alocModel.VoluntarioEventoModel{}).
		Where("voluntario_evento_evento_id = ?", ev.EventoID).Count(&todas).Error)
	assert.Equal(t, int64(1), todas)

	// o voluntário fica livre para a mesma janela em outro evento
	outro := criarEvento(t, db, "E.E. Santa Terezinha", "2026-09-15", "09:00", "12:00")
	_, err = AlocarVoluntario(db, NovaAlocacaoVoluntario{
		EventoID:     outro.EventoID,
		VoluntarioID: vol.VoluntarioID,
		Funcao:       "monitor",
	})
	assert.NoError(t, err)
}

/* =========================================================
   Guardas de exclusão
   ========================================================= */

func TestGuardaExclusaoVoluntario(t *testing.T) {
	db := novoBanco(t)
	futuro := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")
	aloc := alocar(t, db, futuro, vol)

	hoje := dia("2026-09-01")

	// compromisso futuro bloqueia
	err := GuardaExclusaoVoluntario(db, vol.VoluntarioID, hoje)
	var bloqueio *ErroBloqueio
	require.ErrorAs(t, err, &bloqueio)
	assert.Equal(t, futuro.EventoID, bloqueio.Ref.ID)

	// evento no próprio dia ainda conta como compromisso
	err = GuardaExclusaoVoluntario(db, vol.VoluntarioID, dia("2026-09-15"))
	require.ErrorAs(t, err, &bloqueio)

	// depois do evento, libera
	assert.NoError(t, GuardaExclusaoVoluntario(db, vol.VoluntarioID, dia("2026-09-16")))

	// evento cancelado não bloqueia
	_, _, err = CancelarEvento(db, futuro.EventoID)
	require.NoError(t, err)
	assert.NoError(t, GuardaExclusaoVoluntario(db, vol.VoluntarioID, hoje))

	// alocação removida também não
	require.NoError(t, db.Model(futuro).Update("evento_status", constants.StatusEventoConfirmado).Error)
	require.ErrorAs(t, GuardaExclusaoVoluntario(db, vol.VoluntarioID, hoje), &bloqueio)
	_, err = RemoverAlocacaoVoluntario(db, aloc.VoluntarioEventoID)
	require.NoError(t, err)
	assert.NoError(t, GuardaExclusaoVoluntario(db, vol.VoluntarioID, hoje))
}

func TestGuardaExclusaoVeiculo(t *testing.T) {
	db := novoBanco(t)
	futuro := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 5)

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: futuro.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	hoje := dia("2026-09-01")

	var bloqueio *ErroBloqueio
	require.ErrorAs(t, GuardaExclusaoVeiculo(db, van.VeiculoID, hoje), &bloqueio)
	assert.Equal(t, futuro.EventoID, bloqueio.Ref.ID)

	// depois do evento, libera
	assert.NoError(t, GuardaExclusaoVeiculo(db, van.VeiculoID, dia("2026-09-16")))

	// removendo o vínculo, libera
	_, _, err = RemoverAlocacaoVeiculo(db, carona.EventoVeiculoID)
	require.NoError(t, err)
	assert.NoError(t, GuardaExclusaoVeiculo(db, van.VeiculoID, hoje))
}

/* =========================================================
   Disponibilidade
   ========================================================= */

func TestVoluntariosDisponiveis(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	ocupada := criarVoluntario(t, db, "Ana Ocupada")
	livre := criarVoluntario(t, db, "Bia Livre")
	inativo := criarVoluntario(t, db, "Caio Inativo")
	require.NoError(t, db.Model(inativo).Update("voluntario_status", constants.StatusVoluntarioInativo).Error)

	alocar(t, db, ev, ocupada)

	livres, err := VoluntariosDisponiveis(db, dia("2026-09-15"), dbtime.MustParse("10:00"), dbtime.MustParse("13:00"))
	require.NoError(t, err)
	require.Len(t, livres, 1)
	assert.Equal(t, livre.VoluntarioID, livres[0].VoluntarioID)

	// janela sem sobreposição: a ocupada volta a aparecer
	livres, err = VoluntariosDisponiveis(db, dia("2026-09-15"), dbtime.MustParse("12:00"), dbtime.MustParse("14:00"))
	require.NoError(t, err)
	assert.Len(t, livres, 2)
}

func TestVeiculosDisponiveis(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	ocupado := criarVeiculo(t, db, "Van Ocupada", 5)
	livre := criarVeiculo(t, db, "Van Livre", 5)
	quebrado := criarVeiculo(t, db, "Van Quebrada", 5)
	require.NoError(t, db.Model(quebrado).Update("veiculo_status", constants.StatusVeiculoManutencao).Error)

	_, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: ocupado.VeiculoID})
	require.NoError(t, err)

	livres, err := VeiculosDisponiveis(db, dia("2026-09-15"), dbtime.MustParse("11:00"), dbtime.MustParse("15:00"))
	require.NoError(t, err)
	require.Len(t, livres, 1)
	assert.Equal(t, livre.VeiculoID, livres[0].VeiculoID)
}

func TestVoluntarioDisponivelIgnorandoEvento(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	vol := criarVoluntario(t, db, "Ana Paula")
	alocar(t, db, ev, vol)

	// sem exclusão: indisponível
	ok, err := VoluntarioDisponivel(db, vol.VoluntarioID, dia("2026-09-15"), dbtime.MustParse("09:00"), dbtime.MustParse("12:00"), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// ignorando o próprio evento (reagendamento): disponível
	ok, err = VoluntarioDisponivel(db, vol.VoluntarioID, dia("2026-09-15"), dbtime.MustParse("09:00"), dbtime.MustParse("12:00"), &ev.EventoID)
	require.NoError(t, err)
	assert.True(t, ok)
}

/* =========================================================
   Estatísticas
   ========================================================= */

func TestCalcularEstatisticasEvento(t *testing.T) {
	db := novoBanco(t)
	ev := criarEvento(t, db, "E.M. Dona Gabriela", "2026-09-15", "09:00", "12:00")
	van := criarVeiculo(t, db, "Van Teste", 4)

	carona, err := AlocarVeiculo(db, NovaAlocacaoVeiculo{EventoID: ev.EventoID, VeiculoID: van.VeiculoID})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		vol := criarVoluntario(t, db, fmt.Sprintf("Caroneiro %d", i))
		_, err := AlocarVoluntario(db, NovaAlocacaoVoluntario{
			EventoID:        ev.EventoID,
			VoluntarioID:    vol.VoluntarioID,
			Funcao:          "apoio_logistico",
			EventoVeiculoID: &carona.EventoVeiculoID,
		})
		require.NoError(t, err)
	}
	aPe := criarVoluntario(t, db, "Sem Carona")
	aloc := alocar(t, db, ev, aPe)
	_, err = AtualizarPresenca(db, aloc.VoluntarioEventoID, constants.PresencaConfirmado)
	require.NoError(t, err)

	est, err := CalcularEstatisticasEvento(db, ev.EventoID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), est.TotalVoluntarios)
	assert.Equal(t, int64(2), est.PorPresenca[constants.PresencaPendente])
	assert.Equal(t, int64(1), est.PorPresenca[constants.PresencaConfirmado])
	require.Len(t, est.Veiculos, 1)
	assert.Equal(t, int64(2), est.Veiculos[0].Ocupacao)
	assert.Equal(t, 4, est.Veiculos[0].Capacidade)
	assert.InDelta(t, 50.0, est.Veiculos[0].Percentual, 0.01)
}
