package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requisicaoValida() CreateEventoRequest {
	return CreateEventoRequest{
		NomeEscola:          "E.M. Dona Gabriela",
		ResponsavelEscola:   "Diretora Regina",
		TelefoneResponsavel: "(34) 3831-0000",
		Cidade:              "Patrocínio",
		Endereco:            "Rua das Escolas, 100",
		Data:                "2026-09-15",
		HoraInicio:          "09:00",
		HoraFim:             "12:00",
	}
}

func TestValidarDominioJanelaValida(t *testing.T) {
	req := requisicaoValida()
	j, errs := req.ValidarDominio()
	require.Empty(t, errs)
	assert.Equal(t, "2026-09-15", j.Data.Format("2006-01-02"))
	assert.Equal(t, "09:00:00", j.HoraInicio.Format("15:04:05"))
	assert.Equal(t, "12:00:00", j.HoraFim.Format("15:04:05"))
}

func TestValidarDominioFimAntesDoInicio(t *testing.T) {
	req := requisicaoValida()
	req.HoraInicio = "14:00"
	req.HoraFim = "12:00"
	_, errs := req.ValidarDominio()
	assert.Contains(t, errs, "evento_hora_fim")

	// início igual ao fim também é inválido (janela vazia)
	req.HoraInicio = "12:00"
	_, errs = req.ValidarDominio()
	assert.Contains(t, errs, "evento_hora_fim")
}

func TestValidarDominioFormatosInvalidos(t *testing.T) {
	req := requisicaoValida()
	req.Data = "15/09/2026"
	req.HoraInicio = "9h"
	_, errs := req.ValidarDominio()
	assert.Contains(t, errs, "evento_data")
	assert.Contains(t, errs, "evento_hora_inicio")
}

func TestValidarDominioStatusInvalido(t *testing.T) {
	req := requisicaoValida()
	status := "adiado"
	req.Status = &status
	_, errs := req.ValidarDominio()
	assert.Contains(t, errs, "evento_status")
}

func TestUpdateHerdaLadoNaoInformado(t *testing.T) {
	req := requisicaoValida()
	j, errs := req.ValidarDominio()
	require.Empty(t, errs)
	atual := req.ToModel(j)

	// só muda o fim para antes do início gravado: deve falhar
	fim := "08:00"
	upd := UpdateEventoRequest{HoraFim: &fim}
	_, errs = upd.ValidarDominio(atual)
	assert.Contains(t, errs, "evento_hora_fim")

	// fim coerente passa e herda data/início do modelo
	fim = "13:30"
	j2, errs := upd.ValidarDominio(atual)
	require.Empty(t, errs)
	assert.Equal(t, "09:00:00", j2.HoraInicio.Format("15:04:05"))
	assert.Equal(t, "13:30:00", j2.HoraFim.Format("15:04:05"))
}
