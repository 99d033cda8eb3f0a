package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cadastroValido() CreateVoluntarioRequest {
	return CreateVoluntarioRequest{
		NomeCompleto:     "Ana Paula Ribeiro",
		EmailCorporativo: "ANA.RIBEIRO@Sicoob.com.br",
		CPF:              "111.444.777-35",
		Telefone:         "(34) 99911-2233",
		Agencia:          "001",
		Setor:            "Crédito",
		TamanhoCamiseta:  "M",
	}
}

func TestNormalizeCanonizaEmailECPF(t *testing.T) {
	req := cadastroValido()
	req.Normalize()
	assert.Equal(t, "ana.ribeiro@sicoob.com.br", req.EmailCorporativo)
	assert.Equal(t, "11144477735", req.CPF)
}

func TestValidarDominioCadastro(t *testing.T) {
	req := cadastroValido()
	req.Normalize()
	assert.Empty(t, req.ValidarDominio())

	req.CPF = "11144477736" // dígito errado
	req.Telefone = "34999112233"
	req.Agencia = "999"
	req.TamanhoCamiseta = "XXG"
	errs := req.ValidarDominio()
	assert.Contains(t, errs, "voluntario_cpf")
	assert.Contains(t, errs, "voluntario_telefone")
	assert.Contains(t, errs, "voluntario_agencia")
	assert.Contains(t, errs, "voluntario_tamanho_camiseta")
}

func TestValidarDominioUpdateSoChecaCamposPresentes(t *testing.T) {
	// update vazio não reclama de nada
	upd := UpdateVoluntarioRequest{}
	assert.Empty(t, upd.ValidarDominio())

	cpf := "123"
	status := "afastado"
	upd = UpdateVoluntarioRequest{CPF: &cpf, Status: &status}
	errs := upd.ValidarDominio()
	assert.Contains(t, errs, "voluntario_cpf")
	assert.Contains(t, errs, "voluntario_status")
}

func TestFromVoluntarioModelMascaraCPF(t *testing.T) {
	req := cadastroValido()
	req.Normalize()
	require.Empty(t, req.ValidarDominio())

	resp := FromVoluntarioModel(req.ToModel())
	assert.Equal(t, "111.444.777-35", resp.CPF)
	assert.Equal(t, "001 - Matriz Patrocínio", resp.AgenciaNome)
	assert.Equal(t, "ativo", resp.Status)
}
