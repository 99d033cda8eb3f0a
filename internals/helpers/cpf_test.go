package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCPF(t *testing.T) {
	// dígitos verificadores corretos
	assert.True(t, ValidarCPF("11144477735"))
	assert.True(t, ValidarCPF("93541134780"))

	// dígito verificador errado
	assert.False(t, ValidarCPF("11144477736"))
	assert.False(t, ValidarCPF("93541134781"))

	// todos os dígitos iguais passam no checksum, mas são inválidos
	assert.False(t, ValidarCPF("00000000000"))
	assert.False(t, ValidarCPF("11111111111"))
	assert.False(t, ValidarCPF("99999999999"))

	// tamanho errado
	assert.False(t, ValidarCPF(""))
	assert.False(t, ValidarCPF("123"))
	assert.False(t, ValidarCPF("111444777350"))

	// não numérico
	assert.False(t, ValidarCPF("1114447773a"))
}

func TestLimparCPF(t *testing.T) {
	assert.Equal(t, "11144477735", LimparCPF("111.444.777-35"))
	assert.Equal(t, "11144477735", LimparCPF(" 111 444 777 35 "))
	assert.Equal(t, "11144477735", LimparCPF("11144477735"))
}

func TestFormatarCPF(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatarCPF("11144477735"))
	// fora do formato esperado volta como veio
	assert.Equal(t, "123", FormatarCPF("123"))
}
