package helper

import "strings"

// ValidarCPF valida o dígito verificador do CPF.
// Aceita com ou sem máscara; nunca dá panic, só retorna false.
func ValidarCPF(cpf string) bool {
	digitos := somenteDigitos(cpf)
	if len(digitos) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no checksum, mas são inválidos
	todosIguais := true
	for i := 1; i < 11; i++ {
		if digitos[i] != digitos[0] {
			todosIguais = false
			break
		}
	}
	if todosIguais {
		return false
	}

	// 1º dígito verificador: pesos 10..2 sobre os 9 primeiros
	soma := 0
	for i := 0; i < 9; i++ {
		soma += int(digitos[i]-'0') * (10 - i)
	}
	resto := soma % 11
	dv1 := 0
	if resto >= 2 {
		dv1 = 11 - resto
	}
	if dv1 != int(digitos[9]-'0') {
		return false
	}

	// 2º dígito verificador: pesos 11..2 sobre os 10 primeiros
	soma = 0
	for i := 0; i < 10; i++ {
		soma += int(digitos[i]-'0') * (11 - i)
	}
	resto = soma % 11
	dv2 := 0
	if resto >= 2 {
		dv2 = 11 - resto
	}
	return dv2 == int(digitos[10]-'0')
}

// FormatarCPF devolve "000.000.000-00" quando possível; senão devolve a entrada.
func FormatarCPF(cpf string) string {
	d := somenteDigitos(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// LimparCPF remove a máscara (forma canônica gravada no banco).
func LimparCPF(cpf string) string {
	return somenteDigitos(cpf)
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
