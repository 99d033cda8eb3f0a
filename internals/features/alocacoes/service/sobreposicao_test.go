package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voluntariado_backend/internals/helpers/dbtime"
)

func dia(s string) time.Time {
	d, err := dbtime.ParseData(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSobrepoe(t *testing.T) {
	d := dia("2026-09-15")

	// sobreposição parcial
	assert.True(t, Sobrepoe(d, dbtime.MustParse("09:00"), dbtime.MustParse("12:00"), d, dbtime.MustParse("11:00"), dbtime.MustParse("14:00")))

	// uma janela contida na outra
	assert.True(t, Sobrepoe(d, dbtime.MustParse("08:00"), dbtime.MustParse("18:00"), d, dbtime.MustParse("10:00"), dbtime.MustParse("11:00")))

	// janelas idênticas
	assert.True(t, Sobrepoe(d, dbtime.MustParse("09:00"), dbtime.MustParse("12:00"), d, dbtime.MustParse("09:00"), dbtime.MustParse("12:00")))

	// intervalos meio-abertos: fim encostado no início NÃO conflita
	assert.False(t, Sobrepoe(d, dbtime.MustParse("10:00"), dbtime.MustParse("12:00"), d, dbtime.MustParse("12:00"), dbtime.MustParse("14:00")))
	assert.False(t, Sobrepoe(d, dbtime.MustParse("12:00"), dbtime.MustParse("14:00"), d, dbtime.MustParse("10:00"), dbtime.MustParse("12:00")))

	// janelas disjuntas
	assert.False(t, Sobrepoe(d, dbtime.MustParse("08:00"), dbtime.MustParse("09:00"), d, dbtime.MustParse("15:00"), dbtime.MustParse("16:00")))

	// datas diferentes nunca conflitam, mesmo com horários iguais
	outro := dia("2026-09-16")
	assert.False(t, Sobrepoe(d, dbtime.MustParse("09:00"), dbtime.MustParse("12:00"), outro, dbtime.MustParse("09:00"), dbtime.MustParse("12:00")))
}

func TestSobrepoeSimetrica(t *testing.T) {
	d := dia("2026-09-15")
	casos := [][4]string{
		{"09:00", "12:00", "11:00", "14:00"},
		{"10:00", "12:00", "12:00", "14:00"},
		{"08:00", "18:00", "10:00", "11:00"},
		{"08:00", "09:00", "15:00", "16:00"},
	}
	for _, c := range casos {
		ab := Sobrepoe(d, dbtime.MustParse(c[0]), dbtime.MustParse(c[1]), d, dbtime.MustParse(c[2]), dbtime.MustParse(c[3]))
		ba := Sobrepoe(d, dbtime.MustParse(c[2]), dbtime.MustParse(c[3]), d, dbtime.MustParse(c[0]), dbtime.MustParse(c[1]))
		assert.Equal(t, ab, ba, "Sobrepoe deve ser simétrica para %v", c)
	}
}
