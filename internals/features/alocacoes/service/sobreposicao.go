// internals/features/alocacoes/service/sobreposicao.go
package service

import (
	"time"

	"voluntariado_backend/internals/helpers/dbtime"
)

// Sobrepoe decide se duas janelas de horário no mesmo dia se sobrepõem.
// Intervalos semiabertos [inicio, fim): encostar no limite NÃO conta
// como sobreposição (ex.: 10:00-12:00 × 12:00-14:00). Essa é a regra
// única de conflito usada em todo o sistema.
func Sobrepoe(dataA time.Time, inicioA, fimA dbtime.Tod, dataB time.Time, inicioB, fimB dbtime.Tod) bool {
	if !dbtime.MesmaData(dataA, dataB) {
		return false
	}
	return inicioA.Time.Before(fimB.Time) && inicioB.Time.Before(fimA.Time)
}
