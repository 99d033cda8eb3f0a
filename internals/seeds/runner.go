package seeds

import (
	"gorm.io/gorm"

	veiculos "voluntariado_backend/internals/seeds/veiculos"
	voluntarios "voluntariado_backend/internals/seeds/voluntarios"
)

// RunAllSeeds popula o banco de desenvolvimento. Todos os seeders são
// idempotentes; rodar duas vezes não duplica nada.
func RunAllSeeds(db *gorm.DB) {
	voluntarios.SeedVoluntariosFromJSON(db, "internals/seeds/voluntarios/data_voluntarios.json")
	veiculos.SeedVeiculosFromJSON(db, "internals/seeds/veiculos/data_veiculos.json")
}
