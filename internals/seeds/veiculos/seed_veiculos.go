// internals/seeds/veiculos/seed_veiculos.go
package veiculos

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
)

// SeedVeiculosFromJSON: idempotente por placa.
func SeedVeiculosFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SEED] veiculos: não consegui ler %s: %v", path, err)
		return
	}

	var rows []veiculoModel.VeiculoModel
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Printf("[SEED] veiculos: JSON inválido em %s: %v", path, err)
		return
	}

	for i := range rows {
		if err := db.
			Where("veiculo_placa = ?", rows[i].VeiculoPlaca).
			FirstOrCreate(&rows[i]).Error; err != nil {
			log.Printf("[SEED] veiculos: falha em %s: %v", rows[i].VeiculoPlaca, err)
		}
	}
	log.Printf("[SEED] veiculos: %d registros processados", len(rows))
}
