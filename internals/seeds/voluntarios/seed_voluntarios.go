// internals/seeds/voluntarios/seed_voluntarios.go
package voluntarios

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
)

// SeedVoluntariosFromJSON carrega o arquivo e insere com FirstOrCreate
// (idempotente por email corporativo).
func SeedVoluntariosFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SEED] voluntarios: não consegui ler %s: %v", path, err)
		return
	}

	var rows []voluntarioModel.VoluntarioModel
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Printf("[SEED] voluntarios: JSON inválido em %s: %v", path, err)
		return
	}

	for i := range rows {
		if err := db.
			Where("voluntario_email_corporativo = ?", rows[i].VoluntarioEmailCorporativo).
			FirstOrCreate(&rows[i]).Error; err != nil {
			log.Printf("[SEED] voluntarios: falha em %s: %v", rows[i].VoluntarioEmailCorporativo, err)
		}
	}
	log.Printf("[SEED] voluntarios: %d registros processados", len(rows))
}
