package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"voluntariado_backend/internals/configs"
	alocModel "voluntariado_backend/internals/features/alocacoes/model"
	eventoModel "voluntariado_backend/internals/features/eventos/model"
	veiculoModel "voluntariado_backend/internals/features/veiculos/model"
	voluntarioModel "voluntariado_backend/internals/features/voluntarios/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=voluntariado&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
}

// AutoMigrate cria/ajusta o schema. Opt-in via DB_AUTOMIGRATE=true;
// em produção o schema é gerenciado por migração SQL.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&voluntarioModel.VoluntarioModel{},
		&veiculoModel.VeiculoModel{},
		&eventoModel.EventoModel{},
		&alocModel.EventoVeiculoModel{},
		&alocModel.VoluntarioEventoModel{},
	); err != nil {
		log.Fatalf("❌ Falha no AutoMigrate: %v", err)
	}
	log.Println("✅ Schema migrado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// ping leve para o pool já subir pronto
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
