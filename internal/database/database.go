// /internal/database/database.go
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/model"
)

// Open abre a conexão com o banco configurado (postgres ou sqlite).
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.URL)
	case "sqlite":
		dialector = sqlite.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco (%s): %w", cfg.Driver, err)
	}

	// sqlite em memória só é compartilhado dentro de uma mesma conexão
	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("conexão com o banco de dados estabelecida", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate cria ou atualiza as tabelas do painel.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("executando migrações do banco de dados")
	err := db.AutoMigrate(
		&model.Marca{}, &model.Cliente{}, &model.Produto{}, &model.Fornecedor{}, &model.Promocao{},
	)
	if err != nil {
		return fmt.Errorf("falha ao executar migrações: %w", err)
	}
	log.Info("migrações concluídas com sucesso")
	return nil
}
