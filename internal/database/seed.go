// /internal/database/seed.go
package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ericoliveiras/painel-admin/internal/model"
)

// MarcasPadrao são as marcas cadastradas pelo comando seed.
var MarcasPadrao = []string{
	"Adidas",
	"Colcci",
	"Hering",
	"Nike",
	"Osklen",
	"Reserva",
}

// SeedMarcas cadastra as marcas que ainda não existem. Pode rodar mais de uma vez.
func SeedMarcas(ctx context.Context, db *gorm.DB, log *zap.Logger, nomes []string) (int, error) {
	criadas := 0
	for _, nome := range nomes {
		marca := model.Marca{Nome: nome}
		res := db.WithContext(ctx).Where(model.Marca{Nome: nome}).FirstOrCreate(&marca)
		if res.Error != nil {
			return criadas, fmt.Errorf("falha ao criar a marca %q: %w", nome, res.Error)
		}
		if res.RowsAffected > 0 {
			criadas++
			log.Info("marca criada", zap.String("nome", nome), zap.String("id", marca.ID))
		}
	}
	log.Info("seed de marcas concluído", zap.Int("criadas", criadas), zap.Int("total", len(nomes)))
	return criadas, nil
}
