// Package storage selecciona el backend de la colección de ocorrências según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Litigios-api/internal/domain/repository"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Litigios-api/pkg/config"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// Open abre el repositorio configurado. closeFn libera la conexión.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repo repository.OccurrenceRepository, closeFn func(), err error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("storage: esquema: %w", err)
		}
		log.Info().Str("driver", cfg.Storage.Driver).Msg("almacenamiento listo")
		return postgres.NewOccurrenceRepository(pool), pool.Close, nil

	case config.StorageSQLite, "":
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: abrir SQLite: %w", err)
		}
		log.Info().Str("driver", config.StorageSQLite).Str("path", cfg.Storage.SQLitePath).Msg("almacenamiento listo")
		return sqlite.NewOccurrenceRepository(db), func() { _ = sqlite.Close(db) }, nil

	default:
		return nil, nil, fmt.Errorf("storage: driver %q no soportado", cfg.Storage.Driver)
	}
}
