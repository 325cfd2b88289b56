// Package sqlite persistencia embebida por defecto: la colección completa de
// ocorrências vive como un único documento JSON en una tabla clave/valor.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// Open abre (o crea) la base SQLite en path y migra la tabla clave/valor.
func Open(ctx context.Context, path string, log *logger.Logger) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ensureDirectory(path); err != nil {
		return nil, fmt.Errorf("crear directorio sqlite: %w", err)
	}

	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrar %s: %w", kvRecord{}.TableName(), err)
	}
	if log != nil {
		log.Info().Str("path", path).Msg("sqlite abierto")
	}
	return db, nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureDirectory(dsn string) error {
	candidate := strings.TrimSpace(dsn)
	if candidate == "" || strings.Contains(candidate, ":memory:") {
		return nil
	}
	candidate = strings.TrimPrefix(candidate, "file:")
	if idx := strings.Index(candidate, "?"); idx >= 0 {
		candidate = candidate[:idx]
	}
	dir := filepath.Dir(candidate)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
