package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/infrastructure/storage"
	"github.com/jhoicas/Litigios-api/pkg/config"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "sub", "litigios.db"),
	}}

	repo, closeFn, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	occs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}, logger.Nop())
	assert.Error(t, err)
}
