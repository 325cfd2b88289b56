// seed crea la colección de ocorrências (semilla de demostración) en el almacenamiento
// configurado y, opcionalmente, importa un volcado JSON de ocorrências existentes.
//
// Uso: go run ./cmd/seed [ruta/ocorrencias.json] [cp1252]
// Sin argumentos solo inicializa. Con "cp1252" el archivo se lee como Windows-1252
// (exportaciones de planilla); por defecto UTF-8. El volcado puede venir del localStorage
// de la aplicación web (camelCase, loja y estado como texto mostrado) o del propio servicio
// (snake_case, códigos).
// Cada registro pasa por Upsert: estados que retroceden o campos inmutables alterados se rechazan.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/lock"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/storage"
	"github.com/jhoicas/Litigios-api/pkg/config"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer closeRepo()

	store := occurrence.NewStore(repo, lock.NewLocalLocker(), log)
	if err := store.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Inicializar: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) < 2 {
		fmt.Printf("Colección lista: %d ocorrências\n", len(store.ListAll(ctx)))
		return
	}

	occs, err := readDump(os.Args[1], len(os.Args) > 2 && strings.EqualFold(os.Args[2], "cp1252"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	var imported, rejected int
	for _, o := range occs {
		if err := store.Upsert(ctx, o); err != nil {
			rejected++
			log.Warn().Err(err).Str("occurrence_id", o.ID).Msg("registro rechazado")
			continue
		}
		imported++
	}
	fmt.Printf("Importadas %d ocorrências, %d rechazadas (total en colección: %d)\n",
		imported, rejected, len(store.ListAll(ctx)))
}
