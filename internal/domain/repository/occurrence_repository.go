package repository

import (
	"context"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// OccurrenceRepository define el puerto de persistencia para Occurrence (DIP).
// Las ocorrências nunca se eliminan, por eso no hay Delete.
type OccurrenceRepository interface {
	// Seed escribe la colección inicial solo si todavía no existe ninguna.
	// Devuelve true si escribió.
	Seed(ctx context.Context, occs []*entity.Occurrence) (bool, error)
	// List devuelve todos los registros en orden de inserción.
	List(ctx context.Context) ([]*entity.Occurrence, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Occurrence, error)
	// Upsert reemplaza el registro completo con el mismo ID o lo agrega al final.
	Upsert(ctx context.Context, o *entity.Occurrence) error
	// ReplaceIfUnresolved reemplaza el registro solo si el almacenado sigue en
	// OPEN o IN_ANALYSIS (compare-and-swap del estado). false si ya estaba resuelto.
	ReplaceIfUnresolved(ctx context.Context, o *entity.Occurrence) (bool, error)
}
