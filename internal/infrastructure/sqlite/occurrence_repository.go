package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
)

// CollectionKey clave de la fila que guarda la colección.
const CollectionKey = "litigios_occurrences"

var _ repository.OccurrenceRepository = (*OccurrenceRepo)(nil)

// OccurrenceRepo implementa OccurrenceRepository reescribiendo el documento
// completo en cada mutación. mu serializa leer-modificar-escribir dentro del proceso.
type OccurrenceRepo struct {
	db  *gorm.DB
	key string
	mu  sync.Mutex
}

// NewOccurrenceRepository crea el repositorio sobre la clave por defecto.
func NewOccurrenceRepository(db *gorm.DB) *OccurrenceRepo {
	return &OccurrenceRepo{db: db, key: CollectionKey}
}

// Seed escribe occs solo si la fila todavía no existe.
func (r *OccurrenceRepo) Seed(ctx context.Context, occs []*entity.Occurrence) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&kvRecord{}).Where("key = ?", r.key).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		raw, err := encode(occs)
		if err != nil {
			return err
		}
		row := kvRecord{Key: r.key, Value: raw, UpdatedAt: stamp()}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: semilla: %v", domain.ErrStorage, err)
	}
	return seeded, nil
}

// List devuelve la colección completa. Sin fila = colección vacía.
func (r *OccurrenceRepo) List(ctx context.Context) ([]*entity.Occurrence, error) {
	occs, _, err := r.load(ctx)
	return occs, err
}

// GetByID (nil, nil) si no existe.
func (r *OccurrenceRepo) GetByID(ctx context.Context, id string) (*entity.Occurrence, error) {
	occs, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range occs {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// Upsert reemplaza en sitio o agrega al final y reescribe el documento.
func (r *OccurrenceRepo) Upsert(ctx context.Context, o *entity.Occurrence) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	occs, _, err := r.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, cur := range occs {
		if cur.ID == o.ID {
			occs[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		occs = append(occs, o)
	}
	return r.save(ctx, occs)
}

// ReplaceIfUnresolved reemplaza solo si el registro guardado no es terminal.
func (r *OccurrenceRepo) ReplaceIfUnresolved(ctx context.Context, o *entity.Occurrence) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	occs, _, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, cur := range occs {
		if cur.ID != o.ID {
			continue
		}
		if cur.Status.IsTerminal() {
			return false, nil
		}
		occs[i] = o
		return true, r.save(ctx, occs)
	}
	return false, nil
}

func (r *OccurrenceRepo) load(ctx context.Context) ([]*entity.Occurrence, bool, error) {
	var row kvRecord
	if err := r.db.WithContext(ctx).Where("key = ?", r.key).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*entity.Occurrence{}, false, nil
		}
		return nil, false, fmt.Errorf("%w: leer colección: %v", domain.ErrStorage, err)
	}
	var raw []dto.OccurrenceRecord
	if err := json.Unmarshal([]byte(row.Value), &raw); err != nil {
		return nil, true, fmt.Errorf("%w: colección corrupta: %v", domain.ErrStorage, err)
	}
	out := make([]*entity.Occurrence, 0, len(raw))
	for _, rec := range raw {
		out = append(out, rec.ToEntity())
	}
	return out, true, nil
}

func (r *OccurrenceRepo) save(ctx context.Context, occs []*entity.Occurrence) error {
	raw, err := encode(occs)
	if err != nil {
		return fmt.Errorf("%w: serializar colección: %v", domain.ErrStorage, err)
	}
	row := kvRecord{Key: r.key, Value: raw, UpdatedAt: stamp()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      row.Value,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: escribir colección: %v", domain.ErrStorage, err)
	}
	return nil
}

func encode(occs []*entity.Occurrence) (string, error) {
	raw := make([]dto.OccurrenceRecord, 0, len(occs))
	for _, o := range occs {
		raw = append(raw, dto.NewOccurrenceRecord(o))
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func stamp() string { return time.Now().UTC().Format(time.RFC3339Nano) }
