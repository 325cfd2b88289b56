package occurrence_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
)

var _ repository.OccurrenceRepository = (*memRepo)(nil)

// memRepo repositorio en memoria; corrupt simula una colección ilegible.
type memRepo struct {
	mu      sync.Mutex
	exists  bool
	items   []*entity.Occurrence
	corrupt bool
	writes  int
}

func (r *memRepo) Seed(_ context.Context, occs []*entity.Occurrence) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.exists {
		return false, nil
	}
	for _, o := range occs {
		r.items = append(r.items, o.Clone())
	}
	r.exists = true
	r.writes++
	return true, nil
}

func (r *memRepo) List(_ context.Context) ([]*entity.Occurrence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.corrupt {
		return nil, fmt.Errorf("%w: json inválido", domain.ErrStorage)
	}
	out := make([]*entity.Occurrence, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*entity.Occurrence, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Upsert(_ context.Context, o *entity.Occurrence) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.corrupt {
		return fmt.Errorf("%w: json inválido", domain.ErrStorage)
	}
	r.exists = true
	r.writes++
	for i, cur := range r.items {
		if cur.ID == o.ID {
			r.items[i] = o.Clone()
			return nil
		}
	}
	r.items = append(r.items, o.Clone())
	return nil
}

func (r *memRepo) ReplaceIfUnresolved(_ context.Context, o *entity.Occurrence) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == o.ID {
			if cur.Status.IsTerminal() {
				return false, nil
			}
			r.items[i] = o.Clone()
			r.writes++
			return true, nil
		}
	}
	return false, nil
}
