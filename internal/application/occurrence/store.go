// Package occurrence es el dueño de la colección canónica de ocorrências.
// Los demás componentes reciben copias y proponen reemplazos completos vía Upsert.
package occurrence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// DefaultTitle título asignado cuando el borrador no trae uno.
const DefaultTitle = "Nova Ocorrência"

// Store almacén de ocorrências sobre un OccurrenceRepository.
type Store struct {
	repo   repository.OccurrenceRepository
	locker ports.Locker
	log    *logger.Logger
	now    func() time.Time
	ids    *ProtocolGenerator
}

// Option configura un Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithProtocolGenerator reemplaza el generador de protocolos.
func WithProtocolGenerator(g *ProtocolGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// NewStore construye el almacén. No toca el almacenamiento: llamar Initialize al arrancar.
func NewStore(repo repository.OccurrenceRepository, locker ports.Locker, log *logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		repo:   repo,
		locker: locker,
		log:    log.Component("occurrence_store"),
		now:    func() time.Time { return time.Now() },
		ids:    NewProtocolGenerator(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// clock instante actual en UTC con precisión de milisegundos (la que sobrevive a JSON y a PostgreSQL).
func (s *Store) clock() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Initialize escribe la semilla si todavía no existe colección. Idempotente.
func (s *Store) Initialize(ctx context.Context) error {
	seeded, err := s.repo.Seed(ctx, SeedOccurrences(s.clock()))
	if err != nil {
		return fmt.Errorf("inicializar colección: %w", err)
	}
	if seeded {
		s.log.Info().Msg("colección de ocorrências creada con datos de ejemplo")
	}
	return nil
}

// ListAll devuelve todas las ocorrências sin filtrar. Un fallo de lectura se
// registra y se trata como colección vacía.
func (s *Store) ListAll(ctx context.Context) []*entity.Occurrence {
	occs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("colección ilegible, se devuelve vacía")
		return []*entity.Occurrence{}
	}
	return occs
}

// GetByID devuelve la ocorrência o ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (*entity.Occurrence, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: ocorrência %s", domain.ErrNotFound, id)
	}
	return o, nil
}

// Upsert reemplaza el registro con el mismo ID o lo agrega. Recibe el registro completo;
// no mezcla campos. Rechaza cambios de campos inmutables y retrocesos de estado.
func (s *Store) Upsert(ctx context.Context, o *entity.Occurrence) error {
	if err := validateRecord(o); err != nil {
		return err
	}
	unlock, err := s.locker.Lock(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("%w: candado %s: %v", domain.ErrConflict, o.ID, err)
	}
	defer unlock()

	cur, err := s.repo.GetByID(ctx, o.ID)
	if err != nil {
		return err
	}
	if cur != nil {
		if err := checkReplacement(cur, o); err != nil {
			return err
		}
	}
	return s.repo.Upsert(ctx, o.Clone())
}

// Create completa el borrador, asigna protocolo, estado OPEN y createdAt = updatedAt = ahora.
func (s *Store) Create(ctx context.Context, d entity.OccurrenceDraft) (*entity.Occurrence, error) {
	if strings.TrimSpace(d.Description) == "" {
		return nil, fmt.Errorf("%w: la descripción (observações) es obligatoria", domain.ErrValidation)
	}
	if d.Store == "" {
		return nil, fmt.Errorf("%w: la loja de origen es obligatoria", domain.ErrValidation)
	}
	if !d.Store.Valid() {
		return nil, fmt.Errorf("%w: loja %q desconocida", domain.ErrValidation, d.Store)
	}
	if strings.TrimSpace(d.Title) == "" {
		d.Title = DefaultTitle
	}

	// El listado completo sirve para descartar protocolos ya usados; si la colección
	// está corrupta la escritura falla en vez de sobrescribirla.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	used := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		used[e.ID] = struct{}{}
	}

	now := s.clock()
	o := &entity.Occurrence{
		ID: s.ids.Next(now, func(id string) bool {
			_, ok := used[id]
			return ok
		}),
		Title:             d.Title,
		Description:       d.Description,
		ProductCode:       d.ProductCode,
		ProductName:       d.ProductName,
		Store:             d.Store,
		ReportedBy:        d.ReportedBy,
		ReportedByName:    d.ReportedByName,
		Status:            entity.StatusOpen,
		CreatedAt:         now,
		UpdatedAt:         now,
		AIAnalysis:        d.AIAnalysis,
		OccurrenceDetails: d.OccurrenceDetails,
	}
	if err := s.Upsert(ctx, o); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// Resolve aplica la decisión del CD con compare-and-swap sobre el estado:
// relee el registro bajo candado y solo escribe si sigue sin resolver.
func (s *Store) Resolve(ctx context.Context, user entity.User, id string, decision entity.Status, comments string) (*entity.Occurrence, error) {
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: candado %s: %v", domain.ErrConflict, id, err)
	}
	defer unlock()

	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := policy.Resolve(user, cur, decision, comments, s.clock())
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.ReplaceIfUnresolved(ctx, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: ocorrência %s ya fue resuelta por otro usuario", domain.ErrAuthorization, id)
	}
	s.log.Info().
		Str("occurrence_id", id).
		Str("decision", string(decision)).
		Str("actor_id", user.ID).
		Msg("ocorrência resuelta")
	return next.Clone(), nil
}

// validateRecord campos obligatorios, enums cerrados e invariante de decisión.
func validateRecord(o *entity.Occurrence) error {
	if o == nil {
		return fmt.Errorf("%w: ocorrência nula", domain.ErrValidation)
	}
	var problems []string
	if strings.TrimSpace(o.ID) == "" {
		problems = append(problems, "id vacío")
	}
	if strings.TrimSpace(o.Description) == "" {
		problems = append(problems, "descripción vacía")
	}
	if !o.Store.Valid() {
		problems = append(problems, fmt.Sprintf("loja %q desconocida", o.Store))
	}
	if !o.Status.Valid() {
		problems = append(problems, fmt.Sprintf("estado %q desconocido", o.Status))
	}
	if o.CreatedAt.IsZero() {
		problems = append(problems, "created_at vacío")
	}
	if o.UpdatedAt.Before(o.CreatedAt) {
		problems = append(problems, "updated_at anterior a created_at")
	}
	if o.LitigationType != nil && !o.LitigationType.Valid() {
		problems = append(problems, fmt.Sprintf("tipo de litigio %q desconocido", *o.LitigationType))
	}
	if err := o.CheckDecisionInvariant(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// checkReplacement reglas de escritura única y avance de estado.
func checkReplacement(cur, next *entity.Occurrence) error {
	switch {
	case cur.Store != next.Store:
		return fmt.Errorf("%w: la loja de origen no se puede cambiar", domain.ErrValidation)
	case cur.ReportedBy != next.ReportedBy:
		return fmt.Errorf("%w: el autor del registro no se puede cambiar", domain.ErrValidation)
	case !cur.CreatedAt.Equal(next.CreatedAt):
		return fmt.Errorf("%w: created_at no se puede cambiar", domain.ErrValidation)
	case !policy.CanTransition(cur.Status, next.Status):
		return fmt.Errorf("%w: transición %s -> %s no permitida", domain.ErrConflict, cur.Status, next.Status)
	}
	if cur.Status.IsTerminal() && !sameDecision(cur, next) {
		return fmt.Errorf("%w: la decisión del CD ya fue registrada", domain.ErrConflict)
	}
	return nil
}

func sameDecision(a, b *entity.Occurrence) bool {
	return eqPtr(a.CDComments, b.CDComments) &&
		eqPtr(a.CDDecisionBy, b.CDDecisionBy) &&
		eqPtr(a.CDDecisionByName, b.CDDecisionByName)
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
