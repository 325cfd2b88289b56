package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// Valores iniciales del formulario de litigio.
const (
	defaultLogisticsUnit      = "CDBR"
	defaultConjugatedDelivery = "N"
	defaultIsInventoryOpen    = "Não"
	defaultPackType           = "CX"

	// loja del formulario cuando el perfil no tiene una asignada
	defaultStore = entity.LocationAsaNorte
)

// OccurrenceUseCase listado, detalle, alta y resolución de ocorrências para un usuario.
// Toda lectura pasa por policy.VisibleTo / policy.CanView.
type OccurrenceUseCase struct {
	store   *occurrence.Store
	events  ports.EventPublisher
	metrics ports.MetricsRecorder
	log     *logger.Logger
}

// NewOccurrenceUseCase construye el caso de uso. events y metrics pueden ser nil.
func NewOccurrenceUseCase(store *occurrence.Store, events ports.EventPublisher, metrics ports.MetricsRecorder, log *logger.Logger) *OccurrenceUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OccurrenceUseCase{store: store, events: events, metrics: metrics, log: log.Component("occurrence_usecase")}
}

// Visible ocorrências que el usuario puede ver, en el orden del almacén.
func (uc *OccurrenceUseCase) Visible(ctx context.Context, user entity.User) []*entity.Occurrence {
	return policy.VisibleTo(user, uc.store.ListAll(ctx))
}

// List aplica búsqueda libre, filtro de estado y paginación sobre la vista del usuario.
func (uc *OccurrenceUseCase) List(ctx context.Context, user entity.User, f dto.OccurrenceFilter) (*dto.OccurrenceListResponse, error) {
	var status entity.Status
	if s := strings.TrimSpace(f.Status); s != "" {
		status = entity.Status(strings.ToUpper(s))
		if !status.Valid() {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrValidation, f.Status)
		}
	}
	f.DefaultPage()

	matched := make([]*entity.Occurrence, 0)
	for _, o := range uc.Visible(ctx, user) {
		if status != "" && o.Status != status {
			continue
		}
		if !policy.Matches(o, f.Query) {
			continue
		}
		matched = append(matched, o)
	}

	items := make([]dto.OccurrenceSummary, 0, f.Limit)
	for i := f.Offset; i < len(matched) && len(items) < f.Limit; i++ {
		items = append(items, dto.ToOccurrenceSummary(matched[i]))
	}
	return &dto.OccurrenceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matched)},
	}, nil
}

// Get detalle. Una ocorrência fuera de la vista del usuario se reporta como inexistente.
func (uc *OccurrenceUseCase) Get(ctx context.Context, user entity.User, id string) (*dto.OccurrenceResponse, error) {
	o, err := uc.getVisible(ctx, user, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToOccurrenceResponse(o, policy.CanResolve(user, o))
	return &resp, nil
}

// Create registra una ocorrência en la loja del usuario.
func (uc *OccurrenceUseCase) Create(ctx context.Context, user entity.User, in dto.CreateOccurrenceRequest) (*dto.OccurrenceResponse, error) {
	if !policy.CanCreate(user) {
		return nil, fmt.Errorf("%w: el perfil %s no registra ocorrências", domain.ErrAuthorization, user.Role)
	}
	if in.LitigationType != nil && !in.LitigationType.Valid() {
		return nil, fmt.Errorf("%w: tipo de litigio %q desconocido", domain.ErrValidation, *in.LitigationType)
	}

	store := user.Store
	if store == "" {
		store = defaultStore
	}
	draft := entity.OccurrenceDraft{
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		ProductCode:       in.ProductCode,
		ProductName:       in.ProductName,
		Store:             store,
		ReportedBy:        user.ID,
		ReportedByName:    user.Name,
		AIAnalysis:        in.AIAnalysis,
		OccurrenceDetails: withFormDefaults(in.OccurrenceDetails, user),
	}
	if draft.Title == "" && strings.TrimSpace(in.ProductName) != "" {
		draft.Title = "Ocorrência - " + strings.TrimSpace(in.ProductName)
	}

	o, err := uc.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.metrics.OccurrenceCreated(string(o.Store))
	uc.publish(ctx, ports.EventOccurrenceCreated, o, user.ID)

	resp := dto.ToOccurrenceResponse(o, policy.CanResolve(user, o))
	return &resp, nil
}

// Resolve registra la decisión del CD.
func (uc *OccurrenceUseCase) Resolve(ctx context.Context, user entity.User, id string, in dto.ResolveOccurrenceRequest) (*dto.OccurrenceResponse, error) {
	decision := entity.Status(strings.ToUpper(strings.TrimSpace(in.Decision)))
	if !decision.IsTerminal() {
		return nil, fmt.Errorf("%w: decision debe ser %s o %s", domain.ErrValidation, entity.StatusApproved, entity.StatusRejected)
	}
	if _, err := uc.getVisible(ctx, user, id); err != nil {
		return nil, err
	}

	o, err := uc.store.Resolve(ctx, user, id, decision, in.Comments)
	if err != nil {
		return nil, err
	}
	uc.metrics.OccurrenceResolved(string(decision))
	uc.publish(ctx, ports.EventOccurrenceResolved, o, user.ID)

	resp := dto.ToOccurrenceResponse(o, false)
	return &resp, nil
}

func (uc *OccurrenceUseCase) getVisible(ctx context.Context, user entity.User, id string) (*entity.Occurrence, error) {
	o, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(user, o) {
		return nil, fmt.Errorf("%w: ocorrência %s", domain.ErrNotFound, id)
	}
	return o, nil
}

// publish best-effort: la operación ya quedó persistida.
func (uc *OccurrenceUseCase) publish(ctx context.Context, eventType string, o *entity.Occurrence, actorID string) {
	if uc.events == nil {
		return
	}
	ev := ports.OccurrenceEvent{
		ID:      o.ID,
		Store:   string(o.Store),
		Status:  string(o.Status),
		ActorID: actorID,
		At:      o.UpdatedAt,
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if err := uc.events.Publish(ctx, eventType, ev); err != nil {
		uc.log.Warn().Err(err).Str("occurrence_id", o.ID).Str("event", eventType).Msg("no se pudo publicar el evento")
	}
}

// withFormDefaults completa los valores iniciales del formulario que no vinieron.
// El reclamante por defecto es quien registra.
func withFormDefaults(d entity.OccurrenceDetails, user entity.User) entity.OccurrenceDetails {
	setDefault(&d.LogisticsUnit, defaultLogisticsUnit)
	setDefault(&d.ConjugatedDelivery, defaultConjugatedDelivery)
	setDefault(&d.IsInventoryOpen, defaultIsInventoryOpen)
	setDefault(&d.PackType, defaultPackType)
	setDefault(&d.ClaimantID, user.ID)
	setDefault(&d.ClaimantName, user.Name)
	if d.LitigationType == nil {
		lt := entity.LitigationQuantity
		d.LitigationType = &lt
	}
	return d
}

func setDefault(field **string, value string) {
	if *field == nil {
		v := value
		*field = &v
	}
}
