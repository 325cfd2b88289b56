// Package policy reúne las reglas de acceso y de ciclo de vida de las ocorrências.
// Son funciones puras: no leen almacenamiento ni reloj (el instante se recibe como argumento).
package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// VisibleTo filtra la colección según el rol del usuario.
// GENERAL_ADMIN y CD_ADMIN ven todo; STORE_ADMIN solo su loja; un rol desconocido no ve nada.
// Es la única frontera de autorización: listados, estadísticas y reportes parten de aquí.
func VisibleTo(user entity.User, all []*entity.Occurrence) []*entity.Occurrence {
	switch user.Role {
	case entity.RoleGeneralAdmin, entity.RoleCDAdmin:
		out := make([]*entity.Occurrence, len(all))
		copy(out, all)
		return out
	case entity.RoleStoreAdmin:
		out := make([]*entity.Occurrence, 0, len(all))
		for _, o := range all {
			if o.Store == user.Store {
				out = append(out, o)
			}
		}
		return out
	default:
		return []*entity.Occurrence{}
	}
}

// CanView forma puntual de VisibleTo.
func CanView(user entity.User, o *entity.Occurrence) bool {
	if o == nil {
		return false
	}
	switch user.Role {
	case entity.RoleGeneralAdmin, entity.RoleCDAdmin:
		return true
	case entity.RoleStoreAdmin:
		return o.Store == user.Store
	default:
		return false
	}
}

// CanCreate true para STORE_ADMIN y GENERAL_ADMIN.
func CanCreate(user entity.User) bool {
	switch user.Role {
	case entity.RoleStoreAdmin, entity.RoleGeneralAdmin:
		return true
	case entity.RoleCDAdmin:
		return false
	default:
		return false
	}
}

// CanResolve true si el usuario es CD_ADMIN y la ocorrência aún no tiene resolución.
func CanResolve(user entity.User, o *entity.Occurrence) bool {
	if o == nil {
		return false
	}
	switch user.Role {
	case entity.RoleCDAdmin:
		return !o.Status.IsTerminal()
	case entity.RoleGeneralAdmin, entity.RoleStoreAdmin:
		return false
	default:
		return false
	}
}

// CanTransition indica si el estado puede pasar de from a to.
// Mantener el mismo estado se permite (reemplazo de contenido); un estado terminal no cambia.
func CanTransition(from, to entity.Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case entity.StatusOpen:
		return to == entity.StatusInAnalysis || to.IsTerminal()
	case entity.StatusInAnalysis:
		return to.IsTerminal()
	case entity.StatusApproved, entity.StatusRejected:
		return false
	default:
		return false
	}
}

// Resolve produce una copia resuelta de la ocorrência. No modifica o.
// Revalida CanResolve aunque el llamador ya lo haya comprobado.
func Resolve(user entity.User, o *entity.Occurrence, decision entity.Status, comments string, now time.Time) (*entity.Occurrence, error) {
	if !decision.IsTerminal() {
		return nil, fmt.Errorf("%w: decisión %q inválida, se espera %s o %s",
			domain.ErrValidation, decision, entity.StatusApproved, entity.StatusRejected)
	}
	if o == nil {
		return nil, fmt.Errorf("%w: ocorrência inexistente", domain.ErrNotFound)
	}
	if !CanResolve(user, o) {
		if o.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: ocorrência %s ya resuelta (%s)", domain.ErrAuthorization, o.ID, o.Status)
		}
		return nil, fmt.Errorf("%w: el perfil %s no puede resolver ocorrências", domain.ErrAuthorization, user.Role)
	}

	out := o.Clone()
	out.Status = decision
	c, by, name := comments, user.ID, user.Name
	out.CDComments = &c
	out.CDDecisionBy = &by
	out.CDDecisionByName = &name
	out.UpdatedAt = now
	return out, nil
}

// Statistics conteos por estado.
type Statistics struct {
	Open       int `json:"open"`
	InAnalysis int `json:"in_analysis"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Total      int `json:"total"`
}

// ComputeStatistics cuenta por estado sobre la secuencia recibida.
// El llamador decide si ya viene filtrada; para dashboards debe venir de VisibleTo.
func ComputeStatistics(occs []*entity.Occurrence) Statistics {
	var s Statistics
	for _, o := range occs {
		switch o.Status {
		case entity.StatusOpen:
			s.Open++
		case entity.StatusInAnalysis:
			s.InAnalysis++
		case entity.StatusApproved:
			s.Approved++
		case entity.StatusRejected:
			s.Rejected++
		default:
			// estado desconocido: no entra en ningún balde ni en el total
			continue
		}
		s.Total++
	}
	return s
}

// StoreBuckets conteos por loja para el gráfico de status por unidad.
type StoreBuckets struct {
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Open     int `json:"open"`
}

// Total suma de los tres baldes.
func (b StoreBuckets) Total() int { return b.Approved + b.Rejected + b.Open }

// GroupByStore agrupa por loja. IN_ANALYSIS se suma al balde open, a diferencia
// de ComputeStatistics; se conserva así por compatibilidad con el reporte histórico.
func GroupByStore(occs []*entity.Occurrence) map[entity.Location]StoreBuckets {
	out := make(map[entity.Location]StoreBuckets)
	for _, o := range occs {
		b := out[o.Store]
		switch o.Status {
		case entity.StatusApproved:
			b.Approved++
		case entity.StatusRejected:
			b.Rejected++
		case entity.StatusOpen, entity.StatusInAnalysis:
			b.Open++
		default:
			continue
		}
		out[o.Store] = b
	}
	return out
}

// Matches búsqueda libre por título, nombre del producto o protocolo (sin distinguir mayúsculas).
func Matches(o *entity.Occurrence, query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Title), q) ||
		strings.Contains(strings.ToLower(o.ProductName), q) ||
		strings.Contains(strings.ToLower(o.ID), q)
}
