package policy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var (
	generalAdmin = entity.User{ID: "admin_geral", Name: "Roberto (Diretoria)", Role: entity.RoleGeneralAdmin, Store: entity.LocationCD}
	cdAdmin      = entity.User{ID: "admin_cd", Name: "Carlos (Logística)", Role: entity.RoleCDAdmin, Store: entity.LocationCD}
	storeAsa     = entity.User{ID: "gerente_an", Name: "Ana (Gerente)", Role: entity.RoleStoreAdmin, Store: entity.LocationAsaNorte}
	storeSia     = entity.User{ID: "gerente_sia", Name: "Marcos (Gerente)", Role: entity.RoleStoreAdmin, Store: entity.LocationSIA}
	unknownRole  = entity.User{ID: "x", Name: "X", Role: entity.Role("AUDITOR"), Store: entity.LocationCD}
)

func decided(id string, store entity.Location, status entity.Status) *entity.Occurrence {
	by, name, c := "admin_cd", "Carlos (Logística)", "ok"
	return &entity.Occurrence{
		ID: id, Title: "t" + id, Description: "d", Store: store, Status: status,
		CDDecisionBy: &by, CDDecisionByName: &name, CDComments: &c,
	}
}

func open(id string, store entity.Location, status entity.Status) *entity.Occurrence {
	return &entity.Occurrence{ID: id, Title: "t" + id, Description: "d", Store: store, Status: status}
}

// sample reproduce el conjunto semilla: 2 de ASA_NORTE, 1 SIA, 1 AGUAS_CLARAS.
func sample() []*entity.Occurrence {
	return []*entity.Occurrence{
		open("1", entity.LocationAsaNorte, entity.StatusOpen),
		decided("2", entity.LocationSIA, entity.StatusApproved),
		decided("3", entity.LocationAguasClaras, entity.StatusRejected),
		open("4", entity.LocationAsaNorte, entity.StatusInAnalysis),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleTo_StoreAdminSoloSuLoja(t *testing.T) {
	all := sample()

	got := policy.VisibleTo(storeAsa, all)
	require.Len(t, got, 2, "ASA_NORTE tiene dos ocorrências en la semilla")
	for _, o := range got {
		assert.Equal(t, storeAsa.Store, o.Store)
	}

	assert.Len(t, policy.VisibleTo(storeSia, all), 1)
}

func TestVisibleTo_AdminsVenTodo(t *testing.T) {
	all := sample()
	assert.Equal(t, all, policy.VisibleTo(cdAdmin, all))
	assert.Equal(t, all, policy.VisibleTo(generalAdmin, all))
}

func TestVisibleTo_NoAliasDelSliceOriginal(t *testing.T) {
	all := sample()
	got := policy.VisibleTo(cdAdmin, all)
	got[0] = nil
	assert.NotNil(t, all[0])
}

func TestVisibleTo_RolDesconocidoNoVeNada(t *testing.T) {
	assert.Empty(t, policy.VisibleTo(unknownRole, sample()))
	assert.False(t, policy.CanView(unknownRole, sample()[0]))
}

func TestCanView(t *testing.T) {
	o := open("1", entity.LocationAsaNorte, entity.StatusOpen)
	assert.True(t, policy.CanView(storeAsa, o))
	assert.False(t, policy.CanView(storeSia, o))
	assert.True(t, policy.CanView(cdAdmin, o))
	assert.True(t, policy.CanView(generalAdmin, o))
	assert.False(t, policy.CanView(cdAdmin, nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestCanCreate(t *testing.T) {
	assert.True(t, policy.CanCreate(storeAsa))
	assert.True(t, policy.CanCreate(generalAdmin))
	assert.False(t, policy.CanCreate(cdAdmin))
	assert.False(t, policy.CanCreate(unknownRole))
}

func TestCanResolve(t *testing.T) {
	assert.True(t, policy.CanResolve(cdAdmin, open("1", entity.LocationSIA, entity.StatusOpen)))
	assert.True(t, policy.CanResolve(cdAdmin, open("1", entity.LocationSIA, entity.StatusInAnalysis)))
	assert.False(t, policy.CanResolve(cdAdmin, decided("2", entity.LocationSIA, entity.StatusApproved)))
	assert.False(t, policy.CanResolve(cdAdmin, decided("3", entity.LocationSIA, entity.StatusRejected)))
	assert.False(t, policy.CanResolve(generalAdmin, open("1", entity.LocationSIA, entity.StatusOpen)))
	assert.False(t, policy.CanResolve(storeSia, open("1", entity.LocationSIA, entity.StatusOpen)))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.Status
		want     bool
	}{
		{entity.StatusOpen, entity.StatusOpen, true},
		{entity.StatusOpen, entity.StatusInAnalysis, true},
		{entity.StatusOpen, entity.StatusApproved, true},
		{entity.StatusInAnalysis, entity.StatusRejected, true},
		{entity.StatusInAnalysis, entity.StatusOpen, false},
		{entity.StatusApproved, entity.StatusRejected, false},
		{entity.StatusRejected, entity.StatusOpen, false},
		{entity.StatusApproved, entity.StatusApproved, true},
		{entity.StatusOpen, entity.Status("DELETED"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CDAdminAprueba(t *testing.T) {
	now := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	o := open("1", entity.LocationAsaNorte, entity.StatusOpen)
	o.CreatedAt = now.Add(-time.Hour)
	o.UpdatedAt = o.CreatedAt

	got, err := policy.Resolve(cdAdmin, o, entity.StatusApproved, "verified", now)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusApproved, got.Status)
	require.NotNil(t, got.CDComments)
	assert.Equal(t, "verified", *got.CDComments)
	assert.Equal(t, cdAdmin.ID, *got.CDDecisionBy)
	assert.Equal(t, cdAdmin.Name, *got.CDDecisionByName)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, o.CreatedAt, got.CreatedAt)
	assert.Equal(t, o.Title, got.Title)
	assert.NoError(t, got.CheckDecisionInvariant())

	// el original no cambia
	assert.Equal(t, entity.StatusOpen, o.Status)
	assert.Nil(t, o.CDComments)
}

func TestResolve_SegundaVezFallaConAuthorization(t *testing.T) {
	now := time.Now().UTC()
	o := open("1", entity.LocationAsaNorte, entity.StatusOpen)

	first, err := policy.Resolve(cdAdmin, o, entity.StatusRejected, "falta nota", now)
	require.NoError(t, err)

	for _, d := range []entity.Status{entity.StatusApproved, entity.StatusRejected} {
		_, err = policy.Resolve(cdAdmin, first, d, "otra vez", now)
		assert.True(t, errors.Is(err, domain.ErrAuthorization), "decisión %s", d)
	}
}

func TestResolve_StoreAdminRechazado(t *testing.T) {
	o := open("1", entity.LocationAsaNorte, entity.StatusOpen)

	got, err := policy.Resolve(storeAsa, o, entity.StatusApproved, "yo mismo", time.Now())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, entity.StatusOpen, o.Status)
	assert.Nil(t, o.CDDecisionBy)
}

func TestResolve_DecisionInvalida(t *testing.T) {
	o := open("1", entity.LocationAsaNorte, entity.StatusOpen)
	_, err := policy.Resolve(cdAdmin, o, entity.StatusInAnalysis, "", time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStatistics(t *testing.T) {
	s := policy.ComputeStatistics(sample())
	assert.Equal(t, policy.Statistics{Open: 1, InAnalysis: 1, Approved: 1, Rejected: 1, Total: 4}, s)
	assert.Equal(t, s.Total, s.Open+s.InAnalysis+s.Approved+s.Rejected)

	assert.Equal(t, policy.Statistics{}, policy.ComputeStatistics(nil))
}

func TestComputeStatistics_SobreVistaFiltrada(t *testing.T) {
	s := policy.ComputeStatistics(policy.VisibleTo(storeAsa, sample()))
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Open)
	assert.Equal(t, 1, s.InAnalysis)
	assert.Zero(t, s.Approved)
}

func TestGroupByStore_InAnalysisVaAOpen(t *testing.T) {
	all := sample()
	g := policy.GroupByStore(all)

	assert.Equal(t, policy.StoreBuckets{Open: 2}, g[entity.LocationAsaNorte])
	assert.Equal(t, policy.StoreBuckets{Approved: 1}, g[entity.LocationSIA])
	assert.Equal(t, policy.StoreBuckets{Rejected: 1}, g[entity.LocationAguasClaras])
	_, hasCD := g[entity.LocationCD]
	assert.False(t, hasCD)

	perStore := map[entity.Location]int{}
	for _, o := range all {
		perStore[o.Store]++
	}
	for store, b := range g {
		assert.Equal(t, perStore[store], b.Total(), "loja %s", store)
	}
}

func TestMatches(t *testing.T) {
	o := open("0449035006122025", entity.LocationAsaNorte, entity.StatusOpen)
	o.Title = "Avaria no transporte"
	o.ProductName = "TV LED 50 SAMSUNG"

	assert.True(t, policy.Matches(o, ""))
	assert.True(t, policy.Matches(o, "avaria"))
	assert.True(t, policy.Matches(o, "samsung"))
	assert.True(t, policy.Matches(o, "0449035"))
	assert.False(t, policy.Matches(o, "geladeira"))
}
