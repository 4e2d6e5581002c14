package service

import (
	"testing"

	"github.com/MKhiriev/go-school-link/models"
	"github.com/stretchr/testify/assert"
)

func assoc(id string, status models.AssociationStatus) models.Association {
	return models.Association{
		ID:          id,
		Institution: models.Institution{ID: "inst-" + id, Name: "School " + id},
		Role:        models.Role{ID: "1", Name: models.RoleCoordinator},
		Status:      status,
	}
}

func TestAssociationSelector_Select(t *testing.T) {
	a1 := assoc("a1", models.AssociationActive)
	a2 := assoc("a2", models.AssociationActive)
	inactive := assoc("a3", models.AssociationInactive)

	tests := []struct {
		name     string
		list     []models.Association
		cached   *models.Association
		wantKind SelectionKind
		wantID   string
	}{
		{name: "list not fetched keeps cached", list: nil, cached: &a2, wantKind: SelectionPending, wantID: "a2"},
		{name: "list not fetched without cached", list: nil, wantKind: SelectionPending},
		{name: "empty list", list: []models.Association{}, cached: &a1, wantKind: SelectionNoAssociations},
		{name: "single association wins over cached", list: []models.Association{a1}, cached: &a2, wantKind: SelectionSelected, wantID: "a1"},
		{name: "single inactive association still selected", list: []models.Association{inactive}, wantKind: SelectionSelected, wantID: "a3"},
		{name: "cached found and active", list: []models.Association{a1, a2}, cached: &a2, wantKind: SelectionSelected, wantID: "a2"},
		{name: "cached found but inactive", list: []models.Association{a1, inactive}, cached: &inactive, wantKind: SelectionRequired},
		{name: "cached missing from list", list: []models.Association{a1, a2}, cached: &models.Association{ID: "gone"}, wantKind: SelectionRequired},
		{name: "no cached with many", list: []models.Association{a1, a2}, wantKind: SelectionRequired},
	}

	selector := NewAssociationSelector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selector.Select(tt.list, tt.cached)
			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantID == "" {
				assert.Nil(t, got.Association)
				return
			}
			if assert.NotNil(t, got.Association) {
				assert.Equal(t, tt.wantID, got.Association.ID)
			}
		})
	}
}

func TestAssociationSelector_ReturnsListCopy(t *testing.T) {
	stale := assoc("a2", models.AssociationActive)
	stale.Institution.Name = "Old name"
	fresh := assoc("a2", models.AssociationActive)
	list := []models.Association{assoc("a1", models.AssociationActive), fresh}

	got := NewAssociationSelector().Select(list, &stale)

	assert.Equal(t, "School a2", got.Association.Institution.Name)
	got.Association.Institution.Name = "mutated"
	assert.Equal(t, "School a2", list[1].Institution.Name)
}

func TestSelectionResult_Err(t *testing.T) {
	assert.NoError(t, SelectionResult{Kind: SelectionSelected}.Err())
	assert.NoError(t, SelectionResult{Kind: SelectionPending}.Err())
	assert.ErrorIs(t, SelectionResult{Kind: SelectionRequired}.Err(), ErrSelectionRequired)
	assert.ErrorIs(t, SelectionResult{Kind: SelectionNoAssociations}.Err(), ErrNoAssociations)
}

func TestSelectionKind_String(t *testing.T) {
	assert.Equal(t, "pending", SelectionPending.String())
	assert.Equal(t, "selected", SelectionSelected.String())
	assert.Equal(t, "selection-required", SelectionRequired.String())
	assert.Equal(t, "no-associations", SelectionNoAssociations.String())
	assert.Equal(t, "unknown", SelectionKind(42).String())
}
