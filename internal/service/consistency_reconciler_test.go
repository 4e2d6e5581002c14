package service

import (
	"testing"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/models"
	"github.com/stretchr/testify/assert"
)

// stubReference is a fixed StudentReference.
type stubReference struct {
	name string
	id   string
	ok   bool
}

func (s stubReference) Name() string                     { return s.name }
func (s stubReference) CurrentStudentID() (string, bool) { return s.id, s.ok }

var tutorRole = models.Role{ID: "3", Name: models.RolePrimaryTutor}

func tutorAssociation(studentID string) *models.Association {
	a := &models.Association{
		ID:     "a-" + studentID,
		Role:   tutorRole,
		Status: models.AssociationActive,
	}
	if studentID != "" {
		a.Student = &models.Student{ID: studentID}
	}
	return a
}

func TestConsistencyReconciler_NonFamilyRoleIsConsistent(t *testing.T) {
	r := NewConsistencyReconciler(logger.Nop(), stubReference{name: "legacy", id: "S9", ok: true})

	got := r.Reconcile(nil, models.Role{Name: models.RoleCoordinator})
	assert.Equal(t, ReconcileConsistent, got.Status)
}

func TestConsistencyReconciler_MissingStudent(t *testing.T) {
	r := NewConsistencyReconciler(logger.Nop())

	tests := []struct {
		name   string
		active *models.Association
	}{
		{name: "nil active", active: nil},
		{name: "no student", active: tutorAssociation("")},
		{name: "empty student id", active: &models.Association{ID: "x", Role: tutorRole, Student: &models.Student{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reconcile(tt.active, tutorRole)
			assert.Equal(t, ReconcileInconsistent, got.Status)
			assert.Equal(t, ReasonMissingStudent, got.Reason)
			assert.False(t, got.IsConsistent())
		})
	}
}

func TestConsistencyReconciler_DivergentReference(t *testing.T) {
	r := NewConsistencyReconciler(logger.Nop(),
		stubReference{name: "empty", ok: false},
		stubReference{name: "matching", id: "S1", ok: true},
		stubReference{name: "legacy-selection", id: "S2", ok: true},
	)

	got := r.Reconcile(tutorAssociation("S1"), tutorRole)

	assert.Equal(t, ReconcileOutcome{
		Status:   ReconcileInconsistent,
		Reason:   ReasonDivergentStudent,
		Expected: "S1",
		Actual:   "S2",
		Source:   "legacy-selection",
	}, got)
}

func TestConsistencyReconciler_AllReferencesAgree(t *testing.T) {
	r := NewConsistencyReconciler(logger.Nop(),
		stubReference{name: "a", id: "S1", ok: true},
		stubReference{name: "b", ok: false},
	)

	got := r.Reconcile(tutorAssociation("S1"), tutorRole)
	assert.True(t, got.IsConsistent())
}

func TestConsistencyReconciler_Unregister(t *testing.T) {
	r := NewConsistencyReconciler(logger.Nop())
	unregister := r.Register(stubReference{name: "legacy", id: "S2", ok: true})

	assert.False(t, r.Reconcile(tutorAssociation("S1"), tutorRole).IsConsistent())

	unregister()
	unregister()

	assert.True(t, r.Reconcile(tutorAssociation("S1"), tutorRole).IsConsistent())
}

func TestReconcileOutcome_SkippedCountsAsConsistent(t *testing.T) {
	assert.True(t, ReconcileOutcome{Status: ReconcileSkipped}.IsConsistent())
	assert.Equal(t, "skipped", ReconcileSkipped.String())
	assert.Equal(t, "inconsistent", ReconcileInconsistent.String())
}

func TestInconsistentAssociationError(t *testing.T) {
	err := &InconsistentAssociationError{Outcome: ReconcileOutcome{
		Status:   ReconcileInconsistent,
		Reason:   ReasonDivergentStudent,
		Expected: "S1",
		Actual:   "S2",
		Source:   "legacy-selection",
	}}

	assert.ErrorIs(t, err, ErrInconsistentAssociation)
	assert.Contains(t, err.Error(), "expected student S1")
	assert.Contains(t, err.Error(), "legacy-selection has S2")

	missing := &InconsistentAssociationError{Outcome: ReconcileOutcome{Reason: ReasonMissingStudent}}
	assert.Contains(t, missing.Error(), "missing-student")
}
