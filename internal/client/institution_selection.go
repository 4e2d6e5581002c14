package client

import (
	"sync"

	"github.com/MKhiriev/go-school-link/models"
)

// InstitutionSelection is the "selected institution" cache used by the
// dependent features. It follows the session's active association and is
// registered with the consistency reconciler as a student reference.
type InstitutionSelection struct {
	mu            sync.RWMutex
	institutionID string
	studentID     string
}

func NewInstitutionSelection() *InstitutionSelection {
	return &InstitutionSelection{}
}

// Observe realigns the selection with view. It is meant to be passed to
// SessionStore.Subscribe.
func (s *InstitutionSelection) Observe(view models.SessionView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := view.ActiveAssociation
	if !view.IsAuthenticated || active == nil {
		s.institutionID, s.studentID = "", ""
		return
	}

	s.institutionID = active.Institution.ID
	s.studentID, _ = active.StudentID()
}

func (s *InstitutionSelection) Name() string {
	return "institution-selection"
}

func (s *InstitutionSelection) CurrentStudentID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentID, s.studentID != ""
}

func (s *InstitutionSelection) InstitutionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.institutionID
}
