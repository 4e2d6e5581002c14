package service

import (
	"sync"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/models"
)

// ReconcileStatus is the verdict of a reconciliation.
type ReconcileStatus int

const (
	ReconcileConsistent ReconcileStatus = iota
	ReconcileInconsistent
	// ReconcileSkipped is reported by the session store when there is no
	// active association to check yet.
	ReconcileSkipped
)

func (s ReconcileStatus) String() string {
	switch s {
	case ReconcileConsistent:
		return "consistent"
	case ReconcileInconsistent:
		return "inconsistent"
	case ReconcileSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// InconsistencyReason explains an inconsistent outcome.
type InconsistencyReason string

const (
	ReasonMissingStudent   InconsistencyReason = "missing-student"
	ReasonDivergentStudent InconsistencyReason = "divergent-student"
)

// ReconcileOutcome is the result of [ConsistencyReconciler.Reconcile].
// Expected, Actual and Source are set for ReasonDivergentStudent only.
type ReconcileOutcome struct {
	Status   ReconcileStatus
	Reason   InconsistencyReason
	Expected string
	Actual   string
	Source   string
}

// IsConsistent reports whether dependent features may proceed.
func (o ReconcileOutcome) IsConsistent() bool {
	return o.Status != ReconcileInconsistent
}

// StudentReference is a locally cached "current student" used by a
// dependent feature. ok == false means the reference holds no student.
type StudentReference interface {
	Name() string
	CurrentStudentID() (id string, ok bool)
}

type consistencyReconciler struct {
	mu     sync.RWMutex
	refs   []registeredReference
	nextID uint64

	logger *logger.Logger
}

type registeredReference struct {
	id  uint64
	ref StudentReference
}

// NewConsistencyReconciler returns a [ConsistencyReconciler] checking refs
// in order. More references can be added with Register.
func NewConsistencyReconciler(logger *logger.Logger, refs ...StudentReference) ConsistencyReconciler {
	r := &consistencyReconciler{logger: logger}
	for _, ref := range refs {
		r.Register(ref)
	}
	return r
}

func (r *consistencyReconciler) Register(ref StudentReference) (unregister func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.refs = append(r.refs, registeredReference{id: id, ref: ref})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, rr := range r.refs {
				if rr.id == id {
					r.refs = append(r.refs[:i:i], r.refs[i+1:]...)
					return
				}
			}
		})
	}
}

// Reconcile never mutates anything; the caller owns the forced refresh.
func (r *consistencyReconciler) Reconcile(active *models.Association, role models.Role) ReconcileOutcome {
	if !role.IsFamilyScoped() {
		return ReconcileOutcome{Status: ReconcileConsistent}
	}

	expected, ok := active.StudentID()
	if !ok || expected == "" {
		r.logger.Warn().
			Str("func", "consistencyReconciler.Reconcile").
			Str("role", role.Name).
			Msg("family-scoped active association has no student")
		return ReconcileOutcome{Status: ReconcileInconsistent, Reason: ReasonMissingStudent}
	}

	r.mu.RLock()
	refs := make([]StudentReference, len(r.refs))
	for i, rr := range r.refs {
		refs[i] = rr.ref
	}
	r.mu.RUnlock()

	for _, ref := range refs {
		actual, ok := ref.CurrentStudentID()
		if !ok || actual == expected {
			continue
		}

		r.logger.Warn().
			Str("func", "consistencyReconciler.Reconcile").
			Str("association_id", active.ID).
			Str("expected", expected).
			Str("actual", actual).
			Str("source", ref.Name()).
			Msg("student reference diverges from active association")
		return ReconcileOutcome{
			Status:   ReconcileInconsistent,
			Reason:   ReasonDivergentStudent,
			Expected: expected,
			Actual:   actual,
			Source:   ref.Name(),
		}
	}

	return ReconcileOutcome{Status: ReconcileConsistent}
}
