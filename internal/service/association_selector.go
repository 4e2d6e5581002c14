package service

import "github.com/MKhiriev/go-school-link/models"

// SelectionKind is the outcome class of an association selection.
type SelectionKind int

const (
	// SelectionPending means the association list has not been fetched yet;
	// the cached active association, if any, is kept as is.
	SelectionPending SelectionKind = iota
	// SelectionSelected means exactly one association is now active.
	SelectionSelected
	// SelectionRequired means the user must choose an association.
	SelectionRequired
	// SelectionNoAssociations means the user has no institutional bindings.
	SelectionNoAssociations
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionPending:
		return "pending"
	case SelectionSelected:
		return "selected"
	case SelectionRequired:
		return "selection-required"
	case SelectionNoAssociations:
		return "no-associations"
	default:
		return "unknown"
	}
}

// SelectionResult is the answer of [AssociationSelector.Select].
type SelectionResult struct {
	Kind SelectionKind
	// Association is the selected association (a copy taken from the list),
	// or the kept cached one for SelectionPending.
	Association *models.Association
}

// Err maps the terminal non-selected states to their sentinel errors. It
// returns nil for SelectionSelected and SelectionPending.
func (r SelectionResult) Err() error {
	switch r.Kind {
	case SelectionRequired:
		return ErrSelectionRequired
	case SelectionNoAssociations:
		return ErrNoAssociations
	default:
		return nil
	}
}

type associationSelector struct{}

// NewAssociationSelector returns the default [AssociationSelector].
func NewAssociationSelector() AssociationSelector {
	return associationSelector{}
}

// Select applies, in order:
//  1. list not fetched (nil): SelectionPending, cached kept;
//  2. empty list: SelectionNoAssociations;
//  3. exactly one association: that one;
//  4. cached present by id in list and active: the list's copy;
//  5. otherwise SelectionRequired.
//
// Inline or authoritative active associations from the backend are passed
// as cached.
func (associationSelector) Select(list []models.Association, cached *models.Association) SelectionResult {
	switch {
	case list == nil:
		return SelectionResult{Kind: SelectionPending, Association: cached.Clone()}
	case len(list) == 0:
		return SelectionResult{Kind: SelectionNoAssociations}
	case len(list) == 1:
		return SelectionResult{Kind: SelectionSelected, Association: list[0].Clone()}
	}

	if cached != nil {
		if found, ok := models.FindAssociation(list, cached.ID); ok && found.IsActive() {
			return SelectionResult{Kind: SelectionSelected, Association: found.Clone()}
		}
	}

	return SelectionResult{Kind: SelectionRequired}
}
