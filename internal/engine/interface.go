// Package engine holds the mech equipment rules: part assignment and the
// derived per-mech aggregates. Everything here is a pure function of its
// inputs and never touches storage.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/mechbay-api/internal/engine Engine

// Engine provides the assignment and aggregation rules
type Engine interface {
	// ResolveAssignment validates moving a part to a mech location and returns
	// the fields to write. Returns a nil update when nothing would change.
	// Returns errors.InvalidArgument when the mech or location is not valid.
	ResolveAssignment(input *ResolveAssignmentInput) (*PartUpdate, error)

	// Aggregate computes the derived state of a mech from its parts
	Aggregate(input *AggregateInput) *Summary

	// GroupByLocation lays the mech's parts out by mount location
	GroupByLocation(input *AggregateInput) Layout

	// EffectivePart returns the part as readers should see it, with a
	// reference to a missing mech reported as unassigned
	EffectivePart(input *EffectivePartInput) *EffectivePartOutput
}
