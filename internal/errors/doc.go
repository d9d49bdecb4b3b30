// Package errors provides the structured errors used across mechbay-api.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata:
//
//	err := errors.NotFound("mech not found").
//	    WithMeta("mech_id", mechID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load mech")
//	}
//
// # Validation
//
// Rejected input is reported through the validation builder, which yields an
// InvalidArgument error with the offending fields in the "validation_errors"
// metadata:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("characterID", input.CharacterID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Cascades
//
// Deleting or transferring a mech touches several entities in sequence. When
// a step fails after earlier steps were applied the orchestrator returns
// CascadeInterrupted (code ABORTED) with the stage and completed steps in the
// metadata. There is no rollback; the host reports the state for manual
// reconciliation.
//
// # Dangling references
//
// A part or character pointing at a mech that no longer exists is not an
// error. Readers treat the reference as unassigned.
//
// # gRPC
//
// Handlers convert with ToGRPCError. The CLI client converts back with
// FromGRPCError.
package errors
