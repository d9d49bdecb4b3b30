package equipment

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// Cascade operations
const (
	opDeleteMech   = "delete_mech"
	opTransferMech = "transfer_mech"
)

// Cascade states
const (
	statePending      = "pending"
	stateEnumerated   = "enumerated"
	stateCancelled    = "cancelled"
	stateStraysFreed  = "strays_freed"
	statePartsSettled = "parts_settled"
	stateMechCopied   = "mech_copied"
	statePartsCopied  = "parts_copied"
	stateEquipReset   = "equip_reset"
	stateDone         = "done"
)

// Cascade steps, used as fsm event names and reported as stages
const (
	stepEnumerate    = "enumerate_parts"
	stepCancel       = "cancel"
	stepUnassign     = "unassign_parts"
	stepFreeStrays   = "unassign_stray_parts"
	stepDeleteParts  = "delete_parts"
	stepCopyMech     = "copy_mech"
	stepCopyParts    = "copy_parts"
	stepDeleteSource = "delete_source_parts"
	stepResetEquip   = "reset_equipped"
	stepDeleteMech   = "delete_mech"
)

// deleteMechSteps orders mech deletion: parts are settled, then the equipped
// reference is cleared, then the mech goes
func deleteMechSteps() fsm.Events {
	return fsm.Events{
		{Name: stepEnumerate, Src: []string{statePending}, Dst: stateEnumerated},
		{Name: stepCancel, Src: []string{stateEnumerated}, Dst: stateCancelled},
		{Name: stepUnassign, Src: []string{stateEnumerated}, Dst: statePartsSettled},
		{Name: stepDeleteParts, Src: []string{stateEnumerated}, Dst: statePartsSettled},
		{Name: stepResetEquip, Src: []string{stateEnumerated, statePartsSettled}, Dst: stateEquipReset},
		{Name: stepDeleteMech, Src: []string{stateEnumerated, statePartsSettled, stateEquipReset}, Dst: stateDone},
	}
}

// transferMechSteps orders a transfer so every copy exists before any
// source entity is removed. Destination parts already carrying the mechID
// are unassigned before the mech copy lands.
func transferMechSteps() fsm.Events {
	return fsm.Events{
		{Name: stepEnumerate, Src: []string{statePending}, Dst: stateEnumerated},
		{Name: stepFreeStrays, Src: []string{stateEnumerated}, Dst: stateStraysFreed},
		{Name: stepCopyMech, Src: []string{stateEnumerated, stateStraysFreed}, Dst: stateMechCopied},
		{Name: stepCopyParts, Src: []string{stateMechCopied}, Dst: statePartsCopied},
		{Name: stepDeleteSource, Src: []string{statePartsCopied}, Dst: statePartsSettled},
		{Name: stepResetEquip, Src: []string{stateMechCopied, statePartsSettled}, Dst: stateEquipReset},
		{Name: stepDeleteMech, Src: []string{stateMechCopied, statePartsSettled, stateEquipReset}, Dst: stateDone},
	}
}

// cascade runs the steps of one multi-entity operation in order. Once a step
// has mutated the store, any later failure is reported as an interrupted
// cascade carrying the steps already applied.
type cascade struct {
	operation string
	machine   *fsm.FSM
	span      trace.Span
	completed []string
	mutated   bool
}

func (o *Orchestrator) startCascade(
	ctx context.Context,
	operation string,
	steps fsm.Events,
	attrs ...attribute.KeyValue,
) (context.Context, *cascade) {
	ctx, span := o.tracer.Start(ctx, "equipment."+operation, trace.WithAttributes(attrs...))
	return ctx, &cascade{
		operation: operation,
		machine:   fsm.NewFSM(statePending, steps, fsm.Callbacks{}),
		span:      span,
	}
}

// step runs fn and advances the machine. mutates marks steps that write.
func (c *cascade) step(ctx context.Context, name string, mutates bool, fn func() error) error {
	if !c.machine.Can(name) {
		return c.fail(ctx, name, errors.Internalf("step %s not allowed from %s", name, c.machine.Current()))
	}
	if !c.mutated {
		if err := ctx.Err(); err != nil {
			return c.fail(ctx, name, errors.WrapWithCode(err, errors.CodeCanceled, "operation cancelled"))
		}
	}

	if fn != nil {
		if err := fn(); err != nil {
			return c.fail(ctx, name, err)
		}
	}

	if err := c.machine.Event(ctx, name); err != nil {
		return c.fail(ctx, name, errors.Wrapf(err, "failed to advance %s", c.operation))
	}
	if mutates {
		c.mutated = true
	}
	c.completed = append(c.completed, name)
	c.span.AddEvent(name)

	slog.DebugContext(ctx, "cascade step complete",
		"operation", c.operation,
		"step", name,
		"state", c.machine.Current())

	return nil
}

func (c *cascade) fail(ctx context.Context, stage string, err error) error {
	if c.mutated {
		err = errors.CascadeInterrupted(c.operation, stage, c.completed, err)
		slog.ErrorContext(ctx, "cascade interrupted, manual reconciliation needed",
			"operation", c.operation,
			"stage", stage,
			"completed", c.completed,
			"error", err)
	}
	c.span.RecordError(err)
	c.span.SetStatus(codes.Error, err.Error())
	return err
}

func (c *cascade) end() {
	c.span.SetAttributes(attribute.String("cascade.state", c.machine.Current()))
	c.span.End()
}
