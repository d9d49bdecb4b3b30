// Package v1alpha1 handles the equipment grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// HandlerConfig holds dependencies for the equipment handler
type HandlerConfig struct {
	EquipmentService equipmentsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EquipmentService == nil {
		return errors.InvalidArgument("equipment service is required")
	}
	return nil
}

// Handler implements the equipment gRPC service
type Handler struct {
	UnimplementedEquipmentServiceServer
	service equipmentsvc.Service
}

// NewHandler creates a new equipment handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.EquipmentService}, nil
}

var _ EquipmentServiceServer = (*Handler)(nil)

// respond encodes a service result, converting either failure to a status
func respond(out any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp, err := encode(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// AssignPart mounts a part on a mech location, or returns it to inventory
func (h *Handler) AssignPart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in assignPartRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.AssignPart(ctx, &equipmentsvc.AssignPartInput{
		CharacterID: in.CharacterID,
		PartID:      in.PartID,
		MechID:      in.MechID,
		Location:    in.Location,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&partResponse{Part: out.Part, Changed: out.Changed}, nil)
}

// GetMech returns a mech with its derived summary and layout
func (h *Handler) GetMech(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in mechRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.MechEntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("mechEntityID is required"))
	}

	out, err := h.service.GetMech(ctx, &equipmentsvc.GetMechInput{MechEntityID: in.MechEntityID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&getMechResponse{
		Mech:     out.Mech,
		Summary:  out.Summary,
		Layout:   out.Layout,
		Repaired: out.Repaired,
	}, nil)
}

// DeleteMech deletes a mech, settling its parts with the chosen resolution
func (h *Handler) DeleteMech(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in deleteMechRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.DeleteMech(ctx, &equipmentsvc.DeleteMechInput{
		CharacterID:  in.CharacterID,
		MechEntityID: in.MechEntityID,
		Resolution:   equipmentsvc.Resolution(in.Resolution),
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&deleteMechResponse{
		Outcome:       string(out.Outcome),
		PartsAffected: out.PartsAffected,
		EquipReset:    out.EquipReset,
	}, nil)
}

// TransferMech moves a mech and its parts to another character
func (h *Handler) TransferMech(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in transferMechRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.TransferMech(ctx, &equipmentsvc.TransferMechInput{
		SourceCharacterID:      in.SourceCharacterID,
		DestinationCharacterID: in.DestinationCharacterID,
		MechEntityID:           in.MechEntityID,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&transferMechResponse{Mech: out.Mech, Parts: out.Parts}, nil)
}

// EquipMech points a character at one of its mechs
func (h *Handler) EquipMech(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in mechRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.EquipMech(ctx, &equipmentsvc.EquipMechInput{
		CharacterID:  in.CharacterID,
		MechEntityID: in.MechEntityID,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&characterResponse{Character: out.Character}, nil)
}

// CreateMech creates a mech for a character
func (h *Handler) CreateMech(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createMechRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateMech(ctx, &equipmentsvc.CreateMechInput{
		CharacterID:       in.CharacterID,
		Name:              in.Name,
		Description:       in.Description,
		Weight:            in.Weight,
		BodyPartHP:        in.BodyPartHP,
		BodyPartMaxHP:     in.BodyPartMaxHP,
		BodyPartArmour:    in.BodyPartArmour,
		BodyPartMaxArmour: in.BodyPartMaxArmour,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&mechResponse{Mech: out.Mech}, nil)
}

// CreatePart creates a part, optionally mounted straight away
func (h *Handler) CreatePart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createPartRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreatePart(ctx, &equipmentsvc.CreatePartInput{
		CharacterID:  in.CharacterID,
		Name:         in.Name,
		Description:  in.Description,
		Quantity:     in.Quantity,
		Weight:       in.Weight,
		Resources:    in.Resources,
		ResourceType: in.ResourceType,
		Enabled:      in.Enabled,
		Roll:         in.Roll,
		MechID:       in.MechID,
		Location:     in.Location,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&partResponse{Part: out.Part, Changed: true}, nil)
}

// SetPartEnabled toggles whether a part counts toward its mech's resources
func (h *Handler) SetPartEnabled(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in setPartEnabledRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.PartID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("partID is required"))
	}

	out, err := h.service.SetPartEnabled(ctx, &equipmentsvc.SetPartEnabledInput{
		PartID:  in.PartID,
		Enabled: in.Enabled,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&partResponse{Part: out.Part, Changed: out.Changed}, nil)
}
