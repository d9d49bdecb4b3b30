package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// decode reads a request Struct into dst through its JSON form
func decode(req *structpb.Struct, dst any) error {
	if req == nil {
		return errors.InvalidArgument("request is required")
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// encode writes src into a response Struct through its JSON form
func encode(src any) (*structpb.Struct, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return out, nil
}

// Requests

type assignPartRequest struct {
	CharacterID string             `json:"characterID"`
	PartID      string             `json:"partID"`
	MechID      string             `json:"mechID"`
	Location    equipment.Location `json:"location"`
}

type mechRequest struct {
	CharacterID  string `json:"characterID"`
	MechEntityID string `json:"mechEntityID"`
}

type deleteMechRequest struct {
	CharacterID  string `json:"characterID"`
	MechEntityID string `json:"mechEntityID"`
	Resolution   string `json:"resolution"`
}

type transferMechRequest struct {
	SourceCharacterID      string `json:"sourceCharacterID"`
	DestinationCharacterID string `json:"destinationCharacterID"`
	MechEntityID           string `json:"mechEntityID"`
}

type createMechRequest struct {
	CharacterID       string              `json:"characterID"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Weight            float64             `json:"weight"`
	BodyPartHP        equipment.BodyStats `json:"bodyPartHP"`
	BodyPartMaxHP     equipment.BodyStats `json:"bodyPartMaxHP"`
	BodyPartArmour    equipment.BodyStats `json:"bodyPartArmour"`
	BodyPartMaxArmour equipment.BodyStats `json:"bodyPartMaxArmour"`
}

type createPartRequest struct {
	CharacterID  string                 `json:"characterID"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Quantity     int                    `json:"quantity"`
	Weight       float64                `json:"weight"`
	Resources    equipment.Resources    `json:"resources"`
	ResourceType equipment.ResourceType `json:"resourceType"`
	Enabled      *bool                  `json:"enabled"`
	Roll         *equipment.Roll        `json:"roll"`
	MechID       string                 `json:"mechID"`
	Location     equipment.Location     `json:"location"`
}

type setPartEnabledRequest struct {
	PartID  string `json:"partID"`
	Enabled bool   `json:"enabled"`
}

// Responses

type partResponse struct {
	Part    *equipment.Part `json:"part"`
	Changed bool            `json:"changed"`
}

type getMechResponse struct {
	Mech     *equipment.Mech `json:"mech"`
	Summary  *engine.Summary `json:"summary"`
	Layout   engine.Layout   `json:"layout"`
	Repaired bool            `json:"repaired"`
}

type deleteMechResponse struct {
	Outcome       string `json:"outcome"`
	PartsAffected int    `json:"partsAffected"`
	EquipReset    bool   `json:"equipReset"`
}

type transferMechResponse struct {
	Mech  *equipment.Mech   `json:"mech"`
	Parts []*equipment.Part `json:"parts"`
}

type characterResponse struct {
	Character *entities.Character `json:"character"`
}

type mechResponse struct {
	Mech *equipment.Mech `json:"mech"`
}
