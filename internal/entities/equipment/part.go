package equipment

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// EntityTypePart is the core.Entity type of a part
const EntityTypePart = "part"

// Part defaults
const (
	DefaultQuantity  = 1
	DefaultDiceNum   = 1
	DefaultDiceSize  = "d20"
	DefaultDiceBonus = "+@str.mod+ceil(@lvl / 2)"
)

// ResourceType selects which bucket a part's resources are totalled into
type ResourceType string

// Resource types
const (
	ResourceTypeStatic     ResourceType = "static"
	ResourceTypeConsumable ResourceType = "consumable"
)

// IsValid checks if the resource type is known
func (r ResourceType) IsValid() bool {
	return r == ResourceTypeStatic || r == ResourceTypeConsumable
}

// Effective returns the bucket the type totals into. Legacy parts saved
// without a type count as static, which was the schema default.
func (r ResourceType) Effective() ResourceType {
	if r == ResourceTypeConsumable {
		return ResourceTypeConsumable
	}
	return ResourceTypeStatic
}

// Resources maps a resource name to the amount a part contributes
type Resources map[string]float64

// Copy returns an independent copy of the resources
func (r Resources) Copy() Resources {
	out := make(Resources, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// UnmarshalJSON accepts numbers and numeric strings. Any other value is
// dropped with a warning so one bad entry does not make the part unreadable.
func (r *Resources) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("dropping resources that are not an object",
			"value", string(data))
		*r = Resources{}
		return nil
	}
	if raw == nil {
		*r = nil
		return nil
	}

	out := make(Resources, len(raw))
	for name, value := range raw {
		n, ok := parseAmount(value)
		if !ok {
			slog.Warn("dropping non-numeric resource amount",
				"resource", name,
				"value", string(value))
			continue
		}
		out[name] = n
	}
	*r = out
	return nil
}

// parseAmount reads a finite number, or a string holding one
func parseAmount(value json.RawMessage) (float64, bool) {
	if strings.TrimSpace(string(value)) == "null" {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(value, &n); err != nil {
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return 0, false
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(str), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Validate rejects blank names and non-positive or non-finite amounts
func (r Resources) Validate(vb *errors.ValidationBuilder) {
	for name, v := range r {
		if strings.TrimSpace(name) == "" {
			vb.Field("resources", "resource name cannot be blank")
			continue
		}
		if !IsCountable(v) {
			vb.Fieldf("resources", "%s must be a positive number", name)
		}
	}
}

// IsCountable reports whether a resource amount contributes to totals
func IsCountable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

var diceSizeRegex = regexp.MustCompile(`^d(\d+)$`)

// Roll is the dice specification of a part
type Roll struct {
	DiceNum   int    `json:"diceNum"`
	DiceSize  string `json:"diceSize"`
	DiceBonus string `json:"diceBonus"`
}

// Formula concatenates the roll fields into the formula string the host evaluates
func (r Roll) Formula() string {
	return fmt.Sprintf("%d%s%s", r.DiceNum, r.DiceSize, r.DiceBonus)
}

// Sides returns the die size parsed from DiceSize
func (r Roll) Sides() (int, error) {
	matches := diceSizeRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(r.DiceSize)))
	if len(matches) != 2 {
		return 0, errors.InvalidArgumentf("invalid dice size: %s (expected format: dN)", r.DiceSize)
	}
	sides, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid dice size: %s", r.DiceSize)
	}
	return sides, nil
}

func (r Roll) validate(vb *errors.ValidationBuilder) {
	if r.DiceNum < 1 {
		vb.Field("roll.diceNum", "must be at least 1")
		return
	}
	sides, err := r.Sides()
	if err != nil {
		vb.Field("roll.diceSize", errors.GetMessage(err))
		return
	}
	if _, err := dice.NewRoll(r.DiceNum, sides); err != nil {
		vb.Fieldf("roll", "is invalid: %v", err)
	}
}

// Part is mountable equipment owned by a character. MechID is a lookup key
// into the owner's mechs; "0" means the part sits in inventory.
type Part struct {
	ID           string       `json:"id"`
	OwnerID      string       `json:"ownerID"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Quantity     int          `json:"quantity"`
	Weight       float64      `json:"weight"`
	TotalWeight  float64      `json:"totalWeight"`
	Location     Location     `json:"location"`
	MechID       string       `json:"mechID"`
	Resources    Resources    `json:"resources"`
	ResourceType ResourceType `json:"resourceType"`
	Enabled      bool         `json:"enabled"`
	Roll         Roll         `json:"roll"`
	Formula      string       `json:"formula"`
	CreatedAt    int64        `json:"createdAt"`
	UpdatedAt    int64        `json:"updatedAt"`
}

var _ core.Entity = (*Part)(nil)

// NewPart returns a part in inventory with the schema defaults applied
func NewPart(ownerID, name string) *Part {
	p := &Part{
		OwnerID:      ownerID,
		Name:         name,
		Quantity:     DefaultQuantity,
		Location:     LocationLight,
		MechID:       UnattachedMechID,
		Resources:    Resources{},
		ResourceType: ResourceTypeStatic,
		Enabled:      true,
		Roll: Roll{
			DiceNum:   DefaultDiceNum,
			DiceSize:  DefaultDiceSize,
			DiceBonus: DefaultDiceBonus,
		},
	}
	p.Derive()
	return p
}

// GetID returns the part's storage ID
func (p *Part) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *Part) GetType() string {
	return EntityTypePart
}

// IsAssigned reports whether the part references a mech at all
func (p *Part) IsAssigned() bool {
	return !IsUnattached(p.MechID)
}

// Derive recomputes totalWeight and formula from their source fields
func (p *Part) Derive() {
	p.TotalWeight = float64(p.Quantity) * p.Weight
	p.Formula = p.Roll.Formula()
}

// Normalize repairs the fields a stored part may be missing and keeps the
// unassigned state paired: mechID "0" always sits at the light pool.
func (p *Part) Normalize() {
	if p.MechID == "" {
		p.MechID = UnattachedMechID
	}
	if p.Resources == nil {
		p.Resources = Resources{}
	}
	if !p.IsAssigned() {
		p.Location = LocationLight
	}
	p.Derive()
}

// Validate checks the part's user-editable fields
func (p *Part) Validate() error {
	vb := errors.NewValidationBuilder()
	if p.Quantity < 1 {
		vb.Field("quantity", "must be a positive integer")
	}
	if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) || p.Weight < 0 {
		vb.Field("weight", "must be a non-negative number")
	}
	if p.ResourceType != "" && !p.ResourceType.IsValid() {
		errors.ValidateEnum("resourceType", string(p.ResourceType),
			[]string{string(ResourceTypeStatic), string(ResourceTypeConsumable)}, vb)
	}
	p.Resources.Validate(vb)
	p.Roll.validate(vb)
	if p.IsAssigned() && !p.Location.IsMountPoint() {
		vb.Fieldf("location", "%q is not a mount location", p.Location)
	}
	return vb.Build()
}

// Copy returns a deep copy of the part
func (p *Part) Copy() *Part {
	if p == nil {
		return nil
	}
	out := *p
	out.Resources = p.Resources.Copy()
	return &out
}
