// Package equipment holds the mech, part and item entities a character owns
package equipment

// Location represents a body location on a mech, or the inventory pool
type Location string

// Mount and hit locations
const (
	LocationHead      Location = "head"
	LocationTorsoL    Location = "torso_l"
	LocationTorsoC    Location = "torso_c"
	LocationTorsoR    Location = "torso_r"
	LocationTorsoRear Location = "torso_rear"
	LocationArmL      Location = "arm_l"
	LocationArmR      Location = "arm_r"
	LocationLegL      Location = "leg_l"
	LocationLegR      Location = "leg_r"

	// LocationLight is the inventory pool a part sits in when it is not mounted
	LocationLight Location = "light"
	// LocationUnassigned is accepted as an alias of LocationLight on input
	LocationUnassigned Location = "unassigned"
)

// UnattachedMechID is the mechID sentinel for parts sitting in inventory and
// for characters with no equipped mech
const UnattachedMechID = "0"

// String returns the string representation of the location
func (l Location) String() string {
	return string(l)
}

// IsMountPoint reports whether a part can be mounted at this location.
// torso_rear is a hit location only.
func (l Location) IsMountPoint() bool {
	switch l {
	case LocationHead, LocationTorsoL, LocationTorsoC, LocationTorsoR,
		LocationArmL, LocationArmR, LocationLegL, LocationLegR:
		return true
	default:
		return false
	}
}

// IsHitLocation reports whether the location carries hit points and armour
func (l Location) IsHitLocation() bool {
	return l == LocationTorsoRear || l.IsMountPoint()
}

// IsPool reports whether the location is the unassigned inventory pool
func (l Location) IsPool() bool {
	return l == LocationLight || l == LocationUnassigned || l == ""
}

// Normalize maps the pool aliases onto LocationLight
func (l Location) Normalize() Location {
	if l.IsPool() {
		return LocationLight
	}
	return l
}

// MountLocations returns the eight locations a part can be mounted at, in sheet order
func MountLocations() []Location {
	return []Location{
		LocationHead,
		LocationTorsoL,
		LocationTorsoC,
		LocationTorsoR,
		LocationArmL,
		LocationArmR,
		LocationLegL,
		LocationLegR,
	}
}

// HitLocations returns the nine locations tracked in a mech's body stats
func HitLocations() []Location {
	return []Location{
		LocationHead,
		LocationTorsoL,
		LocationTorsoC,
		LocationTorsoR,
		LocationTorsoRear,
		LocationArmL,
		LocationArmR,
		LocationLegL,
		LocationLegR,
	}
}

// LocationFromString converts a string to a Location.
// Returns the location and true if it is a mount point or a pool alias.
func LocationFromString(s string) (Location, bool) {
	loc := Location(s)
	if loc.IsMountPoint() || loc.IsPool() {
		return loc.Normalize(), true
	}
	return "", false
}

// IsUnattached reports whether a mechID reference points at no mech
func IsUnattached(mechID string) bool {
	return mechID == "" || mechID == UnattachedMechID
}
