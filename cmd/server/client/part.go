package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mechbay-api/internal/handlers/equipment/v1alpha1"
)

var (
	partWeight       float64
	partQuantity     int
	partResources    []string
	partResourceType string
	partDisabled     bool
	partMechID       string
	partLocation     string
)

var createPartCmd = &cobra.Command{
	Use:   "create-part [character-id] [name]",
	Short: "Create a part, optionally mounted with --mech and --location",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		resources, err := parseResources(partResources)
		if err != nil {
			return err
		}

		fields := map[string]any{
			"characterID": args[0],
			"name":        args[1],
			"weight":      partWeight,
			"quantity":    partQuantity,
			"resources":   resources,
			"enabled":     !partDisabled,
			"mechID":      partMechID,
			"location":    partLocation,
		}
		if partResourceType != "" {
			fields["resourceType"] = partResourceType
		}
		return invoke(fields, method(v1alpha1.EquipmentServiceClient.CreatePart))
	},
}

var assignPartCmd = &cobra.Command{
	Use:   "assign-part [character-id] [part-id] [mech-id] [location]",
	Short: "Mount a part on a mech location, or unmount it with mech-id 0",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(_ *cobra.Command, args []string) error {
		location := ""
		if len(args) == 4 {
			location = args[3]
		}
		return invoke(map[string]any{
			"characterID": args[0],
			"partID":      args[1],
			"mechID":      args[2],
			"location":    location,
		}, method(v1alpha1.EquipmentServiceClient.AssignPart))
	},
}

var setPartEnabledCmd = &cobra.Command{
	Use:   "set-part-enabled [part-id] [true|false]",
	Short: "Enable or disable a part",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid enabled value %q: %w", args[1], err)
		}
		return invoke(map[string]any{
			"partID":  args[0],
			"enabled": enabled,
		}, method(v1alpha1.EquipmentServiceClient.SetPartEnabled))
	},
}

func init() {
	createPartCmd.Flags().Float64Var(&partWeight, "weight", 0, "Weight of one unit")
	createPartCmd.Flags().IntVar(&partQuantity, "quantity", 1, "Number of units")
	createPartCmd.Flags().StringSliceVar(&partResources, "resource", nil, "Resource as name=amount, repeatable")
	createPartCmd.Flags().StringVar(&partResourceType, "resource-type", "", "static or consumable")
	createPartCmd.Flags().BoolVar(&partDisabled, "disabled", false, "Create the part disabled")
	createPartCmd.Flags().StringVar(&partMechID, "mech", "", "mechID to mount on")
	createPartCmd.Flags().StringVar(&partLocation, "location", "", "Location to mount at")
}

// parseResources reads name=amount pairs
func parseResources(pairs []string) (map[string]any, error) {
	resources := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("resource %q must be name=amount", pair)
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("resource %q has a bad amount: %w", pair, err)
		}
		resources[strings.TrimSpace(name)] = amount
	}
	return resources, nil
}
