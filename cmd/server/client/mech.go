package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mechbay-api/internal/handlers/equipment/v1alpha1"
)

var (
	mechDescription string
	mechWeight      float64
	resolution      string
)

var createMechCmd = &cobra.Command{
	Use:   "create-mech [character-id] [name]",
	Short: "Create a mech for a character",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(map[string]any{
			"characterID": args[0],
			"name":        args[1],
			"description": mechDescription,
			"weight":      mechWeight,
		}, method(v1alpha1.EquipmentServiceClient.CreateMech))
	},
}

var getMechCmd = &cobra.Command{
	Use:   "get-mech [mech-entity-id]",
	Short: "Get a mech with its resource summary and layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(map[string]any{"mechEntityID": args[0]},
			method(v1alpha1.EquipmentServiceClient.GetMech))
	},
}

var equipMechCmd = &cobra.Command{
	Use:   "equip-mech [character-id] [mech-entity-id]",
	Short: "Set a character's equipped mech",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(map[string]any{
			"characterID":  args[0],
			"mechEntityID": args[1],
		}, method(v1alpha1.EquipmentServiceClient.EquipMech))
	},
}

var deleteMechCmd = &cobra.Command{
	Use:   "delete-mech [character-id] [mech-entity-id]",
	Short: "Delete a mech",
	Long: `Delete a mech. When parts are mounted, --resolution picks what happens to them:
unassign returns them to inventory, delete_all deletes them, cancel aborts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(map[string]any{
			"characterID":  args[0],
			"mechEntityID": args[1],
			"resolution":   resolution,
		}, method(v1alpha1.EquipmentServiceClient.DeleteMech))
	},
}

var transferMechCmd = &cobra.Command{
	Use:   "transfer-mech [source-character-id] [destination-character-id] [mech-entity-id]",
	Short: "Move a mech and its mounted parts to another character",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(map[string]any{
			"sourceCharacterID":      args[0],
			"destinationCharacterID": args[1],
			"mechEntityID":           args[2],
		}, method(v1alpha1.EquipmentServiceClient.TransferMech))
	},
}

func init() {
	createMechCmd.Flags().StringVar(&mechDescription, "description", "", "Mech description")
	createMechCmd.Flags().Float64Var(&mechWeight, "weight", 0, "Mech base weight")
	deleteMechCmd.Flags().StringVar(&resolution, "resolution", "", "unassign, delete_all, or cancel")
}

// method adapts a client method expression to a call
func method(
	fn func(v1alpha1.EquipmentServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error),
) call {
	return func(ctx context.Context, client v1alpha1.EquipmentServiceClient, req *structpb.Struct) (*structpb.Struct, error) {
		return fn(client, ctx, req)
	}
}
