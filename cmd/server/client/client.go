// Package client provides test commands for the mechbay gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/handlers/equipment/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the mechbay API",
	Long:  `Client commands allow you to test the mechbay API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(createMechCmd)
	ClientCmd.AddCommand(getMechCmd)
	ClientCmd.AddCommand(equipMechCmd)
	ClientCmd.AddCommand(deleteMechCmd)
	ClientCmd.AddCommand(transferMechCmd)

	ClientCmd.AddCommand(createPartCmd)
	ClientCmd.AddCommand(assignPartCmd)
	ClientCmd.AddCommand(setPartEnabledCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createEquipmentClient creates an equipment service client
func createEquipmentClient() (v1alpha1.EquipmentServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewEquipmentServiceClient(conn), cleanup, nil
}

type call func(ctx context.Context, client v1alpha1.EquipmentServiceClient, req *structpb.Struct) (*structpb.Struct, error)

// invoke sends one request and prints the response as JSON
func invoke(fields map[string]any, fn call) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client, req)
	if err != nil {
		return requestError(err)
	}

	out, err := protojson.MarshalOptions{Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// requestError decodes a gRPC failure. Interrupted cascades name the stage
// they stopped at since the store is left part way through.
func requestError(err error) error {
	err = errors.FromGRPCError(err)
	if errors.IsCascadeInterrupted(err) {
		meta := errors.GetMeta(err)
		return fmt.Errorf("%v interrupted at %s after %v, run reconcile before retrying: %w",
			meta[errors.MetaOperation], errors.CascadeStage(err), meta[errors.MetaCompleted], err)
	}
	return fmt.Errorf("request failed: %w", err)
}
