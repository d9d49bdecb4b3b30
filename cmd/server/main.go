// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mechbay-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "mechbay-api",
	Short: "Mechbay API gRPC Server",
	Long:  `Mechbay API provides a gRPC interface for assigning parts to mechs and keeping characters, mechs, and parts consistent.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
