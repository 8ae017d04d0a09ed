package main

import (
	"os"

	"github.com/spf13/cobra"

	"luster/internal/interfaces/cli/migrate"
	"luster/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "luster",
		Short: "Luster - inspection lifecycle and scoring service",
		Long:  `Luster is the inspection lifecycle and scoring service for commercial cleaning operations, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
