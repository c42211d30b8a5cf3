package main

import (
	"os"

	"github.com/spf13/cobra"

	"corpsbank/internal/interfaces/cli/backup"
	"corpsbank/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "corpsbank",
		Short: "Corpsbank - corps member bank account registration",
		Long:  `Corpsbank collects and manages corps member bank account details, with an administrative dashboard and database snapshots.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		backup.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
