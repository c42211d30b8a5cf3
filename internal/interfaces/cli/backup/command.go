package backup

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"corpsbank/internal/infrastructure/backup"
	"corpsbank/internal/infrastructure/config"
	"corpsbank/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage database snapshots",
		Long:  `Create and list point-in-time snapshots of the registration database.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newCreateCommand(),
		newListCommand(),
	)

	return cmd
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Take a snapshot of the live database",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}

			name, err := manager.CreateSnapshot()
			if err != nil {
				return fmt.Errorf("failed to create snapshot: %w", err)
			}

			fmt.Printf("Snapshot created: %s\n", name)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List existing snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}

			names, err := manager.ListSnapshots()
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}

			if len(names) == 0 {
				fmt.Println("No snapshots found.")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newManager() (*backup.Manager, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// The CLI runs in its own process, so there are no in-process writers
	// to coordinate with. The mutex only satisfies the manager's contract.
	return backup.NewManager(cfg.Database.Path, cfg.Backup.Dir, &sync.Mutex{}, logger.NewLogger()), nil
}
