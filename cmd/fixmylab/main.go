package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixmylab/internal/interfaces/cli/migrate"
	"fixmylab/internal/interfaces/cli/server"
	"fixmylab/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixmylab",
		Short: "FixMyLab - repair ticket management",
		Long:  `FixMyLab is the repair shop's ticket service: public intake, staff back office, email notifications and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
