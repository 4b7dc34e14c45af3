package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"garage/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "garagectl",
		Short:   "garagectl - workshop database inspection tools",
		Version: version,
		Long: `garagectl inspects and maintains the workshop booking database from
the command line: mechanic roster, appointment lists, and seeding.`,
	}

	rootCmd.AddCommand(cli.MechanicsCmd())
	rootCmd.AddCommand(cli.AppointmentsCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
