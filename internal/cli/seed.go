package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"garage/internal/application/orchestrators"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default mechanic roster",
		Long: `Insert the default five mechanics when the roster is empty.
Running against a populated database is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := OpenStores()
			if err != nil {
				return err
			}
			defer stores.Close()

			ctx := context.Background()
			before, err := stores.Mechanics.Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to count mechanics: %w", err)
			}

			deps := orchestrators.SeedMechanicsDeps{MechanicStore: stores.Mechanics}
			if err := orchestrators.ExecuteSeedMechanics(ctx, deps); err != nil {
				return fmt.Errorf("failed to seed mechanics: %w", err)
			}

			after, err := stores.Mechanics.Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to count mechanics: %w", err)
			}

			if after > before {
				fmt.Printf("%s seeded %d mechanics\n", color.New(color.FgGreen).Sprint("OK"), after-before)
			} else {
				fmt.Printf("%s roster already populated (%d mechanics)\n", color.New(color.FgYellow).Sprint("SKIP"), after)
			}
			return nil
		},
	}
}
