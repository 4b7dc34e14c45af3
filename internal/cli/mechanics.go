package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"garage/internal/domain/appointment"
)

// MechanicsCmd returns the mechanics command
func MechanicsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "mechanics",
		Short: "List the mechanic roster",
		Long: `List all mechanics ordered by name. With --date, each mechanic is
annotated with the bookings and free slots for that day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := OpenStores()
			if err != nil {
				return err
			}
			defer stores.Close()

			ctx := context.Background()
			mechanics, err := stores.Mechanics.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list mechanics: %w", err)
			}

			if len(mechanics) == 0 {
				fmt.Println("No mechanics registered.")
				return nil
			}

			fmt.Printf("Mechanics (%d)\n\n", len(mechanics))
			for _, m := range mechanics {
				line := fmt.Sprintf("  #%-4d %-24s %s", m.ID, m.Name, m.Specialization)
				if date == "" {
					fmt.Println(line)
					continue
				}

				booked, err := stores.Appointments.CountForMechanicOnDate(ctx, m.ID, date)
				if err != nil {
					return fmt.Errorf("failed to count bookings: %w", err)
				}
				free := appointment.SlotsPerDay - booked
				slot := color.New(color.FgGreen).Sprintf("%d/%d free", free, appointment.SlotsPerDay)
				if free <= 0 {
					slot = color.New(color.FgRed).Sprint("FULL")
				} else if free == 1 {
					slot = color.New(color.FgYellow).Sprintf("%d/%d free", free, appointment.SlotsPerDay)
				}
				fmt.Printf("%s  %s\n", line, slot)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "annotate availability for a date (YYYY-MM-DD)")
	return cmd
}

// todayDate returns the current date in the appointment date layout.
func todayDate() string {
	return time.Now().Format(appointment.DateLayout)
}
