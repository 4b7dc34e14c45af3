package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// AppointmentsCmd returns the appointments command
func AppointmentsCmd() *cobra.Command {
	var date string
	var today bool

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List booked appointments",
		Long: `List all appointments ordered by date, joined with their mechanic.
Use --date to narrow to a single day, or --today as a shorthand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if today {
				date = todayDate()
			}

			stores, err := OpenStores()
			if err != nil {
				return err
			}
			defer stores.Close()

			details, err := stores.Appointments.ListWithMechanics(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list appointments: %w", err)
			}

			shown := 0
			for _, d := range details {
				if date != "" && d.AppointmentDate != date {
					continue
				}
				shown++
				dateCol := color.New(color.FgCyan).Sprint(d.AppointmentDate)
				fmt.Printf("  #%-4d %s  %-20s %-14s %s (%s)\n",
					d.ID, dateCol, d.ClientName, d.ClientPhone, d.MechanicName, d.MechanicSpecialization)
			}

			if shown == 0 {
				if date != "" {
					fmt.Printf("No appointments on %s.\n", date)
				} else {
					fmt.Println("No appointments booked.")
				}
				return nil
			}
			fmt.Printf("\n%d appointment(s)\n", shown)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only show appointments on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "only show today's appointments")
	return cmd
}
