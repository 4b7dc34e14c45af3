package orchestrators

import (
	"context"
	"errors"
	"testing"

	"garage/internal/domain/appointment"
	"garage/internal/domain/mechanic"
)

func availabilityDeps(mechs *mockMechanicStore, appts *mockAppointmentStore) GetAvailabilityDeps {
	return GetAvailabilityDeps{
		MechanicStore:    mechs,
		AppointmentStore: appts,
		Now:              fixedNow,
	}
}

// TestExecuteGetAvailability_FreshDay tests a date with no bookings.
func TestExecuteGetAvailability_FreshDay(t *testing.T) {
	mechs := newMockMechanicStore(
		mechanic.Mechanic{Name: "Manik Mia", Specialization: "General Maintenance"},
		mechanic.Mechanic{Name: "David Kamal", Specialization: "Brake Systems"},
	)
	appts := newMockAppointmentStore()

	list, err := ExecuteGetAvailability(context.Background(), GetAvailabilityInput{Date: tomorrow}, availabilityDeps(mechs, appts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	// Ordered by name
	if list[0].Name != "David Kamal" || list[1].Name != "Manik Mia" {
		t.Errorf("unexpected order: %s, %s", list[0].Name, list[1].Name)
	}
	for _, a := range list {
		if a.BookedToday != 0 || a.AvailableSlots != appointment.SlotsPerDay || !a.IsAvailable {
			t.Errorf("fresh day availability wrong: %+v", a)
		}
	}
}

// TestExecuteGetAvailability_FullyBookedStaysListed verifies booked-out
// mechanics are annotated, never filtered.
func TestExecuteGetAvailability_FullyBookedStaysListed(t *testing.T) {
	mechs := newMockMechanicStore(mechanic.Mechanic{Name: "Md. Joshim", Specialization: "Engine Specialist"})
	appts := newMockAppointmentStore()
	for i := 0; i < appointment.SlotsPerDay; i++ {
		_, err := appts.Book(context.Background(), appointment.Appointment{
			ClientName:      "Client",
			ClientAddress:   "Addr",
			ClientPhone:     "100000000" + string(rune('0'+i)),
			CarLicense:      "L",
			CarEngine:       "1",
			AppointmentDate: tomorrow,
			MechanicID:      1,
		})
		if err != nil {
			t.Fatalf("seed booking %d: %v", i, err)
		}
	}

	list, err := ExecuteGetAvailability(context.Background(), GetAvailabilityInput{Date: tomorrow}, availabilityDeps(mechs, appts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1 (fully booked mechanics stay listed)", len(list))
	}
	got := list[0]
	if got.BookedToday != appointment.SlotsPerDay || got.AvailableSlots != 0 || got.IsAvailable {
		t.Errorf("availability = %+v, want fully booked", got)
	}
}

// TestExecuteGetAvailability_DateValidation tests the two date errors.
func TestExecuteGetAvailability_DateValidation(t *testing.T) {
	mechs := newMockMechanicStore()
	appts := newMockAppointmentStore()

	_, err := ExecuteGetAvailability(context.Background(), GetAvailabilityInput{}, availabilityDeps(mechs, appts))
	if !errors.Is(err, ErrDateRequired) {
		t.Errorf("missing date: err = %v, want ErrDateRequired", err)
	}

	for _, date := range []string{today, "2026-08-01", "garbage"} {
		_, err := ExecuteGetAvailability(context.Background(), GetAvailabilityInput{Date: date}, availabilityDeps(mechs, appts))
		if !errors.Is(err, ErrDateMustBeFuture) {
			t.Errorf("date %q: err = %v, want ErrDateMustBeFuture", date, err)
		}
	}
}
