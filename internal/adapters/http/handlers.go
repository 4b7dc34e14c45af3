package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appointmentStore "garage/internal/adapters/storage/appointment"
	"garage/internal/application/orchestrators"
	"garage/internal/domain/appointment"
	"garage/internal/domain/mechanic"
)

// writeJSON sends a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeFailure sends the standard business-failure envelope.
// Business failures are HTTP 200: the front end switches on `success`.
func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": false,
		"message": message,
	})
}

// mechanicSentinels are the mechanic-admin validation errors whose text is
// safe to return to the client verbatim.
var mechanicSentinels = []error{
	mechanic.ErrNameRequired,
	mechanic.ErrNameTooLong,
	mechanic.ErrSpecializationRequired,
	mechanic.ErrSpecializationTooLong,
	mechanic.ErrDuplicateName,
	mechanic.ErrNotFound,
	mechanic.ErrInvalidID,
}

// isClientError reports whether err carries a user-facing message.
func isClientError(err error) bool {
	var apptErr *appointment.Error
	if errors.As(err, &apptErr) {
		return true
	}
	for _, sentinel := range mechanicSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// writeError maps err to the API surface: validation errors keep their exact
// message, anything else is logged and replaced with fallback (OWASP A05).
func writeError(w http.ResponseWriter, err error, fallback string) {
	if isClientError(err) {
		writeFailure(w, err.Error())
		return
	}
	slog.Error("internal_error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"message": fallback,
	})
}

// handleBookAppointment handles POST book_appointment.
func (s *server) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, "All fields are required")
		return
	}

	result, err := orchestrators.ExecuteBookAppointment(r.Context(), orchestrators.BookAppointmentInput{
		ClientName:      r.FormValue("client_name"),
		ClientAddress:   r.FormValue("client_address"),
		ClientPhone:     r.FormValue("client_phone"),
		CarLicense:      r.FormValue("car_license"),
		CarEngine:       r.FormValue("car_engine"),
		AppointmentDate: r.FormValue("appointment_date"),
		MechanicID:      r.FormValue("mechanic_id"),
	}, orchestrators.BookAppointmentDeps{
		MechanicStore:    s.stores.MechanicStore,
		AppointmentStore: s.stores.AppointmentStore,
	})
	if err != nil {
		// Capacity rejections are demand the workshop turned away; surface
		// them in the log stream so staffing can react.
		if appointment.IsKind(err, appointment.KindCapacityExceeded) {
			slog.Info("booking_event", "event", "booking_rejected_full",
				"mechanic_id", r.FormValue("mechanic_id"),
				"date", r.FormValue("appointment_date"))
		}
		writeError(w, err, "Failed to book appointment. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Appointment booked successfully!",
		"appointment": map[string]any{
			"client_name":      result.Appointment.ClientName,
			"appointment_date": result.Appointment.AppointmentDate,
			"mechanic_name":    result.MechanicName,
		},
	})
}

// handleGetMechanics handles get_mechanics?date= (per-date availability).
func (s *server) handleGetMechanics(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = r.FormValue("date")
	}

	availability, err := orchestrators.ExecuteGetAvailability(r.Context(), orchestrators.GetAvailabilityInput{
		Date: date,
	}, orchestrators.GetAvailabilityDeps{
		MechanicStore:    s.stores.MechanicStore,
		AppointmentStore: s.stores.AppointmentStore,
	})
	if err != nil {
		writeError(w, err, "Database error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"date":      date,
		"mechanics": availability,
	})
}

// handleGetAllMechanics handles get_all_mechanics (admin roster, no date).
func (s *server) handleGetAllMechanics(w http.ResponseWriter, r *http.Request) {
	mechanics, err := s.stores.MechanicStore.List(r.Context())
	if err != nil {
		writeError(w, err, "Database error occurred")
		return
	}
	if mechanics == nil {
		mechanics = []mechanic.Mechanic{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"mechanics": mechanics,
		"count":     len(mechanics),
	})
}

// handleGetAppointments handles get_appointments.
func (s *server) handleGetAppointments(w http.ResponseWriter, r *http.Request) {
	details, err := s.stores.AppointmentStore.ListWithMechanics(r.Context())
	if err != nil {
		writeError(w, err, "Database error occurred")
		return
	}
	if details == nil {
		details = []appointmentStore.Detail{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"appointments": details,
		"total_count":  len(details),
	})
}

// handleUpdateAppointment handles POST update_appointment.
func (s *server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, appointment.ErrIDRequired.Error())
		return
	}

	result, err := orchestrators.ExecuteUpdateAppointment(r.Context(), orchestrators.UpdateAppointmentInput{
		AppointmentID:   r.FormValue("appointment_id"),
		ClientName:      r.FormValue("client_name"),
		ClientPhone:     r.FormValue("client_phone"),
		CarLicense:      r.FormValue("car_license"),
		CarEngine:       r.FormValue("car_engine"),
		AppointmentDate: r.FormValue("appointment_date"),
		MechanicID:      r.FormValue("mechanic_id"),
	}, orchestrators.UpdateAppointmentDeps{
		MechanicStore:    s.stores.MechanicStore,
		AppointmentStore: s.stores.AppointmentStore,
	})
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Appointment updated successfully",
		"appointment": map[string]any{
			"id":               result.Appointment.ID,
			"client_name":      result.Appointment.ClientName,
			"appointment_date": result.Appointment.AppointmentDate,
			"mechanic_name":    result.MechanicName,
		},
	})
}

// handleAddMechanic handles POST add_mechanic.
func (s *server) handleAddMechanic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, mechanic.ErrNameRequired.Error())
		return
	}

	created, err := orchestrators.ExecuteAddMechanic(r.Context(), orchestrators.AddMechanicInput{
		Name:           r.FormValue("name"),
		Specialization: r.FormValue("specialization"),
	}, orchestrators.AddMechanicDeps{
		MechanicStore: s.stores.MechanicStore,
	})
	if err != nil {
		writeError(w, err, "Database error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Mechanic added successfully",
		"mechanic": created,
	})
}

// handleUpdateMechanic handles POST update_mechanic.
func (s *server) handleUpdateMechanic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, mechanic.ErrInvalidID.Error())
		return
	}

	updated, err := orchestrators.ExecuteUpdateMechanic(r.Context(), orchestrators.UpdateMechanicInput{
		ID:             r.FormValue("id"),
		Name:           r.FormValue("name"),
		Specialization: r.FormValue("specialization"),
	}, orchestrators.UpdateMechanicDeps{
		MechanicStore: s.stores.MechanicStore,
	})
	if err != nil {
		writeError(w, err, "Database error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Mechanic updated successfully",
		"mechanic": updated,
	})
}
