package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys
const (
	EventStaffRegistered      = "staff.registered"
	EventStaffLoggedOut       = "staff.logged_out"
	EventPatientAdmitted      = "patient.admitted"
	EventShiftChangeRequested = "shift.change_requested"
)

const ServiceName = "ward-service"

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// StaffRegisteredEvent is published after a registration is finalized.
// Passwords and photos never leave the process.
type StaffRegisteredEvent struct {
	BaseEvent
	Data StaffRegisteredData `json:"data"`
}

type StaffRegisteredData struct {
	StaffID      string    `json:"staff_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // Doctor or Nurse
	HasPhoto     bool      `json:"has_photo"`
	RegisteredAt time.Time `json:"registered_at"`
}

type StaffLoggedOutEvent struct {
	BaseEvent
	Data StaffLoggedOutData `json:"data"`
}

type StaffLoggedOutData struct {
	StaffID     string    `json:"staff_id"`
	LoggedOutAt time.Time `json:"logged_out_at"`
}

// PatientAdmittedEvent is published for every stored intake, including
// overwrites of an occupied bed.
type PatientAdmittedEvent struct {
	BaseEvent
	Data PatientAdmittedData `json:"data"`
}

type PatientAdmittedData struct {
	PatientID  string    `json:"patient_id"`
	Name       string    `json:"name"`
	BedNo      string    `json:"bed_no"`
	Replaced   bool      `json:"replaced"`
	AdmittedAt time.Time `json:"admitted_at"`
}

type ShiftChangeRequestedEvent struct {
	BaseEvent
	Data ShiftChangeRequestedData `json:"data"`
}

type ShiftChangeRequestedData struct {
	Reason      string    `json:"reason"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: ServiceName,
	}
}
