package session

import "time"

// Staff roles accepted at registration.
const (
	RoleDoctor = "Doctor"
	RoleNurse  = "Nurse"
)

// UnassignedBed is stored as the bed number when intake leaves it blank.
const UnassignedBed = "unassigned"

// StaffUser is the single registered staff member of a session.
type StaffUser struct {
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	ID           string    `json:"id"`
	Age          float64   `json:"age"`
	PasswordHash []byte    `json:"-"`
	Photo        string    `json:"photo,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// PatientRecord is one admitted patient, keyed by bed number.
type PatientRecord struct {
	Name           string    `json:"name"`
	ID             string    `json:"id"`
	Mobile         string    `json:"mobile"`
	GuardianMobile string    `json:"guardianMobile"`
	Age            float64   `json:"age"`
	BedNo          string    `json:"bedNo"`
	Prescription   string    `json:"prescription"`
	Photo          string    `json:"photo,omitempty"`
	AdmittedAt     time.Time `json:"admittedAt"`
}

// Key returns the mapping key for the record: the bed number, or the patient
// id when no bed is set.
func (p PatientRecord) Key() string {
	if p.BedNo != "" {
		return p.BedNo
	}
	return p.ID
}
