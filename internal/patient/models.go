package patient

import (
	"github.com/WailSalutem-Health-Care/ward-service/internal/beds"
	"github.com/WailSalutem-Health-Care/ward-service/internal/pagination"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
)

// IntakeRequest is the patient form. JSON keys follow the form field names.
type IntakeRequest struct {
	Name           string                `json:"pName"`
	ID             string                `json:"pId"`
	Mobile         string                `json:"mobile"`
	GuardianMobile string                `json:"gmobile"`
	Age            validation.FormNumber `json:"page"`
	BedNo          string                `json:"bedNo"`
	Prescription   string                `json:"prescription"`
}

// ValidatedIntake is an intake that passed validation, trimmed and with the
// bed number defaulted.
type ValidatedIntake struct {
	Record session.PatientRecord
}

// IntakeResult is returned after a record is stored.
type IntakeResult struct {
	Patient  session.PatientRecord `json:"patient"`
	Replaced bool                  `json:"replaced"`
	Board    beds.Board            `json:"board"`
}

// PatientListResponse is one page of admitted patients ordered by key.
type PatientListResponse struct {
	Patients   []session.PatientRecord `json:"patients"`
	Pagination pagination.Meta         `json:"pagination"`
}
