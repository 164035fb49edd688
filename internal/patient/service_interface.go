package patient

import (
	"context"
	"io"

	"github.com/WailSalutem-Health-Care/ward-service/internal/pagination"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
)

// ServiceInterface defines the contract for patient intake operations
type ServiceInterface interface {
	ValidateIntake(req IntakeRequest) (*ValidatedIntake, error)
	FinalizeIntake(ctx context.Context, v *ValidatedIntake, photoDataURI string) (*IntakeResult, error)
	Intake(ctx context.Context, req IntakeRequest, photo io.Reader) (*IntakeResult, error)
	GetPatient(ctx context.Context, key string) (*session.PatientRecord, error)
	ListPatients(ctx context.Context, params pagination.Params) *PatientListResponse
}

var _ ServiceInterface = (*Service)(nil)
