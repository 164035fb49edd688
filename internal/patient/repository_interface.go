package patient

import (
	"github.com/WailSalutem-Health-Care/ward-service/internal/beds"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
)

// RepositoryInterface defines the patient mapping operations. It is also the
// source the bed board is rendered from.
type RepositoryInterface interface {
	beds.Source
	Put(rec session.PatientRecord) (replaced bool)
	Get(key string) (*session.PatientRecord, error)
	List() []session.PatientRecord
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
