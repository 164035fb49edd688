package patient

import "github.com/WailSalutem-Health-Care/ward-service/internal/session"

// Repository keeps patient records in the session store under their key.
type Repository struct {
	store *session.Store
}

func NewRepository(store *session.Store) *Repository {
	return &Repository{store: store}
}

// Put stores rec under rec.Key(), overwriting silently.
func (r *Repository) Put(rec session.PatientRecord) bool {
	return r.store.PutPatient(rec.Key(), rec)
}

func (r *Repository) Get(key string) (*session.PatientRecord, error) {
	rec, ok := r.store.Patient(key)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return rec, nil
}

func (r *Repository) Patient(key string) (*session.PatientRecord, bool) {
	return r.store.Patient(key)
}

func (r *Repository) Occupancy(keys []string) []bool {
	return r.store.Occupancy(keys)
}

func (r *Repository) List() []session.PatientRecord {
	return r.store.Patients()
}
