package staff

import "github.com/WailSalutem-Health-Care/ward-service/internal/session"

// RepositoryInterface defines the single staff slot
type RepositoryInterface interface {
	Current() (*session.StaffUser, bool)
	Replace(u session.StaffUser)
	Clear()
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
