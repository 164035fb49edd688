package staff

import "github.com/WailSalutem-Health-Care/ward-service/internal/session"

// Repository keeps the registered staff user in the session store.
type Repository struct {
	store *session.Store
}

func NewRepository(store *session.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Current() (*session.StaffUser, bool) {
	return r.store.CurrentUser()
}

func (r *Repository) Replace(u session.StaffUser) {
	r.store.SetUser(u)
}

func (r *Repository) Clear() {
	r.store.ClearUser()
}
