// Package session keeps the in-memory state of one ward session: at most one
// registered staff user and the patient mapping keyed by bed number.
package session

import (
	"sort"
	"sync"
)

// Store is an explicitly constructed application state. Nothing in it
// survives the process. The newest successful write always wins.
type Store struct {
	mu       sync.RWMutex
	user     *StaffUser
	patients map[string]PatientRecord
}

func NewStore() *Store {
	return &Store{patients: make(map[string]PatientRecord)}
}

// CurrentUser returns a copy of the registered user.
func (s *Store) CurrentUser() (*StaffUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	u.PasswordHash = append([]byte(nil), s.user.PasswordHash...)
	return &u, true
}

// SetUser replaces the registered user. There is no merge with the previous one.
func (s *Store) SetUser(u StaffUser) {
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// ClearUser forgets the registered user.
func (s *Store) ClearUser() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// PutPatient stores rec under key, replacing whatever was there. It reports
// whether a previous record was replaced.
func (s *Store) PutPatient(key string, rec PatientRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.patients[key]
	s.patients[key] = rec
	return replaced
}

// Patient returns the record stored under the exact key.
func (s *Store) Patient(key string) (*PatientRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.patients[key]
	if !ok {
		return nil, false
	}
	return &rec, true
}

// Occupancy reports for each key whether a record exists under exactly that
// key. All keys are read under one lock, so the result is a single snapshot.
func (s *Store) Occupancy(keys []string) []bool {
	out := make([]bool, len(keys))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, k := range keys {
		_, out[i] = s.patients[k]
	}
	return out
}

// Patients returns every record ordered by key.
func (s *Store) Patients() []PatientRecord {
	s.mu.RLock()
	keys := make([]string, 0, len(s.patients))
	for k := range s.patients {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]PatientRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.patients[k])
	}
	s.mu.RUnlock()
	return out
}
