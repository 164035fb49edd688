package staff

import (
	"strconv"
	"time"

	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
)

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Name     string                `json:"name"`
	Role     string                `json:"role"`
	ID       string                `json:"id"`
	Age      validation.FormNumber `json:"age"`
	Password string                `json:"password"`
}

// ValidatedRegistration is a registration that passed every check and is
// waiting for its photo, if any.
type ValidatedRegistration struct {
	Name     string  `validate:"required"`
	Role     string  `validate:"oneof=Doctor Nurse"`
	ID       string  `validate:"staffid"`
	Age      float64 `validate:"ward_age"`
	Password string  `validate:"strongpassword"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	ID       string `json:"loginId"`
	Password string `json:"password"`
}

// Profile is the staff user as shown on the profile screen.
type Profile struct {
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	ID           string    `json:"id"`
	Age          float64   `json:"age"`
	Photo        string    `json:"photo,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// ProfileForm pre-fills the registration form for editing. Password is always blank.
type ProfileForm struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ID       string `json:"id"`
	Age      string `json:"age"`
	Password string `json:"password"`
}

func toProfile(u *session.StaffUser) *Profile {
	return &Profile{
		Name:         u.Name,
		Role:         u.Role,
		ID:           u.ID,
		Age:          u.Age,
		Photo:        u.Photo,
		RegisteredAt: u.RegisteredAt,
	}
}

func toProfileForm(u *session.StaffUser) ProfileForm {
	if u == nil {
		return ProfileForm{}
	}
	return ProfileForm{
		Name: u.Name,
		Role: u.Role,
		ID:   u.ID,
		Age:  strconv.FormatFloat(u.Age, 'f', -1, 64),
	}
}
