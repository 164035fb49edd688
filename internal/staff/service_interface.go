package staff

import (
	"context"
	"io"
)

// ServiceInterface defines the registration and login flow
type ServiceInterface interface {
	ValidateRegistration(req RegisterRequest) (*ValidatedRegistration, error)
	FinalizeRegistration(ctx context.Context, v *ValidatedRegistration, photoDataURI string) (*Profile, error)
	Register(ctx context.Context, req RegisterRequest, photo io.Reader) (*Profile, error)
	Login(ctx context.Context, req LoginRequest) (*Profile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*Profile, error)
	EditPrefill(ctx context.Context) ProfileForm
}

var _ ServiceInterface = (*Service)(nil)
