// Package staff implements staff registration, login, logout and the profile
// screen. A session has at most one registered staff user.
package staff

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/photo"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/ward-service/staff")

type Service struct {
	repo      RepositoryInterface
	photos    photo.Reader
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
	logger    *zap.Logger
	hashCost  int
	now       func() time.Time
}

func NewService(repo RepositoryInterface, photos photo.Reader, publisher messaging.PublisherInterface, metrics *telemetry.Metrics, logger *zap.Logger) *Service {
	if photos == nil {
		photos = photo.NewDecoder(0)
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		photos:    photos,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// ValidateRegistration checks name, role, id format, id sequence, age and
// password in that order and stops at the first failure.
func (s *Service) ValidateRegistration(req RegisterRequest) (*ValidatedRegistration, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validation.Field("name", validation.ErrMissingField)
	}
	if req.Role != session.RoleDoctor && req.Role != session.RoleNurse {
		return nil, validation.ErrInvalidRole
	}
	id := strings.TrimSpace(req.ID)
	if err := validation.CheckID(id); err != nil {
		return nil, err
	}
	age, err := validation.CheckAge(req.Age.String())
	if err != nil {
		return nil, err
	}
	if !validation.ValidPassword(req.Password) {
		return nil, validation.ErrWeakPassword
	}

	return &ValidatedRegistration{
		Name:     name,
		Role:     req.Role,
		ID:       id,
		Age:      age,
		Password: req.Password,
	}, nil
}

// FinalizeRegistration replaces the stored staff user with v.
// v must come from ValidateRegistration; anything else is rejected.
func (s *Service) FinalizeRegistration(ctx context.Context, v *ValidatedRegistration, photoDataURI string) (*Profile, error) {
	if err := validation.Struct(v); err != nil {
		return nil, fmt.Errorf("unvalidated registration: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(v.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := session.StaffUser{
		Name:         v.Name,
		Role:         v.Role,
		ID:           v.ID,
		Age:          v.Age,
		PasswordHash: hash,
		Photo:        photoDataURI,
		RegisteredAt: s.now().UTC(),
	}
	s.repo.Replace(user)

	event := messaging.StaffRegisteredEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventStaffRegistered),
		Data: messaging.StaffRegisteredData{
			StaffID:      user.ID,
			Name:         user.Name,
			Role:         user.Role,
			HasPhoto:     user.Photo != "",
			RegisteredAt: user.RegisteredAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventStaffRegistered, event); err != nil {
		s.logger.Warn("failed to publish staff registered event", zap.Error(err))
	}

	s.metrics.RecordRegistration(ctx, user.Role, user.Photo != "")
	s.logger.Info("staff registered", zap.String("staff_id", user.ID), zap.String("role", user.Role))

	return toProfile(&user), nil
}

// Register validates req and, once the optional photo has been decoded,
// finalizes it. Without a photo finalize runs immediately.
func (s *Service) Register(ctx context.Context, req RegisterRequest, photoSrc io.Reader) (*Profile, error) {
	ctx, span := tracer.Start(ctx, "staff.Register")
	defer span.End()

	v, err := s.ValidateRegistration(req)
	if err != nil {
		s.metrics.RecordValidationFailure(ctx, "registration", validation.Kind(err))
		span.SetStatus(codes.Error, validation.Kind(err))
		return nil, err
	}

	photoDataURI := ""
	if photoSrc != nil {
		photoDataURI = s.decodePhoto(ctx, photoSrc)
	}
	span.SetAttributes(attribute.Bool("staff.photo", photoDataURI != ""))

	return s.FinalizeRegistration(ctx, v, photoDataURI)
}

func (s *Service) decodePhoto(ctx context.Context, src io.Reader) string {
	start := s.now()
	res := photo.Start(s.photos, src).Wait()
	s.metrics.RecordPhotoDecode(ctx, "registration", float64(s.now().Sub(start).Milliseconds()), res.Err == nil)

	switch {
	case errors.Is(res.Err, photo.ErrEmpty):
		return ""
	case res.Err != nil:
		s.logger.Warn("photo could not be decoded, registering without it", zap.Error(res.Err))
		return ""
	}
	return res.DataURI
}

// Login checks the submitted id and password against the registered user.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Profile, error) {
	ctx, span := tracer.Start(ctx, "staff.Login")
	defer span.End()

	profile, err := s.login(req)
	outcome := "success"
	if err != nil {
		outcome = validation.Kind(err)
		span.SetStatus(codes.Error, outcome)
	}
	s.metrics.RecordLogin(ctx, outcome)
	return profile, err
}

func (s *Service) login(req LoginRequest) (*Profile, error) {
	u, ok := s.repo.Current()
	if !ok {
		return nil, validation.ErrNoRegisteredUser
	}
	if u.ID != strings.TrimSpace(req.ID) {
		return nil, validation.ErrIDMismatch
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, passwordDigest(req.Password)); err != nil {
		return nil, validation.ErrPasswordMismatch
	}
	return toProfile(u), nil
}

// Logout forgets the registered user. Logging out twice is harmless.
func (s *Service) Logout(ctx context.Context) error {
	u, ok := s.repo.Current()
	s.repo.Clear()
	if !ok {
		return nil
	}

	event := messaging.StaffLoggedOutEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventStaffLoggedOut),
		Data: messaging.StaffLoggedOutData{
			StaffID:     u.ID,
			LoggedOutAt: s.now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventStaffLoggedOut, event); err != nil {
		s.logger.Warn("failed to publish staff logged out event", zap.Error(err))
	}
	s.logger.Info("staff logged out", zap.String("staff_id", u.ID))
	return nil
}

func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	u, ok := s.repo.Current()
	if !ok {
		return nil, validation.ErrNoRegisteredUser
	}
	return toProfile(u), nil
}

// EditPrefill returns the current user as a form. The password is never filled.
func (s *Service) EditPrefill(ctx context.Context) ProfileForm {
	u, _ := s.repo.Current()
	return toProfileForm(u)
}

// CurrentStaffID returns the id of the registered user.
func (s *Service) CurrentStaffID() (string, bool) {
	u, ok := s.repo.Current()
	if !ok {
		return "", false
	}
	return u.ID, true
}

// passwordDigest keeps bcrypt input under its 72 byte limit for any password length.
func passwordDigest(pw string) []byte {
	sum := sha256.Sum256([]byte(pw))
	return []byte(hex.EncodeToString(sum[:]))
}
