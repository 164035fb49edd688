// Package patient implements patient intake and lookup. Records are keyed by
// bed number; a second intake for the same bed replaces the first.
package patient

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/WailSalutem-Health-Care/ward-service/internal/beds"
	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/pagination"
	"github.com/WailSalutem-Health-Care/ward-service/internal/photo"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/ward-service/patient")

type Service struct {
	repo      RepositoryInterface
	photos    photo.Reader
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
	logger    *zap.Logger
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
		now:       time.Now,
	}
}

// ValidateIntake requires a name and an age of at least 1. Every other field
// is stored as entered, trimmed.
func (s *Service) ValidateIntake(req IntakeRequest) (*ValidatedIntake, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validation.Field("pName", validation.ErrMissingField)
	}
	age, err := validation.CheckAge(req.Age.String())
	if err != nil {
		return nil, err
	}

	bedNo := strings.TrimSpace(req.BedNo)
	if bedNo == "" {
		bedNo = session.UnassignedBed
	}

	return &ValidatedIntake{Record: session.PatientRecord{
		Name:           name,
		ID:             strings.TrimSpace(req.ID),
		Mobile:         strings.TrimSpace(req.Mobile),
		GuardianMobile: strings.TrimSpace(req.GuardianMobile),
		Age:            age,
		BedNo:          bedNo,
		Prescription:   strings.TrimSpace(req.Prescription),
	}}, nil
}

// FinalizeIntake stores the record and returns it with the re-rendered board.
func (s *Service) FinalizeIntake(ctx context.Context, v *ValidatedIntake, photoDataURI string) (*IntakeResult, error) {
	rec := v.Record
	rec.Photo = photoDataURI
	rec.AdmittedAt = s.now().UTC()

	replaced := s.repo.Put(rec)
	if replaced {
		s.logger.Info("patient record replaced", zap.String("key", rec.Key()))
	}

	event := messaging.PatientAdmittedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientAdmitted),
		Data: messaging.PatientAdmittedData{
			PatientID:  rec.ID,
			Name:       rec.Name,
			BedNo:      rec.BedNo,
			Replaced:   replaced,
			AdmittedAt: rec.AdmittedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPatientAdmitted, event); err != nil {
		s.logger.Warn("failed to publish patient admitted event", zap.Error(err))
	}
	s.metrics.RecordPatientIntake(ctx, replaced)

	return &IntakeResult{
		Patient:  rec,
		Replaced: replaced,
		Board:    beds.Render(s.repo),
	}, nil
}

// Intake validates req, waits for the optional photo and stores the record.
func (s *Service) Intake(ctx context.Context, req IntakeRequest, photoSrc io.Reader) (*IntakeResult, error) {
	ctx, span := tracer.Start(ctx, "patient.Intake")
	defer span.End()

	v, err := s.ValidateIntake(req)
	if err != nil {
		s.metrics.RecordValidationFailure(ctx, "intake", validation.Kind(err))
		span.SetStatus(codes.Error, validation.Kind(err))
		return nil, err
	}
	span.SetAttributes(attribute.String("patient.bed_no", v.Record.BedNo))

	photoDataURI := ""
	if photoSrc != nil {
		photoDataURI = s.decodePhoto(ctx, photoSrc)
	}

	return s.FinalizeIntake(ctx, v, photoDataURI)
}

func (s *Service) decodePhoto(ctx context.Context, src io.Reader) string {
	start := s.now()
	res := photo.Start(s.photos, src).Wait()
	s.metrics.RecordPhotoDecode(ctx, "intake", float64(s.now().Sub(start).Milliseconds()), res.Err == nil)

	if res.Err != nil {
		if !errors.Is(res.Err, photo.ErrEmpty) {
			s.logger.Warn("photo could not be decoded, saving patient without it", zap.Error(res.Err))
		}
		return ""
	}
	return res.DataURI
}

// GetPatient returns the record stored under exactly key.
func (s *Service) GetPatient(ctx context.Context, key string) (*session.PatientRecord, error) {
	return s.repo.Get(key)
}

// ListPatients returns one page of records ordered by key.
func (s *Service) ListPatients(ctx context.Context, params pagination.Params) *PatientListResponse {
	page, meta := pagination.Slice(s.repo.List(), params)
	return &PatientListResponse{Patients: page, Pagination: meta}
}
