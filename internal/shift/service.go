// Package shift serves the shift timing table and acknowledges change
// requests without ever modifying the table.
package shift

import (
	"context"
	"strings"

	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"go.uber.org/zap"
)

type Service struct {
	entries   []Entry
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
	logger    *zap.Logger
}

func NewService(entries []Entry, publisher messaging.PublisherInterface, metrics *telemetry.Metrics, logger *zap.Logger) *Service {
	if len(entries) == 0 {
		entries = DefaultEntries
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		entries:   append([]Entry(nil), entries...),
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// List returns a copy of the shift table.
func (s *Service) List(ctx context.Context) []Entry {
	return append([]Entry(nil), s.entries...)
}

// RequestChange records nothing in the table. It requires a reason and
// returns the acknowledgement shown to the requester.
func (s *Service) RequestChange(ctx context.Context, req ChangeRequest, requestedBy string) (*ChangeAck, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.metrics.RecordValidationFailure(ctx, "shift", validation.Kind(validation.ErrMissingReason))
		return nil, validation.ErrMissingReason
	}

	event := messaging.ShiftChangeRequestedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventShiftChangeRequested),
		Data: messaging.ShiftChangeRequestedData{
			Reason:      reason,
			RequestedBy: requestedBy,
		},
	}
	event.Data.RequestedAt = event.Timestamp
	if err := s.publisher.Publish(ctx, messaging.EventShiftChangeRequested, event); err != nil {
		s.logger.Warn("failed to publish shift change request", zap.Error(err))
	}

	s.metrics.RecordShiftChangeRequest(ctx)
	s.logger.Info("shift change requested", zap.String("reason", reason))

	return &ChangeAck{
		Message: view.MsgShiftChangeRequested + reason,
		Reason:  reason,
	}, nil
}
