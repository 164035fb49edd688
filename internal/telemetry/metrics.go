package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/WailSalutem-Health-Care/ward-service"

// Metrics holds the ward's custom instruments
type Metrics struct {
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	RegistrationsTotal      metric.Int64Counter
	LoginsTotal             metric.Int64Counter
	PatientIntakesTotal     metric.Int64Counter
	ValidationFailuresTotal metric.Int64Counter
	ShiftChangeRequests     metric.Int64Counter
	PhotoDecodeDurationMs   metric.Float64Histogram
}

// InitMetrics creates the instruments on the global meter provider.
func InitMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(meterName))
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	registrationsTotal, err := meter.Int64Counter(
		"ward_staff_registrations_total",
		metric.WithDescription("Finalized staff registrations"),
		metric.WithUnit("{registration}"),
	)
	if err != nil {
		return nil, err
	}

	loginsTotal, err := meter.Int64Counter(
		"ward_staff_logins_total",
		metric.WithDescription("Login attempts by outcome"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	patientIntakesTotal, err := meter.Int64Counter(
		"ward_patient_intakes_total",
		metric.WithDescription("Stored patient intakes"),
		metric.WithUnit("{intake}"),
	)
	if err != nil {
		return nil, err
	}

	validationFailuresTotal, err := meter.Int64Counter(
		"ward_validation_failures_total",
		metric.WithDescription("Rejected submissions by failure kind"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	shiftChangeRequests, err := meter.Int64Counter(
		"ward_shift_change_requests_total",
		metric.WithDescription("Acknowledged shift change requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	photoDecodeDurationMs, err := meter.Float64Histogram(
		"ward_photo_decode_duration_ms",
		metric.WithDescription("Time from submit to decoded photo"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		HTTPRequestsTotal:       httpRequestsTotal,
		HTTPDurationMs:          httpDurationMs,
		RegistrationsTotal:      registrationsTotal,
		LoginsTotal:             loginsTotal,
		PatientIntakesTotal:     patientIntakesTotal,
		ValidationFailuresTotal: validationFailuresTotal,
		ShiftChangeRequests:     shiftChangeRequests,
		PhotoDecodeDurationMs:   photoDecodeDurationMs,
	}, nil
}

// All Record methods are safe on a nil *Metrics.

func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}
	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordRegistration(ctx context.Context, role string, withPhoto bool) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.Bool("photo", withPhoto),
	))
}

func (m *Metrics) RecordLogin(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) RecordPatientIntake(ctx context.Context, replaced bool) {
	if m == nil {
		return
	}
	m.PatientIntakesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("replaced", replaced),
	))
}

func (m *Metrics) RecordValidationFailure(ctx context.Context, flow, kind string) {
	if m == nil {
		return
	}
	m.ValidationFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("flow", flow),
		attribute.String("kind", kind),
	))
}

func (m *Metrics) RecordShiftChangeRequest(ctx context.Context) {
	if m == nil {
		return
	}
	m.ShiftChangeRequests.Add(ctx, 1)
}

func (m *Metrics) RecordPhotoDecode(ctx context.Context, flow string, durationMs float64, ok bool) {
	if m == nil {
		return
	}
	m.PhotoDecodeDurationMs.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("flow", flow),
		attribute.Bool("ok", ok),
	))
}
