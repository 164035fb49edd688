package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"TELEMETRY_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "OTEL_METRICS_EXPORT_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected telemetry to be disabled by default")
	}
	if cfg.ServiceName != "ward-service" {
		t.Errorf("Expected service name 'ward-service', got '%s'", cfg.ServiceName)
	}
	if cfg.OTLPEndpoint != "localhost:4317" {
		t.Errorf("Expected default endpoint, got '%s'", cfg.OTLPEndpoint)
	}
	if cfg.MetricsInterval != 30*time.Second {
		t.Errorf("Expected 30s interval, got %s", cfg.MetricsInterval)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("TELEMETRY_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "ward-test")
	t.Setenv("OTEL_METRICS_EXPORT_INTERVAL", "5s")

	cfg := LoadConfig()

	if !cfg.Enabled {
		t.Error("Expected telemetry to be enabled")
	}
	if cfg.ServiceName != "ward-test" {
		t.Errorf("Expected 'ward-test', got '%s'", cfg.ServiceName)
	}
	if cfg.MetricsInterval != 5*time.Second {
		t.Errorf("Expected 5s interval, got %s", cfg.MetricsInterval)
	}
}

func TestInitProvider_Disabled(t *testing.T) {
	p, err := InitProvider(context.Background(), Config{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.TracerProvider != nil || p.MeterProvider != nil {
		t.Error("Expected no providers when telemetry is disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got: %v", err)
	}
}
