package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewProviders_EmptyEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "   "} {
		providers, err := NewProviders(context.Background(), endpoint, "projectboard", false)
		if err != nil {
			t.Fatalf("NewProviders(%q): %v", endpoint, err)
		}
		if providers.TracerProvider == nil || providers.MeterProvider == nil || providers.LoggerProvider == nil {
			t.Errorf("NewProviders(%q) left a provider nil", endpoint)
		}
		if err := providers.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown should be no-op, got %v", err)
		}
	}
}

func TestCollectorTarget(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		force        bool
		wantTarget   string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host port", "localhost:4317", false, "localhost:4317", true, false},
		{"http", "http://collector:4317", false, "collector:4317", true, false},
		{"https uses tls", "https://collector:4317", false, "collector:4317", false, false},
		{"https forced insecure", "https://collector:4317", true, "collector:4317", true, false},
		{"path dropped", "http://collector:4317/v1/traces", false, "collector:4317", true, false},
		{"query dropped", "http://collector:4317?x=1", false, "collector:4317", true, false},
		{"missing host", "http://", false, "", false, true},
		{"malformed", "http://[invalid", false, "", false, true},
		{"no scheme", "://invalid", false, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, insecure, err := collectorTarget(tt.endpoint, tt.force)
			if tt.wantErr {
				if err == nil {
					t.Errorf("collectorTarget(%q) should fail", tt.endpoint)
				}
				return
			}
			if err != nil {
				t.Fatalf("collectorTarget(%q): %v", tt.endpoint, err)
			}
			if target != tt.wantTarget || insecure != tt.wantInsecure {
				t.Errorf("got (%q, %v), want (%q, %v)", target, insecure, tt.wantTarget, tt.wantInsecure)
			}
		})
	}
}

func TestNewProviders_InvalidEndpoint(t *testing.T) {
	if _, err := NewProviders(context.Background(), "http://", "projectboard", false); err == nil {
		t.Fatal("NewProviders with missing host should return error")
	}
}

func TestSetGlobal(t *testing.T) {
	oldTP, oldMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(oldTP)
		otel.SetMeterProvider(oldMP)
	}()

	providers, err := NewProviders(context.Background(), "", "projectboard", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	providers.SetGlobal()
	if otel.GetTracerProvider() == oldTP {
		t.Error("TracerProvider should be updated")
	}
	if otel.GetMeterProvider() == oldMP {
		t.Error("MeterProvider should be updated")
	}
}

func TestSetGlobal_PartialProviders(t *testing.T) {
	oldTP, oldMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(oldTP)
		otel.SetMeterProvider(oldMP)
	}()

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	(&Providers{TracerProvider: tp}).SetGlobal()

	if otel.GetTracerProvider() == oldTP {
		t.Error("TracerProvider should be updated")
	}
	if otel.GetMeterProvider() != oldMP {
		t.Error("MeterProvider should not change when nil")
	}
}
