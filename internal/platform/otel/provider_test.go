package otel

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv(EnvEndpoint, "")

	shutdown, err := Setup(context.Background(), "iconserver")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupDisabledIgnoresEndpoint(t *testing.T) {
	t.Setenv(EnvEnabled, "FALSE")
	t.Setenv(EnvEndpoint, "http://collector.invalid:4318")

	shutdown, err := Setup(context.Background(), "iconserver")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
