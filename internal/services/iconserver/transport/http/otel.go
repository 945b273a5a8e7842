package http

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// WithTracing wraps next with OpenTelemetry HTTP instrumentation. Health and
// metrics scrapes are not traced.
func WithTracing(next http.Handler, serviceName string) http.Handler {
	return otelhttp.NewHandler(
		next,
		serviceName,
		otelhttp.WithTracerProvider(otel.GetTracerProvider()),
		otelhttp.WithFilter(shouldTrace),
		otelhttp.WithSpanNameFormatter(spanName),
	)
}

func shouldTrace(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/metrics":
		return false
	}
	return true
}

// spanName folds icon paths into their route so span cardinality stays
// bounded by the route table.
func spanName(_ string, r *http.Request) string {
	return r.Method + " " + routeOf(r.URL.Path)
}

func routeOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] != "icons" {
		return path
	}
	switch len(parts) {
	case 1:
		return "/icons"
	case 2:
		return "/icons/{set}"
	default:
		if parts[2] == "default" {
			return "/icons/{set}/default"
		}
		return "/icons/{set}/{file}"
	}
}
