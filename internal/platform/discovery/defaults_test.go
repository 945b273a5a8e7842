package discovery

import "testing"

func TestDefaultHTTPAddr(t *testing.T) {
	cases := map[string]string{
		ServiceIconHTTP: "localhost:8090",
		ServiceIconMCP:  "localhost:8091",
		" iconserver ":  "localhost:8090",
		"unknown":       "",
	}
	for service, want := range cases {
		if got := DefaultHTTPAddr(service); got != want {
			t.Fatalf("DefaultHTTPAddr(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestOrDefaultHTTPAddr(t *testing.T) {
	if got := OrDefaultHTTPAddr(" 0.0.0.0:9000 ", ServiceIconHTTP); got != "0.0.0.0:9000" {
		t.Fatalf("expected explicit http addr to win, got %q", got)
	}
	if got := OrDefaultHTTPAddr("", ServiceIconMCP); got != "localhost:8091" {
		t.Fatalf("expected default http addr, got %q", got)
	}
}
