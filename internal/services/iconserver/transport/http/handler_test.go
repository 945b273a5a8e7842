package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/botprofile/personaicons/icons"
	"github.com/botprofile/personaicons/internal/services/iconserver/service"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.New()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return NewHandler(svc)
}

func serve(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, body io.Reader) errorJSON {
	t.Helper()
	var payload map[string]errorJSON
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload["error"]
}

func TestServeSVG(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/archetypes/architect.svg", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	want, err := icons.Archetypes().Lookup("architect")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if recorder.Body.String() != want {
		t.Fatal("expected payload to be served unchanged")
	}
	if got := recorder.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Fatalf("expected svg content type, got %q", got)
	}
	if recorder.Header().Get("ETag") == "" {
		t.Fatal("expected etag header")
	}
	if got := recorder.Header().Get("Cache-Control"); got != iconCacheControl {
		t.Fatalf("unexpected cache control %q", got)
	}
}

func TestServeSVGNotModified(t *testing.T) {
	handler := newTestHandler(t)
	first := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/green_ember/heather.svg", nil))
	etag := first.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/icons/green_ember/heather.svg", nil)
	req.Header.Set("If-None-Match", `"other", `+etag)
	second := serve(t, handler, req)
	if second.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", second.Code)
	}
	if second.Body.Len() != 0 {
		t.Fatal("expected empty body on 304")
	}
}

func TestServeSVGAcceptsAliases(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/greenember/lord_rake.svg", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	want, _ := icons.GreenEmber().Lookup("rake")
	if recorder.Body.String() != want {
		t.Fatal("expected rake payload")
	}
}

func TestServeDefinition(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/archetypes/stoic.json", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	var payload definitionJSON
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.ID != "stoic" || payload.Set != "archetypes" {
		t.Fatalf("unexpected identity %q/%q", payload.Set, payload.ID)
	}
	if payload.SVGURL != "/icons/archetypes/stoic.svg" {
		t.Fatalf("unexpected svg url %q", payload.SVGURL)
	}
	if payload.Traits == nil || payload.Traits.Summary == "" {
		t.Fatal("expected trait annotation for stoic")
	}
}

func TestServeDefinitionWithoutTraits(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/archetypes/cipher.json", nil))
	var payload definitionJSON
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Traits != nil {
		t.Fatalf("expected no traits for cipher, got %+v", payload.Traits)
	}
}

func TestListSets(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var payload struct {
		Sets []setJSON `json:"sets"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(payload.Sets))
	}
	wantSizes := map[string]int{"archetypes": 21, "green_ember": 12, "meta": 5}
	for _, set := range payload.Sets {
		if wantSizes[set.ID] != set.Size {
			t.Fatalf("set %s: expected size %d, got %d", set.ID, wantSizes[set.ID], set.Size)
		}
	}
}

func TestSetDetail(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/collections", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var payload setDetailJSON
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.ID != "meta" || len(payload.Icons) != 5 {
		t.Fatalf("unexpected set detail %s with %d icons", payload.ID, len(payload.Icons))
	}
	if payload.Icons[0].Members != 21 {
		t.Fatalf("expected archetypes meta icon to report 21 members, got %d", payload.Icons[0].Members)
	}
}

func TestDefaultRedirect(t *testing.T) {
	handler := newTestHandler(t)
	target := "/icons/archetypes/default?entity_type=profile&entity_id=user-7"

	first := serve(t, handler, httptest.NewRequest(http.MethodGet, target, nil))
	if first.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", first.Code)
	}
	location := first.Header().Get("Location")
	if !strings.HasPrefix(location, "/icons/archetypes/") || !strings.HasSuffix(location, ".svg") {
		t.Fatalf("unexpected redirect %q", location)
	}

	second := serve(t, handler, httptest.NewRequest(http.MethodGet, target, nil))
	if got := second.Header().Get("Location"); got != location {
		t.Fatalf("expected stable redirect %q, got %q", location, got)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown icon", target: "/icons/archetypes/nonexistent.svg", wantStatus: http.StatusNotFound, wantCode: "ICON_NOT_FOUND"},
		{name: "unknown set", target: "/icons/dragons", wantStatus: http.StatusNotFound, wantCode: "ICON_SET_NOT_FOUND"},
		{name: "unknown set icon", target: "/icons/dragons/architect.json", wantStatus: http.StatusNotFound, wantCode: "ICON_SET_NOT_FOUND"},
		{name: "missing entity", target: "/icons/meta/default?entity_type=profile", wantStatus: http.StatusBadRequest, wantCode: "ENTITY_ID_REQUIRED"},
		{name: "missing entity type", target: "/icons/meta/default?entity_id=1", wantStatus: http.StatusBadRequest, wantCode: "ENTITY_TYPE_REQUIRED"},
	}

	handler := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, recorder.Code)
			}
			if got := recorder.Header().Get("Content-Type"); got != "application/json" {
				t.Fatalf("expected json error, got %q", got)
			}
			body := decodeError(t, recorder.Body)
			if body.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, body.Code)
			}
			if body.Message == "" {
				t.Fatal("expected localized message")
			}
		})
	}
}

func TestErrorsAreLocalized(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/icons/archetypes/nonexistent.svg", nil)
	english := decodeError(t, serve(t, handler, req).Body)
	if english.Message != `Icon "nonexistent" is not part of set "archetypes"` {
		t.Fatalf("unexpected english message %q", english.Message)
	}

	req = httptest.NewRequest(http.MethodGet, "/icons/archetypes/nonexistent.svg", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")
	recorder := serve(t, handler, req)
	portuguese := decodeError(t, recorder.Body)
	if portuguese.Message == english.Message {
		t.Fatal("expected a translated message")
	}
	if got := recorder.Header().Get("Content-Language"); got != "pt-BR" {
		t.Fatalf("expected pt-BR content language, got %q", got)
	}
}

func TestUnknownExtension(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodGet, "/icons/archetypes/architect.png", nil))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)
	recorder := serve(t, handler, httptest.NewRequest(http.MethodPost, "/icons", nil))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", recorder.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	handler := WithTracing(newTestHandler(t), "iconserver-test")
	server := httptest.NewServer(handler)
	defer server.Close()
	client := server.Client()
	defer client.CloseIdleConnections()

	// Record at least one lookup so the counter family is exported.
	resp, err := client.Get(server.URL + "/icons/meta/archetypes.svg")
	if err != nil {
		t.Fatalf("get icon: %v", err)
	}
	_ = resp.Body.Close()

	resp, err = client.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", resp.StatusCode)
	}

	resp, err = client.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(body), "persona_icons_lookups_total") {
		t.Fatal("expected icon lookup counter in metrics")
	}
}

func TestRouteOf(t *testing.T) {
	tests := map[string]string{
		"/icons":                          "/icons",
		"/icons/meta":                     "/icons/{set}",
		"/icons/meta/default":             "/icons/{set}/default",
		"/icons/archetypes/architect.svg": "/icons/{set}/{file}",
		"/healthz":                        "/healthz",
	}
	for path, want := range tests {
		if got := routeOf(path); got != want {
			t.Fatalf("routeOf(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestGRPCErrorHTTPStatusFallback(t *testing.T) {
	if got := grpcErrorHTTPStatus(io.EOF, http.StatusTeapot); got != http.StatusTeapot {
		t.Fatalf("expected fallback, got %d", got)
	}
}
