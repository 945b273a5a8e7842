package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/botprofile/personaicons/icons"
	apperrors "github.com/botprofile/personaicons/internal/platform/errors"
	"github.com/botprofile/personaicons/internal/services/iconserver/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

const (
	iconCacheControl    = "public, max-age=31536000, immutable"
	defaultCacheControl = "public, max-age=300"
	svgSecurityPolicy   = "default-src 'none'; style-src 'unsafe-inline'"
)

// IconService is the subset of the icon service used by HTTP handlers.
type IconService interface {
	Sets(ctx context.Context) ([]service.SetSummary, error)
	Set(ctx context.Context, setID string) (service.SetDetail, error)
	Icon(ctx context.Context, setID, iconID string) (service.Icon, error)
	DefaultIcon(ctx context.Context, setID, entityType, entityID string) (service.Icon, error)
}

type handlers struct {
	service IconService
}

// NewHandler builds the HTTP route table for svc.
func NewHandler(svc IconService) http.Handler {
	h := handlers{service: svc}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /icons", h.handleSets)
	mux.HandleFunc("GET /icons/{set}", h.handleSet)
	mux.HandleFunc("GET /icons/{set}/default", h.handleDefault)
	mux.HandleFunc("GET /icons/{set}/{file}", h.handleIcon)
	return WithStaticMime(mux)
}

type setJSON struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Aliases []string `json:"aliases,omitempty"`
	URL     string   `json:"url"`
}

type setDetailJSON struct {
	setJSON
	Icons []definitionJSON `json:"icons"`
}

type traitsJSON struct {
	Agreeableness     uint8  `json:"agreeableness"`
	Conscientiousness uint8  `json:"conscientiousness"`
	Extraversion      uint8  `json:"extraversion"`
	Neuroticism       uint8  `json:"neuroticism"`
	Openness          uint8  `json:"openness"`
	Summary           string `json:"summary"`
}

type definitionJSON struct {
	Set         string      `json:"set"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Visual      string      `json:"visual,omitempty"`
	Prop        string      `json:"prop,omitempty"`
	Traits      *traitsJSON `json:"traits,omitempty"`
	Members     int         `json:"members,omitempty"`
	SVGURL      string      `json:"svg_url"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (h handlers) handleSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.service.Sets(r.Context())
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	payload := make([]setJSON, 0, len(sets))
	for _, set := range sets {
		payload = append(payload, toSetJSON(set))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"sets": payload})
}

func (h handlers) handleSet(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Set(r.Context(), r.PathValue("set"))
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	payload := setDetailJSON{setJSON: toSetJSON(detail.SetSummary), Icons: make([]definitionJSON, 0, len(detail.Definitions))}
	for _, definition := range detail.Definitions {
		payload.Icons = append(payload.Icons, toDefinitionJSON(detail.ID, definition))
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h handlers) handleDefault(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	icon, err := h.service.DefaultIcon(r.Context(), r.PathValue("set"), query.Get("entity_type"), query.Get("entity_id"))
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", defaultCacheControl)
	http.Redirect(w, r, svgURL(icon.Set, icon.Definition.ID), http.StatusFound)
}

func (h handlers) handleIcon(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	switch {
	case strings.HasSuffix(file, ".svg"):
		h.serveSVG(w, r, strings.TrimSuffix(file, ".svg"))
	case strings.HasSuffix(file, ".json"):
		h.serveDefinition(w, r, strings.TrimSuffix(file, ".json"))
	default:
		http.NotFound(w, r)
	}
}

func (h handlers) serveSVG(w http.ResponseWriter, r *http.Request, iconID string) {
	icon, err := h.service.Icon(r.Context(), r.PathValue("set"), iconID)
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	etag := payloadETag(icon.SVG)
	header := w.Header()
	header.Set("Content-Type", icons.MIMEType)
	header.Set("ETag", etag)
	header.Set("Cache-Control", iconCacheControl)
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Content-Security-Policy", svgSecurityPolicy)
	if matchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(icon.SVG))
}

func (h handlers) serveDefinition(w http.ResponseWriter, r *http.Request, iconID string) {
	icon, err := h.service.Icon(r.Context(), r.PathValue("set"), iconID)
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDefinitionJSON(icon.Set, icon.Definition))
}

func (h handlers) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode json response: %v", err)
	}
}

// writeJSONError renders err with a message localized for the request.
func (h handlers) writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	st := apperrors.LocalizedStatus(err, r.Header.Get("Accept-Language"))
	statusCode := grpcErrorHTTPStatus(st, http.StatusInternalServerError)
	if statusCode == http.StatusInternalServerError {
		log.Printf("icon request %s %s: %v", r.Method, r.URL.Path, err)
	}

	body := errorJSON{Code: string(apperrors.CodeOf(err))}
	if grpcStatus, ok := status.FromError(st); ok {
		body.Message = grpcStatus.Message()
		for _, detail := range grpcStatus.Details() {
			if localized, ok := detail.(*errdetails.LocalizedMessage); ok {
				body.Message = localized.GetMessage()
				w.Header().Set("Content-Language", localized.GetLocale())
			}
		}
	}
	// Error bodies are JSON even on .svg routes.
	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, statusCode, map[string]errorJSON{"error": body})
}

func toSetJSON(set service.SetSummary) setJSON {
	return setJSON{
		ID:      set.ID,
		Name:    set.Name,
		Size:    set.Size,
		Aliases: set.Aliases,
		URL:     "/icons/" + url.PathEscape(set.ID),
	}
}

func toDefinitionJSON(setID string, definition icons.Definition) definitionJSON {
	payload := definitionJSON{
		Set:         setID,
		ID:          definition.ID,
		Name:        definition.Name,
		Description: definition.Description,
		Visual:      definition.Visual,
		Prop:        definition.Prop,
		Members:     definition.Members,
		SVGURL:      svgURL(setID, definition.ID),
	}
	if traits := definition.Traits; traits.Defined() {
		payload.Traits = &traitsJSON{
			Agreeableness:     uint8(traits.Agreeableness),
			Conscientiousness: uint8(traits.Conscientiousness),
			Extraversion:      uint8(traits.Extraversion),
			Neuroticism:       uint8(traits.Neuroticism),
			Openness:          uint8(traits.Openness),
			Summary:           traits.String(),
		}
	}
	return payload
}

func svgURL(setID, iconID string) string {
	return "/icons/" + url.PathEscape(setID) + "/" + url.PathEscape(iconID) + ".svg"
}

func payloadETag(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

func matchesETag(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
