package application

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/section-kit/internal/config"
	"github.com/eugenenazirov/section-kit/internal/sections"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.SectionOverrides = map[string]sections.Document{
		"hero": {"badge": "Beta"},
	}
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if want := []string{"hero", "footer"}; !slices.Equal(app.registry.Names(), want) {
		t.Fatalf("expected sections %v, got %v", want, app.registry.Names())
	}
	entry, err := app.storage.GetOverride("hero")
	if err != nil {
		t.Fatalf("GetOverride returned error: %v", err)
	}
	if entry.Document["badge"] != "Beta" {
		t.Fatalf("expected seeded hero override, got %v", entry.Document)
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewRejectsInvalidSeedOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]sections.Document
		wantErr   error
	}{
		{
			name:      "unknown section",
			overrides: map[string]sections.Document{"sidebar": {"title": "x"}},
			wantErr:   sections.ErrUnknownSection,
		},
		{
			name:      "unknown field",
			overrides: map[string]sections.Document{"footer": {"linkPricingg": "x"}},
			wantErr:   sections.ErrUnknownField,
		},
		{
			name:      "wrong type",
			overrides: map[string]sections.Document{"hero": {"features": "one"}},
			wantErr:   sections.ErrInvalidValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseTestConfig(":0")
			cfg.SectionOverrides = tc.overrides
			if _, err := New(cfg, zaptest.NewLogger(t)); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewRegistryHonoursFooterMarkup(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.FooterFullMarkup = true

	registry, err := NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	section, err := registry.Lookup("footer")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	res, err := section.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	var sb strings.Builder
	if err := res.Render(&sb); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(sb.String(), `data-editable="linkPricing"`) {
		t.Fatalf("expected full footer markup, got %s", sb.String())
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestBuildRootHandlerServesStatic(t *testing.T) {
	handler, err := BuildRootHandler(http.NotFoundHandler(), http.NotFoundHandler())
	if err != nil {
		t.Fatalf("BuildRootHandler returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/static/sections.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected stylesheet to be served, got %d", rec.Code)
	}
}

func TestResolveProjectPathFindsGoMod(t *testing.T) {
	path, err := resolveProjectPath("go.mod")
	if err != nil {
		t.Fatalf("resolveProjectPath returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected go.mod to exist at %s: %v", path, err)
	}
}

func TestResolveProjectPathUnknownTarget(t *testing.T) {
	if _, err := resolveProjectPath("definitely-not-a-real-file"); err == nil {
		t.Fatalf("expected error for missing resource")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
