package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"

	"github.com/rabbitcabbage/blogconfig/internal/api"
	"github.com/rabbitcabbage/blogconfig/internal/override"
	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
	"github.com/rabbitcabbage/blogconfig/internal/storage"
)

func TestIntegrationFlow(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := "site:\n  title: 二律背反\n  author: Shen Dong\n  website: https://RabbitCabbage.github.io/\n"
	if err := afero.WriteFile(fs, "/site/user.yaml", []byte(doc), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	userCfg, err := override.NewLoader(fs).Load("/site/user.yaml")
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	cfg, err := siteconfig.Build(userCfg, "/Blogs")
	if err != nil {
		t.Fatalf("build config: %v", err)
	}

	handler := api.NewHandler(storage.NewSnapshot(cfg))
	router := api.NewRouter(handler, zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config/site", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from site, got %d", rec.Code)
	}

	var site siteconfig.SiteConfig
	if err := json.NewDecoder(rec.Body).Decode(&site); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if site.Title != "二律背反" || site.Author != "Shen Dong" || site.Website != "https://RabbitCabbage.github.io/" {
		t.Fatalf("override values changed during merge: %+v", site)
	}
	if site.Description != siteconfig.Defaults().Site.Description {
		t.Fatalf("expected default description, got %q", site.Description)
	}
}
