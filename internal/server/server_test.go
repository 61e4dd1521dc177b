package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/cpmech/gosl/chk"
)

const channelJSON = `{"name":"C90x45x10x1.2","a":90,"b":45,"c":10,"t":1.2,"r":1.6,"fy":350}`

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	router := NewRouter(Config{Rate: 1000, Burst: 1000})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		ctype  string
	}{
		{"health", "GET", "/api/health", "", http.StatusOK, "application/json"},
		{"gross", "POST", "/api/gross", channelJSON, http.StatusOK, "application/json"},
		{"effective", "POST", "/api/effective", channelJSON, http.StatusOK, "application/json"},
		{"one mode", "POST", "/api/effective/bending-strong", channelJSON, http.StatusOK, "application/json"},
		{"pdf", "POST", "/api/report/pdf", channelJSON, http.StatusOK, "application/pdf"},
		{"xlsx", "POST", "/api/report/xlsx", channelJSON, http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"unknown mode", "POST", "/api/effective/torsion", channelJSON, http.StatusNotFound, ""},
		{"bad json", "POST", "/api/effective", "{", http.StatusBadRequest, ""},
		{"unknown field", "POST", "/api/gross", `{"a":90,"depth":3}`, http.StatusBadRequest, ""},
		{"invalid section", "POST", "/api/effective", `{"a":90,"b":45,"c":10,"t":0,"r":1.6,"fy":350}`, http.StatusUnprocessableEntity, ""},
		{"wrong method", "GET", "/api/gross", "", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("got status %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.ctype != "" && rec.Header().Get("Content-Type") != tt.ctype {
				t.Errorf("got content type %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func Test_server01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server01. effective section over http")

	router := NewRouter(DefaultConfig())

	rec := do(tst, router, "POST", "/api/effective", channelJSON)
	if rec.Code != http.StatusOK {
		tst.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var all EffectiveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		tst.Fatal(err)
	}
	if len(all.Results) != len(effective.Modes) {
		tst.Fatalf("got %d results", len(all.Results))
	}
	for i, r := range all.Results {
		if r.Mode != effective.Modes[i] {
			tst.Errorf("result %d has mode %v", i, r.Mode)
		}
	}
	chk.Float64(tst, "Aeff axial", 1e-9, all.Results[0].Area(), 142.87149200279217)
	chk.Float64(tst, "E default", 1e-15, all.Section.E, 210000)

	rec = do(tst, router, "POST", "/api/effective/axial", channelJSON)
	var one effective.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &one); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Aeff axial, single mode", 1e-9, one.Area(), 142.87149200279217)

	rec = do(tst, router, "POST", "/api/gross", channelJSON)
	var gross GrossResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &gross); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Ag", 1e-9, gross.Gross.Area, 229.68656358147481)
	chk.Float64(tst, "zgx", 1e-9, gross.Gross.Zgx, 13.890824490055758)
}

func TestReportHeaders(t *testing.T) {
	router := NewRouter(DefaultConfig())
	rec := do(t, router, "POST", "/api/report/pdf", channelJSON)
	want := `attachment; filename="C90x45x10x1.2.pdf"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF document")
	}
}

func TestRateLimit(t *testing.T) {
	router := NewRouter(Config{Rate: 0.001, Burst: 2})

	for i := 0; i < 2; i++ {
		if rec := do(t, router, "GET", "/api/health", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	if rec := do(t, router, "GET", "/api/health", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rec.Code)
	}

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client: got status %d", rec.Code)
	}
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetenv(t, EnvAddr, EnvRate, EnvBurst)
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("env file", func(t *testing.T) {
		unsetenv(t, EnvAddr, EnvRate, EnvBurst)
		file := filepath.Join(t.TempDir(), ".env")
		content := "GOCFS_ADDR=127.0.0.1:9000\nGOCFS_RATE=2.5\nGOCFS_BURST=4\n"
		if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(file)
		if err != nil {
			t.Fatal(err)
		}
		want := Config{Addr: "127.0.0.1:9000", Rate: 2.5, Burst: 4}
		if cfg != want {
			t.Errorf("got %+v, want %+v", cfg, want)
		}
	})

	t.Run("environment wins", func(t *testing.T) {
		unsetenv(t, EnvRate, EnvBurst)
		t.Setenv(EnvAddr, ":7000")
		file := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(file, []byte("GOCFS_ADDR=:9000\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(file)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Addr != ":7000" {
			t.Errorf("got addr %q", cfg.Addr)
		}
	})

	bad := []struct {
		key, value string
	}{
		{EnvRate, "fast"},
		{EnvRate, "-1"},
		{EnvBurst, "0"},
		{EnvBurst, "1.5"},
	}
	for _, tt := range bad {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetenv(t, EnvAddr, EnvRate, EnvBurst)
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(""); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, Config{Addr: "127.0.0.1:0", Rate: 1, Burst: 1}) }()
	cancel()
	if err := <-done; err != nil {
		t.Errorf("got %v", err)
	}
}
