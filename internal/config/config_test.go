// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"piemarker/internal/model"
	"piemarker/internal/pie"
	"piemarker/internal/validate"
)

const sampleConfig = `
server:
  addr: ":9000"
  publicURL: https://maps.example.com
  shutdownTimeout: 5s
store:
  driver: sqlite
  dsn: file:markers.db
telemetry:
  otlpEndpoint: localhost:4317
  insecure: true
log:
  format: console
markers:
  - id: 0b8f7b8e-3c55-4f4e-9b6f-2f7a4b0c9d11
    lat: 1
    lng: 2
    icon:
      data:
        - {value: 1, color: red}
`

func writeFile(t *testing.T, dir, name, content string) string {

	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_file(t *testing.T) {

	dir := t.TempDir()
	path := writeFile(t, dir, "piemarker.yaml", sampleConfig)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Server{
		Addr:            ":9000",
		PublicURL:       "https://maps.example.com",
		CertCache:       defaultCertCache,
		ShutdownTimeout: 5 * time.Second,
	}
	if diff := cmp.Diff(want, cfg.Server); diff != "" {
		t.Errorf("server mismatch (-want +got):\n%s", diff)
	}
	if cfg.Store != (Store{Driver: DriverSQLite, DSN: "file:markers.db"}) {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Telemetry.ServiceName != defaultServiceName || !cfg.Telemetry.Insecure {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
	if cfg.Log != (Log{Level: defaultLogLevel, Format: FormatConsole}) {
		t.Errorf("log = %+v", cfg.Log)
	}
	if len(cfg.Markers) != 1 || cfg.Markers[0].Icon.Data[0].Color != "red" {
		t.Errorf("markers = %+v", cfg.Markers)
	}
}

func TestLoad_envOverrides(t *testing.T) {

	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "PIEMARKER_STORE_DRIVER=postgres\nPIEMARKER_STORE_DSN=postgres://from-dotenv\n")

	t.Setenv(envAddr, ":7070")
	t.Setenv(envStoreDSN, "postgres://from-env")
	t.Setenv(envStoreDriver, "")
	if err := os.Unsetenv(envStoreDriver); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q, want :7070", cfg.Server.Addr)
	}
	if cfg.Store.Driver != DriverPostgres {
		t.Errorf("driver = %q, want value from .env", cfg.Store.Driver)
	}
	if cfg.Store.DSN != "postgres://from-env" {
		t.Errorf("dsn = %q, the environment must win over .env", cfg.Store.DSN)
	}
}

func TestValidate(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		is      error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, wantErr: true},
		{name: "sqlite without dsn", mutate: func(c *Config) { c.Store.Driver = DriverSQLite }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{
			name: "invalid marker",
			mutate: func(c *Config) {
				c.Markers = append(c.Markers, c.Markers[0])
				c.Markers[1].Icon.Data = []pie.SliceInput{{Value: -1}}
			},
			wantErr: true,
			is:      pie.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Default()
			c.Markers = []model.Definition{{Lat: 1, Icon: model.Icon{Data: []pie.SliceInput{{Value: 1}}}}}
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil {
				if !errors.Is(err, tt.is) || !errors.Is(err, validate.ErrInvalidDefinition) {
					t.Errorf("Validate() error = %v, want %v", err, tt.is)
				}
			}
		})
	}
}
