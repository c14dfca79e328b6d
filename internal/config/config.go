// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package config loads the piemarker configuration file.
//
// Values come from, in increasing priority: built-in defaults, the YAML file,
// the process environment and .env files (the environment wins over .env).
package config

import (
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"piemarker/internal/model"
	"piemarker/internal/validate"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	FormatJSON    = "json"
	FormatConsole = "console"
)

const (
	envAddr         = "PIEMARKER_ADDR"
	envStoreDriver  = "PIEMARKER_STORE_DRIVER"
	envStoreDSN     = "PIEMARKER_STORE_DSN"
	envOTLPEndpoint = "PIEMARKER_OTLP_ENDPOINT"
	envDomain       = "PIEMARKER_DOMAIN"
	envLogLevel     = "PIEMARKER_LOG_LEVEL"
)

const (
	defaultAddr            = ":8080"
	defaultServiceName     = "piemarker"
	defaultShutdownTimeout = 30 * time.Second
	defaultCertCache       = "certs"
	defaultLogLevel        = "info"
)

type Config struct {
	Server    Server             `yaml:"server"`
	Store     Store              `yaml:"store"`
	Telemetry Telemetry          `yaml:"telemetry"`
	Log       Log                `yaml:"log"`
	Markers   []model.Definition `yaml:"markers"`
}

type Server struct {
	Addr string `yaml:"addr"`
	// PublicURL prefixes links in QR codes and legends. Empty means relative links.
	PublicURL string `yaml:"publicURL"`
	// Domain enables ACME TLS for that host name.
	Domain          string        `yaml:"domain"`
	CertCache       string        `yaml:"certCache"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	LogRequests     bool          `yaml:"logRequests"`
}

type Store struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Telemetry struct {
	ServiceName string `yaml:"serviceName"`
	// OTLPEndpoint is a host:port of an OTLP gRPC collector. Empty disables export.
	OTLPEndpoint string            `yaml:"otlpEndpoint"`
	Insecure     bool              `yaml:"insecure"`
	Attributes   map[string]string `yaml:"attributes"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            defaultAddr,
			CertCache:       defaultCertCache,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Store:     Store{Driver: DriverMemory},
		Telemetry: Telemetry{ServiceName: defaultServiceName},
		Log:       Log{Level: defaultLogLevel, Format: FormatJSON},
	}
}

// Load reads the file at path, an empty path keeps the defaults, then applies
// the environment. envFiles default to ".env"; missing files are skipped.
func Load(path string, envFiles ...string) (cfg *Config, err error) {

	if err = loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg = Default()
	if path != "" {
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(envFiles ...string) error {

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "failed to load %s", file)
		}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {

	overrides := []struct {
		name   string
		target *string
	}{
		{name: envAddr, target: &c.Server.Addr},
		{name: envDomain, target: &c.Server.Domain},
		{name: envStoreDriver, target: &c.Store.Driver},
		{name: envStoreDSN, target: &c.Store.DSN},
		{name: envOTLPEndpoint, target: &c.Telemetry.OTLPEndpoint},
		{name: envLogLevel, target: &c.Log.Level},
	}
	for _, o := range overrides {
		if value, found := lookup(o.name); found {
			*o.target = value
		}
	}
}

func (c *Config) Validate() (err error) {

	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.Store.DSN == "" {
			return errors.Errorf("store.dsn is required for the %s driver", c.Store.Driver)
		}
	default:
		return errors.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	for i := range c.Markers {
		if err = validate.ValidateDefinition(&c.Markers[i]); err != nil {
			return errors.Wrapf(err, "markers[%d]", i)
		}
	}
	return nil
}
