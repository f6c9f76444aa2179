// Package config defines the configuration of the CRUD service.
package config

import (
	"strings"

	"github.com/abgdnv/crudapi/pkg/config"
	"github.com/abgdnv/crudapi/pkg/config/configloader"
)

// ServiceName is the env prefix of service settings: CRUD_SERVER_PORT -> server.port.
const ServiceName = "crud"

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Database   config.DatabaseConfig  `koanf:"db"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
}

// Defaults lets the service start with nothing but the DB_* variables set.
var Defaults = map[string]any{
	"server.port":               1234,
	"server.maxHeaderBytes":     1 << 20,
	"server.timeout.read":       "10s",
	"server.timeout.write":      "10s",
	"server.timeout.idle":       "60s",
	"server.timeout.readHeader": "5s",
	"db.host":                   "localhost",
	"db.port":                   5432,
	"db.sslmode":                "disable",
	"db.timeout":                "5s",
	"log.level":                 "info",
	"pprof.enabled":             false,
	"pprof.addr":                "localhost:6060",
	"shutdown.timeout":          "5s",
	"telemetry.enabled":         false,
}

// Load reads the service configuration. See configloader.Load for the source order.
func Load() (*Config, error) {
	return configloader.Load[*Config](configloader.Options{
		ServiceName:    ServiceName,
		SharedPrefixes: []string{"DB_"},
		Defaults:       Defaults,
	})
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Database.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.Telemetry.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	return nil
}
