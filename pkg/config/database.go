package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds the PostgreSQL connection settings.
// Values normally come from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.
type DatabaseConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	User    string        `koanf:"user"`
	Pass    string        `koanf:"pass"`
	Name    string        `koanf:"name"`
	SSLMode string        `koanf:"sslmode"`
	Timeout time.Duration `koanf:"timeout"`
}

// URL builds a postgres:// connection string from the configured parts.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Pass),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// String returns a string representation of the database configuration with the password masked.
func (c *DatabaseConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Database ---\n")
	b.WriteString(fmt.Sprintf("  host: %s\n", c.Host))
	b.WriteString(fmt.Sprintf("  port: %d\n", c.Port))
	b.WriteString(fmt.Sprintf("  user: %s\n", c.User))
	b.WriteString(fmt.Sprintf("  pass: %s\n", maskSecret(c.Pass)))
	b.WriteString(fmt.Sprintf("  name: %s\n", c.Name))
	b.WriteString(fmt.Sprintf("  sslmode: %s\n", c.SSLMode))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is not configured")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}
	if c.User == "" {
		return fmt.Errorf("database user is not configured")
	}
	if c.Name == "" {
		return fmt.Errorf("database name is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid database connect timeout: %v", c.Timeout)
	}
	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}
