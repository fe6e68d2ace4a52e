// Package config loads the YAML file describing the RPC endpoints a
// caller wants to dial: one or more named endpoints, each carrying a
// transport kind, its address (URL or Unix socket path), optional
// credentials, and a timeout. Every cmd/* binary starts here, before any
// connector is built.
//
// Secrets stay out of the YAML file itself. internal/env.Load populates
// the process environment from a .env file first, then Load expands
// ${VAR} references in the YAML text with os.ExpandEnv, so an endpoint's
// URL, path, or credential token can reference an environment variable
// instead of hardcoding a secret.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/internal/auth"
)

// TransportKind names one of the three wire transports an Endpoint dials.
type TransportKind string

const (
	TransportHTTP      TransportKind = "http"
	TransportWebSocket TransportKind = "websocket"
	TransportUnix      TransportKind = "unix"
)

// Config is the top-level shape of the endpoints YAML file.
type Config struct {
	Endpoints []Endpoint `yaml:"endpoints"`
	Defaults  Defaults   `yaml:"defaults"`
}

// Endpoint describes a single RPC endpoint to dial. URL is used by the
// http and websocket transports; Path is used by the unix transport.
// Credentials is nil when the endpoint needs no Authorization header.
type Endpoint struct {
	Name        string            `yaml:"name"`
	Transport   TransportKind     `yaml:"transport"`
	URL         string            `yaml:"url,omitempty"`
	Path        string            `yaml:"path,omitempty"`
	Credentials *CredentialConfig `yaml:"credentials,omitempty"`
	Timeout     time.Duration     `yaml:"timeout,omitempty"`
}

// CredentialConfig is the YAML shape of an Authorization credential:
// kind is "basic" or "bearer", token is the pre-formed (already
// base64-encoded, for basic) credential string.
type CredentialConfig struct {
	Kind  string `yaml:"kind"`
	Token string `yaml:"token"`
}

// Credentials converts the YAML credential block into auth.Credentials.
// A nil receiver (no credentials configured) returns the zero value,
// which carries no Authorization header.
func (c *CredentialConfig) Credentials() (auth.Credentials, error) {
	if c == nil {
		return auth.Credentials{}, nil
	}
	switch c.Kind {
	case "basic":
		return auth.NewBasic(c.Token), nil
	case "bearer":
		return auth.NewBearer(c.Token), nil
	default:
		return auth.Credentials{}, fmt.Errorf("config: unknown credentials kind %q", c.Kind)
	}
}

// Defaults holds settings shared across endpoints that don't override them.
// HealthSamples is the fallback for providercheck's --samples flag when the
// caller doesn't pass one explicitly.
type Defaults struct {
	Timeout       time.Duration `yaml:"timeout"`
	HealthSamples int           `yaml:"health_samples"`
}

// Load reads path, expands ${VAR} references against the process
// environment, parses the YAML, and fills any endpoint's unset Timeout
// from Defaults.Timeout.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Endpoints {
		if cfg.Endpoints[i].Timeout == 0 {
			cfg.Endpoints[i].Timeout = cfg.Defaults.Timeout
		}
	}
	return &cfg, nil
}

// Dial builds a Connector for an Endpoint, picking the constructor that
// matches its Transport kind.
func (e Endpoint) Dial() (*connector.Connector, error) {
	creds, err := e.Credentials.Credentials()
	if err != nil {
		return nil, err
	}
	switch e.Transport {
	case TransportHTTP:
		return connector.NewHTTP(e.URL, creds, e.Timeout)
	case TransportWebSocket:
		return connector.NewWebSocket(e.URL, creds)
	case TransportUnix:
		return connector.NewUDS(e.Path)
	default:
		return nil, fmt.Errorf("config: unknown transport kind %q for endpoint %q", e.Transport, e.Name)
	}
}
