package main

import (
	"fmt"

	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/internal/config"
)

// dial loads configPath and dials the endpoint named by --endpoint, or the
// sole configured endpoint if --endpoint was left empty and exactly one
// exists.
func dial() (*connector.Connector, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", configPath, err)
	}

	name := endpointName
	if name == "" {
		if len(cfg.Endpoints) != 1 {
			return nil, fmt.Errorf("--endpoint is required when %s defines more than one endpoint", configPath)
		}
		name = cfg.Endpoints[0].Name
	}

	for _, e := range cfg.Endpoints {
		if e.Name == name {
			return e.Dial()
		}
	}
	return nil, fmt.Errorf("no endpoint named %q in %s", name, configPath)
}
