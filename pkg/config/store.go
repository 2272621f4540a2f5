package config

import (
	"fmt"
)

const (
	// StoreTypePostgres selects the PostgreSQL-backed product store.
	StoreTypePostgres = "postgres"
	// StoreTypeMemory selects the in-memory product store; no database
	// configuration is required in this mode.
	StoreTypeMemory = "memory"
)

type StoreConfig struct {
	Type string `koanf:"type"`
}

func (c *StoreConfig) Validate() error {
	switch c.Type {
	case StoreTypePostgres, StoreTypeMemory:
		return nil
	}
	return fmt.Errorf("invalid store type: %q (must be %q or %q)", c.Type, StoreTypePostgres, StoreTypeMemory)
}
