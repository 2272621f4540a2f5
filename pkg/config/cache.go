package config

type CacheConfig struct {
	// Enabled selects the map-backed cache; when false the service runs
	// with the no-op variant and every read goes to the store.
	Enabled bool `koanf:"enabled"`
}

func (c *CacheConfig) Validate() error {
	return nil
}
