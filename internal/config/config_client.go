package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used as the offline cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the cache refresh job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server URL and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from all sources, maps only the fields relevant
// to the client runtime, and validates the resulting [ClientConfig]. Server
// requirements such as the token signing secret are not checked.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.Cache.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}
}
