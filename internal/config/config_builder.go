package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "go-todo-keeper"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultCacheDSN       = "todo-cache.db"
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	args     []string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// build merges the collected configs in order, later ones overriding
// non-zero fields of earlier ones, and then fills the gaps from defaults.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.defaults != nil {
		if err := mergo.Merge(config, b.defaults); err != nil {
			return nil, fmt.Errorf("error merging default configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// defaultConfig holds the values used for every optional setting left empty
// by all sources. Secrets and addresses have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Storage: Storage{
			Cache: Cache{DSN: defaultCacheDSN},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: defaultSyncInterval,
		},
	}
}
