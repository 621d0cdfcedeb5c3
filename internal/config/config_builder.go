package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in order. Non-zero fields of a later
// source override the ones collected before it, and so do the zero values a
// source marked as explicit.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		cfg.zeros.apply(config)
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	envCfg.zeros = envZeros(envCfg)

	b.configs = append(b.configs, envCfg)
	return b
}

// withFlags appends the config populated by [BindFlags]. A nil config is
// ignored so library callers can skip flag parsing.
func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

// envZeros reports the variables that are set, non-empty and parsed to a
// zero value.
func envZeros(cfg *StructuredConfig) zeroValues {
	isSet := func(key string) bool {
		v, ok := os.LookupEnv(key)
		return ok && v != ""
	}

	return zeroValues{
		retryCount: isSet("ADAPTER_RETRY_COUNT") && cfg.Adapter.RetryCount == 0,
		deltaSync:  isSet("WORKERS_DELTA_SYNC") && !cfg.Workers.DeltaSync,
	}
}
