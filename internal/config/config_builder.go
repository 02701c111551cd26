// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer orders configuration sources; higher layers win on merge.
type layer int

const (
	layerDefaults layer = iota
	layerJSON
	layerEnv
	layerFlags

	layersCount
)

type configBuilder struct {
	layers [layersCount]*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.layers[layerDefaults] = defaultConfig()
	return b
}

func (b *configBuilder) withDotEnv(paths ...string) *configBuilder {
	if err := loadDotEnv(paths...); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers[layerEnv] = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers[layerFlags] = flagsCfg
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, the
// environment. It must run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, l := range []layer{layerEnv, layerFlags} {
		if cfg := b.layers[l]; cfg != nil && cfg.JSONFilePath != "" {
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
	jsonCfg.JSONFilePath = jsonPath
	b.layers[layerJSON] = jsonCfg

	return b
}
