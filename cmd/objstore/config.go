/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voedger/objstore/pkg/graphload"
)

type config struct {
	Schema         string `mapstructure:"schema"`
	Data           string `mapstructure:"data"`
	RootClass      string `mapstructure:"root_class"`
	WSClass        string `mapstructure:"ws_class"`
	WSCodeField    string `mapstructure:"ws_code_field"`
	FieldCacheSize int    `mapstructure:"field_cache_size"`
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String(configFileFlag, "", "Path to configuration file (default is ./objstore.yaml if exists)")
	f.StringP(configFlags[cfgSchema], "s", "", "Path to schema document")
	f.StringP(configFlags[cfgData], "d", "", "Path to data document")
	f.String(configFlags[cfgRootClass], graphload.DefaultRootClass, "Class of designated root object")
	f.String(configFlags[cfgWSClass], graphload.DefaultWritingSystemClass, "Class of writing system objects")
	f.String(configFlags[cfgWSCodeField], graphload.DefaultWritingSystemCode, "Field of writing system code")
	f.Int(configFlags[cfgFieldCacheSize], graphload.DefaultFieldCacheSize, "Size of field lookup cache")
}

// Reads configuration. Flags override environment variables, environment variables override configuration file
func readConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()

	v.SetDefault(cfgRootClass, graphload.DefaultRootClass)
	v.SetDefault(cfgWSClass, graphload.DefaultWritingSystemClass)
	v.SetDefault(cfgWSCodeField, graphload.DefaultWritingSystemCode)
	v.SetDefault(cfgFieldCacheSize, graphload.DefaultFieldCacheSize)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, flag := range configFlags {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if path, _ := cmd.Flags().GetString(configFileFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file «%s»: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *config) requireSchema() error {
	if c.Schema == "" {
		return fmt.Errorf("schema: %w, use --%s flag or %s_%s environment variable",
			ErrMissingDocument, configFlags[cfgSchema], envPrefix, "SCHEMA")
	}
	return nil
}

func (c *config) requireData() error {
	if err := c.requireSchema(); err != nil {
		return err
	}
	if c.Data == "" {
		return fmt.Errorf("data: %w, use --%s flag or %s_%s environment variable",
			ErrMissingDocument, configFlags[cfgData], envPrefix, "DATA")
	}
	return nil
}

func (c *config) loader() *graphload.Loader {
	return graphload.New(
		graphload.WithRootClass(c.RootClass),
		graphload.WithWritingSystemClass(c.WSClass),
		graphload.WithWritingSystemCodeField(c.WSCodeField),
		graphload.WithFieldCacheSize(c.FieldCacheSize),
	)
}
