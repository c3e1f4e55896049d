// Package config contains the provernet node configuration definitions.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/txs"
)

const (
	defaultConfigFileName = "./config.toml"
	defaultDataDirName    = "provernet"
)

// Config defines the top level configuration for a provernet node.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Address    types.Config `mapstructure:"address"`
	TXs        txs.Config   `mapstructure:"txs"`
}

// BaseConfig defines the default configuration options.
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`
	ConfigFile    string `mapstructure:"config"`
}

// DataDir returns the absolute path to use for the node's data, a
// network-named subfolder of the configured parent.
func (cfg *Config) DataDir() string {
	return filepath.Join(cfg.DataDirParent, cfg.Address.NetworkHRP)
}

// DefaultConfig returns the default mainnet configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: BaseConfig{
			DataDirParent: filepath.Join("~", "."+defaultDataDirName),
		},
		Address: *types.DefaultAddressConfig(),
		TXs:     txs.DefaultConfig(),
	}
}

// DefaultTestConfig returns the default config for tests.
func DefaultTestConfig() Config {
	conf := DefaultConfig()
	conf.Address = *types.DefaultTestAddressConfig()
	return conf
}

// LoadConfig reads the config file into vip and unmarshals it over cfg.
// The resulting network HRP is applied to the address package.
func LoadConfig(fileLocation string, vip *viper.Viper, cfg *Config) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", fileLocation, err)
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := vip.Unmarshal(cfg, hook); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	types.SetAddressHRP(cfg.Address.NetworkHRP)
	return nil
}
