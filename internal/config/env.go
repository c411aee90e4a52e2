package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	NetworkSolana  = "solana"
	NetworkBitcoin = "bitcoin"

	// MaxAddressCount bounds ADDRESS_COUNT; one engine call derives every
	// address from a single key stream.
	MaxAddressCount = 100
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	Network      string `envconfig:"NETWORK" default:"solana"`
	AddressCount int    `envconfig:"ADDRESS_COUNT" default:"2"`
	Testnet      bool   `envconfig:"TESTNET" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads and validates configuration from environment variables without
// touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks network and address count
func (c *Config) Validate() error {
	if c.Network != NetworkSolana && c.Network != NetworkBitcoin {
		return fmt.Errorf("network must be %s or %s", NetworkSolana, NetworkBitcoin)
	}
	if c.AddressCount < 1 || c.AddressCount > MaxAddressCount {
		return fmt.Errorf("address count must be between 1 and %d", MaxAddressCount)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetNetwork returns the network wallets are generated for
func GetNetwork() string {
	return Get().Network
}

// GetAddressCount returns number of addresses per generation
func GetAddressCount() int {
	return Get().AddressCount
}

// GetTestnet reports whether testnet addresses are generated
func GetTestnet() bool {
	return Get().Testnet
}
