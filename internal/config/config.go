package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVariant   = "2mic"
	DefaultDevice    = "/dev/spidev0.1"
	DefaultSPIDriver = "spidev"
	DefaultPowerPin  = "GPIO5"
)

type SPI struct {
	Dev    string `yaml:"dev"`    // e.g. /dev/spidev0.1
	Driver string `yaml:"driver"` // "spidev" | "periph"
}

type Power struct {
	Method  string     `yaml:"method"` // "gpio" | "command" | "none"
	Pin     string     `yaml:"pin"`
	Command [][]string `yaml:"command,omitempty"`
	// Strict aborts the transmission when the rail cannot be enabled.
	Strict bool `yaml:"strict"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Variant string `yaml:"variant"`
	SPI     SPI    `yaml:"spi"`
	Power   Power  `yaml:"power"`
	Log     Log    `yaml:"log"`
}

// DefaultPowerCommand enables the LED supply rail with the WiringPi gpio
// utility, the way the HAT vendor's scripts do.
func DefaultPowerCommand() [][]string {
	return [][]string{
		{"gpio", "-g", "mode", "5", "out"},
		{"gpio", "-g", "write", "5", "1"},
	}
}

func Default() *Config {
	return &Config{
		Variant: DefaultVariant,
		SPI: SPI{
			Dev:    DefaultDevice,
			Driver: DefaultSPIDriver,
		},
		Power: Power{
			Method:  "gpio",
			Pin:     DefaultPowerPin,
			Command: DefaultPowerCommand(),
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file on top of Default; keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	if c.SPI.Dev == "" {
		return fmt.Errorf("spi.dev must not be empty")
	}
	switch c.SPI.Driver {
	case "spidev", "periph":
	default:
		return fmt.Errorf("spi.driver %q: want spidev or periph", c.SPI.Driver)
	}
	switch c.Power.Method {
	case "gpio":
		if c.Power.Pin == "" {
			return fmt.Errorf("power.pin must be set for method gpio")
		}
	case "command":
		if len(c.Power.Command) == 0 {
			return fmt.Errorf("power.command must be set for method command")
		}
		for i, argv := range c.Power.Command {
			if len(argv) == 0 {
				return fmt.Errorf("power.command[%d] is empty", i)
			}
		}
	case "none":
	default:
		return fmt.Errorf("power.method %q: want gpio, command or none", c.Power.Method)
	}
	return nil
}
