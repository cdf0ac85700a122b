package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "2mic", c.Variant)
	assert.Equal(t, "/dev/spidev0.1", c.SPI.Dev)
	assert.Equal(t, "spidev", c.SPI.Driver)
	assert.Equal(t, "gpio", c.Power.Method)
	assert.Equal(t, "GPIO5", c.Power.Pin)
	assert.False(t, c.Power.Strict)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respeakerled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: 4mic\npower:\n  method: command\n  strict: true\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4mic", c.Variant)
	assert.Equal(t, "/dev/spidev0.1", c.SPI.Dev)
	assert.Equal(t, "command", c.Power.Method)
	assert.True(t, c.Power.Strict)
	assert.Equal(t, DefaultPowerCommand(), c.Power.Command)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	c := Default()
	c.SPI.Dev = "/dev/spidev1.0"
	c.SPI.Driver = "periph"
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad driver":    "spi:\n  driver: bitbang\n",
		"bad method":    "power:\n  method: relay\n",
		"empty dev":     "spi:\n  dev: \"\"\n",
		"empty pin":     "power:\n  pin: \"\"\n",
		"empty command": "power:\n  method: command\n  command: [[]]\n",
		"not yaml":      "variant: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}
