// Package power switches on the supply rail of the HAT's LED strip. The
// APA102 LEDs on the ReSpeaker boards stay dark until their VCC enable line
// (BCM GPIO5) is driven high.
package power

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/coreman2200/respeakerled/internal/board"
	"github.com/coreman2200/respeakerled/internal/config"
)

// Controller enables the LED supply rail.
type Controller interface {
	Enable() error
}

// New picks a controller from the power section of the config.
func New(cfg config.Power, logger zerolog.Logger) (Controller, error) {
	logger = logger.With().Str("component", "power").Logger()
	switch cfg.Method {
	case "gpio":
		return &GPIO{Name: cfg.Pin, log: logger}, nil
	case "command":
		return &Command{Argv: cfg.Command, log: logger}, nil
	case "none", "":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown power method %q", cfg.Method)
	}
}

// GPIO drives a named GPIO line high through periph.
type GPIO struct {
	Name string
	pin  gpio.PinOut
	log  zerolog.Logger
}

// NewGPIO wraps an already resolved pin.
func NewGPIO(pin gpio.PinOut, logger zerolog.Logger) *GPIO {
	return &GPIO{Name: pin.Name(), pin: pin, log: logger}
}

func (g *GPIO) Enable() error {
	if g.pin == nil {
		if err := board.Init(g.log); err != nil {
			return fmt.Errorf("host init: %w", err)
		}
		p := gpioreg.ByName(g.Name)
		if p == nil {
			return fmt.Errorf("gpio %q: no such pin", g.Name)
		}
		g.pin = p
	}
	if err := g.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("gpio %s: set high: %w", g.Name, err)
	}
	g.log.Debug().Str("pin", g.Name).Msg("LED power rail enabled")
	return nil
}

// Command runs each argv in order and stops at the first failure.
type Command struct {
	Argv [][]string
	log  zerolog.Logger
}

func (c *Command) Enable() error {
	if len(c.Argv) == 0 {
		return errors.New("no power command configured")
	}
	for _, argv := range c.Argv {
		if len(argv) == 0 {
			return errors.New("empty power command")
		}
		out, err := exec.Command(argv[0], argv[1:]...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s: %w: %s", strings.Join(argv, " "), err, bytes.TrimSpace(out))
		}
		c.log.Debug().Strs("argv", argv).Msg("power command ok")
	}
	return nil
}

type Noop struct{}

func (Noop) Enable() error { return nil }
