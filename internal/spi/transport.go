// Package spi writes LED frames to a SPI device node.
package spi

import (
	"fmt"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
	pspi "periph.io/x/conn/v3/spi"

	"github.com/coreman2200/respeakerled/internal/frame"
	"github.com/coreman2200/respeakerled/internal/power"
)

// Params are the per-transfer bus settings.
type Params struct {
	Speed       physic.Frequency
	BitsPerWord uint8
	DelayUsecs  uint16
	Mode        pspi.Mode
}

// DefaultParams is what the APA102 strip on the ReSpeaker HATs is driven
// with. The LED chip latches on the clock edge of mode 0.
var DefaultParams = Params{
	Speed:       800 * physic.KiloHertz,
	BitsPerWord: 8,
	DelayUsecs:  0,
	Mode:        pspi.Mode0,
}

// SpeedHz is Speed in whole hertz, as spidev expects it.
func (p Params) SpeedHz() uint32 {
	return uint32(p.Speed / physic.Hertz)
}

// Device is an open SPI device. Transfer performs one blocking full-duplex
// transfer and returns the number of bytes clocked out.
type Device interface {
	Transfer(tx []byte) (int, error)
	Close() error
}

// Opener opens the device at path for read-write access.
type Opener func(path string, p Params) (Device, error)

// NewOpener selects the device backend by name: "spidev" or "periph".
func NewOpener(driver string, logger zerolog.Logger) (Opener, error) {
	switch driver {
	case "spidev", "":
		return OpenSpidev, nil
	case "periph":
		return OpenPeriph(logger), nil
	default:
		return nil, fmt.Errorf("unknown spi driver %q", driver)
	}
}

type Transport struct {
	// StrictPower makes a failed power enable abort the transmission.
	StrictPower bool

	open   Opener
	power  power.Controller
	params Params
	log    zerolog.Logger
}

func NewTransport(open Opener, pc power.Controller, logger zerolog.Logger) *Transport {
	if pc == nil {
		pc = power.Noop{}
	}
	return &Transport{
		open:   open,
		power:  pc,
		params: DefaultParams,
		log:    logger.With().Str("component", "spi").Logger(),
	}
}

// Transmit opens devicePath, enables the LED power rail once and sends each
// segment as its own transfer. It stops at the first failed transfer and
// always closes the device.
func (t *Transport) Transmit(devicePath string, segs []frame.Segment) error {
	dev, err := t.open(devicePath, t.params)
	if err != nil {
		return &DeviceOpenError{Path: devicePath, Err: err}
	}
	defer func() {
		if err := dev.Close(); err != nil {
			t.log.Warn().Err(err).Str("dev", devicePath).Msg("close failed")
		}
	}()

	if err := t.power.Enable(); err != nil {
		if t.StrictPower {
			return &PowerError{Err: err}
		}
		t.log.Warn().Err(err).Msg("LED power enable failed; sending anyway")
	}

	for _, s := range segs {
		n, err := dev.Transfer(s.Data)
		if err == nil && (n < 1 || n < s.Len()) {
			err = ErrShortTransfer
		}
		if err != nil {
			return &TransferError{Segment: s.Name, Requested: s.Len(), Transferred: n, Err: err}
		}
		t.log.Debug().Str("segment", s.Name).Int("bytes", n).Msg("sent")
	}
	return nil
}
