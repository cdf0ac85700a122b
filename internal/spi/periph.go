package spi

import (
	"fmt"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	pspi "periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/coreman2200/respeakerled/internal/board"
)

type periphDevice struct {
	port pspi.PortCloser
	conn pspi.Conn
}

// OpenPeriph returns an Opener that looks the device up in periph's SPI
// registry, e.g. "/dev/spidev0.1" or its alias "SPI0.1".
func OpenPeriph(logger zerolog.Logger) Opener {
	return func(path string, p Params) (Device, error) {
		if err := board.Init(logger); err != nil {
			return nil, fmt.Errorf("host init: %w", err)
		}
		port, err := spireg.Open(path)
		if err != nil {
			return nil, err
		}
		return ConnectPort(port, p)
	}
}

// ConnectPort connects an already opened port. The port is closed if the
// connection cannot be set up.
func ConnectPort(port pspi.PortCloser, p Params) (Device, error) {
	c, err := port.Connect(p.Speed, p.Mode, int(p.BitsPerWord))
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("connect %s: %w", port, err)
	}
	return &periphDevice{port: port, conn: c}, nil
}

// Transfer reports the full length on success since periph connections
// either move the whole buffer or fail.
func (d *periphDevice) Transfer(tx []byte) (int, error) {
	var rx []byte
	if d.conn.Duplex() == conn.Full {
		rx = make([]byte, len(tx))
	}
	if err := d.conn.Tx(tx, rx); err != nil {
		return 0, err
	}
	return len(tx), nil
}

func (d *periphDevice) Close() error {
	return d.port.Close()
}
