//go:build linux

package spi

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/respeakerled/internal/frame"
	"github.com/coreman2200/respeakerled/internal/model"
)

func TestSpiIOCTransferLayout(t *testing.T) {
	// Must match sizeof(struct spi_ioc_transfer) encoded in SPI_IOC_MESSAGE(1).
	assert.Equal(t, uintptr(32), unsafe.Sizeof(spiIOCTransfer{}))
	assert.Equal(t, uintptr(32), uintptr((spiIOCMessage1>>16)&0x3FFF))
}

func TestSpidev_OpenMissingDevice(t *testing.T) {
	tr := NewTransport(OpenSpidev, nil, zerolog.Nop())
	path := filepath.Join(t.TempDir(), "spidev0.1")

	err := tr.Transmit(path, frame.Build(model.ColorFrame{255, 0, 0, 0}))
	var oerr *DeviceOpenError
	require.True(t, errors.As(err, &oerr), "got %v", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSpidev_NotASpiDevice(t *testing.T) {
	// A regular file opens fine but rejects the SPI ioctl.
	path := filepath.Join(t.TempDir(), "spidev0.1")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	dev, err := OpenSpidev(path, DefaultParams)
	require.NoError(t, err)
	sd := dev.(*spidev)

	tr := NewTransport(func(string, Params) (Device, error) { return dev, nil }, nil, zerolog.Nop())
	err = tr.Transmit(path, frame.Build(model.ColorFrame{255, 0, 0, 0}))

	var terr *TransferError
	require.True(t, errors.As(err, &terr), "got %v", err)
	assert.Equal(t, frame.SegmentStart, terr.Segment)
	assert.Equal(t, 0, terr.Transferred)

	// The transport closed the file.
	assert.Error(t, sd.f.Close())
}

func TestSpidev_EmptyTransfer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spidev0.1")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	dev, err := OpenSpidev(path, DefaultParams)
	require.NoError(t, err)
	defer dev.Close()

	n, err := dev.Transfer(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}
