package spi

import (
	"errors"
	"fmt"
)

// ErrShortTransfer is reported when the driver moved fewer bytes than
// requested without returning an error of its own.
var ErrShortTransfer = errors.New("short transfer")

// DeviceOpenError means the SPI device node could not be opened.
type DeviceOpenError struct {
	Path string
	Err  error
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf("can't open device %s: %v", e.Path, e.Err)
}

func (e *DeviceOpenError) Unwrap() error { return e.Err }

// TransferError means one segment of the frame did not make it onto the bus.
type TransferError struct {
	Segment     string
	Requested   int
	Transferred int
	Err         error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("can't send %s (%d of %d bytes): %v", e.Segment, e.Transferred, e.Requested, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// PowerError is only returned when the transport runs with StrictPower.
type PowerError struct {
	Err error
}

func (e *PowerError) Error() string {
	return fmt.Sprintf("can't enable LED power: %v", e.Err)
}

func (e *PowerError) Unwrap() error { return e.Err }
