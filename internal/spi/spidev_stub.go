//go:build !linux

package spi

import "fmt"

func OpenSpidev(path string, p Params) (Device, error) {
	return nil, fmt.Errorf("spidev not supported on this platform")
}
