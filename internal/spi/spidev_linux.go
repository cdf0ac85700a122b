//go:build linux

package spi

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SPI_IOC_MESSAGE(1): _IOW('k', 0, struct spi_ioc_transfer[1]).
const spiIOCMessage1 = 0x40206b00

// spiIOCTransfer mirrors struct spi_ioc_transfer from linux/spi/spidev.h.
type spiIOCTransfer struct {
	txBuf          uint64
	rxBuf          uint64
	length         uint32
	speedHz        uint32
	delayUsecs     uint16
	bitsPerWord    uint8
	csChange       uint8
	txNbits        uint8
	rxNbits        uint8
	wordDelayUsecs uint8
	pad            uint8
}

type spidev struct {
	f *os.File
	p Params
}

// OpenSpidev opens a spidev node. The bus mode is left as the kernel has
// it; speed, word size and delay are set on every transfer.
func OpenSpidev(path string, p Params) (Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &spidev{f: f, p: p}, nil
}

// Transfer issues a single SPI_IOC_MESSAGE and returns the byte count the
// driver reports. Received bytes are discarded.
func (s *spidev) Transfer(tx []byte) (int, error) {
	if len(tx) == 0 {
		return 0, nil
	}
	rx := make([]byte, len(tx))
	msg := spiIOCTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		rxBuf:       uint64(uintptr(unsafe.Pointer(&rx[0]))),
		length:      uint32(len(tx)),
		speedHz:     s.p.SpeedHz(),
		delayUsecs:  s.p.DelayUsecs,
		bitsPerWord: s.p.BitsPerWord,
	}
	n, _, errno := unix.Syscall(unix.SYS_IOCTL, s.f.Fd(), spiIOCMessage1, uintptr(unsafe.Pointer(&msg)))
	runtime.KeepAlive(tx)
	runtime.KeepAlive(rx)
	if errno != 0 {
		return 0, errno
	}
	return int(n), nil
}

func (s *spidev) Close() error {
	return s.f.Close()
}
