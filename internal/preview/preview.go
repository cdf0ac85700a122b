// Package preview shows a frame on the terminal instead of the LED strip.
package preview

import (
	"encoding/hex"
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/respeakerled/internal/frame"
	"github.com/coreman2200/respeakerled/internal/model"
)

// Console renders the LED payload as colored cells, one per LED. It never
// opens the SPI device nor touches the power rail.
type Console struct {
	log       zerolog.Logger
	newDrawer func(leds int) display.Drawer
}

func NewConsole(logger zerolog.Logger) *Console {
	return &Console{
		log: logger.With().Str("component", "preview").Logger(),
		newDrawer: func(leds int) display.Drawer {
			return screen.New(leds)
		},
	}
}

func (c *Console) Transmit(devicePath string, segs []frame.Segment) error {
	var payload model.ColorFrame
	for _, s := range segs {
		c.log.Info().
			Str("dev", devicePath).
			Str("segment", s.Name).
			Int("bytes", s.Len()).
			Str("data", hex.EncodeToString(s.Data)).
			Msg("dry run")
		if s.Name == frame.SegmentPayload {
			payload = model.ColorFrame(s.Data)
		}
	}
	if payload.Len() == 0 {
		return fmt.Errorf("no LED data in frame")
	}

	d := c.newDrawer(payload.Len())
	if err := d.Draw(d.Bounds(), payload.Image(), image.Point{}); err != nil {
		return fmt.Errorf("draw preview: %w", err)
	}
	fmt.Printf("\n")
	return d.Halt()
}
