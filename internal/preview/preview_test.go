package preview

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/display"

	"github.com/coreman2200/respeakerled/internal/frame"
	"github.com/coreman2200/respeakerled/internal/model"
)

type fakeDrawer struct {
	img    *image.NRGBA
	halted bool
}

func (f *fakeDrawer) String() string { return "fake" }
func (f *fakeDrawer) Halt() error {
	f.halted = true
	return nil
}

func (f *fakeDrawer) ColorModel() color.Model { return color.NRGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return f.img.Bounds() }
func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(f.img, r, src, sp, draw.Src)
	return nil
}

func TestConsoleDrawsOnePixelPerLED(t *testing.T) {
	var got *fakeDrawer
	c := NewConsole(zerolog.Nop())
	c.newDrawer = func(leds int) display.Drawer {
		got = &fakeDrawer{img: image.NewNRGBA(image.Rect(0, 0, leds, 1))}
		return got
	}

	cf, err := model.LookupPattern(model.TwoMic, "responding")
	require.NoError(t, err)
	require.NoError(t, c.Transmit("/dev/spidev0.1", frame.Build(cf)))

	require.NotNil(t, got)
	assert.True(t, got.halted)
	assert.Equal(t, 3, got.img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{G: 48, A: 255}, got.img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{B: 48, A: 255}, got.img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 48, A: 255}, got.img.NRGBAAt(2, 0))
}

func TestConsoleWithoutPayload(t *testing.T) {
	c := NewConsole(zerolog.Nop())
	err := c.Transmit("/dev/spidev0.1", []frame.Segment{{Name: frame.SegmentStart, Data: frame.StartMarker()}})
	assert.Error(t, err)
}
