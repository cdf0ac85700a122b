package model

import (
	"image"
	"image/color"
)

// RecordSize is the number of bytes the LED driver expects per LED.
const RecordSize = 4

// Byte offsets inside one LED record.
const (
	GLOBAL_OFFSET uint8 = 0
	BLUE_OFFSET   uint8 = 1
	GREEN_OFFSET  uint8 = 2
	RED_OFFSET    uint8 = 3
)

// GlobalLead is the first byte of every record: the three marker bits plus
// full global brightness.
const GlobalLead uint8 = 0xFF

// Record is one LED's worth of color data in wire order.
type Record [RecordSize]byte

func NewRecord(r, g, b uint8) Record {
	var v Record
	v[GLOBAL_OFFSET] = GlobalLead
	v.SetR(r)
	v.SetG(g)
	v.SetB(b)
	return v
}

func (c *Record) SetR(r uint8) { c[RED_OFFSET] = r }
func (c *Record) SetG(g uint8) { c[GREEN_OFFSET] = g }
func (c *Record) SetB(b uint8) { c[BLUE_OFFSET] = b }

func (c Record) Global() uint8 { return c[GLOBAL_OFFSET] }
func (c Record) R() uint8      { return c[RED_OFFSET] }
func (c Record) G() uint8      { return c[GREEN_OFFSET] }
func (c Record) B() uint8      { return c[BLUE_OFFSET] }

// Brightness returns the 5 bit global brightness field.
func (c Record) Brightness() uint8 {
	return c.Global() & 0x1F
}

// ToRGB scales the channels by the global brightness field.
func (c Record) ToRGB() color.NRGBA {
	bb := float64(c.Brightness()) / 31.0
	return color.NRGBA{
		R: uint8(float64(c.R()) * bb),
		G: uint8(float64(c.G()) * bb),
		B: uint8(float64(c.B()) * bb),
		A: 255,
	}
}

// ColorFrame is the color payload for every LED of a variant, as sent on
// the wire.
type ColorFrame []byte

// Len returns the number of complete LED records in the frame.
func (f ColorFrame) Len() int {
	return len(f) / RecordSize
}

func (f ColorFrame) Records() []Record {
	out := make([]Record, f.Len())
	for i := range out {
		copy(out[i][:], f[i*RecordSize:(i+1)*RecordSize])
	}
	return out
}

// Image lays the LEDs out as a single row, one pixel each.
func (f ColorFrame) Image() *image.NRGBA {
	rs := f.Records()
	im := image.NewNRGBA(image.Rect(0, 0, len(rs), 1))
	for x := 0; x < im.Rect.Max.X; x++ {
		im.SetNRGBA(x, 0, rs[x].ToRGB())
	}
	return im
}

func (f ColorFrame) clone() ColorFrame {
	out := make(ColorFrame, len(f))
	copy(out, f)
	return out
}
