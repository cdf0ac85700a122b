// Package frame sequences a color payload into the three transfers the
// APA102 LED driver expects: a start marker, the LED records and an end
// marker.
package frame

import "github.com/coreman2200/respeakerled/internal/model"

const (
	SegmentStart   = "start frame"
	SegmentPayload = "LED control data"
	SegmentEnd     = "end frame"
)

var (
	startMarker = [4]byte{0x00, 0x00, 0x00, 0x00}
	endMarker   = [2]byte{0x00, 0x00}
)

// Segment is one bus transfer.
type Segment struct {
	Name string
	Data []byte
}

func (s Segment) Len() int {
	return len(s.Data)
}

func StartMarker() []byte {
	b := startMarker
	return b[:]
}

func EndMarker() []byte {
	b := endMarker
	return b[:]
}

// Build returns the start, payload and end segments in transmission order.
// The payload is passed through as is.
func Build(c model.ColorFrame) []Segment {
	return []Segment{
		{Name: SegmentStart, Data: StartMarker()},
		{Name: SegmentPayload, Data: c},
		{Name: SegmentEnd, Data: EndMarker()},
	}
}

// Bytes concatenates the segments, as they appear on the wire.
func Bytes(segs []Segment) []byte {
	n := 0
	for _, s := range segs {
		n += s.Len()
	}
	out := make([]byte, 0, n)
	for _, s := range segs {
		out = append(out, s.Data...)
	}
	return out
}
