package sound

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

// Format is stereo 16-bit, the layout ebiten's audio players expect.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Bank holds every sound pre-rendered into a beep buffer.
type Bank struct {
	buffers map[string]*beep.Buffer
}

func NewBank() (*Bank, error) {
	b := &Bank{buffers: make(map[string]*beep.Buffer, len(Names))}
	for _, name := range Names {
		s, err := New(name, Format.SampleRate)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(Format)
		buf.Append(s)
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("sound: render %s: %w", name, err)
		}
		b.buffers[name] = buf
	}
	return b, nil
}

// Streamer returns a seekable streamer over the whole sound.
func (b *Bank) Streamer(name string) (beep.StreamSeeker, bool) {
	buf, ok := b.buffers[name]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// Len is the sound length in samples.
func (b *Bank) Len(name string) int {
	buf, ok := b.buffers[name]
	if !ok {
		return 0
	}
	return buf.Len()
}

// PCM renders name as signed 16-bit little-endian interleaved stereo.
func (b *Bank) PCM(name string) ([]byte, error) {
	s, ok := b.Streamer(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return EncodePCM(s), nil
}

// EncodePCM drains s into signed 16-bit little-endian stereo frames.
func EncodePCM(s beep.Streamer) []byte {
	var (
		out   []byte
		chunk = make([][2]float64, 512)
		frame [4]byte
	)
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(chunk[i][0])))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(chunk[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
