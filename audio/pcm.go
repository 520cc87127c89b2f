package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep"
)

// renderPCM drains s into interleaved stereo int16 LE bytes
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = appendPCM(out, buf[:n])
		if !ok {
			return out
		}
	}
}

// appendPCM hard-clips each sample to [-1, 1] and appends it as s16le
func appendPCM(out []byte, samples [][2]float64) []byte {
	for _, frame := range samples {
		for _, v := range frame {
			if v > 1.0 {
				v = 1.0
			} else if v < -1.0 {
				v = -1.0
			}
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*32767)))
		}
	}
	return out
}
