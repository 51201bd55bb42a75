package notewave

import (
	"encoding/binary"
	"os"
)

// EncodeWAV wraps a rendered buffer in a canonical RIFF container: PCM
// format code 1, one channel, 16 bits per sample, SampleRate. The data chunk
// is the raw little-endian sample bytes.
func EncodeWAV(samples []int16) []byte {
	dataSize := len(samples) * 2
	byteRate := SampleRate * 2
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1)
	binary.LittleEndian.PutUint16(out[22:], 1)
	binary.LittleEndian.PutUint32(out[24:], uint32(SampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], 2)
	binary.LittleEndian.PutUint16(out[34:], 16)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(s))
	}
	return out
}

// ExportWAV writes the buffer to path as a WAV file. An empty path means the
// host declined a destination; nothing is written and no error is returned.
func ExportWAV(path string, samples []int16) error {
	if path == "" {
		return nil
	}
	return os.WriteFile(path, EncodeWAV(samples), 0o644)
}
