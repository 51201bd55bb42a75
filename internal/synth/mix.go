package synth

import "math"

// Mix sums simultaneous buffers (a chord) into one buffer as long as the
// longest input. Samples are widened to int32 before summing, then
// hard-clipped back to the int16 range. Buffers shorter than the result
// contribute zero beyond their length. No inputs yield an empty buffer.
func Mix(buffers [][]int16) []int16 {
	maxLen := 0
	for _, b := range buffers {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	sum := make([]int32, maxLen)
	for _, b := range buffers {
		for i, s := range b {
			sum[i] += int32(s)
		}
	}
	out := make([]int16, maxLen)
	for i, s := range sum {
		if s > math.MaxInt16 {
			s = math.MaxInt16
		} else if s < math.MinInt16 {
			s = math.MinInt16
		}
		out[i] = int16(s)
	}
	return out
}

// Concat joins per-token buffers in playback order.
func Concat(buffers [][]int16) []int16 {
	total := 0
	for _, b := range buffers {
		total += len(b)
	}
	out := make([]int16, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}
