package synth

import "math"

// fadeMillis is the linear ramp applied at both buffer edges to avoid
// audible clicks at note boundaries.
const fadeMillis = 20

// Tone renders one note as mono int16 PCM: a pure sine at freq Hz, amplitude
// volume x full scale, seconds long at sampleRate. Frequency 0 is a rest and
// yields an untouched zero buffer. The conversion to int16 truncates toward
// zero, matching the quantization the rest of the pipeline assumes.
func Tone(sampleRate int, freq, seconds, volume float64) []int16 {
	n := int(math.Round(float64(sampleRate) * seconds))
	buf := make([]int16, n)
	if freq == 0 || n == 0 {
		return buf
	}
	for i := range buf {
		t := float64(i) * seconds / float64(n)
		buf[i] = int16(math.Sin(2*math.Pi*freq*t) * volume * 32767)
	}
	applyFade(sampleRate, buf)
	return buf
}

// applyFade shapes the buffer edges with linear ramps, fade-in first and
// fade-out second. When the buffer is shorter than two ramps the regions
// overlap and the fade-out overwrites the tail of the fade-in; that ordering
// is part of the contract and must not change.
func applyFade(sampleRate int, buf []int16) {
	n := sampleRate * fadeMillis / 1000
	if n > len(buf) {
		n = len(buf)
	}
	if n < 1 {
		return
	}
	for i := 0; i < n; i++ {
		buf[i] = int16(float64(buf[i]) * rampUp(i, n))
	}
	start := len(buf) - n
	for i := 0; i < n; i++ {
		buf[start+i] = int16(float64(buf[start+i]) * (1 - rampUp(i, n)))
	}
}

// rampUp is the i-th of n evenly spaced gains from 0 to 1 inclusive.
func rampUp(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
