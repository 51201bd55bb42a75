package synth

import (
	"math"
	"testing"
)

const testRate = 44100

func TestToneRestIsSilent(t *testing.T) {
	buf := Tone(testRate, 0, 0.25, 0.5)
	if len(buf) != 11025 {
		t.Fatalf("rest length = %d, want 11025", len(buf))
	}
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("rest sample %d = %d, want 0", i, s)
		}
	}
}

func TestToneLengthRounds(t *testing.T) {
	if got := len(Tone(testRate, 440, 0.5, 1)); got != 22050 {
		t.Fatalf("tone length = %d, want 22050", got)
	}
	if got := len(Tone(testRate, 440, 0.0001, 1)); got != 4 {
		t.Fatalf("tone length = %d, want round(4.41)=4", got)
	}
}

func TestToneFadeEdges(t *testing.T) {
	buf := Tone(testRate, 440, 0.5, 1)
	if buf[0] != 0 {
		t.Fatalf("first sample = %d, want 0 after fade-in", buf[0])
	}
	if buf[len(buf)-1] != 0 {
		t.Fatalf("last sample = %d, want 0 after fade-out", buf[len(buf)-1])
	}
	// Past the fade region samples carry the raw quantized sine.
	fade := testRate * fadeMillis / 1000
	i := fade + 100
	seconds := 0.5
	tm := float64(i) * seconds / float64(len(buf))
	want := int16(math.Sin(2*math.Pi*440*tm) * 32767)
	if buf[i] != want {
		t.Fatalf("sample %d = %d, want unfaded %d", i, buf[i], want)
	}
}

func TestToneShorterThanFadeRegions(t *testing.T) {
	// 10 ms at 44100 Hz is 441 samples, shorter than one 20 ms ramp; the
	// clamped fades must still apply without panicking.
	buf := Tone(testRate, 440, 0.01, 1)
	if len(buf) != 441 {
		t.Fatalf("length = %d, want 441", len(buf))
	}
	if buf[len(buf)-1] != 0 {
		t.Fatalf("last sample = %d, want 0", buf[len(buf)-1])
	}
}

func TestToneVolumeScalesAmplitude(t *testing.T) {
	loud := Tone(testRate, 440, 0.5, 1)
	soft := Tone(testRate, 440, 0.5, 0.25)
	var maxLoud, maxSoft int16
	for i := range loud {
		if loud[i] > maxLoud {
			maxLoud = loud[i]
		}
		if soft[i] > maxSoft {
			maxSoft = soft[i]
		}
	}
	if maxLoud < 32000 {
		t.Fatalf("full volume peak = %d, want near full scale", maxLoud)
	}
	if maxSoft > maxLoud/3 {
		t.Fatalf("quarter volume peak = %d vs full %d, want roughly a quarter", maxSoft, maxLoud)
	}
}

func TestMixClipsToInt16Range(t *testing.T) {
	a := []int16{32767, -32768, 20000, -20000}
	b := []int16{32767, -32768, 20000, -20000}
	mixed := Mix([][]int16{a, b})
	want := []int16{32767, -32768, 32767, -32768}
	for i := range want {
		if mixed[i] != want[i] {
			t.Fatalf("mixed[%d] = %d, want clipped %d", i, mixed[i], want[i])
		}
	}
}

func TestMixUsesLongestLength(t *testing.T) {
	long := []int16{1, 2, 3, 4}
	short := []int16{10, 10}
	mixed := Mix([][]int16{long, short})
	if len(mixed) != 4 {
		t.Fatalf("mixed length = %d, want 4", len(mixed))
	}
	want := []int16{11, 12, 3, 4}
	for i := range want {
		if mixed[i] != want[i] {
			t.Fatalf("mixed[%d] = %d, want %d", i, mixed[i], want[i])
		}
	}
}

func TestMixEmptyInput(t *testing.T) {
	if got := len(Mix(nil)); got != 0 {
		t.Fatalf("empty mix length = %d, want 0", got)
	}
}

func TestMixCommutative(t *testing.T) {
	a := Tone(testRate, 261.63, 0.05, 0.8)
	b := Tone(testRate, 329.63, 0.05, 0.8)
	ab := Mix([][]int16{a, b})
	ba := Mix([][]int16{b, a})
	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("mix order changed sample %d: %d vs %d", i, ab[i], ba[i])
		}
	}
}

func TestConcat(t *testing.T) {
	out := Concat([][]int16{{1, 2}, nil, {3}})
	want := []int16{1, 2, 3}
	if len(out) != len(want) {
		t.Fatalf("concat length = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("concat[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
