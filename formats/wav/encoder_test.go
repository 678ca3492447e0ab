package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/dothao2954-creator/minimaxvocx/internal/audiotest"
)

func TestEncode_HeaderLayout(t *testing.T) {
	t.Parallel()

	left := []float32{0, 0.25, -0.25, 0.5}
	right := []float32{0.1, -0.1, 0.2, -0.2}
	buf := audiotest.Buffer(24000, left, right)

	data, err := Encode(buf, 4)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	wantLen := 4*2*2 + 44
	if len(data) != wantLen {
		t.Fatalf("Encode() length = %d, want %d", len(data), wantLen)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("ChunkID = %q, want \"RIFF\"", string(data[0:4]))
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(wantLen-8) {
		t.Errorf("ChunkSize = %d, want %d", got, wantLen-8)
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("Format = %q, want \"WAVE\"", string(data[8:12]))
	}
	if string(data[12:16]) != "fmt " {
		t.Errorf("Subchunk1ID = %q, want \"fmt \"", string(data[12:16]))
	}
	if got := binary.LittleEndian.Uint32(data[16:20]); got != 16 {
		t.Errorf("Subchunk1Size = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("AudioFormat = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 2 {
		t.Errorf("NumChannels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 24000 {
		t.Errorf("SampleRate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 24000*2*2 {
		t.Errorf("ByteRate = %d, want %d", got, 24000*2*2)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 4 {
		t.Errorf("BlockAlign = %d, want 4", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("BitsPerSample = %d, want 16", got)
	}
	if string(data[36:40]) != "data" {
		t.Errorf("Subchunk2ID = %q, want \"data\"", string(data[36:40]))
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(wantLen-44) {
		t.Errorf("Subchunk2Size = %d, want %d", got, wantLen-44)
	}
}

func TestEncode_Quantization(t *testing.T) {
	t.Parallel()

	samples := []float32{1.0, -1.0, 0.5, -0.5, 2.0, -2.0, 0}
	buf := audiotest.Buffer(8000, samples)

	data, err := Encode(buf, len(samples))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []int16{32767, -32768, 16383, -16384, 32767, -32768, 0}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2 : 46+i*2]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncode_Interleaving(t *testing.T) {
	t.Parallel()

	left := []float32{0.25, 0.75}
	right := []float32{-0.25, -0.75}
	buf := audiotest.Buffer(24000, left, right)

	data, err := Encode(buf, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// L0 R0 L1 R1
	want := []int16{8191, -8192, 24575, -24576}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2 : 46+i*2]))
		if got != w {
			t.Errorf("word %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncode_FrameLimit(t *testing.T) {
	t.Parallel()

	buf := audiotest.Buffer(24000, make([]float32, 100))

	data, err := Encode(buf, 0)
	if err != nil {
		t.Fatalf("Encode(frameLimit=0) error = %v", err)
	}
	if len(data) != 44 {
		t.Errorf("Encode(frameLimit=0) length = %d, want 44 (header only)", len(data))
	}

	data, err = Encode(buf, 60)
	if err != nil {
		t.Fatalf("Encode(frameLimit=60) error = %v", err)
	}
	if len(data) != 44+60*2 {
		t.Errorf("Encode(frameLimit=60) length = %d, want %d", len(data), 44+60*2)
	}

	if _, err := Encode(buf, 101); !errors.Is(err, ErrFrameLimitOutOfRange) {
		t.Errorf("Encode(frameLimit=101) error = %v, want ErrFrameLimitOutOfRange", err)
	}
	if _, err := Encode(buf, -1); !errors.Is(err, ErrFrameLimitOutOfRange) {
		t.Errorf("Encode(frameLimit=-1) error = %v, want ErrFrameLimitOutOfRange", err)
	}
}

func TestEncode_LengthProperty(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{1, 2, 4} {
		for _, frames := range []int{0, 1, 17, 1200} {
			planar := make([][]float32, channels)
			for ch := range planar {
				planar[ch] = make([]float32, frames)
			}
			buf := audiotest.Buffer(24000, planar...)

			data, err := Encode(buf, frames)
			if err != nil {
				t.Fatalf("Encode(ch=%d, frames=%d) error = %v", channels, frames, err)
			}
			if want := frames*channels*2 + 44; len(data) != want {
				t.Errorf("Encode(ch=%d, frames=%d) length = %d, want %d",
					channels, frames, len(data), want)
			}
		}
	}
}

// The encoder output must be readable by an independent WAV
// implementation, not just our own decoder.
func TestEncode_ReadableByGoAudio(t *testing.T) {
	t.Parallel()

	signal := audiotest.Sine(24000, 2400, 440, 0.5)
	buf := audiotest.Buffer(24000, signal)

	data, err := Encode(buf, 2400)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		t.Fatal("go-audio rejected encoder output")
	}
	if dec.SampleRate != 24000 || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Fatalf("go-audio parsed rate=%d chans=%d depth=%d, want 24000/1/16",
			dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if len(pcm.Data) != 2400 {
		t.Fatalf("go-audio returned %d samples, want 2400", len(pcm.Data))
	}

	for i, v := range pcm.Data {
		want := float64(signal[i])
		got := float64(v) / 32768.0
		if math.Abs(got-want) > 1.0/32767.0 {
			t.Fatalf("sample %d = %v, want %v within 1/32767", i, got, want)
		}
	}
}

// BenchmarkEncode measures serializing one second of mono audio.
func BenchmarkEncode(b *testing.B) {
	buf := audiotest.Buffer(24000, audiotest.Sine(24000, 24000, 220, 0.5))

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Encode(buf, 24000)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	buf := audiotest.Buffer(8000, []float32{0.1, -0.1, 0.2})

	var out bytes.Buffer
	if err := Write(&out, buf, 3); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out.Len() != 44+3*2 {
		t.Errorf("Write() wrote %d bytes, want %d", out.Len(), 44+3*2)
	}

	if _, err := Encode(buf, 4); err == nil {
		t.Error("Encode() with frame limit past the buffer should fail")
	}
}
