package resources

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	sampleRate    = 44100
	bitsPerSample = 16
	channels      = 1
)

type note struct {
	frequency float64
	start     float64
	length    float64
}

// Two bell tones, E6 then B5, each decaying over its own window.
var chimeNotes = []note{
	{frequency: 1318.51, start: 0, length: 0.6},
	{frequency: 987.77, start: 0.25, length: 0.75},
}

// ChimeSeconds is the length of the generated completion sound.
const ChimeSeconds = 1.0

func synthesizeChime() []int16 {
	total := int(ChimeSeconds * sampleRate)
	mix := make([]float64, total)
	for _, n := range chimeNotes {
		first := int(n.start * sampleRate)
		count := int(n.length * sampleRate)
		for i := 0; i < count && first+i < total; i++ {
			t := float64(i) / sampleRate
			envelope := math.Exp(-5 * t / n.length)
			if i < 220 {
				envelope *= float64(i) / 220
			}
			tone := math.Sin(2*math.Pi*n.frequency*t) + 0.3*math.Sin(4*math.Pi*n.frequency*t)
			mix[first+i] += 0.35 * envelope * tone
		}
	}

	samples := make([]int16, total)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v))
		samples[i] = int16(v * math.MaxInt16)
	}
	return samples
}

func encodeWAV(samples []int16) []byte {
	dataSize := uint32(len(samples) * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)

	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate)*uint32(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
