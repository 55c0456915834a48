package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 64

var (
	chimeOnce sync.Once
	chimeData []byte

	iconCache sync.Map
)

// Chime returns the completion sound as a 16-bit mono WAV file.
func Chime() []byte {
	chimeOnce.Do(func() {
		chimeData = encodeWAV(synthesizeChime())
	})
	return chimeData
}

// Icon returns the application icon tinted with accent.
func Icon(accent color.NRGBA) (fyne.Resource, error) {
	key := fmt.Sprintf("icon-%02x%02x%02x%02x.png", accent.R, accent.G, accent.B, accent.A)
	if cached, ok := iconCache.Load(key); ok {
		return cached.(fyne.Resource), nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, drawIcon(accent)); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", key, err)
	}

	resource := fyne.NewStaticResource(key, buf.Bytes())
	iconCache.Store(key, resource)
	return resource, nil
}

// MustIcon returns the icon resource or panics on error.
func MustIcon(accent color.NRGBA) fyne.Resource {
	resource, err := Icon(accent)
	if err != nil {
		panic(err)
	}
	return resource
}

// drawIcon renders a tomato: an accent disc with a small green stem.
func drawIcon(accent color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	stem := color.NRGBA{R: 0x38, G: 0x8e, B: 0x3c, A: 0xff}
	center := float64(iconSize) / 2
	radius := center - 4

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - (center + 3)
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, accent)
			}
		}
	}
	for y := 2; y < 12; y++ {
		for x := iconSize/2 - 2; x < iconSize/2+2; x++ {
			img.SetNRGBA(x, y, stem)
		}
	}
	for x := iconSize/2 - 10; x < iconSize/2+10; x++ {
		img.SetNRGBA(x, 9, stem)
		img.SetNRGBA(x, 10, stem)
	}
	return img
}
