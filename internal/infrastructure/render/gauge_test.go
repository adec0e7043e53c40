package render

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

func pixelOnArc(t *testing.T, img image.Image, size int, deg float64) valueobject.RGB {
	t.Helper()
	stroke := float64(size) / 12
	center := float64(size) / 2
	radius := (float64(size) - stroke) / 2
	rad := deg * math.Pi / 180
	x := int(math.Round(center + radius*math.Cos(rad)))
	y := int(math.Round(center + radius*math.Sin(rad)))
	r, g, b, _ := img.At(x, y).RGBA()
	return valueobject.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func assertNear(t *testing.T, want, got valueobject.RGB) {
	t.Helper()
	near := func(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 8 }
	assert.True(t, near(want.R, got.R) && near(want.G, got.G) && near(want.B, got.B), "want %v, got %v", want, got)
}

func TestDrawGauge(t *testing.T) {
	green := valueobject.RiskLevelLow.Color()

	data, err := DrawGauge(240, 1, green)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())

	// Left, top and right of the arc are all inside a full sweep.
	assertNear(t, green, pixelOnArc(t, img, 240, 180))
	assertNear(t, green, pixelOnArc(t, img, 240, 270))
	assertNear(t, green, pixelOnArc(t, img, 240, 360))
}

func TestDrawGauge_PartialSweep(t *testing.T) {
	red := valueobject.RiskLevelHigh.Color()

	// 0.1 of 270 degrees ends at 162 degrees, before the left point.
	data, err := DrawGauge(240, 0.1, red)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assertNear(t, gaugeTrack, pixelOnArc(t, img, 240, 270))
	assertNear(t, red, pixelOnArc(t, img, 240, 145))
}

func TestDrawGauge_InvalidSize(t *testing.T) {
	_, err := DrawGauge(0, 0.5, valueobject.RGB{})
	assert.Error(t, err)
}
