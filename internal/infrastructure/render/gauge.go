package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

const (
	gaugeStartDeg = 135.0
	gaugeSweepDeg = 270.0
)

var gaugeTrack = valueobject.RGB{R: 229, G: 231, B: 235}

// DrawGauge draws a 270 degree arc gauge of the given pixel size. The arc
// opens at the bottom; the coloured part covers ratio of the sweep.
func DrawGauge(size int, ratio float64, color valueobject.RGB) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gauge size must be positive, got %d", size)
	}
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(dst)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	stroke := float64(size) / 12
	center := float64(size) / 2
	radius := (float64(size) - stroke) / 2
	start := gg.Radians(gaugeStartDeg)

	dc.SetLineWidth(stroke)
	dc.SetLineCap(gg.LineCapRound)

	// Background track
	dc.SetRGB255(int(gaugeTrack.R), int(gaugeTrack.G), int(gaugeTrack.B))
	dc.NewSubPath()
	dc.DrawArc(center, center, radius, start, start+gg.Radians(gaugeSweepDeg))
	dc.Stroke()

	// Progress
	if ratio > 0 {
		dc.SetRGB255(int(color.R), int(color.G), int(color.B))
		dc.NewSubPath()
		dc.DrawArc(center, center, radius, start, start+gg.Radians(gaugeSweepDeg*ratio))
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode gauge: %w", err)
	}
	return buf.Bytes(), nil
}
