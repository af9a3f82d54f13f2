// SPDX-License-Identifier: MIT
// Package: diagramkit/render

package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/render"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

func sample() *scene.Scene {
	s := scene.New(100, 50)
	s.IDPrefix = "d1"
	s.Title = "Sample"
	s.Background = "#ffffff"
	st := scene.Filled("")
	st.FillGradient = s.DefineGradient(shape.SphereGradient("#ff0000"))
	st.Filter = s.DefineFilter(shape.ShadowFilter())
	s.Add(scene.Circle(geom.Pt(50, 25), 10, st).WithClass("ball"))
	s.Add(scene.Text(geom.Pt(10, 10), "a<b", scene.Label("#000000", 10)))
	s.Add(scene.Group("turned", scene.Rect(geom.Rect{X: 0, Y: 0, W: 4, H: 4}, scene.Filled("#00ff00"))).Rotated(45, geom.Pt(2, 2)))
	return s
}

func TestSVG_Document(t *testing.T) {
	out := render.SVG{}.String(sample())
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="100.00"`)
	assert.Contains(t, out, `viewBox="0.00 0.00 100.00 50.00"`)
	assert.Contains(t, out, "<title>Sample</title>")
	assert.Contains(t, out, `<radialGradient id="d1-sphere-ff0000"`)
	assert.Contains(t, out, `<filter id="d1-soft-shadow"`)
	assert.Contains(t, out, `fill="url(#d1-sphere-ff0000)"`)
	assert.Contains(t, out, `filter="url(#d1-soft-shadow)"`)
	assert.Contains(t, out, `class="ball"`)
	assert.Contains(t, out, "a&lt;b")
	assert.Contains(t, out, `transform="rotate(45 2 2)"`)
	assert.Contains(t, out, `class="background" fill="#ffffff"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVG_Deterministic(t *testing.T) {
	a := render.SVG{Decimals: 3}.String(sample())
	b := render.SVG{Decimals: 3}.String(sample())
	assert.Equal(t, a, b)
	assert.Contains(t, a, `width="100.000"`)
}

func TestSVG_Inline(t *testing.T) {
	out := render.SVG{Inline: true}.String(sample())
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.NotContains(t, out, "<?xml")
}

func TestSVG_NilScene(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.SVG{}.Render(&buf, nil), render.ErrNilScene)
	assert.ErrorIs(t, render.PNG{}.Render(&buf, nil), render.ErrNilScene)
}

func TestPNG_Rasterize(t *testing.T) {
	s := scene.New(20, 10)
	s.Background = "#ffffff"
	s.Add(scene.Rect(geom.Rect{W: 10, H: 10}, scene.Filled("#ff0000")))

	img, err := render.PNG{}.Rasterize(s)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
	red := img.RGBAAt(5, 5)
	assert.GreaterOrEqual(t, red.R, uint8(250))
	assert.LessOrEqual(t, red.G, uint8(5))
	assert.Equal(t, uint8(255), red.A)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(15, 5))
}

func TestPNG_EncodeScaled(t *testing.T) {
	b := render.PNG{Scale: 2}
	out, err := render.Bytes(b, sample())
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	assert.Equal(t, "png", b.Ext())
	assert.Equal(t, "image/png", b.MediaType())
}
