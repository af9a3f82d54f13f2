// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// color.go - colour parsing, shading and contrast.
//
// One shared brightness helper serves every generator: Shade moves a colour
// towards white (amount > 0) or black (amount < 0) in RGB, and always returns
// a canonical lower-case #rrggbb string so identical inputs produce identical
// markup.

package shape

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Text colours chosen by Contrast.
const (
	DarkText  = "#1f2937"
	LightText = "#ffffff"
)

// lightThreshold is the CIE L* above which a fill counts as light.
const lightThreshold = 0.62

// named holds the CSS colour keywords the generators and hosts commonly use.
var named = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"gray":   "#808080",
	"grey":   "#808080",
	"silver": "#c0c0c0",
	"brown":  "#a52a2a",
	"cyan":   "#00ffff",
	"pink":   "#ffc0cb",
	"navy":   "#000080",
	"teal":   "#008080",
}

// ParseColor accepts #rgb, #rrggbb and the keywords above. ok is false for
// anything else (including "none").
func ParseColor(s string) (c colorful.Color, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, found := named[s]; found {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Shade lightens (amount > 0) or darkens (amount < 0) color by |amount| in
// [0,1]. Unparseable colours are returned unchanged.
func Shade(color string, amount float64) string {
	c, ok := ParseColor(color)
	if !ok {
		return color
	}
	if amount != amount { // NaN
		amount = 0
	}
	target := colorful.Color{R: 1, G: 1, B: 1}
	if amount < 0 {
		target = colorful.Color{}
		amount = -amount
	}
	if amount > 1 {
		amount = 1
	}
	return c.BlendRgb(target, amount).Clamped().Hex()
}

// Canonical returns color as #rrggbb when it parses, unchanged otherwise.
func Canonical(color string) string {
	if c, ok := ParseColor(color); ok {
		return c.Hex()
	}
	return color
}

// IsLight reports whether color is light enough to need dark text.
func IsLight(color string) bool {
	c, ok := ParseColor(color)
	if !ok {
		return false
	}
	l, _, _ := c.Lab()
	return l > lightThreshold
}

// Contrast returns the text colour readable on a fill of the given colour.
func Contrast(fill string) string {
	if IsLight(fill) {
		return DarkText
	}
	return LightText
}

// colorKey turns a colour into an id-safe token ("#ff0000" → "ff0000").
func colorKey(color string) string {
	c := Canonical(color)
	c = strings.TrimPrefix(c, "#")
	var b strings.Builder
	for _, r := range c {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
