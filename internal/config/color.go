package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts a CSS color name, "#rrggbb", or
// "hsv(h, s, v)" with hue in degrees and saturation/value in [0, 1].
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		return toRGBA(c), nil
	}
	if strings.HasPrefix(s, "hsv(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("hsv color %q needs three values", s)
		}
		var hsv [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return color.RGBA{}, fmt.Errorf("bad hsv component %q", p)
			}
			hsv[i] = v
		}
		h := math.Mod(hsv[0], 360)
		if h < 0 {
			h += 360
		}
		return toRGBA(colorful.Hsv(h, clamp01(hsv[1]), clamp01(hsv[2]))), nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// MustColor is ParseColor for values that already passed validation.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
