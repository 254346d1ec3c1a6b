package simplify

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"figctx/pkg/figma"
)

// UnsupportedPaintTypeError reports a paint type the simplifier cannot
// express. It aborts the whole conversion rather than dropping data
// silently.
type UnsupportedPaintTypeError struct {
	Type string
}

func (e *UnsupportedPaintTypeError) Error() string {
	return fmt.Sprintf("unsupported paint type %q", e.Type)
}

// ConvertColor folds a 0-1 RGBA color and a layer opacity into a hex
// string plus effective opacity. Channels round to the nearest integer;
// the effective alpha (opacity x color alpha) rounds to two decimals.
func ConvertColor(c figma.Color, opacity float64) ColorValue {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	return ColorValue{
		Hex:     fmt.Sprintf("#%02X%02X%02X", r, g, b),
		Opacity: math.Round(opacity*c.A*100) / 100,
	}
}

// HexToRGBA expands a 3- or 6-digit hex color into a CSS rgba() string.
// Inputs of any other length render as black at the given opacity.
func HexToRGBA(hex string, opacity float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return fmt.Sprintf("rgba(0, 0, 0, %s)", formatNum(opacity))
	}

	r, _ := strconv.ParseUint(h[0:2], 16, 16)
	g, _ := strconv.ParseUint(h[2:4], 16, 16)
	b, _ := strconv.ParseUint(h[4:6], 16, 16)

	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNum(opacity))
}

// cssColor renders a converted color in its shortest CSS form: bare hex
// at full opacity, rgba() otherwise.
func cssColor(cv ColorValue) string {
	if cv.Opacity == 1 {
		return cv.Hex
	}
	return HexToRGBA(cv.Hex, cv.Opacity)
}

// ParsePaint simplifies a single paint. Layer opacity folds into solid
// colors; gradient stops keep their own alpha and ignore layer opacity.
// Unknown paint types fail the conversion.
func ParsePaint(p *figma.Paint) (Fill, error) {
	opacity := 1.0
	if p.Opacity != nil {
		opacity = *p.Opacity
	}

	switch p.Type {
	case "SOLID":
		if p.Color == nil {
			return Fill{}, fmt.Errorf("solid paint without color")
		}
		return Fill{CSS: cssColor(ConvertColor(*p.Color, opacity))}, nil

	case "IMAGE":
		return Fill{
			Type:      p.Type,
			ImageRef:  p.ImageRef,
			ScaleMode: p.ScaleMode,
		}, nil

	case "GRADIENT_LINEAR", "GRADIENT_RADIAL", "GRADIENT_ANGULAR", "GRADIENT_DIAMOND":
		stops := make([]GradientStop, 0, len(p.GradientStops))
		for _, stop := range p.GradientStops {
			if stop.Color == nil {
				return Fill{}, fmt.Errorf("gradient stop without color")
			}
			stops = append(stops, GradientStop{
				Position: stop.Position,
				Color:    ConvertColor(*stop.Color, 1),
			})
		}
		return Fill{
			Type:                    p.Type,
			GradientHandlePositions: p.GradientHandlePositions,
			GradientStops:           stops,
		}, nil

	default:
		return Fill{}, &UnsupportedPaintTypeError{Type: p.Type}
	}
}

// formatNum renders a float without trailing zeros (10 -> "10",
// 2.5 -> "2.5").
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
