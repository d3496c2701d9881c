package widgets

import "github.com/tomaka/immi"

// labelVisual draws a single line of text.
type labelVisual struct {
	style immi.TextStyle
	text  string
	color immi.Color
	mode  fitMode
	align immi.Alignment
}

// Label draws a single line of text at the node's full height, growing
// horizontally as needed to keep the font's aspect ratio. Long text overflows
// the node rather than shrinking; this is usually what you want, since labels
// that should look alike then stay the same height.
func Label(style immi.TextStyle, text string, color immi.Color, align immi.HorizontalAlignment) immi.Visual {
	return labelVisual{
		style: style,
		text:  text,
		color: color,
		mode:  fitFlow,
		align: immi.Alignment{Horizontal: align},
	}
}

// ContainLabel draws a single line of text shrunk until it fits entirely
// inside the node, keeping the font's aspect ratio.
func ContainLabel(style immi.TextStyle, text string, color immi.Color, align immi.Alignment) immi.Visual {
	return labelVisual{style: style, text: text, color: color, mode: fitContain, align: align}
}

// CoverLabel draws a single line of text grown until it covers the whole
// node, keeping the font's aspect ratio and overflowing one axis.
func CoverLabel(style immi.TextStyle, text string, color immi.Color, align immi.Alignment) immi.Visual {
	return labelVisual{style: style, text: text, color: color, mode: fitCover, align: align}
}

// placedGlyph is one glyph positioned in EM space: x is the left edge of the
// glyph's box, with the line's baseline at y = 1 and its top at y = 0.
type placedGlyph struct {
	r    rune
	x    float64
	info immi.GlyphInfo
}

// layoutGlyphs runs the pen over the text and returns the positioned glyphs
// plus the line's total width in EMs. The trailing advance of the last glyph
// is trimmed so the width ends at the last glyph's right edge.
func layoutGlyphs(c immi.Canvas, style immi.TextStyle, text string) ([]placedGlyph, float64) {
	var out []placedGlyph
	var pen float64
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			pen += c.Kerning(style, prev, r)
		}
		info := c.GlyphInfo(style, r)
		out = append(out, placedGlyph{r: r, x: pen + info.XOffset, info: info})
		pen += info.XAdvance
		prev = r
	}
	if len(out) == 0 {
		return nil, 0
	}
	last := out[len(out)-1]
	return out, last.x + last.info.Width
}

func (v labelVisual) Draw(dc *immi.DrawContext) error {
	glyphs, width := layoutGlyphs(dc.Canvas, v.style, v.text)
	if width <= 0 {
		return nil
	}

	// The line occupies width x 1 EMs, baseline at the bottom edge;
	// descenders dip below the box. Map that onto the target box.
	box := v.target(dc, width)
	norm := box.Mul(immi.ScaleXY(1/width, 1))

	for _, g := range glyphs {
		mat := norm.Mul(immi.Translate(g.x, 1-g.info.YOffset)).
			Mul(immi.ScaleXY(g.info.Width, g.info.Height))
		err := dc.Emit(immi.DrawCommand{
			Kind:      immi.CommandGlyph,
			Transform: mat,
			Style:     v.style,
			Glyph:     g.r,
			Color:     v.color,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// target returns the transform of the box the line of text is drawn into.
// textWPH is the text's width divided by its height, in EMs.
func (v labelVisual) target(dc *immi.DrawContext, textWPH float64) immi.Transform {
	if v.mode == fitFlow {
		wph := dc.WidthPerHeight()
		if wph == 0 {
			return dc.Transform
		}
		fw := textWPH / wph
		var xoff float64
		switch v.align.Horizontal {
		case immi.HLeft:
			xoff = 0
		case immi.HRight:
			xoff = 1 - fw
		default:
			xoff = (1 - fw) / 2
		}
		return dc.Transform.Mul(immi.Translate(xoff, 0)).Mul(immi.ScaleXY(fw, 1))
	}
	mat, _ := immi.Place(dc.Transform, dc.Rect, immi.PlaceSpec{
		Horizontal:     v.align.Horizontal,
		Vertical:       v.align.Vertical,
		WidthPerHeight: textWPH,
		Cover:          v.mode == fitCover,
	})
	return mat
}
