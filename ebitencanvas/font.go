package ebitencanvas

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomaka/immi"
)

// Font is a pre-rasterized bitmap font. Glyph metrics are stored in EMs,
// where one EM is the font's baseline distance (the BMFont "base" value),
// matching what the engine's metric queries expect.
type Font struct {
	// Atlas holds the rasterized glyphs; each glyph references a sub-rect.
	Atlas *ebiten.Image

	// LineHeight is the distance between baselines, in EMs.
	LineHeight float64

	glyphs   map[rune]fontGlyph
	kernings map[[2]rune]float64
}

// fontGlyph ties a glyph's EM metrics to its pixels in the atlas.
type fontGlyph struct {
	bounds image.Rectangle
	info   immi.GlyphInfo
}

// Glyph returns the metrics of a single glyph, or the zero value when the
// font has no entry for it.
func (f *Font) Glyph(r rune) immi.GlyphInfo {
	return f.glyphs[r].info
}

// LoadFont parses BMFont .fnt text-format data and pairs it with its atlas
// image. Pixel metrics are normalized by the font's baseline distance so the
// resulting glyph metrics are in EMs.
func LoadFont(fntData []byte, atlas *ebiten.Image) (*Font, error) {
	type rawGlyph struct {
		id               rune
		x, y, w, h       int
		xoff, yoff, xadv int
	}
	var (
		lineHeight, base float64
		raws             []rawGlyph
		rawKern          map[[2]rune]int
	)

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			if v, ok := fields["lineHeight"]; ok {
				lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			g := rawGlyph{
				id:   rune(fieldInt(fields, "id")),
				x:    fieldInt(fields, "x"),
				y:    fieldInt(fields, "y"),
				w:    fieldInt(fields, "width"),
				h:    fieldInt(fields, "height"),
				xoff: fieldInt(fields, "xoffset"),
				yoff: fieldInt(fields, "yoffset"),
				xadv: fieldInt(fields, "xadvance"),
			}
			raws = append(raws, g)

		case "kerning":
			if rawKern == nil {
				rawKern = make(map[[2]rune]int)
			}
			first := rune(fieldInt(fields, "first"))
			second := rune(fieldInt(fields, "second"))
			rawKern[[2]rune{first, second}] = fieldInt(fields, "amount")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ebitencanvas: error reading .fnt data: %w", err)
	}
	if base <= 0 {
		return nil, fmt.Errorf("ebitencanvas: .fnt data missing common base")
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("ebitencanvas: .fnt data has no char definitions")
	}

	f := &Font{
		Atlas:      atlas,
		LineHeight: lineHeight / base,
		glyphs:     make(map[rune]fontGlyph, len(raws)),
	}
	for _, g := range raws {
		f.glyphs[g.id] = fontGlyph{
			bounds: image.Rect(g.x, g.y, g.x+g.w, g.y+g.h),
			info: immi.GlyphInfo{
				Width:  float64(g.w) / base,
				Height: float64(g.h) / base,
				// BMFont yoffset measures from the line's top down to the
				// glyph's top; the engine wants baseline up to the top.
				XOffset:  float64(g.xoff) / base,
				YOffset:  (base - float64(g.yoff)) / base,
				XAdvance: float64(g.xadv) / base,
			},
		}
	}
	if rawKern != nil {
		f.kernings = make(map[[2]rune]float64, len(rawKern))
		for pair, amount := range rawKern {
			f.kernings[pair] = float64(amount) / base
		}
	}
	return f, nil
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

// fieldInt reads an integer field, defaulting to zero.
func fieldInt(fields map[string]string, key string) int {
	v, _ := strconv.Atoi(fields[key])
	return v
}
