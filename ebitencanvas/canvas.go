// Package ebitencanvas renders immi draw commands with Ebitengine.
//
// The canvas draws onto an *ebiten.Image; pass the target's pixel bounds as
// the engine's root rect so transforms land on pixels. Images handed to the
// engine must be *ebiten.Image values, and text styles must be *Font values
// loaded with [LoadFont].
package ebitencanvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomaka/immi"
)

// Canvas implements immi.Canvas on an Ebitengine image.
type Canvas struct {
	Target *ebiten.Image

	// Reused across draw calls within a frame.
	verts []ebiten.Vertex
	inds  []uint32
}

// New returns a canvas drawing onto target.
func New(target *ebiten.Image) *Canvas {
	return &Canvas{Target: target}
}

// geoM converts an affine transform into an ebiten.GeoM.
func geoM(t immi.Transform) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// for solid fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// ebitenImage unwraps an opaque image handle.
func ebitenImage(img immi.Image) (*ebiten.Image, error) {
	e, ok := img.(*ebiten.Image)
	if !ok || e == nil {
		return nil, fmt.Errorf("ebitencanvas: image handle is %T, want *ebiten.Image", img)
	}
	return e, nil
}

// premultScale applies a premultiplied-alpha color scale.
func premultScale(cs *ebiten.ColorScale, col immi.Color) {
	a := float32(col.A)
	cs.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
}

func (c *Canvas) DrawRectangle(mat immi.Transform, col immi.Color) error {
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(mat)
	premultScale(&op.ColorScale, col)
	c.Target.DrawImage(ensureWhitePixel(), &op)
	return nil
}

func (c *Canvas) DrawTriangle(img immi.Image, mat immi.Transform, uv [3]immi.Vec2) error {
	e, err := ebitenImage(img)
	if err != nil {
		return err
	}
	b := e.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	// Local corners of the triangle primitive: top-left, bottom-left,
	// top-right of the unit square.
	corners := [3][2]float64{{0, 0}, {0, 1}, {1, 0}}

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for i := 0; i < 3; i++ {
		dx, dy := mat.Apply(corners[i][0], corners[i][1])
		c.verts = append(c.verts, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(b.Min.X) + float32(uv[i].X)*w,
			SrcY:   float32(b.Min.Y) + float32(uv[i].Y)*h,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	c.inds = append(c.inds, 0, 1, 2)

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.Target.DrawTriangles32(c.verts, c.inds, e, &triOp)
	return nil
}

func (c *Canvas) DrawImage(img immi.Image, mat immi.Transform, corners [4]immi.Vec2) error {
	e, err := ebitenImage(img)
	if err != nil {
		return err
	}
	b := e.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	// Quad corners in the same order as the uv array: top-left, top-right,
	// bottom-right, bottom-left.
	local := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for i := 0; i < 4; i++ {
		dx, dy := mat.Apply(local[i][0], local[i][1])
		c.verts = append(c.verts, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(b.Min.X) + float32(corners[i].X)*w,
			SrcY:   float32(b.Min.Y) + float32(corners[i].Y)*h,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	c.inds = append(c.inds, 0, 1, 2, 0, 2, 3)

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.Target.DrawTriangles32(c.verts, c.inds, e, &triOp)
	return nil
}

func (c *Canvas) DrawGlyph(style immi.TextStyle, glyph rune, mat immi.Transform, col immi.Color) error {
	f, err := font(style)
	if err != nil {
		return err
	}
	g, ok := f.glyphs[glyph]
	if !ok {
		// Unknown glyphs take up space during layout but draw nothing.
		return nil
	}
	w, h := g.bounds.Dx(), g.bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(1/float64(w), 1/float64(h))
	op.GeoM.Concat(geoM(mat))
	premultScale(&op.ColorScale, col)
	c.Target.DrawImage(f.Atlas.SubImage(g.bounds).(*ebiten.Image), &op)
	return nil
}

func (c *Canvas) ImageWidthPerHeight(img immi.Image) float64 {
	e, err := ebitenImage(img)
	if err != nil {
		return 0
	}
	b := e.Bounds()
	if b.Dy() == 0 {
		return 0
	}
	return float64(b.Dx()) / float64(b.Dy())
}

func (c *Canvas) LineHeight(style immi.TextStyle) float64 {
	f, err := font(style)
	if err != nil {
		return 0
	}
	return f.LineHeight
}

func (c *Canvas) GlyphInfo(style immi.TextStyle, glyph rune) immi.GlyphInfo {
	f, err := font(style)
	if err != nil {
		return immi.GlyphInfo{}
	}
	return f.glyphs[glyph].info
}

func (c *Canvas) Kerning(style immi.TextStyle, prev, next rune) float64 {
	f, err := font(style)
	if err != nil || f.kernings == nil {
		return 0
	}
	return f.kernings[[2]rune{prev, next}]
}

// font unwraps an opaque text style handle.
func font(style immi.TextStyle) (*Font, error) {
	f, ok := style.(*Font)
	if !ok || f == nil {
		return nil, fmt.Errorf("ebitencanvas: text style is %T, want *Font", style)
	}
	return f, nil
}
