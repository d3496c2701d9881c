package immi

import (
	"errors"
	"fmt"
)

// Image is an opaque texture handle. The engine never inspects it; it flows
// from the declaration through draw commands to the backend unchanged.
type Image any

// TextStyle is an opaque font/style handle, treated like [Image].
type TextStyle any

// GlyphInfo describes a single glyph. All values are relative to the size of
// an EM, so the engine can scale them to any layout size.
type GlyphInfo struct {
	// Width and Height of the glyph in EMs. By convention Height is close
	// to 1.0 for the glyph 'M'.
	Width, Height float64

	// XOffset is the gap between the end of the previous glyph and the
	// start of this one, in EMs.
	XOffset float64

	// YOffset is the distance from the baseline up to the top of the glyph,
	// in EMs. Glyphs with descenders (like 'p') have YOffset < Height.
	YOffset float64

	// XAdvance is the pen advance from the end of the previous glyph to the
	// end of this one, in EMs. Normally at least Width + XOffset.
	XAdvance float64
}

// Canvas is the drawing capability the engine dispatches to. Implementations
// rasterize; the engine only resolves geometry. Every transform passed in
// maps the unit square (0,0)-(1,1) onto the target region in root space.
//
// Triangle primitives cover the corner triangle (0,0), (0,1), (1,0) of the
// unit square; the uv array gives the texture coordinates at those three
// corners, with (0,0) the top-left of the texture and (1,1) the bottom-right.
//
// The metric queries let text and image widgets size themselves; backends
// without fonts or images may return zero values.
type Canvas interface {
	DrawRectangle(mat Transform, color Color) error
	DrawTriangle(img Image, mat Transform, uv [3]Vec2) error
	DrawImage(img Image, mat Transform, corners [4]Vec2) error
	DrawGlyph(style TextStyle, glyph rune, mat Transform, color Color) error

	// ImageWidthPerHeight returns the image's width divided by its height.
	ImageWidthPerHeight(img Image) float64

	// LineHeight returns the height of a line of text in EMs, usually ~1.2.
	LineHeight(style TextStyle) float64

	// GlyphInfo returns the metrics of a single glyph.
	GlyphInfo(style TextStyle, glyph rune) GlyphInfo

	// Kerning returns the pen adjustment between two glyphs in EMs.
	// Zero is always acceptable.
	Kerning(style TextStyle, prev, next rune) float64
}

// DefaultUV maps the whole texture onto the target: corners in the order
// top-left, top-right, bottom-right, bottom-left.
var DefaultUV = [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// CommandKind tags a DrawCommand variant.
type CommandKind uint8

const (
	CommandRectangle CommandKind = iota // solid rectangle: Transform, Color
	CommandTriangle                     // textured triangle: Transform, Image, UV
	CommandGlyph                        // single glyph: Transform, Style, Glyph, Color
	CommandImage                        // textured quad: Transform, Image, Corners
)

// DrawCommand is one resolved drawing primitive. Commands are the currency
// between visuals and the canvas: a visual emits commands, the dispatcher
// applies them in order.
type DrawCommand struct {
	Kind      CommandKind
	Transform Transform
	Color     Color
	Image     Image
	UV        [3]Vec2
	Corners   [4]Vec2
	Glyph     rune
	Style     TextStyle
}

// Apply hands the command to the canvas.
func (cmd DrawCommand) Apply(c Canvas) error {
	switch cmd.Kind {
	case CommandRectangle:
		return c.DrawRectangle(cmd.Transform, cmd.Color)
	case CommandTriangle:
		return c.DrawTriangle(cmd.Image, cmd.Transform, cmd.UV)
	case CommandGlyph:
		return c.DrawGlyph(cmd.Style, cmd.Glyph, cmd.Transform, cmd.Color)
	case CommandImage:
		return c.DrawImage(cmd.Image, cmd.Transform, cmd.Corners)
	default:
		return fmt.Errorf("immi: unknown draw command kind %d", cmd.Kind)
	}
}

// EmitImageTriangles draws a textured quad as two triangles through the
// DrawTriangle capability, for backends without a native quad path. The
// second triangle is the first rotated half a turn around the quad center.
func EmitImageTriangles(c Canvas, img Image, mat Transform, corners [4]Vec2) error {
	if err := c.DrawTriangle(img, mat, [3]Vec2{corners[0], corners[3], corners[1]}); err != nil {
		return err
	}
	flipped := mat.Mul(Translate(1, 1)).Mul(Scale(-1))
	return c.DrawTriangle(img, flipped, [3]Vec2{corners[2], corners[1], corners[3]})
}

// DrawContext is what a Visual receives: the canvas plus the node's resolved
// geometry and this frame's interaction flags. It is frame-scoped.
type DrawContext struct {
	Canvas    Canvas
	ID        WidgetID
	Transform Transform
	Rect      Rect
	Result    InteractionResult
}

// WidthPerHeight returns the aspect ratio of the node's resolved rect, or
// zero for a degenerate rect.
func (dc *DrawContext) WidthPerHeight() float64 {
	if dc.Rect.Height == 0 {
		return 0
	}
	return dc.Rect.Width / dc.Rect.Height
}

// Emit applies a single draw command to the context's canvas.
func (dc *DrawContext) Emit(cmd DrawCommand) error {
	return cmd.Apply(dc.Canvas)
}

// Visual draws a leaf's content. Implementations emit draw commands against
// the node's resolved transform; they must not retain the context.
type Visual interface {
	Draw(dc *DrawContext) error
}

// rectangleVisual fills the node with a solid color.
type rectangleVisual struct {
	color Color
}

func (v rectangleVisual) Draw(dc *DrawContext) error {
	return dc.Emit(DrawCommand{Kind: CommandRectangle, Transform: dc.Transform, Color: v.color})
}

// Rectangle returns a visual that fills the node's rect with a solid color.
func Rectangle(color Color) Visual {
	return rectangleVisual{color: color}
}

// Dispatch walks the tree back-to-front and applies every node's visual to
// the canvas. The traversal order is the arena order: parents before their
// children, siblings in declaration order — the same total order interaction
// resolution uses for topmost selection.
//
// Dispatch is best-effort: a failing canvas call never aborts the remaining
// traversal. All failures are collected and returned joined.
func Dispatch(t *Tree, res Results, canvas Canvas) error {
	var errs []error
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.Visual == nil {
			continue
		}
		dc := DrawContext{
			Canvas:    canvas,
			ID:        n.ID,
			Transform: n.Transform,
			Rect:      n.Rect,
			Result:    res.Get(n.ID),
		}
		if err := n.Visual.Draw(&dc); err != nil {
			errs = append(errs, fmt.Errorf("immi: node %q: %w", n.ID, err))
		}
	}
	return errors.Join(errs...)
}
