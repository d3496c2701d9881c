package widgets

import (
	"math"

	"github.com/tomaka/immi"
)

// The circular sweep is computed in a centered frame: x and y in [-1, 1]
// with y growing upward and the origin at the node's center. mathSpace maps
// that frame onto the unit square and mathSpaceInv maps it back, so a sweep
// matrix S becomes mathSpace * S * mathSpaceInv in node-local terms.
var (
	mathSpace    = immi.Translate(0.5, 0.5).Mul(immi.ScaleXY(0.5, -0.5))
	mathSpaceInv = immi.ScaleXY(2, -2).Mul(immi.Translate(-0.5, -0.5))
)

// circularVisual fills a circle clockwise to show a progression.
type circularVisual struct {
	empty, full immi.Image
	progress    float64
	fit         bool
	align       immi.Alignment
}

// CircularProgressBar draws a circular progress bar that fills clockwise
// from twelve o'clock, keeping the empty image's aspect ratio inside the
// node. progress is clamped to [0, 1]. The full image is drawn over the
// empty one a slice at a time, so it can also be just the difference
// between the two; if its aspect ratio differs it is stretched.
func CircularProgressBar(empty, full immi.Image, progress float64, align immi.Alignment) immi.Visual {
	return circularVisual{empty: empty, full: full, progress: progress, fit: true, align: align}
}

// StretchCircularProgressBar is like [CircularProgressBar] but stretches
// the bar over the node's whole rect.
func StretchCircularProgressBar(empty, full immi.Image, progress float64) immi.Visual {
	return circularVisual{empty: empty, full: full, progress: progress}
}

func (v circularVisual) Draw(dc *immi.DrawContext) error {
	p := clampProgress(v.progress)

	box := dc.Transform
	if v.fit {
		box, _ = immi.Place(dc.Transform, dc.Rect, immi.PlaceSpec{
			Horizontal:     v.align.Horizontal,
			Vertical:       v.align.Vertical,
			WidthPerHeight: dc.Canvas.ImageWidthPerHeight(v.empty),
		})
	}

	err := dc.Emit(immi.DrawCommand{
		Kind:      immi.CommandImage,
		Transform: box,
		Image:     v.empty,
		Corners:   immi.DefaultUV,
	})
	if err != nil {
		return err
	}
	if p == 0 {
		return nil
	}

	// The full image is split into four quarters, each made of two
	// triangles that share the center. Each triangle carries 1/8th of the
	// progression; a partially filled triangle is squeezed toward its
	// leading edge, with its texture window squeezed the same way so the
	// artwork stays registered.
	base := box.Mul(mathSpace)

	// First triangle of each quarter.
	for num := 0; num < 4; num++ {
		lp := (p - 0.25*float64(num)) / 0.125
		if lp <= 0 {
			break
		}
		if lp > 1 {
			lp = 1
		}
		sweep := immi.Rotate(float64(num) * -math.Pi / 2).
			Mul(immi.ScaleXY(0.5*lp, 0.5)).
			Mul(immi.Translate(1, 1))

		var uv1, uv3 immi.Vec2
		switch num {
		case 0:
			uv1, uv3 = immi.Vec2{X: 0.5, Y: 0}, immi.Vec2{X: 0.5 + 0.5*lp, Y: 0}
		case 1:
			uv1, uv3 = immi.Vec2{X: 1, Y: 0.5}, immi.Vec2{X: 1, Y: 0.5 + 0.5*lp}
		case 2:
			uv1, uv3 = immi.Vec2{X: 0.5, Y: 1}, immi.Vec2{X: 0.5 - 0.5*lp, Y: 1}
		case 3:
			uv1, uv3 = immi.Vec2{X: 0, Y: 0.5}, immi.Vec2{X: 0, Y: 0.5 - 0.5*lp}
		}

		err := dc.Emit(immi.DrawCommand{
			Kind:      immi.CommandTriangle,
			Transform: base.Mul(sweep).Mul(mathSpaceInv),
			Image:     v.full,
			UV:        [3]immi.Vec2{uv1, {X: 0.5, Y: 0.5}, uv3},
		})
		if err != nil {
			return err
		}
	}

	// Second triangle of each quarter, skewed to fill the remaining half.
	for num := 0; num < 4; num++ {
		lp := (p - 0.125 - 0.25*float64(num)) / 0.125
		if lp <= 0 {
			break
		}
		if lp > 1 {
			lp = 1
		}
		sweep := immi.Rotate(float64(num+1) * -math.Pi / 2).
			Mul(immi.SkewX(-math.Pi / 4)).
			Mul(immi.ScaleXY(0.5*lp, 0.5)).
			Mul(immi.Translate(1, 1))

		var uv1, uv3 immi.Vec2
		switch num {
		case 0:
			uv1, uv3 = immi.Vec2{X: 1, Y: 0}, immi.Vec2{X: 1, Y: 0.5 * lp}
		case 1:
			uv1, uv3 = immi.Vec2{X: 1, Y: 1}, immi.Vec2{X: 1 - 0.5*lp, Y: 1}
		case 2:
			uv1, uv3 = immi.Vec2{X: 0, Y: 1}, immi.Vec2{X: 0, Y: 1 - 0.5*lp}
		case 3:
			uv1, uv3 = immi.Vec2{X: 0, Y: 0}, immi.Vec2{X: 0.5 * lp, Y: 0}
		}

		err := dc.Emit(immi.DrawCommand{
			Kind:      immi.CommandTriangle,
			Transform: base.Mul(sweep).Mul(mathSpaceInv),
			Image:     v.full,
			UV:        [3]immi.Vec2{uv1, {X: 0.5, Y: 0.5}, uv3},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
