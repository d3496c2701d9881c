package immi

import "math"

// Transform is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// A layout node's Transform maps its local unit square (0,0)-(1,1) onto the
// node's region of root space. Transforms are values: composition returns a
// new Transform and never mutates the operands.
type Transform [6]float64

// Identity returns the transform that has no effect.
func Identity() Transform { return Transform{1, 0, 0, 1, 0, 0} }

// Translate returns a transform that offsets points by (x, y).
func Translate(x, y float64) Transform { return Transform{1, 0, 0, 1, x, y} }

// Scale returns a transform that multiplies both axes by factor.
func Scale(factor float64) Transform { return Transform{factor, 0, 0, factor, 0, 0} }

// ScaleXY returns a transform that multiplies the axes by w and h.
func ScaleXY(w, h float64) Transform { return Transform{w, 0, 0, h, 0, 0} }

// Rotate returns a transform that rotates by the given angle in radians.
// Positive angles rotate clockwise in the Y-down coordinate system.
func Rotate(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// SkewX returns a transform that skews the x coordinate by the given angle.
func SkewX(radians float64) Transform {
	return Transform{1, 0, math.Tan(radians), 1, 0, 0}
}

// Mul returns t * o, the transform that applies o first and then t.
// A child's placement composes as parent.Mul(local).
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		t[0]*o[0] + t[2]*o[1],
		t[1]*o[0] + t[3]*o[1],
		t[0]*o[2] + t[2]*o[3],
		t[1]*o[2] + t[3]*o[3],
		t[0]*o[4] + t[2]*o[5] + t[4],
		t[1]*o[4] + t[3]*o[5] + t[5],
	}
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// Invert computes the inverse transform. The second return value is false if
// the transform is singular (zero-area mapping), in which case the identity
// is returned.
func (t Transform) Invert() (Transform, bool) {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}, true
}

// Lerp linearly interpolates each component from t to o by f.
// f=0 yields t, f=1 yields o; f is not clamped.
func (t Transform) Lerp(o Transform, f float64) Transform {
	var out Transform
	for i := range t {
		out[i] = t[i] + (o[i]-t[i])*f
	}
	return out
}

// hits reports whether the root-space point (x, y) falls inside the unit
// square mapped by t. Singular transforms (zero-area nodes) hit nothing.
func (t Transform) hits(x, y float64) bool {
	inv, ok := t.Invert()
	if !ok {
		return false
	}
	lx, ly := inv.Apply(x, y)
	return lx >= 0 && lx <= 1 && ly >= 0 && ly <= 1
}

// bounds returns the axis-aligned bounding rectangle of the unit square
// mapped by t. For unrotated transforms this is exactly the mapped region.
func (t Transform) bounds() Rect {
	x0, y0 := t.Apply(0, 0)
	minX, minY := x0, y0
	maxX, maxY := x0, y0
	for _, p := range [3][2]float64{{1, 0}, {0, 1}, {1, 1}} {
		x, y := t.Apply(p[0], p[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PlaceSpec describes how a child is positioned within the space its parent
// allots to it: margins first, then an extent per axis, then alignment of the
// resulting box, with an optional aspect-ratio lock applied last.
type PlaceSpec struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
	Width      Size
	Height     Size
	Margin     Insets

	// WidthPerHeight, when positive, letterboxes the child: the largest
	// rectangle of this aspect ratio that fits the allotted space is used,
	// positioned by the alignment fields. Zero means no lock.
	WidthPerHeight float64

	// Cover inverts the aspect lock: the smallest rectangle of the locked
	// ratio that covers the allotted space is used instead, overflowing the
	// space on one axis. Ignored when WidthPerHeight is zero.
	Cover bool
}

// extent resolves one axis of a PlaceSpec size against the available extent
// in root-space units.
func (s Size) extent(available float64) float64 {
	var out float64
	switch s.Mode {
	case SizeFraction:
		out = finite(s.Value) * available
	case SizeFixed:
		out = finite(s.Value)
		if out > available {
			out = available
		}
	default:
		out = available
	}
	if out < 0 {
		return 0
	}
	return out
}

// inset returns the value clamped to [0, 1] with non-finite inputs treated
// as zero.
func inset(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Place computes a child coordinate space from a parent space and a placement
// rule. It is a pure function: safe to call concurrently, no shared state.
//
// parent must be the transform that maps the parent's unit square onto
// parentRect; the returned transform maps the child's unit square onto the
// returned rect. A zero-area parent yields a zero-area child without error.
func Place(parent Transform, parentRect Rect, spec PlaceSpec) (Transform, Rect) {
	parentRect = parentRect.Sanitize()

	top := inset(spec.Margin.Top)
	left := inset(spec.Margin.Left)
	availW := (1 - left - inset(spec.Margin.Right)) * parentRect.Width
	availH := (1 - top - inset(spec.Margin.Bottom)) * parentRect.Height
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}

	childW := spec.Width.extent(availW)
	childH := spec.Height.extent(availH)

	if wph := finite(spec.WidthPerHeight); wph > 0 {
		if (childW > childH*wph) != spec.Cover {
			childW = childH * wph
		} else {
			childH = childW / wph
		}
	}

	var offX, offY float64
	switch spec.Horizontal {
	case HLeft:
		offX = 0
	case HRight:
		offX = availW - childW
	default:
		offX = (availW - childW) / 2
	}
	switch spec.Vertical {
	case VTop:
		offY = 0
	case VBottom:
		offY = availH - childH
	default:
		offY = (availH - childH) / 2
	}

	rect := Rect{
		X:      parentRect.X + left*parentRect.Width + offX,
		Y:      parentRect.Y + top*parentRect.Height + offY,
		Width:  childW,
		Height: childH,
	}

	// The same placement expressed as fractions of the parent's unit square,
	// so transform and rect are generated from one set of values.
	var fx, fy, fw, fh float64
	if parentRect.Width > 0 {
		fx = (rect.X - parentRect.X) / parentRect.Width
		fw = childW / parentRect.Width
	}
	if parentRect.Height > 0 {
		fy = (rect.Y - parentRect.Y) / parentRect.Height
		fh = childH / parentRect.Height
	}
	child := parent.Mul(Translate(fx, fy)).Mul(ScaleXY(fw, fh))
	return child, rect
}
