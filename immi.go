package immi

import "math"

// WidgetID is a caller-chosen correlation id attached to a leaf declaration.
// It routes interaction results back to application state across the
// stateless frame boundary. The empty string means "no id": the node draws
// but never participates in interaction.
type WidgetID string

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, if required, is the backend's business.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default material (no tint).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and UV coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// finite replaces NaN and infinities with zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Sanitize clamps the rectangle to valid geometry: non-finite components
// become zero and negative sizes are clamped to zero. Layout ingestion runs
// every caller-supplied rectangle through this so a single bad input never
// halts a frame.
func (r Rect) Sanitize() Rect {
	r.X = finite(r.X)
	r.Y = finite(r.Y)
	r.Width = finite(r.Width)
	r.Height = finite(r.Height)
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Axis selects the direction along which a Split lays out its children.
type Axis uint8

const (
	Horizontal Axis = iota // children side by side, dividing the width
	Vertical               // children top to bottom, dividing the height
)

// HorizontalAlignment positions a child along the X axis of its allotted space.
type HorizontalAlignment uint8

const (
	HCenter HorizontalAlignment = iota // centered (default)
	HLeft                              // flush left
	HRight                             // flush right
)

// VerticalAlignment positions a child along the Y axis of its allotted space.
type VerticalAlignment uint8

const (
	VCenter VerticalAlignment = iota // centered (default)
	VTop                             // flush top
	VBottom                          // flush bottom
)

// Alignment combines a horizontal and a vertical alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Alignment shortcuts, named after the position the child ends up in.
var (
	AlignCenter      = Alignment{HCenter, VCenter}
	AlignTop         = Alignment{HCenter, VTop}
	AlignBottom      = Alignment{HCenter, VBottom}
	AlignLeft        = Alignment{HLeft, VCenter}
	AlignRight       = Alignment{HRight, VCenter}
	AlignTopLeft     = Alignment{HLeft, VTop}
	AlignTopRight    = Alignment{HRight, VTop}
	AlignBottomLeft  = Alignment{HLeft, VBottom}
	AlignBottomRight = Alignment{HRight, VBottom}
)

// Insets are margins expressed as fractions of the parent extent on each
// side, between 0 and 1. A left inset of 0.1 removes 10% of the parent's
// width from the left edge.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns equal insets on all four sides.
func UniformInsets(f float64) Insets {
	return Insets{Top: f, Right: f, Bottom: f, Left: f}
}

// SizeMode selects how a child's extent along one axis is computed.
type SizeMode uint8

const (
	SizeStretch  SizeMode = iota // fill the allotted extent (default)
	SizeFraction                 // a fraction of the allotted extent
	SizeFixed                    // a fixed number of root-space units
)

// Size is the requested extent of a child along one axis.
type Size struct {
	Mode  SizeMode
	Value float64
}

// Stretch fills the allotted extent.
func Stretch() Size { return Size{Mode: SizeStretch} }

// Fraction takes the given fraction of the allotted extent.
// Values are clamped to be non-negative at placement time.
func Fraction(f float64) Size { return Size{Mode: SizeFraction, Value: f} }

// Fixed takes the given number of root-space units, capped to the allotted
// extent.
func Fixed(units float64) Size { return Size{Mode: SizeFixed, Value: units} }
