package immi

import "time"

// descKind identifies the container kind of a Desc node.
type descKind uint8

const (
	kindLeaf descKind = iota
	kindSplit
	kindStack
	kindPlace
	kindAnimated
)

// Desc is one node of the per-frame layout description. Desc values are
// cheap, immutable once declared, and discarded after the frame; build them
// with the package-level constructors ([Split], [Stack], [Margin], [Align],
// [AspectRatio], [Leaf], [Animated]).
type Desc struct {
	kind     descKind
	axis     Axis
	children []Desc
	weights  []float64 // split only, parallel to children
	id       WidgetID
	visual   Visual
	spec     PlaceSpec
	anim     *animSpec
}

// WeightedChild pairs a layout weight with a child declaration for
// [SplitWeighted].
type WeightedChild struct {
	Weight float64
	Child  Desc
}

// Weighted wraps a child with a split weight.
func Weighted(weight float64, child Desc) WeightedChild {
	return WeightedChild{Weight: weight, Child: child}
}

// Split divides the available extent equally among children along the given
// axis. A split with no children resolves to a childless node covering the
// parent rect.
func Split(axis Axis, children ...Desc) Desc {
	weights := make([]float64, len(children))
	for i := range weights {
		weights[i] = 1
	}
	return Desc{kind: kindSplit, axis: axis, children: children, weights: weights}
}

// SplitWeighted divides the available extent among children proportionally to
// their weights. A child of weight 2 receives twice the extent of a child of
// weight 1. Negative weights count as zero; if the total weight is zero every
// child receives a zero-size rect at the parent origin and the subtree still
// recurses, so correlation ids remain declared.
func SplitWeighted(axis Axis, children ...WeightedChild) Desc {
	d := Desc{
		kind:     kindSplit,
		axis:     axis,
		children: make([]Desc, len(children)),
		weights:  make([]float64, len(children)),
	}
	for i, c := range children {
		d.children[i] = c.Child
		d.weights[i] = c.Weight
	}
	return d
}

// Stack overlays children on the full parent rect. Declaration order is draw
// order: later children draw on top and win pointer-interaction ties.
func Stack(children ...Desc) Desc {
	return Desc{kind: kindStack, children: children}
}

// Margin insets the child by fractions of the parent extent on each side.
func Margin(in Insets, child Desc) Desc {
	return Desc{kind: kindPlace, children: []Desc{child}, spec: PlaceSpec{Margin: in}}
}

// Align sizes the child along each axis and positions it within the parent
// rect. Use [Stretch], [Fraction], or [Fixed] for the sizes.
func Align(a Alignment, width, height Size, child Desc) Desc {
	return Desc{kind: kindPlace, children: []Desc{child}, spec: PlaceSpec{
		Horizontal: a.Horizontal,
		Vertical:   a.Vertical,
		Width:      width,
		Height:     height,
	}}
}

// Placed positions the child with the full placement rule, for callers that
// need margins, sizing, alignment, and aspect lock combined.
func Placed(spec PlaceSpec, child Desc) Desc {
	return Desc{kind: kindPlace, children: []Desc{child}, spec: spec}
}

// AspectRatio letterboxes the child: the largest rectangle with the given
// width-per-height ratio that fits the parent rect, positioned by alignment.
// The letterboxed rect is also the child's interaction area.
func AspectRatio(widthPerHeight float64, a Alignment, child Desc) Desc {
	return Desc{kind: kindPlace, children: []Desc{child}, spec: PlaceSpec{
		Horizontal:     a.Horizontal,
		Vertical:       a.Vertical,
		WidthPerHeight: widthPerHeight,
	}}
}

// AspectRatioCover sizes the child to the smallest rectangle of the given
// ratio that covers the parent rect, overflowing one axis.
func AspectRatioCover(widthPerHeight float64, a Alignment, child Desc) Desc {
	return Desc{kind: kindPlace, children: []Desc{child}, spec: PlaceSpec{
		Horizontal:     a.Horizontal,
		Vertical:       a.Vertical,
		WidthPerHeight: widthPerHeight,
		Cover:          true,
	}}
}

// Leaf declares a widget occupying its allotted space. The id correlates
// interaction results across frames; the visual may be nil for an invisible
// hit area. Declaring the same id on two leaves in one frame is a usage
// error: the last-declared node in traversal order wins.
func Leaf(id WidgetID, visual Visual) Desc {
	return Desc{kind: kindLeaf, id: id, visual: visual}
}

// Spacer declares an empty leaf: no id, no visual, just occupied space.
func Spacer() Desc {
	return Desc{kind: kindLeaf}
}

// LayoutNode is one resolved widget for the current frame. Nodes live in the
// tree's arena and are invalid once the frame call returns.
type LayoutNode struct {
	ID        WidgetID
	Rect      Rect      // axis-aligned region in root space
	Transform Transform // maps the local unit square onto Rect
	Visual    Visual

	firstChild  int32
	nextSibling int32
	parent      int32
}

// Tree is the resolved layout for one frame: a pre-order arena of nodes.
// The arena index of a node is its draw-order index; dispatch traversal and
// interaction z-order are both derived from it.
type Tree struct {
	nodes    []LayoutNode
	rootRect Rect
}

// Len returns the number of resolved nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at the given draw-order index.
func (t *Tree) Node(i int) *LayoutNode { return &t.nodes[i] }

// RootRect returns the sanitized root rectangle the tree was built against.
func (t *Tree) RootRect() Rect { return t.rootRect }

// reset prepares the arena for a new frame, reusing the backing storage.
func (t *Tree) reset(root Rect) {
	t.nodes = t.nodes[:0]
	t.rootRect = root.Sanitize()
}

// build resolves desc into the arena and returns the new node's index.
// tr and r are the space the parent allots to this node; Place and Animated
// wrappers refine them before the node is recorded.
func (t *Tree) build(desc *Desc, parent int32, tr Transform, r Rect, now time.Time) int32 {
	switch desc.kind {
	case kindPlace:
		tr, r = Place(tr, r, desc.spec)
	case kindAnimated:
		tr = desc.anim.transform(tr, now)
		r = tr.bounds()
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, LayoutNode{
		ID:          desc.id,
		Rect:        r,
		Transform:   tr,
		Visual:      desc.visual,
		firstChild:  -1,
		nextSibling: -1,
		parent:      parent,
	})

	switch desc.kind {
	case kindSplit:
		t.buildSplit(desc, idx, tr, r, now)
	default:
		var last int32 = -1
		for i := range desc.children {
			ci := t.build(&desc.children[i], idx, tr, r, now)
			last = t.link(idx, last, ci)
		}
	}
	return idx
}

// buildSplit divides the node's extent among children by weight.
func (t *Tree) buildSplit(desc *Desc, idx int32, tr Transform, r Rect, now time.Time) {
	var total float64
	for _, w := range desc.weights {
		if w = finite(w); w > 0 {
			total += w
		}
	}

	var offset float64
	var last int32 = -1
	for i := range desc.children {
		w := finite(desc.weights[i])
		if w < 0 {
			w = 0
		}

		var childTr Transform
		var childR Rect
		if total <= 0 {
			// Degenerate split: zero-size children at the parent origin.
			childTr = tr.Mul(ScaleXY(0, 0))
			childR = Rect{X: r.X, Y: r.Y}
		} else {
			f := w / total
			if desc.axis == Horizontal {
				childTr = tr.Mul(Translate(offset, 0)).Mul(ScaleXY(f, 1))
				childR = Rect{X: r.X + offset*r.Width, Y: r.Y, Width: f * r.Width, Height: r.Height}
			} else {
				childTr = tr.Mul(Translate(0, offset)).Mul(ScaleXY(1, f))
				childR = Rect{X: r.X, Y: r.Y + offset*r.Height, Width: r.Width, Height: f * r.Height}
			}
			offset += f
		}

		ci := t.build(&desc.children[i], idx, childTr, childR, now)
		last = t.link(idx, last, ci)
	}
}

// link attaches child ci to parent idx after sibling last and returns ci.
// Index-based because the arena may reallocate during recursion.
func (t *Tree) link(idx, last, ci int32) int32 {
	if last < 0 {
		t.nodes[idx].firstChild = ci
	} else {
		t.nodes[last].nextSibling = ci
	}
	return ci
}
