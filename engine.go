package immi

import "time"

// Engine drives the per-frame pipeline and owns the press table. One engine
// per UI; frame calls are synchronous and must not run concurrently — the
// model is one render thread driving sequential frames.
//
// The layout arena is owned by the engine and reused across frames, so a
// *Tree returned by BuildLayout is valid only until the next frame call.
type Engine struct {
	// Clock supplies the current time for Animated placements. Defaults to
	// time.Now; tests substitute a fixed clock.
	Clock func() time.Time

	press PressTable
	tree  Tree
}

// NewEngine returns an engine with an empty press table.
func NewEngine() *Engine {
	return &Engine{
		Clock: time.Now,
		press: make(PressTable),
	}
}

// Frame runs one full UI frame: build the layout for desc rooted at root,
// resolve interaction against in, and dispatch draw commands to canvas.
// The returned results are the caller's to keep; everything else about the
// frame is discarded.
//
// The error aggregates canvas failures; layout and interaction themselves
// never fail (bad geometry is sanitized at ingestion).
func (e *Engine) Frame(canvas Canvas, root Rect, desc Desc, in Input) (Results, error) {
	t := e.BuildLayout(root, desc)
	res := e.Resolve(t, in)
	return res, Dispatch(t, res, canvas)
}

// BuildLayout resolves the declaration into this frame's layout tree.
// Exposed for callers that drive the three phases separately.
func (e *Engine) BuildLayout(root Rect, desc Desc) *Tree {
	e.tree.reset(root)
	r := e.tree.rootRect
	rootTransform := Translate(r.X, r.Y).Mul(ScaleXY(r.Width, r.Height))
	e.tree.build(&desc, -1, rootTransform, r, e.Clock())
	return &e.tree
}

// Resolve computes interaction results for the tree using the engine's
// press table.
func (e *Engine) Resolve(t *Tree, in Input) Results {
	return Resolve(t, in, e.press)
}
