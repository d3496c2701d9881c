// Package immi is an immediate-mode UI layout and interaction engine.
//
// Immi owns no widgets between frames. Every frame the caller re-declares the
// desired UI as a [Desc] tree, and the engine resolves geometry, pointer
// interaction, and draw order in a single synchronous call:
//
//	engine := immi.NewEngine()
//
//	func (g *Game) frame(canvas immi.Canvas, in immi.Input) {
//		ui := immi.SplitWeighted(immi.Horizontal,
//			immi.Weighted(1, immi.Leaf("sidebar", immi.Rectangle(gray))),
//			immi.Weighted(3, immi.Stack(
//				immi.Leaf("content", immi.Rectangle(white)),
//				immi.Margin(immi.UniformInsets(0.05),
//					immi.Leaf("ok", immi.Rectangle(blue))),
//			)),
//		)
//		res, _ := engine.Frame(canvas, immi.Rect{Width: 1, Height: 1}, ui, in)
//		if res.Clicked("ok") {
//			// caller-owned state machine reacts here
//		}
//	}
//
// Immi performs no rasterization, font shaping, or texture management. All
// drawing goes through the [Canvas] capability supplied by the caller; the
// ebitencanvas subpackage provides a ready-made [Ebitengine] backend, but any
// renderer that can fill rectangles and triangles will do.
//
// # Frame model
//
// [Engine.Frame] builds the layout tree, resolves hover/press/click against
// the frame's [Input] snapshot, dispatches draw commands back-to-front, and
// discards the tree. Interaction results are returned synchronously; the only
// state carried across frames is a small press table keyed by correlation id,
// which makes click-versus-cancel resolution possible without retained widget
// objects.
//
// # Coordinate spaces
//
// Rectangles use the top-left origin with Y increasing downward. The caller
// chooses the root rectangle's basis; (0, 0, 1, 1) is the conventional
// normalized root box, in which case the root transform is the identity.
// Every node carries a [Transform] mapping its local unit square onto its
// region of root space; draw commands hand that transform to the backend
// unchanged.
//
// [Ebitengine]: https://ebitengine.org
package immi
