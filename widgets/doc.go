// Package widgets provides ready-made visuals on top of the immi engine:
// images (fit, stretch, cover), image buttons with per-state artwork,
// 9-slice panels, single-line labels, and linear/circular progress bars.
//
// Widgets are plain [immi.Visual] implementations; attach them to leaves
// with [immi.Leaf] and read their interaction through the frame's results:
//
//	ui := immi.Margin(immi.UniformInsets(0.1),
//		immi.Leaf("play", widgets.ImageButton(btnNormal, btnHover, btnActive)))
//	res, _ := engine.Frame(canvas, root, ui, in)
//	if res.Clicked("play") {
//		startGame()
//	}
//
// Everything here is stateless: a button's hovered/active artwork is chosen
// from the same frame's interaction resolution, and progress bars draw
// whatever value they are declared with.
package widgets
