package widgets

import "github.com/tomaka/immi"

// buttonVisual draws one of three images depending on the node's interaction
// state this frame.
type buttonVisual struct {
	normal, hovered, active immi.Image
}

// ImageButton draws the normal image, swapping to hovered under the cursor
// and to active while the press is held. The image is stretched over the
// node's rect; wrap the leaf in [immi.AspectRatio] to keep the artwork's
// ratio (the hit area then matches the letterboxed image, as a button
// should).
//
// Read clicks from the frame's results under the leaf's correlation id.
func ImageButton(normal, hovered, active immi.Image) immi.Visual {
	return buttonVisual{normal: normal, hovered: hovered, active: active}
}

func (v buttonVisual) Draw(dc *immi.DrawContext) error {
	return dc.Emit(immi.DrawCommand{
		Kind:      immi.CommandImage,
		Transform: dc.Transform,
		Image:     stateImage(dc.Result, v.normal, v.hovered, v.active),
		Corners:   immi.DefaultUV,
	})
}

// stateImage picks the artwork for this frame's interaction flags. A held
// press shows the active state even if the cursor has wandered off, matching
// the press-table protocol: the widget still owns the interaction until
// release.
func stateImage(r immi.InteractionResult, normal, hovered, active immi.Image) immi.Image {
	switch {
	case r.Pressed || r.Clicked:
		return active
	case r.Hovered:
		return hovered
	default:
		return normal
	}
}
