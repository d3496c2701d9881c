package widgets

import "github.com/tomaka/immi"

// Borders describes the four border bands of a 9-slice texture as fractions
// of the texture's extent on each side, each in (0, 1) with
// Top+Bottom <= 1 and Left+Right <= 1.
type Borders struct {
	Top, Right, Bottom, Left float64
}

// image9Visual draws a 9-slice panel: four corners keep the texture's aspect
// ratio, edges stretch along one axis, and the middle stretches both ways.
type image9Visual struct {
	img immi.Image

	// leftWidth is the fraction of the node's width occupied by the left
	// border band; the other three band sizes follow from the texture's
	// aspect ratio so corners stay square.
	leftWidth float64
	borders   Borders
}

// Image9 draws img as a 9-slice panel filling the node. leftWidth is the
// fraction of the node's width the left border should occupy; the remaining
// border sizes are derived so the corners keep the texture's aspect ratio.
func Image9(img immi.Image, leftWidth float64, borders Borders) immi.Visual {
	return image9Visual{img: img, leftWidth: leftWidth, borders: borders}
}

func (v image9Visual) Draw(dc *immi.DrawContext) error {
	b := v.borders
	wph := dc.WidthPerHeight()
	iwph := dc.Canvas.ImageWidthPerHeight(v.img)
	if wph == 0 || iwph == 0 || b.Left <= 0 || b.Top <= 0 || b.Right <= 0 {
		// Degenerate node or unusable borders: fall back to a plain stretch.
		return dc.Emit(immi.DrawCommand{
			Kind:      immi.CommandImage,
			Transform: dc.Transform,
			Image:     v.img,
			Corners:   immi.DefaultUV,
		})
	}

	// Border band sizes as fractions of the node, chained so each corner
	// keeps the texture's aspect ratio.
	left := v.leftWidth
	top := left * (b.Top / b.Left) * wph / iwph
	right := top * (b.Right / b.Top) / wph * iwph
	bottom := right * (b.Bottom / b.Right) * wph / iwph

	midW := 1 - left - right
	midH := 1 - top - bottom

	slices := [9]struct {
		fx, fy, fw, fh float64 // sub-box of the node, as fractions
		u0, v0, u1, v1 float64 // texture window
	}{
		{0, 0, left, top, 0, 0, b.Left, b.Top},
		{1 - right, 0, right, top, 1 - b.Right, 0, 1, b.Top},
		{1 - right, 1 - bottom, right, bottom, 1 - b.Right, 1 - b.Bottom, 1, 1},
		{0, 1 - bottom, left, bottom, 0, 1 - b.Bottom, b.Left, 1},
		{left, 0, midW, top, b.Left, 0, 1 - b.Right, b.Top},
		{0, top, left, midH, 0, b.Top, b.Left, 1 - b.Bottom},
		{left, 1 - bottom, midW, bottom, b.Left, 1 - b.Bottom, 1 - b.Right, 1},
		{1 - right, top, right, midH, 1 - b.Right, b.Top, 1, 1 - b.Bottom},
		{left, top, midW, midH, b.Left, b.Top, 1 - b.Right, 1 - b.Bottom},
	}

	for _, s := range slices {
		if s.fw <= 0 || s.fh <= 0 {
			continue
		}
		mat := dc.Transform.Mul(immi.Translate(s.fx, s.fy)).Mul(immi.ScaleXY(s.fw, s.fh))
		err := dc.Emit(immi.DrawCommand{
			Kind:      immi.CommandImage,
			Transform: mat,
			Image:     v.img,
			Corners: [4]immi.Vec2{
				{X: s.u0, Y: s.v0},
				{X: s.u1, Y: s.v0},
				{X: s.u1, Y: s.v1},
				{X: s.u0, Y: s.v1},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// image9ButtonVisual is a 9-slice panel with per-state artwork.
type image9ButtonVisual struct {
	normal, hovered, active immi.Image
	leftWidth               float64
	borders                 Borders
}

// Image9Button draws a 9-slice panel whose artwork follows the node's
// interaction state, like [ImageButton] does for plain images. All three
// textures must share the same border layout.
func Image9Button(normal, hovered, active immi.Image, leftWidth float64, borders Borders) immi.Visual {
	return image9ButtonVisual{
		normal:    normal,
		hovered:   hovered,
		active:    active,
		leftWidth: leftWidth,
		borders:   borders,
	}
}

func (v image9ButtonVisual) Draw(dc *immi.DrawContext) error {
	img := stateImage(dc.Result, v.normal, v.hovered, v.active)
	return image9Visual{img: img, leftWidth: v.leftWidth, borders: v.borders}.Draw(dc)
}
