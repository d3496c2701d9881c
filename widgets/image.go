package widgets

import "github.com/tomaka/immi"

// fitMode selects how an image maps onto its node.
type fitMode uint8

const (
	fitStretch fitMode = iota // fill the node exactly, ignoring aspect ratio
	fitContain                // largest aspect-true rect inside the node
	fitCover                  // smallest aspect-true rect covering the node
	fitFlow                   // node height fixes the scale, width follows the content
)

// imageVisual draws a single image with optional aspect-ratio handling.
type imageVisual struct {
	img   immi.Image
	mode  fitMode
	align immi.Alignment
}

// Image draws the image shrunk (if necessary) to fit the node while keeping
// its aspect ratio, positioned by the alignment. Decorative: the node's hit
// area stays the full allotted rect; use [immi.AspectRatio] around the leaf
// when the hit area must match the letterboxed image.
func Image(img immi.Image, align immi.Alignment) immi.Visual {
	return imageVisual{img: img, mode: fitContain, align: align}
}

// StretchImage draws the image stretched over the node's whole rect.
func StretchImage(img immi.Image) immi.Visual {
	return imageVisual{img: img, mode: fitStretch}
}

// CoverImage draws the image grown until it covers the node's whole rect,
// keeping its aspect ratio and overflowing one axis.
func CoverImage(img immi.Image, align immi.Alignment) immi.Visual {
	return imageVisual{img: img, mode: fitCover, align: align}
}

func (v imageVisual) Draw(dc *immi.DrawContext) error {
	mat := v.target(dc)
	return dc.Emit(immi.DrawCommand{
		Kind:      immi.CommandImage,
		Transform: mat,
		Image:     v.img,
		Corners:   immi.DefaultUV,
	})
}

// target returns the transform of the box the image is drawn into.
func (v imageVisual) target(dc *immi.DrawContext) immi.Transform {
	if v.mode == fitStretch {
		return dc.Transform
	}
	mat, _ := immi.Place(dc.Transform, dc.Rect, immi.PlaceSpec{
		Horizontal:     v.align.Horizontal,
		Vertical:       v.align.Vertical,
		WidthPerHeight: dc.Canvas.ImageWidthPerHeight(v.img),
		Cover:          v.mode == fitCover,
	})
	return mat
}
