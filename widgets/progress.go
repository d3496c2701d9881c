package widgets

import (
	"math"

	"github.com/tomaka/immi"
)

// progressVisual fills a growing portion of the node with the full image
// over the empty image.
type progressVisual struct {
	empty, full immi.Image
	progress    float64
	direction   immi.HorizontalAlignment
	fit         bool
	align       immi.Alignment
}

// ProgressBar draws a horizontal progress bar stretched over the node's
// rect. progress is clamped to [0, 1]; direction anchors the filled part
// (HLeft fills left to right, HRight right to left, HCenter outward from
// the middle). The full image is drawn over the empty one, so it can also
// be just the difference between the two.
func ProgressBar(empty, full immi.Image, progress float64, direction immi.HorizontalAlignment) immi.Visual {
	return progressVisual{empty: empty, full: full, progress: progress, direction: direction}
}

// FitProgressBar is like [ProgressBar] but keeps the empty image's aspect
// ratio, shrinking the bar inside the node and positioning it by the
// alignment. The full image is stretched to the same box.
func FitProgressBar(empty, full immi.Image, progress float64, direction immi.HorizontalAlignment, align immi.Alignment) immi.Visual {
	return progressVisual{
		empty:     empty,
		full:      full,
		progress:  progress,
		direction: direction,
		fit:       true,
		align:     align,
	}
}

// clampProgress pins a progress value to [0, 1], treating NaN as zero.
func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (v progressVisual) Draw(dc *immi.DrawContext) error {
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

	var xoff float64
	switch v.direction {
	case immi.HLeft:
		xoff = 0
	case immi.HRight:
		xoff = 1 - p
	default:
		xoff = (1 - p) / 2
	}
	fill := box.Mul(immi.Translate(xoff, 0)).Mul(immi.ScaleXY(p, 1))
	return dc.Emit(immi.DrawCommand{
		Kind:      immi.CommandImage,
		Transform: fill,
		Image:     v.full,
		Corners:   [4]immi.Vec2{{X: 0, Y: 0}, {X: p, Y: 0}, {X: p, Y: 1}, {X: 0, Y: 1}},
	})
}
