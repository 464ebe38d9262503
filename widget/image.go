package widget

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Image is a leaf widget displaying a raster image, optionally scaled to
// a fixed square icon size the way tool items render their icons.
type Image struct {
	Base

	src    image.Image
	scaled image.Image

	// iconSize > 0 forces a square rendering of that edge length.
	iconSize int
}

// NewImage creates an image widget. src may be nil for a placeholder.
func NewImage(src image.Image) *Image {
	return &Image{Base: NewBase(), src: src}
}

// SetImage replaces the displayed image and drops any cached scaling.
func (im *Image) SetImage(src image.Image) {
	im.src = src
	im.scaled = nil
}

// SetIconSize forces the image to render as a square icon of the given
// edge length; 0 restores the image's own size.
func (im *Image) SetIconSize(size int) {
	if im.iconSize != size {
		im.iconSize = size
		im.scaled = nil
	}
}

func (im *Image) IconSize() int { return im.iconSize }

// Rendered returns the image as displayed: the source scaled to the icon
// size when one is set, lazily computed and cached.
func (im *Image) Rendered() image.Image {
	if im.src == nil {
		return nil
	}
	if im.iconSize <= 0 {
		return im.src
	}
	if im.scaled == nil {
		b := im.src.Bounds()
		if b.Dx() == im.iconSize && b.Dy() == im.iconSize {
			im.scaled = im.src
		} else {
			dst := image.NewRGBA(image.Rect(0, 0, im.iconSize, im.iconSize))
			xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), im.src, b, xdraw.Over, nil)
			im.scaled = dst
		}
	}
	return im.scaled
}

func (im *Image) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	w, h := 0, 0
	if im.iconSize > 0 {
		w, h = im.iconSize, im.iconSize
	} else if im.src != nil {
		b := im.src.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	if orient == Horizontal {
		return w, w, NoBaseline, NoBaseline
	}
	return h, h, NoBaseline, NoBaseline
}
