package doodle

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Texture is a drawable that draws a decoded bitmap, resampled to its
// resolved bounds.
type Texture struct {
	Node

	// SizeToImage makes the texture adopt the pixel size of its image
	// whenever the image is set.
	SizeToImage bool

	img image.Image
}

// NewTexture creates a texture with no image.
func NewTexture() *Texture {
	return &Texture{}
}

// Image returns the image this texture draws, or nil if none is set.
func (t *Texture) Image() image.Image {
	return t.img
}

// SetImage sets the image this texture draws. With SizeToImage enabled
// the texture's size is updated to the image's pixel size.
func (t *Texture) SetImage(img image.Image) {
	t.img = img
	if t.SizeToImage && img != nil {
		bounds := img.Bounds()
		t.Size = Vec2{X: float64(bounds.Dx()), Y: float64(bounds.Dy())}
	}
}

// Render resamples the image to the rounded draw size with bilinear
// filtering. Rendering without an image returns ErrNoImage.
func (t *Texture) Render() (*Pixmap, error) {
	if t.img == nil {
		return nil, ErrNoImage
	}

	size, err := t.DrawSize()
	if err != nil {
		return nil, err
	}
	width, height := roundInt(size.X), roundInt(size.Y)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), t.img, t.img.Bounds(), xdraw.Src, nil)
	return FromImage(dst), nil
}
