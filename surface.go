package gg

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Surface)(nil)
	_ draw.Image  = (*Surface)(nil)
)

// MaxSurfaceDimension is the largest width or height a Surface may
// have.
const MaxSurfaceDimension = 16384

// MaxSurfacePixels is the largest pixel count (width*height) a Surface
// may have.
const MaxSurfacePixels = 1 << 28

// Surface owns an H x W x 4 RGBA byte buffer plus stride: the
// destination pixel buffer for a Context. It implements both
// image.Image (read-only) and draw.Image (read-write), so it
// interoperates with image/png and other stdlib image consumers for
// test fixtures and debugging, even though file encoding is an
// external collaborator outside this engine's core scope.
type Surface struct {
	width  int
	height int
	data   []uint8 // straight RGBA, row-major, top-down, 4 bytes/pixel
}

// NewSurface creates a surface of the given dimensions, cleared to
// transparent black. Returns ErrInvalidDimension if width or height is
// outside [1,16384], or if width*height exceeds 2^28.
func NewSurface(width, height int) (*Surface, error) {
	if width < 1 || width > MaxSurfaceDimension || height < 1 || height > MaxSurfaceDimension {
		return nil, ErrInvalidDimension
	}
	if width*height > MaxSurfacePixels {
		return nil, ErrInvalidDimension
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per row (4 * width).
func (s *Surface) Stride() int { return s.width * 4 }

// Data returns the raw pixel buffer (straight RGBA, row-major).
func (s *Surface) Data() []uint8 { return s.data }

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	clone := &Surface{width: s.width, height: s.height, data: make([]uint8, len(s.data))}
	copy(clone.data, s.data)
	return clone
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates
// are silently ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, or Transparent if
// (x, y) is out of range.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Clear fills the entire surface with c.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// FillSpan fills a horizontal span [x1, x2) on row y with a solid
// color, with no blending (used when a draw is known fully opaque).
func (s *Surface) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}
	start := (y*s.width + x1) * 4
	for i := 0; i < x2-x1; i++ {
		idx := start + i*4
		s.data[idx+0] = c.R
		s.data[idx+1] = c.G
		s.data[idx+2] = c.B
		s.data[idx+3] = c.A
	}
}

// FillSpanBlend fills a horizontal span [x1, x2) on row y, compositing
// c over the existing destination with source-over. Used by fast
// shape paths (fastshapes.go) for non-opaque solid fills.
func (s *Surface) FillSpanBlend(x1, x2, y int, c Color) {
	if c.A == 255 {
		s.FillSpan(x1, x2, y, c)
		return
	}
	if y < 0 || y >= s.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}
	for x := x1; x < x2; x++ {
		dst := s.GetPixel(x, y)
		s.SetPixel(x, y, compositeSourceOverStraight(c, dst))
	}
}

// ToImage converts the surface to a standard library image.RGBA. The
// result is in straight alpha (image.RGBA expects premultiplied
// internally, so callers needing strict stdlib semantics should
// premultiply first; the core engine never calls this, it exists for
// test fixtures and debugging).
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// SavePNG writes the surface to path as a PNG file. This is a test
// and debugging convenience, not part of the core engine: file
// encoding is an external collaborator.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, s.ToImage())
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	c := s.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	s.SetPixel(x, y, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
