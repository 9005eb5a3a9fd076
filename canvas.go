package sr3d

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrInvalidSize is returned when a canvas is created with a non-positive
// width or height.
var ErrInvalidSize = errors.New("sr3d: invalid canvas size")

// Canvas is a fixed-size raster target with a depth buffer.
//
// The color buffer holds 3 bytes per pixel in blue-green-red order, row y
// starting at byte y*width*3. The depth buffer holds one value per pixel;
// larger values are nearer to the viewer. Both buffers are allocated once
// and never resized.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []uint8
	depth  []float64
	color  Color
}

// CheckSize reports whether a width x height canvas can be created and
// encoded: both sides positive and at most math.MaxInt32, and the BMP
// file size representable in the header's 32-bit size field.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	// Both sides fit in 31 bits, so the product cannot overflow uint64.
	size := uint64(width)*uint64(height)*3 + bmpPixelOffset
	if size > math.MaxUint32 || size > math.MaxInt {
		return fmt.Errorf("%w: %dx%d exceeds the 4 GiB BMP limit", ErrInvalidSize, width, height)
	}
	return nil
}

// NewCanvas creates a black canvas with an empty depth buffer.
// The drawing color starts as White. Sizes rejected by CheckSize return
// ErrInvalidSize.
func NewCanvas(width, height int) (*Canvas, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}

	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
		depth:  make([]float64, width*height),
		color:  White,
	}
	c.Clear()
	return c, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw color buffer (BGR, row-major, row 0 first).
func (c *Canvas) Data() []uint8 {
	return c.pix
}

// Clear resets every pixel to black and every depth to negative infinity.
// The buffers are reused.
func (c *Canvas) Clear() {
	clear(c.pix)
	inf := math.Inf(-1)
	for i := range c.depth {
		c.depth[i] = inf
	}
}

// SetColor sets the color used by Point, DrawLine and FillTriangle.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// Color returns the current drawing color.
func (c *Canvas) Color() Color {
	return c.color
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the canvas are silently ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	i := (y*c.width + x) * 3
	c.pix[i+0] = col.B
	c.pix[i+1] = col.G
	c.pix[i+2] = col.R
}

// Point plots a single pixel in the current drawing color.
func (c *Canvas) Point(x, y int) {
	c.SetPixel(x, y, c.color)
}

// PixelAt returns the color of a single pixel, or Black outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	if !c.inBounds(x, y) {
		return Black
	}
	i := (y*c.width + x) * 3
	return Color{B: c.pix[i+0], G: c.pix[i+1], R: c.pix[i+2]}
}

// DepthAt returns the stored depth of a pixel, or negative infinity outside
// the canvas.
func (c *Canvas) DepthAt(x, y int) float64 {
	if !c.inBounds(x, y) {
		return math.Inf(-1)
	}
	return c.depth[y*c.width+x]
}

// DrawLine draws the segment from (x0, y0) to (x1, y1), both endpoints
// included, in the current drawing color.
//
// The major axis is always stepped one pixel at a time: steep lines are
// transposed before stepping and transposed back when plotting.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := absInt(y1 - y0)
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	offset := 0
	threshold := dx
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			c.Point(y, x)
		} else {
			c.Point(x, y)
		}

		offset += dy * 2
		if offset >= threshold {
			y += ystep
			threshold += dx * 2
		}
	}
}

// FillTriangle fills the triangle abc in the current drawing color.
//
// X and Y of each vertex are pixel coordinates; Z is depth. Every pixel
// of the bounding box whose barycentric weights are all non-negative gets
// a depth interpolated from the vertices, and is written only if that
// depth is strictly greater than the stored one. Equal depths keep the
// first writer. Degenerate triangles draw nothing.
func (c *Canvas) FillTriangle(a, b, cv Vec3) {
	pa, pb, pc := a.XY(), b.XY(), cv.XY()
	xmax, ymax, xmin, ymin := BBox(pa, pb, pc)

	// Pixels outside the canvas are never written, so the scan is clipped
	// up front.
	xmin, ymin = max(xmin, 0), max(ymin, 0)
	xmax, ymax = min(xmax, c.width-1), min(ymax, c.height-1)

	for x := xmin; x <= xmax; x++ {
		for y := ymin; y <= ymax; y++ {
			w := Barycentric(pa, pb, pc, V2(float64(x), float64(y)))
			if !w.Inside() {
				continue
			}

			z := w.Interpolate(a.Z, b.Z, cv.Z)
			i := y*c.width + x
			if z > c.depth[i] {
				c.depth[i] = z
				c.SetPixel(x, y, c.color)
			}
		}
	}
}

// At implements the image.Image interface.
// Image row 0 is the last buffer row, which is how a BMP viewer shows the
// encoded file.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(x, c.height-1-y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
