package alignment

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

// Viewer is a drawing surface for landmark skeletons. Thickness follows the
// OpenCV convention: a negative value fills the shape.
type Viewer interface {
	Line(x1, y1, x2, y2 float64, thickness int, c color.RGBA)
	Circle(x, y float64, radius, thickness int, c color.RGBA)
}

// MatCanvas draws onto a gocv Mat. The same canvas serves on-screen windows
// and off-screen image annotation.
type MatCanvas struct {
	mat *gocv.Mat
}

func NewMatCanvas(mat *gocv.Mat) *MatCanvas {
	return &MatCanvas{mat: mat}
}

func (c *MatCanvas) Line(x1, y1, x2, y2 float64, thickness int, col color.RGBA) {
	gocv.Line(c.mat, pt(x1, y1), pt(x2, y2), col, thickness)
}

func (c *MatCanvas) Circle(x, y float64, radius, thickness int, col color.RGBA) {
	gocv.Circle(c.mat, pt(x, y), radius, col, thickness)
}

func pt(x, y float64) image.Point {
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}
