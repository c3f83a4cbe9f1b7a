package alignment

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gocv.io/x/gocv"
)

// Skeleton colors, matching the BGR scalars of the original OpenCV tooling.
var (
	colorCyan  = color.RGBA{G: 122, B: 255}
	colorBlue  = color.RGBA{B: 255}
	colorGreen = color.RGBA{G: 255}
	colorRed   = color.RGBA{R: 255}
)

// FaceAlignment evaluates and visualizes landmark alignment results against
// a ground-truth annotation. Errors is the normalized-error routine; New
// defaults it to NormalizedErrors and callers may swap it out.
type FaceAlignment struct {
	Config Config
	Errors ErrorFunc
}

func New(cfg Config) *FaceAlignment {
	return &FaceAlignment{Config: cfg, Errors: NormalizedErrors}
}

// ComponentClass is the record tag written at the start of every
// evaluation line.
func (fa *FaceAlignment) ComponentClass() string {
	return "FaceAlignment"
}

// Show renders the ground-truth skeleton (cyan visible, blue occluded) and
// every detected face's skeleton (green visible, red occluded) onto the
// viewer. Marker sizes scale with the ground-truth bounding box.
func (fa *FaceAlignment) Show(v Viewer, faces []FaceAnnotation, ann FaceAnnotation) {
	radius := MarkerRadius(ann)
	thickness := MarkerThickness(ann)
	drawSkeleton(v, ann, radius, thickness, colorCyan, colorBlue)
	for _, face := range faces {
		drawSkeleton(v, face, radius, thickness, colorGreen, colorRed)
	}
}

// drawSkeleton joins consecutive landmarks of each part with segments and
// marks every landmark with a filled circle. A segment takes the occluded
// color only when both endpoints are occluded.
func drawSkeleton(v Viewer, ann FaceAnnotation, radius, thickness int, visible, occluded color.RGBA) {
	for _, part := range ann.Parts {
		for i, lm := range part.Landmarks {
			if i+1 < len(part.Landmarks) {
				next := part.Landmarks[i+1]
				c := occluded
				if lm.Visible() || next.Visible() {
					c = visible
				}
				v.Line(lm.X, lm.Y, next.X, next.Y, thickness, c)
			}
			c := occluded
			if lm.Visible() {
				c = visible
			}
			v.Circle(lm.X, lm.Y, radius, -1, c)
		}
	}
}

// Evaluate writes one record per matched landmark of every detected face:
// tag, ground-truth filename, feature index, normalized error, then the
// ground-truth and detected occlusion scores. An occlusion field is omitted
// when that side has no landmark with the index.
func (fa *FaceAlignment) Evaluate(w io.Writer, faces []FaceAnnotation, ann FaceAnnotation) error {
	groundTruth := ann.LandmarkIndex()
	for _, face := range faces {
		detected := face.LandmarkIndex()
		indices, errs := fa.Errors(face, ann, fa.Config.Measure)
		for j, idx := range indices {
			fields := []string{fa.ComponentClass(), ann.Filename, strconv.Itoa(idx), formatFloat(errs[j])}
			if lm, ok := groundTruth[idx]; ok {
				fields = append(fields, formatFloat(lm.Occluded))
			}
			if lm, ok := detected[idx]; ok {
				fields = append(fields, formatFloat(lm.Occluded))
			}
			if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// Threshold is the mean-error bar above which Save persists an annotated
// image. Measure overrides win over the database override.
func (fa *FaceAlignment) Threshold() float64 {
	threshold := 8.0
	if fa.Config.Database == "wflw" {
		threshold = 10.0
	}
	if fa.Config.Measure == MeasureHeight {
		threshold = 4.0
	}
	if fa.Config.Measure == MeasureDiagonal {
		threshold = 3.0
	}
	return threshold
}

// Save draws both skeletons onto the ground-truth image, overlays each
// detected face's mean normalized error and writes the annotated image into
// dirpath when the mean exceeds the threshold. Faces without matched
// landmarks are skipped.
func (fa *FaceAlignment) Save(dirpath string, faces []FaceAnnotation, ann FaceAnnotation) error {
	img := gocv.IMRead(ann.Filename, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("cannot load image %v", ann.Filename)
	}
	defer img.Close()

	threshold := fa.Threshold()
	radius := MarkerRadius(ann)
	thickness := MarkerThickness(ann)
	canvas := NewMatCanvas(&img)
	drawSkeleton(canvas, ann, radius, thickness, colorCyan, colorBlue)
	for _, face := range faces {
		drawSkeleton(canvas, face, radius, thickness, colorGreen, colorRed)
		_, errs := fa.Errors(face, ann, fa.Config.Measure)
		if len(errs) == 0 {
			continue
		}
		var mean float64
		for _, e := range errs {
			mean += e
		}
		mean /= float64(len(errs))
		gocv.PutText(&img, formatFloat(mean), image.Pt(10, img.Rows()-10), gocv.FontHersheySimplex, 1, colorRed, 1)
		if mean <= threshold {
			continue
		}
		outPath := nextFreePath(dirpath, filepath.Base(face.Filename))
		if ok := gocv.IMWrite(outPath, img); !ok {
			return fmt.Errorf("cannot write image %v", outPath)
		}
	}
	return nil
}

// nextFreePath returns <dirpath>/<n>_<basename> for the smallest
// non-negative n whose path does not exist yet.
func nextFreePath(dirpath, basename string) string {
	for n := 0; ; n++ {
		p := filepath.Join(dirpath, fmt.Sprintf("%d_%s", n, basename))
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return p
		}
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
