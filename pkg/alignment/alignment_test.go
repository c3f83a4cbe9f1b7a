package alignment

import (
	"bytes"
	"image"
	"image/color"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeLine struct {
	x1, y1, x2, y2 float64
	thickness      int
	color          color.RGBA
}

type fakeCircle struct {
	x, y              float64
	radius, thickness int
	color             color.RGBA
}

// fakeViewer records drawing calls instead of rasterizing them.
type fakeViewer struct {
	lines   []fakeLine
	circles []fakeCircle
}

func (v *fakeViewer) Line(x1, y1, x2, y2 float64, thickness int, c color.RGBA) {
	v.lines = append(v.lines, fakeLine{x1, y1, x2, y2, thickness, c})
}

func (v *fakeViewer) Circle(x, y float64, radius, thickness int, c color.RGBA) {
	v.circles = append(v.circles, fakeCircle{x, y, radius, thickness, c})
}

func TestThreshold(t *testing.T) {
	cases := []struct {
		database string
		measure  ErrorMeasure
		want     float64
	}{
		{"wflw", MeasureHeight, 4.0},
		{"wflw", MeasureDiagonal, 3.0},
		{"wflw", MeasurePupils, 10.0},
		{"wflw", MeasureCorners, 10.0},
		{"aflw", MeasureHeight, 4.0},
		{"aflw", MeasureDiagonal, 3.0},
		{"other", MeasurePupils, 8.0},
		{"other", MeasureCorners, 8.0},
	}
	for _, c := range cases {
		fa := New(Config{Measure: c.measure, Database: c.database})
		if got := fa.Threshold(); got != c.want {
			t.Errorf("Threshold(%s, %s) = %v, want %v", c.database, c.measure, got, c.want)
		}
	}
}

func TestShowOcclusionBoundary(t *testing.T) {
	fa := New(Config{})
	ann := FaceAnnotation{
		Bbox: image.Rect(0, 0, 100, 100),
		Parts: []FacePart{
			{Label: "brow", Landmarks: []FaceLandmark{
				{X: 0, Y: 0, Occluded: 0.5, FeatureIdx: 1},
				{X: 10, Y: 0, Occluded: 0.5, FeatureIdx: 2},
				{X: 20, Y: 0, Occluded: 0.49, FeatureIdx: 3},
			}},
		},
	}

	v := &fakeViewer{}
	fa.Show(v, nil, ann)

	if len(v.lines) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(v.lines))
	}
	// Both endpoints at exactly 0.5 take the occluded color.
	if v.lines[0].color != colorBlue {
		t.Errorf("segment with both endpoints at 0.5 = %v, want blue", v.lines[0].color)
	}
	// One visible endpoint is enough for the visible color.
	if v.lines[1].color != colorCyan {
		t.Errorf("segment with one visible endpoint = %v, want cyan", v.lines[1].color)
	}
	if len(v.circles) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(v.circles))
	}
	if v.circles[0].color != colorBlue || v.circles[2].color != colorCyan {
		t.Errorf("marker colors = %v / %v, want blue / cyan", v.circles[0].color, v.circles[2].color)
	}
}

func TestShowDetectedFaces(t *testing.T) {
	fa := New(Config{})
	ann := FaceAnnotation{
		Bbox: image.Rect(0, 0, 100, 1000),
		Parts: []FacePart{
			{Label: "jaw", Landmarks: []FaceLandmark{
				{X: 0, Y: 0, FeatureIdx: 1},
				{X: 10, Y: 0, FeatureIdx: 2},
			}},
		},
	}
	face := FaceAnnotation{
		Parts: []FacePart{
			{Label: "jaw", Landmarks: []FaceLandmark{
				{X: 1, Y: 1, Occluded: 0.2, FeatureIdx: 1},
				{X: 11, Y: 1, Occluded: 0.8, FeatureIdx: 2},
			}},
		},
	}

	v := &fakeViewer{}
	fa.Show(v, []FaceAnnotation{face}, ann)

	if len(v.circles) != 4 {
		t.Fatalf("expected 4 markers, got %d", len(v.circles))
	}
	// Marker sizes come from the ground-truth bounding box for both
	// skeletons.
	for _, c := range v.circles {
		if c.radius != 10 {
			t.Errorf("marker radius = %d, want 10", c.radius)
		}
		if c.thickness != -1 {
			t.Errorf("marker thickness = %d, want filled (-1)", c.thickness)
		}
	}
	if v.circles[2].color != colorGreen {
		t.Errorf("visible detected marker = %v, want green", v.circles[2].color)
	}
	if v.circles[3].color != colorRed {
		t.Errorf("occluded detected marker = %v, want red", v.circles[3].color)
	}
	// Detected segment with one visible endpoint stays green.
	if v.lines[1].color != colorGreen {
		t.Errorf("detected segment = %v, want green", v.lines[1].color)
	}
}

func TestEvaluateRecords(t *testing.T) {
	ann := FaceAnnotation{
		Filename: "faces/img.jpg",
		Parts: []FacePart{
			{Label: "jaw", Landmarks: []FaceLandmark{
				{X: 0, Y: 0, Occluded: 0.25, FeatureIdx: 1},
				{X: 10, Y: 0, Occluded: 0.75, FeatureIdx: 2},
			}},
		},
	}
	face := FaceAnnotation{
		Parts: []FacePart{
			{Label: "jaw", Landmarks: []FaceLandmark{
				{X: 1, Y: 1, Occluded: 0.5, FeatureIdx: 1},
			}},
		},
	}

	fa := New(Config{Measure: MeasureHeight})
	fa.Errors = func(face, ann FaceAnnotation, measure ErrorMeasure) ([]int, []float64) {
		return []int{1, 2, 9}, []float64{1.5, 2.5, 3.5}
	}

	var buf bytes.Buffer
	if err := fa.Evaluate(&buf, []FaceAnnotation{face}, ann); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected one line per index, got %d: %q", len(lines), lines)
	}

	// Matched on both sides: tag, filename, index, error, gt occ, det occ.
	fields := strings.Fields(lines[0])
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields, got %d: %q", len(fields), lines[0])
	}
	want := []string{"FaceAlignment", "faces/img.jpg", "1", "1.5", "0.25", "0.5"}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}

	// Feature 2 exists only in the ground truth: detected occlusion omitted.
	fields = strings.Fields(lines[1])
	if len(fields) != 5 {
		t.Fatalf("expected 5 fields, got %d: %q", len(fields), lines[1])
	}
	if fields[4] != "0.75" {
		t.Errorf("gt occlusion = %q, want 0.75", fields[4])
	}

	// Feature 9 is matched on neither side: both occlusions omitted.
	fields = strings.Fields(lines[2])
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d: %q", len(fields), lines[2])
	}
}

func TestEvaluateNoDetections(t *testing.T) {
	fa := New(Config{})
	var buf bytes.Buffer
	if err := fa.Evaluate(&buf, nil, FaceAnnotation{Filename: "img.jpg"}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNextFreePath(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0_img.jpg", "1_img.jpg"} {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := nextFreePath(dir, "img.jpg")
	if want := filepath.Join(dir, "2_img.jpg"); got != want {
		t.Errorf("nextFreePath = %q, want %q", got, want)
	}

	// A different basename is not blocked by the existing files.
	got = nextFreePath(dir, "other.jpg")
	if want := filepath.Join(dir, "0_other.jpg"); got != want {
		t.Errorf("nextFreePath = %q, want %q", got, want)
	}
}

func TestSaveMissingImage(t *testing.T) {
	fa := New(Config{})
	err := fa.Save(os.TempDir(), nil, FaceAnnotation{Filename: "does-not-exist.jpg"})
	if err == nil {
		t.Error("expected an error for an unloadable image")
	}
}
