package alignment

import (
	"image"
	"math"
)

// FaceLandmark is a single 2D facial keypoint. FeatureIdx is the stable
// identity shared between ground-truth and detected landmarks; Occluded is
// an occlusion score in [0,1].
type FaceLandmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Occluded   float64 `json:"occluded"`
	FeatureIdx int     `json:"feature_idx"`
}

// Visible reports whether the landmark counts as visible. The occluded
// branch starts at 0.5 exactly.
func (l FaceLandmark) Visible() bool {
	return l.Occluded < 0.5
}

// FacePart is a named, ordered sub-curve of landmarks (jaw, eye, brow, ...).
type FacePart struct {
	Label     string         `json:"label"`
	Landmarks []FaceLandmark `json:"landmarks"`
}

// FaceAnnotation describes one face on an image: bounding box, source image
// file, landmark parts and an optional head pose (yaw in degrees, positive
// when the face turns right). Ground truth and detections share this type.
type FaceAnnotation struct {
	Filename string          `json:"filename"`
	Bbox     image.Rectangle `json:"bbox"`
	Parts    []FacePart      `json:"parts"`
	Headpose float64         `json:"headpose,omitempty"`
}

// LandmarkIndex maps feature indices to landmarks across all parts. The
// first occurrence wins, keeping first-match lookup semantics for feature
// indices shared between parts.
func (a FaceAnnotation) LandmarkIndex() map[int]FaceLandmark {
	index := make(map[int]FaceLandmark)
	for _, part := range a.Parts {
		for _, lm := range part.Landmarks {
			if _, ok := index[lm.FeatureIdx]; !ok {
				index[lm.FeatureIdx] = lm
			}
		}
	}
	return index
}

// MarkerRadius is the circle radius used when drawing landmarks, scaled to
// the face bounding box with a floor of 3.
func MarkerRadius(ann FaceAnnotation) int {
	return atLeast(int(math.Round(float64(ann.Bbox.Dy())*0.01)), 3)
}

// MarkerThickness is the segment thickness, scaled like MarkerRadius with a
// floor of 2.
func MarkerThickness(ann FaceAnnotation) int {
	return atLeast(int(math.Round(float64(ann.Bbox.Dy())*0.005)), 2)
}

func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
