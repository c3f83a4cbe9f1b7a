package alignment

import "math"

// ErrorFunc computes per-landmark localization errors of a detected face
// against the ground truth, normalized by the given measure. It returns
// parallel slices of feature indices and errors in percent of the measure.
type ErrorFunc func(face, ann FaceAnnotation, measure ErrorMeasure) (indices []int, errors []float64)

// NormalizedErrors is the default ErrorFunc. Every ground-truth landmark
// with a matching feature index in the detected face contributes one
// record, in ground-truth part order. A face whose normalization cannot be
// computed (missing eye parts, empty bounding box) yields no records.
func NormalizedErrors(face, ann FaceAnnotation, measure ErrorMeasure) ([]int, []float64) {
	norm := normalization(ann, measure)
	if norm <= 0 {
		return nil, nil
	}
	detected := face.LandmarkIndex()
	var indices []int
	var errs []float64
	for _, part := range ann.Parts {
		for _, gt := range part.Landmarks {
			det, ok := detected[gt.FeatureIdx]
			if !ok {
				continue
			}
			indices = append(indices, gt.FeatureIdx)
			errs = append(errs, math.Hypot(det.X-gt.X, det.Y-gt.Y)/norm*100)
		}
	}
	return indices, errs
}

func normalization(ann FaceAnnotation, measure ErrorMeasure) float64 {
	switch measure {
	case MeasurePupils:
		lx, ly, lok := partCentroid(ann, "leye")
		rx, ry, rok := partCentroid(ann, "reye")
		if !lok || !rok {
			return 0
		}
		return math.Hypot(rx-lx, ry-ly)
	case MeasureCorners:
		l, lok := outerCorner(ann, "leye", false)
		r, rok := outerCorner(ann, "reye", true)
		if !lok || !rok {
			return 0
		}
		return math.Hypot(r.X-l.X, r.Y-l.Y)
	case MeasureHeight:
		return float64(ann.Bbox.Dy())
	default:
		return math.Hypot(float64(ann.Bbox.Dx()), float64(ann.Bbox.Dy()))
	}
}

func partCentroid(ann FaceAnnotation, label string) (x, y float64, ok bool) {
	for _, part := range ann.Parts {
		if part.Label != label || len(part.Landmarks) == 0 {
			continue
		}
		for _, lm := range part.Landmarks {
			x += lm.X
			y += lm.Y
		}
		n := float64(len(part.Landmarks))
		return x / n, y / n, true
	}
	return 0, 0, false
}

// outerCorner picks the outermost eye-corner landmark of a part: the
// leftmost one for the left eye, the rightmost one for the right eye.
func outerCorner(ann FaceAnnotation, label string, rightmost bool) (FaceLandmark, bool) {
	for _, part := range ann.Parts {
		if part.Label != label || len(part.Landmarks) == 0 {
			continue
		}
		corner := part.Landmarks[0]
		for _, lm := range part.Landmarks[1:] {
			if rightmost && lm.X > corner.X {
				corner = lm
			}
			if !rightmost && lm.X < corner.X {
				corner = lm
			}
		}
		return corner, true
	}
	return FaceLandmark{}, false
}
