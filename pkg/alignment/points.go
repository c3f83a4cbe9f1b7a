package alignment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pose-dependent menpo landmark subsets.
var (
	semifrontalPoints  = []int{101, 102, 103, 104, 105, 106, 107, 108, 24, 110, 111, 112, 113, 114, 115, 116, 117, 1, 119, 2, 121, 3, 4, 124, 5, 126, 6, 128, 129, 130, 17, 16, 133, 134, 135, 18, 7, 138, 139, 8, 141, 142, 11, 144, 145, 12, 147, 148, 20, 150, 151, 22, 153, 154, 21, 156, 157, 23, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168}
	rightProfilePoints = []int{101, 102, 103, 104, 105, 106, 107, 108, 24, 110, 111, 112, 1, 119, 2, 121, 128, 129, 130, 17, 133, 16, 139, 138, 7, 142, 141, 22, 151, 150, 20, 160, 159, 23, 163, 162, 161, 168, 167}
	leftProfilePoints  = []int{117, 116, 115, 114, 113, 112, 111, 110, 24, 108, 107, 106, 6, 126, 5, 124, 128, 129, 130, 17, 135, 18, 144, 145, 12, 147, 148, 22, 153, 154, 21, 156, 157, 23, 163, 164, 165, 166, 167}
)

// pointsSubset picks the landmark subset for a face: the full semifrontal
// set when the image sits in a "semifrontal" directory, otherwise a profile
// set by head-pose sign.
func pointsSubset(face FaceAnnotation) []int {
	pose := filepath.Base(filepath.Dir(face.Filename))
	switch {
	case pose == "semifrontal":
		return semifrontalPoints
	case face.Headpose > 0:
		return rightProfilePoints
	default:
		return leftProfilePoints
	}
}

// ExportPoints writes one .pts file per detected face into dirpath, listing
// the positions of the pose-dependent landmark subset found in the face.
func (fa *FaceAlignment) ExportPoints(dirpath string, faces []FaceAnnotation) error {
	for _, face := range faces {
		subset := pointsSubset(face)
		index := face.LandmarkIndex()

		basename := filepath.Base(face.Filename)
		name := strings.TrimSuffix(basename, filepath.Ext(basename)) + ".pts"
		f, err := os.Create(filepath.Join(dirpath, name))
		if err != nil {
			return err
		}
		fmt.Fprintln(f, "version: 1")
		fmt.Fprintf(f, "n_points: %d\n", len(subset))
		fmt.Fprintln(f, "{")
		for _, idx := range subset {
			lm, ok := index[idx]
			if !ok {
				continue
			}
			fmt.Fprintf(f, "%s %s\n", formatFloat(lm.X), formatFloat(lm.Y))
		}
		fmt.Fprintln(f, "}")
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
