package main

import (
	"encoding/json"
	"io/ioutil"

	"gitlab.com/web-doodle/face-alignment/pkg/alignment"
)

// loadAnnotation reads one ground-truth annotation from a JSON file.
func loadAnnotation(path string) (alignment.FaceAnnotation, error) {
	var ann alignment.FaceAnnotation
	file, err := ioutil.ReadFile(path)
	if err != nil {
		return ann, err
	}
	err = json.Unmarshal(file, &ann)
	return ann, err
}

// loadAnnotations reads an array of detected-face annotations from a JSON
// file.
func loadAnnotations(path string) ([]alignment.FaceAnnotation, error) {
	file, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var faces []alignment.FaceAnnotation
	err = json.Unmarshal(file, &faces)
	return faces, err
}
