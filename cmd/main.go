/**
 * Batch evaluation tooling for face-landmark alignment results.
 *
 * Overlays ground-truth and predicted skeletons, streams per-landmark
 * normalized errors and keeps annotated copies of the worst images.
 * Requires opencv4 as a dependency.
 */

package main

import (
	"log"

	cli "github.com/spf13/cobra"

	"gitlab.com/web-doodle/face-alignment/pkg/alignment"
)

var (
	// The Root Cli Handler
	rootCmd = &cli.Command{
		Use:                "face-align",
		Short:              "Face alignment evaluation",
		FParseErrWhitelist: cli.FParseErrWhitelist{UnknownFlags: true},
	}
)

func init() {
	rootCmd.PersistentFlags().StringP("measure", "m", "height", "Select measure [pupils, corners, height, diagonal]")
	rootCmd.PersistentFlags().StringP("database", "b", "aflw", "Choose database [300w_public, 300w_private, cofw, aflw, wflw, ls3dw, 300wlp, menpo, 3dmenpo, all]")
}

func newAlignmentConfig(cmd *cli.Command) alignment.Config {
	measure, _ := cmd.Flags().GetString("measure")
	database, _ := cmd.Flags().GetString("database")
	return alignment.Config{Measure: alignment.ParseMeasure(measure), Database: database}
}

func main() {
	// Run the program
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln("ERROR:", err)
	}
}
