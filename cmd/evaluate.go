// A script to stream per-landmark normalized-error records for a set of detections

package main

import (
	"log"
	"os"

	cli "github.com/spf13/cobra"

	"gitlab.com/web-doodle/face-alignment/pkg/alignment"
)

var (
	evaluateCmd = &cli.Command{
		Use:   "evaluate",
		Short: "Evaluate",
		Long:  "Write one error/occlusion record per matched landmark",
		Run:   Evaluate,
	}
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.PersistentFlags().StringP("ann", "a", "", "Path to ground-truth annotation JSON file.")
	evaluateCmd.PersistentFlags().StringP("faces", "f", "", "Path to detected faces JSON file.")
	evaluateCmd.PersistentFlags().StringP("output", "o", "", "Path to output records file. Defaults to stdout.")

	_ = evaluateCmd.MarkFlagRequired("ann")
	_ = evaluateCmd.MarkFlagRequired("faces")
}

func Evaluate(cmd *cli.Command, args []string) {
	annPath, _ := cmd.Flags().GetString("ann")
	facesPath, _ := cmd.Flags().GetString("faces")
	outputPath, _ := cmd.Flags().GetString("output")

	ann, err := loadAnnotation(annPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	faces, err := loadAnnotations(facesPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	out := os.Stdout
	if outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		defer out.Close()
	}

	fa := alignment.New(newAlignmentConfig(cmd))
	if err := fa.Evaluate(out, faces, ann); err != nil {
		log.Fatalln("ERROR:", err)
	}
}
