// A script to keep annotated copies of images whose mean error exceeds the database threshold

package main

import (
	"log"
	"os"

	cli "github.com/spf13/cobra"

	"gitlab.com/web-doodle/face-alignment/pkg/alignment"
)

var (
	saveCmd = &cli.Command{
		Use:   "save",
		Short: "Save",
		Long:  "Persist annotated images whose mean normalized error exceeds the threshold",
		Run:   Save,
	}
)

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.PersistentFlags().StringP("ann", "a", "", "Path to ground-truth annotation JSON file.")
	saveCmd.PersistentFlags().StringP("faces", "f", "", "Path to detected faces JSON file.")
	saveCmd.PersistentFlags().StringP("output", "o", "", "Path to local output directory. Defaults to FACE_ALIGN_OUTPUT.")
	saveCmd.PersistentFlags().Bool("points", false, "Also export pose-dependent landmark subsets as .pts files (menpo only).")

	_ = saveCmd.MarkFlagRequired("ann")
	_ = saveCmd.MarkFlagRequired("faces")
}

func Save(cmd *cli.Command, args []string) {
	annPath, _ := cmd.Flags().GetString("ann")
	facesPath, _ := cmd.Flags().GetString("faces")
	outputDir, _ := cmd.Flags().GetString("output")
	points, _ := cmd.Flags().GetBool("points")

	ann, err := loadAnnotation(annPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	faces, err := loadAnnotations(facesPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	envConfig := NewEnvConfig()
	if outputDir == "" {
		outputDir = envConfig.OutputDir
	}
	err = os.MkdirAll(outputDir, 0755)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	fa := alignment.New(newAlignmentConfig(cmd))
	if err := fa.Save(outputDir, faces, ann); err != nil {
		log.Fatalln("ERROR:", err)
	}
	log.Printf("Annotated images above threshold %v saved to %s\n", fa.Threshold(), outputDir)

	if points && fa.Config.Database == "menpo" {
		err = os.MkdirAll(envConfig.PointsDir, 0755)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		if err := fa.ExportPoints(envConfig.PointsDir, faces); err != nil {
			log.Fatalln("ERROR:", err)
		}
		log.Printf("Landmark points exported to %s\n", envConfig.PointsDir)
	}
}
