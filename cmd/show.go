// A script to preview ground-truth vs predicted landmark skeletons in a window

package main

import (
	"log"

	"github.com/disintegration/imaging"
	cli "github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"gitlab.com/web-doodle/face-alignment/pkg/alignment"
)

var (
	showCmd = &cli.Command{
		Use:   "show",
		Short: "Show",
		Long:  "Display ground-truth and predicted landmark skeletons on the annotated image",
		Run:   Show,
	}
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.PersistentFlags().StringP("ann", "a", "", "Path to ground-truth annotation JSON file.")
	showCmd.PersistentFlags().StringP("faces", "f", "", "Path to detected faces JSON file.")

	_ = showCmd.MarkFlagRequired("ann")
	_ = showCmd.MarkFlagRequired("faces")
}

func Show(cmd *cli.Command, args []string) {
	annPath, _ := cmd.Flags().GetString("ann")
	facesPath, _ := cmd.Flags().GetString("faces")

	ann, err := loadAnnotation(annPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	faces, err := loadAnnotations(facesPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	img, err := imaging.Open(ann.Filename)
	if err != nil {
		log.Fatalf("ERROR: Cannot load image %v - %v\n", ann.Filename, err.Error())
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	defer mat.Close()

	fa := alignment.New(newAlignmentConfig(cmd))
	fa.Show(alignment.NewMatCanvas(&mat), faces, ann)

	envConfig := NewEnvConfig()
	window := gocv.NewWindow(envConfig.WindowTitle)
	defer window.Close()
	window.IMShow(mat)
	window.WaitKey(0)
}
