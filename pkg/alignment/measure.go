package alignment

import "github.com/spf13/pflag"

// ErrorMeasure selects the face-size normalization applied to landmark
// localization errors.
type ErrorMeasure int

const (
	MeasurePupils ErrorMeasure = iota
	MeasureCorners
	MeasureHeight
	MeasureDiagonal
)

func (m ErrorMeasure) String() string {
	switch m {
	case MeasurePupils:
		return "pupils"
	case MeasureCorners:
		return "corners"
	case MeasureHeight:
		return "height"
	default:
		return "diagonal"
	}
}

// ParseMeasure maps option text to a measure. Anything that is not pupils,
// corners or height resolves to diagonal.
func ParseMeasure(s string) ErrorMeasure {
	switch s {
	case "pupils":
		return MeasurePupils
	case "corners":
		return MeasureCorners
	case "height":
		return MeasureHeight
	default:
		return MeasureDiagonal
	}
}

// Config carries the two evaluation options threaded through every
// operation.
type Config struct {
	Measure  ErrorMeasure
	Database string
}

// ParseOptions decodes CLI arguments into a Config. Unregistered flags are
// tolerated and ignored, and on any parse failure the defaults stand
// (measure=height, database=aflw).
func ParseOptions(args []string) Config {
	fs := pflag.NewFlagSet("alignment", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	measure := fs.String("measure", "height", "Select measure [pupils, corners, height, diagonal]")
	database := fs.String("database", "aflw", "Choose database [300w_public, 300w_private, cofw, aflw, wflw, ls3dw, 300wlp, menpo, 3dmenpo, all]")
	_ = fs.Parse(args)
	return Config{Measure: ParseMeasure(*measure), Database: *database}
}
