package config

// AspectRatio selects the fixed canvas size of a render session.
type AspectRatio string

const (
	Landscape AspectRatio = "16:9"
	Portrait  AspectRatio = "9:16"
)

// CanvasSize returns the pixel dimensions for the aspect ratio.
// Unknown values fall back to landscape.
func (a AspectRatio) CanvasSize() (width, height int) {
	if a == Portrait {
		return 720, 1280
	}
	return 1280, 720
}

type Config struct {
	ScriptPath    string
	ImagesPath    string
	AudioPath     string
	WatermarkPath string
	WatermarkURL  string
	OutputVideo   string
	Theme         string
	AspectRatio   AspectRatio
	Width         int
	Height        int
	FPS           int
	TotalDuration float64
	VideoEncoder  string
	Quality       int
	ShowStats     bool
	BuildVersion  string
}

type ExportParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	AudioPath     string
	VideoEncoder  string
	Quality       int
}
