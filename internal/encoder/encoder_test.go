package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivlev/lyric2video/internal/config"
)

func argsString(params config.ExportParams, out string) string {
	return strings.Join(BuildFFmpegArgs(params, out), " ")
}

func TestBuildFFmpegArgsX264(t *testing.T) {
	params := config.ExportParams{
		Width:        1280,
		Height:       720,
		FPS:          30,
		Duration:     12.5,
		VideoEncoder: "libx264",
		Quality:      23,
	}

	args := BuildFFmpegArgs(params, "output/test.mp4")
	s := strings.Join(args, " ")

	for _, want := range []string{
		"-f rawvideo",
		"-pixel_format rgba",
		"-video_size 1280x720",
		"-framerate 30",
		"-i -",
		"-pix_fmt yuv420p",
		"-c:v libx264",
		"-crf 23",
		"-preset medium",
	} {
		assert.Contains(t, s, want)
	}

	assert.Equal(t, "output/test.mp4", args[len(args)-1], "output path must come last")
	assert.NotContains(t, s, "-c:a", "audio flags present without an audio path")
}

func TestBuildFFmpegArgsAudioMux(t *testing.T) {
	params := config.ExportParams{
		Width:        720,
		Height:       1280,
		FPS:          30,
		Duration:     60,
		AudioPath:    "input/audio/song.mp3",
		VideoEncoder: "libx264",
		Quality:      23,
	}

	s := argsString(params, "out.mp4")
	assert.Contains(t, s, "-i input/audio/song.mp3")
	assert.Contains(t, s, "-c:a aac")
	assert.Contains(t, s, "-shortest")
	assert.Contains(t, s, "-video_size 720x1280")
}

func TestBuildFFmpegArgsEncoderQuality(t *testing.T) {
	tests := []struct {
		encoder string
		quality int
		want    string
		not     string
	}{
		{"h264_videotoolbox", 75, "-b:v 7500k", "-crf"},
		{"h264_nvenc", 28, "-cq 28", "-b:v"},
		{"libx264", 18, "-crf 18", "-cq"},
	}

	for _, tt := range tests {
		params := config.ExportParams{
			Width: 1280, Height: 720, FPS: 30, Duration: 10,
			VideoEncoder: tt.encoder,
			Quality:      tt.quality,
		}
		s := argsString(params, "out.mp4")
		assert.Contains(t, s, tt.want, tt.encoder)
		assert.NotContains(t, s, tt.not, tt.encoder)
	}
}
