// Package encoder exports a render session to a video file by iterating
// media time at a fixed frame rate and streaming raw RGBA frames to ffmpeg.
// It calls the exact frame function the live player uses, so the file and
// the on-screen preview cannot diverge.
package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/lyric2video/internal/config"
	"github.com/ivlev/lyric2video/internal/render"
	"github.com/ivlev/lyric2video/internal/system"
)

// BuildFFmpegArgs assembles the ffmpeg invocation: raw RGBA frames on stdin,
// optional audio mux, encoder-specific quality flags.
func BuildFFmpegArgs(params config.ExportParams, outPath string) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
	}

	if params.AudioPath != "" {
		args = append(args, "-i", params.AudioPath, "-c:a", "aac", "-shortest")
	}

	args = append(args,
		"-t", fmt.Sprintf("%f", params.Duration),
		"-r", fmt.Sprintf("%d", params.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", params.VideoEncoder,
	)

	switch params.VideoEncoder {
	case "h264_videotoolbox":
		// VideoToolbox rejects -q:v on several versions; use a bitrate.
		bitrate := params.Quality * 100
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", params.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", params.Quality), "-preset", "medium")
	}

	return append(args, outPath)
}

// Export renders every frame of the session and encodes them to outPath.
// Rendering is sequential — the session's transition tracking depends on
// frame order — while writing overlaps it through a small buffer of pooled
// frames.
func Export(ctx context.Context, s *render.Session, params config.ExportParams, outPath string) (*Report, error) {
	started := time.Now()

	if params.Duration <= 0 {
		params.Duration = s.Duration()
	}
	if params.FPS <= 0 {
		params.FPS = 30
	}
	frameCount := int(params.Duration * float64(params.FPS))
	if frameCount == 0 {
		return nil, fmt.Errorf("nothing to export: duration %.2fs", params.Duration)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", BuildFFmpegArgs(params, outPath)...)
	var ffmpegLog bytes.Buffer
	cmd.Stdout = &ffmpegLog
	cmd.Stderr = &ffmpegLog

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start: %w", err)
	}

	frames := make(chan *image.RGBA, 4)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(frames)
		for i := 0; i < frameCount; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			frame := s.RenderFrame(float64(i) / float64(params.FPS))
			buf := system.GetImage(frame.Rect)
			copy(buf.Pix, frame.Pix)
			select {
			case frames <- buf:
			case <-ctx.Done():
				system.PutImage(buf)
				return ctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		defer stdin.Close()
		for buf := range frames {
			err := writeRawRGBA(stdin, buf)
			system.PutImage(buf)
			if err != nil {
				return fmt.Errorf("writing frame: %w", err)
			}
		}
		return nil
	})

	pipelineErr := g.Wait()
	if pipelineErr != nil {
		// Drain pooled frames the writer never consumed.
		for buf := range frames {
			system.PutImage(buf)
		}
	}

	waitErr := cmd.Wait()
	if pipelineErr != nil {
		return nil, pipelineErr
	}
	if waitErr != nil {
		return nil, fmt.Errorf("ffmpeg: %w\nLog: %s", waitErr, ffmpegLog.String())
	}

	elapsed := time.Since(started)
	return &Report{
		Frames:       frameCount,
		Elapsed:      elapsed,
		EffectiveFPS: float64(frameCount) / elapsed.Seconds(),
		Memory:       system.ReadMemoryStats(),
	}, nil
}

func writeRawRGBA(w io.Writer, img *image.RGBA) error {
	_, err := w.Write(img.Pix)
	return err
}
