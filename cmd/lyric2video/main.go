package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/lyric2video/internal/config"
	"github.com/ivlev/lyric2video/internal/encoder"
	"github.com/ivlev/lyric2video/internal/imageset"
	"github.com/ivlev/lyric2video/internal/render"
	"github.com/ivlev/lyric2video/internal/system"
	"github.com/ivlev/lyric2video/internal/theme"
	"github.com/ivlev/lyric2video/internal/timeline"
	"github.com/ivlev/lyric2video/internal/watermark"
)

// buildVersion is stamped via -ldflags at release time.
var buildVersion = "dev"

func main() {
	system.InitResourceLimits()

	dirs := []string{"input/audio", "input/scripts", "input/images", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scriptPtr := flag.String("script", "", "Path to the lyric script YAML (default: newest file in input/scripts/)")
	imagesPtr := flag.String("images", "input/images", "Path to the background images: a directory of {section}_{index} files, or a PDF")
	audioPtr := flag.String("audio", "", "Path to the audio track (default: newest file in input/audio/)")
	outputPtr := flag.String("output", "", "Path to the video (default: generated under output/)")
	themePtr := flag.String("theme", "default", "Theme: default, rock, country, chill, underground")
	presetPtr := flag.String("preset", "16:9", "Aspect preset: 16:9, 9:16 (Shorts/TikTok)")
	fpsPtr := flag.Int("fps", 30, "FPS")
	durationPtr := flag.Float64("duration", 0, "Total duration in seconds (0: from audio, else from the script)")
	dpiPtr := flag.Int("dpi", 300, "DPI when rasterizing a PDF image source")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 auto; x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	watermarkPtr := flag.String("watermark", "", "Path to a watermark image (default: QR code of -watermark-url)")
	urlPtr := flag.String("watermark-url", "", "URL encoded into the QR watermark when no image is given")
	glyphsPtr := flag.Bool("theme-glyphs", false, "Spawn the theme's default glyph particles for entries without one")
	statsPtr := flag.Bool("stats", false, "Print a performance report after the export")

	flag.Parse()

	th, err := theme.Parse(*themePtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	aspect := config.Landscape
	if *presetPtr == "9:16" {
		aspect = config.Portrait
	}
	width, height := aspect.CanvasSize()

	scriptPath := *scriptPtr
	if scriptPath == "" {
		latest, err := system.FindLatestScript("input/scripts")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a lyric script in input/scripts/", err)
		}
		scriptPath = latest
		fmt.Printf("[*] Using script: %s\n", scriptPath)
	}

	script, err := timeline.ReadScript(scriptPath)
	if err != nil {
		log.Fatalf("[-] Error reading script: %v", err)
	}
	if len(script.Entries) == 0 {
		log.Fatalf("[-] Error: script %s has no entries", scriptPath)
	}
	tl := timeline.New(script.Entries)

	var images *imageset.Set
	if strings.HasSuffix(strings.ToLower(*imagesPtr), ".pdf") {
		images, err = imageset.LoadPDF(*imagesPtr, tl.Sections(), *dpiPtr)
	} else {
		images, err = imageset.LoadDirectory(*imagesPtr)
	}
	if err != nil {
		log.Fatalf("[-] Error loading background images: %v", err)
	}

	audioPath := *audioPtr
	if audioPath == "" {
		latest, err := system.FindLatestAudio("input/audio")
		if err == nil {
			audioPath = latest
			fmt.Printf("[*] Using audio: %s\n", audioPath)
		}
	}

	totalDuration := *durationPtr
	if totalDuration <= 0 && audioPath != "" {
		audioDur, err := system.GetAudioDuration(audioPath)
		if err == nil {
			totalDuration = audioDur
			fmt.Printf("[*] Video duration set from audio: %.2fs\n", totalDuration)
		} else {
			log.Printf("[!] Could not read audio duration: %v", err)
		}
	}
	if totalDuration <= 0 {
		totalDuration = tl.EndTime()
	}
	if totalDuration <= 0 {
		log.Fatalf("[-] Error: could not determine a video duration")
	}

	var mark image.Image
	if *watermarkPtr != "" {
		mark, err = watermark.LoadImage(*watermarkPtr)
		if err != nil {
			log.Fatalf("[-] Error loading watermark: %v", err)
		}
	} else if *urlPtr != "" {
		mark, err = watermark.GenerateQR(*urlPtr, width/4)
		if err != nil {
			log.Fatalf("[-] Error generating QR watermark: %v", err)
		}
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(scriptPath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}

	encoderName := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Hardware acceleration detected: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75
		case "h264_nvenc":
			quality = 28
		default:
			quality = 23
		}
	}

	fmt.Println("--- [LYRIC VIDEO EXPORT] ---")
	fmt.Printf("[*] Script: %s | Lines: %d | Theme: %s\n", scriptPath, tl.Len(), th)
	fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Images: %d\n", width, height, *fpsPtr, images.Len())
	fmt.Println("----------------------------")

	session, err := render.NewSession(tl, images, th, aspect, render.Options{
		Duration:       totalDuration,
		WatermarkImage: mark,
		UseThemeGlyph:  *glyphsPtr,
	})
	if err != nil {
		log.Fatalf("[-] Error creating session: %v", err)
	}
	defer session.Close()

	cfg := &config.Config{
		ScriptPath:    scriptPath,
		ImagesPath:    *imagesPtr,
		AudioPath:     audioPath,
		WatermarkPath: *watermarkPtr,
		WatermarkURL:  *urlPtr,
		OutputVideo:   finalOutput,
		Theme:         string(th),
		AspectRatio:   aspect,
		Width:         width,
		Height:        height,
		FPS:           *fpsPtr,
		TotalDuration: totalDuration,
		VideoEncoder:  encoderName,
		Quality:       quality,
		ShowStats:     *statsPtr,
		BuildVersion:  buildVersion,
	}

	params := config.ExportParams{
		Width:        width,
		Height:       height,
		FPS:          *fpsPtr,
		Duration:     totalDuration,
		AudioPath:    audioPath,
		VideoEncoder: encoderName,
		Quality:      quality,
	}

	report, err := encoder.Export(context.Background(), session, params, finalOutput)
	if err != nil {
		log.Fatalf("[-] Export error: %v", err)
	}

	if cfg.ShowStats {
		report.Print(cfg)
	}

	fmt.Printf("[+++] Done! Result: %s\n", finalOutput)
}
