package encoder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/lyric2video/internal/config"
	"github.com/ivlev/lyric2video/internal/system"
)

// Report captures how an export went, for the optional performance summary.
type Report struct {
	Frames       int
	Elapsed      time.Duration
	EffectiveFPS float64
	Memory       system.MemoryStats
}

// Print writes the performance summary to stdout and appends a one-line
// record to benchmark.log.
func (r *Report) Print(cfg *config.Config) {
	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Effective FPS: %.2f\n",
		cfg.BuildVersion, r.Frames, r.Elapsed.Seconds(), r.EffectiveFPS,
	)
	if r.Memory.ProcessKnown {
		fmt.Printf("Process RSS: %.1f MB\n", r.Memory.ProcessRSSMB)
	}
	if r.Memory.HostKnown {
		fmt.Printf("Host Memory: %.0f/%.0f MB (%.1f%%)\n",
			r.Memory.HostUsedMB, r.Memory.HostTotalMB, r.Memory.HostUsedPct)
	}
	fmt.Println("----------------------------")

	logEntry := fmt.Sprintf("[%s] Build: %s | Script: %s | Frames: %d | Total: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		cfg.BuildVersion,
		filepath.Base(cfg.ScriptPath),
		r.Frames,
		r.Elapsed.Seconds(),
		r.EffectiveFPS,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Could not write benchmark.log: %v\n", err)
	}
}
