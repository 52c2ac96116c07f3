package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func TestFindLatestAudio(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, "old.mp3"), now.Add(-2*time.Hour))
	touch(t, filepath.Join(dir, "newest.WAV"), now)
	touch(t, filepath.Join(dir, "mid.flac"), now.Add(-time.Hour))
	touch(t, filepath.Join(dir, "ignored.txt"), now.Add(time.Hour))

	got, err := FindLatestAudio(dir)
	if err != nil {
		t.Fatalf("FindLatestAudio failed: %v", err)
	}
	if filepath.Base(got) != "newest.WAV" {
		t.Errorf("got %s, want newest.WAV", got)
	}
}

func TestFindLatestScript(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, "a.yaml"), now.Add(-time.Hour))
	touch(t, filepath.Join(dir, "b.yml"), now)

	got, err := FindLatestScript(dir)
	if err != nil {
		t.Fatalf("FindLatestScript failed: %v", err)
	}
	if filepath.Base(got) != "b.yml" {
		t.Errorf("got %s, want b.yml", got)
	}
}

func TestFindLatestEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindLatestAudio(dir); err == nil {
		t.Error("expected an error for an empty directory")
	}

	if _, err := FindLatestScript(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestReadMemoryStats(t *testing.T) {
	stats := ReadMemoryStats()

	// gopsutil may fail in constrained environments; the flags report what
	// was readable, and readable values must be sane.
	if stats.ProcessKnown && stats.ProcessRSSMB < 0 {
		t.Errorf("ProcessRSSMB = %f", stats.ProcessRSSMB)
	}
	if stats.HostKnown {
		if stats.HostTotalMB <= 0 {
			t.Errorf("HostTotalMB = %f", stats.HostTotalMB)
		}
		if stats.HostUsedPct < 0 || stats.HostUsedPct > 100 {
			t.Errorf("HostUsedPct = %f", stats.HostUsedPct)
		}
	}
}
