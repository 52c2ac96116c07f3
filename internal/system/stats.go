package system

import (
	"os"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// MemoryStats is a snapshot of process and host memory usage, reported in the
// export performance summary.
type MemoryStats struct {
	ProcessRSSMB float64
	HostUsedMB   float64
	HostTotalMB  float64
	HostUsedPct  float64
	ProcessKnown bool
	HostKnown    bool
}

// ReadMemoryStats collects memory figures best-effort; missing values leave
// the corresponding Known flag unset rather than failing.
func ReadMemoryStats() MemoryStats {
	var s MemoryStats

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			s.ProcessRSSMB = float64(info.RSS) / 1024 / 1024
			s.ProcessKnown = true
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.HostUsedMB = float64(vm.Used) / 1024 / 1024
		s.HostTotalMB = float64(vm.Total) / 1024 / 1024
		s.HostUsedPct = vm.UsedPercent
		s.HostKnown = true
	}

	return s
}
