package main

import (
	"log/slog"

	"github.com/pkg/profile"
)

// profileModes maps the --pprof flag to pkg/profile modes.
var profileModes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

var profiler interface{ Stop() }

func startProfiler(mode, dir string) {
	if mode == "" {
		return
	}

	fn, ok := profileModes[mode]
	if !ok {
		slog.Warn("unknown profiling mode", slog.String("mode", mode))

		return
	}

	opts := []func(*profile.Profile){fn, profile.Quiet}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}

	profiler = profile.Start(opts...)
}

func stopProfiler() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
