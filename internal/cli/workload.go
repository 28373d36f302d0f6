package cli

import (
	"github.com/spf13/cobra"

	"github.com/me/seeksim/internal/validate"
	"github.com/me/seeksim/pkg/sched"
)

// defaultRequests is the classic textbook workload, preloaded so the
// commands do something sensible out of the box.
const defaultRequests = "82,170,43,140,24,16,190"

// workloadFlags are the input flags shared by simulate and compare.
type workloadFlags struct {
	requests     string
	head         int
	direction    string
	minTrack     int
	maxTrack     int
	timePerTrack float64
	jsonOut      bool
}

func addWorkloadFlags(cmd *cobra.Command, f *workloadFlags) {
	def := sched.DefaultConfig()
	cmd.Flags().StringVar(&f.requests, "requests", defaultRequests, "Comma-separated track requests")
	cmd.Flags().IntVar(&f.head, "head", 50, "Initial head position")
	cmd.Flags().StringVar(&f.direction, "direction", "UP", "Sweep direction for SCAN/C-SCAN (UP, DOWN)")
	cmd.Flags().IntVar(&f.minTrack, "min-track", def.MinTrack, "Lowest addressable track")
	cmd.Flags().IntVar(&f.maxTrack, "max-track", def.MaxTrack, "Highest addressable track")
	cmd.Flags().Float64Var(&f.timePerTrack, "time-per-track", def.SeekTimePerTrack, "Time units to cross one track")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Output JSON instead of human-readable text")
}

// workload is a fully validated simulation input.
type workload struct {
	cfg      sched.Config
	requests []int
	head     int
	dir      sched.Direction
}

// resolve validates the raw flag values into an engine-ready workload.
// Anything out of range is rejected here, before an engine exists.
func (f *workloadFlags) resolve() (workload, error) {
	var wl workload

	wl.cfg = sched.Config{
		MinTrack:         f.minTrack,
		MaxTrack:         f.maxTrack,
		SeekTimePerTrack: f.timePerTrack,
	}
	if err := wl.cfg.Validate(); err != nil {
		return wl, err
	}

	tracks, err := validate.ParseTrackList(f.requests)
	if err != nil {
		return wl, err
	}
	if err := validate.TrackList(tracks, wl.cfg); err != nil {
		return wl, err
	}
	if err := validate.Head(f.head, wl.cfg); err != nil {
		return wl, err
	}

	dir, err := sched.ParseDirection(f.direction)
	if err != nil {
		return wl, err
	}

	wl.requests = tracks
	wl.head = f.head
	wl.dir = dir
	return wl, nil
}
