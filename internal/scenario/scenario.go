// Package scenario loads batch workload files and replays them through the
// scheduling engine. A scenario file is YAML: optional file-wide defaults
// followed by a list of named workloads, each naming the algorithms to run
// (none means all of them).
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/me/seeksim/internal/validate"
	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

// Geometry overrides the simulated disk for a scenario. An override replaces
// the whole geometry, including the time scale.
type Geometry struct {
	MinTrack         int     `yaml:"min_track"`
	MaxTrack         int     `yaml:"max_track"`
	SeekTimePerTrack float64 `yaml:"time_per_track"`
}

func (g *Geometry) config() sched.Config {
	return sched.Config{
		MinTrack:         g.MinTrack,
		MaxTrack:         g.MaxTrack,
		SeekTimePerTrack: g.SeekTimePerTrack,
	}
}

// Defaults fill in any scenario field left unset. A scenario's own value
// always wins.
type Defaults struct {
	Head      *int      `yaml:"head"`
	Direction string    `yaml:"direction"`
	Geometry  *Geometry `yaml:"geometry"`
}

// Scenario is one workload: a request list, a head position, and the
// algorithms to run it through. An empty Algorithms list runs all of them.
type Scenario struct {
	Name       string    `yaml:"name"`
	Requests   []int     `yaml:"requests"`
	Head       *int      `yaml:"head"`
	Direction  string    `yaml:"direction"`
	Algorithms []string  `yaml:"algorithms"`
	Geometry   *Geometry `yaml:"geometry"`
}

// File is a parsed scenario file.
type File struct {
	Defaults  Defaults   `yaml:"defaults"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Result pairs a scenario name with one simulation report.
type Result struct {
	Scenario string                 `json:"scenario"`
	Report   model.SimulationReport `json:"report"`
}

// Load reads a scenario file, applies the file-wide defaults and validates
// every scenario. Validation errors name the offending scenario.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s defines no scenarios", path)
	}

	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		f.applyDefaults(s)
		if err := validateScenario(s); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func (f *File) applyDefaults(s *Scenario) {
	if s.Head == nil {
		s.Head = f.Defaults.Head
	}
	if s.Direction == "" {
		s.Direction = f.Defaults.Direction
	}
	if s.Geometry == nil {
		s.Geometry = f.Defaults.Geometry
	}
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("every scenario needs a name")
	}

	cfg := sched.DefaultConfig()
	if s.Geometry != nil {
		cfg = s.Geometry.config()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if s.Head == nil {
		return fmt.Errorf("scenario %q: head position is required", s.Name)
	}
	if err := validate.Head(*s.Head, cfg); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if err := validate.TrackList(s.Requests, cfg); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if _, err := sched.ParseDirection(s.Direction); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	for _, name := range s.Algorithms {
		if _, err := sched.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// Run replays every scenario and returns one result per scenario/algorithm
// pair, in file order. Each scenario shares a single engine across its
// algorithms; runs are independent, so the ordering does not affect metrics.
func (f *File) Run() ([]Result, error) {
	var results []Result
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Head == nil {
			return nil, fmt.Errorf("scenario %q: head position is required", s.Name)
		}

		cfg := sched.DefaultConfig()
		if s.Geometry != nil {
			cfg = s.Geometry.config()
		}
		dir, err := sched.ParseDirection(s.Direction)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}

		algos := sched.Algorithms()
		if len(s.Algorithms) > 0 {
			algos = make([]sched.Algorithm, 0, len(s.Algorithms))
			for _, name := range s.Algorithms {
				algo, err := sched.ParseAlgorithm(name)
				if err != nil {
					return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
				}
				algos = append(algos, algo)
			}
		}

		engine := sched.New(cfg, s.Requests, *s.Head)
		geo := model.GeometryFor(cfg)
		for _, algo := range algos {
			res, err := engine.Simulate(algo, dir)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			results = append(results, Result{
				Scenario: s.Name,
				Report:   model.NewSimulationReport(geo, s.Requests, *s.Head, res),
			})
		}
	}
	return results, nil
}
