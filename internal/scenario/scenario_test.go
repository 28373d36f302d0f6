package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load("testdata/textbook.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(f.Scenarios) != 3 {
		t.Fatalf("scenario count = %d, want 3", len(f.Scenarios))
	}

	// File-wide defaults fill unset fields.
	textbook := f.Scenarios[0]
	if textbook.Name != "textbook" {
		t.Errorf("name = %q, want textbook", textbook.Name)
	}
	if textbook.Head == nil || *textbook.Head != 50 {
		t.Errorf("default head not applied: %v", textbook.Head)
	}
	if textbook.Direction != "UP" {
		t.Errorf("default direction not applied: %q", textbook.Direction)
	}

	// A scenario's own values win over the defaults.
	wide := f.Scenarios[2]
	if wide.Head == nil || *wide.Head != 2000 {
		t.Errorf("wide-disk head = %v, want 2000", wide.Head)
	}
	if wide.Geometry == nil || wide.Geometry.MaxTrack != 4999 {
		t.Errorf("wide-disk geometry = %+v, want max track 4999", wide.Geometry)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/no-such-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"malformed yaml",
			"scenarios: [{name: broken",
			"YAML parse error",
		},
		{
			"no scenarios",
			"defaults:\n  head: 50\n",
			"defines no scenarios",
		},
		{
			"unnamed scenario",
			"scenarios:\n  - head: 50\n    requests: [10]\n",
			"needs a name",
		},
		{
			"missing head",
			"scenarios:\n  - name: x\n    requests: [10]\n",
			"head position is required",
		},
		{
			"head out of range",
			"scenarios:\n  - name: x\n    head: 400\n    requests: [10]\n",
			"head position 400",
		},
		{
			"track out of range",
			"scenarios:\n  - name: x\n    head: 50\n    requests: [10, 900]\n",
			"outside the valid range",
		},
		{
			"empty requests",
			"scenarios:\n  - name: x\n    head: 50\n",
			"cannot be empty",
		},
		{
			"unknown algorithm",
			"scenarios:\n  - name: x\n    head: 50\n    requests: [10]\n    algorithms: [LOOK]\n",
			"unknown scheduling algorithm",
		},
		{
			"bad direction",
			"scenarios:\n  - name: x\n    head: 50\n    requests: [10]\n    direction: SIDEWAYS\n",
			"unknown sweep direction",
		},
		{
			"broken geometry",
			"scenarios:\n  - name: x\n    head: 5\n    requests: [1]\n    geometry: {min_track: 100, max_track: 10, time_per_track: 1}\n",
			"below max track",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ErrorsNameTheScenario(t *testing.T) {
	_, err := Load(writeFile(t, "scenarios:\n  - name: broken\n    head: 50\n    requests: [10, 900]\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `scenario "broken"`) {
		t.Errorf("error should name the scenario, got: %v", err)
	}
}

func TestRun(t *testing.T) {
	f, err := Load("testdata/textbook.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	results, err := f.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	// textbook and wide-disk name no algorithms, so they run all four;
	// downward-sweep names two.
	if len(results) != 10 {
		t.Fatalf("result count = %d, want 10", len(results))
	}
	if results[0].Scenario != "textbook" || results[9].Scenario != "wide-disk" {
		t.Errorf("results out of file order: first %q, last %q",
			results[0].Scenario, results[9].Scenario)
	}

	totals := make(map[string]map[string]float64)
	for _, r := range results {
		if totals[r.Scenario] == nil {
			totals[r.Scenario] = make(map[string]float64)
		}
		totals[r.Scenario][r.Report.Algorithm] = r.Report.TotalSeek
	}

	want := map[string]map[string]float64{
		"textbook": {
			"FCFS":   642,
			"SSTF":   208,
			"SCAN":   332,
			"C-SCAN": 192,
		},
		"downward-sweep": {
			"SCAN":   240,
			"C-SCAN": 167,
		},
		"wide-disk": {
			"FCFS":   13410,
			"SSTF":   6260,
			"SCAN":   7878,
			"C-SCAN": 3949,
		},
	}
	for name, algos := range want {
		for algo, total := range algos {
			if got := totals[name][algo]; got != total {
				t.Errorf("%s/%s total seek = %v, want %v", name, algo, got, total)
			}
		}
	}
}

func TestRun_UsesScenarioGeometry(t *testing.T) {
	f, err := Load("testdata/textbook.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	results, err := f.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	for _, r := range results {
		if r.Scenario != "wide-disk" || r.Report.Algorithm != "FCFS" {
			continue
		}
		if r.Report.Geometry.MaxTrack != 4999 {
			t.Errorf("geometry max track = %d, want 4999", r.Report.Geometry.MaxTrack)
		}
		// Half a time unit per track doubles throughput.
		want := 4.0 / (13410.0 * 0.5)
		if r.Report.Throughput != want {
			t.Errorf("throughput = %v, want %v", r.Report.Throughput, want)
		}
		return
	}
	t.Fatal("wide-disk FCFS result not found")
}

func TestRun_SharedEngineIsIndependent(t *testing.T) {
	head := 50
	f := &File{
		Scenarios: []Scenario{
			{
				Name:       "twice",
				Requests:   []int{82, 170, 43, 140, 24, 16, 190},
				Head:       &head,
				Algorithms: []string{"SSTF", "SSTF"},
			},
		},
	}

	results, err := f.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	if results[0].Report.TotalSeek != results[1].Report.TotalSeek {
		t.Errorf("reruns differ: %v vs %v",
			results[0].Report.TotalSeek, results[1].Report.TotalSeek)
	}
}
