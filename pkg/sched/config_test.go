package sched

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinTrack != 0 || cfg.MaxTrack != 199 {
		t.Errorf("bounds = [%d, %d], want [0, 199]", cfg.MinTrack, cfg.MaxTrack)
	}
	if cfg.SeekTimePerTrack != 1.0 {
		t.Errorf("SeekTimePerTrack = %v, want 1.0", cfg.SeekTimePerTrack)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"wide disk", Config{MinTrack: 0, MaxTrack: 9999, SeekTimePerTrack: 0.5}, false},
		{"negative min", Config{MinTrack: -1, MaxTrack: 199, SeekTimePerTrack: 1}, true},
		{"min equals max", Config{MinTrack: 100, MaxTrack: 100, SeekTimePerTrack: 1}, true},
		{"inverted bounds", Config{MinTrack: 200, MaxTrack: 100, SeekTimePerTrack: 1}, true},
		{"zero time scale", Config{MinTrack: 0, MaxTrack: 199, SeekTimePerTrack: 0}, true},
		{"negative time scale", Config{MinTrack: 0, MaxTrack: 199, SeekTimePerTrack: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Contains(t *testing.T) {
	cfg := Config{MinTrack: 10, MaxTrack: 20, SeekTimePerTrack: 1}
	tests := []struct {
		track int
		want  bool
	}{
		{10, true},
		{20, true},
		{15, true},
		{9, false},
		{21, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := cfg.Contains(tt.track); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.track, got, tt.want)
		}
	}
}
