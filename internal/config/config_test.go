package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestStaircaseThresholds(t *testing.T) {
	cfg := DefaultVoidRunnerConfig()
	speed := cfg.Difficulty.Speed
	score := cfg.Difficulty.Score

	samples := []time.Duration{
		0,
		14900 * time.Millisecond,
		15000 * time.Millisecond,
		30100 * time.Millisecond,
	}

	var speeds []float64
	var scores []int
	for _, s := range samples {
		speeds = append(speeds, speed.At(s))
		scores = append(scores, score.IntAt(s))
	}

	// Speed is unchanged just before the first threshold and steps at it
	if speeds[0] != speeds[1] {
		t.Errorf("speed changed before 15s: %v -> %v", speeds[0], speeds[1])
	}
	if speeds[2] <= speeds[1] {
		t.Errorf("speed should step at 15s: %v -> %v", speeds[1], speeds[2])
	}
	if speeds[3] <= speeds[2] {
		t.Errorf("speed should step again by 30.1s: %v -> %v", speeds[2], speeds[3])
	}

	// Score increment takes exactly two values over the same samples
	distinct := map[int]bool{}
	for _, v := range scores {
		distinct[v] = true
	}
	if len(distinct) != 2 {
		t.Errorf("score increment values = %v, expected exactly two distinct", scores)
	}
	if scores[2] != 1 || scores[3] != 2 {
		t.Errorf("score increment = %v, expected step from 1 to 2 after 30s", scores)
	}

	// Obstacle speed matches 2 px/step plus 0.5 every 15s
	base := cfg.Obstacles.BaseSpeed
	want := []float64{2, 2, 2.5, 3}
	for i, m := range speeds {
		if got := base * m; got != want[i] {
			t.Errorf("obstacle speed at %v = %v, expected %v", samples[i], got, want[i])
		}
	}
}

func TestStaircaseMonotonic(t *testing.T) {
	s := Staircase{Base: 1, Step: 0.25, Every: 15 * time.Second}
	prev := s.At(0)
	for ms := 0; ms <= 120000; ms += 250 {
		v := s.At(time.Duration(ms) * time.Millisecond)
		if v < prev {
			t.Fatalf("staircase decreased at %dms: %v -> %v", ms, prev, v)
		}
		prev = v
	}
}

func TestStaircaseEdgeCases(t *testing.T) {
	flat := Staircase{Base: 3, Step: 1}
	if flat.Enabled() || flat.At(time.Hour) != 3 {
		t.Error("staircase without interval should stay at base")
	}

	capped := Staircase{Base: 1, Step: 1, Every: time.Second, Max: 3}
	if got := capped.At(time.Minute); got != 3 {
		t.Errorf("capped staircase = %v, expected 3", got)
	}

	if got := (Staircase{Base: 1, Step: 1, Every: time.Second}).At(-5 * time.Second); got != 1 {
		t.Errorf("negative elapsed = %v, expected base", got)
	}

	if got := (Staircase{Base: -2}).IntAt(0); got != 0 {
		t.Errorf("IntAt() below zero = %d, expected 0", got)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var vr VoidRunnerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("voidrunner"), &vr); err != nil {
		t.Fatalf("embedded voidrunner yaml: %v", err)
	}
	if !reflect.DeepEqual(vr, DefaultVoidRunnerConfig()) {
		t.Errorf("embedded voidrunner defaults differ:\n%+v\n%+v", vr, DefaultVoidRunnerConfig())
	}

	var nc NeonCipherConfig
	if err := yaml.Unmarshal(GetDefaultYAML("neoncipher"), &nc); err != nil {
		t.Fatalf("embedded neoncipher yaml: %v", err)
	}
	if !reflect.DeepEqual(nc, DefaultNeonCipherConfig()) {
		t.Errorf("embedded neoncipher defaults differ:\n%+v\n%+v", nc, DefaultNeonCipherConfig())
	}

	if GetDefaultYAML("pinball") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "vr.yaml")
	data := []byte("obstacles:\n  spawn_interval: 750ms\nplayer:\n  speed: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadVoidRunner(path)
	if err != nil {
		t.Fatalf("LoadVoidRunner() failed: %v", err)
	}
	if cfg.Obstacles.SpawnInterval != 750*time.Millisecond {
		t.Errorf("spawn interval = %v, expected 750ms", cfg.Obstacles.SpawnInterval)
	}
	if cfg.Player.Speed != 8 {
		t.Errorf("player speed = %v, expected 8", cfg.Player.Speed)
	}
	// Untouched keys keep defaults
	if cfg.Playfield.Width != 600 || cfg.Obstacles.Width != 40 {
		t.Errorf("defaults lost on partial override: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadNeonCipher(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadNeonCipher(bad)
	if err == nil {
		t.Error("malformed custom config should fail")
	}
	if !reflect.DeepEqual(cfg, DefaultNeonCipherConfig()) {
		t.Error("failed load should still return defaults")
	}
}

func TestLoadNeonCipherRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		yaml string
	}{
		{"zero grid", "grid:\n  size: 0\n"},
		{"negative grid", "grid:\n  size: -2\n"},
		{"zero tile size", "grid:\n  tile_size: 0\n"},
		{"zero flash", "timing:\n  flash_duration: 0s\n"},
		{"negative delay", "timing:\n  level_up_delay: -1s\n"},
		{"zero max length", "sequence:\n  max_length: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nc.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadNeonCipher(path)
			if err == nil {
				t.Error("invalid config should fail to load")
			}
			if !reflect.DeepEqual(cfg, DefaultNeonCipherConfig()) {
				t.Errorf("invalid config should fall back to defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("sequence:\n  max_length: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "neoncipher.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNeonCipher("")
	if err != nil {
		t.Fatalf("LoadNeonCipher() failed: %v", err)
	}
	if cfg.Sequence.MaxLength != 5 {
		t.Errorf("max length = %d, expected 5 from user config", cfg.Sequence.MaxLength)
	}
	if cfg.Grid.Size != 4 {
		t.Errorf("grid size = %d, expected default 4", cfg.Grid.Size)
	}
}

func TestGridGeometry(t *testing.T) {
	g := DefaultNeonCipherConfig().Grid
	if g.Cells() != 16 {
		t.Errorf("Cells() = %d, expected 16", g.Cells())
	}
	if g.Extent() != 370 {
		t.Errorf("Extent() = %v, expected 370", g.Extent())
	}
}

func TestPresets(t *testing.T) {
	fixed := DefaultVoidRunnerConfig()
	ApplyVoidRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Speed.Enabled() || fixed.Difficulty.Score.Enabled() {
		t.Error("fixed preset should disable progression")
	}

	hard := DefaultVoidRunnerConfig()
	ApplyVoidRunnerPreset(&hard, DifficultyHard)
	if hard.Obstacles.SpawnInterval != time.Second {
		t.Errorf("hard spawn interval = %v, expected 1s", hard.Obstacles.SpawnInterval)
	}
	if hard.Difficulty.Speed.At(0) <= 1.0 {
		t.Error("hard preset should start faster")
	}

	easy := DefaultVoidRunnerConfig()
	ApplyVoidRunnerPreset(&easy, DifficultyEasy)
	if easy.Difficulty.Speed.At(time.Minute) >= DefaultVoidRunnerConfig().Difficulty.Speed.At(time.Minute) {
		t.Error("easy preset should ramp slower")
	}

	untouched := DefaultVoidRunnerConfig()
	ApplyVoidRunnerPreset(&untouched, "")
	if !reflect.DeepEqual(untouched, DefaultVoidRunnerConfig()) {
		t.Error("empty preset should leave config untouched")
	}

	nc := DefaultNeonCipherConfig()
	ApplyNeonCipherPreset(&nc, DifficultyHard)
	if nc.Timing.FlashDuration != 250*time.Millisecond {
		t.Errorf("hard flash = %v, expected 250ms", nc.Timing.FlashDuration)
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"":       "",
		"insane": "",
	}
	for in, want := range tests {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, want)
		}
	}
}
