package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test simulation defaults
	if cfg.Simulation.Frames != 600 {
		t.Errorf("expected 600 frames, got %d", cfg.Simulation.Frames)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.Simulation.TickRate)
	}
	if cfg.Simulation.Realtime {
		t.Error("expected realtime to be false by default")
	}
	if cfg.Simulation.Characters != 2 {
		t.Errorf("expected 2 characters, got %d", cfg.Simulation.Characters)
	}

	// Test rig defaults
	if cfg.Rig.Path != "" {
		t.Errorf("expected embedded rig by default, got %s", cfg.Rig.Path)
	}
	if cfg.Rig.Watch {
		t.Error("expected watch to be false by default")
	}

	// Test combat defaults
	if cfg.Combat.ShotInterval != 30 {
		t.Errorf("expected shot interval 30, got %d", cfg.Combat.ShotInterval)
	}
	if cfg.Combat.Range != 100 {
		t.Errorf("expected range 100, got %f", cfg.Combat.Range)
	}

	// Test debug defaults
	if cfg.Debug.ShowCollisionBoxes {
		t.Error("expected collision boxes to be hidden by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		got := SimulationConfig{TickRate: tt.rate}.FrameDuration()
		if got != tt.want {
			t.Errorf("FrameDuration(%d): got %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boneproxy.yaml")

	yamlContent := `
simulation:
  frames: 120
  tick_rate: 30
  realtime: true
  characters: 5
  spacing: 4.5

rig:
  path: "rigs/ogre.yaml"
  watch: true

combat:
  shot_interval: 10
  range: 50

debug:
  show_collision_boxes: true

record:
  path: "frames.msgpack"

logging:
  level: "debug"
  log_file: "boneproxy.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Simulation.Frames != 120 {
		t.Errorf("expected 120 frames, got %d", cfg.Simulation.Frames)
	}
	if cfg.Simulation.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", cfg.Simulation.TickRate)
	}
	if !cfg.Simulation.Realtime {
		t.Error("expected realtime to be true")
	}
	if cfg.Simulation.Characters != 5 {
		t.Errorf("expected 5 characters, got %d", cfg.Simulation.Characters)
	}
	if cfg.Simulation.Spacing != 4.5 {
		t.Errorf("expected spacing 4.5, got %f", cfg.Simulation.Spacing)
	}

	if cfg.Rig.Path != "rigs/ogre.yaml" {
		t.Errorf("expected rig path rigs/ogre.yaml, got %s", cfg.Rig.Path)
	}
	if !cfg.Rig.Watch {
		t.Error("expected watch to be true")
	}

	if cfg.Combat.ShotInterval != 10 {
		t.Errorf("expected shot interval 10, got %d", cfg.Combat.ShotInterval)
	}
	if !cfg.Debug.ShowCollisionBoxes {
		t.Error("expected collision boxes to be shown")
	}
	if cfg.Record.Path != "frames.msgpack" {
		t.Errorf("expected record path frames.msgpack, got %s", cfg.Record.Path)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "boneproxy.log" {
		t.Errorf("expected log file 'boneproxy.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileKeepsUnsetDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("combat:\n  range: 25\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Combat.Range != 25 {
		t.Errorf("expected range 25, got %f", cfg.Combat.Range)
	}
	if cfg.Combat.ShotInterval != 30 {
		t.Errorf("expected default shot interval 30, got %d", cfg.Combat.ShotInterval)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
simulation:
  frames: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/boneproxy.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// No config file exists - should return empty
	path := findConfigFile(AppName)
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create boneproxy.yaml in current directory
	if err := os.WriteFile("boneproxy.yaml", []byte("simulation:\n  frames: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile(AppName)
	if path == "" {
		t.Error("expected to find boneproxy.yaml in current directory")
	}

	// Another app name must not pick up this program's file
	if path := findConfigFile("ogre"); path != "" {
		t.Errorf("expected no config for another app, got %s", path)
	}
}

func TestFindConfigFileUserDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG lookup only applies on unix-like systems")
	}
	t.Chdir(t.TempDir())
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, "ogre", "ogre.yaml")
	if err := os.MkdirAll(filepath.Dir(want), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(want, []byte("simulation:\n  frames: 10\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := findConfigFile("ogre"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := findConfigFile(AppName); got != "" {
		t.Errorf("expected no %s config, got %q", AppName, got)
	}
}

func TestConfigDirFor(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG lookup only applies on unix-like systems")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	tests := []struct {
		app  string
		want string
	}{
		{"boneproxy", "/xdg/boneproxy"},
		{"ogre", "/xdg/ogre"},
	}
	for _, tt := range tests {
		t.Run(tt.app, func(t *testing.T) {
			if got := configDirFor(tt.app); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
	if got := ConfigDir(); got != "/xdg/boneproxy" {
		t.Errorf("ConfigDir: got %q, want /xdg/boneproxy", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"boneproxy", "Boneproxy"},
		{"Ogre", "Ogre"},
		{"", ""},
		{"1up", "1up"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "boneproxy.yaml")

	cfg := Default()
	cfg.Rig.Path = "rigs/custom.yaml"
	cfg.Simulation.Characters = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Rig.Path != "rigs/custom.yaml" || loaded.Simulation.Characters != 7 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestSaveUsesConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG lookup only applies on unix-like systems")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	cfg := Default()
	cfg.Simulation.Frames = 42
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := findConfigFile(AppName)
	if want := filepath.Join(xdg, "boneproxy", "boneproxy.yaml"); path != want {
		t.Fatalf("got %q, want %q", path, want)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Simulation.Frames != 42 {
		t.Errorf("expected 42 frames, got %d", loaded.Simulation.Frames)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero frames runs forever", func(c *Config) { c.Simulation.Frames = 0 }, false},
		{"negative frames", func(c *Config) { c.Simulation.Frames = -1 }, true},
		{"negative tick rate", func(c *Config) { c.Simulation.TickRate = -60 }, true},
		{"negative characters", func(c *Config) { c.Simulation.Characters = -2 }, true},
		{"negative shot interval", func(c *Config) { c.Combat.ShotInterval = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsNegativeFrames(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "boneproxy.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  frames: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if cfg, err := Load(); err == nil {
		t.Errorf("expected error for negative frames, got %+v", cfg.Simulation)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.DumpGizmos {
					t.Error("expected gizmo dump to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "frames flag allows zero",
			setup: func() {
				*flagFrames = 0
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Frames != 0 {
					t.Errorf("expected 0 frames, got %d", cfg.Simulation.Frames)
				}
			},
			teardown: func() {
				*flagFrames = -1
			},
		},
		{
			name: "characters flag",
			setup: func() {
				*flagCharacters = 9
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Characters != 9 {
					t.Errorf("expected 9 characters, got %d", cfg.Simulation.Characters)
				}
			},
			teardown: func() {
				*flagCharacters = 0
			},
		},
		{
			name: "rig and watch flags",
			setup: func() {
				*flagRig = "ogre.yaml"
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if cfg.Rig.Path != "ogre.yaml" {
					t.Errorf("expected rig ogre.yaml, got %s", cfg.Rig.Path)
				}
				if !cfg.Rig.Watch {
					t.Error("expected watch to be enabled")
				}
			},
			teardown: func() {
				*flagRig = ""
				*flagWatch = false
			},
		},
		{
			name: "record, show-boxes and realtime flags",
			setup: func() {
				*flagRecord = "out.msgpack"
				*flagShowBoxes = true
				*flagRealtime = true
			},
			verify: func(cfg *Config) {
				if cfg.Record.Path != "out.msgpack" {
					t.Errorf("expected record path out.msgpack, got %s", cfg.Record.Path)
				}
				if !cfg.Debug.ShowCollisionBoxes {
					t.Error("expected collision boxes to be shown")
				}
				if !cfg.Simulation.Realtime {
					t.Error("expected realtime to be enabled")
				}
			},
			teardown: func() {
				*flagRecord = ""
				*flagShowBoxes = false
				*flagRealtime = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boneproxy.yaml")

	yamlContent := `
simulation:
  frames: 300
  characters: 4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagCharacters = 8
	defer func() {
		*flagConfig = ""
		*flagCharacters = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Characters should be from flag (8), not file (4)
	if cfg.Simulation.Characters != 8 {
		t.Errorf("expected 8 characters from flag, got %d", cfg.Simulation.Characters)
	}

	// Frames should be from file (300) since no flag override
	if cfg.Simulation.Frames != 300 {
		t.Errorf("expected 300 frames from file, got %d", cfg.Simulation.Frames)
	}
}
