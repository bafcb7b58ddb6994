package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:5000" {
		t.Errorf("baseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Display.WindowCenter != 40 || cfg.Display.WindowWidth != 400 {
		t.Errorf("startup window = (%v, %v)", cfg.Display.WindowCenter, cfg.Display.WindowWidth)
	}
	if cfg.Display.RenderFPS != 30 {
		t.Errorf("renderFPS = %d", cfg.Display.RenderFPS)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volview.yaml")
	src := `backend:
  baseURL: http://imaging:8080
display:
  windowCenter: 300
  windowWidth: 1500
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend.BaseURL != "http://imaging:8080" {
		t.Errorf("baseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Display.WindowCenter != 300 || cfg.Display.WindowWidth != 1500 {
		t.Errorf("window = (%v, %v)", cfg.Display.WindowCenter, cfg.Display.WindowWidth)
	}
	// Untouched keys keep their defaults.
	if cfg.Backend.TimeoutSeconds != 300 {
		t.Errorf("timeoutSeconds = %d, want default 300", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsBadWindowWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volview.yaml")
	if err := os.WriteFile(path, []byte("display:\n  windowWidth: -10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for non-positive windowWidth")
	}
}

func TestMeshFillColor(t *testing.T) {
	cfg := DefaultConfig()
	c := cfg.MeshFillColor()
	if c.R <= 0 || c.G <= 0 || c.B <= 0 {
		t.Errorf("default fill color = %+v", c)
	}

	cfg.Display.MeshColor = "nonsense"
	fallback := cfg.MeshFillColor()
	if fallback.R <= 0 {
		t.Errorf("fallback fill color = %+v", fallback)
	}
}
