package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscoverDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected empty path for defaults, got %q", cfg.Path)
	}
	r := cfg.Render
	if r.CanvasWidth != 1000 || r.CanvasHeight != 1000 {
		t.Fatalf("expected 1000x1000 canvas, got %vx%v", r.CanvasWidth, r.CanvasHeight)
	}
	if r.CenterX != 500 || r.CenterY != 500 {
		t.Fatalf("expected center 500,500, got %v,%v", r.CenterX, r.CenterY)
	}
	if r.LayoutRadius != 400 || r.NodeRadius != 20 {
		t.Fatalf("unexpected radii: layout=%v node=%v", r.LayoutRadius, r.NodeRadius)
	}
	if r.NodeFill != "blue" || r.LabelFill != "white" || r.EdgeStroke != "black" {
		t.Fatalf("unexpected colors: %+v", r)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warn log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	dir := t.TempDir()
	configYAML := strings.TrimSpace(`
version: 1
render:
  canvas_width: 600
  canvas_height: 400
  node_fill: " #336699 "
logging:
  level: DEBUG
  file: logs/run.log
`)
	path := filepath.Join(dir, DefaultFilename)
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("expected path %s, got %s", path, cfg.Path)
	}
	if cfg.Render.CenterX != 300 || cfg.Render.CenterY != 200 {
		t.Fatalf("center should follow the canvas, got %v,%v", cfg.Render.CenterX, cfg.Render.CenterY)
	}
	if cfg.Render.LayoutRadius != 400 {
		t.Fatalf("unset fields keep defaults, got layout radius %v", cfg.Render.LayoutRadius)
	}
	if cfg.Render.NodeFill != "#336699" {
		t.Fatalf("expected trimmed node fill, got %q", cfg.Render.NodeFill)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if want := filepath.Join(dir, "logs", "run.log"); cfg.Logging.File != want {
		t.Fatalf("expected log file %s, got %s", want, cfg.Logging.File)
	}
}

func TestExplicitZeroCenterIsKept(t *testing.T) {
	cfg, err := Parse([]byte("render:\n  canvas_width: 600\n  center_x: 0\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Render.CenterX != 0 {
		t.Fatalf("explicit center_x: 0 was replaced with %v", cfg.Render.CenterX)
	}
	if cfg.Render.CenterY != 500 {
		t.Fatalf("omitted center_y should default to half the canvas, got %v", cfg.Render.CenterY)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"node radius": "render:\n  node_radius: -1\n",
		"canvas":      "render:\n  canvas_width: 0\n  center_x: 10\n",
		"fill":        "render:\n  edge_stroke: \"  \"\n",
		"level":       "logging:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestValidationErrorUsesYamlKeys(t *testing.T) {
	_, err := Parse([]byte("render:\n  node_radius: -2\n"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "render.node_radius must be greater than 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	created, err := WriteDefault(path)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}
	created, err = WriteDefault(path)
	if err != nil || created {
		t.Fatalf("second WriteDefault should be a no-op, created=%v err=%v", created, err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load default file: %v", err)
	}
	want := Default()
	if cfg.Render != want.Render || cfg.Logging != want.Logging {
		t.Fatalf("default file does not match Default(): %+v vs %+v", cfg, want)
	}
}
