package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_PassesValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	if cfg.Source != "camera" || !cfg.Mirror || cfg.CircleRadius != 6 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate_ClampsBadValues(t *testing.T) {
	cfg := &Config{
		Source:          "webcam2",
		CameraIndex:     -3,
		CameraRotation:  45,
		FrameIntervalMs: -1,
		MinConfidence:   1.5,
		MaxPoses:        -1,
		CircleRadius:    0,
		CircleColor:     "green",
		PreviewWidth:    10,
		PreviewHeight:   10,
	}
	_ = cfg.Validate()
	if cfg.Source != "camera" || cfg.CameraIndex != 0 || cfg.CameraRotation != 0 {
		t.Fatalf("source fields not clamped: %+v", cfg)
	}
	if cfg.FrameIntervalMs != 33 || cfg.MinConfidence != 0.5 || cfg.MaxPoses != 1 {
		t.Fatalf("detection fields not clamped: %+v", cfg)
	}
	if cfg.CircleRadius != 6 || cfg.CircleColor != "#10b981" {
		t.Fatalf("overlay fields not clamped: %+v", cfg)
	}
	if cfg.PreviewWidth != 400 || cfg.PreviewHeight != 300 {
		t.Fatalf("preview size not clamped: %+v", cfg)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.DetectorURL != DefaultConfig().DetectorURL {
		t.Fatalf("missing file should yield defaults: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Source = "screen"
	cfg.MinConfidence = 0.75
	cfg.Mirror = false
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Source != "screen" || loaded.MinConfidence != 0.75 || loaded.Mirror {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_BadJSONReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.Source != "camera" {
		t.Fatalf("expected defaults alongside error: %+v", cfg)
	}
}
