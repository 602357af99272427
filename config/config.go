package config

import (
	"os"

	"github.com/bytedance/sonic"
)

// Config holds runtime configuration for the frame source, detector and
// overlay rendering. Fields may be loaded from a JSON file and overridden by
// command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Frame source parameters
	Source          string `json:"source"` // "camera" or "screen"
	CameraIndex     int    `json:"camera_index"`
	CameraRotation  int    `json:"camera_rotation"` // 0, 90, 180, 270
	FrameIntervalMs int    `json:"frame_interval_ms"`

	// Detection parameters
	DetectorURL   string  `json:"detector_url"`
	MinConfidence float64 `json:"min_confidence"`
	MaxPoses      int     `json:"max_poses"`

	// Overlay parameters
	Mirror       bool   `json:"mirror"`
	CircleRadius int    `json:"circle_radius"`
	CircleColor  string `json:"circle_color"` // #rrggbb
	DrawSkeleton bool   `json:"draw_skeleton"`

	// Preview surface size
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`

	// Screen-source capture rectangle persistence
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Source:          "camera",
		CameraIndex:     0,
		CameraRotation:  0,
		FrameIntervalMs: 33,
		DetectorURL:     "http://127.0.0.1:9090/detect",
		MinConfidence:   0.5,
		MaxPoses:        1,
		Mirror:          true,
		CircleRadius:    6,
		CircleColor:     "#10b981",
		DrawSkeleton:    true,
		PreviewWidth:    400,
		PreviewHeight:   300,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Source != "camera" && c.Source != "screen" {
		c.Source = "camera"
	}
	if c.CameraIndex < 0 {
		c.CameraIndex = 0
	}
	switch c.CameraRotation {
	case 0, 90, 180, 270:
	default:
		c.CameraRotation = 0
	}
	if c.FrameIntervalMs <= 0 {
		c.FrameIntervalMs = 33
	}
	if c.DetectorURL == "" {
		c.DetectorURL = "http://127.0.0.1:9090/detect"
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 1 {
		c.MinConfidence = 0.5
	}
	if c.MaxPoses < 0 {
		c.MaxPoses = 1
	}
	if c.CircleRadius < 1 {
		c.CircleRadius = 6
	}
	if len(c.CircleColor) != 7 || c.CircleColor[0] != '#' {
		c.CircleColor = "#10b981"
	}
	if c.PreviewWidth < 100 {
		c.PreviewWidth = 400
	}
	if c.PreviewHeight < 100 {
		c.PreviewHeight = 300
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := sonic.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	data, err := sonic.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
