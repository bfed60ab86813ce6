package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewerSettings holds runtime options of the interactive viewer. None of
// them affect world generation.
type ViewerSettings struct {
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
	FOV              float32 `yaml:"fov"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	FlySpeed         float32 `yaml:"fly_speed"`
	Reach            float32 `yaml:"reach"`
	PlaceBlock       string  `yaml:"place_block"`
	VSync            bool    `yaml:"vsync"`
	// FPSLimit caps the frame rate when VSync is off; 0 means unlimited.
	FPSLimit int `yaml:"fps_limit"`
}

// DefaultViewerSettings returns the settings used when no file is given.
func DefaultViewerSettings() ViewerSettings {
	return ViewerSettings{
		WindowWidth:      900,
		WindowHeight:     600,
		FOV:              70,
		MouseSensitivity: 0.1,
		FlySpeed:         8,
		Reach:            6,
		PlaceBlock:       "dirt",
		VSync:            true,
	}
}

// LoadViewerSettings reads a YAML settings file on top of the defaults.
// A missing file is not an error.
func LoadViewerSettings(path string) (ViewerSettings, error) {
	s := DefaultViewerSettings()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	s.clamp()
	return s, nil
}

func (s *ViewerSettings) clamp() {
	if s.WindowWidth < 320 {
		s.WindowWidth = 320
	}
	if s.WindowHeight < 240 {
		s.WindowHeight = 240
	}
	if s.FOV < 30 {
		s.FOV = 30
	}
	if s.FOV > 110 {
		s.FOV = 110
	}
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.Reach <= 0 {
		s.Reach = DefaultViewerSettings().Reach
	}
}
