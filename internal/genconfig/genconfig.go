package genconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for preferences, relative to the
// process working directory.
const DefaultPath = "mvogen.yaml"

// Prefs holds generation and viewer preferences. The MVO format itself
// carries none of these, so they live in an optional per-directory file.
type Prefs struct {
	Tempo      float64 `yaml:"tempo"`
	Velocity   uint8   `yaml:"velocity"`
	Program    uint8   `yaml:"program"`
	Resolution int     `yaml:"resolution"`
	SampleRate int     `yaml:"sample_rate"`
	Viewer     struct {
		Width    int32 `yaml:"width"`
		Height   int32 `yaml:"height"`
		ShowGrid bool  `yaml:"show_grid"`
	} `yaml:"viewer"`
}

func Default() Prefs {
	p := Prefs{
		Tempo:      120,
		Velocity:   100,
		Program:    1,
		Resolution: 960,
		SampleRate: 48000,
	}
	p.Viewer.Width = 1024
	p.Viewer.Height = 768
	p.Viewer.ShowGrid = true
	return p
}

// Load reads preferences from path. A missing or invalid file yields
// Default() without creating anything.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path.
func Save(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
