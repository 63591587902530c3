// Package theme loads slider themes from YAML files. Unset fields
// keep the library defaults, so a theme file only has to name what it
// changes.
package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/slider/pkg/slider"
)

// File is the on-disk theme shape. Colors are hex strings.
type File struct {
	Active    string `yaml:"active"`
	Peak      string `yaml:"peak"`
	Inactive  string `yaml:"inactive"`
	Thumb     string `yaml:"thumb"`
	Disabled  string `yaml:"disabled"`
	Label     string `yaml:"label"`
	Fill      string `yaml:"fill"`
	Rail      string `yaml:"rail"`
	ThumbChar string `yaml:"thumb_char"`
	Gradient  *bool  `yaml:"gradient"`
}

// Load reads path and overlays it onto the default theme.
func Load(path string) (slider.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slider.Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return slider.Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return f.apply(slider.DefaultTheme()), nil
}

func (f File) apply(t slider.Theme) slider.Theme {
	if f.Active != "" {
		t.Active = lipgloss.Color(f.Active)
	}
	if f.Peak != "" {
		t.Peak = lipgloss.Color(f.Peak)
	}
	if f.Inactive != "" {
		t.Inactive = lipgloss.Color(f.Inactive)
	}
	if f.Thumb != "" {
		t.Thumb = lipgloss.Color(f.Thumb)
	}
	if f.Disabled != "" {
		t.Disabled = lipgloss.Color(f.Disabled)
	}
	if f.Label != "" {
		t.Label = lipgloss.Color(f.Label)
	}
	if f.Fill != "" {
		t.FillChar = f.Fill
	}
	if f.Rail != "" {
		t.RailChar = f.Rail
	}
	if f.ThumbChar != "" {
		t.ThumbChar = f.ThumbChar
	}
	if f.Gradient != nil {
		t.Gradient = *f.Gradient
	}
	return t
}
