package slides

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// deckFile is the on-disk shape shared by the TOML and YAML formats:
//
//	[[slides]]
//	title = "Welcome"
//	subtitle = "..."
//	image = "welcome"
type deckFile struct {
	Slides []Slide `toml:"slides" yaml:"slides"`
}

// LoadFile reads a deck from path. The format is picked by extension.
func LoadFile(path string) ([]Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes a deck in the format named by ext (".toml", ".yaml", ".yml").
func Parse(ext string, data []byte) ([]Slide, error) {
	var f deckFile
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode toml deck: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode yaml deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
	for i := range f.Slides {
		f.Slides[i] = normalize(f.Slides[i])
	}
	if err := Validate(f.Slides); err != nil {
		return nil, err
	}
	return f.Slides, nil
}

func normalize(s Slide) Slide {
	s.Title = strings.TrimSpace(s.Title)
	s.Subtitle = strings.TrimSpace(s.Subtitle)
	s.ImageID = strings.TrimSpace(s.ImageID)
	return s
}
