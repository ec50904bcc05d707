package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/boxshadow"
)

// ErrInvalidSettings is returned when a settings document cannot be decoded
// or holds out-of-range values.
var ErrInvalidSettings = errors.New("preset: invalid settings")

// Settings selects and tunes a shadow preset. It is read from YAML:
//
//	profile: decoration
//	size: large
//	strength: 255
//	color: "#000000"
//	corner_radius: 3
//	device_pixel_ratio: 1
//
// The color must be quoted, since an unquoted '#' starts a YAML comment.
type Settings struct {
	Profile Profile `yaml:"profile"`
	Size    Size    `yaml:"size"`

	// Strength scales the opacity of every shadow, 0 to 255.
	Strength int `yaml:"strength"`

	Color        boxshadow.Color `yaml:"color"`
	CornerRadius float64         `yaml:"corner_radius"`

	// DevicePixelRatio applies to ProfileStyle only; decoration shadows
	// are always rendered at 1.
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
}

// DefaultSettings returns a large black decoration shadow at full strength.
func DefaultSettings() Settings {
	return Settings{
		Profile:          ProfileDecoration,
		Size:             SizeLarge,
		Strength:         255,
		Color:            boxshadow.Black,
		CornerRadius:     3,
		DevicePixelRatio: 1,
	}
}

// ParseSettings decodes a YAML settings document. Missing keys keep their
// DefaultSettings values; unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and decodes a settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Settings{}, fmt.Errorf("preset: read settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode returns the settings as a YAML document.
func (s Settings) Encode() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("preset: encode settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("preset: encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks that every field is in range.
func (s Settings) Validate() error {
	switch {
	case !s.Profile.Valid():
		return fmt.Errorf("%w: %w: %d", ErrInvalidSettings, ErrUnknownProfile, int(s.Profile))
	case !s.Size.Valid():
		return fmt.Errorf("%w: %w: %d", ErrInvalidSettings, ErrUnknownSize, int(s.Size))
	case s.Strength < 0 || s.Strength > 255:
		return fmt.Errorf("%w: strength %d outside 0..255", ErrInvalidSettings, s.Strength)
	case s.CornerRadius < 0:
		return fmt.Errorf("%w: negative corner radius %v", ErrInvalidSettings, s.CornerRadius)
	case !(s.DevicePixelRatio > 0):
		return fmt.Errorf("%w: device pixel ratio %v must be positive", ErrInvalidSettings, s.DevicePixelRatio)
	}
	return nil
}

// strength returns Strength as a fraction.
func (s Settings) strength() float64 {
	return float64(s.Strength) / 255
}
