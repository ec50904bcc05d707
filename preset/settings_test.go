package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/boxshadow"
)

func TestParseSettings(t *testing.T) {
	doc := `
profile: style
size: very-large
strength: 128
color: "#3daee9"
corner_radius: 6
device_pixel_ratio: 2
`
	s, err := ParseSettings([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSettings() error = %v", err)
	}

	want := Settings{
		Profile:          ProfileStyle,
		Size:             SizeVeryLarge,
		Strength:         128,
		Color:            boxshadow.RGBA8(0x3d, 0xae, 0xe9, 255),
		CornerRadius:     6,
		DevicePixelRatio: 2,
	}
	if s != want {
		t.Errorf("ParseSettings() = %+v, want %+v", s, want)
	}
}

func TestParseSettingsDefaults(t *testing.T) {
	for _, doc := range []string{"", "size: small\n"} {
		s, err := ParseSettings([]byte(doc))
		if err != nil {
			t.Fatalf("ParseSettings(%q) error = %v", doc, err)
		}
		def := DefaultSettings()
		if s.Profile != def.Profile || s.Strength != def.Strength || s.Color != def.Color {
			t.Errorf("ParseSettings(%q) = %+v, want defaults", doc, s)
		}
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"unknown size", "size: huge\n", ErrUnknownSize},
		{"unknown profile", "profile: kwin\n", ErrUnknownProfile},
		{"strength range", "strength: 300\n", ErrInvalidSettings},
		{"negative radius", "corner_radius: -1\n", ErrInvalidSettings},
		{"zero dpr", "device_pixel_ratio: 0\n", ErrInvalidSettings},
		{"bad color", "color: \"#zz0000\"\n", boxshadow.ErrInvalidColor},
		{"unknown key", "blur: 3\n", ErrInvalidSettings},
		{"not yaml", "size: [\n", ErrInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.doc))
			if !errors.Is(err, tt.is) {
				t.Errorf("ParseSettings() error = %v, want %v", err, tt.is)
			}
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("ParseSettings() error = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestSettingsEncodeRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.Size = SizeVeryLarge
	s.Color = boxshadow.RGBA8(10, 20, 30, 40)

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), "very-large") {
		t.Errorf("Encode() = %s, want size name", data)
	}

	back, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("ParseSettings(Encode()) error = %v\n%s", err, data)
	}
	if back != s {
		t.Errorf("round trip = %+v, want %+v", back, s)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shadow.yaml")
	if err := os.WriteFile(path, []byte("size: medium\nstrength: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Size != SizeMedium || s.Strength != 200 {
		t.Errorf("LoadSettings() = %+v", s)
	}

	if _, err := LoadSettings(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSettings(missing) error = %v, want ErrNotExist", err)
	}
}
