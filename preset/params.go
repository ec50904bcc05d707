// Package preset provides named shadow sizes and renders them into
// decoration shadow textures.
//
// A preset is a composite of two shadows: a broad main shadow and a tight
// contact shadow slightly above it. Two profiles exist: ProfileDecoration
// for window borders and ProfileStyle for menus and tooltips.
package preset

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/boxshadow"
)

// Preset errors.
var (
	// ErrUnknownSize is returned when a size name is not recognized.
	ErrUnknownSize = errors.New("preset: unknown shadow size")

	// ErrUnknownProfile is returned when a profile name is not recognized.
	ErrUnknownProfile = errors.New("preset: unknown profile")
)

// Size selects a shadow preset.
type Size int

const (
	SizeNone Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeVeryLarge
)

var sizeNames = [...]string{
	SizeNone:      "none",
	SizeSmall:     "small",
	SizeMedium:    "medium",
	SizeLarge:     "large",
	SizeVeryLarge: "very-large",
}

// Sizes returns every size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeNone, SizeSmall, SizeMedium, SizeLarge, SizeVeryLarge}
}

// String returns the settings-file name of the size.
func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

// Valid reports whether s is one of the defined sizes.
func (s Size) Valid() bool {
	return s >= SizeNone && s <= SizeVeryLarge
}

// ParseSize parses a size name. Matching ignores case, dashes, underscores
// and spaces, so "very-large", "VeryLarge" and "very_large" are equal.
func ParseSize(name string) (Size, error) {
	key := normalize(name)
	for i, n := range sizeNames {
		if normalize(n) == key {
			return Size(i), nil
		}
	}
	return SizeNone, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Profile selects the preset table and the way the texture is finished.
type Profile int

const (
	// ProfileDecoration is for window decorations: larger shadows, an
	// outline in the shadow color drawn before the box is masked out.
	ProfileDecoration Profile = iota

	// ProfileStyle is for menus and tooltips: smaller shadows, the box is
	// masked out first and a black outline drawn on top.
	ProfileStyle
)

var profileNames = [...]string{
	ProfileDecoration: "decoration",
	ProfileStyle:      "style",
}

// String returns the settings-file name of the profile.
func (p Profile) String() string {
	if p < 0 || int(p) >= len(profileNames) {
		return fmt.Sprintf("Profile(%d)", int(p))
	}
	return profileNames[p]
}

// Valid reports whether p is one of the defined profiles.
func (p Profile) Valid() bool {
	return p == ProfileDecoration || p == ProfileStyle
}

// ParseProfile parses a profile name, ignoring case.
func ParseProfile(name string) (Profile, error) {
	key := normalize(name)
	for i, n := range profileNames {
		if n == key {
			return Profile(i), nil
		}
	}
	return ProfileDecoration, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Profile) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProfile, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Profile) UnmarshalText(text []byte) error {
	v, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Overlap returns how far, in logical pixels, the box overlaps the shadow
// texture's padding.
func (p Profile) Overlap() int {
	if p == ProfileStyle {
		return 2
	}
	return 3
}

// Params describes one shadow of a preset.
type Params struct {
	Offset  image.Point
	Radius  int
	Opacity float64
}

// CompositeParams is a preset: two shadows and the offset of the whole.
type CompositeParams struct {
	Offset  image.Point
	Shadow1 Params
	Shadow2 Params
}

// IsNone reports whether the preset draws nothing.
func (c CompositeParams) IsNone() bool {
	return max(c.Shadow1.Radius, c.Shadow2.Radius) == 0
}

// BoxSize returns the smallest box that fits both shadows.
func (c CompositeParams) BoxSize() image.Point {
	a := boxshadow.MinimumBoxSize(c.Shadow1.Radius)
	b := boxshadow.MinimumBoxSize(c.Shadow2.Radius)
	return image.Pt(max(a.X, b.X), max(a.Y, b.Y))
}

var decorationParams = [...]CompositeParams{
	SizeNone: {},
	SizeSmall: {
		Offset:  image.Pt(0, 4),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 16, Opacity: 1},
		Shadow2: Params{Offset: image.Pt(0, -2), Radius: 8, Opacity: 0.4},
	},
	SizeMedium: {
		Offset:  image.Pt(0, 8),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 32, Opacity: 0.9},
		Shadow2: Params{Offset: image.Pt(0, -4), Radius: 16, Opacity: 0.3},
	},
	SizeLarge: {
		Offset:  image.Pt(0, 12),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 48, Opacity: 0.8},
		Shadow2: Params{Offset: image.Pt(0, -6), Radius: 24, Opacity: 0.2},
	},
	SizeVeryLarge: {
		Offset:  image.Pt(0, 16),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 64, Opacity: 0.7},
		Shadow2: Params{Offset: image.Pt(0, -8), Radius: 32, Opacity: 0.1},
	},
}

var styleParams = [...]CompositeParams{
	SizeNone: {},
	SizeSmall: {
		Offset:  image.Pt(0, 2),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 12, Opacity: 0.8},
		Shadow2: Params{Offset: image.Pt(0, -2), Radius: 6, Opacity: 0.18},
	},
	SizeMedium: {
		Offset:  image.Pt(0, 4),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 16, Opacity: 0.8},
		Shadow2: Params{Offset: image.Pt(0, -2), Radius: 8, Opacity: 0.18},
	},
	SizeLarge: {
		Offset:  image.Pt(0, 5),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 20, Opacity: 0.6},
		Shadow2: Params{Offset: image.Pt(0, -3), Radius: 10, Opacity: 0.16},
	},
	SizeVeryLarge: {
		Offset:  image.Pt(0, 6),
		Shadow1: Params{Offset: image.Pt(0, 0), Radius: 24, Opacity: 0.4},
		Shadow2: Params{Offset: image.Pt(0, -3), Radius: 12, Opacity: 0.14},
	},
}

// Lookup returns the preset for a profile and size. Unknown sizes fall back
// to SizeLarge; unknown profiles use the decoration table.
func Lookup(profile Profile, size Size) CompositeParams {
	if !size.Valid() {
		size = SizeLarge
	}
	if profile == ProfileStyle {
		return styleParams[size]
	}
	return decorationParams[size]
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
