package preset

import (
	"image"
	"log/slog"

	"github.com/gogpu/boxshadow"
	"github.com/gogpu/boxshadow/internal/blend"
	"github.com/gogpu/boxshadow/internal/mask"
)

// Padding is how far a shadow texture extends beyond each side of the
// window it is drawn around, in logical pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Texture is a rendered preset, ready to be stretched around a window.
type Texture struct {
	// Image is the shadow with the box interior masked out.
	Image *boxshadow.Image

	Padding Padding

	// InnerRect is the texture rectangle, in logical pixels, the window
	// covers: the texture bounds shrunk by Padding.
	InnerRect image.Rectangle

	// InnerShadowRect is the 1x1 logical rectangle at the texture center
	// that is stretched to the window size.
	InnerShadowRect image.Rectangle
}

// Render draws the preset selected by s. It returns a nil texture when the
// size is SizeNone.
func Render(s Settings) (*Texture, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	params := Lookup(s.Profile, s.Size)
	if params.IsNone() {
		return nil, nil
	}

	dpr := 1.0
	borderRadius := s.CornerRadius + 0.5
	if s.Profile == ProfileStyle {
		dpr = s.DevicePixelRatio
		borderRadius = s.CornerRadius
	}

	strength := s.strength()
	box := params.BoxSize()
	r := boxshadow.NewRenderer(
		boxshadow.WithBoxSize(box),
		boxshadow.WithBorderRadius(borderRadius),
		boxshadow.WithDevicePixelRatio(dpr),
	)
	for _, p := range []Params{params.Shadow1, params.Shadow2} {
		r.AddShadow(p.Offset, p.Radius, s.Color.WithAlphaF(p.Opacity*strength))
	}

	img := r.Render()
	outer := image.Rectangle{Max: img.LogicalSize()}
	boxRect := boxshadow.RectAround(boxshadow.CenterOf(outer), box)

	overlap := s.Profile.Overlap()
	pad := Padding{
		Left:   boxRect.Min.X - outer.Min.X - overlap - params.Offset.X,
		Top:    boxRect.Min.Y - outer.Min.Y - overlap - params.Offset.Y,
		Right:  outer.Max.X - boxRect.Max.X - overlap + params.Offset.X,
		Bottom: outer.Max.Y - boxRect.Max.Y - overlap + params.Offset.Y,
	}
	inner := image.Rect(outer.Min.X+pad.Left, outer.Min.Y+pad.Top, outer.Max.X-pad.Right, outer.Max.Y-pad.Bottom)

	switch s.Profile {
	case ProfileStyle:
		maskOut(img, inner, s.CornerRadius, dpr)
		outline(img, inner, s.CornerRadius-1, dpr, boxshadow.Black.WithAlphaF(0.3*strength))
	default:
		outline(img, inner, s.CornerRadius-0.5, dpr, s.Color.WithAlphaF(0.4*strength))
		maskOut(img, inner, s.CornerRadius+0.5, dpr)
	}

	c := boxshadow.CenterOf(outer)
	boxshadow.Logger().Debug("preset: render",
		slog.String("profile", s.Profile.String()),
		slog.String("size", s.Size.String()),
		slog.Any("texture", img.Size()),
		slog.Any("padding", pad))

	return &Texture{
		Image:           img,
		Padding:         pad,
		InnerRect:       inner,
		InnerShadowRect: image.Rectangle{Min: c, Max: c.Add(image.Pt(1, 1))},
	}, nil
}

// TileSet splits the texture into nine tiles around its center pixel.
func (t *Texture) TileSet() *TileSet {
	if t == nil || t.Image.IsNull() {
		return &TileSet{}
	}
	c := boxshadow.CenterOf(t.Image.Bounds())
	return NewTileSet(t.Image.RGBA(), c.X, c.Y, 1, 1, false)
}

// maskOut clears the rounded rectangle r from img.
func maskOut(img *boxshadow.Image, r image.Rectangle, radius, dpr float64) {
	rad := max(radius, 0) * dpr
	m := mask.RoundedRect(img.Width(), img.Height(), mask.FromRectangle(r).Scale(dpr), rad, rad)
	img.FillMasked(m, boxshadow.Black, blend.DestinationOut)
}

// outline strokes the edge of r with a one logical pixel pen.
func outline(img *boxshadow.Image, r image.Rectangle, radius, dpr float64, c boxshadow.Color) {
	m := mask.Outline(img.Width(), img.Height(), mask.FromRectangle(r), radius, dpr)
	img.FillMasked(m, c, blend.SourceOver)
}
