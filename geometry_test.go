package boxshadow

import (
	"image"
	"testing"
)

func TestBlurExtent(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{0, 2},
		{1, 2},
		{4, 6},
		{16, 23},
		{24, 34},
	}

	for _, tt := range tests {
		if got := BlurExtent(tt.radius); got != tt.want {
			t.Errorf("BlurExtent(%d) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestMinimumBoxSize(t *testing.T) {
	tests := []struct {
		radius int
		want   image.Point
	}{
		{0, image.Pt(5, 5)},
		{16, image.Pt(47, 47)},
		{24, image.Pt(69, 69)},
	}

	for _, tt := range tests {
		if got := MinimumBoxSize(tt.radius); got != tt.want {
			t.Errorf("MinimumBoxSize(%d) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}

func TestMinimumShadowTextureSize(t *testing.T) {
	tests := []struct {
		name   string
		box    image.Point
		radius int
		offset image.Point
		want   image.Point
	}{
		{"no offset", image.Pt(100, 60), 16, image.Point{}, image.Pt(146, 106)},
		{"down", image.Pt(100, 60), 16, image.Pt(0, 4), image.Pt(146, 110)},
		{"up left", image.Pt(100, 60), 16, image.Pt(-3, -4), image.Pt(149, 110)},
		{"empty box", image.Point{}, 0, image.Point{}, image.Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimumShadowTextureSize(tt.box, tt.radius, tt.offset)
			if got != tt.want {
				t.Errorf("MinimumShadowTextureSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinimumShadowTextureSizeMonotonic(t *testing.T) {
	box := image.Pt(40, 30)

	prev := MinimumShadowTextureSize(box, 0, image.Point{})
	for radius := 1; radius <= 128; radius++ {
		got := MinimumShadowTextureSize(box, radius, image.Point{})
		if got.X < prev.X || got.Y < prev.Y {
			t.Fatalf("radius %d: size %v shrank from %v", radius, got, prev)
		}
		prev = got
	}

	for _, sign := range []int{1, -1} {
		prev = MinimumShadowTextureSize(box, 8, image.Point{})
		for d := 1; d <= 32; d++ {
			got := MinimumShadowTextureSize(box, 8, image.Pt(sign*d, sign*d/2))
			if got.X < prev.X || got.Y < prev.Y {
				t.Fatalf("offset %d: size %v shrank from %v", sign*d, got, prev)
			}
			prev = got
		}
	}
}

func TestCenterHelpers(t *testing.T) {
	tests := []struct {
		r    image.Rectangle
		want image.Point
	}{
		{image.Rect(0, 0, 5, 5), image.Pt(2, 2)},
		{image.Rect(0, 0, 4, 4), image.Pt(1, 1)},
		{image.Rect(10, 20, 11, 21), image.Pt(10, 20)},
		{image.Rect(0, 0, 146, 110), image.Pt(72, 54)},
	}

	for _, tt := range tests {
		c := CenterOf(tt.r)
		if c != tt.want {
			t.Errorf("CenterOf(%v) = %v, want %v", tt.r, c, tt.want)
		}
		if got := RectAround(c, tt.r.Size()); got != tt.r {
			t.Errorf("RectAround(%v, %v) = %v, want %v", c, tt.r.Size(), got, tt.r)
		}
	}
}

func TestRectAroundPlacesBoxAtExtent(t *testing.T) {
	// A box centered in box+2e always starts at (e, e).
	for _, box := range []image.Point{{10, 10}, {11, 10}, {1, 2}, {100, 60}} {
		for _, e := range []int{2, 6, 23} {
			size := box.Add(image.Pt(2*e, 2*e))
			got := RectAround(CenterOf(image.Rectangle{Max: size}), box).Min
			if got != image.Pt(e, e) {
				t.Errorf("box %v extent %d at %v, want (%d,%d)", box, e, got, e, e)
			}
		}
	}
}
