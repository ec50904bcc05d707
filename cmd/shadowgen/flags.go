package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/gogpu/boxshadow"
)

// boxFlag is a WxH size flag.
type boxFlag image.Point

func (b *boxFlag) String() string {
	return fmt.Sprintf("%dx%d", b.X, b.Y)
}

func (b *boxFlag) Set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return fmt.Errorf("box %q: want WxH", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("box %q: %w", s, err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("box %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("box %q: negative size", s)
	}
	*b = boxFlag{X: x, Y: y}
	return nil
}

// shadowList collects repeated -shadow flags.
type shadowList []boxshadow.Shadow

func (l *shadowList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = fmt.Sprintf("%d,%d,%d,%s", s.Offset.X, s.Offset.Y, s.Radius, s.Color.Hex())
	}
	return strings.Join(parts, " ")
}

func (l *shadowList) Set(s string) error {
	sh, err := parseShadow(s)
	if err != nil {
		return err
	}
	*l = append(*l, sh)
	return nil
}

// parseShadow parses "dx,dy,radius[,color]". The color defaults to black.
func parseShadow(s string) (boxshadow.Shadow, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return boxshadow.Shadow{}, fmt.Errorf("shadow %q: want dx,dy,radius[,color]", s)
	}

	var nums [3]int
	for i := range nums {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return boxshadow.Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
		}
		nums[i] = v
	}
	if nums[2] < 0 {
		return boxshadow.Shadow{}, fmt.Errorf("shadow %q: negative radius", s)
	}

	c := boxshadow.Black
	if len(fields) == 4 {
		var err error
		if c, err = boxshadow.ParseHex(fields[3]); err != nil {
			return boxshadow.Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
		}
	}

	return boxshadow.Shadow{
		Offset: image.Pt(nums[0], nums[1]),
		Radius: nums[2],
		Color:  c,
	}, nil
}
