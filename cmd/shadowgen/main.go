// Command shadowgen renders box-shadow textures to PNG files.
//
// Without -shadow flags it renders a preset, read from -config and
// overridden by -profile, -size, -dpr and -border-radius:
//
//	shadowgen -size very-large -output shadow.png
//
// With one or more -shadow flags the shadows are rendered around -box
// directly:
//
//	shadowgen -box 120x80 -border-radius 6 -shadow 0,4,16,#00000080 -shadow 0,1,4,#00000040
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/boxshadow"
	"github.com/gogpu/boxshadow/preset"
)

// options holds the parsed command line.
type options struct {
	config       string
	profile      string
	size         string
	box          boxFlag
	borderRadius float64
	dpr          float64
	shadows      shadowList
	output       string
	label        string
	watch        bool
	list         bool
	verbose      bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{box: boxFlag(image.Pt(100, 100))}
	fs.StringVar(&o.config, "config", "", "settings file (YAML)")
	fs.StringVar(&o.profile, "profile", "", "preset profile: decoration or style")
	fs.StringVar(&o.size, "size", "", "preset size: none, small, medium, large or very-large")
	fs.Var(&o.box, "box", "box size as WxH, used with -shadow")
	fs.Float64Var(&o.borderRadius, "border-radius", -1, "corner radius of the box")
	fs.Float64Var(&o.dpr, "dpr", 0, "device pixel ratio")
	fs.Var(&o.shadows, "shadow", "shadow as dx,dy,radius,#rrggbbaa (repeatable)")
	fs.StringVar(&o.output, "output", "shadow.png", "output file")
	fs.StringVar(&o.label, "label", "", "caption drawn below the texture")
	fs.BoolVar(&o.watch, "watch", false, "re-render when the -config file changes")
	fs.BoolVar(&o.list, "list", false, "list preset sizes and exit")
	fs.BoolVar(&o.verbose, "v", false, "log rendering steps")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.watch && o.config == "" {
		return nil, errors.New("-watch needs -config")
	}
	return o, nil
}

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if o.verbose {
		boxshadow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if o.list {
		listSizes(os.Stdout)
		return
	}

	if err := generate(o); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if o.watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watch(ctx, o.config, func() error { return generate(o) }); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	}
}

// generate renders once and writes the output file.
func generate(o *options) error {
	img, err := render(o)
	if err != nil {
		return err
	}
	if img.IsNull() {
		log.Printf("Nothing to render, %s not written\n", o.output)
		return nil
	}

	if o.label == "" {
		if err := img.SavePNG(o.output); err != nil {
			return err
		}
	} else {
		labeled, err := drawLabel(img.RGBA(), o.label)
		if err != nil {
			return err
		}
		if err := savePNG(o.output, labeled); err != nil {
			return err
		}
	}

	size := img.Size()
	log.Printf("Shadow saved to %s (%dx%d @%gx)\n", o.output, size.X, size.Y, img.DevicePixelRatio)
	return nil
}

// render draws the explicit shadows when any are given and the configured
// preset otherwise.
func render(o *options) (*boxshadow.Image, error) {
	if len(o.shadows) > 0 {
		r := boxshadow.NewRenderer(
			boxshadow.WithBoxSize(image.Point(o.box)),
			boxshadow.WithShadows(o.shadows...),
		)
		if o.borderRadius > 0 {
			r.SetBorderRadius(o.borderRadius)
		}
		if o.dpr > 0 {
			r.SetDevicePixelRatio(o.dpr)
		}
		return r.Render(), nil
	}

	s, err := o.settings()
	if err != nil {
		return nil, err
	}
	tex, err := preset.Render(s)
	if err != nil || tex == nil {
		return nil, err
	}
	return tex.Image, nil
}

// settings loads the configured settings and applies flag overrides.
func (o *options) settings() (preset.Settings, error) {
	s := preset.DefaultSettings()
	if o.config != "" {
		var err error
		if s, err = preset.LoadSettings(o.config); err != nil {
			return s, err
		}
	}

	if o.profile != "" {
		p, err := preset.ParseProfile(o.profile)
		if err != nil {
			return s, err
		}
		s.Profile = p
	}
	if o.size != "" {
		size, err := preset.ParseSize(o.size)
		if err != nil {
			return s, err
		}
		s.Size = size
	}
	if o.borderRadius >= 0 {
		s.CornerRadius = o.borderRadius
	}
	if o.dpr > 0 {
		s.DevicePixelRatio = o.dpr
	}
	return s, s.Validate()
}

func listSizes(w io.Writer) {
	title := cases.Title(language.English)
	for _, p := range []preset.Profile{preset.ProfileDecoration, preset.ProfileStyle} {
		fmt.Fprintf(w, "%s:\n", title.String(p.String()))
		for _, size := range preset.Sizes() {
			params := preset.Lookup(p, size)
			if params.IsNone() {
				fmt.Fprintf(w, "  %-12s %s\n", size, title.String(size.String()))
				continue
			}
			fmt.Fprintf(w, "  %-12s %-12s offset %v, radii %d/%d\n",
				size, title.String(size.String()), params.Offset, params.Shadow1.Radius, params.Shadow2.Radius)
		}
	}
}
