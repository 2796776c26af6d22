// Command genfigure renders the demo figures as SVG, and optionally as PNG.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/figure"
	"github.com/osuushi/figure/dbg"
	"github.com/osuushi/figure/internal/config"
	"github.com/osuushi/figure/internal/log"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	configPath string
	width      int
	height     int
	outDir     string
	png        bool
	preview    bool
	dump       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("genfigure", "Render the demo figures.")
	var opts options
	app.Flag("config", "YAML config file.").Short('c').StringVar(&opts.configPath)
	app.Flag("width", "Canvas width in pixels.").IntVar(&opts.width)
	app.Flag("height", "Canvas height in pixels.").IntVar(&opts.height)
	app.Flag("out", "Output directory.").Short('o').StringVar(&opts.outDir)
	app.Flag("png", "Also write a PNG image.").BoolVar(&opts.png)
	app.Flag("preview", "Show the PNG image in the terminal (iTerm2).").BoolVar(&opts.preview)
	app.Flag("dump", "Print the figure structure.").BoolVar(&opts.dump)
	for _, name := range figureNames() {
		app.Command(name, figures[name].help)
	}

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	log.Init(log.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})

	return generate(command, cfg, opts, stdout)
}

// Flags win over the config file and the environment.
func (o options) apply(cfg *config.Config) {
	if o.width > 0 {
		cfg.Render.Width = o.width
	}
	if o.height > 0 {
		cfg.Render.Height = o.height
	}
	if o.outDir != "" {
		cfg.Render.OutDir = o.outDir
	}
	if o.png || o.preview {
		cfg.Render.PNG = true
	}
}

func generate(name string, cfg config.Config, opts options, stdout io.Writer) error {
	fmt.Fprintf(stdout, "Generate %s\n", aurora.Bold(name))

	fig, err := figures[name].build()
	if err != nil {
		return err
	}
	fig.Precision = cfg.Render.Precision
	if opts.dump {
		fmt.Fprintln(stdout, fig)
		fmt.Fprintln(stdout, dbg.Dump(fig.Components()))
	}

	r := cfg.Render
	vp := figure.Viewport{XMin: r.Viewport.XMin, XMax: r.Viewport.XMax, YMin: r.Viewport.YMin, YMax: r.Viewport.YMax}
	svgPath := filepath.Join(r.OutDir, name+".svg")
	if err := fig.Render(r.Width, r.Height, vp, svgPath); err != nil {
		return err
	}
	fmt.Fprintln(stdout, aurora.Green("wrote"), svgPath)

	if r.PNG {
		pngPath := filepath.Join(r.OutDir, name+".png")
		if err := fig.RenderPNG(r.Width, r.Height, vp, pngPath); err != nil {
			return err
		}
		fmt.Fprintln(stdout, aurora.Green("wrote"), pngPath)
		if opts.preview {
			if err := imgcat.CatFile(pngPath, stdout); err != nil {
				return errors.Wrap(err, "preview")
			}
		}
	}

	fmt.Fprintln(stdout, "Done")
	return nil
}
