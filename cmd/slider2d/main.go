package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"gioui.org/app"
	"github.com/esimov/slider2d"
	"github.com/esimov/slider2d/utils"
)

const HelpBanner = `
┌─┐┬  ┬┌┬┐┌─┐┬─┐┌─┐┌┬┐
└─┐│  │ ││├┤ ├┬┘┌─┘ ││
└─┘┴─┘┴─┴┘└─┘┴└─└─┘─┴┘

Two dimensional position picker.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	width        = flag.Float64("width", slider2d.DefaultExtent.Width, "Canvas width")
	height       = flag.Float64("height", slider2d.DefaultExtent.Height, "Canvas height")
	tolerance    = flag.Float64("tolerance", slider2d.DefaultSnapTolerance, "Magnet snap tolerance")
	vWidth       = flag.Float64("vwidth", 0, "Virtual output width")
	vHeight      = flag.Float64("vheight", 0, "Virtual output height")
	report       = flag.String("report", "display", "Output reported while dragging (display, snapped, raw)")
	source       = flag.String("in", pipeName, "Source event script")
	destination  = flag.String("out", pipeName, "Destination trace")
	snapshot     = flag.String("snapshot", "", "Render the final state to an image (.png, .jpg, .bmp)")
	virtualShot  = flag.Bool("vsnapshot", false, "Render the snapshot at the virtual extent")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of scripts to replay concurrently")
	gui          = flag.Bool("gui", false, "Open the interactive window")
	title        = flag.String("title", "Slider 2D", "Control title")
	canvasColor  = flag.String("canvas", "#007aff", "Canvas color")
	handleColor  = flag.String("handle", "#af52de", "Handle color")
	cornerRadius = flag.Float64("radius", 15, "Canvas corner radius")
	blendMode    = flag.String("blend", "", "Handle blend mode in snapshots (darken, lighten, multiply, screen, overlay)")
	compositeOp  = flag.String("composite", "", "Handle composition in snapshots (src_over, dst_over, src_in, dst_in, src_out, dst_out, src_atop, dst_atop, xor)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	mode, err := slider2d.ParseReportMode(*report)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	cfg := slider2d.Config{
		Extent:        slider2d.Ext(*width, *height),
		SnapTolerance: *tolerance,
		Report:        mode,
	}
	if *vWidth > 0 || *vHeight > 0 {
		cfg.VirtualExtent = &slider2d.Extent{Width: *vWidth, Height: *vHeight}
	}

	style := slider2d.DefaultStyle()
	style.Title = *title
	style.CanvasColor = utils.HexToRGBA(*canvasColor)
	style.HandleColor = utils.HexToRGBA(*handleColor)
	style.CornerRadius = *cornerRadius
	style.Blend = *blendMode
	style.Composite = *compositeOp
	if err := style.Validate(); err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	if *gui {
		ctrl, err := slider2d.New(cfg)
		if err != nil {
			log.Fatalf(utils.DecorateText("Invalid configuration: %v\n", utils.ErrorMessage), err)
		}
		go func() {
			if err := slider2d.NewGUI(ctrl, style).Run(); err != nil {
				log.Fatal(err)
			}
			out := ctrl.Output()
			fmt.Fprintf(os.Stderr, "%s %s\n",
				utils.DecorateText("⚡ SLIDER2D ⇢ final position:", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("(%.2f, %.2f)", out.X, out.Y), utils.SuccessMessage),
			)
			os.Exit(0)
		}()
		app.Main()
		return
	}

	// Validate the configuration before touching any file.
	if _, err := slider2d.New(cfg); err != nil {
		flag.Usage()
		log.Fatalf(utils.DecorateText("Invalid configuration: %v\n", utils.ErrorMessage), err)
	}

	player := &slider2d.Player{
		Config:  cfg,
		Style:   style,
		Virtual: *virtualShot,
	}
	player.Execute(&slider2d.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Snapshot: *snapshot,
		Workers:  *workers,
	})
}
