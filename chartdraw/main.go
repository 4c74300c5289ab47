// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Command chartdraw shows the demo chart in a devdraw window. The
// chart is rasterized offscreen through the canvas backend and loaded
// into the window, re-rendering to fit on every resize. Type q or Del
// to exit.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"9fans.net/go/draw"

	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/internal/chartdemo"
	"github.com/apple/embedding-atlas/internal/css"
	"github.com/apple/embedding-atlas/marks"
)

func main() {
	log.SetPrefix("chartdraw: ")
	log.SetFlags(0)

	var (
		flagWinSize = flag.String("winsize", "720x480", "initial window `size`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	d, err := draw.Init(nil, "", "chartdraw", *flagWinSize)
	if err != nil {
		log.Fatal(err)
	}
	v := &view{d: d}
	mousectl := d.InitMouse()
	kbdctl := d.InitKeyboard()
	v.redraw()

Loop:
	for {
		d.Flush()
		select {
		case <-mousectl.Resize:
			if err := d.Attach(draw.RefMesg); err != nil {
				log.Fatalf("can't reattach to window: %v", err)
			}
			v.redraw()
		case <-mousectl.C:
		case r := <-kbdctl.C:
			if r == 'q' || r == 0x7F { // Del
				break Loop
			}
		}
	}
}

type view struct {
	d  *draw.Display
	bg *draw.Image
}

// redraw rasterizes the chart at the current window size and paints
// it over the theme background. The offscreen image carries alpha, so
// the window draw composites instead of replacing.
func (v *view) redraw() {
	d := v.d
	r := d.Image.R
	width, height := r.Dx(), r.Dy()
	if width <= 0 || height <= 0 {
		return
	}
	ctx, layers := chartdemo.Chart(float64(width), float64(height))
	cv := canvas.NewImage(width, height)
	marks.DrawLayers(ctx, layers, cv, 1, 0, 0)

	if v.bg == nil {
		bg, err := d.AllocImage(image.Rect(0, 0, 1, 1), draw.RGB24, true, themeColor(ctx.Theme))
		if err != nil {
			log.Fatalf("allocimage: %v", err)
		}
		v.bg = bg
	}
	img, err := d.AllocImage(image.Rect(0, 0, width, height), draw.ABGR32, false, draw.NoFill)
	if err != nil {
		log.Fatalf("allocimage: %v", err)
	}
	defer img.Free()
	// ABGR32 stores bytes as r, g, b, a, matching RGBA pixels; both
	// sides are premultiplied.
	if _, err := img.Load(img.R, cv.RGBA().Pix); err != nil {
		log.Fatalf("loadimage: %v", err)
	}
	d.Image.Draw(r, v.bg, nil, draw.ZP)
	d.Image.Draw(r, img, nil, draw.ZP)
}

// themeColor converts the theme background to a draw color, falling
// back to white.
func themeColor(th marks.Theme) draw.Color {
	c, ok := css.Parse(th["background"])
	if !ok {
		return draw.White
	}
	return draw.Color(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}
