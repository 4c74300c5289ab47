// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Command chartview opens a desktop window showing the demo chart
// through the immediate-mode canvas backend. The chart is redrawn
// from its layers on every frame, the way an interactive host
// embedding the engine drives it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/internal/chartdemo"
	"github.com/apple/embedding-atlas/internal/css"
	"github.com/apple/embedding-atlas/marks"
)

func main() {
	log.SetPrefix("chartview: ")
	log.SetFlags(0)

	var (
		flagWidth  = flag.Int("width", 720, "chart width in `pixels`")
		flagHeight = flag.Int("height", 480, "chart height in `pixels`")
		flagScale  = flag.Float64("scale", 2, "device pixel `ratio` to rasterize at")
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
	if *flagWidth <= 0 || *flagHeight <= 0 || *flagScale <= 0 {
		log.Fatal("width, height, and scale must be positive")
	}

	g := newGame(*flagWidth, *flagHeight, *flagScale)
	ebiten.SetWindowTitle("chartview")
	ebiten.SetWindowSize(*flagWidth, *flagHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// game redraws the chart into a software canvas each frame and blits
// the pixels to the screen. Layout reports the canvas size in device
// pixels, so the scale flag acts as a device pixel ratio.
type game struct {
	ctx    *marks.Context
	layers []*marks.Layer
	scale  float64
	bg     color.Color
	cv     *canvas.Image
	fb     *ebiten.Image
	w, h   int
}

func newGame(width, height int, scale float64) *game {
	ctx, layers := chartdemo.Chart(float64(width), float64(height))
	bg := color.Color(color.White)
	if c, ok := css.Parse(ctx.Theme["background"]); ok {
		bg = c
	}
	dw := int(float64(width) * scale)
	dh := int(float64(height) * scale)
	return &game{
		ctx:    ctx,
		layers: layers,
		scale:  scale,
		bg:     bg,
		cv:     canvas.NewImage(dw, dh),
		fb:     ebiten.NewImage(dw, dh),
		w:      dw,
		h:      dh,
	}
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	marks.DrawLayers(g.ctx, g.layers, g.cv, g.scale, 0, 0)
	g.fb.WritePixels(g.cv.RGBA().Pix)
	screen.Fill(g.bg)
	screen.DrawImage(g.fb, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
