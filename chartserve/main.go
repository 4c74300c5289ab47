// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Command chartserve serves the demo chart over HTTP in both output
// forms: /chart.svg from the retained scene graph and /chart.png from
// the raster canvas. Both endpoints accept width, height, and scale
// query parameters, so pointing a browser at the server is a quick
// way to compare the two backends on the same layers.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/internal/chartdemo"
	"github.com/apple/embedding-atlas/internal/css"
	"github.com/apple/embedding-atlas/marks"
	"github.com/apple/embedding-atlas/scene"
)

func main() {
	log.SetPrefix("chartserve: ")
	log.SetFlags(0)

	var (
		flagAddr = flag.String("addr", ":8080", "listen `address`")
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

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	h := newHandler()
	h.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(*flagAddr))
}

const (
	defaultWidth  = 720
	defaultHeight = 480
	minDim        = 16
	maxDim        = 4096
	maxScale      = 4
)

// Handler serves chart renders. The scene for the default size is
// retained and reused across requests; sized requests render fresh.
type Handler struct {
	group *scene.Group
}

func newHandler() *Handler {
	g := new(scene.Group)
	g.SetNodes(renderScene(defaultWidth, defaultHeight))
	return &Handler{group: g}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/chart.svg", h.ChartSVG)
	e.GET("/chart.png", h.ChartPNG)
}

// renderScene resolves the demo chart into scene nodes, with a
// background rectangle prepended so the SVG and PNG composites match.
func renderScene(width, height float64) []scene.Node {
	ctx, layers := chartdemo.Chart(width, height)
	bg := scene.Style{Fill: ctx.Theme["background"], FillOpacity: 1, Opacity: 1}
	nodes := []scene.Node{&scene.Rect{W: width, H: height, Style: bg}}
	return append(nodes, marks.RenderLayers(ctx, layers)...)
}

func (h *Handler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

func (h *Handler) ChartSVG(c echo.Context) error {
	width, height, _, err := sizeParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var buf bytes.Buffer
	if width == defaultWidth && height == defaultHeight {
		// The retained scene already holds this chart.
		err = h.group.WriteSVG(&buf, width, height)
	} else {
		err = scene.WriteSVG(&buf, width, height, renderScene(float64(width), float64(height)))
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (h *Handler) ChartPNG(c echo.Context) error {
	width, height, scale, err := sizeParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx, layers := chartdemo.Chart(float64(width), float64(height))
	cv := canvas.NewImage(int(float64(width)*scale), int(float64(height)*scale))
	marks.DrawLayers(ctx, layers, cv, scale, 0, 0)

	bg := color.Color(color.White)
	if p, ok := css.Parse(ctx.Theme["background"]); ok {
		bg = p
	}
	out := image.NewRGBA(cv.RGBA().Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), cv.RGBA(), image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// sizeParams reads the width, height, and scale query parameters,
// bounded so a stray request can't ask for an enormous raster.
func sizeParams(c echo.Context) (width, height int, scale float64, err error) {
	width, err = intParam(c, "width", defaultWidth)
	if err != nil {
		return
	}
	height, err = intParam(c, "height", defaultHeight)
	if err != nil {
		return
	}
	scale = 1
	if s := c.QueryParam("scale"); s != "" {
		scale, err = strconv.ParseFloat(s, 64)
		if err != nil || scale <= 0 || scale > maxScale {
			return 0, 0, 0, fmt.Errorf("bad scale %q", s)
		}
	}
	return
}

func intParam(c echo.Context, name string, def int) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < minDim || v > maxDim {
		return 0, fmt.Errorf("bad %s %q", name, s)
	}
	return v, nil
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>chartserve</title></head>
<body>
<p>The same chart through both backends:</p>
<p><a href="/chart.svg">/chart.svg</a> - retained scene graph</p>
<img src="/chart.svg" width="720" height="480">
<p><a href="/chart.png">/chart.png</a> - immediate-mode canvas</p>
<img src="/chart.png?scale=2" width="720" height="480">
</body>
</html>
`
