// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package scene

import (
	"bufio"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG serializes nodes as a complete SVG document of the given
// pixel size.
func WriteSVG(w io.Writer, width, height int, nodes []Node) error {
	bw := bufio.NewWriter(w)
	c := svg.New(bw)
	c.Start(width, height)
	for _, n := range nodes {
		n.emit(c)
	}
	c.End()
	return bw.Flush()
}

func (n *Rect) emit(c *svg.SVG) {
	c.Rect(round(n.X), round(n.Y), round(n.W), round(n.H), n.Style.css())
}

func (n *Circle) emit(c *svg.SVG) {
	c.Circle(round(n.CX), round(n.CY), round(n.R), n.Style.css())
}

func (n *Line) emit(c *svg.SVG) {
	c.Line(round(n.X1), round(n.Y1), round(n.X2), round(n.Y2), n.Style.css())
}

func (p *Path) emit(c *svg.SVG) {
	if len(p.d) == 0 {
		return
	}
	c.Path(string(p.d), p.Style.css())
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
