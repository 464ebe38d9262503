// gridview renders a demo grid layout to a PNG so the size negotiation
// can be inspected visually: try different sizes, spacings and text
// directions and watch how the columns and rows settle.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/raja651/gtk"
	"github.com/raja651/gtk/widget"
)

// pane is a colored placeholder widget with a fixed size request.
type pane struct {
	widget.Base
	name    string
	r, g, b float64
}

func newPane(name string, minW, minH int, r, g, b float64) *pane {
	p := &pane{Base: widget.NewBase(), name: name, r: r, g: g, b: b}
	p.SetSizeRequest(minW, minH)
	return p
}

func main() {
	width := flag.Int("width", 800, "allocation width in pixels")
	height := flag.Int("height", 600, "allocation height in pixels")
	spacing := flag.Int("spacing", 8, "row and column spacing")
	output := flag.String("o", "gridview.png", "output PNG path")
	settingsPath := flag.String("settings", "", "optional settings TOML file")
	flag.Parse()

	settings := gtk.DefaultSettings()
	if *settingsPath != "" {
		var err error
		settings, err = gtk.LoadSettings(*settingsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	grid, panes := buildDemoGrid(*spacing)
	if settings.TextDirection == "rtl" {
		grid.SetDirection(widget.TextDirRTL)
	}

	minW, natW, _, _ := grid.Measure(widget.Horizontal, -1)
	minH, natH, _, _ := grid.Measure(widget.Vertical, *width)
	fmt.Printf("grid wants %dx%d at minimum, %dx%d naturally (height for width %d)\n",
		minW, minH, natW, natH, *width)

	grid.Allocate(widget.Rect{X: 0, Y: 0, Width: *width, Height: *height}, widget.NoBaseline)

	if err := render(panes, *width, *height, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *output)
}

// buildDemoGrid assembles a small application skeleton: a header spanning
// the full width, a fixed sidebar, an expanding content area and a status
// bar.
func buildDemoGrid(spacing int) (*widget.Grid, []*pane) {
	grid := widget.NewGrid()
	grid.SetRowSpacing(spacing)
	grid.SetColumnSpacing(spacing)

	header := newPane("header", 200, 48, 0.29, 0.56, 0.89)
	sidebar := newPane("sidebar", 120, 100, 0.56, 0.27, 0.68)
	content := newPane("content", 200, 100, 0.18, 0.80, 0.44)
	content.SetHExpand(true)
	content.SetVExpand(true)
	status := newPane("status", 200, 24, 0.95, 0.61, 0.07)

	grid.Attach(header, 0, 0, 2, 1)
	grid.Attach(sidebar, 0, 1, 1, 1)
	grid.Attach(content, 1, 1, 1, 1)
	grid.Attach(status, 0, 2, 2, 1)

	return grid, []*pane{header, sidebar, content, status}
}

func render(panes []*pane, width, height int, path string) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0.96, 0.96, 0.96)
	dc.Clear()

	for _, p := range panes {
		rect := p.Allocation()
		dc.SetRGB(p.r, p.g, p.b)
		dc.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
		dc.Fill()

		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
		dc.Stroke()

		label := fmt.Sprintf("%s %dx%d", p.name, rect.Width, rect.Height)
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(label,
			float64(rect.X)+float64(rect.Width)/2,
			float64(rect.Y)+float64(rect.Height)/2,
			0.5, 0.5)
	}

	return dc.SavePNG(path)
}
