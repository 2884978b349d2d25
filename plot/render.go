package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
)

// RenderHTML writes the chart as a standalone interactive HTML document.
func RenderHTML(chart *charts.Scatter, w io.Writer) error {
	if chart == nil {
		return fmt.Errorf("nil chart")
	}
	return chart.Render(w)
}

// SaveHTML renders the chart into the named file.
func SaveHTML(chart *charts.Scatter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderHTML(chart, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
