package plot

import (
	"github.com/go-gota/gota/dataframe"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// glyphs cycled per distinct shape value in the static renderer.
var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	draw.PyramidGlyph{},
	draw.PlusGlyph{},
	draw.CrossGlyph{},
	draw.RingGlyph{},
	draw.TriangleGlyph{},
}

// SaveStatic joins optional metadata onto the embedding table and writes a
// static scatter plot. The output format follows the file extension
// (.png, .svg, .pdf).
func SaveStatic(emb dataframe.DataFrame, meta *dataframe.DataFrame, m Mapping, path string, optFns ...Option) error {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	df, err := prepare(emb, meta, m)
	if err != nil {
		return err
	}

	p := gplot.New()
	p.Title.Text = o.title
	p.X.Label.Text = m.X
	p.Y.Label.Text = m.Y
	p.Add(plotter.NewGrid())

	xs := df.Col(m.X).Float()
	ys := df.Col(m.Y).Float()

	var shapeIdx func(int) int
	if m.Shape != "" {
		vals := df.Col(m.Shape).Records()
		assigned := make(map[string]int)
		for _, v := range vals {
			if _, ok := assigned[v]; !ok {
				assigned[v] = len(assigned)
			}
		}
		shapeIdx = func(i int) int { return assigned[vals[i]] }
	}

	groups, order := groupRows(df, m.group())
	for gi, name := range order {
		rows := groups[name]
		pts := make(plotter.XYs, len(rows))
		for k, i := range rows {
			pts[k].X = xs[i]
			pts[k].Y = ys[i]
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(gi)
		s.GlyphStyle.Radius = vg.Points(3)
		if shapeIdx != nil {
			base := s.GlyphStyle
			s.GlyphStyleFunc = func(k int) draw.GlyphStyle {
				gs := base
				gs.Shape = glyphs[shapeIdx(rows[k])%len(glyphs)]
				return gs
			}
		}

		p.Add(s)
		if m.group() != "" {
			p.Legend.Add(name, s)
		}
	}

	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}
