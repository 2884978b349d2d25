package plot

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-gota/gota/dataframe"
)

// echarts symbol names cycled per distinct shape value.
var symbols = []string{"circle", "rect", "triangle", "diamond", "roundRect", "pin", "arrow"}

// defaultSeries is the series name used when no grouping column is mapped.
const defaultSeries = "samples"

// Scatter joins optional metadata onto the embedding table and builds an
// interactive 2-D scatter chart. Points are grouped into one series per
// distinct value of the Color (or Fill) column; the Shape column cycles
// through point symbols; tooltips show the sample id plus any Tooltip
// columns.
func Scatter(emb dataframe.DataFrame, meta *dataframe.DataFrame, m Mapping, optFns ...Option) (*charts.Scatter, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	df, err := prepare(emb, meta, m)
	if err != nil {
		return nil, err
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.title,
			Width:     o.width,
			Height:    o.height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.title,
			Subtitle: o.subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: m.X,
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: m.Y,
			Type: "value",
		}),
	)

	xs := df.Col(m.X).Float()
	ys := df.Col(m.Y).Float()
	ids := df.Col(m.SampleID).Records()

	groups, order := groupRows(df, m.group())
	shapeOf := shapeAssigner(df, m.Shape)
	tooltips := tooltipColumns(df, m.Tooltip)

	for _, name := range order {
		rows := groups[name]
		data := make([]opts.ScatterData, 0, len(rows))
		for _, i := range rows {
			data = append(data, opts.ScatterData{
				Name:       pointLabel(ids[i], m.Tooltip, tooltips, i),
				Value:      []interface{}{xs[i], ys[i]},
				Symbol:     shapeOf(i),
				SymbolSize: o.symbolSize,
			})
		}
		sc.AddSeries(name, data)
	}

	return sc, nil
}

// prepare joins metadata and validates every mapped column.
func prepare(emb dataframe.DataFrame, meta *dataframe.DataFrame, m Mapping) (dataframe.DataFrame, error) {
	var zero dataframe.DataFrame

	if m.SampleID == "" || m.X == "" || m.Y == "" {
		return zero, fmt.Errorf("mapping requires SampleID, X and Y columns")
	}
	for _, col := range []string{m.X, m.Y} {
		if !hasColumn(emb, col) {
			return zero, &ErrMissingColumn{Column: col, Table: "embedding"}
		}
	}

	df, err := Join(emb, meta, m.SampleID)
	if err != nil {
		return zero, err
	}

	optional := append([]string{m.Color, m.Fill, m.Shape}, m.Tooltip...)
	for _, col := range optional {
		if col == "" {
			continue
		}
		if !hasColumn(df, col) {
			return zero, &ErrMissingColumn{Column: col, Table: "joined"}
		}
	}
	return df, nil
}

// groupRows buckets row indices by the value of the grouping column,
// preserving first-appearance order. An empty column yields a single
// default series.
func groupRows(df dataframe.DataFrame, col string) (map[string][]int, []string) {
	n := df.Nrow()
	groups := make(map[string][]int)
	var order []string

	if col == "" {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		groups[defaultSeries] = idx
		return groups, []string{defaultSeries}
	}

	vals := df.Col(col).Records()
	for i, v := range vals {
		if _, ok := groups[v]; !ok {
			order = append(order, v)
		}
		groups[v] = append(groups[v], i)
	}
	return groups, order
}

// shapeAssigner maps each row to an echarts symbol based on the shape
// column, cycling the palette per distinct value.
func shapeAssigner(df dataframe.DataFrame, col string) func(int) string {
	if col == "" {
		return func(int) string { return symbols[0] }
	}

	vals := df.Col(col).Records()
	assigned := make(map[string]string)
	next := 0
	for _, v := range vals {
		if _, ok := assigned[v]; !ok {
			assigned[v] = symbols[next%len(symbols)]
			next++
		}
	}
	return func(i int) string { return assigned[vals[i]] }
}

func tooltipColumns(df dataframe.DataFrame, cols []string) map[string][]string {
	out := make(map[string][]string, len(cols))
	for _, col := range cols {
		out[col] = df.Col(col).Records()
	}
	return out
}

func pointLabel(id string, cols []string, tooltips map[string][]string, row int) string {
	if len(cols) == 0 {
		return id
	}
	var b strings.Builder
	b.WriteString(id)
	for _, col := range cols {
		b.WriteString("<br/>")
		b.WriteString(col)
		b.WriteString(": ")
		b.WriteString(tooltips[col][row])
	}
	return b.String()
}
