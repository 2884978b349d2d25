package embedplot_test

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/hupe1980/embedplot"
	"github.com/hupe1980/embedplot/embedder/pca"
	"github.com/hupe1980/embedplot/plot"
)

func Example() {
	ctx := context.Background()

	df := dataframe.New(
		series.New([]string{"s1", "s2", "s3", "s4", "s5"}, series.String, "sample"),
		series.New([]float64{1.2, 2.4, 3.1, 4.8, 5.0}, series.Float, "geneA"),
		series.New([]float64{0.5, 0.7, 2.2, 2.4, 4.1}, series.Float, "geneB"),
		series.New([]string{"ctrl", "ctrl", "case", "case", "case"}, series.String, "condition"),
	)

	emb, err := embedplot.Embed(ctx, df, pca.New(2),
		embedplot.WithAnnotate(embedplot.AnnotateCategorical),
	)
	if err != nil {
		log.Fatal(err)
	}

	chart, err := plot.Scatter(emb, nil, plot.Mapping{
		SampleID: "sample",
		X:        "EMB1",
		Y:        "EMB2",
		Color:    "condition",
	}, plot.WithTitle("PCA embedding"))
	if err != nil {
		log.Fatal(err)
	}

	if err := plot.RenderHTML(chart, io.Discard); err != nil {
		log.Fatal(err)
	}

	fmt.Println(emb.Nrow())
	// Output: 5
}
