// Package embedplot turns tabular datasets into interactive 2-D embedding
// scatter plots.
//
// Embedplot is a thin layer on top of a pluggable dimensionality-reduction
// backend. It selects the numeric columns of a dataset, optionally centers
// and scales them, hands the resulting matrix to an Embedder (PCA and t-SNE
// adapters ship in-tree; UMAP or any other reducer can be plugged in), and
// reassembles a table that merges the embedding coordinates with selected
// original columns.
//
// # Quick Start
//
//	ctx := context.Background()
//	df := dataframe.ReadCSV(f)
//
//	emb, _ := embedplot.Embed(ctx, df, pca.New(2),
//	    embedplot.WithNeighbors(15),
//	    embedplot.WithAnnotate(embedplot.AnnotateCategorical),
//	)
//
//	chart, _ := plot.Scatter(emb, nil, plot.Mapping{
//	    SampleID: "sample",
//	    X:        "EMB1",
//	    Y:        "EMB2",
//	    Color:    "condition",
//	})
//	_ = plot.SaveHTML(chart, "embedding.html")
//
// # Annotation Policies
//
// Embed reattaches original columns to the coordinate table according to an
// annotation policy:
//
//	embedplot.AnnotateAll          // every original column
//	embedplot.AnnotateCategorical  // non-numeric columns only
//	embedplot.AnnotateNumeric      // numeric columns only
//	embedplot.AnnotateNone         // coordinates only
//
// # Persistence
//
// The store package persists embedding tables and rendered charts to local
// disk, S3 or MinIO, with optional zstd/lz4 compression:
//
//	exp := store.NewExporter(store.NewLocalStore("./out"),
//	    store.WithCompression(store.CompressionZstd))
//	name, _ := exp.SaveTable(ctx, "embedding", emb)
//
// # Key Features
//
//   - Column classification (numeric vs categorical) for arbitrary tables
//   - Per-column standardization with zero-variance column dropping
//   - Pluggable embedding backends (PCA, t-SNE built in)
//   - Interactive HTML scatter plots (go-echarts) with tooltips
//   - Static PNG/SVG scatter plots (gonum/plot)
//   - Artifact persistence to local disk, S3 and MinIO
package embedplot
