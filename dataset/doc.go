// Package dataset holds the immutable record set a clustering run works on.
//
// Records are dense float64 vectors of one dimension D, fixed by the first
// record. Each record may carry a tag: the trailing column of a delimited
// input line, typically a ground-truth class. Tags never take part in
// distance computations.
//
// # Loading
//
//	ds, err := dataset.Read(r)                               // tab-separated, last column is the tag
//	ds, err := dataset.Read(r, dataset.WithoutTags())         // every column is a feature
//	ds, err := dataset.Open(ctx, store, "ruspini.tsv.zst")    // decompressed by extension
package dataset
