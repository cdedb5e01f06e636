package dataset

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open loads the named blob from store. Names ending in .gz, .zst/.zstd or
// .lz4 are decompressed before parsing.
func Open(ctx context.Context, store blobstore.Store, name string, optFns ...ReadOption) (*Dataset, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer rc.Close()

	r, closeFn, err := decompress(name, rc)
	if err != nil {
		return nil, fmt.Errorf("dataset: decompress %s: %w", name, err)
	}
	defer closeFn()

	return Read(r, optFns...)
}

func decompress(name string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
