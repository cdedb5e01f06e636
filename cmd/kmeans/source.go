package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/kmeans/blobstore"
	blobminio "github.com/hupe1980/kmeans/blobstore/minio"
	blobs3 "github.com/hupe1980/kmeans/blobstore/s3"
)

// source locates an input blob.
type source struct {
	scheme string // "", "s3", "minio" or "-" for stdin
	host   string
	bucket string
	name   string
}

// parseSource understands plain paths, "-", s3://bucket/key and
// minio://host[:port]/bucket/key.
func parseSource(uri string) (source, error) {
	if uri == "-" {
		return source{scheme: "-", name: "stdin"}, nil
	}

	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return source{name: uri}, nil
	}

	switch scheme {
	case "s3":
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return source{}, fmt.Errorf("s3 source must look like s3://bucket/key, got %q", uri)
		}
		return source{scheme: scheme, bucket: bucket, name: key}, nil
	case "minio":
		u, err := url.Parse(uri)
		if err != nil {
			return source{}, err
		}
		bucket, key, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" || key == "" {
			return source{}, fmt.Errorf("minio source must look like minio://host[:port]/bucket/key, got %q", uri)
		}
		return source{scheme: scheme, host: u.Host, bucket: bucket, name: key}, nil
	default:
		return source{}, fmt.Errorf("unsupported source scheme %q", scheme)
	}
}

// store builds the blobstore serving src. stdin is read from in.
func (src source) store(ctx context.Context, in io.Reader) (blobstore.Store, error) {
	switch src.scheme {
	case "-":
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		mem := blobstore.NewMemoryStore()
		if err := mem.Put(ctx, src.name, data); err != nil {
			return nil, err
		}
		return mem, nil
	case "s3":
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return blobs3.NewStore(s3.NewFromConfig(cfg), src.bucket, ""), nil
	case "minio":
		client, err := minio.New(src.host, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: os.Getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return blobminio.NewStore(client, src.bucket, ""), nil
	default:
		return blobstore.NewLocalStore(filepath.Dir(src.name)), nil
	}
}

// blobName is the name to open in the store returned by store.
func (src source) blobName() string {
	if src.scheme == "" {
		return filepath.Base(src.name)
	}
	return src.name
}
