// Package minio implements blobstore.Store for MinIO and S3-compatible
// object storage.
package minio
