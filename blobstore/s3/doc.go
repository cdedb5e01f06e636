// Package s3 implements blobstore.Store on Amazon S3.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "datasets/")
//	ds, _ := dataset.Open(ctx, store, "ruspini.tsv.zst")
package s3
