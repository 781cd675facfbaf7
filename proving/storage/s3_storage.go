package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Storage(ctx context.Context, bucket, region, prefix string) (Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (s S3Storage) Reader(ctx context.Context, key string) (io.ReadCloser, error) {
	key = s.key(key)
	attributes, err := s.client.GetObjectAttributes(ctx, &s3.GetObjectAttributesInput{
		Bucket:           &s.bucket,
		Key:              &key,
		ObjectAttributes: []types.ObjectAttributes{types.ObjectAttributesObjectSize},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get object attributes: %w", err)
	}

	object, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get object: %w", err)
	}
	var size int64
	if attributes.ObjectSize != nil {
		size = *attributes.ObjectSize
	}
	return NewLoggingReader(object.Body, "Downloading", key, size), nil
}

func (s S3Storage) Writer(ctx context.Context, key string) (io.WriteCloser, error) {
	key = s.key(key)
	uploader := manager.NewUploader(s.client)

	reader, writer := io.Pipe()
	w := &writeWaiter{WriteCloser: writer}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, err := uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: &s.bucket,
			Key:    &key,
			Body:   reader,
		})
		w.err = err
		if err != nil {
			_ = reader.CloseWithError(err)
		}
	}()

	return w, nil
}

func (s S3Storage) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

type writeWaiter struct {
	io.WriteCloser
	wg  sync.WaitGroup
	err error
}

// Close blocks until the upload finished and reports its outcome.
func (w *writeWaiter) Close() error {
	err := w.WriteCloser.Close()
	if err != nil {
		return err
	}
	w.wg.Wait()
	return w.err
}
