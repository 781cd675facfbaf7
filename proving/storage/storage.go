package storage

import (
	"context"
	"io"
)

// Storage resolves slash separated artifact keys such as
// circuits/sp1/circuit_data/proof.bin.
type Storage interface {
	Reader(ctx context.Context, key string) (io.ReadCloser, error)
	Writer(ctx context.Context, key string) (io.WriteCloser, error)
}

func ReadAll(ctx context.Context, s Storage, key string) ([]byte, error) {
	reader, err := s.Reader(ctx, key)
	if err != nil {
		return nil, err
	}
	contents, err := io.ReadAll(reader)
	if err != nil {
		_ = reader.Close()
		return nil, err
	}
	return contents, reader.Close()
}

func WriteAll(ctx context.Context, s Storage, key string, contents []byte) error {
	writer, err := s.Writer(ctx, key)
	if err != nil {
		return err
	}
	if _, err = writer.Write(contents); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}
