package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/Electron-Labs/quantum-test/quantum"
	"github.com/Electron-Labs/quantum-test/runner"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func Main(version string, cliCtx *cli.Context) error {
	log.Info("Starting quantum-test", "version", version)
	scheme := stringFlag(cliCtx, SchemeFlag)
	if scheme == "" {
		return fmt.Errorf("--%s is required, one of %v", SchemeFlag.Name, circuits.Names())
	}
	// Unknown schemes are rejected before any storage or network access.
	if _, err := circuits.Lookup(scheme); err != nil {
		return err
	}

	ctx := cliCtx.Context
	store, err := newStorage(ctx, cliCtx)
	if err != nil {
		return err
	}
	q, err := newQuantum(cliCtx, store)
	if err != nil {
		return err
	}
	defer q.Close()

	r := runner.NewRunner(q, stringFlag(cliCtx, CircuitPathFlag))
	if cliCtx.Bool(PreflightFlag.Name) {
		r = r.WithPreflight(func(ctx context.Context, cm *circuits.Metadata, root string) error {
			return proving.Preflight(ctx, store, cm, root)
		})
	}
	result, err := r.Run(ctx, scheme)
	if err != nil {
		return err
	}
	if cliCtx.Bool(StrictFlag.Name) {
		return result.Err()
	}
	return nil
}

func newQuantum(cliCtx *cli.Context, store storage.Storage) (*quantum.Quantum, error) {
	endpoint := stringFlag(cliCtx, RpcEndpointFlag)
	if endpoint == "" {
		return nil, errors.New("RPC_ENDPOINT is not set")
	}
	timeout := lookup(cliCtx, TimeoutFlag.Name).Duration(TimeoutFlag.Name)
	return quantum.NewQuantum(endpoint, stringFlag(cliCtx, AccessKeyFlag), store, timeout)
}

func newStorage(ctx context.Context, cliCtx *cli.Context) (storage.Storage, error) {
	if bucket := stringFlag(cliCtx, S3BucketFlag); bucket != "" {
		prefix := stringFlag(cliCtx, S3PrefixFlag)
		log.Info("Using S3 storage", "bucket", bucket, "prefix", prefix)
		return storage.NewS3Storage(ctx, bucket, stringFlag(cliCtx, S3RegionFlag), prefix)
	}
	path, err := filepath.Abs(stringFlag(cliCtx, WorkdirFlag))
	if err != nil {
		return nil, err
	}
	log.Info("Using local storage", "path", path)
	return storage.NewFileStorage(path), nil
}
